// Package gallery reads image groups from a directory tree.
package gallery

import "errors"

var (
	// ErrGroupNotFound is returned when no directory matches the group id.
	ErrGroupNotFound = errors.New("gallery group not found")
	// ErrEmptyGroup is returned when a group directory holds no usable image.
	ErrEmptyGroup = errors.New("gallery group is empty")
	// ErrInvalidManifest wraps manifest decode failures.
	ErrInvalidManifest = errors.New("invalid gallery manifest")
)

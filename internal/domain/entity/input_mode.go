package entity

import "strings"

// InputMode selects the zoom strategy of the lightbox.
// Pointer platforms zoom by clicking a point; touch platforms zoom by pinching.
// Drag-to-pan is available in both.
type InputMode string

const (
	InputModePointer InputMode = "pointer"
	InputModeTouch   InputMode = "touch"
)

// ParseInputMode returns the input mode for s (case-insensitive).
func ParseInputMode(s string) (InputMode, bool) {
	switch InputMode(strings.ToLower(strings.TrimSpace(s))) {
	case InputModePointer:
		return InputModePointer, true
	case InputModeTouch:
		return InputModeTouch, true
	default:
		return "", false
	}
}

// Cursor is the affordance hint the host may render over the image.
type Cursor string

const (
	CursorNeutral  Cursor = "neutral"
	CursorZoomIn   Cursor = "zoom-in"
	CursorZoomOut  Cursor = "zoom-out"
	CursorGrab     Cursor = "grab"
	CursorGrabbing Cursor = "grabbing"
)

package port

import (
	"context"

	"github.com/bnema/lightbox/internal/domain/entity"
)

// GallerySource supplies the visual groups the host page is built from.
type GallerySource interface {
	// Groups returns every group in display order.
	Groups(ctx context.Context) ([]*entity.Group, error)

	// Group returns a single group by ID.
	Group(ctx context.Context, id entity.GroupID) (*entity.Group, error)
}

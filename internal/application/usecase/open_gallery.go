package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/lightbox/internal/application/port"
	"github.com/bnema/lightbox/internal/domain/entity"
	"github.com/bnema/lightbox/internal/logging"
)

// OpenGalleryUseCase errors.
var (
	ErrGroupEmpty       = errors.New("gallery group has no images")
	ErrImageNotInGroup  = errors.New("image not found in gallery group")
	ErrStartOutOfBounds = errors.New("start index out of bounds")
)

// OpenGalleryUseCase opens the lightbox over a gallery group,
// the way a host page does when one of the group's images is activated.
type OpenGalleryUseCase struct {
	source   port.GallerySource
	lightbox *LightboxController
}

// NewOpenGalleryUseCase creates a new OpenGalleryUseCase.
func NewOpenGalleryUseCase(source port.GallerySource, lightbox *LightboxController) *OpenGalleryUseCase {
	return &OpenGalleryUseCase{
		source:   source,
		lightbox: lightbox,
	}
}

// OpenGalleryInput selects the group and the activated image.
// When ImageURL is set it takes precedence over StartIndex.
type OpenGalleryInput struct {
	GroupID    entity.GroupID
	StartIndex int
	ImageURL   string
}

// OpenGalleryOutput describes what was opened.
type OpenGalleryOutput struct {
	Group *entity.Group
	Index int
}

// Execute resolves the group and opens the lightbox on the selected image.
func (uc *OpenGalleryUseCase) Execute(ctx context.Context, input OpenGalleryInput) (*OpenGalleryOutput, error) {
	log := logging.FromContext(ctx)

	group, err := uc.source.Group(ctx, input.GroupID)
	if err != nil {
		return nil, fmt.Errorf("failed to load group %q: %w", input.GroupID, err)
	}
	if group.Len() == 0 {
		return nil, fmt.Errorf("%w: %s", ErrGroupEmpty, input.GroupID)
	}

	index := input.StartIndex
	if input.ImageURL != "" {
		index = indexOfURL(group.Images, input.ImageURL)
		if index < 0 {
			return nil, fmt.Errorf("%w: %s", ErrImageNotInGroup, input.ImageURL)
		}
	}

	if !uc.lightbox.Open(ctx, group.Images, index) {
		return nil, fmt.Errorf("%w: %d of %d", ErrStartOutOfBounds, index, group.Len())
	}

	log.Info().
		Str("group", string(group.ID)).
		Int("index", index).
		Int("count", group.Len()).
		Msg("gallery group opened")

	return &OpenGalleryOutput{Group: group, Index: index}, nil
}

// ListGroups returns every group known to the source.
func (uc *OpenGalleryUseCase) ListGroups(ctx context.Context) ([]*entity.Group, error) {
	groups, err := uc.source.Groups(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	return groups, nil
}

func indexOfURL(images []entity.Image, url string) int {
	for i := range images {
		if images[i].URL == url {
			return i
		}
	}
	return -1
}

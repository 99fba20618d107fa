package replay

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/lightbox/internal/application/usecase"
	"github.com/bnema/lightbox/internal/domain/entity"
	"github.com/bnema/lightbox/internal/logging"
	"github.com/bnema/lightbox/internal/ui/input"
)

// ErrNoGallery is returned when a script opens a group but the player has no gallery.
var ErrNoGallery = errors.New("replay has no gallery to open groups from")

// Controller is the lightbox surface a script drives.
// *usecase.LightboxController implements it.
type Controller interface {
	input.Lightbox
	Open(ctx context.Context, images []entity.Image, startIndex int) bool
	Render() entity.RenderOutput
}

// GroupOpener opens the lightbox over a gallery group.
// *usecase.OpenGalleryUseCase implements it.
type GroupOpener interface {
	Execute(ctx context.Context, in usecase.OpenGalleryInput) (*usecase.OpenGalleryOutput, error)
}

// Result is the lightbox state after one step.
// Consumed reports whether the open overlay captured the step.
type Result struct {
	Step     Step
	Consumed bool
	Output   entity.RenderOutput
}

// String formats the result as one line of replay output.
func (r Result) String() string {
	state := "closed"
	if r.Output.Visible {
		state = fmt.Sprintf("%d/%d %s origin=%s cursor=%s",
			r.Output.Index+1, r.Output.Count,
			r.Output.Transform, r.Output.Transform.OriginString(), r.Output.Cursor)
	}
	mark := " "
	if r.Consumed {
		mark = "*"
	}
	return fmt.Sprintf("%4d %s %-11s %s", r.Step.Line, mark, r.Step.Record.Type, state)
}

// Player plays steps against a controller.
type Player struct {
	controller Controller
	dispatcher *input.Dispatcher
	opener     GroupOpener
}

// NewPlayer creates a player. opener may be nil when scripts only open inline images.
func NewPlayer(controller Controller, dispatcher *input.Dispatcher, opener GroupOpener) *Player {
	return &Player{
		controller: controller,
		dispatcher: dispatcher,
		opener:     opener,
	}
}

// Run plays steps in order, calling emit after each one.
// It stops at the first failing open or when ctx is done.
func (p *Player) Run(ctx context.Context, steps []Step, emit func(Result)) error {
	log := logging.FromContext(ctx)

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return err
		}

		consumed, err := p.apply(ctx, step)
		if err != nil {
			return fmt.Errorf("line %d: %w", step.Line, err)
		}

		log.Debug().
			Int("line", step.Line).
			Str("type", step.Record.Type).
			Bool("consumed", consumed).
			Msg("replay step")

		if emit != nil {
			emit(Result{Step: step, Consumed: consumed, Output: p.controller.Render()})
		}
	}
	return nil
}

func (p *Player) apply(ctx context.Context, step Step) (bool, error) {
	rec := step.Record
	switch rec.Type {
	case TypeOpen:
		return p.open(ctx, rec)
	case TypeClose:
		wasOpen := p.controller.IsOpen()
		p.controller.Close(ctx)
		return wasOpen, nil
	default:
		return p.dispatcher.Dispatch(ctx, step.Event), nil
	}
}

func (p *Player) open(ctx context.Context, rec Record) (bool, error) {
	if rec.Group != "" {
		if p.opener == nil {
			return false, ErrNoGallery
		}
		_, err := p.opener.Execute(ctx, usecase.OpenGalleryInput{
			GroupID:    entity.GroupID(rec.Group),
			StartIndex: rec.Index,
			ImageURL:   rec.URL,
		})
		if err != nil {
			return false, err
		}
		return true, nil
	}

	images := make([]entity.Image, len(rec.Images))
	for i, img := range rec.Images {
		images[i] = entity.Image{URL: img.URL, Alt: img.Alt}
	}
	if !p.controller.Open(ctx, images, rec.Index) {
		return false, fmt.Errorf("%w: start index %d out of %d images", ErrInvalidRecord, rec.Index, len(images))
	}
	return true, nil
}

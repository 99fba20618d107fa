// Package usecase contains application use cases that orchestrate domain logic.
package usecase

import (
	"context"
	"math"
	"sync"

	"github.com/bnema/lightbox/internal/application/port"
	"github.com/bnema/lightbox/internal/domain/entity"
	"github.com/bnema/lightbox/internal/logging"
)

// Canonical key names understood by HandleKey.
const (
	KeyEscape     = "Escape"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
)

const percentMax = 100.0

// LightboxConfig holds construction-time options for the controller.
type LightboxConfig struct {
	// InputMode selects click zoom-at-point (pointer) or pinch zoom (touch).
	InputMode entity.InputMode
	// ClickZoomScale is the scale applied by a click zoom-in.
	ClickZoomScale float64
	// MinScale and MaxScale bound every scale the controller produces.
	MinScale float64
	MaxScale float64
}

// DefaultLightboxConfig returns the pointer-mode defaults (1x..4x, click zooms to 2x).
func DefaultLightboxConfig() LightboxConfig {
	return LightboxConfig{
		InputMode:      entity.InputModePointer,
		ClickZoomScale: entity.ScaleZoomed,
		MinScale:       entity.ScaleMin,
		MaxScale:       entity.ScaleMax,
	}
}

func (c LightboxConfig) normalized() LightboxConfig {
	def := DefaultLightboxConfig()
	if _, ok := entity.ParseInputMode(string(c.InputMode)); !ok {
		c.InputMode = def.InputMode
	}
	if math.IsNaN(c.MinScale) || c.MinScale <= 0 {
		c.MinScale = def.MinScale
	}
	c.MinScale = entity.ClampScale(c.MinScale, entity.ScaleMin, entity.ScaleMax)
	if math.IsNaN(c.MaxScale) || c.MaxScale < c.MinScale {
		c.MaxScale = def.MaxScale
	}
	c.MaxScale = entity.ClampScale(c.MaxScale, c.MinScale, entity.ScaleMax)
	if math.IsNaN(c.ClickZoomScale) || c.ClickZoomScale <= c.MinScale || c.ClickZoomScale > c.MaxScale {
		c.ClickZoomScale = entity.ClampScale(def.ClickZoomScale, c.MinScale, c.MaxScale)
	}
	return c
}

// LightboxController owns the state of a single modal image overlay:
// the image set, the zoom/pan view and the in-flight drag or pinch gesture.
//
// State machine per open session:
//
//	Closed -> Open(Unzoomed) <-> Open(Zoomed){idle, dragging, pinching}
//
// Any state returns to Closed on Close or Escape. Dragging and pinching are
// mutually exclusive; a pinch supersedes a drag and blocks new drags.
//
// A drag that moved the image arms a one-shot flag that swallows the next
// ToggleZoomAtPoint, so the click generated by releasing the drag does not zoom.
//
// Every operation is a silent no-op when its preconditions do not hold.
// After each effective change the controller pushes its RenderOutput to the
// renderer, outside of its lock.
type LightboxController struct {
	cfg      LightboxConfig
	renderer port.LightboxRenderer

	mu                 sync.Mutex
	open               bool
	set                *entity.ImageSet
	view               entity.ViewState
	originX, originY   float64
	drag               entity.DragState
	pinch              entity.PinchState
	suppressNextToggle bool
}

// NewLightboxController creates a closed controller.
// renderer may be nil when the host polls Render instead.
func NewLightboxController(cfg LightboxConfig, renderer port.LightboxRenderer) *LightboxController {
	c := &LightboxController{
		cfg:      cfg.normalized(),
		renderer: renderer,
	}
	c.resetViewLocked()
	return c
}

// Config returns the normalized configuration.
func (c *LightboxController) Config() LightboxConfig {
	return c.cfg
}

// Open shows the overlay with images, displaying startIndex.
// Returns false and stays closed when images is empty or startIndex is out of bounds.
func (c *LightboxController) Open(ctx context.Context, images []entity.Image, startIndex int) bool {
	log := logging.FromContext(ctx)

	set := entity.NewImageSet(images, startIndex)
	if set == nil {
		log.Debug().Int("count", len(images)).Int("index", startIndex).Msg("refusing to open lightbox")
		return false
	}

	c.update(ctx, func() bool {
		c.open = true
		c.set = set
		c.resetViewLocked()
		return true
	})

	log.Debug().Int("count", set.Len()).Int("index", startIndex).Msg("lightbox opened")
	return true
}

// Close hides the overlay and discards the image set. Closing twice is a no-op.
func (c *LightboxController) Close(ctx context.Context) {
	closed := c.update(ctx, func() bool {
		if !c.open {
			return false
		}
		c.open = false
		c.set = nil
		c.resetViewLocked()
		return true
	})
	if closed {
		logging.FromContext(ctx).Debug().Msg("lightbox closed")
	}
}

// ToggleZoomAtPoint flips between the identity view and ClickZoomScale,
// using (px, py), in percent of the rendered image box, as the transform origin.
// Pointer mode only. The pan offset is reset on both transitions.
// The first toggle after a drag is swallowed and clears the suppression.
func (c *LightboxController) ToggleZoomAtPoint(ctx context.Context, px, py float64) {
	if c.cfg.InputMode != entity.InputModePointer {
		return
	}

	c.update(ctx, func() bool {
		if !c.open {
			return false
		}
		if c.suppressNextToggle {
			c.suppressNextToggle = false
			logging.FromContext(ctx).Debug().Msg("zoom toggle suppressed after drag")
			return true
		}

		c.drag.Clear()
		c.view.PanX, c.view.PanY = 0, 0
		if c.view.Zoomed {
			c.view.Zoomed = false
			c.view.Scale = c.cfg.MinScale
			c.originX, c.originY = entity.OriginCenter, entity.OriginCenter
			return true
		}
		c.view.Zoomed = true
		c.view.Scale = c.cfg.ClickZoomScale
		c.originX = clampPercent(px)
		c.originY = clampPercent(py)
		return true
	})
}

// BeginDrag starts panning from the pointer position.
// Only while zoomed and no pinch is in progress.
func (c *LightboxController) BeginDrag(ctx context.Context, pointerX, pointerY float64) {
	c.update(ctx, func() bool {
		if !c.open || !c.view.Zoomed || c.pinch.Active {
			return false
		}
		c.drag.Begin(pointerX, pointerY, c.view.PanX, c.view.PanY)
		return true
	})
}

// UpdateDrag moves the pan offset with the pointer. No-op without an active drag.
func (c *LightboxController) UpdateDrag(ctx context.Context, pointerX, pointerY float64) {
	c.update(ctx, func() bool {
		if !c.open || !c.drag.Active {
			return false
		}
		c.view.PanX, c.view.PanY = c.drag.Pan(pointerX, pointerY)
		c.suppressNextToggle = true
		return true
	})
}

// EndDrag finishes the drag. No-op without an active drag.
func (c *LightboxController) EndDrag(ctx context.Context) {
	c.update(ctx, func() bool {
		if !c.drag.Active {
			return false
		}
		c.drag.Clear()
		return true
	})
}

// BeginPinch records the baseline of a two-finger pinch. Touch mode only.
// The baseline scale is ClickZoomScale when already zoomed, MinScale otherwise.
// An active drag is superseded.
func (c *LightboxController) BeginPinch(ctx context.Context, a, b entity.TouchPoint) {
	if c.cfg.InputMode != entity.InputModeTouch {
		return
	}

	c.update(ctx, func() bool {
		if !c.open {
			return false
		}
		baseline := c.cfg.MinScale
		if c.view.Zoomed {
			baseline = c.cfg.ClickZoomScale
		}
		if !c.pinch.Begin(a, b, baseline) {
			return false
		}
		c.drag.Clear()
		logging.FromContext(ctx).Debug().
			Float64("distance", c.pinch.InitialDistance).
			Float64("baseline", baseline).
			Msg("pinch started")
		return true
	})
}

// UpdatePinch rescales by the ratio of the current to the initial finger distance,
// clamped to [MinScale, MaxScale]. The pan offset is preserved.
func (c *LightboxController) UpdatePinch(ctx context.Context, a, b entity.TouchPoint) {
	c.update(ctx, func() bool {
		if !c.open || !c.pinch.Active {
			return false
		}
		c.view.SetScale(c.pinch.Scale(a, b), c.cfg.MinScale, c.cfg.MaxScale)
		return true
	})
}

// EndPinch clears the pinch. No-op without an active pinch.
func (c *LightboxController) EndPinch(ctx context.Context) {
	c.update(ctx, func() bool {
		if !c.pinch.Active {
			return false
		}
		c.pinch.Clear()
		return true
	})
}

// ShowNext displays the next image, wrapping to the first, and resets the view.
// No-op when closed or when the set has at most one image.
func (c *LightboxController) ShowNext(ctx context.Context) {
	c.navigate(ctx, (*entity.ImageSet).Next, "next")
}

// ShowPrevious displays the previous image, wrapping to the last, and resets the view.
// No-op when closed or when the set has at most one image.
func (c *LightboxController) ShowPrevious(ctx context.Context) {
	c.navigate(ctx, (*entity.ImageSet).Previous, "previous")
}

func (c *LightboxController) navigate(ctx context.Context, step func(*entity.ImageSet) bool, direction string) {
	moved := c.update(ctx, func() bool {
		if !c.open || !step(c.set) {
			return false
		}
		c.resetViewLocked()
		return true
	})
	if moved {
		logging.FromContext(ctx).Debug().
			Str("direction", direction).
			Int("index", c.Index()).
			Msg("lightbox navigated")
	}
}

// HandleKey maps Escape, ArrowLeft and ArrowRight to Close, ShowPrevious and ShowNext.
// Returns true when the key was consumed by an open overlay.
func (c *LightboxController) HandleKey(ctx context.Context, key string) bool {
	if !c.IsOpen() {
		return false
	}
	switch key {
	case KeyEscape:
		c.Close(ctx)
	case KeyArrowLeft:
		c.ShowPrevious(ctx)
	case KeyArrowRight:
		c.ShowNext(ctx)
	default:
		return false
	}
	return true
}

// IsOpen reports whether the overlay is visible.
func (c *LightboxController) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.open
}

// View returns a copy of the current view state.
func (c *LightboxController) View() entity.ViewState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view
}

// Index returns the displayed image index, -1 while closed.
func (c *LightboxController) Index() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.set.Index()
}

// Count returns the number of images in the open set.
func (c *LightboxController) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.set.Len()
}

// Current returns the displayed image.
func (c *LightboxController) Current() (entity.Image, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.set.Current()
}

// IsDragging reports whether a pan drag is in progress.
func (c *LightboxController) IsDragging() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.drag.Active
}

// IsPinching reports whether a pinch is in progress.
func (c *LightboxController) IsPinching() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pinch.Active
}

// Cursor returns the affordance hint for the current state.
func (c *LightboxController) Cursor() entity.Cursor {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cursorLocked()
}

// Render returns the current render output.
func (c *LightboxController) Render() entity.RenderOutput {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.renderLocked()
}

// update runs fn under the lock and, when fn reports a change,
// pushes the resulting output to the renderer after unlocking.
func (c *LightboxController) update(ctx context.Context, fn func() bool) bool {
	c.mu.Lock()
	changed := fn()
	out := c.renderLocked()
	c.mu.Unlock()

	if changed && c.renderer != nil {
		c.renderer.Render(ctx, out)
	}
	return changed
}

func (c *LightboxController) resetViewLocked() {
	c.view.Reset()
	c.view.Scale = c.cfg.MinScale
	c.originX, c.originY = entity.OriginCenter, entity.OriginCenter
	c.drag.Clear()
	c.pinch.Clear()
	c.suppressNextToggle = false
}

func (c *LightboxController) cursorLocked() entity.Cursor {
	if !c.open {
		return entity.CursorNeutral
	}
	if c.drag.Active {
		return entity.CursorGrabbing
	}
	if c.cfg.InputMode == entity.InputModeTouch {
		if c.view.Zoomed {
			return entity.CursorGrab
		}
		return entity.CursorNeutral
	}
	switch {
	case !c.view.Zoomed:
		return entity.CursorZoomIn
	case c.suppressNextToggle:
		// The next click is swallowed, so it will not zoom out.
		return entity.CursorGrab
	default:
		return entity.CursorZoomOut
	}
}

func (c *LightboxController) renderLocked() entity.RenderOutput {
	if !c.open {
		return entity.ClosedOutput()
	}

	out := entity.RenderOutput{
		Visible: true,
		Index:   c.set.Index(),
		Count:   c.set.Len(),
		Transform: entity.Transform{
			Scale:   c.view.Scale,
			OriginX: c.originX,
			OriginY: c.originY,
		},
		Cursor: c.cursorLocked(),
	}
	if c.view.Zoomed {
		out.Transform.TranslateX = c.view.PanX
		out.Transform.TranslateY = c.view.PanY
	}
	if img, ok := c.set.Current(); ok {
		out.Image = &img
	}
	return out
}

func clampPercent(p float64) float64 {
	if math.IsNaN(p) {
		return entity.OriginCenter
	}
	if p < 0 {
		return 0
	}
	if p > percentMax {
		return percentMax
	}
	return p
}

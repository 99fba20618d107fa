package input

import (
	"context"

	"github.com/bnema/lightbox/internal/domain/entity"
	"github.com/bnema/lightbox/internal/logging"
)

// Lightbox is the controller surface driven by the dispatcher.
// *usecase.LightboxController implements it.
type Lightbox interface {
	IsOpen() bool
	Close(ctx context.Context)
	ToggleZoomAtPoint(ctx context.Context, px, py float64)
	BeginDrag(ctx context.Context, x, y float64)
	UpdateDrag(ctx context.Context, x, y float64)
	EndDrag(ctx context.Context)
	BeginPinch(ctx context.Context, a, b entity.TouchPoint)
	UpdatePinch(ctx context.Context, a, b entity.TouchPoint)
	EndPinch(ctx context.Context)
	HandleKey(ctx context.Context, key string) bool
}

const pinchTouches = 2

// Dispatcher routes host input events to the lightbox.
// Events are ignored while the overlay is closed.
type Dispatcher struct {
	lightbox  Lightbox
	shortcuts ShortcutTable
}

// NewDispatcher creates a dispatcher using shortcuts for key events.
func NewDispatcher(lightbox Lightbox, shortcuts ShortcutTable) *Dispatcher {
	if shortcuts == nil {
		shortcuts = make(ShortcutTable)
	}
	return &Dispatcher{
		lightbox:  lightbox,
		shortcuts: shortcuts,
	}
}

// SetShortcuts swaps the key table, e.g. after a config reload.
func (d *Dispatcher) SetShortcuts(shortcuts ShortcutTable) {
	if shortcuts == nil {
		shortcuts = make(ShortcutTable)
	}
	d.shortcuts = shortcuts
}

// Dispatch applies ev and reports whether the open overlay captured it.
// Pointer and touch events are always captured while open, even when the
// controller ignores them (a press on an unzoomed image). Clicks are captured
// when they hit a target, keys only when bound and recognized.
func (d *Dispatcher) Dispatch(ctx context.Context, ev Event) bool {
	if ev == nil || !d.lightbox.IsOpen() {
		return false
	}

	switch e := ev.(type) {
	case PointerDown:
		d.lightbox.BeginDrag(ctx, e.X, e.Y)
	case PointerMove:
		d.lightbox.UpdateDrag(ctx, e.X, e.Y)
	case PointerUp:
		d.lightbox.EndDrag(ctx)
	case TouchStart:
		d.touchStart(ctx, e.Touches)
	case TouchMove:
		d.touchMove(ctx, e.Touches)
	case TouchEnd:
		d.touchEnd(ctx, e.Touches)
	case Click:
		return d.click(ctx, e)
	case KeyDown:
		return d.key(ctx, e.Key)
	default:
		logging.FromContext(ctx).Debug().Str("kind", string(ev.Kind())).Msg("unhandled input event")
		return false
	}
	return true
}

func (d *Dispatcher) touchStart(ctx context.Context, touches []entity.TouchPoint) {
	switch len(touches) {
	case pinchTouches:
		d.lightbox.BeginPinch(ctx, touches[0], touches[1])
	case 1:
		d.lightbox.BeginDrag(ctx, touches[0].X, touches[0].Y)
	}
}

func (d *Dispatcher) touchMove(ctx context.Context, touches []entity.TouchPoint) {
	switch len(touches) {
	case pinchTouches:
		d.lightbox.UpdatePinch(ctx, touches[0], touches[1])
	case 1:
		d.lightbox.UpdateDrag(ctx, touches[0].X, touches[0].Y)
	}
}

func (d *Dispatcher) touchEnd(ctx context.Context, remaining []entity.TouchPoint) {
	if len(remaining) < pinchTouches {
		d.lightbox.EndPinch(ctx)
	}
	if len(remaining) == 0 {
		d.lightbox.EndDrag(ctx)
	}
}

func (d *Dispatcher) click(ctx context.Context, e Click) bool {
	switch e.Target {
	case ClickTargetBackground:
		d.lightbox.Close(ctx)
		return true
	case ClickTargetImage:
		px, py, ok := e.Bounds.Percent(e.X, e.Y)
		if !ok {
			return false
		}
		d.lightbox.ToggleZoomAtPoint(ctx, px, py)
		return true
	default:
		return false
	}
}

func (d *Dispatcher) key(ctx context.Context, key string) bool {
	action, ok := d.shortcuts.LookupKey(key)
	if !ok {
		return false
	}
	canonical, ok := action.CanonicalKey()
	if !ok {
		return false
	}
	return d.lightbox.HandleKey(ctx, canonical)
}

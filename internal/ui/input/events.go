package input

import (
	"github.com/bnema/lightbox/internal/domain/entity"
)

// EventKind names a host input event.
type EventKind string

const (
	KindPointerDown EventKind = "pointerdown"
	KindPointerMove EventKind = "pointermove"
	KindPointerUp   EventKind = "pointerup"
	KindTouchStart  EventKind = "touchstart"
	KindTouchMove   EventKind = "touchmove"
	KindTouchEnd    EventKind = "touchend"
	KindKeyDown     EventKind = "keydown"
	KindClick       EventKind = "click"
)

// Event is an input event delivered by the host surface.
type Event interface {
	Kind() EventKind
}

// PointerDown is a primary button press at screen coordinates.
type PointerDown struct{ X, Y float64 }

// PointerMove is a pointer motion at screen coordinates.
type PointerMove struct{ X, Y float64 }

// PointerUp is a primary button release.
type PointerUp struct{ X, Y float64 }

// TouchStart carries every active touch after a finger went down, in order.
type TouchStart struct{ Touches []entity.TouchPoint }

// TouchMove carries every active touch after a move.
type TouchMove struct{ Touches []entity.TouchPoint }

// TouchEnd carries the touches still active after a finger lifted.
type TouchEnd struct{ Touches []entity.TouchPoint }

// KeyDown is a key press. Key accepts terminal, DOM or config spellings.
type KeyDown struct{ Key string }

// ClickTarget tells which part of the overlay was clicked.
type ClickTarget string

const (
	ClickTargetImage      ClickTarget = "image"
	ClickTargetBackground ClickTarget = "background"
)

// Click is a completed click. Bounds is the rendered image box in the same
// coordinate space as X and Y.
type Click struct {
	Target ClickTarget
	X, Y   float64
	Bounds Rect
}

func (PointerDown) Kind() EventKind { return KindPointerDown }
func (PointerMove) Kind() EventKind { return KindPointerMove }
func (PointerUp) Kind() EventKind   { return KindPointerUp }
func (TouchStart) Kind() EventKind  { return KindTouchStart }
func (TouchMove) Kind() EventKind   { return KindTouchMove }
func (TouchEnd) Kind() EventKind    { return KindTouchEnd }
func (KeyDown) Kind() EventKind     { return KindKeyDown }
func (Click) Kind() EventKind       { return KindClick }

// Rect is an axis-aligned box.
type Rect struct {
	X, Y, Width, Height float64
}

// Empty reports whether the box has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether (x, y) lies inside the box.
func (r Rect) Contains(x, y float64) bool {
	return !r.Empty() && x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Percent converts (x, y) into percentages of the box.
// Returns false for an empty box.
func (r Rect) Percent(x, y float64) (px, py float64, ok bool) {
	if r.Empty() {
		return 0, 0, false
	}
	const hundred = 100
	return (x - r.X) / r.Width * hundred, (y - r.Y) / r.Height * hundred, true
}

package input

// PointerGesture turns raw button press, motion and release reports into
// the event sequence a browser would deliver: pointerdown, pointermove*,
// pointerup, then click. Hosts without native click events (terminals) use it.
//
// Releasing after a drag still yields a click on the image, like a browser does;
// the lightbox swallows that click itself.
type PointerGesture struct {
	pressed       bool
	pressedInside bool
}

// Press reports a primary button press at (x, y).
func (g *PointerGesture) Press(x, y float64, bounds Rect) []Event {
	g.pressed = true
	g.pressedInside = bounds.Contains(x, y)
	return []Event{PointerDown{X: x, Y: y}}
}

// Motion reports pointer motion. Motion without a pressed button is dropped.
func (g *PointerGesture) Motion(x, y float64) []Event {
	if !g.pressed {
		return nil
	}
	return []Event{PointerMove{X: x, Y: y}}
}

// Release reports the button release and synthesizes the click.
// A press on the image released outside it produces no click, so that
// dragging past the edge does not close the overlay.
func (g *PointerGesture) Release(x, y float64, bounds Rect) []Event {
	if !g.pressed {
		return nil
	}
	g.pressed = false

	events := []Event{PointerUp{X: x, Y: y}}
	releasedInside := bounds.Contains(x, y)
	switch {
	case releasedInside:
		events = append(events, Click{Target: ClickTargetImage, X: x, Y: y, Bounds: bounds})
	case !g.pressedInside:
		events = append(events, Click{Target: ClickTargetBackground, X: x, Y: y, Bounds: bounds})
	}
	return events
}

// Pressed reports whether a button is held.
func (g *PointerGesture) Pressed() bool {
	return g.pressed
}

// Reset forgets any held button, e.g. when the overlay closes mid-drag.
func (g *PointerGesture) Reset() {
	*g = PointerGesture{}
}

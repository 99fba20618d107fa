package entity

import "math"

// TouchPoint is the position of one active touch.
type TouchPoint struct {
	X float64
	Y float64
}

// Distance returns the Euclidean distance between two touch points.
func Distance(a, b TouchPoint) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b TouchPoint) TouchPoint {
	return TouchPoint{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// DragState tracks an in-progress pan drag.
// The anchor is the pointer position minus the pan offset at drag start,
// so the pan during the drag is simply pointer - anchor.
type DragState struct {
	Active  bool
	AnchorX float64
	AnchorY float64
}

// Begin starts a drag from the given pointer position and current pan.
func (d *DragState) Begin(pointerX, pointerY, panX, panY float64) {
	d.Active = true
	d.AnchorX = pointerX - panX
	d.AnchorY = pointerY - panY
}

// Pan returns the pan offset for the given pointer position.
func (d DragState) Pan(pointerX, pointerY float64) (panX, panY float64) {
	return pointerX - d.AnchorX, pointerY - d.AnchorY
}

// Clear ends the drag.
func (d *DragState) Clear() {
	*d = DragState{}
}

// PinchState tracks an in-progress two-finger pinch.
type PinchState struct {
	Active          bool
	InitialDistance float64
	InitialScale    float64
}

// Begin starts a pinch. A zero distance cannot serve as a ratio baseline
// and leaves the pinch inactive.
func (p *PinchState) Begin(a, b TouchPoint, initialScale float64) bool {
	dist := Distance(a, b)
	if math.IsNaN(dist) || math.IsInf(dist, 0) || dist <= 0 {
		p.Clear()
		return false
	}
	p.Active = true
	p.InitialDistance = dist
	p.InitialScale = initialScale
	return true
}

// Scale returns the unclamped scale for the current touch points.
func (p PinchState) Scale(a, b TouchPoint) float64 {
	if p.InitialDistance <= 0 {
		return p.InitialScale
	}
	return Distance(a, b) / p.InitialDistance * p.InitialScale
}

// Clear ends the pinch.
func (p *PinchState) Clear() {
	*p = PinchState{}
}

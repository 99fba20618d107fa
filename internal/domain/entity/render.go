package entity

import "fmt"

// OriginCenter is the default transform origin, in percent of the image box.
const OriginCenter = 50.0

// Transform describes how the host should draw the displayed image:
// translate by (TranslateX, TranslateY), then scale by Scale around
// the origin (OriginX%, OriginY%) of the image's rendered box.
type Transform struct {
	TranslateX float64
	TranslateY float64
	Scale      float64
	OriginX    float64
	OriginY    float64
}

// IdentityTransform returns the untransformed descriptor.
func IdentityTransform() Transform {
	return Transform{Scale: ScaleDefault, OriginX: OriginCenter, OriginY: OriginCenter}
}

// String formats the transform in CSS syntax.
func (t Transform) String() string {
	return fmt.Sprintf("translate(%gpx, %gpx) scale(%g)", t.TranslateX, t.TranslateY, t.Scale)
}

// OriginString formats the transform origin in CSS syntax.
func (t Transform) OriginString() string {
	return fmt.Sprintf("%g%% %g%%", t.OriginX, t.OriginY)
}

// Apply maps a point of the untransformed image box (w x h) to its
// on-screen position under the transform.
func (t Transform) Apply(x, y, w, h float64) (float64, float64) {
	ox := t.OriginX / 100 * w
	oy := t.OriginY / 100 * h
	return ox + (x-ox)*t.Scale + t.TranslateX, oy + (y-oy)*t.Scale + t.TranslateY
}

// Invert maps an on-screen point back into the untransformed image box.
func (t Transform) Invert(x, y, w, h float64) (float64, float64) {
	scale := t.Scale
	if scale == 0 {
		scale = ScaleDefault
	}
	ox := t.OriginX / 100 * w
	oy := t.OriginY / 100 * h
	return ox + (x-t.TranslateX-ox)/scale, oy + (y-t.TranslateY-oy)/scale
}

// RenderOutput is everything the host needs to draw the lightbox.
type RenderOutput struct {
	Visible   bool
	Image     *Image // nil while closed
	Index     int    // -1 while closed
	Count     int
	Transform Transform
	Cursor    Cursor
}

// ClosedOutput returns the render output of a hidden lightbox.
func ClosedOutput() RenderOutput {
	return RenderOutput{
		Index:     -1,
		Transform: IdentityTransform(),
		Cursor:    CursorNeutral,
	}
}

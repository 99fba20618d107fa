// Package entity defines domain entities for the lightbox.
package entity

import "math"

// Scale constants for the lightbox view.
const (
	ScaleDefault = 1.0 // identity, image fits the overlay
	ScaleMin     = 1.0
	ScaleMax     = 4.0
	ScaleZoomed  = 2.0 // scale applied by a click zoom-in
)

// ViewState is the zoom and pan state of the displayed image.
// PanX/PanY are only meaningful while Zoomed is true.
type ViewState struct {
	PanX   float64
	PanY   float64
	Zoomed bool
	Scale  float64
}

// IdentityView returns the unzoomed, centered view.
func IdentityView() ViewState {
	return ViewState{Scale: ScaleDefault}
}

// IsIdentity reports whether the view is unzoomed and centered.
func (v ViewState) IsIdentity() bool {
	return !v.Zoomed && v.Scale == ScaleDefault && v.PanX == 0 && v.PanY == 0
}

// Reset restores the identity view.
func (v *ViewState) Reset() {
	*v = IdentityView()
}

// SetScale updates the scale, clamping it to [min, max].
// Zoomed follows the resulting scale.
func (v *ViewState) SetScale(scale, minScale, maxScale float64) {
	v.Scale = ClampScale(scale, minScale, maxScale)
	v.Zoomed = v.Scale > minScale
}

// Percentage returns the scale as a percentage (e.g., 200 for 2.0).
func (v ViewState) Percentage() int {
	return int(v.Scale * 100)
}

// ClampScale constrains a scale factor to [minScale, maxScale].
func ClampScale(scale, minScale, maxScale float64) float64 {
	if math.IsNaN(scale) || scale < minScale {
		return minScale
	}
	if scale > maxScale {
		return maxScale
	}
	return scale
}

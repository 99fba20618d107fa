// Package raster draws a lightbox image under its view transform into a
// terminal-sized pixel grid.
package raster

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/bnema/lightbox/internal/domain/entity"
)

// Quality selects the interpolator used when scaling.
type Quality string

const (
	QualityFast Quality = "fast"
	QualityHigh Quality = "high"
)

func (q Quality) interpolator() draw.Interpolator {
	if q == QualityHigh {
		return draw.CatmullRom
	}
	return draw.ApproxBiLinear
}

// Viewport is the drawable area in pixels. In a terminal each cell holds
// two vertically stacked pixels, see CellViewport.
type Viewport struct {
	Width  int
	Height int
}

// CellViewport returns the pixel viewport of a cols x rows cell area.
func CellViewport(cols, rows int) Viewport {
	return Viewport{Width: cols, Height: rows * 2}
}

// Frame is a rendered viewport.
type Frame struct {
	Pixels *image.RGBA
	// Box is the untransformed image box: the source fitted and centered
	// in the viewport.
	Box image.Rectangle
	// Bounds is Box after the transform, unclipped.
	Bounds image.Rectangle
}

// Fit returns the largest rectangle with the source aspect ratio that fits
// the viewport, centered in it. Images are never upscaled.
func Fit(srcW, srcH int, vp Viewport) image.Rectangle {
	if srcW <= 0 || srcH <= 0 || vp.Width <= 0 || vp.Height <= 0 {
		return image.Rectangle{}
	}

	k := math.Min(float64(vp.Width)/float64(srcW), float64(vp.Height)/float64(srcH))
	if k > 1 {
		k = 1
	}
	w := max(1, int(math.Round(float64(srcW)*k)))
	h := max(1, int(math.Round(float64(srcH)*k)))

	x := (vp.Width - w) / 2
	y := (vp.Height - h) / 2
	return image.Rect(x, y, x+w, y+h)
}

// Render draws src under t into a fresh frame filled with bg.
func Render(src image.Image, t entity.Transform, vp Viewport, bg color.Color, q Quality) *Frame {
	dst := image.NewRGBA(image.Rect(0, 0, max(vp.Width, 0), max(vp.Height, 0)))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	frame := &Frame{Pixels: dst}
	if src == nil {
		return frame
	}

	sb := src.Bounds()
	box := Fit(sb.Dx(), sb.Dy(), vp)
	if box.Empty() {
		return frame
	}
	frame.Box = box
	frame.Bounds = transformedBounds(box, t)

	q.interpolator().Transform(dst, sourceToViewport(sb, box, t), src, sb, draw.Over, nil)
	return frame
}

// sourceToViewport composes the fit scaling with the view transform.
// A source pixel s lands at box.Min + o + (k*(s-sb.Min) - o)*scale + translate,
// where o is the transform origin inside the box.
func sourceToViewport(sb, box image.Rectangle, t entity.Transform) f64.Aff3 {
	scale := t.Scale
	if scale <= 0 {
		scale = entity.ScaleDefault
	}
	kx := float64(box.Dx()) / float64(sb.Dx())
	ky := float64(box.Dy()) / float64(sb.Dy())
	ox := t.OriginX / 100 * float64(box.Dx())
	oy := t.OriginY / 100 * float64(box.Dy())

	return f64.Aff3{
		kx * scale, 0, float64(box.Min.X) + ox*(1-scale) + t.TranslateX - kx*scale*float64(sb.Min.X),
		0, ky * scale, float64(box.Min.Y) + oy*(1-scale) + t.TranslateY - ky*scale*float64(sb.Min.Y),
	}
}

func transformedBounds(box image.Rectangle, t entity.Transform) image.Rectangle {
	w, h := float64(box.Dx()), float64(box.Dy())
	x0, y0 := t.Apply(0, 0, w, h)
	x1, y1 := t.Apply(w, h, w, h)
	return image.Rect(
		box.Min.X+int(math.Round(x0)), box.Min.Y+int(math.Round(y0)),
		box.Min.X+int(math.Round(x1)), box.Min.Y+int(math.Round(y1)),
	)
}

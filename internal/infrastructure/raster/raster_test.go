package raster

import (
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/lightbox/internal/cache/generic"
	"github.com/bnema/lightbox/internal/domain/entity"
)

var (
	red   = color.RGBA{R: 0xff, A: 0xff}
	black = color.RGBA{A: 0xff}
)

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestFit(t *testing.T) {
	tests := []struct {
		name       string
		srcW, srcH int
		vp         Viewport
		want       image.Rectangle
	}{
		{"small image stays native and centered", 10, 6, Viewport{20, 20}, image.Rect(5, 7, 15, 13)},
		{"wide image limited by width", 200, 100, Viewport{40, 40}, image.Rect(0, 10, 40, 30)},
		{"tall image limited by height", 100, 200, Viewport{40, 40}, image.Rect(10, 0, 30, 40)},
		{"empty source", 0, 10, Viewport{40, 40}, image.Rectangle{}},
		{"empty viewport", 10, 10, Viewport{}, image.Rectangle{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Fit(tt.srcW, tt.srcH, tt.vp))
		})
	}
}

func TestCellViewport(t *testing.T) {
	assert.Equal(t, Viewport{Width: 80, Height: 48}, CellViewport(80, 24))
}

func TestRender_Identity(t *testing.T) {
	frame := Render(solid(10, 6, red), entity.IdentityTransform(), Viewport{20, 20}, black, QualityFast)

	assert.Equal(t, image.Rect(5, 7, 15, 13), frame.Box)
	assert.Equal(t, frame.Box, frame.Bounds)
	assert.Equal(t, red, frame.Pixels.RGBAAt(10, 10))
	assert.Equal(t, black, frame.Pixels.RGBAAt(0, 0))
	assert.Equal(t, black, frame.Pixels.RGBAAt(10, 2))
}

func TestRender_ScaleAroundCenter(t *testing.T) {
	tr := entity.Transform{Scale: 2, OriginX: 50, OriginY: 50}
	frame := Render(solid(10, 6, red), tr, Viewport{20, 20}, black, QualityHigh)

	assert.Equal(t, image.Rect(5, 7, 15, 13), frame.Box)
	assert.Equal(t, image.Rect(0, 4, 20, 16), frame.Bounds)
	assert.Equal(t, red, frame.Pixels.RGBAAt(2, 6))
	assert.Equal(t, red, frame.Pixels.RGBAAt(17, 14))
	assert.Equal(t, black, frame.Pixels.RGBAAt(10, 2))
}

func TestRender_ScaleAroundCorner(t *testing.T) {
	tr := entity.Transform{Scale: 2, OriginX: 0, OriginY: 0}
	frame := Render(solid(10, 6, red), tr, Viewport{20, 20}, black, QualityFast)

	// The top-left corner stays put.
	assert.Equal(t, image.Rect(5, 7, 25, 19), frame.Bounds)
	assert.Equal(t, black, frame.Pixels.RGBAAt(3, 5))
	assert.Equal(t, red, frame.Pixels.RGBAAt(18, 17))
}

func TestRender_Translate(t *testing.T) {
	tr := entity.IdentityTransform()
	tr.TranslateX = 3
	frame := Render(solid(10, 6, red), tr, Viewport{20, 20}, black, QualityFast)

	assert.Equal(t, image.Rect(8, 7, 18, 13), frame.Bounds)
	assert.Equal(t, red, frame.Pixels.RGBAAt(16, 10))
	assert.Equal(t, black, frame.Pixels.RGBAAt(6, 10))
}

func TestRender_NilSource(t *testing.T) {
	frame := Render(nil, entity.IdentityTransform(), Viewport{4, 4}, red, QualityFast)

	assert.True(t, frame.Box.Empty())
	assert.Equal(t, red, frame.Pixels.RGBAAt(3, 3))
}

func TestFrame_Lines(t *testing.T) {
	frame := Render(solid(3, 4, red), entity.IdentityTransform(), CellViewport(3, 2), black, QualityFast)

	lines := frame.Lines()
	require.Len(t, lines, 2)
	for _, line := range lines {
		assert.Equal(t, 3, strings.Count(line, upperHalfBlock))
	}
	assert.Equal(t, strings.Join(lines, "\n"), frame.String())

	var nilFrame *Frame
	assert.Nil(t, nilFrame.Lines())
}

func TestFrame_Lines_OddHeight(t *testing.T) {
	frame := Render(nil, entity.IdentityTransform(), Viewport{2, 3}, black, QualityFast)
	assert.Len(t, frame.Lines(), 2)
}

func TestHex(t *testing.T) {
	assert.Equal(t, "#ff0000", Hex(red))
	assert.Equal(t, "#0a0a0b", Hex(color.RGBA{R: 0x0a, G: 0x0a, B: 0x0b}))
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{in: "#ff0000", want: red},
		{in: "#4ade80", want: color.RGBA{R: 0x4a, G: 0xde, B: 0x80, A: 0xff}},
		{in: "#fff", want: color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
		{in: "ff0000", wantErr: true},
		{in: "#ff00", wantErr: true},
		{in: "#gg0000", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStore_CachesDecodedImages(t *testing.T) {
	var loads atomic.Int32
	store := NewStoreWithLoader(2, generic.LoaderFunc[string, image.Image](func(ctx context.Context, url string) (image.Image, error) {
		loads.Add(1)
		return solid(1, 1, red), nil
	}))

	for i := 0; i < 3; i++ {
		img, err := store.Image(context.Background(), "a.png")
		require.NoError(t, err)
		assert.Equal(t, 1, img.Bounds().Dx())
	}
	assert.Equal(t, int32(1), loads.Load())
	assert.Equal(t, 1, store.Len())
}

func TestStore_DecodesFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "img.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, solid(4, 3, red)))
	require.NoError(t, f.Close())

	store := NewStore(4)
	img, err := store.Image(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 3), img.Bounds())

	_, err = store.Image(context.Background(), filepath.Join(dir, "missing.png"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

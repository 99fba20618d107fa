package input

import (
	"context"
	"fmt"
	"testing"

	"github.com/bnema/lightbox/internal/application/usecase"
	"github.com/bnema/lightbox/internal/domain/entity"
	"github.com/bnema/lightbox/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingLightbox records the operations it receives.
type recordingLightbox struct {
	open  bool
	calls []string
}

func (r *recordingLightbox) record(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recordingLightbox) IsOpen() bool             { return r.open }
func (r *recordingLightbox) Close(context.Context)    { r.record("Close") }
func (r *recordingLightbox) EndDrag(context.Context)  { r.record("EndDrag") }
func (r *recordingLightbox) EndPinch(context.Context) { r.record("EndPinch") }
func (r *recordingLightbox) BeginDrag(_ context.Context, x, y float64) {
	r.record("BeginDrag(%g,%g)", x, y)
}
func (r *recordingLightbox) UpdateDrag(_ context.Context, x, y float64) {
	r.record("UpdateDrag(%g,%g)", x, y)
}
func (r *recordingLightbox) ToggleZoomAtPoint(_ context.Context, px, py float64) {
	r.record("ToggleZoomAtPoint(%g,%g)", px, py)
}
func (r *recordingLightbox) BeginPinch(_ context.Context, a, b entity.TouchPoint) {
	r.record("BeginPinch(%g,%g %g,%g)", a.X, a.Y, b.X, b.Y)
}
func (r *recordingLightbox) UpdatePinch(_ context.Context, a, b entity.TouchPoint) {
	r.record("UpdatePinch(%g,%g %g,%g)", a.X, a.Y, b.X, b.Y)
}
func (r *recordingLightbox) HandleKey(_ context.Context, key string) bool {
	r.record("HandleKey(%s)", key)
	return true
}

func tp(x, y float64) entity.TouchPoint { return entity.TouchPoint{X: x, Y: y} }

func TestDispatcher_Routing(t *testing.T) {
	imageBox := Rect{X: 10, Y: 20, Width: 200, Height: 100}

	tests := []struct {
		name      string
		event     Event
		want      []string
		wantTaken bool
	}{
		{"pointer down", PointerDown{X: 1, Y: 2}, []string{"BeginDrag(1,2)"}, true},
		{"pointer move", PointerMove{X: 3, Y: 4}, []string{"UpdateDrag(3,4)"}, true},
		{"pointer up", PointerUp{X: 3, Y: 4}, []string{"EndDrag"}, true},
		{"touch start one", TouchStart{Touches: []entity.TouchPoint{tp(5, 6)}}, []string{"BeginDrag(5,6)"}, true},
		{"touch start two", TouchStart{Touches: []entity.TouchPoint{tp(0, 0), tp(100, 0)}}, []string{"BeginPinch(0,0 100,0)"}, true},
		{"touch start three", TouchStart{Touches: []entity.TouchPoint{tp(0, 0), tp(1, 1), tp(2, 2)}}, nil, true},
		{"touch move one", TouchMove{Touches: []entity.TouchPoint{tp(7, 8)}}, []string{"UpdateDrag(7,8)"}, true},
		{"touch move two", TouchMove{Touches: []entity.TouchPoint{tp(0, 0), tp(200, 0)}}, []string{"UpdatePinch(0,0 200,0)"}, true},
		{"touch end one left", TouchEnd{Touches: []entity.TouchPoint{tp(1, 1)}}, []string{"EndPinch"}, true},
		{"touch end none left", TouchEnd{}, []string{"EndPinch", "EndDrag"}, true},
		{"touch end two left", TouchEnd{Touches: []entity.TouchPoint{tp(0, 0), tp(1, 1)}}, nil, true},
		{"click background", Click{Target: ClickTargetBackground, X: 0, Y: 0}, []string{"Close"}, true},
		{"click image center", Click{Target: ClickTargetImage, X: 110, Y: 70, Bounds: imageBox}, []string{"ToggleZoomAtPoint(50,50)"}, true},
		{"click image corner", Click{Target: ClickTargetImage, X: 60, Y: 95, Bounds: imageBox}, []string{"ToggleZoomAtPoint(25,75)"}, true},
		{"click image without bounds", Click{Target: ClickTargetImage, X: 1, Y: 1}, nil, false},
		{"key escape", KeyDown{Key: "esc"}, []string{"HandleKey(Escape)"}, true},
		{"key arrow left", KeyDown{Key: "ArrowLeft"}, []string{"HandleKey(ArrowLeft)"}, true},
		{"key vim next", KeyDown{Key: "l"}, []string{"HandleKey(ArrowRight)"}, true},
		{"unbound key", KeyDown{Key: "enter"}, nil, false},
	}

	table := NewShortcutTable(context.Background(), &config.DefaultConfig().Keybindings)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lb := &recordingLightbox{open: true}
			d := NewDispatcher(lb, table)

			taken := d.Dispatch(context.Background(), tt.event)

			assert.Equal(t, tt.wantTaken, taken)
			assert.Equal(t, tt.want, lb.calls)
		})
	}
}

func TestDispatcher_IgnoresEventsWhileClosed(t *testing.T) {
	lb := &recordingLightbox{open: false}
	d := NewDispatcher(lb, nil)

	assert.False(t, d.Dispatch(context.Background(), PointerDown{X: 1, Y: 1}))
	assert.False(t, d.Dispatch(context.Background(), KeyDown{Key: "esc"}))
	assert.False(t, d.Dispatch(context.Background(), nil))
	assert.Empty(t, lb.calls)
}

func TestDispatcher_SetShortcuts(t *testing.T) {
	lb := &recordingLightbox{open: true}
	d := NewDispatcher(lb, nil)
	assert.False(t, d.Dispatch(context.Background(), KeyDown{Key: "x"}))

	d.SetShortcuts(NewShortcutTable(context.Background(), &config.KeybindingsConfig{Close: []string{"x"}}))

	assert.True(t, d.Dispatch(context.Background(), KeyDown{Key: "x"}))
	assert.Equal(t, []string{"HandleKey(Escape)"}, lb.calls)
}

func TestDispatcher_CapturesIgnoredPointerEvents(t *testing.T) {
	ctx := context.Background()
	c := usecase.NewLightboxController(usecase.DefaultLightboxConfig(), nil)
	d := NewDispatcher(c, nil)
	require.True(t, c.Open(ctx, []entity.Image{{URL: "a.jpg"}}, 0))

	assert.True(t, d.Dispatch(ctx, PointerDown{X: 10, Y: 10}))
	assert.False(t, c.IsDragging(), "no drag while unzoomed")
	assert.True(t, c.View().IsIdentity())

	assert.False(t, d.Dispatch(ctx, KeyDown{Key: "space"}))
}

func TestDispatcher_DrivesController(t *testing.T) {
	ctx := context.Background()
	images := []entity.Image{{URL: "a.jpg"}, {URL: "b.jpg"}, {URL: "c.jpg"}}
	box := Rect{Width: 400, Height: 300}

	t.Run("pointer session", func(t *testing.T) {
		c := usecase.NewLightboxController(usecase.DefaultLightboxConfig(), nil)
		d := NewDispatcher(c, NewShortcutTable(ctx, &config.DefaultConfig().Keybindings))
		require.True(t, c.Open(ctx, images, 0))

		d.Dispatch(ctx, Click{Target: ClickTargetImage, X: 200, Y: 150, Bounds: box})
		require.True(t, c.View().Zoomed)

		var gesture PointerGesture
		for _, ev := range gesture.Press(100, 100, box) {
			d.Dispatch(ctx, ev)
		}
		for _, ev := range gesture.Motion(130, 90) {
			d.Dispatch(ctx, ev)
		}
		for _, ev := range gesture.Release(130, 90, box) {
			d.Dispatch(ctx, ev)
		}

		view := c.View()
		assert.True(t, view.Zoomed, "release click after drag is swallowed")
		assert.Equal(t, 30.0, view.PanX)
		assert.Equal(t, -10.0, view.PanY)

		d.Dispatch(ctx, KeyDown{Key: "right"})
		assert.Equal(t, 1, c.Index())
		assert.False(t, c.View().Zoomed)

		d.Dispatch(ctx, KeyDown{Key: "esc"})
		assert.False(t, c.IsOpen())
	})

	t.Run("touch session", func(t *testing.T) {
		cfg := usecase.DefaultLightboxConfig()
		cfg.InputMode = entity.InputModeTouch
		c := usecase.NewLightboxController(cfg, nil)
		d := NewDispatcher(c, nil)
		require.True(t, c.Open(ctx, images, 2))

		d.Dispatch(ctx, TouchStart{Touches: []entity.TouchPoint{tp(0, 0)}})
		d.Dispatch(ctx, TouchStart{Touches: []entity.TouchPoint{tp(0, 0), tp(100, 0)}})
		d.Dispatch(ctx, TouchMove{Touches: []entity.TouchPoint{tp(0, 0), tp(200, 0)}})
		assert.InDelta(t, 2.0, c.View().Scale, 1e-9)

		d.Dispatch(ctx, TouchMove{Touches: []entity.TouchPoint{tp(0, 0), tp(500, 0)}})
		assert.Equal(t, 4.0, c.View().Scale)

		d.Dispatch(ctx, TouchEnd{Touches: []entity.TouchPoint{tp(0, 0)}})
		assert.False(t, c.IsPinching())
		d.Dispatch(ctx, TouchEnd{})

		d.Dispatch(ctx, Click{Target: ClickTargetImage, X: 10, Y: 10, Bounds: box})
		assert.Equal(t, 4.0, c.View().Scale, "click zoom is pointer only")

		d.Dispatch(ctx, Click{Target: ClickTargetBackground})
		assert.False(t, c.IsOpen())
	})
}

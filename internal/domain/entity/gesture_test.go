package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b TouchPoint
		want float64
	}{
		{"same point", TouchPoint{10, 10}, TouchPoint{10, 10}, 0},
		{"horizontal", TouchPoint{0, 0}, TouchPoint{100, 0}, 100},
		{"3-4-5", TouchPoint{0, 0}, TouchPoint{30, 40}, 50},
		{"order independent", TouchPoint{30, 40}, TouchPoint{0, 0}, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Distance(tt.a, tt.b), 1e-9)
		})
	}
}

func TestDragState_PanFollowsPointer(t *testing.T) {
	var d DragState
	d.Begin(100, 50, 20, 10)

	assert.True(t, d.Active)
	assert.Equal(t, 80.0, d.AnchorX)
	assert.Equal(t, 40.0, d.AnchorY)

	x, y := d.Pan(130, 45)
	assert.Equal(t, 50.0, x)
	assert.Equal(t, 5.0, y)

	d.Clear()
	assert.False(t, d.Active)
}

func TestPinchState_ScaleIsRatioTimesBaseline(t *testing.T) {
	var p PinchState
	ok := p.Begin(TouchPoint{0, 0}, TouchPoint{100, 0}, 1)

	assert.True(t, ok)
	assert.InDelta(t, 2.0, p.Scale(TouchPoint{0, 0}, TouchPoint{200, 0}), 1e-9)
	assert.InDelta(t, 5.0, p.Scale(TouchPoint{0, 0}, TouchPoint{500, 0}), 1e-9)
}

func TestPinchState_ZeroDistanceRefused(t *testing.T) {
	var p PinchState
	ok := p.Begin(TouchPoint{5, 5}, TouchPoint{5, 5}, 2)

	assert.False(t, ok)
	assert.False(t, p.Active)
}

func TestPinchState_NonFiniteDistanceRefused(t *testing.T) {
	var p PinchState

	assert.False(t, p.Begin(TouchPoint{X: math.NaN(), Y: 0}, TouchPoint{X: 10, Y: 0}, 1))
	assert.False(t, p.Active)
	assert.False(t, p.Begin(TouchPoint{X: math.Inf(1), Y: 0}, TouchPoint{X: 10, Y: 0}, 1))
	assert.False(t, p.Active)
}

func TestClampScale_NaN(t *testing.T) {
	assert.Equal(t, ScaleMin, ClampScale(math.NaN(), ScaleMin, ScaleMax))
}

func TestViewState_SetScaleClamps(t *testing.T) {
	v := IdentityView()

	v.SetScale(10, ScaleMin, ScaleMax)
	assert.Equal(t, ScaleMax, v.Scale)
	assert.True(t, v.Zoomed)

	v.SetScale(0.2, ScaleMin, ScaleMax)
	assert.Equal(t, ScaleMin, v.Scale)
	assert.False(t, v.Zoomed)

	v.PanX = 12
	v.Reset()
	assert.True(t, v.IsIdentity())
}

func TestTransform_ApplyInvertRoundTrip(t *testing.T) {
	tr := Transform{TranslateX: 15, TranslateY: -8, Scale: 2, OriginX: 25, OriginY: 75}

	x, y := tr.Apply(40, 60, 200, 100)
	bx, by := tr.Invert(x, y, 200, 100)

	assert.InDelta(t, 40, bx, 1e-9)
	assert.InDelta(t, 60, by, 1e-9)
	assert.Equal(t, "translate(15px, -8px) scale(2)", tr.String())
	assert.Equal(t, "25% 75%", tr.OriginString())
}

package replay

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/lightbox/internal/application/usecase"
	"github.com/bnema/lightbox/internal/domain/entity"
	"github.com/bnema/lightbox/internal/infrastructure/config"
	"github.com/bnema/lightbox/internal/ui/input"
)

const inlineOpen = `{"type":"open","images":[{"url":"a.jpg"},{"url":"b.jpg"},{"url":"c.jpg"}]}`

func newPlayer(t *testing.T, mode entity.InputMode, opener GroupOpener) (*Player, *usecase.LightboxController) {
	t.Helper()
	cfg := usecase.DefaultLightboxConfig()
	cfg.InputMode = mode
	ctrl := usecase.NewLightboxController(cfg, nil)

	shortcuts := input.NewShortcutTable(context.Background(), &config.DefaultConfig().Keybindings)
	return NewPlayer(ctrl, input.NewDispatcher(ctrl, shortcuts), opener), ctrl
}

func play(t *testing.T, p *Player, script string) []Result {
	t.Helper()
	steps, err := Parse(strings.NewReader(script))
	require.NoError(t, err)

	var results []Result
	require.NoError(t, p.Run(context.Background(), steps, func(r Result) {
		results = append(results, r)
	}))
	return results
}

func TestParse(t *testing.T) {
	script := `
# pointer session
` + inlineOpen + `
{"type":"click","target":"image","x":25,"y":100,"bounds":{"x":0,"y":0,"width":100,"height":100}}

{"type":"keydown","key":"Escape"}
`
	steps, err := Parse(strings.NewReader(script))
	require.NoError(t, err)
	require.Len(t, steps, 3)

	assert.Equal(t, 3, steps[0].Line)
	assert.Nil(t, steps[0].Event)
	assert.Len(t, steps[0].Record.Images, 3)

	assert.Equal(t, 4, steps[1].Line)
	assert.Equal(t, input.Click{
		Target: input.ClickTargetImage,
		X:      25, Y: 100,
		Bounds: input.Rect{Width: 100, Height: 100},
	}, steps[1].Event)

	assert.Equal(t, 6, steps[2].Line)
	assert.Equal(t, input.KeyDown{Key: "Escape"}, steps[2].Event)
}

func TestParseLine_Events(t *testing.T) {
	tests := []struct {
		line string
		want input.Event
	}{
		{`{"type":"pointerdown","x":1,"y":2}`, input.PointerDown{X: 1, Y: 2}},
		{`{"type":"pointermove","x":3,"y":4}`, input.PointerMove{X: 3, Y: 4}},
		{`{"type":"pointerup"}`, input.PointerUp{}},
		{
			`{"type":"touchstart","touches":[{"x":1,"y":1},{"x":2,"y":2}]}`,
			input.TouchStart{Touches: []entity.TouchPoint{{X: 1, Y: 1}, {X: 2, Y: 2}}},
		},
		{`{"type":"touchmove","touches":[{"x":5,"y":6}]}`, input.TouchMove{Touches: []entity.TouchPoint{{X: 5, Y: 6}}}},
		{`{"type":"touchend","touches":[]}`, input.TouchEnd{Touches: []entity.TouchPoint{}}},
		{`{"type":"click","target":"background"}`, input.Click{Target: input.ClickTargetBackground}},
		{`{"type":"close"}`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			step, err := ParseLine([]byte(tt.line))
			require.NoError(t, err)
			assert.Equal(t, tt.want, step.Event)
		})
	}
}

func TestParseLine_Errors(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		wantErr error
	}{
		{"unknown type", `{"type":"wheel"}`, ErrUnknownEvent},
		{"missing type", `{"x":1}`, ErrInvalidRecord},
		{"bad json", `{"type":`, ErrInvalidRecord},
		{"unknown field", `{"type":"pointerdown","pressure":0.5}`, ErrInvalidRecord},
		{"keydown without key", `{"type":"keydown"}`, ErrInvalidRecord},
		{"image click without bounds", `{"type":"click","target":"image"}`, ErrInvalidRecord},
		{"click with bad target", `{"type":"click","target":"caption"}`, ErrInvalidRecord},
		{"empty open", `{"type":"open"}`, ErrInvalidRecord},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLine([]byte(tt.line))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParse_ReportsLine(t *testing.T) {
	_, err := Parse(strings.NewReader(inlineOpen + "\n\n{\"type\":\"scroll\"}\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownEvent)
	assert.Contains(t, err.Error(), "line 3")
}

func TestPlayer_PointerSession(t *testing.T) {
	p, ctrl := newPlayer(t, entity.InputModePointer, nil)

	results := play(t, p, inlineOpen+`
{"type":"click","target":"image","x":25,"y":100,"bounds":{"x":0,"y":0,"width":100,"height":100}}
{"type":"pointerdown","x":100,"y":100}
{"type":"pointermove","x":140,"y":100}
{"type":"pointerup","x":140,"y":100}
{"type":"click","target":"image","x":50,"y":50,"bounds":{"x":0,"y":0,"width":100,"height":100}}
{"type":"keydown","key":"ArrowRight"}
{"type":"keydown","key":"Escape"}
`)
	require.Len(t, results, 8)

	zoomed := results[1].Output
	assert.Equal(t, 2.0, zoomed.Transform.Scale)
	assert.Equal(t, "25% 100%", zoomed.Transform.OriginString())

	dragged := results[3].Output
	assert.Equal(t, "translate(40px, 0px) scale(2)", dragged.Transform.String())
	assert.Equal(t, entity.CursorGrabbing, dragged.Cursor)

	// The click synthesized by the drag release does not zoom out.
	suppressed := results[5].Output
	assert.Equal(t, 2.0, suppressed.Transform.Scale)

	next := results[6].Output
	assert.Equal(t, 1, next.Index)
	assert.Equal(t, 1.0, next.Transform.Scale)

	assert.False(t, results[7].Output.Visible)
	assert.False(t, ctrl.IsOpen())
}

func TestPlayer_TouchPinch(t *testing.T) {
	p, _ := newPlayer(t, entity.InputModeTouch, nil)

	results := play(t, p, inlineOpen+`
{"type":"click","target":"image","x":50,"y":50,"bounds":{"x":0,"y":0,"width":100,"height":100}}
{"type":"touchstart","touches":[{"x":100,"y":100},{"x":200,"y":100}]}
{"type":"touchmove","touches":[{"x":100,"y":100},{"x":300,"y":100}]}
{"type":"touchmove","touches":[{"x":0,"y":100},{"x":1000,"y":100}]}
{"type":"touchend","touches":[{"x":0,"y":100}]}
{"type":"touchend","touches":[]}
`)
	require.Len(t, results, 7)

	assert.Equal(t, 1.0, results[1].Output.Transform.Scale, "clicks never zoom in touch mode")
	assert.Equal(t, 2.0, results[3].Output.Transform.Scale)
	assert.Equal(t, 4.0, results[4].Output.Transform.Scale)
	assert.Equal(t, entity.CursorGrab, results[6].Output.Cursor)
}

type fakeOpener struct {
	ctrl *usecase.LightboxController
	in   usecase.OpenGalleryInput
	err  error
}

func (f *fakeOpener) Execute(ctx context.Context, in usecase.OpenGalleryInput) (*usecase.OpenGalleryOutput, error) {
	f.in = in
	if f.err != nil {
		return nil, f.err
	}
	f.ctrl.Open(ctx, []entity.Image{{URL: "x.jpg"}, {URL: "y.jpg"}}, in.StartIndex)
	return &usecase.OpenGalleryOutput{Index: in.StartIndex}, nil
}

func TestPlayer_OpenGroup(t *testing.T) {
	opener := &fakeOpener{}
	p, ctrl := newPlayer(t, entity.InputModePointer, opener)
	opener.ctrl = ctrl

	results := play(t, p, `{"type":"open","group":"services","index":1}`)
	require.Len(t, results, 1)
	assert.Equal(t, entity.GroupID("services"), opener.in.GroupID)
	assert.Equal(t, 1, results[0].Output.Index)
	assert.True(t, results[0].Consumed)
}

func TestPlayer_OpenErrors(t *testing.T) {
	t.Run("no gallery", func(t *testing.T) {
		p, _ := newPlayer(t, entity.InputModePointer, nil)
		steps, err := Parse(strings.NewReader(`{"type":"open","group":"services"}`))
		require.NoError(t, err)

		err = p.Run(context.Background(), steps, nil)
		assert.ErrorIs(t, err, ErrNoGallery)
	})

	t.Run("opener failure", func(t *testing.T) {
		boom := errors.New("boom")
		p, _ := newPlayer(t, entity.InputModePointer, &fakeOpener{err: boom})
		steps, err := Parse(strings.NewReader(`{"type":"open","group":"services"}`))
		require.NoError(t, err)

		err = p.Run(context.Background(), steps, nil)
		assert.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "line 1")
	})

	t.Run("inline index out of range", func(t *testing.T) {
		p, _ := newPlayer(t, entity.InputModePointer, nil)
		steps, err := Parse(strings.NewReader(`{"type":"open","index":3,"images":[{"url":"a.jpg"}]}`))
		require.NoError(t, err)

		err = p.Run(context.Background(), steps, nil)
		assert.ErrorIs(t, err, ErrInvalidRecord)
	})
}

func TestPlayer_EventsWhileClosed(t *testing.T) {
	p, _ := newPlayer(t, entity.InputModePointer, nil)

	results := play(t, p, `{"type":"keydown","key":"ArrowRight"}
{"type":"close"}`)
	require.Len(t, results, 2)
	for _, r := range results {
		assert.False(t, r.Consumed)
		assert.False(t, r.Output.Visible)
	}
}

func TestPlayer_CanceledContext(t *testing.T) {
	p, _ := newPlayer(t, entity.InputModePointer, nil)
	steps, err := Parse(strings.NewReader(inlineOpen))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, p.Run(ctx, steps, nil), context.Canceled)
}

func TestResult_String(t *testing.T) {
	closed := Result{Step: Step{Line: 7, Record: Record{Type: "keydown"}}, Output: entity.ClosedOutput()}
	assert.Equal(t, "   7   keydown     closed", closed.String())

	open := Result{
		Step:     Step{Line: 2, Record: Record{Type: "click"}},
		Consumed: true,
		Output: entity.RenderOutput{
			Visible: true, Index: 0, Count: 3,
			Transform: entity.Transform{Scale: 2, OriginX: 25, OriginY: 100},
			Cursor:    entity.CursorZoomOut,
		},
	}
	assert.Equal(t, "   2 * click       1/3 translate(0px, 0px) scale(2) origin=25% 100% cursor=zoom-out", open.String())
}

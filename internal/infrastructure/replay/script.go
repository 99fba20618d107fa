// Package replay reads lightbox input scripts and plays them through the
// input dispatcher. A script is JSON lines, one record per host event:
//
//	{"type":"open","group":"services","index":1}
//	{"type":"touchstart","touches":[{"x":100,"y":100},{"x":200,"y":100}]}
//	{"type":"click","target":"image","x":30,"y":40,"bounds":{"x":0,"y":0,"width":120,"height":80}}
//	{"type":"keydown","key":"ArrowRight"}
//
// Blank lines and lines starting with # are ignored.
package replay

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/lightbox/internal/domain/entity"
	"github.com/bnema/lightbox/internal/ui/input"
)

var (
	// ErrUnknownEvent is returned for a record whose type is not recognized.
	ErrUnknownEvent = errors.New("unknown replay event")
	// ErrInvalidRecord is returned for malformed or incomplete records.
	ErrInvalidRecord = errors.New("invalid replay record")
)

// Record types that are not input events.
const (
	TypeOpen  = "open"
	TypeClose = "close"
)

const maxLineSize = 1 << 20

// Point is a touch position.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Bounds is the rendered image box of a click.
type Bounds struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// ImageRecord is an inline image for open records without a group.
type ImageRecord struct {
	URL string `json:"url"`
	Alt string `json:"alt,omitempty"`
}

// Record is one decoded script line.
type Record struct {
	Type    string        `json:"type"`
	X       float64       `json:"x,omitempty"`
	Y       float64       `json:"y,omitempty"`
	Touches []Point       `json:"touches,omitempty"`
	Key     string        `json:"key,omitempty"`
	Target  string        `json:"target,omitempty"`
	Bounds  *Bounds       `json:"bounds,omitempty"`
	Group   string        `json:"group,omitempty"`
	Index   int           `json:"index,omitempty"`
	URL     string        `json:"url,omitempty"`
	Images  []ImageRecord `json:"images,omitempty"`
}

// Step is a parsed record with its source line. Event is nil for open
// and close records.
type Step struct {
	Line   int
	Record Record
	Event  input.Event
}

// Parse reads a whole script.
func Parse(r io.Reader) ([]Step, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var steps []Step
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		step, err := ParseLine([]byte(text))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		step.Line = line
		steps = append(steps, step)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return steps, nil
}

// ParseLine decodes a single record.
func ParseLine(data []byte) (Step, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var rec Record
	if err := dec.Decode(&rec); err != nil {
		return Step{}, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}

	ev, err := rec.event()
	if err != nil {
		return Step{}, err
	}
	return Step{Record: rec, Event: ev}, nil
}

func (r Record) event() (input.Event, error) {
	switch r.Type {
	case TypeOpen:
		if r.Group == "" && len(r.Images) == 0 {
			return nil, fmt.Errorf("%w: open needs a group or images", ErrInvalidRecord)
		}
		return nil, nil
	case TypeClose:
		return nil, nil
	case string(input.KindPointerDown):
		return input.PointerDown{X: r.X, Y: r.Y}, nil
	case string(input.KindPointerMove):
		return input.PointerMove{X: r.X, Y: r.Y}, nil
	case string(input.KindPointerUp):
		return input.PointerUp{X: r.X, Y: r.Y}, nil
	case string(input.KindTouchStart):
		return input.TouchStart{Touches: r.touchPoints()}, nil
	case string(input.KindTouchMove):
		return input.TouchMove{Touches: r.touchPoints()}, nil
	case string(input.KindTouchEnd):
		return input.TouchEnd{Touches: r.touchPoints()}, nil
	case string(input.KindKeyDown):
		if r.Key == "" {
			return nil, fmt.Errorf("%w: keydown needs a key", ErrInvalidRecord)
		}
		return input.KeyDown{Key: r.Key}, nil
	case string(input.KindClick):
		return r.click()
	case "":
		return nil, fmt.Errorf("%w: missing type", ErrInvalidRecord)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEvent, r.Type)
	}
}

func (r Record) touchPoints() []entity.TouchPoint {
	points := make([]entity.TouchPoint, len(r.Touches))
	for i, p := range r.Touches {
		points[i] = entity.TouchPoint{X: p.X, Y: p.Y}
	}
	return points
}

func (r Record) click() (input.Event, error) {
	target := input.ClickTarget(r.Target)
	switch target {
	case input.ClickTargetImage:
		if r.Bounds == nil {
			return nil, fmt.Errorf("%w: image click needs bounds", ErrInvalidRecord)
		}
	case input.ClickTargetBackground:
	default:
		return nil, fmt.Errorf("%w: click target %q", ErrInvalidRecord, r.Target)
	}

	click := input.Click{Target: target, X: r.X, Y: r.Y}
	if r.Bounds != nil {
		click.Bounds = input.Rect{X: r.Bounds.X, Y: r.Bounds.Y, Width: r.Bounds.Width, Height: r.Bounds.Height}
	}
	return click, nil
}

// Package scene reads descriptions of markup lines and their styles from
// TOML and YAML files.
package scene

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"honnef.co/go/markup"
)

var (
	// ErrUnknownFormat is returned for files whose extension has no decoder.
	ErrUnknownFormat = errors.New("scene: unknown file format")
	// ErrInvalidScene is returned when a scene decodes but describes
	// something impossible.
	ErrInvalidScene = errors.New("scene: invalid scene")
)

// Scene is a list of markup lines.
type Scene struct {
	Lines []Line `toml:"lines" yaml:"lines"`
}

// Line describes one markup line. Kind is a [markup.LineKind] name and
// Style a [markup.StyleKind] name.
type Line struct {
	Name   string   `toml:"name" yaml:"name"`
	Kind   string   `toml:"kind" yaml:"kind"`
	Style  string   `toml:"style" yaml:"style"`
	Start  Endpoint `toml:"start" yaml:"start"`
	End    Endpoint `toml:"end" yaml:"end"`
	Params Params   `toml:"params" yaml:"params"`
}

// Endpoint is a position and the direction into the junction, both as
// [x, y] pairs.
type Endpoint struct {
	Position  []float64 `toml:"position" yaml:"position"`
	Direction []float64 `toml:"direction" yaml:"direction"`
}

// Params overrides the default parameters of a line's style. Unset fields
// keep the default.
type Params struct {
	// Color is [r, g, b] or [r, g, b, a].
	Color        []uint8  `toml:"color" yaml:"color"`
	Width        *float64 `toml:"width" yaml:"width"`
	DashLength   *float64 `toml:"dash_length" yaml:"dash_length"`
	SpaceLength  *float64 `toml:"space_length" yaml:"space_length"`
	Offset       *float64 `toml:"offset" yaml:"offset"`
	Invert       *bool    `toml:"invert" yaml:"invert"`
	Parallel     *bool    `toml:"parallel" yaml:"parallel"`
	OffsetBefore *float64 `toml:"offset_before" yaml:"offset_before"`
	OffsetAfter  *float64 `toml:"offset_after" yaml:"offset_after"`
	LineWidth    *float64 `toml:"line_width" yaml:"line_width"`
}

// Decoder decodes a scene from r.
type Decoder func(r io.Reader) (*Scene, error)

// Decoders maps file extensions to scene decoders.
var Decoders = map[string]Decoder{
	".toml": DecodeTOML,
	".yaml": DecodeYAML,
	".yml":  DecodeYAML,
}

// Load decodes the scene file at path, choosing the decoder by the file's
// extension.
func Load(path string) (*Scene, error) {
	ext := strings.ToLower(filepath.Ext(path))
	dec, ok := Decoders[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := dec(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// DecodeTOML decodes a TOML scene. Unknown keys are an error.
func DecodeTOML(r io.Reader) (*Scene, error) {
	var s Scene
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScene, err)
	}
	return &s, nil
}

// DecodeYAML decodes a YAML scene. Unknown keys are an error.
func DecodeYAML(r io.Reader) (*Scene, error) {
	var s Scene
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScene, err)
	}
	return &s, nil
}

// Item is a line ready to be calculated.
type Item struct {
	Name  string
	Line  markup.MarkupLine
	Style markup.Style
}

// Build resolves every line of s against the default styles.
func (s *Scene) Build() ([]Item, error) {
	out := make([]Item, 0, len(s.Lines))
	for i, l := range s.Lines {
		item, err := l.build()
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i, err)
		}
		if item.Name == "" {
			item.Name = fmt.Sprintf("line %d", i)
		}
		out = append(out, item)
	}
	return out, nil
}

func (l Line) build() (Item, error) {
	kind, err := markup.ParseLineKind(l.Kind)
	if err != nil {
		return Item{}, err
	}
	styleKind, err := markup.ParseStyleKind(l.Style)
	if err != nil {
		return Item{}, err
	}
	style, ok := markup.DefaultStyle(styleKind)
	if !ok {
		return Item{}, fmt.Errorf("%w: %v has no default", markup.ErrUnknownStyle, styleKind)
	}
	if err := l.Params.apply(&style); err != nil {
		return Item{}, err
	}
	start, err := l.Start.linePoint()
	if err != nil {
		return Item{}, fmt.Errorf("start: %w", err)
	}
	end, err := l.End.linePoint()
	if err != nil {
		return Item{}, fmt.Errorf("end: %w", err)
	}
	return Item{
		Name:  l.Name,
		Line:  markup.MarkupLine{Kind: kind, Start: start, End: end},
		Style: style,
	}, nil
}

func (e Endpoint) linePoint() (markup.LinePoint, error) {
	if len(e.Position) != 2 {
		return markup.LinePoint{}, fmt.Errorf("%w: position needs 2 coordinates, got %d", ErrInvalidScene, len(e.Position))
	}
	if len(e.Direction) != 2 {
		return markup.LinePoint{}, fmt.Errorf("%w: direction needs 2 coordinates, got %d", ErrInvalidScene, len(e.Direction))
	}
	return markup.LinePoint{
		Position:  markup.Pt(e.Position[0], e.Position[1]),
		Direction: markup.Vec(e.Direction[0], e.Direction[1]),
	}, nil
}

func (p Params) apply(s *markup.Style) error {
	switch len(p.Color) {
	case 0:
	case 3:
		s.SetColor(color.RGBA{R: p.Color[0], G: p.Color[1], B: p.Color[2], A: 255})
	case 4:
		s.SetColor(color.RGBA{R: p.Color[0], G: p.Color[1], B: p.Color[2], A: p.Color[3]})
	default:
		return fmt.Errorf("%w: color needs 3 or 4 components, got %d", ErrInvalidScene, len(p.Color))
	}
	setFloat(p.Width, s.SetWidth)
	setFloat(p.DashLength, s.SetDashLength)
	setFloat(p.SpaceLength, s.SetSpaceLength)
	setFloat(p.Offset, s.SetOffset)
	setFloat(p.OffsetBefore, s.SetOffsetBefore)
	setFloat(p.OffsetAfter, s.SetOffsetAfter)
	setFloat(p.LineWidth, s.SetLineWidth)
	if p.Invert != nil {
		s.SetInvert(*p.Invert)
	}
	if p.Parallel != nil {
		s.SetParallel(*p.Parallel)
	}
	return nil
}

func setFloat(v *float64, set func(float64)) {
	if v != nil {
		set(*v)
	}
}

// Package batchfile reads batches of curves from TOML and YAML files.
//
// A batch file holds a resolution and a list of curves:
//
//	[resolution]
//	n = 50
//
//	[[curve]]
//	group = "spoke"
//	kind = "arc"
//	center = [0, 0]
//	radius = 2
//	start = 0
//	end = 1.5
//	space = "hcl"
//	from = { numbers = { size = 1 }, colors = { colour = "#ff0000" } }
//	to = { numbers = { size = 4 }, colors = { colour = "#0000ff" } }
//	shared = { categories = { linetype = "dashed" } }
//
// The YAML form uses the same keys. Points are written as [x, y] pairs.
package batchfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/radovankavicky/ggforce"
)

// Format is the encoding of a batch file.
type Format int

const (
	TOML Format = iota + 1
	YAML
)

func (f Format) String() string {
	switch f {
	case TOML:
		return "toml"
	case YAML:
		return "yaml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatOf returns the format implied by a file name's extension.
func FormatOf(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return 0, fmt.Errorf("%s: unknown batch file extension, want .toml, .yaml or .yml", name)
	}
}

// File is the decoded contents of a batch file.
type File struct {
	Resolution Resolution `toml:"resolution" yaml:"resolution"`
	Curves     []Curve    `toml:"curve" yaml:"curve"`
}

// Resolution mirrors [ggforce.Resolution].
type Resolution struct {
	N         int     `toml:"n,omitempty" yaml:"n,omitempty"`
	Tolerance float64 `toml:"tolerance,omitempty" yaml:"tolerance,omitempty"`
}

// Curve is one curve instance. Which geometry fields are used depends on
// Kind:
//
//	arc       center, radius, start, end
//	arc_bar   center, radius, inner_radius, start, end, explode
//	circle    center, radius
//	bezier    points (at least 2)
//	diagonal  points (exactly 2), flipped
//	bspline   points (at least 3), periodic
//	link      points (exactly 2)
type Curve struct {
	Group string `toml:"group" yaml:"group"`
	Kind  string `toml:"kind" yaml:"kind"`

	Center      Coord   `toml:"center,omitempty" yaml:"center,omitempty"`
	Radius      float64 `toml:"radius,omitempty" yaml:"radius,omitempty"`
	InnerRadius float64 `toml:"inner_radius,omitempty" yaml:"inner_radius,omitempty"`
	Start       float64 `toml:"start,omitempty" yaml:"start,omitempty"`
	End         float64 `toml:"end,omitempty" yaml:"end,omitempty"`
	Explode     float64 `toml:"explode,omitempty" yaml:"explode,omitempty"`
	Points      []Coord `toml:"points,omitempty" yaml:"points,omitempty"`
	Flipped     bool    `toml:"flipped,omitempty" yaml:"flipped,omitempty"`
	Periodic    bool    `toml:"periodic,omitempty" yaml:"periodic,omitempty"`

	// Space is the color space in which From and To colors are blended.
	Space  string  `toml:"space,omitempty" yaml:"space,omitempty"`
	From   *Values `toml:"from,omitempty" yaml:"from,omitempty"`
	To     *Values `toml:"to,omitempty" yaml:"to,omitempty"`
	Shared Shared  `toml:"shared,omitempty" yaml:"shared,omitempty"`
}

// Coord is a point written as [x, y].
type Coord []float64

// Values holds the attributes at one end of a curve. Colors are hex strings.
type Values struct {
	Numbers map[string]float64 `toml:"numbers,omitempty" yaml:"numbers,omitempty"`
	Colors  map[string]string  `toml:"colors,omitempty" yaml:"colors,omitempty"`
}

// Shared holds the attributes that are constant along a curve.
type Shared struct {
	Numbers    map[string]float64 `toml:"numbers,omitempty" yaml:"numbers,omitempty"`
	Colors     map[string]string  `toml:"colors,omitempty" yaml:"colors,omitempty"`
	Categories map[string]string  `toml:"categories,omitempty" yaml:"categories,omitempty"`
}

// Load reads and decodes the batch file at path. The format is chosen by the
// file's extension.
func Load(path string) (*File, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Decode(bytes.NewReader(data), format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Decode decodes a batch file. Unknown keys are an error.
func Decode(r io.Reader, format Format) (*File, error) {
	var f File
	switch format {
	case TOML:
		dec := toml.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			var derr *toml.DecodeError
			if errors.As(err, &derr) {
				row, col := derr.Position()
				return nil, fmt.Errorf("decode toml: line %d, column %d: %w", row, col, err)
			}
			return nil, fmt.Errorf("decode toml: %w", err)
		}
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		// An empty document is an empty batch.
		if err := dec.Decode(&f); err != nil && err != io.EOF {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format %s", format)
	}
	return &f, nil
}

// Encode writes f in the given format.
func Encode(w io.Writer, f *File, format Format) error {
	switch format {
	case TOML:
		enc := toml.NewEncoder(w)
		enc.SetArraysMultiline(false)
		return enc.Encode(f)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(f); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format %s", format)
	}
}

// ToResolution converts the file's resolution.
func (r Resolution) ToResolution() ggforce.Resolution {
	return ggforce.Resolution{N: r.N, Tolerance: r.Tolerance}
}

// Instances converts the file's curves into batch instances. Curves without
// a group are named after their kind and position.
func (f *File) Instances() ([]ggforce.Instance, error) {
	out := make([]ggforce.Instance, 0, len(f.Curves))
	for i, c := range f.Curves {
		inst, err := c.Instance()
		if err != nil {
			return nil, fmt.Errorf("curve %d: %w", i, err)
		}
		if inst.Group == "" {
			inst.Group = fmt.Sprintf("%s-%d", c.Kind, i)
		}
		out = append(out, inst)
	}
	return out, nil
}

// Instance converts a single curve. The geometry isn't validated beyond what
// is needed to build the descriptor; that is left to [ggforce.Run].
func (c Curve) Instance() (ggforce.Instance, error) {
	d, err := c.Descriptor()
	if err != nil {
		return ggforce.Instance{}, err
	}
	inst := ggforce.Instance{Group: c.Group, Curve: d}

	shared, err := c.Shared.attributes()
	if err != nil {
		return ggforce.Instance{}, fmt.Errorf("shared: %w", err)
	}
	inst.Shared = shared

	if c.From != nil || c.To != nil {
		space, err := ggforce.ParseColorSpace(c.Space)
		if err != nil {
			return ggforce.Instance{}, err
		}
		ends := &ggforce.Endpoints{Space: space}
		if ends.From, err = c.From.values(); err != nil {
			return ggforce.Instance{}, fmt.Errorf("from: %w", err)
		}
		if ends.To, err = c.To.values(); err != nil {
			return ggforce.Instance{}, fmt.Errorf("to: %w", err)
		}
		inst.Ends = ends
	} else if c.Space != "" {
		return ggforce.Instance{}, errors.New("space is set but neither from nor to is")
	}
	return inst, nil
}

// Descriptor builds the curve's descriptor.
func (c Curve) Descriptor() (ggforce.Descriptor, error) {
	kind, ok := ggforce.ParseKind(c.Kind)
	if !ok {
		return nil, fmt.Errorf("unknown kind %q", c.Kind)
	}
	switch kind {
	case ggforce.ArcKind, ggforce.ArcBarKind, ggforce.CircleKind:
		center, err := c.Center.point("center")
		if err != nil {
			return nil, err
		}
		switch kind {
		case ggforce.ArcKind:
			return ggforce.Arc{Center: center, Radius: c.Radius, StartAngle: c.Start, EndAngle: c.End}, nil
		case ggforce.ArcBarKind:
			return ggforce.ArcBar{
				Center:      center,
				Radius:      c.Radius,
				InnerRadius: c.InnerRadius,
				StartAngle:  c.Start,
				EndAngle:    c.End,
				Explode:     c.Explode,
			}, nil
		default:
			return ggforce.Circle{Center: center, Radius: c.Radius}, nil
		}
	}

	pts := make([]ggforce.Point, len(c.Points))
	for i, co := range c.Points {
		pt, err := co.point(fmt.Sprintf("points[%d]", i))
		if err != nil {
			return nil, err
		}
		pts[i] = pt
	}
	switch kind {
	case ggforce.BezierKind:
		return ggforce.Bezier{Points: pts}, nil
	case ggforce.BSplineKind:
		return ggforce.BSpline{Points: pts, Periodic: c.Periodic}, nil
	}
	if len(pts) != 2 {
		return nil, fmt.Errorf("%s needs exactly 2 points, got %d", kind, len(pts))
	}
	if kind == ggforce.DiagonalKind {
		return ggforce.Diagonal{P0: pts[0], P1: pts[1], Flipped: c.Flipped}, nil
	}
	return ggforce.Link{P0: pts[0], P1: pts[1]}, nil
}

func (co Coord) point(name string) (ggforce.Point, error) {
	if len(co) != 2 {
		return ggforce.Point{}, fmt.Errorf("%s: want [x, y], got %d values", name, len(co))
	}
	return ggforce.Pt(co[0], co[1]), nil
}

func (v *Values) values() (ggforce.Values, error) {
	if v == nil {
		return ggforce.Values{}, nil
	}
	colors, err := parseColors(v.Colors)
	if err != nil {
		return ggforce.Values{}, err
	}
	return ggforce.Values{Numbers: v.Numbers, Colors: colors}, nil
}

func (s Shared) attributes() (ggforce.AttributeSet, error) {
	colors, err := parseColors(s.Colors)
	if err != nil {
		return ggforce.AttributeSet{}, err
	}
	return ggforce.AttributeSet{
		Numbers:    s.Numbers,
		Colors:     colors,
		Categories: s.Categories,
	}, nil
}

func parseColors(in map[string]string) (map[string]colorful.Color, error) {
	if len(in) == 0 {
		return nil, nil
	}
	out := make(map[string]colorful.Color, len(in))
	for k, s := range in {
		c, err := ggforce.ParseColor(s)
		if err != nil {
			return nil, fmt.Errorf("color %q: %w", k, err)
		}
		out[k] = c
	}
	return out, nil
}

package batchfile

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radovankavicky/ggforce"
)

func TestLoadFormatsAgree(t *testing.T) {
	ft, err := Load("testdata/fan.toml")
	require.NoError(t, err)
	fy, err := Load("testdata/fan.yaml")
	require.NoError(t, err)
	assert.Equal(t, ft, fy)

	it, err := ft.Instances()
	require.NoError(t, err)
	iy, err := fy.Instances()
	require.NoError(t, err)
	assert.Equal(t, it, iy)
}

func TestInstances(t *testing.T) {
	f, err := Load("testdata/fan.toml")
	require.NoError(t, err)
	assert.Equal(t, ggforce.Points(20), f.Resolution.ToResolution())

	insts, err := f.Instances()
	require.NoError(t, err)
	require.Len(t, insts, 4)

	spoke := insts[0]
	assert.Equal(t, "spoke", spoke.Group)
	assert.Equal(t, ggforce.Arc{Radius: 2, EndAngle: 1.5}, spoke.Curve)
	require.NotNil(t, spoke.Ends)
	assert.Equal(t, ggforce.HCL, spoke.Ends.Space)
	assert.Equal(t, map[string]float64{"size": 1}, spoke.Ends.From.Numbers)
	assert.Equal(t, colorful.Color{R: 0, G: 0, B: 1}, spoke.Ends.To.Colors["colour"])
	assert.Equal(t, map[string]string{"linetype": "dashed"}, spoke.Shared.Categories)

	assert.Equal(t, ggforce.ArcBar{
		Center:      ggforce.Pt(1, 1),
		Radius:      3,
		InnerRadius: 1.5,
		StartAngle:  0.5,
		EndAngle:    2.5,
		Explode:     0.25,
	}, insts[1].Curve)
	assert.Nil(t, insts[1].Ends)

	assert.Equal(t, "bspline-2", insts[2].Group)
	assert.Equal(t, ggforce.BSpline{
		Points:   []ggforce.Point{ggforce.Pt(0, 0), ggforce.Pt(1, 2), ggforce.Pt(3, -1), ggforce.Pt(4, 0)},
		Periodic: true,
	}, insts[2].Curve)
	assert.Equal(t, 0.5, insts[2].Shared.Number("alpha", 1))

	assert.Equal(t, ggforce.Diagonal{P0: ggforce.Pt(0, 0), P1: ggforce.Pt(4, 2), Flipped: true}, insts[3].Curve)

	res, err := ggforce.Run(insts, f.Resolution.ToResolution())
	require.NoError(t, err)
	assert.Len(t, res.Spans, 4)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		src    string
	}{
		{"unknown key toml", TOML, "[[curve]]\nkind = \"link\"\nwidth = 3\n"},
		{"unknown key yaml", YAML, "curve:\n  - kind: link\n    width: 3\n"},
		{"bad syntax toml", TOML, "[[curve]\n"},
		{"bad type yaml", YAML, "resolution:\n  n: many\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.src), tt.format)
			assert.Error(t, err)
		})
	}
}

func TestDecodeEmpty(t *testing.T) {
	for _, format := range []Format{TOML, YAML} {
		f, err := Decode(strings.NewReader(""), format)
		require.NoError(t, err, format)
		assert.Empty(t, f.Curves, format)
	}
}

func TestCurveErrors(t *testing.T) {
	tests := []struct {
		name  string
		curve Curve
		want  string
	}{
		{"unknown kind", Curve{Kind: "spiral"}, `unknown kind "spiral"`},
		{"missing center", Curve{Kind: "circle", Radius: 1}, "center: want [x, y], got 0 values"},
		{"short point", Curve{Kind: "bezier", Points: []Coord{{0, 0}, {1}}}, "points[1]: want [x, y]"},
		{"link points", Curve{Kind: "link", Points: []Coord{{0, 0}}}, "link needs exactly 2 points, got 1"},
		{"bad color", Curve{Kind: "link", Points: []Coord{{0, 0}, {1, 1}}, Shared: Shared{Colors: map[string]string{"colour": "red"}}}, `shared: color "colour"`},
		{"bad space", Curve{Kind: "link", Points: []Coord{{0, 0}, {1, 1}}, Space: "cmyk", From: &Values{}}, `unknown color space "cmyk"`},
		{"space without ends", Curve{Kind: "link", Points: []Coord{{0, 0}, {1, 1}}, Space: "rgb"}, "neither from nor to"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.curve.Instance()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestInvalidGeometryIsLeftToRun(t *testing.T) {
	f := &File{
		Resolution: Resolution{N: 10},
		Curves: []Curve{
			{Group: "a", Kind: "link", Points: []Coord{{0, 0}, {1, 1}}},
			{Group: "b", Kind: "bezier", Points: []Coord{{0, 0}}},
		},
	}
	insts, err := f.Instances()
	require.NoError(t, err)
	_, err = ggforce.Run(insts, f.Resolution.ToResolution())
	var berr *ggforce.BatchError
	require.True(t, errors.As(err, &berr))
	assert.Equal(t, 1, berr.Index)
	assert.ErrorIs(t, err, ggforce.ErrInvalidDescriptor)
}

func TestEncodeRoundTrip(t *testing.T) {
	f, err := Load("testdata/fan.yaml")
	require.NoError(t, err)
	for _, format := range []Format{TOML, YAML} {
		var buf bytes.Buffer
		require.NoError(t, Encode(&buf, f, format), format)
		g, err := Decode(&buf, format)
		require.NoError(t, err, format)
		assert.Equal(t, f, g, format)
	}
}

func TestFormatOf(t *testing.T) {
	for name, want := range map[string]Format{
		"a.toml":     TOML,
		"b.yaml":     YAML,
		"dir/c.YML":  YAML,
		"d.tar.toml": TOML,
	} {
		got, err := FormatOf(name)
		require.NoError(t, err)
		assert.Equal(t, want, got, name)
	}
	_, err := FormatOf("e.json")
	assert.Error(t, err)
}

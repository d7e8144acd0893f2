package ggforce

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// SVGOptions specifies optional settings for [SVG], [WriteSVG] and
// [WriteSVGDocument].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
	// Transform is applied to every point before it is written. The zero
	// value means no transformation.
	Transform Affine
	// Gradient draws every pair of consecutive points as its own line, styled
	// with the attributes of the first point of the pair, so that
	// interpolated attributes become visible. Otherwise every group is drawn
	// as a single path styled with the attributes of its first point.
	Gradient bool

	// The attribute keys used for styling. Empty keys select "colour",
	// "size", "alpha" and "linetype".
	ColorKey    string
	SizeKey     string
	AlphaKey    string
	LinetypeKey string
}

func (opts SVGOptions) withDefaults() SVGOptions {
	if opts.Transform == (Affine{}) {
		opts.Transform = Identity
	}
	def := func(s *string, v string) {
		if *s == "" {
			*s = v
		}
	}
	def(&opts.ColorKey, "colour")
	def(&opts.SizeKey, "size")
	def(&opts.AlphaKey, "alpha")
	def(&opts.LinetypeKey, "linetype")
	return opts
}

var dashArrays = map[string]string{
	"dashed":   "4 2",
	"dotted":   "1 2",
	"dotdash":  "1 2 4 2",
	"longdash": "8 2",
	"twodash":  "2 2 6 2",
}

// SVG converts the result of a batch to a sequence of SVG elements.
//
// See [WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
func SVG(r Result, opts SVGOptions) string {
	sb := &strings.Builder{}
	WriteSVG(sb, r, opts)
	return sb.String()
}

// WriteSVG converts the result of a batch to a sequence of SVG elements, one
// per line, and writes them to w. Open groups are drawn as unfilled paths,
// closed groups as filled polygons.
func WriteSVG(w io.Writer, r Result, opts SVGOptions) error {
	opts = opts.withDefaults()
	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(n float64) string {
		maxPrec := opts.MaxPrecision
		if maxPrec <= 0 {
			return strconv.FormatFloat(n, 'f', -1, 64)
		} else {
			s := strconv.FormatFloat(n, 'f', maxPrec, 64)
			s = strings.TrimRight(s, "0")
			s = strings.TrimSuffix(s, ".")
			if s == "-0" {
				return "0"
			}
			return s
		}
	}
	pt := func(p BatchPoint) (string, string) {
		q := p.Point.Transform(opts.Transform)
		return format(q.X), format(q.Y)
	}

	for sp, pts := range r.Groups() {
		if err != nil {
			return err
		}
		if len(pts) == 0 {
			continue
		}
		if opts.Gradient {
			for i := range pts {
				j := i + 1
				if j == len(pts) {
					if !sp.Closed || len(pts) < 3 {
						break
					}
					j = 0
				}
				x0, y0 := pt(pts[i])
				x1, y1 := pt(pts[j])
				writef(`<line x1="%s" y1="%s" x2="%s" y2="%s" %s/>`+"\n",
					x0, y0, x1, y1, style(pts[i].Attrs, false, opts))
			}
			continue
		}

		sb := &strings.Builder{}
		for i, p := range pts {
			x, y := pt(p)
			if i == 0 {
				fmt.Fprintf(sb, "M%s,%s", x, y)
			} else {
				fmt.Fprintf(sb, " L%s,%s", x, y)
			}
		}
		if sp.Closed {
			sb.WriteString(" Z")
		}
		writef(`<path id="%s" d="%s" %s/>`+"\n", escape(sp.Group), sb.String(), style(pts[0].Attrs, sp.Closed, opts))
	}
	return err
}

// WriteSVGDocument writes a standalone SVG document of the given size that
// shows the whole result. Data space is y-up; the document is y-down.
// opts.Transform is replaced by the viewport transform.
func WriteSVGDocument(w io.Writer, r Result, width, height float64, opts SVGOptions) error {
	const margin = 10
	bounds := r.Bounds()
	if bounds.IsEmpty() {
		bounds = Rect{}
	}
	opts.Transform = Viewport(bounds, width, height, margin)
	if _, err := fmt.Fprintf(w, `<svg xmlns="http://www.w3.org/2000/svg" width="%g" height="%g" viewBox="0 0 %g %g">`+"\n",
		width, height, width, height); err != nil {
		return err
	}
	if err := WriteSVG(w, r, opts); err != nil {
		return err
	}
	_, err := io.WriteString(w, "</svg>\n")
	return err
}

func style(as AttributeSet, closed bool, opts SVGOptions) string {
	paint := "black"
	if c, ok := as.Color(opts.ColorKey); ok {
		paint = c.Hex()
	}
	alpha := clamp01(as.Number(opts.AlphaKey, 1))
	width := as.Number(opts.SizeKey, 1)

	var attrs []string
	if closed {
		attrs = append(attrs,
			fmt.Sprintf(`fill="%s"`, paint),
			fmt.Sprintf(`fill-opacity="%g"`, alpha),
			`stroke="none"`)
	} else {
		attrs = append(attrs,
			`fill="none"`,
			fmt.Sprintf(`stroke="%s"`, paint),
			fmt.Sprintf(`stroke-opacity="%g"`, alpha),
			fmt.Sprintf(`stroke-width="%g"`, width))
		if lt, ok := as.Category(opts.LinetypeKey); ok {
			if dash, ok := dashArrays[lt]; ok {
				attrs = append(attrs, fmt.Sprintf(`stroke-dasharray="%s"`, dash))
			}
		}
	}
	return strings.Join(attrs, " ")
}

var escaper = strings.NewReplacer(`&`, "&amp;", `<`, "&lt;", `>`, "&gt;", `"`, "&quot;")

func escape(s string) string { return escaper.Replace(s) }

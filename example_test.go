package ggforce_test

import (
	"fmt"
	"math"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/radovankavicky/ggforce"
)

func ExampleTessellate() {
	arc := ggforce.Arc{Radius: 1, StartAngle: 0, EndAngle: math.Pi / 2}
	samples, err := ggforce.Tessellate(arc, ggforce.Points(3))
	if err != nil {
		panic(err)
	}
	for _, s := range samples {
		fmt.Printf("(%.4f, %.4f) t=%.2f\n", s.X, s.Y, s.T)
	}
	// Output:
	// (1.0000, 0.0000) t=0.00
	// (0.7071, 0.7071) t=0.50
	// (0.0000, 1.0000) t=1.00
}

func ExampleInterpolate() {
	ends := &ggforce.Endpoints{
		From: ggforce.Values{Numbers: map[string]float64{"size": 1}},
		To:   ggforce.Values{Numbers: map[string]float64{"size": 5}},
	}
	shared := ggforce.AttributeSet{Categories: map[string]string{"linetype": "dashed"}}
	for _, t := range []float64{0, 0.25, 1} {
		as := ggforce.Interpolate(ends, shared, t)
		lt, _ := as.Category("linetype")
		fmt.Println(as.Number("size", 0), lt)
	}
	// Output:
	// 1 dashed
	// 2 dashed
	// 5 dashed
}

func ExampleRun() {
	red, _ := colorful.Hex("#ff0000")
	res, err := ggforce.Run([]ggforce.Instance{
		{
			Group:  "edge",
			Curve:  ggforce.Diagonal{P0: ggforce.Pt(0, 0), P1: ggforce.Pt(4, 2)},
			Shared: ggforce.AttributeSet{Colors: map[string]colorful.Color{"colour": red}},
		},
		{
			Group: "slice",
			Curve: ggforce.ArcBar{Radius: 2, InnerRadius: 1, EndAngle: math.Pi},
		},
	}, ggforce.Points(5))
	if err != nil {
		panic(err)
	}
	for sp := range res.Groups() {
		fmt.Println(sp.Group, sp.Kind, sp.Len, sp.Closed)
	}
	ggforce.WriteSVG(os.Stdout, res, ggforce.SVGOptions{MaxPrecision: 2})
	// Output:
	// edge diagonal 5 false
	// slice arc_bar 10 true
	// <path id="edge" d="M0,0 L1.19,0.31 L2,1 L2.81,1.69 L4,2" fill="none" stroke="#ff0000" stroke-opacity="1" stroke-width="1"/>
	// <path id="slice" d="M2,0 L1.41,1.41 L0,2 L-1.41,1.41 L-2,0 L-1,0 L-0.71,0.71 L0,1 L0.71,0.71 L1,0 Z" fill="black" fill-opacity="1" stroke="none"/>
}

// Package cli implements the ggforce command.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/radovankavicky/ggforce"
	"github.com/radovankavicky/ggforce/internal/batchfile"
)

// Main runs the command with the given arguments and returns the process
// exit code.
func Main(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := NewCommand(stdout, stderr)
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		// Logging may not have been configured if flag parsing failed.
		newLogger(stderr, false).Error("ggforce failed", "err", err)
		return 1
	}
	return 0
}

type app struct {
	stdout, stderr io.Writer
	verbose        bool
	log            *slog.Logger
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewCommand returns the root command.
func NewCommand(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}
	root := &cobra.Command{
		Use:           "ggforce",
		Short:         "Tessellate batches of curves into point sequences",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.log = newLogger(a.stderr, a.verbose)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log debug messages")
	root.AddCommand(a.sampleCommand(), a.kindsCommand(), a.convertCommand())
	return root
}

type sampleOptions struct {
	format    string
	output    string
	n         int
	tolerance float64
	workers   int
	width     float64
	height    float64
	gradient  bool
	precision int
}

func (a *app) sampleCommand() *cobra.Command {
	var opts sampleOptions
	cmd := &cobra.Command{
		Use:   "sample FILE",
		Short: "Sample every curve of a batch file",
		Long: `Sample reads a batch file in TOML or YAML format, tessellates its curves and
writes the result as an SVG document or as JSON.

--n and --tolerance override the resolution of the batch file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("n") && cmd.Flags().Changed("tolerance") {
				return errors.New("--n and --tolerance are mutually exclusive")
			}
			return a.sample(cmd.Context(), args[0], cmd.Flags().Changed("n"), cmd.Flags().Changed("tolerance"), opts)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.format, "format", "svg", "output format, svg or json")
	f.StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	f.IntVar(&opts.n, "n", 0, "number of points per curve")
	f.Float64Var(&opts.tolerance, "tolerance", 0, "maximum deviation of the polyline from the curve")
	f.IntVar(&opts.workers, "workers", 0, "number of concurrent workers (default GOMAXPROCS)")
	f.Float64Var(&opts.width, "width", 400, "width of the SVG document")
	f.Float64Var(&opts.height, "height", 400, "height of the SVG document")
	f.BoolVar(&opts.gradient, "gradient", false, "draw every segment separately to show interpolated attributes")
	f.IntVar(&opts.precision, "precision", 3, "maximum number of decimals of SVG coordinates")
	return cmd
}

func (a *app) sample(ctx context.Context, path string, setN, setTol bool, opts sampleOptions) error {
	if opts.format != "svg" && opts.format != "json" {
		return fmt.Errorf("unknown output format %q", opts.format)
	}
	file, err := batchfile.Load(path)
	if err != nil {
		return err
	}
	insts, err := file.Instances()
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	res := file.Resolution.ToResolution()
	switch {
	case setN:
		res = ggforce.Points(opts.n)
	case setTol:
		res = ggforce.Tolerance(opts.tolerance)
	}
	a.log.Debug("loaded batch", "file", path, "curves", len(insts), "resolution", res)

	start := time.Now()
	out, err := ggforce.RunParallel(ctx, insts, res, opts.workers)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	a.log.Info("sampled batch", "curves", len(out.Spans), "points", len(out.Points), "took", time.Since(start))

	return a.writeOutput(opts.output, func(w io.Writer) error {
		switch opts.format {
		case "json":
			return writeJSON(w, out)
		default:
			return ggforce.WriteSVGDocument(w, out, opts.width, opts.height, ggforce.SVGOptions{
				MaxPrecision: opts.precision,
				Gradient:     opts.gradient,
			})
		}
	})
}

// writeOutput calls write with the named file, or stdout if name is empty.
func (a *app) writeOutput(name string, write func(io.Writer) error) (err error) {
	if name == "" {
		return write(a.stdout)
	}
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err := write(f); err != nil {
		return err
	}
	a.log.Debug("wrote output", "file", name)
	return nil
}

func (a *app) kindsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the supported curve kinds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, k := range ggforce.Kinds() {
				if _, err := fmt.Fprintln(a.stdout, k); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func (a *app) convertCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "convert IN OUT",
		Short: "Convert a batch file between TOML and YAML",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := batchfile.Load(args[0])
			if err != nil {
				return err
			}
			if _, err := file.Instances(); err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			format, err := batchfile.FormatOf(args[1])
			if err != nil {
				return err
			}
			return a.writeOutput(args[1], func(w io.Writer) error {
				return batchfile.Encode(w, file, format)
			})
		},
	}
}

type jsonResult struct {
	Spans  []jsonSpan  `json:"spans"`
	Points []jsonPoint `json:"points"`
}

type jsonSpan struct {
	Group  string `json:"group"`
	Kind   string `json:"kind"`
	Offset int    `json:"offset"`
	Len    int    `json:"len"`
	Closed bool   `json:"closed"`
}

type jsonPoint struct {
	Group      string             `json:"group"`
	X          float64            `json:"x"`
	Y          float64            `json:"y"`
	T          float64            `json:"t"`
	Numbers    map[string]float64 `json:"numbers,omitempty"`
	Colors     map[string]string  `json:"colors,omitempty"`
	Categories map[string]string  `json:"categories,omitempty"`
}

func writeJSON(w io.Writer, r ggforce.Result) error {
	out := jsonResult{
		Spans:  make([]jsonSpan, len(r.Spans)),
		Points: make([]jsonPoint, len(r.Points)),
	}
	for i, sp := range r.Spans {
		out.Spans[i] = jsonSpan{
			Group:  sp.Group,
			Kind:   sp.Kind.String(),
			Offset: sp.Offset,
			Len:    sp.Len,
			Closed: sp.Closed,
		}
	}
	for i, p := range r.Points {
		jp := jsonPoint{
			Group:      p.Group,
			X:          p.X,
			Y:          p.Y,
			T:          p.T,
			Numbers:    p.Attrs.Numbers,
			Categories: p.Attrs.Categories,
		}
		if len(p.Attrs.Colors) > 0 {
			jp.Colors = make(map[string]string, len(p.Attrs.Colors))
			for k, c := range p.Attrs.Colors {
				jp.Colors[k] = c.Hex()
			}
		}
		out.Points[i] = jp
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

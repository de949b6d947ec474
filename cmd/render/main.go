// Command render computes a single Mandelbrot view and writes it out as an
// image, with an optional CSV export of the raw field.
package main

import (
	"context"
	"fmt"
	"image/color"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"mandelfield/pkg/field"
	"mandelfield/pkg/palette"
	"mandelfield/pkg/render"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := mainCmd().ExecuteContext(ctx); err != nil {
		log.Fatal(err)
	}
}

type renderOpts struct {
	region                 string
	xmin, xmax, ymin, ymax float64
	res                    int
	width, height          int
	iter                   int
	smooth                 bool
	transform              string
	paletteName            string
	gradient               string
	axes                   bool
	out                    string
	table                  string
}

func mainCmd() *cobra.Command {
	opts := &renderOpts{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "render a Mandelbrot escape-iteration field to an image",
		Args:  cobra.ExactArgs(0),
		RunE:  opts.run,
	}

	f := cmd.Flags()
	f.StringVar(&opts.region, "region", "", "named landmark region (overrides the corner flags)")
	f.Float64Var(&opts.xmin, "xmin", -2.1, "left edge of the sampled window")
	f.Float64Var(&opts.xmax, "xmax", 0.7, "right edge of the sampled window")
	f.Float64Var(&opts.ymin, "ymin", -1.3, "bottom edge of the sampled window")
	f.Float64Var(&opts.ymax, "ymax", 1.3, "top edge of the sampled window")
	f.IntVar(&opts.res, "res", 1024, "samples along the longer axis; the shorter follows the aspect ratio")
	f.IntVar(&opts.width, "width", 0, "exact sample count on the x axis (with --height, overrides --res)")
	f.IntVar(&opts.height, "height", 0, "exact sample count on the y axis (with --width, overrides --res)")
	f.IntVar(&opts.iter, "iter", 1000, "iteration budget per sample")
	f.BoolVar(&opts.smooth, "smooth", true, "fractional escape counts instead of integer bands")
	f.StringVar(&opts.transform, "transform", "none", "display transform: none, inverse or log")
	f.StringVar(&opts.paletteName, "palette", "default", "stock palette name")
	f.StringVar(&opts.gradient, "gradient", "", "gradient strip image to build the palette from (overrides --palette)")
	f.BoolVar(&opts.axes, "axes", false, "draw the tick frame")
	f.StringVar(&opts.out, "out", "mandelbrot.png", "output image path (.png or .bmp)")
	f.StringVar(&opts.table, "table", "", "also export the raw field as CSV to this path")

	return cmd
}

func (o *renderOpts) run(cmd *cobra.Command, _ []string) error {
	cmd.SilenceUsage = true

	p, err := o.params()
	if err != nil {
		return err
	}

	tr, err := render.ParseTransform(o.transform)
	if err != nil {
		return err
	}

	colors, err := o.colors()
	if err != nil {
		return err
	}

	spin := spinner.New(spinner.CharSets[43], 100*time.Millisecond)
	spin.Suffix = " computing field ..."
	spin.Start()
	v, err := field.ComputeContext(cmd.Context(), p)
	spin.Stop()
	if err != nil {
		return err
	}

	img, err := render.New().Render(v,
		render.WithPalette(colors),
		render.WithTransform(tr),
		render.WithAxes(o.axes))
	if err != nil {
		return err
	}

	if err := render.SaveImage(o.out, img); err != nil {
		return err
	}

	if o.table != "" {
		if err := o.exportTable(v); err != nil {
			return err
		}
	}

	fmt.Println(v)
	fmt.Println("wrote", o.out)
	return nil
}

// params assembles the field parameters from the region and resolution
// flags. Validation proper happens inside the field package.
func (o *renderOpts) params() (field.Params, error) {
	var p field.Params
	var err error

	if o.region != "" {
		p, err = regionParams(o.region)
		if err != nil {
			return field.Params{}, err
		}
	} else {
		p.Min = complex(o.xmin, o.ymin)
		p.Max = complex(o.xmax, o.ymax)
	}

	if o.width > 0 && o.height > 0 {
		p.Nx, p.Ny = o.width, o.height
	} else {
		p = p.Resolution(o.res)
	}

	p.MaxIter = o.iter
	p.Smooth = o.smooth
	return p, nil
}

// colors picks the palette: a gradient strip file when given, a stock
// palette otherwise.
func (o *renderOpts) colors() ([]color.Color, error) {
	if o.gradient == "" {
		return palette.Named(o.paletteName)
	}

	anchors, err := palette.FromImage(o.gradient)
	if err != nil {
		return nil, err
	}
	return palette.Cyclic(anchors, 2, palette.InSetColor), nil
}

func (o *renderOpts) exportTable(v *field.View) error {
	f, err := os.Create(o.table)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := v.WriteTable(f); err != nil {
		return err
	}
	fmt.Println("wrote", o.table)
	return f.Close()
}

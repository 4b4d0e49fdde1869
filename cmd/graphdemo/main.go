// Command graphdemo renders a sample chart with three series to an image
// file.
//
// The output format is chosen by the extension of the -o file: png, jpg,
// tiff, svg or pdf.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/vdobler/graphing"
	"github.com/vdobler/graphing/data"
	"github.com/vdobler/graphing/vec"
	"github.com/vdobler/graphing/vgsurface"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	_ "gonum.org/v1/plot/vg/vgimg"
	_ "gonum.org/v1/plot/vg/vgpdf"
	_ "gonum.org/v1/plot/vg/vgsvg"
)

// Space kept free right of and below the graph for the axis titles.
const (
	rightMargin  = 80
	bottomMargin = 30
)

func main() {
	log.SetPrefix("graphdemo: ")
	log.SetFlags(0)

	var (
		flagOut     = flag.String("o", "graphdemo.png", "write chart to `file`")
		flagWidth   = flag.Float64("w", 600, "chart width in points")
		flagHeight  = flag.Float64("h", 400, "chart height in points")
		flagLines   = flag.Bool("lines", false, "connect data points instead of marking them")
		flagVerbose = flag.Bool("v", false, "log every drawing step")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 0 {
		flag.Usage()
		os.Exit(2)
	}

	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(*flagOut)), ".")
	cw, err := draw.NewFormattedCanvas(vg.Length(*flagWidth), vg.Length(*flagHeight), format)
	if err != nil {
		log.Fatal(err)
	}
	surface := vgsurface.New(draw.New(cw))

	dom := surface.Bounds()
	graph := vec.Rect{
		Start:      vec.V(0, bottomMargin),
		Dimensions: dom.Dimensions.Sub(vec.V(rightMargin, bottomMargin)),
	}
	chart, err := graphing.New(surface, dom, graph, vec.V(0.25, 0.18))
	if err != nil {
		log.Fatal(err)
	}
	if *flagVerbose {
		chart.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	if err := chart.SetXAxis("Time", "s", graphing.Ticks{NumberMajorTicks: 4, NumberMinorTicksPerMajorTick: 5}); err != nil {
		log.Fatal(err)
	}
	if err := chart.SetYAxis("Amplitude", "V", graphing.Ticks{NumberMajorTicks: 4, NumberMinorTicksPerMajorTick: 2}); err != nil {
		log.Fatal(err)
	}

	for _, s := range []struct {
		f   func(float64) float64
		col color.Color
	}{
		{math.Sin, nil},
		{math.Cos, nil},
		{func(x float64) float64 { return x*x/10 - 1 }, color.Gray{Y: 0x60}},
	} {
		ds, err := data.FromXYer(sample(s.f, 0, 2*math.Pi, 60))
		if err != nil {
			log.Fatal(err)
		}
		if err := chart.AddDataSet(ds, s.col); err != nil {
			log.Fatal(err)
		}
	}

	chart.Wipe(chart.Style.Background)
	if err := chart.DrawGraph(); err != nil {
		log.Fatal(err)
	}
	if *flagLines {
		err = chart.GraphDataSets()
	} else {
		err = chart.PlotDataSets()
	}
	if err != nil {
		log.Fatal(err)
	}

	f, err := os.Create(*flagOut)
	if err != nil {
		log.Fatal(err)
	}
	if _, err := cw.WriteTo(f); err != nil {
		f.Close()
		log.Fatal(err)
	}
	if err := f.Close(); err != nil {
		log.Fatal(err)
	}
}

// sample evaluates f at n+1 evenly spaced points in [from,to].
func sample(f func(float64) float64, from, to float64, n int) plotter.XYs {
	xys := make(plotter.XYs, n+1)
	for i := range xys {
		x := from + (to-from)*float64(i)/float64(n)
		xys[i].X, xys[i].Y = x, f(x)
	}
	return xys
}

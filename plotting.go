package surveydata

import (
	"fmt"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// PlotOptions carries the chart annotations applied to every plot
// produced by this package.
type PlotOptions struct {

	// Chart title and axis labels.
	Title  string
	XLabel string
	YLabel string

	// If true, a background grid is drawn.
	Grid bool

	// If true, a legend naming the raw data and the smooth is drawn.
	Legend bool
}

// newPlot returns a plot decorated with the given options.
func newPlot(opts PlotOptions) *plot.Plot {

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel
	if opts.Grid {
		p.Add(plotter.NewGrid())
	}
	return p
}

// ScatterWithLowess draws a scatterplot of y against x with a
// LOWESS-smoothed curve overlaid.  The smoothing fraction frac is
// passed to Lowess.
func ScatterWithLowess(x, y []float64, frac float64, opts PlotOptions) (*plot.Plot, error) {

	if len(x) != len(y) {
		return nil, fmt.Errorf("x has length %d but y has length %d", len(x), len(y))
	}

	smooth, err := Lowess(x, y, frac)
	if err != nil {
		return nil, err
	}

	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i].X = x[i]
		pts[i].Y = y[i]
	}
	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, err
	}

	// Order the smooth by x so the curve does not zigzag.
	ord := make([]int, len(x))
	for i := range ord {
		ord[i] = i
	}
	sort.Slice(ord, func(i, j int) bool { return x[ord[i]] < x[ord[j]] })

	curve := make(plotter.XYs, len(x))
	for i, ix := range ord {
		curve[i].X = x[ix]
		curve[i].Y = smooth[ix]
	}
	line, err := plotter.NewLine(curve)
	if err != nil {
		return nil, err
	}

	p := newPlot(opts)
	p.Add(scatter, line)
	if opts.Legend {
		p.Legend.Add("data", scatter)
		p.Legend.Add("lowess", line)
	}

	return p, nil
}

// LinePlot draws a single series against its 0-based index, for
// time-series style charts where the x coordinate is implicit.
func LinePlot(y []float64, opts PlotOptions) (*plot.Plot, error) {

	pts := make(plotter.XYs, len(y))
	for i := range y {
		pts[i].X = float64(i)
		pts[i].Y = y[i]
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}

	p := newPlot(opts)
	p.Add(line)
	if opts.Legend {
		p.Legend.Add(opts.Title, line)
	}

	return p, nil
}

// SavePlot writes the plot to the named file with the given
// dimensions.  The image format follows the file extension, as
// understood by the plotting backend.
func SavePlot(p *plot.Plot, width, height vg.Length, path string) error {
	return p.Save(width, height, path)
}

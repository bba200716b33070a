package main

import (
	"math"
	"os"
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
	"github.com/paulmach/orb"
	"github.com/uyouii/uutest/model"
	"github.com/uyouii/uutest/uutest"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

const plotBins = 50

// writePlot renders the sample's ECDF and histogram next to the fitted
// model's CDF and density as an HTML page.
func writePlot(path string, values []float64, m *model.UUModel, bins int) error {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	hulls := uutest.ExtractHulls(sorted, bins)
	cdf := newChart("CDF", "empirical CDF with its hulls and the fitted model")
	cdf.AddSeries("ECDF", convertPoints(hulls.Support, hulls.F)).
		AddSeries("GCM", convertChain(hulls.GCM)).
		AddSeries("LCM", convertChain(hulls.LCM))

	density := newChart("Density", "histogram and fitted density")
	density.AddSeries("histogram", histogramData(sorted))

	if m.Unimodal() {
		var xs, ys []float64
		for _, c := range uutest.CdfGrid(m, uutest.DefaultGridSize) {
			xs, ys = append(xs, c.X), append(ys, c.Value)
		}
		cdf.AddSeries("UU CDF", convertPoints(xs, ys))

		xs, ys = nil, nil
		for _, d := range uutest.DensityGrid(m, uutest.DefaultGridSize) {
			xs, ys = append(xs, d.X), append(ys, d.Value)
		}
		density.AddSeries("UU PDF", convertPoints(xs, ys))
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create plot")
	}
	defer f.Close()

	page := components.NewPage()
	page.PageTitle = "UU test"
	page.AddCharts(cdf, density)
	if err := page.Render(f); err != nil {
		return errors.Wrap(err, "render plot")
	}
	return f.Close()
}

func newChart(title, subtitle string) *charts.Line {
	chart := charts.NewLine()
	chart.SetGlobalOptions(charts.WithInitializationOpts(opts.Initialization{
		Theme: types.ThemeWesteros,
	}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: true,
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{
					Show:  true,
					Title: "Save",
				},
				DataZoom: &opts.ToolBoxFeatureDataZoom{
					Show: true,
				},
			},
		}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value"}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: subtitle,
		}))
	return chart
}

// convertPoints pairs xs with ys as chart points, skipping values that can
// not be drawn.
func convertPoints(xs, ys []float64) []opts.LineData {
	items := []opts.LineData{}
	for i := range xs {
		if math.IsInf(ys[i], 0) || math.IsNaN(ys[i]) {
			continue
		}
		items = append(items, opts.LineData{Value: [2]float64{xs[i], ys[i]}})
	}
	return items
}

func convertChain(ls orb.LineString) []opts.LineData {
	items := []opts.LineData{}
	for _, p := range ls {
		items = append(items, opts.LineData{Value: [2]float64{p.X(), p.Y()}})
	}
	return items
}

// histogramData returns the normalized histogram of the sorted values at
// the bin midpoints.
func histogramData(sorted []float64) []opts.LineData {
	lo, hi := sorted[0], sorted[len(sorted)-1]
	if lo == hi {
		return []opts.LineData{}
	}
	dividers := floats.Span(make([]float64, plotBins+1), lo, hi)
	dividers[plotBins] = math.Nextafter(hi, math.Inf(1))
	counts := stat.Histogram(nil, dividers, sorted, nil)

	width := (hi - lo) / plotBins
	xs, ys := make([]float64, plotBins), make([]float64, plotBins)
	for i, count := range counts {
		xs[i] = lo + (float64(i)+0.5)*width
		ys[i] = count / (float64(len(sorted)) * width)
	}
	return convertPoints(xs, ys)
}

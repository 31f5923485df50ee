// Package render turns pipeline output into concrete charts. Two adapters
// are provided: interactive HTML via go-echarts and static images via
// gonum/plot. Both consume only the pipeline's numeric output; all cosmetic
// styling lives here, outside the data-shaping core.
package render

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/osamashahatit/matchart-sub000/layout"
	"github.com/osamashahatit/matchart-sub000/pivot"
)

// Options carries chart cosmetics shared by both adapters.
type Options struct {
	Title    string
	Subtitle string
	// Width and Height are CSS sizes for HTML output (defaults 900px/500px).
	Width  string
	Height string
}

func (o Options) size() (string, string) {
	w, h := o.Width, o.Height
	if w == "" {
		w = "900px"
	}
	if h == "" {
		h = "500px"
	}
	return w, h
}

// BarHTML renders a bar chart as a standalone HTML document. Stacked and
// clustered variants map onto the corresponding eCharts bar options;
// orientation is handled by swapping the axes.
func BarHTML(w io.Writer, res *pivot.Result, spec layout.BarSpec, o Options) error {
	l, err := layout.Bars(res.Table, spec)
	if err != nil {
		return err
	}

	width, height := o.size()
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: o.Title, Width: width, Height: height}),
		charts.WithTitleOpts(opts.Title{Title: o.Title, Subtitle: o.Subtitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(res.Table.NumCols() > 1)}),
	)
	bar.SetXAxis(res.Table.RowKeys())

	var seriesOpts []charts.SeriesOpts
	switch l.Variant {
	case layout.VariantStacked:
		seriesOpts = append(seriesOpts, charts.WithBarChartOpts(opts.BarChart{Stack: "total"}))
	case layout.VariantClustered:
		if spec.Space > 0 {
			n := float64(res.Table.NumCols())
			clusterWidth := spec.Width
			if clusterWidth <= 0 {
				clusterWidth = layout.DefaultBarWidth
			}
			barWidth := (clusterWidth - (n-1)*spec.Space) / n
			gap := fmt.Sprintf("%.0f%%", spec.Space/barWidth*100)
			seriesOpts = append(seriesOpts, charts.WithBarChartOpts(opts.BarChart{BarGap: gap}))
		}
	}

	for j, name := range res.Table.ColKeys() {
		col := res.Table.Column(j)
		data := make([]opts.BarData, len(col))
		for i, v := range col {
			data[i] = opts.BarData{Value: v}
		}
		bar.AddSeries(name, data, seriesOpts...)
	}

	if spec.Horizontal {
		bar.XYReversal()
	}

	if err := bar.Render(w); err != nil {
		return fmt.Errorf("render bar chart: %w", err)
	}
	return nil
}

// LineHTML renders a line chart as a standalone HTML document, one line per
// pivot column (or a single unlabeled line). Running totals are already
// folded into the table by the pipeline.
func LineHTML(w io.Writer, res *pivot.Result, o Options) error {
	series := layout.Lines(res.Table)

	width, height := o.size()
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: o.Title, Width: width, Height: height}),
		charts.WithTitleOpts(opts.Title{Title: o.Title, Subtitle: o.Subtitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(len(series) > 1)}),
	)
	line.SetXAxis(res.Table.RowKeys())

	for _, s := range series {
		data := make([]opts.LineData, len(s.Values))
		for i, v := range s.Values {
			data[i] = opts.LineData{Value: v}
		}
		line.AddSeries(s.Name, data)
	}

	if err := line.Render(w); err != nil {
		return fmt.Errorf("render line chart: %w", err)
	}
	return nil
}

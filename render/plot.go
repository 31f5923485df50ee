package render

import (
	"fmt"

	"github.com/osamashahatit/matchart-sub000/layout"
	"github.com/osamashahatit/matchart-sub000/pivot"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// SaveBarImage writes a bar chart image (format from the path extension,
// e.g. .png or .svg). Each layout segment becomes a filled rectangle, so
// the image reflects the layout engine's geometry exactly — including
// stacked offsets and clustered positions.
func SaveBarImage(path string, res *pivot.Result, spec layout.BarSpec, o Options) error {
	l, err := layout.Bars(res.Table, spec)
	if err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = o.Title

	colors := seriesColors(res.Table.NumCols())
	colorIdx := make(map[string]int, res.Table.NumCols())
	for j, name := range res.Table.ColKeys() {
		colorIdx[name] = j
	}

	legendDone := make(map[string]bool)
	for _, seg := range l.Segments {
		x, y, w, h := seg.Rect(spec.Horizontal)
		poly, err := plotter.NewPolygon(rect(x, y, w, h))
		if err != nil {
			return fmt.Errorf("build segment for %q/%q: %w", seg.Row, seg.Series, err)
		}
		c := colors[colorIdx[seg.Series]]
		poly.Color = c
		poly.LineStyle.Color = c
		p.Add(poly)

		if res.Table.NumCols() > 1 && !legendDone[seg.Series] {
			legendDone[seg.Series] = true
			p.Legend.Add(seg.Series, poly)
		}
	}

	ticks := make([]plot.Tick, len(l.Ticks))
	for i, tk := range l.Ticks {
		ticks[i] = plot.Tick{Value: tk.Position, Label: tk.Label}
	}
	if spec.Horizontal {
		p.Y.Tick.Marker = plot.ConstantTicks(ticks)
	} else {
		p.X.Tick.Marker = plot.ConstantTicks(ticks)
	}

	p.Legend.Top = true
	p.Legend.Left = false

	if err := p.Save(10*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("save bar chart: %w", err)
	}
	return nil
}

// SaveLineImage writes a line chart image, one line per pivot column.
func SaveLineImage(path string, res *pivot.Result, o Options) error {
	series := layout.Lines(res.Table)

	p := plot.New()
	p.Title.Text = o.Title

	colors := seriesColors(len(series))
	for i, s := range series {
		pts := make(plotter.XYs, len(s.Values))
		for n, v := range s.Values {
			pts[n] = plotter.XY{X: float64(n), Y: v}
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("build line for %q: %w", s.Name, err)
		}
		line.Color = colors[i]
		line.Width = vg.Points(2)
		p.Add(line)
		if s.Name != "" {
			p.Legend.Add(s.Name, line)
		}
	}

	ticks := make([]plot.Tick, 0, res.Table.NumRows())
	for i, k := range res.Table.RowKeys() {
		ticks = append(ticks, plot.Tick{Value: float64(i), Label: k})
	}
	p.X.Tick.Marker = plot.ConstantTicks(ticks)

	p.Legend.Top = true
	p.Legend.Left = false

	if err := p.Save(10*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("save line chart: %w", err)
	}
	return nil
}

// rect builds the closed corner sequence for one bar rectangle.
func rect(x, y, w, h float64) plotter.XYs {
	return plotter.XYs{
		{X: x, Y: y},
		{X: x + w, Y: y},
		{X: x + w, Y: y + h},
		{X: x, Y: y + h},
	}
}

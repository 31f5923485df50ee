// Package layout computes renderer-independent bar and line geometry from
// pivot tables. Positions, widths, and offsets are expressed along an
// abstract position axis (one unit per row key) and a value axis; the
// orientation flag only swaps which screen axis each maps to.
package layout

import (
	"errors"
	"fmt"

	"github.com/osamashahatit/matchart-sub000/pivot"
)

// Variant selects the bar layout algorithm.
type Variant string

// Bar layout variants.
const (
	VariantStandard  Variant = "standard"
	VariantStacked   Variant = "stacked"
	VariantClustered Variant = "clustered"
)

// ErrInvalidVariant is returned for an unrecognized variant.
var ErrInvalidVariant = errors.New("layout: unsupported bar variant")

// DefaultBarWidth is used when BarSpec.Width is unset.
const DefaultBarWidth = 0.8

// BarSpec configures bar geometry for one chart build.
type BarSpec struct {
	Variant Variant
	// Width is the nominal bar width for standard/stacked bars, and the
	// full cluster width for clustered bars. Zero means DefaultBarWidth.
	Width float64
	// Space is the gap between bars in a cluster, or the stacked-segment
	// spacing fraction of the largest absolute row total.
	Space float64
	// Horizontal swaps the position and value axes at the consumer edge;
	// the numeric layout is orientation-invariant.
	Horizontal bool
}

// Segment is one drawable bar or stack segment.
type Segment struct {
	Row    string
	Series string

	// Position and Width run along the category axis; Start and Length
	// along the value axis.
	Position float64
	Width    float64
	Start    float64
	Length   float64
}

// Rect converts a segment to drawing coordinates. Vertical charts map the
// category axis to x; horizontal charts swap.
func (s Segment) Rect(horizontal bool) (x, y, w, h float64) {
	if horizontal {
		return s.Start, s.Position, s.Length, s.Width
	}
	return s.Position, s.Start, s.Width, s.Length
}

// Tick labels one category on the position axis.
type Tick struct {
	Position float64
	Label    string
}

// BarLayout is the full geometry for one bar chart.
type BarLayout struct {
	Variant  Variant
	Segments []Segment
	Ticks    []Tick
}

// Bars computes the bar layout for a pivot table. A table with at most one
// column always lays out as standard bars regardless of the requested
// variant; otherwise the requested variant applies.
func Bars(t *pivot.Table, spec BarSpec) (*BarLayout, error) {
	switch spec.Variant {
	case VariantStandard, VariantStacked, VariantClustered, "":
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidVariant, spec.Variant)
	}
	if spec.Width <= 0 {
		spec.Width = DefaultBarWidth
	}

	variant := spec.Variant
	if t.NumCols() <= 1 || variant == "" || variant == VariantStandard {
		variant = VariantStandard
	}

	switch variant {
	case VariantStandard:
		return standardBars(t, spec), nil
	case VariantStacked:
		return stackedBars(t, spec), nil
	default:
		return clusteredBars(t, spec), nil
	}
}

// standardBars places one bar per row key at integer positions.
func standardBars(t *pivot.Table, spec BarSpec) *BarLayout {
	rows := t.RowKeys()
	series := ""
	if t.NumCols() > 0 {
		series = t.ColKeys()[0]
	}
	l := &BarLayout{Variant: VariantStandard}
	for i, rk := range rows {
		length := 0.0
		if t.NumCols() > 0 {
			length = t.Value(i, 0)
		}
		l.Segments = append(l.Segments, Segment{
			Row:      rk,
			Series:   series,
			Position: float64(i),
			Width:    spec.Width,
			Length:   length,
		})
		l.Ticks = append(l.Ticks, Tick{Position: float64(i), Label: rk})
	}
	return l
}

// stackedBars accumulates segments per row with a signed running offset.
// After each segment the offset advances by value + sign(value)*space*M,
// where M is the largest absolute row total, so positive values stack
// upward and negative values downward with a gap proportional to the
// tallest stack.
func stackedBars(t *pivot.Table, spec BarSpec) *BarLayout {
	rows := t.RowKeys()
	cols := t.ColKeys()
	maxAbs := t.MaxAbsRowSum()

	l := &BarLayout{Variant: VariantStacked}
	for i, rk := range rows {
		offset := 0.0
		for j, ck := range cols {
			v := t.Value(i, j)
			l.Segments = append(l.Segments, Segment{
				Row:      rk,
				Series:   ck,
				Position: float64(i),
				Width:    spec.Width,
				Start:    offset,
				Length:   v,
			})
			offset += v + sign(v)*spec.Space*maxAbs
		}
		l.Ticks = append(l.Ticks, Tick{Position: float64(i), Label: rk})
	}
	return l
}

// clusteredBars places the series side by side within a cluster of the
// configured width, centering the tick on the whole cluster. Positions are
// left edges, so the cluster midpoint is half its full extent.
func clusteredBars(t *pivot.Table, spec BarSpec) *BarLayout {
	rows := t.RowKeys()
	cols := t.ColKeys()
	n := float64(len(cols))
	barWidth := (spec.Width - (n-1)*spec.Space) / n
	tickOffset := (n*barWidth + (n-1)*spec.Space) / 2

	l := &BarLayout{Variant: VariantClustered}
	for i, rk := range rows {
		base := float64(i)
		for j, ck := range cols {
			l.Segments = append(l.Segments, Segment{
				Row:      rk,
				Series:   ck,
				Position: base + float64(j)*(barWidth+spec.Space),
				Width:    barWidth,
				Length:   t.Value(i, j),
			})
		}
		l.Ticks = append(l.Ticks, Tick{Position: base + tickOffset, Label: rk})
	}
	return l
}

// sign returns -1, 0, or 1. Zero-length segments must not advance the
// stacked offset.
func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

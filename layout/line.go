package layout

import "github.com/osamashahatit/matchart-sub000/pivot"

// Series is one numeric line series, one value per pivot row key.
type Series struct {
	// Name is the legend label; empty for a single unlabeled line.
	Name   string
	Values []float64
}

// Lines extracts line series from a pivot table. A table with at most one
// column yields a single unlabeled series; otherwise each column becomes a
// legend-labeled series. Running totals are applied upstream by the
// pipeline, so extraction here is plain column reads.
func Lines(t *pivot.Table) []Series {
	if t.NumCols() <= 1 {
		values := make([]float64, t.NumRows())
		if t.NumCols() == 1 {
			values = t.Column(0)
		}
		return []Series{{Values: values}}
	}

	cols := t.ColKeys()
	out := make([]Series, len(cols))
	for j, ck := range cols {
		out[j] = Series{Name: ck, Values: t.Column(j)}
	}
	return out
}

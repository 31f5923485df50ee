package pivot

import (
	"fmt"

	"github.com/osamashahatit/matchart-sub000/dataset"
)

// Props is the declarative configuration for one chart build. Built once
// per call and never mutated.
type Props struct {
	GroupBy string  // categorical column producing row keys
	Value   string  // numeric column being aggregated
	Series  string  // optional categorical column producing column keys
	Agg     AggFunc // aggregation function; empty means sum

	Limit   *Limit // optional top/bottom-N restriction
	RowSort *Sort  // optional row ordering
	ColSort *Sort  // optional column ordering

	// RunningTotal applies a per-column cumulative sum after the pipeline
	// (line charts only).
	RunningTotal bool
}

// Result is the pipeline output handed to layout and renderers.
type Result struct {
	Table *Table
	// Rows is the subset of the source dataset whose grouping value
	// survived limiting, in original order.
	Rows  *dataset.Dataset
	Props Props
}

// Run executes the data pipeline: aggregate, then limit, then sort rows,
// then sort columns, then filter the source rows to the surviving row keys.
// Limiting precedes sorting so the final order reflects the configured sort
// rather than the limit's magnitude ordering.
func Run(ds *dataset.Dataset, p Props) (*Result, error) {
	if p.Agg == "" {
		p.Agg = AggSum
	}

	t, err := Build(ds, p.GroupBy, p.Value, p.Series, p.Agg)
	if err != nil {
		return nil, err
	}

	if p.Limit != nil {
		if t, err = t.Limit(*p.Limit); err != nil {
			return nil, fmt.Errorf("limit: %w", err)
		}
	}
	if p.RowSort != nil {
		if t, err = t.Sort(AxisRows, *p.RowSort); err != nil {
			return nil, fmt.Errorf("sort rows: %w", err)
		}
	}
	if p.ColSort != nil {
		if t, err = t.Sort(AxisColumns, *p.ColSort); err != nil {
			return nil, fmt.Errorf("sort columns: %w", err)
		}
	}

	keep := make(map[string]bool, t.NumRows())
	for _, k := range t.RowKeys() {
		keep[k] = true
	}
	rows := ds.Filter(func(r dataset.Row) bool {
		return keep[dataset.String(r[p.GroupBy])]
	})

	if p.RunningTotal {
		t = t.CumulativeColumns()
	}

	return &Result{Table: t, Rows: rows, Props: p}, nil
}

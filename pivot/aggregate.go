package pivot

import (
	"errors"
	"fmt"
	"sort"

	"github.com/osamashahatit/matchart-sub000/dataset"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// AggFunc names a reduction applied to all raw values sharing a
// (row key, column key) pair.
type AggFunc string

// Supported aggregation functions.
const (
	AggSum    AggFunc = "sum"
	AggMean   AggFunc = "mean"
	AggCount  AggFunc = "count"
	AggMin    AggFunc = "min"
	AggMax    AggFunc = "max"
	AggMedian AggFunc = "median"
	AggFirst  AggFunc = "first"
	AggLast   AggFunc = "last"
)

// ErrInvalidAggregation is returned when the aggregation function name is
// not one of the supported set.
var ErrInvalidAggregation = errors.New("pivot: invalid aggregation function")

// DefaultColumn is the synthetic column key used when no series column is
// configured.
const DefaultColumn = "value"

// valid aggregation set for fast membership checks.
var aggFuncs = map[AggFunc]bool{
	AggSum: true, AggMean: true, AggCount: true, AggMin: true,
	AggMax: true, AggMedian: true, AggFirst: true, AggLast: true,
}

// Build aggregates a dataset into a pivot table. Row keys are the distinct
// values of the group column and column keys the distinct values of the
// series column, both in first-seen order; series may be empty, producing a
// single DefaultColumn column. Cells are rounded to 2 decimals; combinations
// with no matching rows stay 0.
func Build(ds *dataset.Dataset, group, value, series string, agg AggFunc) (*Table, error) {
	if !aggFuncs[agg] {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAggregation, agg)
	}

	var rowKeys, colKeys []string
	rowSeen := make(map[string]bool)
	colSeen := make(map[string]bool)
	buckets := make(map[string]map[string][]float64)

	for i := 0; i < ds.Len(); i++ {
		row := ds.Row(i)
		rowKey := dataset.String(row[group])
		colKey := DefaultColumn
		if series != "" {
			colKey = dataset.String(row[series])
		}

		var v float64
		if agg == AggCount {
			// count tallies rows in the bucket; nil cells don't count and
			// the value never needs to be numeric.
			if row[value] == nil {
				continue
			}
			v = 1
		} else {
			f, err := dataset.Float(row[value])
			if err != nil {
				return nil, fmt.Errorf("aggregate column %q: %w", value, err)
			}
			v = f
		}

		if !rowSeen[rowKey] {
			rowSeen[rowKey] = true
			rowKeys = append(rowKeys, rowKey)
		}
		if !colSeen[colKey] {
			colSeen[colKey] = true
			colKeys = append(colKeys, colKey)
		}
		if buckets[rowKey] == nil {
			buckets[rowKey] = make(map[string][]float64)
		}
		buckets[rowKey][colKey] = append(buckets[rowKey][colKey], v)
	}

	if series == "" && len(colKeys) == 0 {
		colKeys = []string{DefaultColumn}
	}

	t := NewTable(rowKeys, colKeys)
	for i, rk := range rowKeys {
		for j, ck := range colKeys {
			vals := buckets[rk][ck]
			if len(vals) == 0 {
				continue
			}
			t.cells[i][j] = round2(reduce(agg, vals))
		}
	}
	return t, nil
}

func reduce(agg AggFunc, vals []float64) float64 {
	switch agg {
	case AggSum, AggCount:
		return floats.Sum(vals)
	case AggMean:
		return stat.Mean(vals, nil)
	case AggMin:
		return floats.Min(vals)
	case AggMax:
		return floats.Max(vals)
	case AggMedian:
		sorted := append([]float64(nil), vals...)
		sort.Float64s(sorted)
		return stat.Quantile(0.5, stat.Empirical, sorted, nil)
	case AggFirst:
		return vals[0]
	case AggLast:
		return vals[len(vals)-1]
	}
	// Unreachable: Build validates agg before reducing.
	return 0
}

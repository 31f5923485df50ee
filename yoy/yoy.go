// Package yoy computes year-over-year growth ratios per category by
// aligning two calendar years over matched day-of-year windows.
package yoy

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/osamashahatit/matchart-sub000/dataset"
	"github.com/osamashahatit/matchart-sub000/pivot"
)

// ErrYears is the sentinel for all year-selection and validation failures.
var ErrYears = errors.New("yoy: invalid years")

// yearColumn is the synthetic series column injected before re-aggregation.
const yearColumn = "__yoy_year"

// Ratio is the growth ratio for one category (pivot row key).
type Ratio struct {
	Key string
	// Value is (current-previous)/previous rounded to 4 decimals, +Inf for
	// growth from zero, and 0 where both years are zero.
	Value float64
}

// Result is the aligned two-year comparison.
type Result struct {
	PreviousYear int
	CurrentYear  int
	// Table is the re-aggregated pivot with one column per year, previous
	// first, rows in first-seen category order.
	Table  *pivot.Table
	Ratios []Ratio
}

// Compute aligns two years of a dataset and produces per-category growth
// ratios. With years nil, the two most recent years in the data are used;
// otherwise exactly two distinct years, both present in the data, must be
// given (in either order). The previous year is truncated to the maximum
// day-of-year present in the current year so a partial current year is
// compared against the same fraction of the previous one. Aggregation
// re-runs with the chart's group/value/agg configuration; p.Series is
// ignored because the year takes over the series role.
func Compute(ds *dataset.Dataset, dateColumn string, years []int, p pivot.Props) (*Result, error) {
	times := make([]struct {
		row dataset.Row
		day int
		yr  int
	}, 0, ds.Len())
	present := make(map[int]bool)
	for i := 0; i < ds.Len(); i++ {
		row := ds.Row(i)
		t, err := dataset.Time(row[dateColumn])
		if err != nil {
			return nil, fmt.Errorf("date column %q row %d: %w", dateColumn, i, err)
		}
		times = append(times, struct {
			row dataset.Row
			day int
			yr  int
		}{row, t.YearDay(), t.Year()})
		present[t.Year()] = true
	}

	prev, curr, err := resolveYears(present, years)
	if err != nil {
		return nil, err
	}

	// Matched comparison window: the current year's data may be partial, so
	// cut the previous year at the same day-of-year.
	maxDay := 0
	for _, r := range times {
		if r.yr == curr && r.day > maxDay {
			maxDay = r.day
		}
	}

	var combined []dataset.Row
	prevRows, currRows := 0, 0
	for _, r := range times {
		switch {
		case r.yr == curr:
			currRows++
		case r.yr == prev && r.day <= maxDay:
			prevRows++
		default:
			continue
		}
		row := make(dataset.Row, len(r.row)+1)
		for k, v := range r.row {
			row[k] = v
		}
		row[yearColumn] = strconv.Itoa(r.yr)
		combined = append(combined, row)
	}
	if prevRows == 0 {
		return nil, fmt.Errorf("%w: no rows for year %d within day-of-year %d", ErrYears, prev, maxDay)
	}
	if currRows == 0 {
		return nil, fmt.Errorf("%w: no rows for year %d", ErrYears, curr)
	}

	agg := p.Agg
	if agg == "" {
		agg = pivot.AggSum
	}
	t, err := pivot.Build(dataset.New(combined), p.GroupBy, p.Value, yearColumn, agg)
	if err != nil {
		return nil, err
	}
	prevKey := strconv.Itoa(prev)
	currKey := strconv.Itoa(curr)
	t, err = t.Sort(pivot.AxisColumns, pivot.Sort{Keys: []string{prevKey, currKey}})
	if err != nil {
		return nil, err
	}

	ratios := make([]Ratio, 0, t.NumRows())
	for _, key := range t.RowKeys() {
		before, _ := t.Lookup(key, prevKey)
		after, _ := t.Lookup(key, currKey)
		ratios = append(ratios, Ratio{Key: key, Value: ratio(before, after)})
	}

	return &Result{PreviousYear: prev, CurrentYear: curr, Table: t, Ratios: ratios}, nil
}

// resolveYears picks (previous, current) from the data or validates a
// requested pair.
func resolveYears(present map[int]bool, years []int) (int, int, error) {
	if len(years) == 0 {
		if len(present) < 2 {
			return 0, 0, fmt.Errorf("%w: need at least 2 distinct years, have %d", ErrYears, len(present))
		}
		all := make([]int, 0, len(present))
		for y := range present {
			all = append(all, y)
		}
		sort.Ints(all)
		return all[len(all)-2], all[len(all)-1], nil
	}

	if len(years) != 2 {
		return 0, 0, fmt.Errorf("%w: expected exactly 2 years, got %d", ErrYears, len(years))
	}
	a, b := years[0], years[1]
	if a == b {
		return 0, 0, fmt.Errorf("%w: years must be distinct, both are %d", ErrYears, a)
	}
	if a > b {
		a, b = b, a
	}
	if !present[a] {
		return 0, 0, fmt.Errorf("%w: year %d not present in data", ErrYears, a)
	}
	if !present[b] {
		return 0, 0, fmt.Errorf("%w: year %d not present in data", ErrYears, b)
	}
	return a, b, nil
}

// ratio computes the growth ratio with the zero-baseline conventions:
// growth from exactly 0 is +Inf (unbounded growth, not an error), decline
// from 0 is -Inf, and 0 over 0 is 0.
func ratio(previous, current float64) float64 {
	if previous == 0 {
		switch {
		case current > 0:
			return math.Inf(1)
		case current < 0:
			return math.Inf(-1)
		}
		return 0
	}
	return round4((current - previous) / previous)
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

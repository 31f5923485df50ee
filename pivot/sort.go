package pivot

import (
	"errors"
	"fmt"
	"sort"
)

// Axis names the pivot axis a sort applies to.
type Axis string

// Sortable axes.
const (
	AxisRows    Axis = "rows"
	AxisColumns Axis = "columns"
)

// SortMethod is the sort direction.
type SortMethod string

// Sort directions.
const (
	SortAsc  SortMethod = "asc"
	SortDesc SortMethod = "desc"
)

// SortBasis selects what keys are compared by.
type SortBasis string

// Sort bases. SortByValue compares the sum across the opposite axis.
const (
	SortByLabel SortBasis = "label"
	SortByValue SortBasis = "value"
)

// ErrInvalidSort is returned for an unknown axis or a malformed spec.
var ErrInvalidSort = errors.New("pivot: invalid sort")

// Sort describes one of two ordering strategies: an explicit key order
// (Keys non-empty, Method/Basis ignored) or a method/basis pair. With an
// explicit order, keys absent from the data produce zero-filled slots and
// keys absent from the list are dropped.
type Sort struct {
	Keys   []string
	Method SortMethod
	Basis  SortBasis
}

// Sort returns a table with the target axis reordered per the spec. The
// three strategies (explicit, label, value) dispatch through this single
// function.
func (t *Table) Sort(axis Axis, s Sort) (*Table, error) {
	if axis != AxisRows && axis != AxisColumns {
		return nil, fmt.Errorf("%w: axis %q", ErrInvalidSort, axis)
	}

	if len(s.Keys) > 0 {
		if axis == AxisRows {
			return t.reindexRows(s.Keys), nil
		}
		return t.reindexCols(s.Keys), nil
	}

	if s.Method != SortAsc && s.Method != SortDesc {
		return nil, fmt.Errorf("%w: method %q", ErrInvalidSort, s.Method)
	}
	if s.Basis != SortByLabel && s.Basis != SortByValue {
		return nil, fmt.Errorf("%w: basis %q", ErrInvalidSort, s.Basis)
	}

	var keys []string
	if axis == AxisRows {
		keys = t.RowKeys()
	} else {
		keys = t.ColKeys()
	}

	switch s.Basis {
	case SortByLabel:
		sort.SliceStable(keys, func(a, b int) bool {
			if s.Method == SortAsc {
				return keys[a] < keys[b]
			}
			return keys[a] > keys[b]
		})
	case SortByValue:
		sums := make(map[string]float64, len(keys))
		if axis == AxisRows {
			for i, k := range t.rowKeys {
				sums[k] = t.RowSum(i)
			}
		} else {
			for j, k := range t.colKeys {
				sums[k] = t.ColSum(j)
			}
		}
		sort.SliceStable(keys, func(a, b int) bool {
			if s.Method == SortAsc {
				return sums[keys[a]] < sums[keys[b]]
			}
			return sums[keys[a]] > sums[keys[b]]
		})
	}

	if axis == AxisRows {
		return t.reindexRows(keys), nil
	}
	return t.reindexCols(keys), nil
}

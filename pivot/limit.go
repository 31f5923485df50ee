package pivot

import (
	"errors"
	"fmt"
	"sort"
)

// LimitDirection selects which end of the row-total ordering survives.
type LimitDirection string

// Limit directions.
const (
	LimitTop    LimitDirection = "top"
	LimitBottom LimitDirection = "bottom"
)

// ErrInvalidLimit is returned for an unknown direction or non-positive count.
var ErrInvalidLimit = errors.New("pivot: invalid limit")

// Limit restricts pivot rows to the N largest or smallest by row total.
type Limit struct {
	Direction LimitDirection
	Count     int
}

// Limit returns a table restricted to the l.Count rows with the largest
// (top) or smallest (bottom) sum across columns, ordered by that sum
// (descending for top, ascending for bottom). Ties keep their pre-limit
// relative order. A count exceeding the available rows clamps to all rows.
func (t *Table) Limit(l Limit) (*Table, error) {
	if l.Direction != LimitTop && l.Direction != LimitBottom {
		return nil, fmt.Errorf("%w: direction %q", ErrInvalidLimit, l.Direction)
	}
	if l.Count <= 0 {
		return nil, fmt.Errorf("%w: count %d", ErrInvalidLimit, l.Count)
	}

	sums := make([]float64, t.NumRows())
	idx := make([]int, t.NumRows())
	for i := range idx {
		idx[i] = i
		sums[i] = t.RowSum(i)
	}
	sort.SliceStable(idx, func(a, b int) bool {
		if l.Direction == LimitTop {
			return sums[idx[a]] > sums[idx[b]]
		}
		return sums[idx[a]] < sums[idx[b]]
	})

	n := l.Count
	if n > len(idx) {
		n = len(idx)
	}
	return t.selectRows(idx[:n]), nil
}

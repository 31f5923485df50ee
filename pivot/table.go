// Package pivot transforms raw tabular datasets into the ordered numeric
// tables consumed by bar and line layout. It covers aggregation into a
// pivot table, top/bottom-N limiting, row/column sorting, and the pipeline
// that chains them in the required order.
package pivot

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Table is a 2D numeric pivot table. Row keys come from the distinct values
// of the grouping column, column keys from the series column (or a single
// synthetic column when no series column is configured). Every cell holds a
// finite float; combinations absent from the source data are 0.
type Table struct {
	rowKeys []string
	colKeys []string
	rowIdx  map[string]int
	colIdx  map[string]int
	cells   [][]float64 // [row][col]
}

// NewTable builds a zero-filled table with the given row and column keys.
func NewTable(rowKeys, colKeys []string) *Table {
	t := &Table{
		rowKeys: append([]string(nil), rowKeys...),
		colKeys: append([]string(nil), colKeys...),
		rowIdx:  make(map[string]int, len(rowKeys)),
		colIdx:  make(map[string]int, len(colKeys)),
		cells:   make([][]float64, len(rowKeys)),
	}
	for i, k := range t.rowKeys {
		t.rowIdx[k] = i
		t.cells[i] = make([]float64, len(colKeys))
	}
	for j, k := range t.colKeys {
		t.colIdx[k] = j
	}
	return t
}

// NumRows returns the number of rows.
func (t *Table) NumRows() int { return len(t.rowKeys) }

// NumCols returns the number of columns.
func (t *Table) NumCols() int { return len(t.colKeys) }

// RowKeys returns a copy of the ordered row keys.
func (t *Table) RowKeys() []string { return append([]string(nil), t.rowKeys...) }

// ColKeys returns a copy of the ordered column keys.
func (t *Table) ColKeys() []string { return append([]string(nil), t.colKeys...) }

// Value returns the cell at (row, col) by position.
func (t *Table) Value(row, col int) float64 { return t.cells[row][col] }

// Lookup returns the cell addressed by key, and whether both keys exist.
func (t *Table) Lookup(rowKey, colKey string) (float64, bool) {
	i, ok := t.rowIdx[rowKey]
	if !ok {
		return 0, false
	}
	j, ok := t.colIdx[colKey]
	if !ok {
		return 0, false
	}
	return t.cells[i][j], true
}

// Row returns a copy of the values in row i, in column order.
func (t *Table) Row(i int) []float64 {
	return append([]float64(nil), t.cells[i]...)
}

// Column returns a copy of the values in column j, in row order.
func (t *Table) Column(j int) []float64 {
	out := make([]float64, len(t.rowKeys))
	for i := range t.cells {
		out[i] = t.cells[i][j]
	}
	return out
}

// RowSum returns the sum across all columns of row i.
func (t *Table) RowSum(i int) float64 {
	return floats.Sum(t.cells[i])
}

// ColSum returns the sum across all rows of column j.
func (t *Table) ColSum(j int) float64 {
	sum := 0.0
	for i := range t.cells {
		sum += t.cells[i][j]
	}
	return sum
}

// MaxAbsRowSum returns the maximum over all rows of the sum of absolute cell
// values. Stacked bar spacing is proportional to this, so segment gaps stay
// constant regardless of which row is tallest.
func (t *Table) MaxAbsRowSum() float64 {
	max := 0.0
	for i := range t.cells {
		sum := 0.0
		for _, v := range t.cells[i] {
			sum += math.Abs(v)
		}
		if sum > max {
			max = sum
		}
	}
	return max
}

// CumulativeColumns returns a new table where each column holds the running
// total down its rows, re-rounded to 2 decimals.
func (t *Table) CumulativeColumns() *Table {
	out := NewTable(t.rowKeys, t.colKeys)
	for j := range t.colKeys {
		total := 0.0
		for i := range t.rowKeys {
			total += t.cells[i][j]
			out.cells[i][j] = round2(total)
		}
	}
	return out
}

// Equal reports whether two tables have identical keys, order, and cells.
func (t *Table) Equal(o *Table) bool {
	if o == nil || len(t.rowKeys) != len(o.rowKeys) || len(t.colKeys) != len(o.colKeys) {
		return false
	}
	for i, k := range t.rowKeys {
		if o.rowKeys[i] != k {
			return false
		}
	}
	for j, k := range t.colKeys {
		if o.colKeys[j] != k {
			return false
		}
	}
	for i := range t.cells {
		for j := range t.cells[i] {
			if t.cells[i][j] != o.cells[i][j] {
				return false
			}
		}
	}
	return true
}

// selectRows builds a new table holding the given row positions in order.
func (t *Table) selectRows(idx []int) *Table {
	keys := make([]string, len(idx))
	for n, i := range idx {
		keys[n] = t.rowKeys[i]
	}
	out := NewTable(keys, t.colKeys)
	for n, i := range idx {
		copy(out.cells[n], t.cells[i])
	}
	return out
}

// reindexRows builds a new table whose rows follow keys exactly. Keys absent
// from the source stay zero-filled; source rows not listed are dropped.
func (t *Table) reindexRows(keys []string) *Table {
	out := NewTable(keys, t.colKeys)
	for n, k := range keys {
		if i, ok := t.rowIdx[k]; ok {
			copy(out.cells[n], t.cells[i])
		}
	}
	return out
}

// reindexCols is the column analogue of reindexRows.
func (t *Table) reindexCols(keys []string) *Table {
	out := NewTable(t.rowKeys, keys)
	for n, k := range keys {
		if j, ok := t.colIdx[k]; ok {
			for i := range t.cells {
				out.cells[i][n] = t.cells[i][j]
			}
		}
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

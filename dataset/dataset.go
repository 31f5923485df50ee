// Package dataset holds the immutable tabular data that feeds the chart
// pipeline. A Dataset is an ordered sequence of rows; pipeline stages never
// mutate a Dataset, they derive new ones.
package dataset

// Row maps a column name to a scalar value (string, number, or time).
type Row map[string]any

// Dataset is an ordered, read-only collection of rows.
type Dataset struct {
	rows []Row
}

// New builds a Dataset from rows. The slice is copied; the row maps are
// shared and must not be modified by the caller afterwards.
func New(rows []Row) *Dataset {
	copied := make([]Row, len(rows))
	copy(copied, rows)
	return &Dataset{rows: copied}
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	return len(d.rows)
}

// Row returns the row at index i.
func (d *Dataset) Row(i int) Row {
	return d.rows[i]
}

// Rows returns a copy of the row slice.
func (d *Dataset) Rows() []Row {
	out := make([]Row, len(d.rows))
	copy(out, d.rows)
	return out
}

// Filter returns a new Dataset containing the rows for which keep returns
// true, preserving the original order.
func (d *Dataset) Filter(keep func(Row) bool) *Dataset {
	out := make([]Row, 0, len(d.rows))
	for _, r := range d.rows {
		if keep(r) {
			out = append(out, r)
		}
	}
	return &Dataset{rows: out}
}

// Distinct returns the distinct values of a column as strings, in
// first-seen order.
func (d *Dataset) Distinct(column string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range d.rows {
		v := String(r[column])
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

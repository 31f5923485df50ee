package pivot

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sortFixture() *Table {
	return tableFromCells(
		[]string{"banana", "apple", "cherry"},
		[]string{"q2", "q1"},
		[][]float64{
			{3, 4}, // banana: 7
			{1, 1}, // apple:  2
			{2, 2}, // cherry: 4
		},
	)
}

func TestSortRowsByLabel(t *testing.T) {
	tests := []struct {
		name   string
		method SortMethod
		want   []string
	}{
		{"ascending", SortAsc, []string{"apple", "banana", "cherry"}},
		{"descending", SortDesc, []string{"cherry", "banana", "apple"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := sortFixture().Sort(AxisRows, Sort{Method: tt.method, Basis: SortByLabel})
			if err != nil {
				t.Fatalf("Sort failed: %v", err)
			}
			if diff := cmp.Diff(tt.want, got.RowKeys()); diff != "" {
				t.Errorf("row keys mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSortRowsByValue(t *testing.T) {
	got, err := sortFixture().Sort(AxisRows, Sort{Method: SortAsc, Basis: SortByValue})
	if err != nil {
		t.Fatalf("Sort failed: %v", err)
	}
	if diff := cmp.Diff([]string{"apple", "cherry", "banana"}, got.RowKeys()); diff != "" {
		t.Errorf("row keys mismatch (-want +got):\n%s", diff)
	}

	// Row sums must be non-decreasing after an ascending value sort.
	prev := got.RowSum(0)
	for i := 1; i < got.NumRows(); i++ {
		sum := got.RowSum(i)
		if sum < prev {
			t.Errorf("row %d sum %v < previous %v", i, sum, prev)
		}
		prev = sum
	}
}

func TestSortColumnsByValue(t *testing.T) {
	// q2 total 6, q1 total 7
	got, err := sortFixture().Sort(AxisColumns, Sort{Method: SortDesc, Basis: SortByValue})
	if err != nil {
		t.Fatalf("Sort failed: %v", err)
	}
	if diff := cmp.Diff([]string{"q1", "q2"}, got.ColKeys()); diff != "" {
		t.Errorf("column keys mismatch (-want +got):\n%s", diff)
	}
	// Values follow their columns
	if v, _ := got.Lookup("banana", "q1"); v != 4 {
		t.Errorf("banana/q1 = %v, want 4", v)
	}
}

func TestSortColumnsByLabel(t *testing.T) {
	got, err := sortFixture().Sort(AxisColumns, Sort{Method: SortAsc, Basis: SortByLabel})
	if err != nil {
		t.Fatalf("Sort failed: %v", err)
	}
	if diff := cmp.Diff([]string{"q1", "q2"}, got.ColKeys()); diff != "" {
		t.Errorf("column keys mismatch (-want +got):\n%s", diff)
	}
}

func TestSortExplicitOrder(t *testing.T) {
	// Listed-but-absent keys become zero-filled slots; unlisted keys drop.
	got, err := sortFixture().Sort(AxisRows, Sort{Keys: []string{"cherry", "mango", "apple"}})
	if err != nil {
		t.Fatalf("Sort failed: %v", err)
	}
	if diff := cmp.Diff([]string{"cherry", "mango", "apple"}, got.RowKeys()); diff != "" {
		t.Errorf("row keys mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{2, 0, 1}, got.Column(0)); diff != "" {
		t.Errorf("q2 column mismatch (-want +got):\n%s", diff)
	}
	if _, ok := got.Lookup("banana", "q2"); ok {
		t.Error("banana should have been dropped")
	}
}

func TestSortIdempotent(t *testing.T) {
	spec := Sort{Method: SortDesc, Basis: SortByValue}
	once, err := sortFixture().Sort(AxisRows, spec)
	if err != nil {
		t.Fatalf("Sort failed: %v", err)
	}
	twice, err := once.Sort(AxisRows, spec)
	if err != nil {
		t.Fatalf("second Sort failed: %v", err)
	}
	if !twice.Equal(once) {
		t.Errorf("sort is not idempotent: %v vs %v", twice.RowKeys(), once.RowKeys())
	}
}

func TestSortInvalid(t *testing.T) {
	tests := []struct {
		name string
		axis Axis
		spec Sort
	}{
		{"bad axis", Axis("diagonal"), Sort{Method: SortAsc, Basis: SortByLabel}},
		{"missing method", AxisRows, Sort{Basis: SortByValue}},
		{"missing basis", AxisRows, Sort{Method: SortAsc}},
		{"bad method", AxisRows, Sort{Method: "sideways", Basis: SortByLabel}},
		{"bad basis", AxisColumns, Sort{Method: SortAsc, Basis: "volume"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := sortFixture().Sort(tt.axis, tt.spec); !errors.Is(err, ErrInvalidSort) {
				t.Errorf("expected ErrInvalidSort, got %v", err)
			}
		})
	}
}

package yoy

import (
	"errors"
	"math"
	"testing"

	"github.com/osamashahatit/matchart-sub000/dataset"
	"github.com/osamashahatit/matchart-sub000/pivot"
)

func props() pivot.Props {
	return pivot.Props{GroupBy: "category", Value: "amount", Agg: pivot.AggSum}
}

// yoyData has a full 2023 and a 2024 that stops at June 30. Category A's
// 2023 December row must fall outside the matched window; category B only
// exists in 2024.
func yoyData() *dataset.Dataset {
	return dataset.New([]dataset.Row{
		{"category": "A", "date": "2023-01-15", "amount": 40.0},
		{"category": "A", "date": "2023-05-20", "amount": 60.0},
		{"category": "A", "date": "2023-12-31", "amount": 999.0}, // outside window
		{"category": "A", "date": "2024-03-01", "amount": 60.0},
		{"category": "B", "date": "2024-06-30", "amount": 50.0},
	})
}

func TestComputeEndToEnd(t *testing.T) {
	res, err := Compute(yoyData(), "date", nil, props())
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}

	if res.PreviousYear != 2023 || res.CurrentYear != 2024 {
		t.Fatalf("years = %d vs %d, want 2023 vs 2024", res.PreviousYear, res.CurrentYear)
	}

	// The December 2023 row sits past 2024's last day-of-year and must be
	// excluded from the previous-year slice.
	if got, _ := res.Table.Lookup("A", "2023"); got != 100 {
		t.Errorf("A 2023 windowed total = %v, want 100", got)
	}
	if got, _ := res.Table.Lookup("A", "2024"); got != 60 {
		t.Errorf("A 2024 total = %v, want 60", got)
	}

	ratios := make(map[string]float64, len(res.Ratios))
	for _, r := range res.Ratios {
		ratios[r.Key] = r.Value
	}
	if got := ratios["A"]; got != -0.4 {
		t.Errorf("A ratio = %v, want -0.4", got)
	}
	// Growth from a zero baseline signals unbounded growth, not an error.
	if got := ratios["B"]; !math.IsInf(got, 1) {
		t.Errorf("B ratio = %v, want +Inf", got)
	}
}

func TestComputeColumnOrder(t *testing.T) {
	res, err := Compute(yoyData(), "date", nil, props())
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	cols := res.Table.ColKeys()
	if len(cols) != 2 || cols[0] != "2023" || cols[1] != "2024" {
		t.Errorf("columns = %v, want [2023 2024]", cols)
	}
}

func TestComputeExplicitYears(t *testing.T) {
	ds := dataset.New([]dataset.Row{
		{"category": "A", "date": "2021-02-01", "amount": 10.0},
		{"category": "A", "date": "2022-02-01", "amount": 20.0},
		{"category": "A", "date": "2023-02-01", "amount": 30.0},
	})

	// Order of the requested pair must not matter.
	res, err := Compute(ds, "date", []int{2022, 2021}, props())
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	if res.PreviousYear != 2021 || res.CurrentYear != 2022 {
		t.Errorf("years = %d vs %d, want 2021 vs 2022", res.PreviousYear, res.CurrentYear)
	}
	if got := res.Ratios[0].Value; got != 1.0 {
		t.Errorf("ratio = %v, want 1.0", got)
	}
}

func TestComputeBothZeroFillsZero(t *testing.T) {
	ds := dataset.New([]dataset.Row{
		{"category": "A", "date": "2023-02-01", "amount": 0.0},
		{"category": "A", "date": "2024-02-01", "amount": 0.0},
	})
	res, err := Compute(ds, "date", nil, props())
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	if got := res.Ratios[0].Value; got != 0 {
		t.Errorf("0/0 ratio = %v, want 0", got)
	}
}

func TestComputeRounding(t *testing.T) {
	ds := dataset.New([]dataset.Row{
		{"category": "A", "date": "2023-02-01", "amount": 3.0},
		{"category": "A", "date": "2024-02-01", "amount": 4.0},
	})
	res, err := Compute(ds, "date", nil, props())
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	// (4-3)/3 rounds to 4 decimals
	if got := res.Ratios[0].Value; got != 0.3333 {
		t.Errorf("ratio = %v, want 0.3333", got)
	}
}

func TestComputeValidation(t *testing.T) {
	oneYear := dataset.New([]dataset.Row{
		{"category": "A", "date": "2024-02-01", "amount": 1.0},
	})

	tests := []struct {
		name  string
		ds    *dataset.Dataset
		years []int
	}{
		{"single year in data", oneYear, nil},
		{"equal years", yoyData(), []int{2024, 2024}},
		{"year missing from data", yoyData(), []int{2019, 2024}},
		{"wrong count", yoyData(), []int{2022, 2023, 2024}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Compute(tt.ds, "date", tt.years, props()); !errors.Is(err, ErrYears) {
				t.Errorf("expected ErrYears, got %v", err)
			}
		})
	}
}

func TestComputeBadDateColumn(t *testing.T) {
	ds := dataset.New([]dataset.Row{
		{"category": "A", "date": "not-a-date", "amount": 1.0},
	})
	if _, err := Compute(ds, "date", nil, props()); !errors.Is(err, dataset.ErrNotTime) {
		t.Errorf("expected ErrNotTime, got %v", err)
	}
}

package dataset

import (
	"strings"
	"testing"
)

func TestFromCSV(t *testing.T) {
	in := strings.Join([]string{
		"region,product,amount",
		"north,widget,10",
		"south,gadget,2.5",
	}, "\n")

	ds, err := FromCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("FromCSV failed: %v", err)
	}

	if ds.Len() != 2 {
		t.Fatalf("expected 2 rows, got %d", ds.Len())
	}
	if got := String(ds.Row(0)["region"]); got != "north" {
		t.Errorf("row 0 region = %q, want north", got)
	}
	if got, err := Float(ds.Row(1)["amount"]); err != nil || got != 2.5 {
		t.Errorf("row 1 amount = %v (%v), want 2.5", got, err)
	}
}

func TestFromCSVEmpty(t *testing.T) {
	ds, err := FromCSV(strings.NewReader(""))
	if err != nil {
		t.Fatalf("FromCSV failed: %v", err)
	}
	if ds.Len() != 0 {
		t.Errorf("expected empty dataset, got %d rows", ds.Len())
	}
}

func TestFromCSVHeaderOnly(t *testing.T) {
	ds, err := FromCSV(strings.NewReader("a,b,c\n"))
	if err != nil {
		t.Fatalf("FromCSV failed: %v", err)
	}
	if ds.Len() != 0 {
		t.Errorf("expected 0 rows, got %d", ds.Len())
	}
}

func TestFromCSVRagged(t *testing.T) {
	// encoding/csv rejects rows with the wrong field count.
	_, err := FromCSV(strings.NewReader("a,b\n1,2,3\n"))
	if err == nil {
		t.Fatal("expected error for ragged row")
	}
}

package dataset

import (
	"errors"
	"testing"
	"time"
)

func TestFloat(t *testing.T) {
	tests := []struct {
		name    string
		in      any
		want    float64
		wantErr bool
	}{
		{"float64", 1.5, 1.5, false},
		{"int", 3, 3, false},
		{"int64", int64(-2), -2, false},
		{"numeric string", "2.25", 2.25, false},
		{"integer string", "7", 7, false},
		{"word", "seven", 0, true},
		{"nil", nil, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Float(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrNotNumeric) {
					t.Errorf("Float(%v) error = %v, want ErrNotNumeric", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Float(%v) failed: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Float(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestTime(t *testing.T) {
	tests := []struct {
		name    string
		in      any
		want    string
		wantErr bool
	}{
		{"date only", "2024-06-30", "2024-06-30", false},
		{"slashed date", "2024/06/30", "2024-06-30", false},
		{"date and time", "2024-06-30 12:30:00", "2024-06-30", false},
		{"rfc3339", "2024-06-30T12:30:00Z", "2024-06-30", false},
		{"time value", time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC), "2023-01-02", false},
		{"garbage", "soon", "", true},
		{"number", 42, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Time(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrNotTime) {
					t.Errorf("Time(%v) error = %v, want ErrNotTime", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Time(%v) failed: %v", tt.in, err)
			}
			if f := got.Format("2006-01-02"); f != tt.want {
				t.Errorf("Time(%v) = %s, want %s", tt.in, f, tt.want)
			}
		})
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"string", "abc", "abc"},
		{"nil", nil, ""},
		{"integral float", 2024.0, "2024"},
		{"fractional float", 1.5, "1.5"},
		{"int", 7, "7"},
		{"time", time.Date(2024, 6, 30, 10, 0, 0, 0, time.UTC), "2024-06-30"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := String(tt.in); got != tt.want {
				t.Errorf("String(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

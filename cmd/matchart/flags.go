package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/osamashahatit/matchart-sub000/pivot"
)

// parseLimit parses "top:5" / "bottom:3" into a Limit spec.
func parseLimit(s string) (*pivot.Limit, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("limit %q: want direction:count (e.g. top:5)", s)
	}
	count, err := strconv.Atoi(parts[1])
	if err != nil {
		return nil, fmt.Errorf("limit %q: count %q is not an integer", s, parts[1])
	}
	return &pivot.Limit{Direction: pivot.LimitDirection(parts[0]), Count: count}, nil
}

// parseSort parses "asc:label", "desc:value", or "keys:b,a,c" into a Sort
// spec.
func parseSort(s string) (*pivot.Sort, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("sort %q: want method:basis (e.g. asc:value) or keys:a,b,c", s)
	}
	if parts[0] == "keys" {
		keys := strings.Split(parts[1], ",")
		if len(keys) == 1 && keys[0] == "" {
			return nil, fmt.Errorf("sort %q: empty key list", s)
		}
		return &pivot.Sort{Keys: keys}, nil
	}
	return &pivot.Sort{
		Method: pivot.SortMethod(parts[0]),
		Basis:  pivot.SortBasis(parts[1]),
	}, nil
}

// parseYears parses "2023,2024" into a two-year slice; empty means auto.
func parseYears(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	years := make([]int, 0, len(parts))
	for _, p := range parts {
		y, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("years %q: %q is not a year", s, p)
		}
		years = append(years, y)
	}
	return years, nil
}

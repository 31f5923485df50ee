package dataset

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// Coercion failures. Wrapped with column context by callers.
var (
	ErrNotNumeric = errors.New("dataset: value is not numeric")
	ErrNotTime    = errors.New("dataset: value is not a date or time")
)

// timeLayouts are tried in order when coercing a string to a time.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
}

// Float coerces a scalar to float64. Strings are parsed; nil and
// non-numeric values fail with ErrNotNumeric.
func Float(v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int32:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case uint:
		return float64(x), nil
	case uint64:
		return float64(x), nil
	case string:
		f, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrNotNumeric, x)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("%w: %T", ErrNotNumeric, v)
	}
}

// Time coerces a scalar to a time.Time. Strings are parsed against a small
// set of common layouts (RFC3339, dates with and without a time part).
func Time(v any) (time.Time, error) {
	switch x := v.(type) {
	case time.Time:
		return x, nil
	case string:
		for _, layout := range timeLayouts {
			if t, err := time.Parse(layout, x); err == nil {
				return t, nil
			}
		}
		return time.Time{}, fmt.Errorf("%w: %q", ErrNotTime, x)
	default:
		return time.Time{}, fmt.Errorf("%w: %T", ErrNotTime, v)
	}
}

// String renders a scalar as its categorical label. nil becomes the empty
// string; floats that hold integral values drop the trailing ".0" so that
// "2024" and 2024.0 name the same category.
func String(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		if x == float64(int64(x)) {
			return strconv.FormatInt(int64(x), 10)
		}
		return strconv.FormatFloat(x, 'g', -1, 64)
	case time.Time:
		return x.Format("2006-01-02")
	default:
		return fmt.Sprint(v)
	}
}

package record

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// Record is one domain item (post, event, venture, member) as decoded from
// the backend. No schema is assumed.
type Record map[string]any

// DefaultDateLayouts lists the layouts tried, in order, when a date alias
// holds a string.
//
//nolint:gochecknoglobals // Read-only lookup table.
var DefaultDateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
}

// First returns the value of the first key in keys whose value is present and
// not empty. Empty means nil, "", a numeric zero, NaN or false.
func First(r Record, keys []string) (any, bool) {
	for _, k := range keys {
		v, ok := r[k]
		if !ok || isEmpty(v) {
			continue
		}
		return v, true
	}
	return nil, false
}

// String resolves keys with First and returns the value if it is a string.
func String(r Record, keys []string) (string, bool) {
	v, ok := First(r, keys)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Number resolves keys with First and converts the value to float64.
// Numeric strings are accepted. Anything else yields 0.
func Number(r Record, keys []string) float64 {
	v, ok := First(r, keys)
	if !ok {
		return 0
	}
	f, ok := toFloat(v)
	if !ok {
		return 0
	}
	return f
}

// Time resolves keys with First and interprets the value as a point in time.
// Strings are parsed with layouts in order; numbers are epoch milliseconds.
func Time(r Record, keys []string, layouts []string) (time.Time, bool) {
	v, ok := First(r, keys)
	if !ok {
		return time.Time{}, false
	}

	switch t := v.(type) {
	case time.Time:
		return t, !t.IsZero()
	case *time.Time:
		if t == nil || t.IsZero() {
			return time.Time{}, false
		}
		return *t, true
	case string:
		return parseTime(strings.TrimSpace(t), layouts)
	}

	if ms, ok := toFloat(v); ok {
		return time.UnixMilli(int64(ms)).UTC(), true
	}
	return time.Time{}, false
}

func parseTime(s string, layouts []string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func isEmpty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case bool:
		return !t
	case json.Number:
		f, err := t.Float64()
		return err == nil && f == 0
	}
	if f, ok := toFloat(v); ok {
		return f == 0 || math.IsNaN(f)
	}
	return false
}

//nolint:cyclop // One branch per numeric kind.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

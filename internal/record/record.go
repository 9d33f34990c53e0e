// Package record reads fields out of loosely-shaped upstream records.
package record

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"foodrisk/internal/domain"
)

// MultiValueSeparator is the delimiter the feed uses to pack several values in one field.
const MultiValueSeparator = " *** "

// Pick returns the value of the first candidate key that is present and non-nil.
// Keys are compared case-insensitively against the record's own casing; candidate
// order is priority order.
func Pick(rec domain.RawRecord, candidates ...string) (any, bool) {
	if len(rec) == 0 {
		return nil, false
	}

	lookup := make(map[string]any, len(rec))
	for k, v := range rec {
		lookup[strings.ToLower(k)] = v
	}

	for _, key := range candidates {
		if v, ok := lookup[strings.ToLower(key)]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// String is Pick with the value rendered as trimmed text. Absent fields yield "".
func String(rec domain.RawRecord, candidates ...string) string {
	v, ok := Pick(rec, candidates...)
	if !ok {
		return ""
	}
	return strings.TrimSpace(render(v))
}

func render(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	case []any:
		parts := make([]string, 0, len(t))
		for _, item := range t {
			if item == nil {
				continue
			}
			if s := strings.TrimSpace(render(item)); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, MultiValueSeparator)
	case map[string]any:
		b, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(b)
	default:
		return fmt.Sprint(t)
	}
}

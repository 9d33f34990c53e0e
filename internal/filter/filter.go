// Package filter matches aggregated alerts against a subscriber's saved rules.
package filter

import (
	"strings"

	"foodrisk/internal/domain"
)

// Filters are the rule values of one subscription grouped by dimension.
type Filters struct {
	Hazards    []string
	Categories []string
	Countries  []string
}

// FromRules groups rules by type. Blank values and unknown types are ignored.
func FromRules(rules []domain.FilterRule) Filters {
	var f Filters
	for _, r := range rules {
		v := strings.TrimSpace(r.RuleValue)
		if v == "" {
			continue
		}
		switch r.RuleType {
		case domain.RuleHazard:
			f.Hazards = append(f.Hazards, v)
		case domain.RuleCategory:
			f.Categories = append(f.Categories, v)
		case domain.RuleCountry:
			f.Countries = append(f.Countries, v)
		}
	}
	return f
}

// Empty reports whether no filtering is configured.
func (f Filters) Empty() bool {
	return len(f.Hazards) == 0 && len(f.Categories) == 0 && len(f.Countries) == 0
}

// Match reports whether alert satisfies every non-empty dimension of f. Within a
// dimension any filter value that is a case-insensitive substring of any alert value
// is enough. Countries are checked against both origin and notifying country.
func Match(alert domain.AggregatedAlert, f Filters) bool {
	if f.Empty() {
		return true
	}
	if len(f.Hazards) > 0 && !anyContains(alert.Hazards, f.Hazards) {
		return false
	}
	if len(f.Categories) > 0 && !anyContains([]string{alert.ProductCategory}, f.Categories) {
		return false
	}
	if len(f.Countries) > 0 {
		countries := append(append([]string(nil), alert.Countries...), alert.NotifyingCountry)
		if !anyContains(countries, f.Countries) {
			return false
		}
	}
	return true
}

// Apply returns the alerts matching f, preserving order.
func Apply(alerts []domain.AggregatedAlert, f Filters) []domain.AggregatedAlert {
	if f.Empty() {
		return alerts
	}
	out := make([]domain.AggregatedAlert, 0, len(alerts))
	for _, a := range alerts {
		if Match(a, f) {
			out = append(out, a)
		}
	}
	return out
}

func anyContains(values, needles []string) bool {
	for _, v := range values {
		if v == "" {
			continue
		}
		lv := strings.ToLower(v)
		for _, n := range needles {
			if strings.Contains(lv, strings.ToLower(n)) {
				return true
			}
		}
	}
	return false
}

package normalize

import (
	"strings"

	"foodrisk/internal/domain"
)

type riskRule struct {
	contains string
	level    domain.RiskLevel
}

// riskRules are checked in order; the "not serious" and "potential" forms must come
// before the bare "serious" check.
var riskRules = []riskRule{
	{"potential", domain.RiskPotentiallySerious},
	{"not serious", domain.RiskNotSerious},
	{"no risk", domain.RiskNoRisk},
	{"undecided", domain.RiskUndecided},
	{"serious", domain.RiskSerious},
}

// Risk maps the risk decision text to a RiskLevel.
func Risk(raw string) domain.RiskLevel {
	text := collapseSpaces(strings.ToLower(raw))
	if text == "" {
		return domain.RiskUnknown
	}
	for _, r := range riskRules {
		if strings.Contains(text, r.contains) {
			return r.level
		}
	}
	return domain.RiskUnknown
}

// RiskLabel is the display label of a risk level.
func RiskLabel(level domain.RiskLevel) string {
	switch level {
	case domain.RiskSerious:
		return "Serious"
	case domain.RiskPotentiallySerious:
		return "Potential Risk"
	case domain.RiskNotSerious:
		return "Not Serious"
	case domain.RiskNoRisk:
		return "No Risk"
	case domain.RiskUndecided:
		return "Under Review"
	default:
		return "Unknown"
	}
}

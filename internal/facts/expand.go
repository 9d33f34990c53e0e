// Package facts splits normalized alerts into per-hazard facts and regroups stored
// facts into one alert per source record.
package facts

import (
	"foodrisk/internal/domain"
	"foodrisk/internal/identity"
	"foodrisk/internal/normalize"
)

// Expand emits one fact per distinct hazard name. Every fact shares the alert's
// non-hazard attributes and gets an id derived from (sourceID, hazard, ordinal).
func Expand(sourceID, rawID string, alert domain.NormalizedAlert, hazards []normalize.Hazard) []domain.AlertFact {
	if len(hazards) == 0 {
		hazards = []normalize.Hazard{{Name: alert.Hazard, Category: alert.HazardCategory}}
	}

	out := make([]domain.AlertFact, 0, len(hazards))
	seen := make(map[string]struct{}, len(hazards))
	for _, h := range hazards {
		if _, ok := seen[h.Name]; ok {
			continue
		}
		seen[h.Name] = struct{}{}

		out = append(out, domain.AlertFact{
			ID:               identity.FactID(sourceID, h.Name, len(out)),
			RawID:            rawID,
			Ordinal:          len(out),
			Hazard:           h.Name,
			HazardCategory:   h.Category,
			ProductCategory:  alert.ProductCategory,
			ProductText:      alert.ProductText,
			OriginCountry:    alert.OriginCountry,
			OriginCountries:  append([]string(nil), alert.OriginCountries...),
			NotifyingCountry: alert.NotifyingCountry,
			RiskLevel:        alert.RiskLevel,
			AlertDate:        alert.AlertDate,
			Link:             alert.Link,
		})
	}
	return out
}

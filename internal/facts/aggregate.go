package facts

import "foodrisk/internal/domain"

type group struct {
	alert     domain.AggregatedAlert
	hazards   valueSet
	countries valueSet
}

// Aggregate groups facts by RawID, falling back to the fact's own id, and returns one
// alert per group in order of first occurrence. Singular fields come from the first
// fact of each group.
func Aggregate(facts []domain.AlertFact) []domain.AggregatedAlert {
	groups := make(map[string]*group)
	var order []string

	for _, f := range facts {
		key := f.RawID
		if key == "" {
			key = f.ID
		}

		g, ok := groups[key]
		if !ok {
			g = &group{alert: domain.AggregatedAlert{
				ID:               f.ID,
				RawID:            key,
				NotifyingCountry: f.NotifyingCountry,
				ProductCategory:  f.ProductCategory,
				ProductText:      f.ProductText,
				RiskLevel:        f.RiskLevel,
				AlertDate:        f.AlertDate,
				Link:             f.Link,
			}}
			groups[key] = g
			order = append(order, key)
		}

		g.hazards.add(f.Hazard)
		if len(f.OriginCountries) > 0 {
			for _, c := range f.OriginCountries {
				g.countries.add(c)
			}
		} else {
			g.countries.add(f.OriginCountry)
		}
		g.alert.FactIDs = append(g.alert.FactIDs, f.ID)
	}

	out := make([]domain.AggregatedAlert, 0, len(order))
	for _, key := range order {
		g := groups[key]
		g.alert.Hazards = g.hazards.values()
		g.alert.Countries = g.countries.values()
		out = append(out, g.alert)
	}
	return out
}

// valueSet is an insertion-ordered set that keeps "Unknown" only when nothing else
// was added.
type valueSet struct {
	seen  map[string]struct{}
	items []string
}

func (s *valueSet) add(v string) {
	if v == "" || v == domain.Unknown {
		return
	}
	if s.seen == nil {
		s.seen = make(map[string]struct{})
	}
	if _, ok := s.seen[v]; ok {
		return
	}
	s.seen[v] = struct{}{}
	s.items = append(s.items, v)
}

func (s *valueSet) values() []string {
	if len(s.items) == 0 {
		return []string{domain.Unknown}
	}
	return s.items
}

// Package normalize reduces free-text feed values to canonical hazards, countries,
// product categories and risk levels.
package normalize

import (
	"context"
	"time"

	"foodrisk/internal/domain"
	"foodrisk/internal/record"
)

// Candidate field names per attribute, in priority order. Names drift between API
// versions, so each list covers the snake_case, camelCase and verbose variants seen.
var (
	HazardFields           = []string{"hazard_category_name", "hazards_desc", "hazard_desc", "hazard", "hazardCategoryName", "hazards"}
	ProductFields          = []string{"product_name", "product", "productText", "productDescription", "product_desc", "subject"}
	ProductCategoryFields  = []string{"product_category_desc", "product_category", "productCategory", "productCategoryDescription"}
	OriginCountryFields    = []string{"origin_country_desc", "origin_country", "originCountry", "countries_of_origin", "country"}
	NotifyingCountryFields = []string{"notifyng_country_desc", "notifying_country_desc", "notifying_country", "notifyingCountry"}
	RiskFields             = []string{"risk_decision_desc", "risk_decision", "riskDecision"}
	DateFields             = []string{"notif_date", "notification_date", "alertDate", "date", "ecValidationDate"}
	ReferenceFields        = []string{"notification_reference", "referenceNumber", "reference"}
	PublishedFields        = []string{"publishedAt", "alertDate", "date"}
)

// Normalizer classifies whole records. Registered overrides take precedence over the
// built-in rule tables when a MappingCache is configured.
type Normalizer struct {
	mappings *MappingCache
	linkBase string
	suggest  float64
}

type Option func(*Normalizer)

func WithMappings(c *MappingCache) Option {
	return func(n *Normalizer) { n.mappings = c }
}

func WithLinkBase(base string) Option {
	return func(n *Normalizer) {
		if base != "" {
			n.linkBase = base
		}
	}
}

func WithSuggestThreshold(threshold float64) Option {
	return func(n *Normalizer) {
		if threshold > 0 {
			n.suggest = threshold
		}
	}
}

func New(opts ...Option) *Normalizer {
	n := &Normalizer{linkBase: NotificationURL, suggest: DefaultSuggestThreshold}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// RefreshIfStale refreshes the override cache, if any.
func (n *Normalizer) RefreshIfStale(ctx context.Context, now time.Time) (bool, error) {
	if n.mappings == nil {
		return false, nil
	}
	return n.mappings.RefreshIfStale(ctx, now)
}

// InvalidateMappings makes the next RefreshIfStale reload the overrides.
func (n *Normalizer) InvalidateMappings() {
	if n.mappings != nil {
		n.mappings.Invalidate()
	}
}

// Result is the normalized form of one record plus the values that could not be mapped.
type Result struct {
	Alert    domain.NormalizedAlert
	Hazards  []Hazard
	Unmapped []domain.Observation
}

type collector struct {
	n    *Normalizer
	seen map[domain.Observation]struct{}
	obs  []domain.Observation
}

func (c *collector) add(kind domain.MappingKind, raw string) {
	raw = collapseSpaces(Repair(raw))
	if len(raw) < 2 {
		return
	}
	o := domain.Observation{Kind: kind, RawValue: raw}
	if _, ok := c.seen[o]; ok {
		return
	}
	c.seen[o] = struct{}{}
	if s, _, ok := Suggest(raw, Candidates(kind), c.n.suggest); ok {
		o.Suggestion = s
	}
	c.obs = append(c.obs, o)
}

// Record normalizes one raw record. It never fails; missing fields degrade to
// "Unknown"/"Other" buckets.
func (n *Normalizer) Record(rec domain.RawRecord) Result {
	c := &collector{n: n, seen: make(map[domain.Observation]struct{})}

	hazards := n.hazards(record.String(rec, HazardFields...), c)
	origins := n.countries(record.String(rec, OriginCountryFields...), c)
	notifying := n.country(record.String(rec, NotifyingCountryFields...), c)
	ref := record.String(rec, ReferenceFields...)

	alert := domain.NormalizedAlert{
		Hazard:           hazards[0].Name,
		HazardCategory:   hazards[0].Category,
		ProductText:      ProductText(record.String(rec, ProductFields...)),
		ProductCategory:  n.category(record.String(rec, ProductCategoryFields...), c),
		OriginCountry:    origins[0],
		OriginCountries:  origins,
		NotifyingCountry: notifying,
		RiskLevel:        Risk(record.String(rec, RiskFields...)),
		AlertDate:        Date(record.String(rec, DateFields...)),
		Link:             link(n.linkBase, ref),
		Reference:        ref,
	}

	return Result{Alert: alert, Hazards: hazards, Unmapped: c.obs}
}

// Hazards normalizes a *** packed hazard field with overrides applied.
func (n *Normalizer) Hazards(raw string) []Hazard {
	return n.hazards(raw, &collector{n: n, seen: make(map[domain.Observation]struct{})})
}

func (n *Normalizer) hazards(raw string, c *collector) []Hazard {
	pieces := splitMulti(Repair(raw))
	if len(pieces) == 0 {
		return []Hazard{unknownHazard}
	}

	out := make([]Hazard, 0, len(pieces))
	seen := make(map[string]struct{}, len(pieces))
	for _, p := range pieces {
		h := n.hazard(p, c)
		if _, ok := seen[h.Name]; ok {
			continue
		}
		seen[h.Name] = struct{}{}
		out = append(out, h)
	}
	return out
}

func (n *Normalizer) hazard(raw string, c *collector) Hazard {
	if mapped, ok := n.mappings.Lookup(domain.KindHazard, raw); ok {
		h, _ := classifyHazard(mapped)
		return Hazard{Name: mapped, Category: h.Category}
	}
	h, matched := classifyHazard(raw)
	if !matched {
		c.add(domain.KindHazard, raw)
	}
	return h
}

func (n *Normalizer) countries(raw string, c *collector) []string {
	var out []string
	for _, piece := range splitMulti(Repair(raw)) {
		if country := n.country(piece, c); country != domain.Unknown {
			out = append(out, country)
		}
	}
	out = dedupe(out)
	if len(out) == 0 {
		return []string{domain.Unknown}
	}
	return out
}

func (n *Normalizer) country(raw string, c *collector) string {
	if mapped, ok := n.mappings.Lookup(domain.KindCountry, raw); ok {
		return mapped
	}
	country, matched := classifyCountry(raw)
	if !matched {
		c.add(domain.KindCountry, raw)
	}
	return country
}

func (n *Normalizer) category(raw string, c *collector) string {
	if mapped, ok := n.mappings.Lookup(domain.KindCategory, raw); ok {
		return mapped
	}
	category, matched := classifyCategory(raw)
	if !matched {
		c.add(domain.KindCategory, raw)
	}
	return category
}

// Explanation describes how a single raw value normalizes.
type Explanation struct {
	Kind       domain.MappingKind `json:"kind"`
	RawValue   string             `json:"raw_value"`
	Value      string             `json:"value"`
	Category   string             `json:"category,omitempty"`
	Recognized bool               `json:"recognized"`
	Suggestion string             `json:"suggestion,omitempty"`
}

// Explain normalizes one raw value of kind without touching any record.
func (n *Normalizer) Explain(kind domain.MappingKind, raw string) Explanation {
	c := &collector{n: n, seen: make(map[domain.Observation]struct{})}
	e := Explanation{Kind: kind, RawValue: raw}
	switch kind {
	case domain.KindHazard:
		h := n.hazard(raw, c)
		e.Value, e.Category = h.Name, h.Category
	case domain.KindCountry:
		e.Value = n.country(raw, c)
	case domain.KindCategory:
		e.Value = n.category(raw, c)
	}
	e.Recognized = len(c.obs) == 0
	if !e.Recognized {
		e.Suggestion = c.obs[0].Suggestion
	}
	return e
}

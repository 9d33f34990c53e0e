package domain

import "time"

// Sentinel values used when a field cannot be classified.
const (
	Unknown = "Unknown"
	Other   = "Other"
)

// RawRecord is one upstream notification as decoded from the feed. Key casing and
// naming drift between API versions.
type RawRecord map[string]any

// RiskLevel is the normalized risk decision of a notification.
type RiskLevel string

const (
	RiskSerious            RiskLevel = "serious"
	RiskPotentiallySerious RiskLevel = "potentially-serious"
	RiskNotSerious         RiskLevel = "not-serious"
	RiskNoRisk             RiskLevel = "no-risk"
	RiskUndecided          RiskLevel = "undecided"
	RiskUnknown            RiskLevel = "unknown"
)

// NormalizedAlert holds the canonical attributes derived from one RawRecord.
type NormalizedAlert struct {
	Hazard           string     `json:"hazard"`
	HazardCategory   string     `json:"hazard_category"`
	ProductText      string     `json:"product_text"`
	ProductCategory  string     `json:"product_category"`
	OriginCountry    string     `json:"origin_country"`
	OriginCountries  []string   `json:"origin_countries"`
	NotifyingCountry string     `json:"notifying_country"`
	RiskLevel        RiskLevel  `json:"risk_level"`
	AlertDate        *time.Time `json:"alert_date"`
	Link             *string    `json:"link"`
	Reference        string     `json:"reference,omitempty"`
}

// RawEnvelope is the persisted form of a RawRecord. ID is a pure function of SourceID.
type RawEnvelope struct {
	ID          string
	SourceID    string
	Payload     RawRecord
	PublishedAt *time.Time
}

// AlertFact is one (source record, hazard) row.
type AlertFact struct {
	ID               string     `json:"id"`
	RawID            string     `json:"raw_id"`
	Ordinal          int        `json:"ordinal"`
	Hazard           string     `json:"hazard"`
	HazardCategory   string     `json:"hazard_category"`
	ProductCategory  string     `json:"product_category"`
	ProductText      string     `json:"product_text"`
	OriginCountry    string     `json:"origin_country"`
	OriginCountries  []string   `json:"origin_countries"`
	NotifyingCountry string     `json:"notifying_country"`
	RiskLevel        RiskLevel  `json:"risk_level"`
	AlertDate        *time.Time `json:"alert_date"`
	Link             *string    `json:"link"`
}

// AggregatedAlert regroups the facts of one source record. It is computed, never stored.
type AggregatedAlert struct {
	ID               string     `json:"id"`
	RawID            string     `json:"raw_id"`
	Hazards          []string   `json:"hazards"`
	Countries        []string   `json:"countries"`
	NotifyingCountry string     `json:"notifying_country"`
	ProductCategory  string     `json:"product_category"`
	ProductText      string     `json:"product_text"`
	RiskLevel        RiskLevel  `json:"risk_level"`
	AlertDate        *time.Time `json:"alert_date"`
	Link             *string    `json:"link"`
	FactIDs          []string   `json:"fact_ids"`
}

// FeedPage is one page of the upstream collection.
type FeedPage struct {
	Records  []RawRecord
	NextLink string
}

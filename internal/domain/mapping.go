package domain

import "time"

// MappingKind names the attribute a normalization mapping or observation applies to.
type MappingKind string

const (
	KindHazard   MappingKind = "hazard"
	KindCountry  MappingKind = "country"
	KindCategory MappingKind = "category"
)

func (k MappingKind) Valid() bool {
	switch k {
	case KindHazard, KindCountry, KindCategory:
		return true
	}
	return false
}

// Mapping is a human-registered override from a raw value to its canonical form.
type Mapping struct {
	Kind            MappingKind `db:"mapping_type" json:"kind"`
	RawValue        string      `db:"raw_value" json:"raw_value"`
	NormalizedValue string      `db:"normalized_value" json:"normalized_value"`
	Confidence      float64     `db:"confidence" json:"confidence"`
	UpdatedAt       time.Time   `db:"updated_at" json:"updated_at"`
}

// Observation is a raw value that fell through to a generic bucket during normalization.
type Observation struct {
	Kind       MappingKind `json:"kind"`
	RawValue   string      `json:"raw_value"`
	Suggestion string      `json:"suggestion,omitempty"`
}

// UnmappedValue is an aggregated Observation awaiting review.
type UnmappedValue struct {
	Kind        MappingKind `json:"kind"`
	RawValue    string      `json:"raw_value"`
	Occurrences int64       `json:"occurrences"`
	Suggestion  string      `json:"suggestion,omitempty"`
}

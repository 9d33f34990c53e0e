package domain

import "time"

// IngestStats holds statistics about one ingestion run.
type IngestStats struct {
	Pages         int
	Records       int
	RawUpserted   int
	FactsUpserted int
	Errors        int
	Unmapped      int
	Duration      time.Duration
}

// DigestOutcome describes what happened to one subscription during a digest run.
type DigestOutcome struct {
	SubscriptionID string
	Frequency      Frequency
	Due            bool
	Alerts         int
	AllClear       bool
	DeliveryID     string
	Status         DeliveryStatus
	Err            error
}

// DigestStats holds statistics about one digest run.
type DigestStats struct {
	Processed int
	Due       int
	Sent      int
	AllClear  int
	Failed    int
	Empty     int
	Outcomes  []DigestOutcome
	Duration  time.Duration
}

type MessageKind string

const (
	MessageDigest   MessageKind = "digest"
	MessageAllClear MessageKind = "all_clear"
)

// DigestAlert is an AggregatedAlert with presentation helpers for the email collaborator.
type DigestAlert struct {
	AggregatedAlert
	CountriesLabel string `json:"countries_label"`
	RiskLabel      string `json:"risk_label"`
}

// DigestMessage is handed to the email composition collaborator.
type DigestMessage struct {
	Kind           MessageKind   `json:"kind"`
	DeliveryID     string        `json:"delivery_id,omitempty"`
	SubscriptionID string        `json:"subscription_id"`
	UserID         string        `json:"user_id"`
	Email          string        `json:"email"`
	Frequency      Frequency     `json:"frequency"`
	Subject        string        `json:"subject"`
	WindowFrom     time.Time     `json:"window_from"`
	WindowTo       time.Time     `json:"window_to"`
	Alerts         []DigestAlert `json:"alerts"`
	Timestamp      time.Time     `json:"timestamp"`
}

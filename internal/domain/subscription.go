package domain

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("not found")

type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

// Subscription is owned by the billing and preferences collaborators; the pipeline only reads it.
type Subscription struct {
	ID           string     `db:"id"`
	UserID       string     `db:"user_id"`
	Email        string     `db:"email"`
	Frequency    Frequency  `db:"frequency"`
	IsActive     bool       `db:"is_active"`
	LastDigestAt *time.Time `db:"last_digest_at"`
}

type RuleType string

const (
	RuleHazard   RuleType = "hazard"
	RuleCategory RuleType = "category"
	RuleCountry  RuleType = "country"
)

type FilterRule struct {
	FilterID  string   `db:"filter_id"`
	RuleType  RuleType `db:"rule_type"`
	RuleValue string   `db:"rule_value"`
}

type DeliveryStatus string

const (
	DeliveryPending DeliveryStatus = "pending"
	DeliverySent    DeliveryStatus = "sent"
	DeliveryFailed  DeliveryStatus = "failed"
)

type Delivery struct {
	ID             string         `db:"id"`
	SubscriptionID string         `db:"subscription_id"`
	Status         DeliveryStatus `db:"status"`
	CreatedAt      time.Time      `db:"created_at"`
	SentAt         *time.Time     `db:"sent_at"`
}

type DeliveryItem struct {
	DeliveryID  string `db:"delivery_id"`
	AlertFactID string `db:"alerts_fact_id"`
}

package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"foodrisk/internal/domain"
)

type Source interface {
	ID() string
	StartURL() string
	FetchPage(ctx context.Context, url string) (*domain.FeedPage, error)
}

type RawStore interface {
	Upsert(ctx context.Context, envelope *domain.RawEnvelope) (string, error)
}

type FactStore interface {
	UpsertBatch(ctx context.Context, facts []domain.AlertFact) error
	ListByAlertDate(ctx context.Context, from, to time.Time) ([]domain.AlertFact, error)
}

type SubscriptionStore interface {
	ListActive(ctx context.Context) ([]domain.Subscription, error)
	FilterRules(ctx context.Context, subscriptionID string) ([]domain.FilterRule, error)
	MarkDigested(ctx context.Context, subscriptionID string, at time.Time) error
}

type DeliveryStore interface {
	Create(ctx context.Context, delivery *domain.Delivery) error
	AddItems(ctx context.Context, deliveryID string, factIDs []string) error
	UpdateStatus(ctx context.Context, deliveryID string, status domain.DeliveryStatus, sentAt *time.Time) error
	DeliveredFactIDs(ctx context.Context, subscriptionID string) (map[string]struct{}, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Dispatcher interface {
	Dispatch(ctx context.Context, msg *domain.DigestMessage) error
}

type UnmappedTracker interface {
	Track(ctx context.Context, observations []domain.Observation) error
}

type MappingStore interface {
	Upsert(ctx context.Context, mapping *domain.Mapping) error
	List(ctx context.Context, kind domain.MappingKind) ([]domain.Mapping, error)
}

type ReviewQueue interface {
	Top(ctx context.Context, kind domain.MappingKind, limit int) ([]domain.UnmappedValue, error)
	MarkReviewed(ctx context.Context, kind domain.MappingKind, rawValue string) error
}

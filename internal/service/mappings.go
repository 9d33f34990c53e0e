package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"foodrisk/internal/domain"
	"foodrisk/internal/normalize"
)

var (
	ErrInvalidMapping      = errors.New("invalid mapping")
	ErrReviewQueueDisabled = errors.New("review queue disabled")
)

// MappingService manages normalization overrides and the queue of values awaiting one.
type MappingService struct {
	store      MappingStore
	queue      ReviewQueue
	normalizer *normalize.Normalizer
	logger     *slog.Logger
	now        func() time.Time
}

// NewMappingService builds the service. queue may be nil when no review queue is configured.
func NewMappingService(store MappingStore, queue ReviewQueue, normalizer *normalize.Normalizer, logger *slog.Logger) *MappingService {
	return &MappingService{
		store:      store,
		queue:      queue,
		normalizer: normalizer,
		logger:     logger.With("component", "mappings"),
		now:        time.Now,
	}
}

// Add registers an override, drops the raw value from the review queue and forces the
// normalizer to reload its overrides. A zero confidence means fully trusted.
func (s *MappingService) Add(ctx context.Context, m *domain.Mapping) error {
	m.RawValue = strings.TrimSpace(m.RawValue)
	m.NormalizedValue = strings.TrimSpace(m.NormalizedValue)
	if m.Confidence == 0 {
		m.Confidence = 1
	}
	if err := validateMapping(m); err != nil {
		return err
	}

	if err := s.store.Upsert(ctx, m); err != nil {
		return fmt.Errorf("upsert mapping: %w", err)
	}

	if s.queue != nil {
		if err := s.queue.MarkReviewed(ctx, m.Kind, m.RawValue); err != nil {
			s.logger.Warn("failed to mark value reviewed",
				"kind", m.Kind,
				"raw_value", m.RawValue,
				"error", err,
			)
		}
	}

	s.normalizer.InvalidateMappings()
	s.logger.Info("mapping registered",
		"kind", m.Kind,
		"raw_value", m.RawValue,
		"normalized_value", m.NormalizedValue,
		"confidence", m.Confidence,
	)
	return nil
}

func validateMapping(m *domain.Mapping) error {
	switch {
	case !m.Kind.Valid():
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidMapping, m.Kind)
	case m.RawValue == "":
		return fmt.Errorf("%w: raw value is empty", ErrInvalidMapping)
	case m.NormalizedValue == "":
		return fmt.Errorf("%w: normalized value is empty", ErrInvalidMapping)
	case m.Confidence < 0 || m.Confidence > 1:
		return fmt.Errorf("%w: confidence %.2f outside [0, 1]", ErrInvalidMapping, m.Confidence)
	}
	return nil
}

// List returns registered overrides. An empty kind lists every kind.
func (s *MappingService) List(ctx context.Context, kind domain.MappingKind) ([]domain.Mapping, error) {
	if kind != "" && !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidMapping, kind)
	}
	mappings, err := s.store.List(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("list mappings: %w", err)
	}
	return mappings, nil
}

// Unknowns returns the most frequent values still waiting for an override.
func (s *MappingService) Unknowns(ctx context.Context, kind domain.MappingKind, limit int) ([]domain.UnmappedValue, error) {
	if s.queue == nil {
		return nil, ErrReviewQueueDisabled
	}
	if kind != "" && !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidMapping, kind)
	}
	values, err := s.queue.Top(ctx, kind, limit)
	if err != nil {
		return nil, fmt.Errorf("list unknown values: %w", err)
	}
	return values, nil
}

// Explain shows how a raw value normalizes with the current overrides.
func (s *MappingService) Explain(ctx context.Context, kind domain.MappingKind, raw string) (normalize.Explanation, error) {
	if !kind.Valid() {
		return normalize.Explanation{}, fmt.Errorf("%w: unknown kind %q", ErrInvalidMapping, kind)
	}
	if _, err := s.normalizer.RefreshIfStale(ctx, s.now()); err != nil {
		s.logger.Warn("mapping refresh failed, explaining with previous mappings", "error", err)
	}
	return s.normalizer.Explain(kind, raw), nil
}

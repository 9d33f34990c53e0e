package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"foodrisk/internal/config"
	"foodrisk/internal/digest"
	"foodrisk/internal/domain"
	"foodrisk/internal/facts"
	"foodrisk/internal/filter"
	"foodrisk/internal/metrics"
	"foodrisk/internal/normalize"
)

var errNoEmail = errors.New("subscription has no email address")

// DigestService matches stored facts against every active subscription that is due
// and hands the result to the dispatcher. Facts handed over once are never offered
// to the same subscription again, whether or not the dispatch succeeded.
type DigestService struct {
	subscriptions SubscriptionStore
	facts         FactStore
	deliveries    DeliveryStore
	txManager     TransactionManager
	dispatcher    Dispatcher
	metrics       *metrics.Metrics
	logger        *slog.Logger
	config        config.DigestConfig
	now           func() time.Time
	newID         func() string
}

func NewDigestService(
	subscriptions SubscriptionStore,
	facts FactStore,
	deliveries DeliveryStore,
	txManager TransactionManager,
	dispatcher Dispatcher,
	m *metrics.Metrics,
	logger *slog.Logger,
	cfg config.DigestConfig,
) *DigestService {
	return &DigestService{
		subscriptions: subscriptions,
		facts:         facts,
		deliveries:    deliveries,
		txManager:     txManager,
		dispatcher:    dispatcher,
		metrics:       m,
		logger:        logger.With("job", "digest"),
		config:        cfg,
		now:           time.Now,
		newID:         uuid.NewString,
	}
}

// window is the aggregated alerts of one lookback window, shared by all subscriptions
// of the same frequency within a run.
type window struct {
	from, to time.Time
	alerts   []domain.AggregatedAlert
}

// Run processes every active subscription for the calendar day of today. Failures of
// one subscription are recorded in its outcome and do not stop the run.
func (s *DigestService) Run(ctx context.Context, today time.Time) (*domain.DigestStats, error) {
	startTime := s.now()
	s.logger.Info("starting digest run", "today", digest.Midnight(today).Format(time.DateOnly))

	subs, err := s.subscriptions.ListActive(ctx)
	if err != nil {
		s.metrics.ObserveRun("digest", "failed", s.now().Sub(startTime))
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}

	stats := &domain.DigestStats{}
	windows := make(map[domain.Frequency]*window)

	for _, sub := range subs {
		if err := ctx.Err(); err != nil {
			stats.Duration = s.now().Sub(startTime)
			return stats, err
		}

		outcome := s.processSubscription(ctx, sub, today, windows)
		stats.Processed++
		stats.Outcomes = append(stats.Outcomes, outcome)
		s.tally(stats, outcome)
	}

	stats.Duration = s.now().Sub(startTime)
	s.metrics.ObserveRun("digest", "ok", stats.Duration)

	s.logger.Info("digest run completed",
		"processed", stats.Processed,
		"due", stats.Due,
		"sent", stats.Sent,
		"all_clear", stats.AllClear,
		"empty", stats.Empty,
		"failed", stats.Failed,
		"duration", stats.Duration,
	)

	return stats, nil
}

func (s *DigestService) tally(stats *domain.DigestStats, o domain.DigestOutcome) {
	var outcome string
	switch {
	case !o.Due:
		outcome = "not_due"
	case o.Err != nil:
		stats.Failed++
		outcome = "failed"
	case o.AllClear:
		stats.AllClear++
		outcome = "all_clear"
	case o.Status == domain.DeliverySent:
		stats.Sent++
		outcome = "sent"
	default:
		stats.Empty++
		outcome = "empty"
	}
	if o.Due {
		stats.Due++
	}
	s.metrics.DigestOutcome(string(o.Frequency), outcome)
}

func (s *DigestService) processSubscription(
	ctx context.Context,
	sub domain.Subscription,
	today time.Time,
	windows map[domain.Frequency]*window,
) domain.DigestOutcome {
	outcome := domain.DigestOutcome{SubscriptionID: sub.ID, Frequency: sub.Frequency}
	if !digest.IsDue(sub.Frequency, today) {
		return outcome
	}
	outcome.Due = true

	logger := s.logger.With("subscription_id", sub.ID, "frequency", sub.Frequency)

	if sub.Email == "" {
		outcome.Err = errNoEmail
		logger.Warn("skipping subscription", "error", outcome.Err)
		return outcome
	}

	w, err := s.loadWindow(ctx, sub.Frequency, today, windows)
	if err != nil {
		outcome.Err = err
		logger.Error("load window", "error", err)
		return outcome
	}

	alerts, err := s.selectAlerts(ctx, sub, w.alerts)
	if err != nil {
		outcome.Err = err
		logger.Error("select alerts", "error", err)
		return outcome
	}
	outcome.Alerts = len(alerts)

	if len(alerts) == 0 {
		if sub.Frequency != domain.FrequencyDaily {
			logger.Debug("nothing new this cycle")
			return outcome
		}
		msg := s.message(domain.MessageAllClear, sub, w, nil, "")
		if err := s.dispatcher.Dispatch(ctx, msg); err != nil {
			outcome.Err = fmt.Errorf("dispatch all clear: %w", err)
			logger.Error("dispatch all clear", "error", err)
			return outcome
		}
		outcome.AllClear = true
		s.markDigested(ctx, logger, sub.ID)
		return outcome
	}

	return s.deliver(ctx, logger, sub, w, alerts, outcome)
}

// loadWindow loads and aggregates the facts of the lookback window of freq once per run.
func (s *DigestService) loadWindow(ctx context.Context, freq domain.Frequency, today time.Time, windows map[domain.Frequency]*window) (*window, error) {
	if w, ok := windows[freq]; ok {
		return w, nil
	}

	from, to, err := digest.LookbackWindow(freq, today)
	if err != nil {
		return nil, err
	}

	rows, err := s.facts.ListByAlertDate(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("list facts: %w", err)
	}

	w := &window{from: from, to: to, alerts: facts.Aggregate(rows)}
	windows[freq] = w
	return w, nil
}

// selectAlerts applies the subscription's filters and drops alerts already delivered.
func (s *DigestService) selectAlerts(ctx context.Context, sub domain.Subscription, alerts []domain.AggregatedAlert) ([]domain.AggregatedAlert, error) {
	rules, err := s.subscriptions.FilterRules(ctx, sub.ID)
	if err != nil {
		return nil, fmt.Errorf("load filter rules: %w", err)
	}
	matched := filter.Apply(alerts, filter.FromRules(rules))
	if len(matched) == 0 {
		return nil, nil
	}

	delivered, err := s.deliveries.DeliveredFactIDs(ctx, sub.ID)
	if err != nil {
		return nil, fmt.Errorf("load delivered facts: %w", err)
	}
	fresh := digest.ExcludeDelivered(matched, delivered)

	if s.config.MaxAlerts > 0 && len(fresh) > s.config.MaxAlerts {
		fresh = fresh[:s.config.MaxAlerts]
	}
	return fresh, nil
}

func (s *DigestService) deliver(
	ctx context.Context,
	logger *slog.Logger,
	sub domain.Subscription,
	w *window,
	alerts []domain.AggregatedAlert,
	outcome domain.DigestOutcome,
) domain.DigestOutcome {
	delivery := &domain.Delivery{
		ID:             s.newID(),
		SubscriptionID: sub.ID,
		Status:         domain.DeliveryPending,
		CreatedAt:      s.now(),
	}
	factIDs := digest.FactIDs(alerts)

	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.deliveries.Create(txCtx, delivery); err != nil {
			return fmt.Errorf("create delivery: %w", err)
		}
		if err := s.deliveries.AddItems(txCtx, delivery.ID, factIDs); err != nil {
			return fmt.Errorf("add delivery items: %w", err)
		}
		return nil
	})
	if err != nil {
		outcome.Err = err
		logger.Error("record delivery", "error", err)
		return outcome
	}
	outcome.DeliveryID = delivery.ID

	status := domain.DeliverySent
	var sentAt *time.Time
	msg := s.message(domain.MessageDigest, sub, w, alerts, delivery.ID)
	if err := s.dispatcher.Dispatch(ctx, msg); err != nil {
		status = domain.DeliveryFailed
		outcome.Err = fmt.Errorf("dispatch digest: %w", err)
		logger.Error("dispatch digest", "delivery_id", delivery.ID, "error", err)
	} else {
		now := s.now()
		sentAt = &now
	}

	if err := s.deliveries.UpdateStatus(ctx, delivery.ID, status, sentAt); err != nil {
		logger.Error("update delivery status", "delivery_id", delivery.ID, "status", status, "error", err)
		if outcome.Err == nil {
			outcome.Err = fmt.Errorf("update delivery status: %w", err)
		}
	}
	outcome.Status = status

	if status == domain.DeliverySent {
		s.markDigested(ctx, logger, sub.ID)
		logger.Info("digest dispatched",
			"delivery_id", delivery.ID,
			"alerts", len(alerts),
			"facts", len(factIDs),
		)
	}
	return outcome
}

func (s *DigestService) markDigested(ctx context.Context, logger *slog.Logger, subscriptionID string) {
	if err := s.subscriptions.MarkDigested(ctx, subscriptionID, s.now()); err != nil {
		logger.Warn("mark subscription digested", "error", err)
	}
}

func (s *DigestService) message(
	kind domain.MessageKind,
	sub domain.Subscription,
	w *window,
	alerts []domain.AggregatedAlert,
	deliveryID string,
) *domain.DigestMessage {
	items := make([]domain.DigestAlert, 0, len(alerts))
	for _, a := range alerts {
		items = append(items, domain.DigestAlert{
			AggregatedAlert: a,
			CountriesLabel:  normalize.CountryLabel(a.Countries),
			RiskLabel:       normalize.RiskLabel(a.RiskLevel),
		})
	}

	return &domain.DigestMessage{
		Kind:           kind,
		DeliveryID:     deliveryID,
		SubscriptionID: sub.ID,
		UserID:         sub.UserID,
		Email:          sub.Email,
		Frequency:      sub.Frequency,
		Subject:        subject(kind, sub.Frequency, len(alerts)),
		WindowFrom:     w.from,
		WindowTo:       w.to,
		Alerts:         items,
		Timestamp:      s.now().UTC(),
	}
}

func subject(kind domain.MessageKind, freq domain.Frequency, n int) string {
	prefix := "Daily Digest"
	switch freq {
	case domain.FrequencyWeekly:
		prefix = "Weekly Digest"
	case domain.FrequencyMonthly:
		prefix = "Monthly Digest"
	}
	if kind == domain.MessageAllClear {
		return prefix + ": No New Food Safety Alerts"
	}
	if n == 1 {
		return prefix + ": 1 Food Safety Alert"
	}
	return fmt.Sprintf("%s: %d Food Safety Alerts", prefix, n)
}

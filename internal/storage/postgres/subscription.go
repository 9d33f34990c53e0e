package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"foodrisk/internal/domain"
)

type SubscriptionStore struct {
	db *sqlx.DB
}

func NewSubscriptionStore(db *sqlx.DB) *SubscriptionStore {
	return &SubscriptionStore{db: db}
}

// ListActive returns active subscriptions whose owner is an active user.
func (s *SubscriptionStore) ListActive(ctx context.Context) ([]domain.Subscription, error) {
	query := `
		SELECT s.id, s.user_id, u.email, s.frequency, s.is_active, s.last_digest_at
		FROM subscriptions s
		INNER JOIN users u ON u.id = s.user_id
		WHERE s.is_active AND u.status = 'active'
		ORDER BY s.created_at, s.id`

	var subs []domain.Subscription
	err := s.db.SelectContext(ctx, &subs, query)
	return subs, err
}

func (s *SubscriptionStore) FilterRules(ctx context.Context, subscriptionID string) ([]domain.FilterRule, error) {
	query := `
		SELECT r.filter_id, r.rule_type, r.rule_value
		FROM filter_rules r
		INNER JOIN filters f ON f.id = r.filter_id
		WHERE f.subscription_id = $1
		ORDER BY r.filter_id, r.id`

	var rules []domain.FilterRule
	err := s.db.SelectContext(ctx, &rules, query, subscriptionID)
	return rules, err
}

func (s *SubscriptionStore) MarkDigested(ctx context.Context, subscriptionID string, at time.Time) error {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		"UPDATE subscriptions SET last_digest_at = $2 WHERE id = $1",
		subscriptionID, at,
	)
	if err != nil {
		return err
	}
	return expectAffected(res)
}

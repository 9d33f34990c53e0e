package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"foodrisk/internal/domain"
)

const deliveryTypeDigest = "digest"

type DeliveryStore struct {
	db *sqlx.DB
}

func NewDeliveryStore(db *sqlx.DB) *DeliveryStore {
	return &DeliveryStore{db: db}
}

func (s *DeliveryStore) Create(ctx context.Context, delivery *domain.Delivery) error {
	query := `
		INSERT INTO deliveries (id, subscription_id, delivery_type, status, created_at, sent_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		delivery.ID,
		delivery.SubscriptionID,
		deliveryTypeDigest,
		string(delivery.Status),
		delivery.CreatedAt,
		delivery.SentAt,
	)
	return err
}

// AddItems links facts to a delivery. Links that already exist are kept.
func (s *DeliveryStore) AddItems(ctx context.Context, deliveryID string, factIDs []string) error {
	if len(factIDs) == 0 {
		return nil
	}

	query := `
		INSERT INTO delivery_items (delivery_id, alerts_fact_id)
		SELECT $1, unnest($2::uuid[])
		ON CONFLICT DO NOTHING`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, deliveryID, pq.Array(factIDs))
	return err
}

func (s *DeliveryStore) UpdateStatus(ctx context.Context, deliveryID string, status domain.DeliveryStatus, sentAt *time.Time) error {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		"UPDATE deliveries SET status = $2, sent_at = $3 WHERE id = $1",
		deliveryID, string(status), sentAt,
	)
	if err != nil {
		return err
	}
	return expectAffected(res)
}

// DeliveredFactIDs returns every fact id already linked to a delivery of the
// subscription, whatever the delivery status.
func (s *DeliveryStore) DeliveredFactIDs(ctx context.Context, subscriptionID string) (map[string]struct{}, error) {
	query := `
		SELECT DISTINCT di.alerts_fact_id
		FROM delivery_items di
		INNER JOIN deliveries d ON d.id = di.delivery_id
		WHERE d.subscription_id = $1`

	rows, err := s.db.QueryContext(ctx, query, subscriptionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[string]struct{})
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		result[id] = struct{}{}
	}

	return result, rows.Err()
}

func expectAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

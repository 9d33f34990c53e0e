package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"

	"foodrisk/internal/domain"
)

type RawStore struct {
	db *sqlx.DB
}

func NewRawStore(db *sqlx.DB) *RawStore {
	return &RawStore{db: db}
}

// Upsert stores the envelope keyed by its source id and returns the row id.
// Re-ingesting a record replaces the payload in place.
func (s *RawStore) Upsert(ctx context.Context, envelope *domain.RawEnvelope) (string, error) {
	payload, err := json.Marshal(envelope.Payload)
	if err != nil {
		return "", fmt.Errorf("marshal payload: %w", err)
	}

	query := `
		INSERT INTO alerts_raw (id, source_id, payload_json, published_at)
		VALUES ($1, $2, $3::jsonb, $4)
		ON CONFLICT (source_id) DO UPDATE SET
			payload_json = EXCLUDED.payload_json,
			published_at = EXCLUDED.published_at,
			ingested_at = NOW()
		RETURNING id`

	var id string
	err = GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		envelope.ID,
		envelope.SourceID,
		string(payload),
		envelope.PublishedAt,
	).Scan(&id)
	if err != nil {
		return "", err
	}

	return id, nil
}

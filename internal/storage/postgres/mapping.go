package postgres

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"foodrisk/internal/domain"
)

type MappingStore struct {
	db *sqlx.DB
}

func NewMappingStore(db *sqlx.DB) *MappingStore {
	return &MappingStore{db: db}
}

// Load returns the mappings trusted enough to override the built-in rules.
func (s *MappingStore) Load(ctx context.Context, minConfidence float64) ([]domain.Mapping, error) {
	query := `
		SELECT mapping_type, raw_value, normalized_value, confidence, updated_at
		FROM normalization_mappings
		WHERE confidence >= $1`

	var mappings []domain.Mapping
	err := s.db.SelectContext(ctx, &mappings, query, minConfidence)
	return mappings, err
}

// Upsert registers a mapping. Registering the same raw value again replaces the
// target and bumps usage_count.
func (s *MappingStore) Upsert(ctx context.Context, m *domain.Mapping) error {
	query := `
		INSERT INTO normalization_mappings (mapping_type, raw_value, normalized_value, confidence)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (mapping_type, raw_value) DO UPDATE SET
			normalized_value = EXCLUDED.normalized_value,
			confidence = EXCLUDED.confidence,
			usage_count = normalization_mappings.usage_count + 1,
			updated_at = NOW()
		RETURNING updated_at`

	return GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		string(m.Kind),
		strings.TrimSpace(m.RawValue),
		strings.TrimSpace(m.NormalizedValue),
		m.Confidence,
	).Scan(&m.UpdatedAt)
}

// List returns registered mappings, optionally restricted to one kind.
func (s *MappingStore) List(ctx context.Context, kind domain.MappingKind) ([]domain.Mapping, error) {
	query := `
		SELECT mapping_type, raw_value, normalized_value, confidence, updated_at
		FROM normalization_mappings
		WHERE $1::text = '' OR mapping_type = $1
		ORDER BY mapping_type, raw_value`

	var mappings []domain.Mapping
	err := s.db.SelectContext(ctx, &mappings, query, string(kind))
	return mappings, err
}

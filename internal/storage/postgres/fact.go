package postgres

import (
	"context"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"foodrisk/internal/domain"
)

const factColumns = 13

type FactStore struct {
	db *sqlx.DB
}

func NewFactStore(db *sqlx.DB) *FactStore {
	return &FactStore{db: db}
}

type factRow struct {
	ID               string         `db:"id"`
	RawID            string         `db:"raw_id"`
	Ordinal          int            `db:"ordinal"`
	Hazard           string         `db:"hazard"`
	HazardCategory   string         `db:"hazard_category"`
	ProductCategory  string         `db:"product_category"`
	ProductText      string         `db:"product_text"`
	OriginCountry    string         `db:"origin_country"`
	OriginCountries  pq.StringArray `db:"origin_countries"`
	NotifyingCountry string         `db:"notifying_country"`
	RiskLevel        string         `db:"risk_level"`
	AlertDate        *time.Time     `db:"alert_date"`
	Link             *string        `db:"link"`
}

func (r factRow) fact() domain.AlertFact {
	return domain.AlertFact{
		ID:               r.ID,
		RawID:            r.RawID,
		Ordinal:          r.Ordinal,
		Hazard:           r.Hazard,
		HazardCategory:   r.HazardCategory,
		ProductCategory:  r.ProductCategory,
		ProductText:      r.ProductText,
		OriginCountry:    r.OriginCountry,
		OriginCountries:  []string(r.OriginCountries),
		NotifyingCountry: r.NotifyingCountry,
		RiskLevel:        domain.RiskLevel(r.RiskLevel),
		AlertDate:        r.AlertDate,
		Link:             r.Link,
	}
}

func (s *FactStore) UpsertBatch(ctx context.Context, facts []domain.AlertFact) error {
	if len(facts) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString(`INSERT INTO alerts_fact (
		id, raw_id, ordinal, hazard, hazard_category, product_category, product_text,
		origin_country, origin_countries, notifying_country, risk_level, alert_date, link
	) VALUES `)
	valueArgs := make([]interface{}, 0, len(facts)*factColumns)

	for i, f := range facts {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("(")
		for j := 0; j < factColumns; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString("$")
			sb.WriteString(itoa(i*factColumns + j + 1))
		}
		sb.WriteString(")")

		countries := f.OriginCountries
		if countries == nil {
			countries = []string{}
		}
		valueArgs = append(valueArgs,
			f.ID,
			f.RawID,
			f.Ordinal,
			f.Hazard,
			f.HazardCategory,
			f.ProductCategory,
			f.ProductText,
			f.OriginCountry,
			pq.Array(countries),
			f.NotifyingCountry,
			string(f.RiskLevel),
			f.AlertDate,
			f.Link,
		)
	}
	sb.WriteString(` ON CONFLICT (id) DO UPDATE SET
		raw_id = EXCLUDED.raw_id,
		ordinal = EXCLUDED.ordinal,
		hazard = EXCLUDED.hazard,
		hazard_category = EXCLUDED.hazard_category,
		product_category = EXCLUDED.product_category,
		product_text = EXCLUDED.product_text,
		origin_country = EXCLUDED.origin_country,
		origin_countries = EXCLUDED.origin_countries,
		notifying_country = EXCLUDED.notifying_country,
		risk_level = EXCLUDED.risk_level,
		alert_date = EXCLUDED.alert_date,
		link = EXCLUDED.link,
		updated_at = NOW()`)

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, sb.String(), valueArgs...)
	return err
}

// ListByAlertDate returns facts with from <= alert_date < to, newest first. Facts of
// one source record stay adjacent and in hazard order.
func (s *FactStore) ListByAlertDate(ctx context.Context, from, to time.Time) ([]domain.AlertFact, error) {
	query := `
		SELECT id, raw_id, ordinal, hazard, hazard_category, product_category, product_text,
			origin_country, origin_countries, notifying_country, risk_level, alert_date, link
		FROM alerts_fact
		WHERE alert_date >= $1 AND alert_date < $2
		ORDER BY alert_date DESC, raw_id, ordinal`

	var rows []factRow
	if err := s.db.SelectContext(ctx, &rows, query, from, to); err != nil {
		return nil, err
	}

	facts := make([]domain.AlertFact, 0, len(rows))
	for _, r := range rows {
		facts = append(facts, r.fact())
	}
	return facts, nil
}

func itoa(i int) string {
	if i < 10 {
		return string(rune('0' + i))
	}
	return itoa(i/10) + string(rune('0'+i%10))
}

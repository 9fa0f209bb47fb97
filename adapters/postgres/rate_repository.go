package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"ratesheets/domain/rates"
	"ratesheets/ports"
)

// rateRepository implements the RateRepository interface on PostgreSQL.
type rateRepository struct {
	db *sqlx.DB
}

// NewRateRepository creates a new PostgreSQL rate repository.
func NewRateRepository(db *sqlx.DB) ports.RateRepository {
	return &rateRepository{db: db}
}

// ListGroups returns the client's distinct (locale, shipping_speed) pairs.
// Rows come back in insertion (id) order and the enumerator dedupes them, so
// group order is the first-occurrence order of the raw records.
func (r *rateRepository) ListGroups(ctx context.Context, clientID uuid.UUID) ([]rates.GroupKey, error) {
	var records []rates.RateRecord
	err := r.db.SelectContext(ctx, &records, `
		SELECT locale, shipping_speed
		FROM rate_records
		WHERE client_id = $1
		ORDER BY id
	`, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list rate groups: %w", err)
	}
	return rates.GroupKeysOf(records), nil
}

// ListByGroup returns every record for one client and group. COALESCE applies
// the defaulting policy once here: absent start weights become "0", absent
// end weights and rates become 0.
func (r *rateRepository) ListByGroup(ctx context.Context, clientID uuid.UUID, key rates.GroupKey) ([]rates.RateRecord, error) {
	var records []rates.RateRecord
	err := r.db.SelectContext(ctx, &records, `
		SELECT
			client_id, locale, shipping_speed, zone,
			COALESCE(start_weight, '0') AS start_weight,
			COALESCE(end_weight, 0) AS end_weight,
			COALESCE(rate, 0) AS rate
		FROM rate_records
		WHERE client_id = $1 AND locale = $2 AND shipping_speed = $3
		ORDER BY id
	`, clientID, key.Locale, key.ShippingSpeed)
	if err != nil {
		return nil, fmt.Errorf("failed to list records for group %s: %w", key, err)
	}
	return records, nil
}

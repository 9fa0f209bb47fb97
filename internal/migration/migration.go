package migration

import (
	"context"

	"github.com/jmoiron/sqlx"

	"ratesheets/internal/errors"
)

// EnsureSchema creates the rate_records table and its lookup index if they
// do not exist. start_weight, end_weight and rate stay nullable; absent
// values are defaulted at query time, not at rest.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS rate_records (
			id BIGSERIAL PRIMARY KEY,
			client_id UUID NOT NULL,
			locale TEXT NOT NULL,
			shipping_speed TEXT NOT NULL,
			zone TEXT NOT NULL,
			start_weight TEXT,
			end_weight NUMERIC,
			rate NUMERIC,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`)
	if err != nil {
		return errors.Wrap(err, "failed to create rate_records table")
	}

	_, err = db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_rate_records_client_group
		ON rate_records (client_id, locale, shipping_speed)
	`)
	if err != nil {
		return errors.Wrap(err, "failed to create rate_records index")
	}
	return nil
}

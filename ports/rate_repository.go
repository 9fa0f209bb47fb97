package ports

import (
	"context"

	"github.com/google/uuid"

	"ratesheets/domain/rates"
)

// RateRepository defines the record-source surface the pipeline consumes.
type RateRepository interface {
	// ListGroups returns the distinct (locale, shippingSpeed) pairs stored
	// for the client, in first-occurrence (insertion) order.
	ListGroups(ctx context.Context, clientID uuid.UUID) ([]rates.GroupKey, error)

	// ListByGroup returns every record for one client and group. Absent
	// values arrive defaulted: startWeight "0", endWeight and rate 0.
	ListByGroup(ctx context.Context, clientID uuid.UUID, key rates.GroupKey) ([]rates.RateRecord, error)
}

package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ratesheets/domain/rates"
	apperrors "ratesheets/internal/errors"
)

type fakeRepo struct {
	groups    []rates.GroupKey
	records   map[string][]rates.RateRecord
	groupsErr error
	failGroup string
	delay     map[string]time.Duration
}

func (f *fakeRepo) ListGroups(ctx context.Context, clientID uuid.UUID) ([]rates.GroupKey, error) {
	if f.groupsErr != nil {
		return nil, f.groupsErr
	}
	return f.groups, nil
}

func (f *fakeRepo) ListByGroup(ctx context.Context, clientID uuid.UUID, key rates.GroupKey) ([]rates.RateRecord, error) {
	if d, ok := f.delay[key.String()]; ok {
		select {
		case <-time.After(d):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if key.String() == f.failGroup {
		return nil, errors.New("query failed")
	}
	return f.records[key.String()], nil
}

type fakeWriter struct {
	sheets []rates.SheetData
	calls  int
	err    error
}

func (f *fakeWriter) Write(sheets []rates.SheetData) error {
	f.calls++
	f.sheets = sheets
	return f.err
}

func testClientID() uuid.UUID {
	return uuid.MustParse("6f1d2a34-9c1b-4f5e-8a60-50f3a4b0c9d1")
}

func TestExportService_SheetsFollowGroupOrder(t *testing.T) {
	repo := &fakeRepo{
		groups: []rates.GroupKey{
			{Locale: "domestic", ShippingSpeed: "ground"},
			{Locale: "international", ShippingSpeed: "groundintl"},
		},
		records: map[string][]rates.RateRecord{
			"domestic,ground": {
				{Zone: "1", StartWeight: "0", EndWeight: 1, Rate: 5},
				{Zone: "2", StartWeight: "0", EndWeight: 1, Rate: 7},
			},
			"international,groundintl": {
				{Zone: "4", StartWeight: "0", EndWeight: 2, Rate: 11},
			},
		},
		// Make the first group finish last to prove slotting by index.
		delay: map[string]time.Duration{"domestic,ground": 20 * time.Millisecond},
	}
	writer := &fakeWriter{}

	svc := NewExportService(repo, writer, testClientID(), 2, nil)
	require.NoError(t, svc.Run(context.Background()))

	require.Equal(t, 1, writer.calls)
	require.Len(t, writer.sheets, 2)
	assert.Equal(t, "Domestic Ground Rates", writer.sheets[0].Name)
	assert.Equal(t, "International Ground Rates", writer.sheets[1].Name)

	assert.Equal(t, rates.SheetTable{
		{"Start Weight", "End Weight", "Zone 1", "Zone 2"},
		{"0", 1.0, 5.0, 7.0},
	}, writer.sheets[0].Rows)
}

func TestExportService_GroupQueryFailureAbortsRun(t *testing.T) {
	repo := &fakeRepo{
		groups: []rates.GroupKey{
			{Locale: "domestic", ShippingSpeed: "ground"},
			{Locale: "domestic", ShippingSpeed: "expedited"},
		},
		records:   map[string][]rates.RateRecord{},
		failGroup: "domestic,expedited",
	}
	writer := &fakeWriter{}

	svc := NewExportService(repo, writer, testClientID(), 2, nil)
	err := svc.Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "domestic,expedited")
	assert.Equal(t, apperrors.CodeDatabaseError, apperrors.GetCode(err))
	assert.Zero(t, writer.calls, "nothing should be written on a failed run")
}

func TestExportService_GroupEnumerationFailure(t *testing.T) {
	repo := &fakeRepo{groupsErr: errors.New("connection refused")}
	writer := &fakeWriter{}

	svc := NewExportService(repo, writer, testClientID(), 1, nil)
	err := svc.Run(context.Background())

	require.Error(t, err)
	assert.Zero(t, writer.calls)
}

func TestExportService_NoGroupsIsAnError(t *testing.T) {
	repo := &fakeRepo{}
	writer := &fakeWriter{}

	svc := NewExportService(repo, writer, testClientID(), 1, nil)
	err := svc.Run(context.Background())

	require.Error(t, err)
	assert.Zero(t, writer.calls)
}

func TestExportService_WriterFailurePropagates(t *testing.T) {
	repo := &fakeRepo{
		groups: []rates.GroupKey{{Locale: "domestic", ShippingSpeed: "ground"}},
		records: map[string][]rates.RateRecord{
			"domestic,ground": {{Zone: "1", StartWeight: "0", EndWeight: 1, Rate: 5}},
		},
	}
	writer := &fakeWriter{err: errors.New("disk full")}

	svc := NewExportService(repo, writer, testClientID(), 1, nil)
	err := svc.Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

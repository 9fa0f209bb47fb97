package app

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"ratesheets/domain/rates"
	"ratesheets/internal"
	"ratesheets/internal/errors"
	"ratesheets/ports"
)

// ExportService runs the extract-transform-export pipeline once: enumerate
// the client's groups, pivot each group's records into a table, and hand the
// assembled sheets to the writer.
type ExportService struct {
	repo        ports.RateRepository
	writer      ports.SheetWriter
	clientID    uuid.UUID
	concurrency int
	logger      *internal.Logger
}

// NewExportService wires the pipeline. concurrency bounds the number of
// per-group queries in flight at once; values below 1 are treated as 1.
func NewExportService(repo ports.RateRepository, writer ports.SheetWriter, clientID uuid.UUID, concurrency int, logger *internal.Logger) *ExportService {
	if concurrency < 1 {
		concurrency = 1
	}
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &ExportService{
		repo:        repo,
		writer:      writer,
		clientID:    clientID,
		concurrency: concurrency,
		logger:      logger,
	}
}

// Run executes the pipeline. Per-group fetches run concurrently under a
// bounded errgroup; sheets are slotted by group index so output order always
// matches enumeration order. The first failing query cancels the rest and
// fails the run before anything is written.
func (s *ExportService) Run(ctx context.Context) error {
	groups, err := s.repo.ListGroups(ctx, s.clientID)
	if err != nil {
		return errors.WithCode(errors.CodeDatabaseError, errors.Wrap(err, "failed to enumerate rate groups"))
	}
	if len(groups) == 0 {
		return errors.New(errors.CodeNotFound, "no rate records found for client "+s.clientID.String())
	}
	s.logger.Info("exporting %d rate sheet(s) for client %s", len(groups), s.clientID)

	sheets := make([]rates.SheetData, len(groups))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, key := range groups {
		i, key := i, key
		g.Go(func() error {
			records, err := s.repo.ListByGroup(gctx, s.clientID, key)
			if err != nil {
				return errors.WithCode(errors.CodeDatabaseError, errors.Wrapf(err, "failed to fetch group %s", key))
			}
			s.logger.Debug("group %s: %d record(s)", key, len(records))
			sheets[i] = rates.SheetData{
				Name: rates.SheetTitle(key),
				Rows: rates.Pivot(records),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if err := s.writer.Write(sheets); err != nil {
		return errors.WithCode(errors.CodeExportError, errors.Wrap(err, "failed to write workbook"))
	}
	return nil
}

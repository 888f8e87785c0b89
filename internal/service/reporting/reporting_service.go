package reporting

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/agroboard/internal/domain/models"
	repo "github.com/mamadbah2/agroboard/internal/repository/sheets"
	"github.com/mamadbah2/agroboard/internal/store"
)

const (
	dateLayout         = "2006-01-02"
	ledgerWriteRange   = "Ledger!A:G"
	snapshotWriteRange = "Snapshots!A:F"
	usageWriteRange    = "MachineUsage!A:K"
)

// Service exports bookkeeping data to the spreadsheet: one journal row per
// applied ledger event, one snapshot row per farm per day, and machine usage
// reports with their checklist.
type Service struct {
	repo   repo.Repository
	store  *store.Store
	logger *zap.Logger
}

// NewService wires a new reporting service instance.
func NewService(repository repo.Repository, st *store.Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repository, store: st, logger: logger}
}

// AppendLedgerEntry journals one applied ledger event.
func (s *Service) AppendLedgerEntry(ctx context.Context, entry models.LedgerEntry) error {
	values := []interface{}{
		entry.Date.Format(dateLayout),
		string(entry.Kind),
		entry.FarmID,
		entry.FarmName,
		entry.Label,
		entry.Amount,
		entry.Quantity,
	}
	if err := s.repo.WriteRow(ctx, ledgerWriteRange, values); err != nil {
		return fmt.Errorf("append ledger entry: %w", err)
	}
	return nil
}

// AppendUsageReport journals a machine usage report with its checklist.
func (s *Service) AppendUsageReport(ctx context.Context, machine models.Machine, checks models.UsageChecklist) error {
	values := []interface{}{
		time.Now().UTC().Format(dateLayout),
		machine.ID,
		machine.Name,
		machine.HoursWorked,
		machine.FuelLevel,
		checks.Tires,
		checks.Oil,
		checks.Water,
		checks.Cleanliness,
		checks.Electrical,
		checks.Implement,
	}
	if err := s.repo.WriteRow(ctx, usageWriteRange, values); err != nil {
		return fmt.Errorf("append usage report: %w", err)
	}
	return nil
}

// DailySnapshot writes one row per farm with the cumulative accumulators as
// of now. Scheduled by the cron job; a single failed farm aborts the run so
// the next tick retries the whole day.
func (s *Service) DailySnapshot(ctx context.Context, now time.Time) error {
	date := now.UTC().Format(dateLayout)
	for _, farm := range s.store.ListFarms() {
		values := []interface{}{
			date,
			farm.ID,
			farm.Name,
			farm.Revenue,
			farm.Expenses,
			farm.Balance(),
		}
		if err := s.repo.WriteRow(ctx, snapshotWriteRange, values); err != nil {
			return fmt.Errorf("snapshot farm %s: %w", farm.ID, err)
		}
	}

	s.logger.Info("daily snapshot exported", zap.String("date", date))
	return nil
}

package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/mamadbah2/agroboard/internal/config"
	"github.com/mamadbah2/agroboard/internal/service/reporting"
	syncsvc "github.com/mamadbah2/agroboard/internal/service/sync"
)

// Scheduler manages the periodic remote pull and the daily snapshot export.
type Scheduler struct {
	cron         *cron.Cron
	syncSvc      *syncsvc.Service
	reportingSvc *reporting.Service
	cfg          config.Config
	logger       *zap.Logger
}

// NewScheduler creates a new scheduler instance. reportingSvc may be nil
// when the spreadsheet export is not configured.
func NewScheduler(cfg config.Config, syncSvc *syncsvc.Service, reportingSvc *reporting.Service, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Scheduler{
		cron:         cron.New(),
		syncSvc:      syncSvc,
		reportingSvc: reportingSvc,
		cfg:          cfg,
		logger:       logger,
	}
}

// Start registers the jobs and starts the cron loop.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler")

	if s.syncSvc != nil && s.syncSvc.Enabled() {
		if _, err := s.cron.AddFunc(s.cfg.Sync.PullCron, s.pullRemote); err != nil {
			s.logger.Error("failed to schedule remote pull", zap.Error(err))
		}
	}

	if s.reportingSvc != nil {
		if _, err := s.cron.AddFunc(s.cfg.Reporting.SnapshotCron, s.exportSnapshot); err != nil {
			s.logger.Error("failed to schedule daily snapshot", zap.Error(err))
		}
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) pullRemote() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := s.syncSvc.Pull(ctx); err != nil {
		s.logger.Warn("scheduled remote pull incomplete", zap.Error(err))
	}
}

func (s *Scheduler) exportSnapshot() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := s.reportingSvc.DailySnapshot(ctx, time.Now()); err != nil {
		s.logger.Error("daily snapshot failed", zap.Error(err))
	}
}

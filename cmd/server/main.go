package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/agroboard/internal/config"
	"github.com/mamadbah2/agroboard/internal/domain/models"
	"github.com/mamadbah2/agroboard/internal/repository/mongodb"
	"github.com/mamadbah2/agroboard/internal/repository/sheets"
	"github.com/mamadbah2/agroboard/internal/scheduler"
	"github.com/mamadbah2/agroboard/internal/server/handlers"
	"github.com/mamadbah2/agroboard/internal/server/router"
	advisorysvc "github.com/mamadbah2/agroboard/internal/service/advisory"
	ledgersvc "github.com/mamadbah2/agroboard/internal/service/ledger"
	reportingsvc "github.com/mamadbah2/agroboard/internal/service/reporting"
	subscriptionsvc "github.com/mamadbah2/agroboard/internal/service/subscription"
	syncsvc "github.com/mamadbah2/agroboard/internal/service/sync"
	"github.com/mamadbah2/agroboard/internal/store"
	advisoryclient "github.com/mamadbah2/agroboard/pkg/clients/advisory"
	"github.com/mamadbah2/agroboard/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	entityStore := store.NewSeeded()

	var remote syncsvc.Remote
	if cfg.MongoDB.URI != "" {
		mongoRepo, err := mongodb.NewMongoDBRepository(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName)
		if err != nil {
			baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
		}
		defer func() {
			if err := mongoRepo.Close(context.Background()); err != nil {
				baseLogger.Error("failed to close mongodb connection", zap.Error(err))
			}
		}()
		remote = mongoRepo
	} else {
		baseLogger.Warn("mongodb uri missing, remote persistence disabled")
	}

	var reportingSvc *reportingsvc.Service
	if cfg.Sheets.CredentialsPath != "" {
		sheetsRepo, err := sheets.NewGoogleSheetRepository(context.Background(), cfg.Sheets, baseLogger.Named("repo.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheets repository", zap.Error(err))
		}
		reportingSvc = reportingsvc.NewService(sheetsRepo, entityStore, baseLogger.Named("svc.reporting"))
	} else {
		baseLogger.Warn("google sheets credentials missing, bookkeeping export disabled")
	}

	var advisoryClient advisoryclient.Client
	if cfg.Advisory.APIKey != "" {
		advisoryClient = advisoryclient.NewClient(cfg.Advisory.APIKey)
		baseLogger.Info("advisory client enabled")
	} else {
		baseLogger.Warn("anthropic api key missing, advisory screens disabled")
	}

	var journal ledgersvc.Journal
	if reportingSvc != nil {
		journal = reportingSvc
	}
	ledgerSvc := ledgersvc.NewService(entityStore, journal, baseLogger.Named("svc.ledger"))
	syncService := syncsvc.NewService(remote, entityStore, baseLogger.Named("svc.sync"))
	advisoryService := advisorysvc.NewService(advisoryClient, baseLogger.Named("svc.advisory"))
	subscriptionSvc := subscriptionsvc.NewService(models.Subscription{
		Plan:      models.PlanPremium,
		Status:    models.SubscriptionActive,
		ExpiresAt: "2025-12-31",
		AddOns:    []string{"satellite_monitoring"},
	})

	if syncService.Enabled() {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			defer cancel()
			if err := syncService.Pull(ctx); err != nil {
				baseLogger.Warn("initial remote pull incomplete", zap.Error(err))
			}
		}()
	}

	engine := router.New(router.Handlers{
		Farms:        handlers.NewFarmHandler(entityStore, ledgerSvc, syncService, baseLogger.Named("handlers.farms")),
		Inventory:    handlers.NewInventoryHandler(entityStore, ledgerSvc, syncService, baseLogger.Named("handlers.inventory")),
		Fleet:        handlers.NewFleetHandler(entityStore, ledgerSvc, syncService, reportingSvc, baseLogger.Named("handlers.fleet")),
		Herd:         handlers.NewHerdHandler(entityStore, syncService, baseLogger.Named("handlers.herd")),
		Staff:        handlers.NewStaffHandler(entityStore, ledgerSvc, syncService, baseLogger.Named("handlers.staff")),
		Subscription: handlers.NewSubscriptionHandler(subscriptionSvc, baseLogger.Named("handlers.subscription")),
		Advisory:     handlers.NewAdvisoryHandler(advisoryService, baseLogger.Named("handlers.advisory")),
		Documents:    handlers.NewDocumentsHandler(),
		Sync:         handlers.NewSyncHandler(syncService, baseLogger.Named("handlers.sync")),
	}, subscriptionSvc, baseLogger.Named("router"))

	sched := scheduler.NewScheduler(*cfg, syncService, reportingSvc, baseLogger.Named("scheduler"))
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}

package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"log-stats/internal/aggregators"
	"log-stats/internal/events"
	internalhttp "log-stats/internal/http"
	"log-stats/internal/ingestors"
	"log-stats/internal/jobs"
	"log-stats/internal/shared/configs"
	"log-stats/internal/shared/databases"
	"log-stats/internal/shared/filestorages"
	"log-stats/internal/shared/loggers"
	"log-stats/internal/stores"
	"log-stats/internal/streams"

	"gorm.io/gorm"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server
	db        *gorm.DB

	ingestionJobQueue    *streams.PartitionedQueue[events.IngestionJobEvent]
	ingestionJobConsumer streams.IngestionJobConsumer
	backgroundCtx        context.Context
	backgroundCancel     context.CancelFunc
}

// New creates and initializes a new App instance.
func New(ctx context.Context, config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	appLogger = appLogger.With().
		Str(loggers.FieldApp, "log-stats").
		Logger()

	components, err := NewComponents(ctx, config, appLogger)
	if err != nil {
		return nil, err
	}

	sqlDB, err := components.DB.DB()
	if err != nil {
		_ = databases.Close(components.DB)
		return nil, fmt.Errorf("failed to access connection pool: %w", err)
	}

	// Initialize ingestion job queue
	ingestionJobQueue := streams.NewPartitionedQueue[events.IngestionJobEvent](config.Ingestion.Workers, config.Ingestion.QueueBuffer)
	ingestionJobProducer := streams.NewIngestionJobProducer(ingestionJobQueue)
	ingestionJobRunner := ingestors.NewIngestionJobRunner(components.IngestionService, components.UploadStore, components.IngestionReportStore)
	consumerLogger := appLogger.With().Str(loggers.FieldComponent, "consumer").Logger()
	ingestionJobConsumer := streams.NewIngestionJobConsumer(ingestionJobQueue, ingestionJobRunner, consumerLogger)

	ingestionJobService := jobs.NewIngestionJobService(
		components.UploadStore,
		components.IngestionReportStore,
		ingestionJobProducer,
		config.Ingestion.MaxUploadBytes,
	)

	// Initialize http router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(components.StatsQueryService, ingestionJobService, sqlDB, httpLogger)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:               config,
		appLogger:            appLogger,
		server:               server,
		db:                   components.DB,
		ingestionJobQueue:    ingestionJobQueue,
		ingestionJobConsumer: ingestionJobConsumer,
	}, nil
}

// Components are the pieces shared by the server and the ingest command.
type Components struct {
	DB                   *gorm.DB
	UploadStore          stores.UploadStore
	IngestionReportStore stores.IngestionReportStore
	IngestionService     ingestors.IngestionService
	StatsQueryService    aggregators.StatsQueryService
}

// NewComponents opens the database and file storage and builds the ingestion and
// aggregation services on top of them. The caller closes DB.
func NewComponents(ctx context.Context, config *configs.Config, appLogger loggers.Logger) (*Components, error) {
	dbLogger := appLogger.With().Str(loggers.FieldComponent, "database").Logger()
	db, err := databases.Open(config.Database, dbLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	fileStorage, err := filestorages.New(ctx, config.FileStorage)
	if err != nil {
		_ = databases.Close(db)
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	logEntryStore := stores.NewLogEntryStore(db, config.Database.InsertChunkSize)
	ingestionService := ingestors.NewIngestionService(ingestors.NewLineParser(), logEntryStore, config.Ingestion.BatchSize)

	aggregationService := aggregators.NewAggregationService(logEntryStore, aggregators.NewStatsCalculator())
	statsQueryService := aggregators.NewStatsQueryService(aggregationService)

	return &Components{
		DB:                   db,
		UploadStore:          stores.NewUploadStore(fileStorage),
		IngestionReportStore: stores.NewIngestionReportStore(fileStorage),
		IngestionService:     ingestionService,
		StatsQueryService:    statsQueryService,
	}, nil
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting log-stats service on port %d (log_level=%s, database_driver=%s, file_storage_backend=%s, ingestion_workers=%d)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.Database.Driver,
			app.config.FileStorage.Backend,
			app.config.Ingestion.Workers)

	// start background consumers
	app.backgroundCtx, app.backgroundCancel = context.WithCancel(context.Background())
	app.ingestionJobConsumer.Start(app.backgroundCtx)

	return app.server.ListenAndServe()
}

// Shutdown stops accepting requests, then stops the job workers, then closes the database.
// Jobs that were queued but not started keep their pending report.
func (app *App) Shutdown(ctx context.Context) error {
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")

	// let in-flight jobs finish until the shutdown deadline, then cancel them
	app.ingestionJobQueue.Close()
	stopped := make(chan struct{})
	go func() {
		app.ingestionJobConsumer.Stop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-ctx.Done():
		app.appLogger.Warn().Msg("Shutdown deadline reached, cancelling in-flight ingestion jobs")
		if app.backgroundCancel != nil {
			app.backgroundCancel()
		}
		<-stopped
	}
	if app.backgroundCancel != nil {
		app.backgroundCancel()
	}
	app.appLogger.Info().Msg("Background consumers stopped")

	if err := databases.Close(app.db); err != nil {
		return fmt.Errorf("database close failed: %w", err)
	}
	return nil
}

var _ internalhttp.Pinger = (*sql.DB)(nil)

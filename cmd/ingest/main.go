package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"log-stats/internal/app"
	"log-stats/internal/models"
	"log-stats/internal/shared/configs"
	"log-stats/internal/shared/databases"
	"log-stats/internal/shared/loggers"

	"github.com/goccy/go-json"
	"github.com/spf13/pflag"
)

// ingest loads access log files into the database one after another and prints a
// JSON report per file on stdout. Logs go to stderr.
func main() {
	configPath := pflag.String("config", "./configs/configs.yml", "path to the yaml configuration file")
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [--config path] <file>...\n", filepath.Base(os.Args[0]))
		pflag.PrintDefaults()
	}
	pflag.Parse()

	files := pflag.Args()
	if len(files) == 0 {
		pflag.Usage()
		os.Exit(2)
	}

	cfg, err := configs.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := loggers.NewWithWriter(cfg.Log.Level, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	logger = logger.With().Str(loggers.FieldApp, "log-stats-ingest").Logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logger.WithContext(ctx)

	components, err := app.NewComponents(ctx, cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	failed := run(ctx, components, files)
	if err := databases.Close(components.DB); err != nil {
		logger.Error().Err(err).Msg("failed to close database")
	}
	if failed {
		os.Exit(1)
	}
}

// run ingests each file in order and reports whether any file could not be opened or read.
func run(ctx context.Context, components *app.Components, files []string) bool {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	failed := false
	for _, path := range files {
		if ctx.Err() != nil {
			return true
		}

		file, err := os.Open(path)
		if err != nil {
			loggers.Ctx(ctx).Error().Err(err).Str(loggers.FieldSource, path).Msg("failed to open log file")
			failed = true
			continue
		}

		report, _ := components.IngestionService.Ingest(ctx, path, file)
		_ = file.Close()

		if report.Status == models.IngestionFailed {
			failed = true
		}
		if err := encoder.Encode(report); err != nil {
			loggers.Ctx(ctx).Error().Err(err).Msg("failed to write report")
			failed = true
		}
	}
	return failed
}

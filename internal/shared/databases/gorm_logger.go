package databases

import (
	"context"
	"errors"
	"time"

	"log-stats/internal/shared/loggers"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// gormLogger routes GORM's logging through zerolog. It prefers the request or job
// scoped logger carried by ctx and falls back to the logger given at construction.
type gormLogger struct {
	base  loggers.Logger
	level gormlogger.LogLevel
}

// NewGormLogger adapts a zerolog logger to gorm's logger interface.
func NewGormLogger(base loggers.Logger) gormlogger.Interface {
	return &gormLogger{base: base, level: gormlogger.Warn}
}

func (l *gormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *l
	clone.level = level
	return &clone
}

func (l *gormLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Info {
		l.logger(ctx).Info().Msgf(msg, args...)
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Warn {
		l.logger(ctx).Warn().Msgf(msg, args...)
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Error {
		l.logger(ctx).Error().Msgf(msg, args...)
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	logger := l.logger(ctx)

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= gormlogger.Error:
		sql, rows := fc()
		logger.Error().Err(err).
			Str("sql", sql).
			Int64("rows", rows).
			Int64(loggers.FieldDuration, elapsed.Milliseconds()).
			Msg("query failed")
	case elapsed > slowQueryThreshold && l.level >= gormlogger.Warn:
		sql, rows := fc()
		logger.Warn().
			Str("sql", sql).
			Int64("rows", rows).
			Int64(loggers.FieldDuration, elapsed.Milliseconds()).
			Msg("slow query")
	default:
		if e := logger.Debug(); e.Enabled() {
			sql, rows := fc()
			e.Str("sql", sql).
				Int64("rows", rows).
				Int64(loggers.FieldDuration, elapsed.Milliseconds()).
				Msg("query")
		}
	}
}

func (l *gormLogger) logger(ctx context.Context) *loggers.Logger {
	if ctx != nil {
		if ctxLogger := loggers.Ctx(ctx); ctxLogger.GetLevel() != zerolog.Disabled {
			return ctxLogger
		}
	}
	return &l.base
}

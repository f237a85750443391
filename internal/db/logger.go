package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// GormLogger adapts a logrus logger to gorm's logger interface, keeping
// severities: failed statements log at Error, slow ones at Warn and the rest at Debug.
type GormLogger struct {
	log   *logrus.Logger
	level logger.LogLevel

	// SlowThreshold is the execution time above which a statement is reported
	// as slow. Zero disables the check.
	SlowThreshold time.Duration
}

// NewGormLogger routes gorm's SQL logging through the application logger.
// level is one of silent, error, warn or info.
func NewGormLogger(log *logrus.Logger, level string) *GormLogger {
	return &GormLogger{
		log:           log,
		level:         parseGormLevel(level),
		SlowThreshold: 200 * time.Millisecond,
	}
}

// LogMode returns a copy of the logger filtering at the given level.
func (l *GormLogger) LogMode(level logger.LogLevel) logger.Interface {
	newLogger := *l
	newLogger.level = level
	return &newLogger
}

// Info logs at logrus Info.
func (l *GormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		l.log.WithContext(ctx).Infof(msg, data...)
	}
}

// Warn logs at logrus Warn.
func (l *GormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		l.log.WithContext(ctx).Warnf(msg, data...)
	}
}

// Error logs at logrus Error.
func (l *GormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		l.log.WithContext(ctx).Errorf(msg, data...)
	}
}

// Trace logs one executed statement. Record-not-found is not an error here.
func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level <= logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	switch {
	case err != nil && l.level >= logger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		sql, rows := fc()
		l.entry(ctx, elapsed, sql, rows).WithError(err).Error("SQL failed")
	case l.SlowThreshold != 0 && elapsed > l.SlowThreshold && l.level >= logger.Warn:
		sql, rows := fc()
		l.entry(ctx, elapsed, sql, rows).Warn(fmt.Sprintf("SLOW SQL >= %v", l.SlowThreshold))
	case l.level >= logger.Info:
		sql, rows := fc()
		l.entry(ctx, elapsed, sql, rows).Debug("SQL")
	}
}

func (l *GormLogger) entry(ctx context.Context, elapsed time.Duration, sql string, rows int64) *logrus.Entry {
	return l.log.WithContext(ctx).WithFields(logrus.Fields{
		"elapsed_ms": float64(elapsed.Nanoseconds()) / 1e6,
		"rows":       rows,
		"sql":        sql,
	})
}

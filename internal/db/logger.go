package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	gormlogger "gorm.io/gorm/logger"

	"taxiservice/internal/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// gormLogger forwards GORM messages to the service logger.
type gormLogger struct {
	log   logger.ILogger
	level gormlogger.LogLevel
	slow  time.Duration
}

// NewGormLogger adapts log to GORM. Missing records are not reported.
func NewGormLogger(log logger.ILogger, level gormlogger.LogLevel) gormlogger.Interface {
	if log == nil {
		log = logger.Nop()
	}
	return &gormLogger{log: log, level: level, slow: slowQueryThreshold}
}

func (l *gormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	copied := *l
	copied.level = level
	return &copied
}

func (l *gormLogger) Info(_ context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Info {
		l.log.Info(fmt.Sprintf(msg, args...))
	}
}

func (l *gormLogger) Warn(_ context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Warn {
		l.log.Warning(fmt.Sprintf(msg, args...))
	}
}

func (l *gormLogger) Error(_ context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Error {
		l.log.Error(fmt.Sprintf(msg, args...))
	}
}

func (l *gormLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}
	elapsed := time.Since(begin)

	switch {
	case err != nil && l.level >= gormlogger.Error && !errors.Is(err, gormlogger.ErrRecordNotFound):
		sql, rows := fc()
		l.log.Error("query failed",
			logger.Error(err),
			logger.String("sql", sql),
			logger.Any("rows", rows),
			logger.Duration("elapsed", elapsed),
		)
	case l.slow > 0 && elapsed > l.slow && l.level >= gormlogger.Warn:
		sql, rows := fc()
		l.log.Warning("slow query",
			logger.String("sql", sql),
			logger.Any("rows", rows),
			logger.Duration("elapsed", elapsed),
			logger.Duration("threshold", l.slow),
		)
	case l.level >= gormlogger.Info:
		sql, rows := fc()
		l.log.Debug("query",
			logger.String("sql", sql),
			logger.Any("rows", rows),
			logger.Duration("elapsed", elapsed),
		)
	}
}

package logger

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const slowQuery = 200 * time.Millisecond

// GormLogger sends gorm's SQL logging through a LoggerService, so query
// errors land in the same file as everything else.
type GormLogger struct {
	log   LoggerService
	level gormlogger.LogLevel
}

func NewGormLogger(log LoggerService, level gormlogger.LogLevel) *GormLogger {
	return &GormLogger{log: log, level: level}
}

func (g *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	return &GormLogger{log: g.log, level: level}
}

func (g *GormLogger) Info(_ context.Context, msg string, args ...any) {
	if g.level >= gormlogger.Info {
		g.log.Info(msg, args...)
	}
}

func (g *GormLogger) Warn(_ context.Context, msg string, args ...any) {
	if g.level >= gormlogger.Warn {
		g.log.Warn(msg, args...)
	}
}

func (g *GormLogger) Error(_ context.Context, msg string, args ...any) {
	if g.level >= gormlogger.Error {
		g.log.Error(msg, args...)
	}
}

// Trace logs failed statements at error level and slow ones at warn level.
// Missing rows are not errors here; callers turn them into 404s.
func (g *GormLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if g.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	switch {
	case err != nil && g.level >= gormlogger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		sql, rows := fc()
		g.log.Error("%v [%s] rows:%d %s", err, elapsed, rows, sql)
	case elapsed > slowQuery && g.level >= gormlogger.Warn:
		sql, rows := fc()
		g.log.Warn("slow query [%s] rows:%d %s", elapsed, rows, sql)
	case g.level >= gormlogger.Info:
		sql, rows := fc()
		g.log.Debug("[%s] rows:%d %s", elapsed, rows, sql)
	}
}

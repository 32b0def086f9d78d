package logger

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// GormLogger routes GORM's query and error logs through logrus.
type GormLogger struct {
	l                    logrus.FieldLogger
	level                gormlogger.LogLevel
	slowThreshold        time.Duration
	ignoreRecordNotFound bool
}

var _ gormlogger.Interface = (*GormLogger)(nil)

func NewGormLogger(l logrus.FieldLogger, slowThreshold time.Duration) *GormLogger {
	return &GormLogger{
		l:                    l,
		level:                gormlogger.Warn,
		slowThreshold:        slowThreshold,
		ignoreRecordNotFound: true,
	}
}

func (g *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	cp := *g
	cp.level = level
	return &cp
}

func (g *GormLogger) Info(_ context.Context, msg string, args ...interface{}) {
	if g.level >= gormlogger.Info {
		g.l.Infof(msg, args...)
	}
}

func (g *GormLogger) Warn(_ context.Context, msg string, args ...interface{}) {
	if g.level >= gormlogger.Warn {
		g.l.Warnf(msg, args...)
	}
}

func (g *GormLogger) Error(_ context.Context, msg string, args ...interface{}) {
	if g.level >= gormlogger.Error {
		g.l.Errorf(msg, args...)
	}
}

func (g *GormLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if g.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()
	entry := g.l.WithFields(logrus.Fields{
		"elapsed_ms": elapsed.Milliseconds(),
		"rows":       rows,
		"sql":        sql,
	})

	switch {
	case err != nil && g.level >= gormlogger.Error &&
		!(g.ignoreRecordNotFound && errors.Is(err, gorm.ErrRecordNotFound)):
		entry.WithError(err).Error("gorm query failed")
	case g.slowThreshold > 0 && elapsed > g.slowThreshold && g.level >= gormlogger.Warn:
		entry.Warn("gorm slow query")
	case g.level >= gormlogger.Info:
		entry.Debug("gorm query")
	}
}

package logger

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/farellandr/gigbook/config"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func query() (string, int64) {
	return "SELECT * FROM venues", 0
}

func TestGormLoggerTrace(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriterLogger("gorm", config.LogConfig{Level: "debug", NoColor: true}, &buf)
	g := NewGormLogger(log, gormlogger.Warn)
	ctx := context.Background()

	g.Trace(ctx, time.Now(), query, errors.New("no such table: venues"))
	assert.Contains(t, buf.String(), "ERROR [gorm] no such table: venues")
	assert.Contains(t, buf.String(), "SELECT * FROM venues")

	buf.Reset()
	g.Trace(ctx, time.Now(), query, gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String())

	g.Trace(ctx, time.Now().Add(-time.Second), query, nil)
	assert.Contains(t, buf.String(), "WARN  [gorm] slow query")

	buf.Reset()
	g.Trace(ctx, time.Now(), query, nil)
	assert.Empty(t, buf.String(), "fast queries only show at info level")

	g.LogMode(gormlogger.Info).Trace(ctx, time.Now(), query, nil)
	assert.Contains(t, buf.String(), "DEBUG [gorm]")

	buf.Reset()
	g.LogMode(gormlogger.Silent).Trace(ctx, time.Now(), query, errors.New("boom"))
	assert.Empty(t, buf.String())
}

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "debug", "json")

	assert.Equal(t, logrus.DebugLevel, l.GetLevel())

	l.WithField("loan_id", "abc").Info("created")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "created", line["msg"])
	assert.Equal(t, "abc", line["loan_id"])
}

func TestNew_TextAndBadLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "loud", "text")

	assert.Equal(t, logrus.InfoLevel, l.GetLevel())
	_, ok := l.Formatter.(*logrus.TextFormatter)
	assert.True(t, ok)
}

func TestGormLogger_Trace(t *testing.T) {
	base, hook := test.NewNullLogger()
	base.SetLevel(logrus.DebugLevel)
	ctx := context.Background()
	sql := func() (string, int64) { return "SELECT 1", 1 }

	g := NewGormLogger(base, 10*time.Millisecond)

	g.Trace(ctx, time.Now(), sql, errors.New("boom"))
	require.Len(t, hook.Entries, 1)
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
	assert.Equal(t, "SELECT 1", hook.LastEntry().Data["sql"])

	hook.Reset()
	g.Trace(ctx, time.Now(), sql, gorm.ErrRecordNotFound)
	assert.Empty(t, hook.Entries)

	g.Trace(ctx, time.Now().Add(-time.Second), sql, nil)
	require.Len(t, hook.Entries, 1)
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)

	hook.Reset()
	g.Trace(ctx, time.Now(), sql, nil)
	assert.Empty(t, hook.Entries, "fast queries are not logged at warn level")

	g.LogMode(gormlogger.Info).Trace(ctx, time.Now(), sql, nil)
	require.Len(t, hook.Entries, 1)
	assert.Equal(t, logrus.DebugLevel, hook.LastEntry().Level)

	hook.Reset()
	g.LogMode(gormlogger.Silent).Trace(ctx, time.Now(), sql, errors.New("boom"))
	assert.Empty(t, hook.Entries)
}

func TestGormLogger_Levels(t *testing.T) {
	base, hook := test.NewNullLogger()
	ctx := context.Background()

	g := NewGormLogger(base, 0)
	g.Info(ctx, "hidden %d", 1)
	assert.Empty(t, hook.Entries)

	g.Warn(ctx, "careful %s", "now")
	require.Len(t, hook.Entries, 1)
	assert.Equal(t, "careful now", hook.LastEntry().Message)

	g.Error(ctx, "broken")
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
}

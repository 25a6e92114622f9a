package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewZapLoggerToleratesBadLevel(t *testing.T) {
	l := NewZapLogger(&ZapLoggerConfig{Level: "loud", Encoding: "xml"})
	assert.NotNil(t, l)
}

func TestWithCarriesFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := FromZap(zap.New(core)).With(zap.String("component", "catalog"))

	l.Info("hello", zap.Int("n", 1))
	l.Debug("debugging")

	entries := logs.All()
	assert.Len(t, entries, 2)
	assert.Equal(t, "hello", entries[0].Message)
	assert.Equal(t, "catalog", entries[0].ContextMap()["component"])
	assert.EqualValues(t, 1, entries[0].ContextMap()["n"])
}

func TestNewNopDiscards(t *testing.T) {
	l := NewNop()
	l.Error("ignored")
	assert.NoError(t, l.Sync())
}

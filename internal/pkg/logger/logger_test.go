package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestOrNop(t *testing.T) {
	assert.NotNil(t, OrNop(nil).SugaredLogger)
	assert.NotNil(t, OrNop(&Logger{}).SugaredLogger)

	l := Nop()
	assert.Same(t, l, OrNop(l))
}

func TestNew_Modes(t *testing.T) {
	for _, mode := range []string{"production", "dev", ""} {
		l, err := New(mode)
		require.NoError(t, err, mode)
		require.NotNil(t, l.SugaredLogger)
	}
}

func TestWith_CarriesFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := &Logger{SugaredLogger: zap.New(core).Sugar()}

	l.With("component", "cache").Info("hit", "key", "profile:1")

	entries := logs.All()
	require.Len(t, entries, 1)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "cache", ctx["component"])
	assert.Equal(t, "profile:1", ctx["key"])
}

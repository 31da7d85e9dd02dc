package logger

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggingBeforeInitIsNoop(t *testing.T) {
	prev := log
	t.Cleanup(func() { log = prev })
	log = zap.NewNop()

	assert.NotPanics(t, func() {
		Info(context.Background(), "dropped")
		Warn(context.Background(), "dropped")
	})
}

func TestInitAndContextLogging(t *testing.T) {
	Init("development")
	require.NotNil(t, GetLogger())

	ctx := context.WithValue(context.Background(), "request_id", "req-1")
	Info(ctx, "info")
	Debug(ctx, "debug")
	Warn(ctx, "warn")
	Error(ctx, "error")
	LogRequest(ctx, "GET", "/health", 200, 10*time.Millisecond, "127.0.0.1")
	SetLevel(zapcore.InfoLevel)
	Sync()
}

func TestWithContextAddsRequestAndActor(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	prev := log
	t.Cleanup(func() { log = prev })
	log = zap.New(core)

	ctx := context.WithValue(context.Background(), RequestIDKey, "typed-req-id")
	ctx = context.WithValue(ctx, ActorIDKey, "user-1")
	Info(ctx, "hello")

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "typed-req-id", fields["request_id"])
	assert.Equal(t, "user-1", fields["actor_id"])
}

func TestInit_Production(t *testing.T) {
	prev := log
	t.Cleanup(func() {
		log = prev
		once = sync.Once{}
	})
	log = zap.NewNop()
	once = sync.Once{}

	Init("production")
	require.NotNil(t, GetLogger())
	assert.Same(t, log, WithContext(context.Background()))
}

package async_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"remotework/internal/domain"
	"remotework/internal/infrastructure/async"
)

func TestWorkerPool_RunsTasks(t *testing.T) {
	p := async.NewWorkerPool(context.Background(), 3, time.Second, zap.NewNop())

	var n atomic.Int32
	for i := 0; i < 20; i++ {
		if !p.Submit(func(context.Context) { n.Add(1) }) {
			t.Fatalf("task %d rejected", i)
		}
	}
	p.Shutdown()

	if n.Load() != 20 {
		t.Fatalf("expected 20 tasks run, got %d", n.Load())
	}
}

func TestWorkerPool_RecoversPanics(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	p := async.NewWorkerPool(context.Background(), 1, time.Second, zap.New(core))

	var ran atomic.Bool
	p.Submit(func(context.Context) { panic("boom") })
	p.Submit(func(context.Context) { ran.Store(true) })
	p.Shutdown()

	if !ran.Load() {
		t.Fatalf("worker died after panic")
	}
	if logs.FilterMessage("task panicked").Len() != 1 {
		t.Fatalf("expected panic to be logged")
	}
}

func TestWorkerPool_RejectsAfterShutdown(t *testing.T) {
	p := async.NewWorkerPool(context.Background(), 1, time.Second, zap.NewNop())
	p.Shutdown()

	if p.Submit(func(context.Context) {}) {
		t.Fatalf("submit after shutdown must be rejected")
	}
}

func TestAsyncEventBus_LogsEvents(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	bus := async.NewAsyncEventBus(context.Background(), 2, zap.New(core))

	bus.Publish(context.Background(), domain.Event{
		Type:    domain.EventTeamLoaded,
		Payload: map[string]any{"members": 3},
	})
	bus.Publish(context.Background(), domain.Event{
		Type:    domain.EventTeamReloadFail,
		Payload: map[string]any{"error": "bad file"},
	})
	bus.Close()

	entries := logs.FilterMessage("domain_event").All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 domain_event entries, got %d", len(entries))
	}
	levels := map[string]zapcore.Level{}
	for _, e := range entries {
		levels[e.ContextMap()["type"].(string)] = e.Level
	}
	if levels[domain.EventTeamLoaded] != zapcore.InfoLevel {
		t.Fatalf("team.loaded should log at info")
	}
	if levels[domain.EventTeamReloadFail] != zapcore.WarnLevel {
		t.Fatalf("team.reload_failed should log at warn")
	}
}

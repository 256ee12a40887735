package async

import (
	"context"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"remotework/internal/domain"
)

const eventTimeout = 2 * time.Second

// AsyncEventBus records domain events off the request path.
type AsyncEventBus struct {
	pool *WorkerPool
	log  *zap.Logger
}

func NewAsyncEventBus(ctx context.Context, poolSize int, log *zap.Logger) *AsyncEventBus {
	return &AsyncEventBus{
		pool: NewWorkerPool(ctx, poolSize, eventTimeout, log),
		log:  log,
	}
}

func (b *AsyncEventBus) Publish(ctx context.Context, e domain.Event) {
	accepted := b.pool.Submit(func(_ context.Context) {
		fields := make([]zap.Field, 0, len(e.Payload)+1)
		fields = append(fields, zap.String("type", e.Type))
		for k, v := range e.Payload {
			fields = append(fields, zap.Any(k, v))
		}
		b.log.Log(levelFor(e.Type), "domain_event", fields...)
	})
	if !accepted {
		b.log.Warn("domain_event dropped", zap.String("type", e.Type))
	}
}

func (b *AsyncEventBus) Close() {
	b.pool.Shutdown()
}

func levelFor(eventType string) zapcore.Level {
	if eventType == domain.EventTeamReloadFail {
		return zapcore.WarnLevel
	}
	return zapcore.InfoLevel
}

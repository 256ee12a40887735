package async

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

type Task func(ctx context.Context)

// WorkerPool runs tasks on a fixed number of goroutines. A panicking task is
// logged and does not take its worker down.
type WorkerPool struct {
	tasks       chan Task
	wg          sync.WaitGroup
	ctx         context.Context
	cancel      context.CancelFunc
	taskTimeout time.Duration
	log         *zap.Logger
}

func NewWorkerPool(parent context.Context, size int, taskTimeout time.Duration, log *zap.Logger) *WorkerPool {
	if size < 1 {
		size = 1
	}
	ctx, cancel := context.WithCancel(parent)
	p := &WorkerPool{
		tasks:       make(chan Task, size),
		ctx:         ctx,
		cancel:      cancel,
		taskTimeout: taskTimeout,
		log:         log,
	}

	for i := 0; i < size; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}

	return p
}

func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	for {
		select {
		case <-p.ctx.Done():
			p.drain(id)
			return
		case task := <-p.tasks:
			p.run(id, task)
		}
	}
}

// drain runs whatever was queued before shutdown so accepted tasks are not lost.
func (p *WorkerPool) drain(id int) {
	for {
		select {
		case task := <-p.tasks:
			p.run(id, task)
		default:
			return
		}
	}
}

func (p *WorkerPool) run(id int, task Task) {
	ctx, cancel := context.WithTimeout(context.Background(), p.taskTimeout)
	defer cancel()
	defer func() {
		if r := recover(); r != nil {
			p.log.Error("task panicked", zap.Int("worker", id), zap.Any("panic", r))
		}
	}()
	task(ctx)
}

// Submit queues task and reports whether it was accepted. It blocks while
// the queue is full and returns false once the pool is shut down.
func (p *WorkerPool) Submit(task Task) bool {
	select {
	case <-p.ctx.Done():
		return false
	default:
	}

	select {
	case <-p.ctx.Done():
		return false
	case p.tasks <- task:
		return true
	}
}

func (p *WorkerPool) Shutdown() {
	p.cancel()
	p.wg.Wait()
}

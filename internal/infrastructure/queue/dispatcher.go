package queue

import (
	"context"
	"errors"
	"hash/fnv"
	"strconv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/ulysse/cms-api/internal/api/metrics"
	"github.com/ulysse/cms-api/internal/core/domain"
	"github.com/ulysse/cms-api/internal/core/ports"
)

const (
	defaultWorkers = 2
	defaultBuffer  = 64
)

var (
	ErrQueueFull   = errors.New("contact queue is full")
	ErrQueueClosed = errors.New("contact queue is closed")
)

// Dispatcher hands contact submissions to a fixed set of workers. Submissions
// from one email always land on the same worker so they are processed in
// arrival order.
type Dispatcher struct {
	workers []chan domain.ContactSubmission
	service ports.ContactService
	log     zerolog.Logger

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers, each
// buffering up to buffer submissions. Non-positive values use the defaults.
func NewDispatcher(numWorkers, buffer int, service ports.ContactService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	d := &Dispatcher{
		workers: make([]chan domain.ContactSubmission, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.ContactSubmission, buffer)
	}
	return d
}

// Start launches all worker goroutines. Each worker drains its channel until
// Shutdown closes it.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands sub to its worker without blocking. It fails with
// ErrQueueFull when that worker's buffer is full.
func (d *Dispatcher) Enqueue(_ context.Context, sub domain.ContactSubmission) error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return ErrQueueClosed
	}

	idx := d.shardIndex(sub.Email)
	select {
	case d.workers[idx] <- sub:
		metrics.ContactQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
		return nil
	default:
		metrics.ContactSubmissionsTotal.WithLabelValues("dropped").Inc()
		return ErrQueueFull
	}
}

// Shutdown stops accepting submissions and waits for the workers to drain
// what is already queued, or for ctx to end.
func (d *Dispatcher) Shutdown(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		for _, ch := range d.workers {
			close(ch)
		}
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// shardIndex maps an email deterministically to a worker index.
func (d *Dispatcher) shardIndex(email string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(email))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.ContactSubmission) {
	defer d.wg.Done()
	label := strconv.Itoa(id)
	for sub := range ch {
		metrics.ContactQueueDepth.WithLabelValues(label).Set(float64(len(ch)))
		if err := d.service.Process(context.WithoutCancel(ctx), sub); err != nil {
			d.log.Error().Err(err).
				Str("submission_id", sub.ID).
				Int("worker_id", id).
				Msg("contact processing failed")
		}
	}
}

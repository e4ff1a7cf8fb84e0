// Package prefetch provides a sharded background worker pool that warms the
// record detail cache. Fetches are FIFO within a shard, duplicate
// submissions for a record already queued or running are coalesced, and
// failures are reported but never retried.
package prefetch

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
)

// ErrWarmerClosed is returned by Submit after Stop.
var ErrWarmerClosed = errors.New("prefetch: warmer closed")

// FetchFunc loads one record's detail into the cache.
type FetchFunc func(ctx context.Context, recordID string) error

// Config tunes a Warmer. Zero values get sane defaults.
type Config struct {
	Shards         int
	QueueSize      int
	EnqueueTimeout time.Duration

	// ErrorHandler observes fetch failures. Prefetching is best-effort,
	// so a failure only invalidates the warm-up, never the cache.
	ErrorHandler func(error)
}

// QueueFullError reports a submission rejected because a shard stayed full
// past the enqueue timeout.
type QueueFullError struct {
	Shard    int
	Length   int
	Capacity int
}

func (e *QueueFullError) Error() string {
	return fmt.Sprintf("prefetch: shard %d queue full (%d/%d)", e.Shard, e.Length, e.Capacity)
}

type queuedFetch struct {
	ctx      context.Context
	recordID string
	barrier  chan struct{}
}

// Warmer executes warm-up fetches on worker goroutines partitioned by a
// stable hash of the record id.
type Warmer struct {
	cfg    Config
	fetch  FetchFunc
	queues []chan queuedFetch // len == cfg.Shards

	done   chan struct{} // closed in Stop()
	closed uint32        // 0 → running, 1 → closed

	mu      sync.Mutex
	pending map[string]struct{}

	wg sync.WaitGroup
}

// NewWarmer constructs the warmer and starts its shard workers.
func NewWarmer(fetch FetchFunc, cfg Config) *Warmer {
	if cfg.Shards <= 0 {
		cfg.Shards = 2
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 64
	}
	if cfg.EnqueueTimeout <= 0 {
		cfg.EnqueueTimeout = 100 * time.Millisecond
	}

	w := &Warmer{
		cfg:     cfg,
		fetch:   fetch,
		queues:  make([]chan queuedFetch, cfg.Shards),
		done:    make(chan struct{}),
		pending: make(map[string]struct{}),
	}
	for i := 0; i < cfg.Shards; i++ {
		ch := make(chan queuedFetch, cfg.QueueSize)
		w.queues[i] = ch
		w.wg.Add(1)
		go w.runWorker(i, ch)
	}
	return w
}

// Submit enqueues a warm-up fetch for recordID.
//
//   - Returns nil on success, and also when the id is already queued or
//     running (the earlier fetch covers it).
//   - Returns ErrWarmerClosed if the warmer is stopped.
//   - Returns *QueueFullError if the shard is full after EnqueueTimeout.
//   - Returns ctx.Err() if the caller-provided context is cancelled first.
func (w *Warmer) Submit(ctx context.Context, recordID string) error {
	if atomic.LoadUint32(&w.closed) == 1 {
		return ErrWarmerClosed
	}
	select {
	case <-w.done:
		return ErrWarmerClosed
	default:
	}

	w.mu.Lock()
	if _, dup := w.pending[recordID]; dup {
		w.mu.Unlock()
		return nil
	}
	w.pending[recordID] = struct{}{}
	w.mu.Unlock()

	shard := w.shardFor(recordID)
	ch := w.queues[shard]

	timer := time.NewTimer(w.cfg.EnqueueTimeout)
	defer timer.Stop()

	select {
	case ch <- queuedFetch{ctx: ctx, recordID: recordID}:
		submissionsTotal.WithLabelValues(labelFor(shard)).Inc()
		return nil

	case <-w.done:
		w.forget(recordID)
		return ErrWarmerClosed

	case <-ctx.Done():
		w.forget(recordID)
		return ctx.Err()

	case <-timer.C:
		w.forget(recordID)
		queueFullTotal.WithLabelValues(labelFor(shard)).Inc()
		return &QueueFullError{
			Shard:    shard,
			Length:   len(ch),
			Capacity: cap(ch),
		}
	}
}

// Barrier enqueues a no-op on every shard and waits until each runs,
// ensuring all previously submitted fetches have completed.
func (w *Warmer) Barrier(ctx context.Context) error {
	barriers := make([]chan struct{}, len(w.queues))
	for i, ch := range w.queues {
		done := make(chan struct{})
		barriers[i] = done
		select {
		case ch <- queuedFetch{ctx: ctx, barrier: done}:
		case <-w.done:
			return ErrWarmerClosed
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	for _, done := range barriers {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.done:
			return ErrWarmerClosed
		case <-done:
		}
	}
	return nil
}

// Stop signals every worker to exit and waits for them. Queued warm-ups are
// dropped; the cache they would have filled is repopulated on demand. Safe
// to call multiple times.
func (w *Warmer) Stop() {
	if !atomic.CompareAndSwapUint32(&w.closed, 0, 1) {
		return // already closed
	}
	close(w.done)
	w.wg.Wait()
}

// Close lets Warmer satisfy io.Closer.
func (w *Warmer) Close() error {
	w.Stop()
	return nil
}

// ------------------------- internals -------------------------

func (w *Warmer) runWorker(idx int, ch <-chan queuedFetch) {
	defer w.wg.Done()

	defer func() {
		if r := recover(); r != nil {
			log.Error().Int("shard", idx).Interface("panic", r).Msg("prefetch: worker panic")
		}
	}()

	label := labelFor(idx)

	for {
		select {
		case qf := <-ch:
			if qf.barrier != nil {
				close(qf.barrier)
				continue
			}

			// Honour caller context so a cancelled fetch doesn't stall the shard.
			select {
			case <-qf.ctx.Done():
				w.forget(qf.recordID)
				w.safeHandleError(qf.ctx.Err())
			default:
				start := time.Now()
				err := w.fetch(qf.ctx, qf.recordID)
				runDuration.WithLabelValues(label).Observe(time.Since(start).Seconds())
				w.forget(qf.recordID)
				if err != nil {
					w.safeHandleError(err)
				}
			}

			queueDepth.WithLabelValues(label).Set(float64(len(ch)))

		case <-w.done:
			queueDepth.WithLabelValues(label).Set(0)
			return
		}
	}
}

func (w *Warmer) forget(recordID string) {
	w.mu.Lock()
	delete(w.pending, recordID)
	w.mu.Unlock()
}

func (w *Warmer) safeHandleError(err error) {
	if err == nil || w.cfg.ErrorHandler == nil {
		return
	}
	func() {
		// Guard against panics in the user-supplied handler.
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Msg("prefetch: error handler panic")
			}
		}()
		w.cfg.ErrorHandler(err)
	}()
}

func (w *Warmer) shardFor(recordID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(recordID))
	return int(h.Sum32()) % w.cfg.Shards
}

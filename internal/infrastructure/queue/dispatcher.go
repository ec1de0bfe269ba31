package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/urcontent/dashboard-service/internal/api/metrics"
	"github.com/urcontent/dashboard-service/internal/core/domain"
	"github.com/urcontent/dashboard-service/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
	drainTimeout   = 5 * time.Second
)

// Dispatcher routes resolution audit entries to a fixed set of workers using
// consistent hashing on the user ID, so entries of one user are recorded in
// the order they were resolved.
type Dispatcher struct {
	workers []chan domain.ResolutionEntry
	service ports.AuditService
	log     zerolog.Logger
	wg      sync.WaitGroup

	// drainTimeout bounds how long a stopping worker keeps recording what
	// is still buffered.
	drainTimeout time.Duration
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.AuditService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers:      make([]chan domain.ResolutionEntry, numWorkers),
		service:      service,
		log:          log,
		drainTimeout: drainTimeout,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.ResolutionEntry, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. When ctx is cancelled each worker
// drains its buffer before returning.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch)
	}
}

// Wait blocks until every worker has returned.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// Enqueue hands an entry to the worker responsible for its user. It never
// blocks: when that worker's buffer is full the entry is dropped.
func (d *Dispatcher) Enqueue(entry domain.ResolutionEntry) {
	idx := d.shardIndex(entry.UserID)
	select {
	case d.workers[idx] <- entry:
		metrics.AuditQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
	default:
		metrics.AuditDroppedTotal.Inc()
		d.log.Warn().
			Str("user_id", entry.UserID).
			Int("worker_id", idx).
			Msg("audit queue full, resolution entry dropped")
	}
}

// shardIndex maps a user ID deterministically to a worker index.
func (d *Dispatcher) shardIndex(userID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(userID))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.ResolutionEntry) {
	defer d.wg.Done()
	depth := metrics.AuditQueueDepth.WithLabelValues(strconv.Itoa(id))
	for {
		if ctx.Err() != nil {
			d.drain(ctx, id, ch)
			return
		}
		select {
		case <-ctx.Done():
			d.drain(ctx, id, ch)
			return
		case entry, ok := <-ch:
			if !ok {
				return
			}
			depth.Set(float64(len(ch)))
			d.record(ctx, id, entry)
		}
	}
}

// drain records the entries still buffered in ch after shutdown began.
// Entries left once drainTimeout expires are counted as dropped.
func (d *Dispatcher) drain(ctx context.Context, id int, ch <-chan domain.ResolutionEntry) {
	drainCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.drainTimeout)
	defer cancel()

	var recorded, dropped int
	defer func() {
		metrics.AuditQueueDepth.WithLabelValues(strconv.Itoa(id)).Set(0)
		if dropped > 0 {
			metrics.AuditDroppedTotal.Add(float64(dropped))
		}
		if recorded > 0 || dropped > 0 {
			d.log.Info().
				Int("worker_id", id).
				Int("recorded", recorded).
				Int("dropped", dropped).
				Msg("audit worker drained")
		}
	}()

	for {
		select {
		case entry, ok := <-ch:
			if !ok {
				return
			}
			if drainCtx.Err() != nil {
				dropped++
				continue
			}
			d.record(drainCtx, id, entry)
			recorded++
		default:
			return
		}
	}
}

func (d *Dispatcher) record(ctx context.Context, id int, entry domain.ResolutionEntry) {
	if err := d.service.Record(ctx, entry); err != nil {
		d.log.Error().Err(err).
			Str("user_id", entry.UserID).
			Int("worker_id", id).
			Msg("resolution audit failed")
	}
}

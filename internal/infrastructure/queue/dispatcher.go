package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/learnhub/course-catalog/internal/api/metrics"
	"github.com/learnhub/course-catalog/internal/core/domain"
	"github.com/learnhub/course-catalog/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes domain events to a fixed set of workers using consistent
// hashing on the resource id, guaranteeing per-resource event ordering.
// Workers record metrics and invalidate the read cache after mutations.
type Dispatcher struct {
	workers []chan domain.Event
	cache   ports.CatalogCache
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used. cache may be nil when no read
// cache is configured.
func NewDispatcher(numWorkers int, cache ports.CatalogCache, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.Event, numWorkers),
		cache:   cache,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.Event, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends an event to the worker responsible for its resource id.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(event domain.Event) {
	d.workers[d.shardIndex(event.ResourceID)] <- event
}

// shardIndex maps a resource id deterministically to a worker index.
func (d *Dispatcher) shardIndex(resourceID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(resourceID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			d.process(ctx, id, event)
		}
	}
}

func (d *Dispatcher) process(ctx context.Context, workerID int, event domain.Event) {
	metrics.DomainEventsTotal.WithLabelValues(string(event.Kind)).Inc()

	if d.cache != nil {
		switch event.Kind {
		case domain.EventCourseCreated, domain.EventCourseUpdated, domain.EventCourseDeleted:
			// Course moves also change the embedded course lists of
			// collections, so both caches go.
			d.cache.InvalidateCourses(ctx)
			d.cache.InvalidateCollections(ctx)
		case domain.EventCollectionCreated, domain.EventCollectionUpdated, domain.EventCollectionDeleted:
			d.cache.InvalidateCollections(ctx)
		}
	}

	d.log.Debug().
		Str("kind", string(event.Kind)).
		Str("resource_id", event.ResourceID).
		Int("worker_id", workerID).
		Msg("domain event processed")
}

package queue

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/learnhub/course-catalog/internal/core/domain"
	"github.com/learnhub/course-catalog/internal/core/ports"
)

// signalCache records invalidations on channels so the test can wait for
// the asynchronous workers.
type signalCache struct {
	courses     chan struct{}
	collections chan struct{}
}

func newSignalCache() *signalCache {
	return &signalCache{
		courses:     make(chan struct{}, 8),
		collections: make(chan struct{}, 8),
	}
}

func (c *signalCache) GetCourses(context.Context, ports.ListCoursesFilter) ([]*domain.Course, bool) {
	return nil, false
}
func (c *signalCache) SetCourses(context.Context, ports.ListCoursesFilter, []*domain.Course, time.Duration) {
}
func (c *signalCache) InvalidateCourses(context.Context) { c.courses <- struct{}{} }
func (c *signalCache) GetCollections(context.Context) ([]*domain.Collection, bool) {
	return nil, false
}
func (c *signalCache) SetCollections(context.Context, []*domain.Collection, time.Duration) {}
func (c *signalCache) InvalidateCollections(context.Context) {
	c.collections <- struct{}{}
}

func waitSignal(t *testing.T, ch chan struct{}, what string) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for %s invalidation", what)
	}
}

func TestDispatcher_InvalidatesCaches(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cache := newSignalCache()
	d := NewDispatcher(2, cache, zerolog.Nop())
	d.Start(ctx)

	d.Enqueue(domain.Event{Kind: domain.EventCourseUpdated, ResourceID: "course-1"})
	waitSignal(t, cache.courses, "course")
	waitSignal(t, cache.collections, "collection")

	d.Enqueue(domain.Event{Kind: domain.EventCollectionDeleted, ResourceID: "collection-1"})
	waitSignal(t, cache.collections, "collection")

	// Non-mutation events touch no cache.
	d.Enqueue(domain.Event{Kind: domain.EventLoginFailed, ResourceID: ""})
	select {
	case <-cache.courses:
		t.Fatalf("login event invalidated course cache")
	case <-time.After(100 * time.Millisecond):
	}
}

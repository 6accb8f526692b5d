package ports

import (
	"context"
	"time"

	"github.com/learnhub/course-catalog/internal/core/domain"
)

// EventSink accepts domain events for asynchronous processing. Enqueue must
// not block the request path beyond buffer capacity.
type EventSink interface {
	Enqueue(event domain.Event)
}

// CatalogCache is a read-through cache for list queries. All operations are
// best-effort: a miss or a backend failure degrades to the database.
type CatalogCache interface {
	GetCourses(ctx context.Context, filter ListCoursesFilter) ([]*domain.Course, bool)
	SetCourses(ctx context.Context, filter ListCoursesFilter, courses []*domain.Course, ttl time.Duration)
	InvalidateCourses(ctx context.Context)
	GetCollections(ctx context.Context) ([]*domain.Collection, bool)
	SetCollections(ctx context.Context, collections []*domain.Collection, ttl time.Duration)
	InvalidateCollections(ctx context.Context)
}

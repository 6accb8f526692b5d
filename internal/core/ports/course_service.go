package ports

import (
	"context"

	"github.com/learnhub/course-catalog/internal/core/domain"
)

// CourseInput carries the mutable fields of a course. The ownership
// reference is never part of the input; it is derived from the caller.
type CourseInput struct {
	Title        string
	Description  string
	Duration     string
	Outcome      string
	CollectionID string
}

// CourseService exposes course reads and the guarded mutations. Mutations
// take the authenticated identity of the caller; authorization against the
// stored owner happens inside the service, after the load and before the
// write.
type CourseService interface {
	List(ctx context.Context, filter ListCoursesFilter) ([]*domain.Course, error)
	Get(ctx context.Context, id string) (*domain.Course, error)
	Create(ctx context.Context, actor domain.Identity, input CourseInput) (*domain.Course, error)
	Update(ctx context.Context, actor domain.Identity, id string, input CourseInput) (*domain.Course, error)
	Delete(ctx context.Context, actor domain.Identity, id string) error
}

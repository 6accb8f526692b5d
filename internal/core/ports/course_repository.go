package ports

import (
	"context"

	"github.com/learnhub/course-catalog/internal/core/domain"
)

// ListCoursesFilter carries the query parameters for listing courses.
type ListCoursesFilter struct {
	Limit     int // 0 = no limit (capped at 100 by the service)
	SortOrder domain.SortOrder
}

// CourseRepository defines persistence operations for courses.
type CourseRepository interface {
	Create(ctx context.Context, course *domain.Course) error
	// FindByID returns domain.ErrCourseNotFound when no course matches.
	FindByID(ctx context.Context, id string) (*domain.Course, error)
	List(ctx context.Context, filter ListCoursesFilter) ([]*domain.Course, error)
	// Update persists every mutable field; the ownership reference is not
	// part of the update statement.
	Update(ctx context.Context, course *domain.Course) error
	Delete(ctx context.Context, id string) error
}

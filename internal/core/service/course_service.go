package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/learnhub/course-catalog/internal/core/domain"
	"github.com/learnhub/course-catalog/internal/core/ports"
)

const (
	maxListLimit = 100
	listCacheTTL = 30 * time.Second
)

// CourseService implements course reads and the guarded mutations. Every
// mutation follows the same sequence: the caller is already authenticated
// by the transport middleware, the target is loaded, the ownership policy
// decides, and only then does the write reach the repository. Not-found is
// resolved before authorization, so probing a nonexistent id never yields
// an authorization signal.
type CourseService struct {
	repo   ports.CourseRepository
	cache  ports.CatalogCache
	events ports.EventSink
	logger zerolog.Logger
}

func NewCourseService(repo ports.CourseRepository, cache ports.CatalogCache, events ports.EventSink, logger zerolog.Logger) *CourseService {
	return &CourseService{repo: repo, cache: cache, events: events, logger: logger}
}

// List returns courses sorted by title, served from the read cache when
// warm. A cache failure degrades silently to the database.
func (s *CourseService) List(ctx context.Context, filter ports.ListCoursesFilter) ([]*domain.Course, error) {
	if filter.Limit < 0 || filter.Limit > maxListLimit {
		filter.Limit = maxListLimit
	}
	if filter.SortOrder == "" {
		filter.SortOrder = domain.SortAsc
	}

	if s.cache != nil {
		if courses, ok := s.cache.GetCourses(ctx, filter); ok {
			return courses, nil
		}
	}

	courses, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.SetCourses(ctx, filter, courses, listCacheTTL)
	}
	return courses, nil
}

func (s *CourseService) Get(ctx context.Context, id string) (*domain.Course, error) {
	return s.repo.FindByID(ctx, id)
}

// Create inserts a new course owned by the caller. The ownership reference
// is set from the authenticated identity unconditionally.
func (s *CourseService) Create(ctx context.Context, actor domain.Identity, input ports.CourseInput) (*domain.Course, error) {
	now := time.Now().UTC()
	course := &domain.Course{
		ID:           uuid.NewString(),
		Title:        input.Title,
		Description:  input.Description,
		Duration:     input.Duration,
		Outcome:      input.Outcome,
		CollectionID: input.CollectionID,
		CreatedByID:  actor.ID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, course); err != nil {
		return nil, err
	}

	s.emit(domain.EventCourseCreated, course.ID, actor.ID)
	s.logger.Info().Str("course_id", course.ID).Str("user_id", actor.ID).Msg("course created")

	return course, nil
}

// Update replaces the mutable fields of a course after the ownership check.
// The ownership reference survives every update untouched.
func (s *CourseService) Update(ctx context.Context, actor domain.Identity, id string, input ports.CourseInput) (*domain.Course, error) {
	course, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !actor.CanAct(course.CreatedByID) {
		return nil, domain.ErrUnauthorized
	}

	course.Title = input.Title
	course.Description = input.Description
	course.Duration = input.Duration
	course.Outcome = input.Outcome
	course.CollectionID = input.CollectionID
	course.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, course); err != nil {
		return nil, err
	}

	s.emit(domain.EventCourseUpdated, course.ID, actor.ID)
	s.logger.Info().Str("course_id", course.ID).Str("user_id", actor.ID).Msg("course updated")

	return course, nil
}

// Delete removes a course after the ownership check.
func (s *CourseService) Delete(ctx context.Context, actor domain.Identity, id string) error {
	course, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if !actor.CanAct(course.CreatedByID) {
		return domain.ErrUnauthorized
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.emit(domain.EventCourseDeleted, id, actor.ID)
	s.logger.Info().Str("course_id", id).Str("user_id", actor.ID).Msg("course deleted")

	return nil
}

func (s *CourseService) emit(kind domain.EventKind, resourceID, actorID string) {
	if s.events == nil {
		return
	}
	s.events.Enqueue(domain.Event{
		Kind:       kind,
		ResourceID: resourceID,
		ActorID:    actorID,
		Timestamp:  time.Now().UTC(),
	})
}

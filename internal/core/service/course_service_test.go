package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/learnhub/course-catalog/internal/core/domain"
	"github.com/learnhub/course-catalog/internal/core/ports"
)

type stubCourseRepo struct {
	courses map[string]*domain.Course
}

func newStubCourseRepo() *stubCourseRepo {
	return &stubCourseRepo{courses: make(map[string]*domain.Course)}
}

func cloneCourse(c *domain.Course) *domain.Course {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}

func (r *stubCourseRepo) Create(_ context.Context, course *domain.Course) error {
	r.courses[course.ID] = cloneCourse(course)
	return nil
}

func (r *stubCourseRepo) FindByID(_ context.Context, id string) (*domain.Course, error) {
	if c, ok := r.courses[id]; ok {
		return cloneCourse(c), nil
	}
	return nil, domain.ErrCourseNotFound
}

func (r *stubCourseRepo) List(_ context.Context, _ ports.ListCoursesFilter) ([]*domain.Course, error) {
	out := make([]*domain.Course, 0, len(r.courses))
	for _, c := range r.courses {
		out = append(out, cloneCourse(c))
	}
	return out, nil
}

func (r *stubCourseRepo) Update(_ context.Context, course *domain.Course) error {
	if _, ok := r.courses[course.ID]; !ok {
		return domain.ErrCourseNotFound
	}
	r.courses[course.ID] = cloneCourse(course)
	return nil
}

func (r *stubCourseRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.courses[id]; !ok {
		return domain.ErrCourseNotFound
	}
	delete(r.courses, id)
	return nil
}

var (
	owner    = domain.Identity{ID: "owner-1", Role: domain.RoleUser}
	stranger = domain.Identity{ID: "stranger-1", Role: domain.RoleUser}
	admin    = domain.Identity{ID: "admin-1", Role: domain.RoleAdmin}
)

func seedCourse(t *testing.T, svc *CourseService) *domain.Course {
	t.Helper()
	course, err := svc.Create(context.Background(), owner, ports.CourseInput{
		Title:       "Intro to Go",
		Description: "Basics",
		Duration:    "4h",
		Outcome:     "Write Go",
	})
	if err != nil {
		t.Fatalf("seed course: %v", err)
	}
	return course
}

func newCourseService(repo *stubCourseRepo) *CourseService {
	return NewCourseService(repo, nil, nil, zerolog.Nop())
}

func TestCourseService_Create_OwnerIsCaller(t *testing.T) {
	repo := newStubCourseRepo()
	svc := newCourseService(repo)

	course := seedCourse(t, svc)
	if course.CreatedByID != owner.ID {
		t.Fatalf("expected owner %q, got %q", owner.ID, course.CreatedByID)
	}
	stored := repo.courses[course.ID]
	if stored == nil || stored.CreatedByID != owner.ID {
		t.Fatalf("stored course has wrong owner: %+v", stored)
	}
}

func TestCourseService_Update_NonOwnerDenied(t *testing.T) {
	repo := newStubCourseRepo()
	svc := newCourseService(repo)
	course := seedCourse(t, svc)

	_, err := svc.Update(context.Background(), stranger, course.ID, ports.CourseInput{Title: "Hijacked"})
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}

	// The stored course must be untouched after the denial.
	stored := repo.courses[course.ID]
	if stored.Title != "Intro to Go" {
		t.Fatalf("course mutated despite denial: %+v", stored)
	}
}

func TestCourseService_Update_Owner(t *testing.T) {
	repo := newStubCourseRepo()
	svc := newCourseService(repo)
	course := seedCourse(t, svc)

	updated, err := svc.Update(context.Background(), owner, course.ID, ports.CourseInput{
		Title:       "Intro to Go, 2nd ed",
		Description: "Basics",
		Duration:    "5h",
		Outcome:     "Write Go",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Title != "Intro to Go, 2nd ed" {
		t.Fatalf("title not updated: %q", updated.Title)
	}
	if updated.CreatedByID != owner.ID {
		t.Fatalf("ownership reference changed on update: %q", updated.CreatedByID)
	}
}

func TestCourseService_Update_AdminOverride(t *testing.T) {
	repo := newStubCourseRepo()
	svc := newCourseService(repo)
	course := seedCourse(t, svc)

	updated, err := svc.Update(context.Background(), admin, course.ID, ports.CourseInput{
		Title: "Moderated title",
	})
	if err != nil {
		t.Fatalf("admin update: %v", err)
	}
	// Admin edits do not transfer ownership.
	if updated.CreatedByID != owner.ID {
		t.Fatalf("ownership reference changed: %q", updated.CreatedByID)
	}
}

func TestCourseService_Delete_AdminOverride(t *testing.T) {
	repo := newStubCourseRepo()
	svc := newCourseService(repo)
	course := seedCourse(t, svc)

	if err := svc.Delete(context.Background(), admin, course.ID); err != nil {
		t.Fatalf("admin delete: %v", err)
	}
	if _, err := svc.Get(context.Background(), course.ID); !errors.Is(err, domain.ErrCourseNotFound) {
		t.Fatalf("course still retrievable after delete: %v", err)
	}
}

func TestCourseService_Delete_NonOwnerDenied(t *testing.T) {
	repo := newStubCourseRepo()
	svc := newCourseService(repo)
	course := seedCourse(t, svc)

	if err := svc.Delete(context.Background(), stranger, course.ID); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if _, ok := repo.courses[course.ID]; !ok {
		t.Fatalf("course deleted despite denial")
	}
}

func TestCourseService_MissingID_AnyRole(t *testing.T) {
	repo := newStubCourseRepo()
	svc := newCourseService(repo)

	// Not-found resolves before authorization, for every role.
	for _, actor := range []domain.Identity{owner, stranger, admin} {
		if _, err := svc.Update(context.Background(), actor, "missing", ports.CourseInput{}); !errors.Is(err, domain.ErrCourseNotFound) {
			t.Fatalf("update as %s: expected ErrCourseNotFound, got %v", actor.Role, err)
		}
		if err := svc.Delete(context.Background(), actor, "missing"); !errors.Is(err, domain.ErrCourseNotFound) {
			t.Fatalf("delete as %s: expected ErrCourseNotFound, got %v", actor.Role, err)
		}
	}
}

package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/learnhub/course-catalog/internal/core/domain"
	"github.com/learnhub/course-catalog/internal/core/ports"
)

type CourseRepository struct {
	db *sql.DB
}

func NewCourseRepository(db *sql.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

func (r *CourseRepository) Create(ctx context.Context, course *domain.Course) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO courses (id, title, description, duration, outcome, collection_id, created_by, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		course.ID, course.Title, course.Description, course.Duration, course.Outcome,
		nullable(course.CollectionID), course.CreatedByID, course.CreatedAt, course.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert course: %w", err)
	}
	return nil
}

func (r *CourseRepository) FindByID(ctx context.Context, id string) (*domain.Course, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, title, description, duration, outcome, collection_id, created_by, created_at, updated_at
		 FROM courses WHERE id = ? LIMIT 1`, id)

	course, err := scanCourse(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCourseNotFound
		}
		return nil, fmt.Errorf("find course: %w", err)
	}
	return course, nil
}

func (r *CourseRepository) List(ctx context.Context, filter ports.ListCoursesFilter) ([]*domain.Course, error) {
	// Sort direction is whitelisted through the SortOrder type, never
	// interpolated from raw input.
	order := "ASC"
	if filter.SortOrder == domain.SortDesc {
		order = "DESC"
	}
	query := fmt.Sprintf(
		`SELECT id, title, description, duration, outcome, collection_id, created_by, created_at, updated_at
		 FROM courses ORDER BY title %s`, order)

	args := []any{}
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	defer rows.Close()

	courses := []*domain.Course{}
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("scan course: %w", err)
		}
		courses = append(courses, course)
	}
	return courses, rows.Err()
}

// Update writes every mutable field. The created_by column is deliberately
// absent from the statement: ownership never changes after creation.
func (r *CourseRepository) Update(ctx context.Context, course *domain.Course) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE courses
		 SET title = ?, description = ?, duration = ?, outcome = ?, collection_id = ?, updated_at = ?
		 WHERE id = ?`,
		course.Title, course.Description, course.Duration, course.Outcome,
		nullable(course.CollectionID), course.UpdatedAt, course.ID)
	if err != nil {
		return fmt.Errorf("update course: %w", err)
	}
	return nil
}

func (r *CourseRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM courses WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete course: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrCourseNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCourse(row rowScanner) (*domain.Course, error) {
	var (
		c            domain.Course
		collectionID sql.NullString
	)
	if err := row.Scan(&c.ID, &c.Title, &c.Description, &c.Duration, &c.Outcome,
		&collectionID, &c.CreatedByID, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	c.CollectionID = collectionID.String
	return &c, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

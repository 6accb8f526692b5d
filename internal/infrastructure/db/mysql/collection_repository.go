package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/learnhub/course-catalog/internal/core/domain"
)

type CollectionRepository struct {
	db *sql.DB
}

func NewCollectionRepository(db *sql.DB) *CollectionRepository {
	return &CollectionRepository{db: db}
}

func (r *CollectionRepository) Create(ctx context.Context, collection *domain.Collection) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO collections (id, name, created_by, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)`,
		collection.ID, collection.Name, collection.CreatedByID, collection.CreatedAt, collection.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert collection: %w", err)
	}
	return nil
}

func (r *CollectionRepository) FindByID(ctx context.Context, id string) (*domain.Collection, error) {
	var c domain.Collection
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, created_by, created_at, updated_at
		 FROM collections WHERE id = ? LIMIT 1`, id).
		Scan(&c.ID, &c.Name, &c.CreatedByID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCollectionNotFound
		}
		return nil, fmt.Errorf("find collection: %w", err)
	}

	courses, err := r.coursesFor(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Courses = courses
	return &c, nil
}

func (r *CollectionRepository) List(ctx context.Context) ([]*domain.Collection, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, created_by, created_at, updated_at FROM collections ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	defer rows.Close()

	collections := []*domain.Collection{}
	byID := map[string]*domain.Collection{}
	for rows.Next() {
		var c domain.Collection
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedByID, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan collection: %w", err)
		}
		c.Courses = []*domain.Course{}
		collections = append(collections, &c)
		byID[c.ID] = &c
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// One extra query buckets all assigned courses, avoiding a query per
	// collection.
	courseRows, err := r.db.QueryContext(ctx,
		`SELECT id, title, description, duration, outcome, collection_id, created_by, created_at, updated_at
		 FROM courses WHERE collection_id IS NOT NULL ORDER BY title ASC`)
	if err != nil {
		return nil, fmt.Errorf("list collection courses: %w", err)
	}
	defer courseRows.Close()

	for courseRows.Next() {
		course, err := scanCourse(courseRows)
		if err != nil {
			return nil, fmt.Errorf("scan course: %w", err)
		}
		if c, ok := byID[course.CollectionID]; ok {
			c.Courses = append(c.Courses, course)
		}
	}
	return collections, courseRows.Err()
}

func (r *CollectionRepository) Update(ctx context.Context, collection *domain.Collection) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE collections SET name = ?, updated_at = ? WHERE id = ?`,
		collection.Name, collection.UpdatedAt, collection.ID)
	if err != nil {
		return fmt.Errorf("update collection: %w", err)
	}
	return nil
}

func (r *CollectionRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM collections WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete collection: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrCollectionNotFound
	}
	return nil
}

func (r *CollectionRepository) coursesFor(ctx context.Context, collectionID string) ([]*domain.Course, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, description, duration, outcome, collection_id, created_by, created_at, updated_at
		 FROM courses WHERE collection_id = ? ORDER BY title ASC`, collectionID)
	if err != nil {
		return nil, fmt.Errorf("collection courses: %w", err)
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

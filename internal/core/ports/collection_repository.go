package ports

import (
	"context"

	"github.com/learnhub/course-catalog/internal/core/domain"
)

// CollectionRepository defines persistence operations for collections.
// Reads embed the collection's courses.
type CollectionRepository interface {
	Create(ctx context.Context, collection *domain.Collection) error
	// FindByID returns domain.ErrCollectionNotFound when no collection matches.
	FindByID(ctx context.Context, id string) (*domain.Collection, error)
	List(ctx context.Context) ([]*domain.Collection, error)
	Update(ctx context.Context, collection *domain.Collection) error
	Delete(ctx context.Context, id string) error
}

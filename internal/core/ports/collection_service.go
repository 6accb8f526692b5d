package ports

import (
	"context"

	"github.com/learnhub/course-catalog/internal/core/domain"
)

// CollectionInput carries the mutable fields of a collection.
type CollectionInput struct {
	Name string
}

// CollectionService exposes collection reads and the guarded mutations.
type CollectionService interface {
	List(ctx context.Context) ([]*domain.Collection, error)
	Get(ctx context.Context, id string) (*domain.Collection, error)
	Create(ctx context.Context, actor domain.Identity, input CollectionInput) (*domain.Collection, error)
	Update(ctx context.Context, actor domain.Identity, id string, input CollectionInput) (*domain.Collection, error)
	Delete(ctx context.Context, actor domain.Identity, id string) error
}

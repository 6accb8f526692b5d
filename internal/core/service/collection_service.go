package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/learnhub/course-catalog/internal/core/domain"
	"github.com/learnhub/course-catalog/internal/core/ports"
)

// CollectionService implements collection reads and the guarded mutations,
// following the same mutation sequence as CourseService.
type CollectionService struct {
	repo   ports.CollectionRepository
	cache  ports.CatalogCache
	events ports.EventSink
	logger zerolog.Logger
}

func NewCollectionService(repo ports.CollectionRepository, cache ports.CatalogCache, events ports.EventSink, logger zerolog.Logger) *CollectionService {
	return &CollectionService{repo: repo, cache: cache, events: events, logger: logger}
}

func (s *CollectionService) List(ctx context.Context) ([]*domain.Collection, error) {
	if s.cache != nil {
		if collections, ok := s.cache.GetCollections(ctx); ok {
			return collections, nil
		}
	}

	collections, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.SetCollections(ctx, collections, listCacheTTL)
	}
	return collections, nil
}

func (s *CollectionService) Get(ctx context.Context, id string) (*domain.Collection, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CollectionService) Create(ctx context.Context, actor domain.Identity, input ports.CollectionInput) (*domain.Collection, error) {
	now := time.Now().UTC()
	collection := &domain.Collection{
		ID:          uuid.NewString(),
		Name:        input.Name,
		CreatedByID: actor.ID,
		Courses:     []*domain.Course{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, collection); err != nil {
		return nil, err
	}

	s.emit(domain.EventCollectionCreated, collection.ID, actor.ID)
	s.logger.Info().Str("collection_id", collection.ID).Str("user_id", actor.ID).Msg("collection created")

	return collection, nil
}

func (s *CollectionService) Update(ctx context.Context, actor domain.Identity, id string, input ports.CollectionInput) (*domain.Collection, error) {
	collection, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !actor.CanAct(collection.CreatedByID) {
		return nil, domain.ErrUnauthorized
	}

	collection.Name = input.Name
	collection.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, collection); err != nil {
		return nil, err
	}

	s.emit(domain.EventCollectionUpdated, collection.ID, actor.ID)
	return collection, nil
}

func (s *CollectionService) Delete(ctx context.Context, actor domain.Identity, id string) error {
	collection, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if !actor.CanAct(collection.CreatedByID) {
		return domain.ErrUnauthorized
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.emit(domain.EventCollectionDeleted, id, actor.ID)
	return nil
}

func (s *CollectionService) emit(kind domain.EventKind, resourceID, actorID string) {
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

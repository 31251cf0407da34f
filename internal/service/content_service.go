package service

import (
	"context"
	"time"

	"athos-learning-service/internal/cache"
	"athos-learning-service/internal/models"
	"athos-learning-service/internal/repository"
)

type ContentService struct {
	Repo  *repository.ContentRepository
	Cache *cache.Cache
}

func NewContentService(repo *repository.ContentRepository, c *cache.Cache) *ContentService {
	return &ContentService{Repo: repo, Cache: c}
}

// ListByModule serves the module's content list through the reference
// cache. Reference data changes rarely, so a short TTL is plenty.
func (s *ContentService) ListByModule(ctx context.Context, moduleID int) ([]models.ContentItem, error) {
	key := cache.ModuleContentKey(moduleID)
	var cached []models.ContentItem
	if s.Cache.GetJSON(ctx, key, &cached) {
		return cached, nil
	}
	items, err := s.Repo.FindByModule(ctx, moduleID)
	if err != nil {
		return nil, err
	}
	s.Cache.SetJSON(ctx, key, items)
	return items, nil
}

func (s *ContentService) Get(ctx context.Context, id string) (*models.ContentItem, error) {
	return s.Repo.FindByID(ctx, id)
}

func (s *ContentService) Create(ctx context.Context, item *models.ContentItem) error {
	now := time.Now()
	item.CreatedAt = now
	item.UpdatedAt = now
	if err := s.Repo.Create(ctx, item); err != nil {
		return err
	}
	s.Cache.Invalidate(ctx, cache.ModuleContentKey(item.ModuleID))
	return nil
}

func (s *ContentService) Update(ctx context.Context, id string, update map[string]interface{}) error {
	item, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	update["updated_at"] = time.Now()
	if err := s.Repo.Update(ctx, id, update); err != nil {
		return err
	}
	s.Cache.Invalidate(ctx, cache.ModuleContentKey(item.ModuleID))
	return nil
}

func (s *ContentService) Delete(ctx context.Context, id string) error {
	item, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	s.Cache.Invalidate(ctx, cache.ModuleContentKey(item.ModuleID))
	return nil
}

package storage

import (
	"context"

	"github.com/jmatson/shepherd/internal/models"
)

// GetGospelResources returns all resources, featured first then newest
func (s *Store) GetGospelResources(ctx context.Context) ([]models.GospelResource, error) {
	var resources []models.GospelResource
	err := s.db.WithContext(ctx).
		Order("featured DESC").
		Order("created_at DESC").
		Find(&resources).Error
	return resources, err
}

// GetFeaturedResources returns only featured resources, newest first
func (s *Store) GetFeaturedResources(ctx context.Context) ([]models.GospelResource, error) {
	var resources []models.GospelResource
	err := s.db.WithContext(ctx).
		Where("featured = ?", true).
		Order("created_at DESC").
		Find(&resources).Error
	return resources, err
}

// CreateGospelResource inserts the resource and fills in the generated id
func (s *Store) CreateGospelResource(ctx context.Context, resource *models.GospelResource) error {
	return s.db.WithContext(ctx).Create(resource).Error
}

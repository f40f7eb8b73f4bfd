package storage

import (
	"context"
	"errors"

	"github.com/jmatson/shepherd/internal/models"
	"gorm.io/gorm"
)

// GetContentByKey returns the active content row for a key, or nil
func (s *Store) GetContentByKey(ctx context.Context, key string) (*models.AppContent, error) {
	var content models.AppContent
	err := s.db.WithContext(ctx).
		Where("key = ? AND is_active = ?", key, true).
		First(&content).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &content, nil
}

// GetContentByCategory returns active content for a category in sort order
func (s *Store) GetContentByCategory(ctx context.Context, category string) ([]models.AppContent, error) {
	var content []models.AppContent
	err := s.db.WithContext(ctx).
		Where("category = ? AND is_active = ?", category, true).
		Order("sort_order").
		Order("title").
		Find(&content).Error
	return content, err
}

// GetAllContent returns all active content grouped by category
func (s *Store) GetAllContent(ctx context.Context) ([]models.AppContent, error) {
	var content []models.AppContent
	err := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("category").
		Order("sort_order").
		Order("title").
		Find(&content).Error
	return content, err
}

// CreateContent inserts the content row and fills in the generated id
func (s *Store) CreateContent(ctx context.Context, content *models.AppContent) error {
	return s.db.WithContext(ctx).Create(content).Error
}

// UpdateContent merges fields into a content row and returns the updated
// row, or nil when the id does not exist.
func (s *Store) UpdateContent(ctx context.Context, id uint, updates map[string]interface{}) (*models.AppContent, error) {
	res := s.db.WithContext(ctx).
		Model(&models.AppContent{}).
		Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	var content models.AppContent
	if err := s.db.WithContext(ctx).First(&content, id).Error; err != nil {
		return nil, err
	}
	return &content, nil
}

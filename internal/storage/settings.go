package storage

import (
	"context"
	"errors"

	"github.com/jmatson/shepherd/internal/models"
	"gorm.io/gorm"
)

// GetSettingByKey returns the setting for a key, or nil
func (s *Store) GetSettingByKey(ctx context.Context, key string) (*models.AppSetting, error) {
	var setting models.AppSetting
	err := s.db.WithContext(ctx).
		Where("key = ?", key).
		First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

// GetPublicSettings returns the settings safe to expose to the client
func (s *Store) GetPublicSettings(ctx context.Context) ([]models.AppSetting, error) {
	var settings []models.AppSetting
	err := s.db.WithContext(ctx).
		Where("is_public = ?", true).
		Order("category").
		Order("key").
		Find(&settings).Error
	return settings, err
}

// CreateSetting inserts the setting and fills in the generated id
func (s *Store) CreateSetting(ctx context.Context, setting *models.AppSetting) error {
	return s.db.WithContext(ctx).Create(setting).Error
}

// UpdateSetting merges fields into a setting and returns the updated row,
// or nil when the id does not exist.
func (s *Store) UpdateSetting(ctx context.Context, id uint, updates map[string]interface{}) (*models.AppSetting, error) {
	res := s.db.WithContext(ctx).
		Model(&models.AppSetting{}).
		Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	var setting models.AppSetting
	if err := s.db.WithContext(ctx).First(&setting, id).Error; err != nil {
		return nil, err
	}
	return &setting, nil
}

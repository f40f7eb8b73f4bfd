package storage

import (
	"context"
	"errors"

	"github.com/jmatson/shepherd/internal/models"
	"gorm.io/gorm"
)

// GetEntriesForPerson returns all of a person's entries, newest visit first
func (s *Store) GetEntriesForPerson(ctx context.Context, personID uint, userID string) ([]models.MinisteringEntry, error) {
	var entries []models.MinisteringEntry
	err := s.db.WithContext(ctx).
		Where("person_id = ? AND user_id = ?", personID, userID).
		Order("date DESC").
		Find(&entries).Error
	return entries, err
}

// GetEntry returns a single owned entry, or nil
func (s *Store) GetEntry(ctx context.Context, id uint, userID string) (*models.MinisteringEntry, error) {
	var entry models.MinisteringEntry
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// CreateEntry inserts the entry and fills in generated id and timestamps.
// The caller must have verified that the target person belongs to the
// entry's user before calling.
func (s *Store) CreateEntry(ctx context.Context, entry *models.MinisteringEntry) error {
	return s.db.WithContext(ctx).Create(entry).Error
}

// UpdateEntry merges fields into an owned entry and returns the updated
// row, or nil when no owned row matched.
func (s *Store) UpdateEntry(ctx context.Context, id uint, userID string, updates map[string]interface{}) (*models.MinisteringEntry, error) {
	res := s.db.WithContext(ctx).
		Model(&models.MinisteringEntry{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return s.GetEntry(ctx, id, userID)
}

// DeleteEntry removes an owned entry and reports whether a row was deleted
func (s *Store) DeleteEntry(ctx context.Context, id uint, userID string) (bool, error) {
	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.MinisteringEntry{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

package storage

import (
	"context"
	"errors"
	"time"

	"github.com/jmatson/shepherd/internal/models"
	"gorm.io/gorm"
)

// GetMinisteredPersons returns all people for a user, most recently
// updated first.
func (s *Store) GetMinisteredPersons(ctx context.Context, userID string) ([]models.MinisteredPerson, error) {
	var people []models.MinisteredPerson
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&people).Error
	return people, err
}

// GetMinisteredPerson returns a single person, or nil when the row is
// absent or belongs to another user.
func (s *Store) GetMinisteredPerson(ctx context.Context, id uint, userID string) (*models.MinisteredPerson, error) {
	var person models.MinisteredPerson
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&person).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &person, nil
}

// CreateMinisteredPerson inserts the person and fills in generated id and
// timestamps. An empty status defaults to active.
func (s *Store) CreateMinisteredPerson(ctx context.Context, person *models.MinisteredPerson) error {
	if person.Status == "" {
		person.Status = models.PersonStatusActive
	}
	return s.db.WithContext(ctx).Create(person).Error
}

// UpdateMinisteredPerson merges the given fields into an owned person and
// returns the updated row, or nil when no owned row matched. Scoping by
// userID here keeps update and delete symmetric at the storage boundary.
func (s *Store) UpdateMinisteredPerson(ctx context.Context, id uint, userID string, updates map[string]interface{}) (*models.MinisteredPerson, error) {
	res := s.db.WithContext(ctx).
		Model(&models.MinisteredPerson{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return s.GetMinisteredPerson(ctx, id, userID)
}

// TouchMinisteredPerson stamps the person's updated_at so recent activity
// floats to the top of the people list.
func (s *Store) TouchMinisteredPerson(ctx context.Context, id uint, userID string) error {
	return s.db.WithContext(ctx).
		Model(&models.MinisteredPerson{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("updated_at", time.Now()).Error
}

// DeleteMinisteredPerson removes an owned person and reports whether a row
// was deleted. Entries cascade at the database level.
func (s *Store) DeleteMinisteredPerson(ctx context.Context, id uint, userID string) (bool, error) {
	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.MinisteredPerson{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

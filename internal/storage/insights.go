package storage

import (
	"context"
	"errors"

	"github.com/jmatson/shepherd/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GetPersonInsight returns the stored insights snapshot for a person, or nil
func (s *Store) GetPersonInsight(ctx context.Context, personID uint) (*models.PersonInsight, error) {
	var insight models.PersonInsight
	err := s.db.WithContext(ctx).
		Where("person_id = ?", personID).
		First(&insight).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &insight, nil
}

// SavePersonInsight stores the snapshot, replacing any previous one for
// the person.
func (s *Store) SavePersonInsight(ctx context.Context, insight *models.PersonInsight) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "person_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"content", "entry_count", "generated_at",
		}),
	}).Create(insight).Error
}

// DeletePersonInsight drops the snapshot so the next insights request
// regenerates it.
func (s *Store) DeletePersonInsight(ctx context.Context, personID uint) error {
	return s.db.WithContext(ctx).
		Where("person_id = ?", personID).
		Delete(&models.PersonInsight{}).Error
}

package models

import (
	"time"

	"gorm.io/datatypes"
)

// Person status constants
const (
	PersonStatusActive   = "active"
	PersonStatusInactive = "inactive"
	PersonStatusFollowUp = "follow-up"
)

// MinisteredPerson is a person or family one user ministers to. Rows are
// owned by exactly one user and every read path is scoped by UserID.
type MinisteredPerson struct {
	ID        uint                        `gorm:"primaryKey" json:"id"`
	UserID    string                      `gorm:"not null;index" json:"userId"`
	User      User                        `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	Name      string                      `gorm:"not null" json:"name"`
	Family    string                      `json:"family"`
	Tags      datatypes.JSONSlice[string] `json:"tags"`
	Status    string                      `gorm:"not null;default:'active'" json:"status"` // active, inactive, follow-up
	CreatedAt time.Time                   `json:"createdAt"`
	UpdatedAt time.Time                   `json:"updatedAt"`

	// Associations
	Entries []MinisteringEntry `gorm:"foreignKey:PersonID;constraint:OnDelete:CASCADE;" json:"-"`
}

// TableName keeps the historical table name instead of GORM's
// "ministered_people" pluralization.
func (MinisteredPerson) TableName() string { return "ministered_persons" }

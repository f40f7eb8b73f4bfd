package models

import (
	"time"

	"gorm.io/datatypes"
)

// MinisteringEntry is one recorded visit: the transcript as edited by the
// user plus the AI output captured at save time. The AI fields are opaque
// snapshots, never recomputed after the entry is written.
type MinisteringEntry struct {
	ID         uint                        `gorm:"primaryKey" json:"id"`
	UserID     string                      `gorm:"not null;index" json:"userId"`
	User       User                        `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	PersonID   uint                        `gorm:"not null;index" json:"personId"`
	Person     MinisteredPerson            `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	Date       time.Time                   `gorm:"not null" json:"date"`
	Transcript string                      `gorm:"type:text;not null" json:"transcript"`
	Summary    string                      `gorm:"type:text" json:"summary"`
	Followups  datatypes.JSONSlice[string] `json:"followups"`
	Scriptures datatypes.JSONSlice[string] `json:"scriptures"`
	Talks      datatypes.JSONSlice[string] `json:"talks"`
	Notes      string                      `gorm:"type:text" json:"notes"`
	AudioURL   string                      `json:"audioUrl"`
	CreatedAt  time.Time                   `json:"createdAt"`
	UpdatedAt  time.Time                   `json:"updatedAt"`
}

package models

import (
	"time"

	"gorm.io/datatypes"
)

// PersonInsight stores the last generated insights for a person as an
// opaque JSON snapshot. The model call behind it is expensive and
// non-deterministic, so the snapshot is reused while EntryCount still
// matches the person's entry count and regenerated only when it drifts.
type PersonInsight struct {
	ID          uint             `gorm:"primaryKey" json:"id"`
	PersonID    uint             `gorm:"not null;uniqueIndex" json:"personId"`
	Person      MinisteredPerson `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	Content     datatypes.JSON   `gorm:"type:jsonb" json:"content"`
	EntryCount  int              `gorm:"not null" json:"entryCount"`
	GeneratedAt time.Time        `gorm:"not null" json:"generatedAt"`
}

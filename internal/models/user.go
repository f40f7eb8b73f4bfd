package models

import (
	"time"
)

// User represents an authenticated account. The primary key is the stable
// subject identifier issued by the OAuth provider, not a generated serial,
// so records survive re-login and provider-side profile updates.
type User struct {
	ID              string    `gorm:"primaryKey" json:"id"`
	Email           string    `gorm:"uniqueIndex:idx_users_email;not null" json:"email"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	ProfileImageURL string    `json:"profileImageUrl"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`

	// Associations
	Persons []MinisteredPerson `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;" json:"-"`
	Entries []MinisteringEntry `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;" json:"-"`
}

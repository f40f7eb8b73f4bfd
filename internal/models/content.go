package models

import "time"

// AppContent is a keyed, categorized copy blurb (landing page text and the
// like), editable without shipping a new client bundle.
type AppContent struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Key         string    `gorm:"size:100;uniqueIndex;not null" json:"key"`
	Title       string    `gorm:"size:200" json:"title"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	ContentType string    `gorm:"size:50;not null;default:'text'" json:"contentType"` // text, html, markdown
	IsActive    bool      `gorm:"not null" json:"isActive"`
	Category    string    `gorm:"size:50" json:"category"` // landing, dashboard, resources, ...
	SortOrder   int       `gorm:"default:0" json:"sortOrder"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (AppContent) TableName() string { return "app_content" }

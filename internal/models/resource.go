package models

import (
	"time"

	"gorm.io/datatypes"
)

// Resource type constants
const (
	ResourceTypeTalk        = "talk"
	ResourceTypeScripture   = "scripture"
	ResourceTypeArticle     = "article"
	ResourceTypeServiceIdea = "service_idea"
)

// GospelResource is a curated reference item. Resources are global: they
// have no owner and the read endpoints are public.
type GospelResource struct {
	ID          uint                        `gorm:"primaryKey" json:"id"`
	Title       string                      `gorm:"not null" json:"title"`
	Author      string                      `json:"author"`
	Type        string                      `gorm:"not null" json:"type"` // talk, scripture, article, service_idea
	URL         string                      `json:"url"`
	Description string                      `gorm:"type:text" json:"description"`
	Tags        datatypes.JSONSlice[string] `json:"tags"`
	Featured    bool                        `gorm:"not null;default:false" json:"featured"`
	CreatedAt   time.Time                   `json:"createdAt"`
}

// Package storage is the repository layer: one method per access pattern,
// each scoped by the owning user id where the entity has an owner, so no
// caller can reach another user's rows by id alone. "Not found" is a nil
// result, not an error; database failures propagate wrapped.
package storage

import (
	"gorm.io/gorm"
)

// Store provides ownership-scoped CRUD over the relational schema
type Store struct {
	db *gorm.DB
}

// New creates a Store backed by the given GORM connection
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// DB exposes the underlying connection for migrations and tests
func (s *Store) DB() *gorm.DB {
	return s.db
}

package storage

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/jmatson/shepherd/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.MinisteredPerson{},
		&models.MinisteringEntry{},
		&models.GospelResource{},
		&models.AppContent{},
		&models.AppSetting{},
		&models.PersonInsight{},
	))

	return New(db)
}

func createTestUser(t *testing.T, store *Store, id string) *models.User {
	t.Helper()

	user := &models.User{
		ID:        id,
		Email:     id + "@example.com",
		FirstName: "Test",
	}
	require.NoError(t, store.UpsertUser(context.Background(), user))
	return user
}

func createTestPerson(t *testing.T, store *Store, userID, name string) *models.MinisteredPerson {
	t.Helper()

	person := &models.MinisteredPerson{
		UserID: userID,
		Name:   name,
	}
	require.NoError(t, store.CreateMinisteredPerson(context.Background(), person))
	return person
}

func createTestEntry(t *testing.T, store *Store, userID string, personID uint, transcript string, date time.Time) *models.MinisteringEntry {
	t.Helper()

	entry := &models.MinisteringEntry{
		UserID:     userID,
		PersonID:   personID,
		Date:       date,
		Transcript: transcript,
	}
	require.NoError(t, store.CreateEntry(context.Background(), entry))
	return entry
}

package handlers

import (
	"context"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/jmatson/shepherd/internal/analysis"
	"github.com/jmatson/shepherd/internal/auth"
	"github.com/jmatson/shepherd/internal/models"
	"github.com/jmatson/shepherd/internal/storage"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestStore(t *testing.T) *storage.Store {
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

	return storage.New(db)
}

// authAs stands in for the session middleware in tests
func authAs(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(auth.ContextUserKey, userID)
		c.Next()
	}
}

func seedUser(t *testing.T, store *storage.Store, id string) {
	t.Helper()
	require.NoError(t, store.UpsertUser(context.Background(), &models.User{
		ID:    id,
		Email: id + "@example.com",
	}))
}

func seedPerson(t *testing.T, store *storage.Store, userID, name string) *models.MinisteredPerson {
	t.Helper()
	person := &models.MinisteredPerson{UserID: userID, Name: name}
	require.NoError(t, store.CreateMinisteredPerson(context.Background(), person))
	return person
}

func seedEntry(t *testing.T, store *storage.Store, userID string, personID uint, transcript, summary string, date time.Time) *models.MinisteringEntry {
	t.Helper()
	entry := &models.MinisteringEntry{
		UserID:     userID,
		PersonID:   personID,
		Date:       date,
		Transcript: transcript,
		Summary:    summary,
	}
	require.NoError(t, store.CreateEntry(context.Background(), entry))
	return entry
}

// ---- fakes ----

type stubTranscriber struct {
	transcript string
	err        error
	calls      int
	lastPath   string
}

func (s *stubTranscriber) Transcribe(ctx context.Context, path string) (string, error) {
	s.calls++
	s.lastPath = path
	return s.transcript, s.err
}

type stubAnalyzer struct {
	analyzeResult *analysis.EntryAnalysis
	insights      *analysis.Insights
	err           error
	analyzeCalls  int
	insightCalls  int
}

func (s *stubAnalyzer) Analyze(ctx context.Context, transcript string) (*analysis.EntryAnalysis, error) {
	s.analyzeCalls++
	return s.analyzeResult, s.err
}

func (s *stubAnalyzer) GenerateInsights(ctx context.Context, entries []analysis.TranscriptEntry) (*analysis.Insights, error) {
	s.insightCalls++
	return s.insights, s.err
}

func init() {
	gin.SetMode(gin.TestMode)
}

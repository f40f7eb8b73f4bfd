package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmatson/shepherd/internal/analysis"
	"github.com/jmatson/shepherd/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInsightsRouter(store *storage.Store, a analysis.Analyzer, userID string) *gin.Engine {
	r := gin.New()
	r.GET("/api/insights/:personId", authAs(userID), Insights(store, a))
	return r
}

func TestInsights_PersonNotFound(t *testing.T) {
	store := newTestStore(t)
	seedUser(t, store, "user-1")
	stub := &stubAnalyzer{}

	r := newInsightsRouter(store, stub, "user-1")
	req := httptest.NewRequest(http.MethodGet, "/api/insights/42", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Zero(t, stub.insightCalls)
}

func TestInsights_NoEntriesSkipsAnalyzer(t *testing.T) {
	store := newTestStore(t)
	seedUser(t, store, "user-1")
	person := seedPerson(t, store, "user-1", "Sister Jones")
	stub := &stubAnalyzer{}

	r := newInsightsRouter(store, stub, "user-1")
	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/insights/%d", person.ID), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"patterns":[],"suggestions":[]}`, w.Body.String())
	assert.Zero(t, stub.insightCalls)
}

func TestInsights_GeneratesThenServesSnapshot(t *testing.T) {
	store := newTestStore(t)
	seedUser(t, store, "user-1")
	person := seedPerson(t, store, "user-1", "Sister Jones")
	seedEntry(t, store, "user-1", person.ID, "first visit", "", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	seedEntry(t, store, "user-1", person.ID, "second visit", "", time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))

	stub := &stubAnalyzer{
		insights: &analysis.Insights{
			Patterns:    []string{"Growing interest in scripture study"},
			Suggestions: []string{"Invite to the upcoming class"},
		},
	}

	r := newInsightsRouter(store, stub, "user-1")

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/insights/%d", person.ID), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, stub.insightCalls)

	var first analysis.Insights
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &first))
	assert.Equal(t, []string{"Growing interest in scripture study"}, first.Patterns)

	// Same entry count: the stored snapshot answers, no second model call
	req = httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/insights/%d", person.ID), nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, stub.insightCalls)

	var second analysis.Insights
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &second))
	assert.Equal(t, first, second)
}

func TestInsights_RegeneratesWhenEntriesChange(t *testing.T) {
	store := newTestStore(t)
	seedUser(t, store, "user-1")
	person := seedPerson(t, store, "user-1", "Sister Jones")
	seedEntry(t, store, "user-1", person.ID, "first visit", "", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))

	stub := &stubAnalyzer{
		insights: &analysis.Insights{Patterns: []string{"p"}, Suggestions: []string{"s"}},
	}
	r := newInsightsRouter(store, stub, "user-1")

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/insights/%d", person.ID), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 1, stub.insightCalls)

	seedEntry(t, store, "user-1", person.ID, "second visit", "", time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))

	req = httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/insights/%d", person.ID), nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, stub.insightCalls)
}

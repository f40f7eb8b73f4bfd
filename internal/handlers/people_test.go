package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmatson/shepherd/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPeopleRouter(store *storage.Store, userID string) *gin.Engine {
	r := gin.New()
	api := r.Group("/api", authAs(userID))
	api.GET("/people", ListPeople(store))
	api.GET("/people/:id", GetPerson(store))
	api.POST("/people", CreatePerson(store))
	api.PUT("/people/:id", UpdatePerson(store))
	api.DELETE("/people/:id", DeletePerson(store))
	return r
}

func TestCreatePerson(t *testing.T) {
	store := newTestStore(t)
	seedUser(t, store, "user-1")
	r := newPeopleRouter(store, "user-1")

	body := `{"name":"Sister Jones","family":"Jones Family","tags":["widow"]}`
	req := httptest.NewRequest(http.MethodPost, "/api/people", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Sister Jones", resp["name"])
	assert.Equal(t, "active", resp["status"])
	assert.Equal(t, []interface{}{"widow"}, resp["tags"])
	assert.NotZero(t, resp["id"])
}

func TestCreatePerson_RequiresName(t *testing.T) {
	store := newTestStore(t)
	seedUser(t, store, "user-1")
	r := newPeopleRouter(store, "user-1")

	req := httptest.NewRequest(http.MethodPost, "/api/people", strings.NewReader(`{"family":"Jones"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreatePerson_RejectsUnknownStatus(t *testing.T) {
	store := newTestStore(t)
	seedUser(t, store, "user-1")
	r := newPeopleRouter(store, "user-1")

	req := httptest.NewRequest(http.MethodPost, "/api/people", strings.NewReader(`{"name":"X","status":"archived"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListPeople_SummariesAndScoping(t *testing.T) {
	store := newTestStore(t)
	seedUser(t, store, "user-1")
	seedUser(t, store, "user-2")

	withSummary := seedPerson(t, store, "user-1", "Sister Jones")
	seedEntry(t, store, "user-1", withSummary.ID, "long transcript", "Visited and shared a message.", time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC))
	seedEntry(t, store, "user-1", withSummary.ID, "older", "Older visit.", time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC))

	noSummary := seedPerson(t, store, "user-1", "Brother Lee")
	longTranscript := strings.Repeat("a", 150)
	seedEntry(t, store, "user-1", noSummary.ID, longTranscript, "", time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC))

	seedPerson(t, store, "user-1", "No Visits Yet")
	seedPerson(t, store, "user-2", "Someone Else's Person")

	r := newPeopleRouter(store, "user-1")
	req := httptest.NewRequest(http.MethodGet, "/api/people", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp []PersonSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 3)

	byName := map[string]PersonSummary{}
	for _, s := range resp {
		byName[s.Name] = s
	}

	jones := byName["Sister Jones"]
	assert.Equal(t, "Visited and shared a message.", jones.LastEntryPreview)
	assert.Equal(t, 2, jones.TotalEntries)
	assert.Equal(t, time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC), jones.LastContact.UTC())

	lee := byName["Brother Lee"]
	assert.Equal(t, strings.Repeat("a", 100)+"...", lee.LastEntryPreview)
	assert.Equal(t, 1, lee.TotalEntries)

	fresh := byName["No Visits Yet"]
	assert.Empty(t, fresh.LastEntryPreview)
	assert.Zero(t, fresh.TotalEntries)
	assert.False(t, fresh.LastContact.IsZero())
}

func TestGetPerson_UnownedIs404(t *testing.T) {
	store := newTestStore(t)
	seedUser(t, store, "owner")
	seedUser(t, store, "intruder")
	person := seedPerson(t, store, "owner", "Sister Jones")

	r := newPeopleRouter(store, "intruder")
	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/people/%d", person.ID), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Person not found")
}

func TestUpdatePerson(t *testing.T) {
	store := newTestStore(t)
	seedUser(t, store, "user-1")
	person := seedPerson(t, store, "user-1", "Before")

	r := newPeopleRouter(store, "user-1")
	req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/api/people/%d", person.ID), strings.NewReader(`{"name":"After","status":"follow-up"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "After", resp["name"])
	assert.Equal(t, "follow-up", resp["status"])
}

func TestUpdatePerson_NoFields(t *testing.T) {
	store := newTestStore(t)
	seedUser(t, store, "user-1")
	person := seedPerson(t, store, "user-1", "Sister Jones")

	r := newPeopleRouter(store, "user-1")
	req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/api/people/%d", person.ID), strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "No valid fields to update")
}

func TestDeletePerson(t *testing.T) {
	store := newTestStore(t)
	seedUser(t, store, "user-1")
	person := seedPerson(t, store, "user-1", "Sister Jones")

	r := newPeopleRouter(store, "user-1")

	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/people/%d", person.ID), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	// Second delete finds nothing
	req = httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/people/%d", person.ID), nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

package handlers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmatson/shepherd/internal/auth"
	"github.com/jmatson/shepherd/internal/models"
	"github.com/jmatson/shepherd/internal/storage"
	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"
)

type CreatePersonRequest struct {
	Name   string   `json:"name" binding:"required"`
	Family string   `json:"family"`
	Tags   []string `json:"tags"`
	Status string   `json:"status" binding:"omitempty,oneof=active inactive follow-up"`
}

type UpdatePersonRequest struct {
	Name   *string   `json:"name"`
	Family *string   `json:"family"`
	Tags   *[]string `json:"tags"`
	Status *string   `json:"status" binding:"omitempty,oneof=active inactive follow-up"`
}

// PersonSummary is a person enriched with a preview of their latest entry.
// Computed per request; nothing here is denormalized into the schema.
type PersonSummary struct {
	models.MinisteredPerson
	LastEntryPreview string    `json:"lastEntryPreview"`
	LastContact      time.Time `json:"lastContact"`
	TotalEntries     int       `json:"totalEntries"`
}

const previewLength = 100

// ListPeople returns the caller's people with latest-entry previews. The
// per-person entry lookups fan out concurrently; the result slice keeps
// the people-list order regardless of completion order.
func ListPeople(store *storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := auth.CurrentUserID(c)

		people, err := store.GetMinisteredPersons(c.Request.Context(), userID)
		if err != nil {
			log.Printf("Error fetching people: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch people"})
			return
		}

		summaries := make([]PersonSummary, len(people))
		g, ctx := errgroup.WithContext(c.Request.Context())
		g.SetLimit(8)

		for i, person := range people {
			g.Go(func() error {
				entries, err := store.GetEntriesForPerson(ctx, person.ID, userID)
				if err != nil {
					return err
				}

				summary := PersonSummary{
					MinisteredPerson: person,
					LastContact:      person.CreatedAt,
					TotalEntries:     len(entries),
				}
				if len(entries) > 0 {
					latest := entries[0]
					summary.LastContact = latest.Date
					summary.LastEntryPreview = entryPreview(latest)
				}
				summaries[i] = summary
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			log.Printf("Error fetching people: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch people"})
			return
		}

		c.JSON(http.StatusOK, summaries)
	}
}

// entryPreview prefers the AI summary and falls back to the first hundred
// characters of the transcript.
func entryPreview(entry models.MinisteringEntry) string {
	if entry.Summary != "" {
		return entry.Summary
	}
	if entry.Transcript == "" {
		return ""
	}
	runes := []rune(entry.Transcript)
	if len(runes) <= previewLength {
		return entry.Transcript + "..."
	}
	return string(runes[:previewLength]) + "..."
}

// GetPerson returns a single owned person
func GetPerson(store *storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := auth.CurrentUserID(c)

		personID, err := parseIDParam(c, "id")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid person id"})
			return
		}

		person, err := store.GetMinisteredPerson(c.Request.Context(), personID, userID)
		if err != nil {
			log.Printf("Error fetching person: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch person"})
			return
		}
		if person == nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Person not found"})
			return
		}

		c.JSON(http.StatusOK, person)
	}
}

// CreatePerson adds a person for the caller
func CreatePerson(store *storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := auth.CurrentUserID(c)

		var req CreatePersonRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to create person", "error": err.Error()})
			return
		}

		person := &models.MinisteredPerson{
			UserID: userID,
			Name:   req.Name,
			Family: req.Family,
			Tags:   datatypes.NewJSONSlice(orEmpty(req.Tags)),
			Status: req.Status,
		}
		if err := store.CreateMinisteredPerson(c.Request.Context(), person); err != nil {
			log.Printf("Error creating person: %v", err)
			c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to create person", "error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, person)
	}
}

// UpdatePerson merges the supplied fields into an owned person
func UpdatePerson(store *storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := auth.CurrentUserID(c)

		personID, err := parseIDParam(c, "id")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid person id"})
			return
		}

		var req UpdatePersonRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to update person", "error": err.Error()})
			return
		}

		updates := map[string]interface{}{}
		if req.Name != nil {
			updates["name"] = *req.Name
		}
		if req.Family != nil {
			updates["family"] = *req.Family
		}
		if req.Tags != nil {
			updates["tags"] = datatypes.NewJSONSlice(orEmpty(*req.Tags))
		}
		if req.Status != nil {
			updates["status"] = *req.Status
		}
		if len(updates) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "No valid fields to update"})
			return
		}

		person, err := store.UpdateMinisteredPerson(c.Request.Context(), personID, userID, updates)
		if err != nil {
			log.Printf("Error updating person: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update person"})
			return
		}
		if person == nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Person not found"})
			return
		}

		c.JSON(http.StatusOK, person)
	}
}

// DeletePerson removes an owned person; entries cascade
func DeletePerson(store *storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := auth.CurrentUserID(c)

		personID, err := parseIDParam(c, "id")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid person id"})
			return
		}

		deleted, err := store.DeleteMinisteredPerson(c.Request.Context(), personID, userID)
		if err != nil {
			log.Printf("Error deleting person: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete person"})
			return
		}
		if !deleted {
			c.JSON(http.StatusNotFound, gin.H{"message": "Person not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Person deleted successfully"})
	}
}

func parseIDParam(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	return uint(id), err
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

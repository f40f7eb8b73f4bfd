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
	"gorm.io/datatypes"
)

type SaveEntryRequest struct {
	PersonID   uint       `json:"personId" binding:"required"`
	Date       *time.Time `json:"date"`
	Transcript string     `json:"transcript" binding:"required"`
	Summary    string     `json:"summary"`
	Followups  []string   `json:"followups"`
	Scriptures []string   `json:"scriptures"`
	Talks      []string   `json:"talks"`
	Notes      string     `json:"notes"`
	AudioURL   string     `json:"audioUrl"`
}

// ListEntries returns all entries for one of the caller's people.
// person_id is required; an unowned person is indistinguishable from an
// absent one.
func ListEntries(store *storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := auth.CurrentUserID(c)

		personIDStr := c.Query("person_id")
		if personIDStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "person_id is required"})
			return
		}
		personID, err := strconv.ParseUint(personIDStr, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "person_id is required"})
			return
		}

		person, err := store.GetMinisteredPerson(c.Request.Context(), uint(personID), userID)
		if err != nil {
			log.Printf("Error fetching entries: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch entries"})
			return
		}
		if person == nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Person not found"})
			return
		}

		entries, err := store.GetEntriesForPerson(c.Request.Context(), uint(personID), userID)
		if err != nil {
			log.Printf("Error fetching entries: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch entries"})
			return
		}

		c.JSON(http.StatusOK, entries)
	}
}

// GetEntry returns a single owned entry
func GetEntry(store *storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := auth.CurrentUserID(c)

		entryID, err := parseIDParam(c, "id")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid entry id"})
			return
		}

		entry, err := store.GetEntry(c.Request.Context(), entryID, userID)
		if err != nil {
			log.Printf("Error fetching entry: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch entry"})
			return
		}
		if entry == nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Entry not found"})
			return
		}

		c.JSON(http.StatusOK, entry)
	}
}

// SaveEntry persists a completed visit. The target person's ownership is
// verified before any write; on success the person's updated_at is touched
// and the stored insights snapshot is invalidated.
func SaveEntry(store *storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := auth.CurrentUserID(c)

		var req SaveEntryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to save entry", "error": err.Error()})
			return
		}

		person, err := store.GetMinisteredPerson(c.Request.Context(), req.PersonID, userID)
		if err != nil {
			log.Printf("Error saving entry: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to save entry"})
			return
		}
		if person == nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Person not found"})
			return
		}

		date := time.Now()
		if req.Date != nil {
			date = *req.Date
		}

		entry := &models.MinisteringEntry{
			UserID:     userID,
			PersonID:   req.PersonID,
			Date:       date,
			Transcript: req.Transcript,
			Summary:    req.Summary,
			Followups:  datatypes.NewJSONSlice(orEmpty(req.Followups)),
			Scriptures: datatypes.NewJSONSlice(orEmpty(req.Scriptures)),
			Talks:      datatypes.NewJSONSlice(orEmpty(req.Talks)),
			Notes:      req.Notes,
			AudioURL:   req.AudioURL,
		}
		if err := store.CreateEntry(c.Request.Context(), entry); err != nil {
			log.Printf("Error saving entry: %v", err)
			c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to save entry", "error": err.Error()})
			return
		}

		if err := store.TouchMinisteredPerson(c.Request.Context(), req.PersonID, userID); err != nil {
			log.Printf("Error touching person after entry save: %v", err)
		}
		if err := store.DeletePersonInsight(c.Request.Context(), req.PersonID); err != nil {
			log.Printf("Error invalidating insights after entry save: %v", err)
		}

		c.JSON(http.StatusOK, entry)
	}
}

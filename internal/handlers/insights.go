package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmatson/shepherd/internal/analysis"
	"github.com/jmatson/shepherd/internal/auth"
	"github.com/jmatson/shepherd/internal/models"
	"github.com/jmatson/shepherd/internal/storage"
)

// Insights returns recurring patterns and suggestions across a person's
// visit history. The model call is expensive and non-deterministic, so
// the result is stored as a snapshot and reused until the person's entry
// count changes. A person with no entries short-circuits to an empty
// result without touching the analyzer.
func Insights(store *storage.Store, analyzer analysis.Analyzer) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := auth.CurrentUserID(c)

		personID, err := parseIDParam(c, "personId")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid person id"})
			return
		}

		person, err := store.GetMinisteredPerson(c.Request.Context(), personID, userID)
		if err != nil {
			log.Printf("Error generating insights: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to generate insights"})
			return
		}
		if person == nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Person not found"})
			return
		}

		entries, err := store.GetEntriesForPerson(c.Request.Context(), personID, userID)
		if err != nil {
			log.Printf("Error generating insights: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to generate insights"})
			return
		}

		if len(entries) == 0 {
			c.JSON(http.StatusOK, analysis.Insights{Patterns: []string{}, Suggestions: []string{}})
			return
		}

		if snapshot, err := store.GetPersonInsight(c.Request.Context(), personID); err == nil &&
			snapshot != nil && snapshot.EntryCount == len(entries) {
			c.Data(http.StatusOK, "application/json; charset=utf-8", snapshot.Content)
			return
		}

		history := make([]analysis.TranscriptEntry, len(entries))
		for i, entry := range entries {
			history[i] = analysis.TranscriptEntry{Transcript: entry.Transcript, Date: entry.Date}
		}

		insights, err := analyzer.GenerateInsights(c.Request.Context(), history)
		if err != nil {
			log.Printf("Error generating insights: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to generate insights", "error": err.Error()})
			return
		}

		if content, err := json.Marshal(insights); err == nil {
			snapshot := &models.PersonInsight{
				PersonID:    personID,
				Content:     content,
				EntryCount:  len(entries),
				GeneratedAt: time.Now(),
			}
			if err := store.SavePersonInsight(c.Request.Context(), snapshot); err != nil {
				log.Printf("Error storing insights snapshot: %v", err)
			}
		}

		c.JSON(http.StatusOK, insights)
	}
}

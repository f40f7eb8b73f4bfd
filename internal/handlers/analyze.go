package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmatson/shepherd/internal/analysis"
)

type AnalyzeRequest struct {
	Transcript string `json:"transcript" binding:"required"`
}

// Analyze runs the language model over one transcript and returns the
// structured result. Every field of the response is always present.
func Analyze(analyzer analysis.Analyzer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AnalyzeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Transcript is required"})
			return
		}

		result, err := analyzer.Analyze(c.Request.Context(), req.Transcript)
		if err != nil {
			log.Printf("Error analyzing entry: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to analyze entry", "error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmatson/shepherd/internal/models"
	"github.com/jmatson/shepherd/internal/storage"
)

type CreateContentRequest struct {
	Key         string `json:"key" binding:"required"`
	Title       string `json:"title"`
	Content     string `json:"content" binding:"required"`
	ContentType string `json:"contentType" binding:"omitempty,oneof=text html markdown"`
	Category    string `json:"category"`
	SortOrder   int    `json:"sortOrder"`
}

type UpdateContentRequest struct {
	Title     *string `json:"title"`
	Content   *string `json:"content"`
	IsActive  *bool   `json:"isActive"`
	Category  *string `json:"category"`
	SortOrder *int    `json:"sortOrder"`
}

// ListContent returns all active content blurbs
func ListContent(store *storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		content, err := store.GetAllContent(c.Request.Context())
		if err != nil {
			log.Printf("Error fetching content: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch content"})
			return
		}
		c.JSON(http.StatusOK, content)
	}
}

// GetContentByKey returns one active content blurb by its key
func GetContentByKey(store *storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		content, err := store.GetContentByKey(c.Request.Context(), c.Param("key"))
		if err != nil {
			log.Printf("Error fetching content: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch content"})
			return
		}
		if content == nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Content not found"})
			return
		}
		c.JSON(http.StatusOK, content)
	}
}

// GetContentByCategory returns active content for one category
func GetContentByCategory(store *storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		content, err := store.GetContentByCategory(c.Request.Context(), c.Param("category"))
		if err != nil {
			log.Printf("Error fetching content: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch content"})
			return
		}
		c.JSON(http.StatusOK, content)
	}
}

// CreateContent adds a content blurb
func CreateContent(store *storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateContentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to create content", "error": err.Error()})
			return
		}

		contentType := req.ContentType
		if contentType == "" {
			contentType = "text"
		}
		content := &models.AppContent{
			Key:         req.Key,
			Title:       req.Title,
			Content:     req.Content,
			ContentType: contentType,
			IsActive:    true,
			Category:    req.Category,
			SortOrder:   req.SortOrder,
		}
		if err := store.CreateContent(c.Request.Context(), content); err != nil {
			log.Printf("Error creating content: %v", err)
			c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to create content", "error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, content)
	}
}

// UpdateContent merges fields into a content blurb
func UpdateContent(store *storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		contentID, err := parseIDParam(c, "id")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid content id"})
			return
		}

		var req UpdateContentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to update content", "error": err.Error()})
			return
		}

		updates := map[string]interface{}{}
		if req.Title != nil {
			updates["title"] = *req.Title
		}
		if req.Content != nil {
			updates["content"] = *req.Content
		}
		if req.IsActive != nil {
			updates["is_active"] = *req.IsActive
		}
		if req.Category != nil {
			updates["category"] = *req.Category
		}
		if req.SortOrder != nil {
			updates["sort_order"] = *req.SortOrder
		}
		if len(updates) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "No valid fields to update"})
			return
		}

		content, err := store.UpdateContent(c.Request.Context(), contentID, updates)
		if err != nil {
			log.Printf("Error updating content: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update content"})
			return
		}
		if content == nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Content not found"})
			return
		}

		c.JSON(http.StatusOK, content)
	}
}

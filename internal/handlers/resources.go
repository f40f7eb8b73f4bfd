package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmatson/shepherd/internal/models"
	"github.com/jmatson/shepherd/internal/storage"
	"gorm.io/datatypes"
)

type CreateResourceRequest struct {
	Title       string   `json:"title" binding:"required"`
	Author      string   `json:"author"`
	Type        string   `json:"type" binding:"required,oneof=talk scripture article service_idea"`
	URL         string   `json:"url"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Featured    bool     `json:"featured"`
}

// ListResources returns all curated resources, featured first. Public.
func ListResources(store *storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		resources, err := store.GetGospelResources(c.Request.Context())
		if err != nil {
			log.Printf("Error fetching resources: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch resources"})
			return
		}
		c.JSON(http.StatusOK, resources)
	}
}

// ListFeaturedResources returns only the featured resources. Public.
func ListFeaturedResources(store *storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		resources, err := store.GetFeaturedResources(c.Request.Context())
		if err != nil {
			log.Printf("Error fetching featured resources: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch featured resources"})
			return
		}
		c.JSON(http.StatusOK, resources)
	}
}

// CreateResource adds a resource. Resources are global; there is no owner.
func CreateResource(store *storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateResourceRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to create resource", "error": err.Error()})
			return
		}

		resource := &models.GospelResource{
			Title:       req.Title,
			Author:      req.Author,
			Type:        req.Type,
			URL:         req.URL,
			Description: req.Description,
			Tags:        datatypes.NewJSONSlice(orEmpty(req.Tags)),
			Featured:    req.Featured,
		}
		if err := store.CreateGospelResource(c.Request.Context(), resource); err != nil {
			log.Printf("Error creating resource: %v", err)
			c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to create resource", "error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, resource)
	}
}

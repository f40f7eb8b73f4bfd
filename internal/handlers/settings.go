package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmatson/shepherd/internal/models"
	"github.com/jmatson/shepherd/internal/storage"
)

type CreateSettingRequest struct {
	Key         string `json:"key" binding:"required"`
	Value       string `json:"value" binding:"required"`
	Description string `json:"description"`
	Category    string `json:"category"`
	IsPublic    bool   `json:"isPublic"`
}

type UpdateSettingRequest struct {
	Value       *string `json:"value"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	IsPublic    *bool   `json:"isPublic"`
}

// ListPublicSettings returns only the settings flagged as public
func ListPublicSettings(store *storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		settings, err := store.GetPublicSettings(c.Request.Context())
		if err != nil {
			log.Printf("Error fetching settings: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch settings"})
			return
		}
		c.JSON(http.StatusOK, settings)
	}
}

// CreateSetting adds a configuration value
func CreateSetting(store *storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateSettingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to create setting", "error": err.Error()})
			return
		}

		setting := &models.AppSetting{
			Key:         req.Key,
			Value:       req.Value,
			Description: req.Description,
			Category:    req.Category,
			IsPublic:    req.IsPublic,
		}
		if err := store.CreateSetting(c.Request.Context(), setting); err != nil {
			log.Printf("Error creating setting: %v", err)
			c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to create setting", "error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, setting)
	}
}

// UpdateSetting merges fields into a configuration value
func UpdateSetting(store *storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		settingID, err := parseIDParam(c, "id")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid setting id"})
			return
		}

		var req UpdateSettingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to update setting", "error": err.Error()})
			return
		}

		updates := map[string]interface{}{}
		if req.Value != nil {
			updates["value"] = *req.Value
		}
		if req.Description != nil {
			updates["description"] = *req.Description
		}
		if req.Category != nil {
			updates["category"] = *req.Category
		}
		if req.IsPublic != nil {
			updates["is_public"] = *req.IsPublic
		}
		if len(updates) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "No valid fields to update"})
			return
		}

		setting, err := store.UpdateSetting(c.Request.Context(), settingID, updates)
		if err != nil {
			log.Printf("Error updating setting: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update setting"})
			return
		}
		if setting == nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Setting not found"})
			return
		}

		c.JSON(http.StatusOK, setting)
	}
}

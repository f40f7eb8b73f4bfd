package database

import (
	"context"
	"log"

	"github.com/jmatson/shepherd/internal/models"
	"github.com/jmatson/shepherd/internal/storage"
)

// SeedInitialContent populates the content and settings tables with the
// default copy. Idempotent: skips when the landing content already exists.
func SeedInitialContent(ctx context.Context, store *storage.Store) error {
	existing, err := store.GetContentByKey(ctx, "landing-hero-title")
	if err != nil {
		return err
	}
	if existing != nil {
		log.Println("Content already seeded, skipping")
		return nil
	}

	log.Println("Seeding initial content...")

	content := []models.AppContent{
		{
			Key:         "landing-hero-title",
			Title:       "Landing Hero Title",
			Content:     "Ministering Companion",
			ContentType: "text",
			IsActive:    true,
			Category:    "landing",
			SortOrder:   1,
		},
		{
			Key:         "landing-hero-subtitle",
			Title:       "Landing Hero Subtitle",
			Content:     "Following Christ's perfect example of love and service. A sacred tool to help you record, analyze, and enhance your ministering efforts with AI-powered insights and gospel resources.",
			ContentType: "text",
			IsActive:    true,
			Category:    "landing",
			SortOrder:   2,
		},
		{
			Key:         "landing-cta-button",
			Title:       "Landing CTA Button",
			Content:     "Begin Your Sacred Ministry",
			ContentType: "text",
			IsActive:    true,
			Category:    "landing",
			SortOrder:   3,
		},
		{
			Key:         "dashboard-welcome-message",
			Title:       "Dashboard Welcome Message",
			Content:     "Following Christ's example of love and service through inspired ministering",
			ContentType: "text",
			IsActive:    true,
			Category:    "dashboard",
			SortOrder:   1,
		},
		{
			Key:         "feature-voice-recording",
			Title:       "Voice Recording Feature",
			Content:     "Record your ministering visits using voice notes, making it easy to capture thoughts and impressions while they're fresh in your mind.",
			ContentType: "text",
			IsActive:    true,
			Category:    "features",
			SortOrder:   1,
		},
		{
			Key:         "feature-ai-insights",
			Title:       "AI-Powered Insights",
			Content:     "Receive thoughtful analysis and suggestions based on your visit records, helping you better understand and serve those you minister to.",
			ContentType: "text",
			IsActive:    true,
			Category:    "features",
			SortOrder:   2,
		},
		{
			Key:         "feature-gospel-resources",
			Title:       "Gospel Resources",
			Content:     "Access curated scriptures, talks, and service ideas that align with the needs and circumstances of those you minister to.",
			ContentType: "text",
			IsActive:    true,
			Category:    "features",
			SortOrder:   3,
		},
	}
	for i := range content {
		if err := store.CreateContent(ctx, &content[i]); err != nil {
			return err
		}
	}

	settings := []models.AppSetting{
		{
			Key:         "app-name",
			Value:       "Ministering Companion",
			Description: "The name of the application",
			Category:    "branding",
			IsPublic:    true,
		},
		{
			Key:         "app-tagline",
			Value:       "Following Christ's example of love and service",
			Description: "The application tagline",
			Category:    "branding",
			IsPublic:    true,
		},
	}
	for i := range settings {
		if err := store.CreateSetting(ctx, &settings[i]); err != nil {
			return err
		}
	}

	log.Println("Initial content seeded successfully")
	return nil
}

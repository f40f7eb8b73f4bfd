package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/jmatson/shepherd/internal/analysis"
	"github.com/jmatson/shepherd/internal/auth"
	"github.com/jmatson/shepherd/internal/config"
	"github.com/jmatson/shepherd/internal/database"
	"github.com/jmatson/shepherd/internal/ratelimit"
	"github.com/jmatson/shepherd/internal/router"
	"github.com/jmatson/shepherd/internal/storage"
	"github.com/jmatson/shepherd/internal/transcription"
	"github.com/jmatson/shepherd/internal/worker"
)

func main() {
	// .env is a local development convenience; in deployed environments
	// configuration comes from real environment variables.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	db, err := database.Init(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	store := storage.New(db)

	if !cfg.IsProduction() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := database.SeedInitialContent(ctx, store); err != nil {
			log.Printf("Failed to seed content: %v", err)
		}
		cancel()
	}

	auth.InitProviders(cfg)

	ctx := context.Background()
	transcriber, err := transcription.New(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize transcription: %v", err)
	}

	stubMode := cfg.OpenAIAPIKey == "" && !cfg.IsProduction()
	if stubMode {
		log.Println("OPENAI_API_KEY not set, analysis running in stub mode")
	}
	analyzer := analysis.NewService(cfg.OpenAIAPIKey, stubMode)

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatalf("Failed to create upload directory: %v", err)
	}

	var limiter *ratelimit.Limiter
	if cfg.RedisURL != "" {
		redisOpt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("Invalid REDIS_URL: %v", err)
		}
		limiter = ratelimit.New(redis.NewClient(redisOpt), 30, time.Minute)

		if err := worker.InitClient(cfg.RedisURL); err != nil {
			log.Fatalf("Failed to initialize task client: %v", err)
		}
		defer worker.CloseClient()

		stopWorker, err := worker.Start(cfg)
		if err != nil {
			log.Fatalf("Failed to start worker: %v", err)
		}
		defer stopWorker()

		stopScheduler, err := worker.StartScheduler(cfg)
		if err != nil {
			log.Fatalf("Failed to start scheduler: %v", err)
		}
		defer stopScheduler()
	} else {
		log.Println("REDIS_URL not set, running without rate limiting or upload cleanup")
	}

	r := router.New(cfg, store, transcriber, analyzer, limiter)

	log.Printf("Starting server on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

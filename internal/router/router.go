package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/jmatson/shepherd/internal/analysis"
	"github.com/jmatson/shepherd/internal/auth"
	"github.com/jmatson/shepherd/internal/config"
	"github.com/jmatson/shepherd/internal/handlers"
	"github.com/jmatson/shepherd/internal/ratelimit"
	"github.com/jmatson/shepherd/internal/storage"
	"github.com/jmatson/shepherd/internal/transcription"
)

// New assembles the gin engine: CORS, cookie sessions, the OAuth routes,
// and the JSON API with auth middleware on everything except health and
// the public resource reads.
func New(
	cfg *config.Config,
	store *storage.Store,
	transcriber transcription.Transcriber,
	analyzer analysis.Analyzer,
	limiter *ratelimit.Limiter,
) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Accept", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	sessionStore := cookie.NewStore([]byte(cfg.SessionSecret))
	sessionStore.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30,
		HttpOnly: true,
		Secure:   cfg.IsProduction(),
	})
	r.Use(sessions.Sessions("shepherd_session", sessionStore))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		// Auth flow
		api.GET("/login", auth.HandleLogin)
		api.GET("/auth/callback", auth.HandleCallback(store))
		api.GET("/logout", auth.HandleLogout)
		api.GET("/auth/user", auth.RequireAuth(), auth.HandleCurrentUser(store))

		// Public reads
		api.GET("/resources", handlers.ListResources(store))
		api.GET("/resources/featured", handlers.ListFeaturedResources(store))
		api.GET("/content", handlers.ListContent(store))
		api.GET("/content/key/:key", handlers.GetContentByKey(store))
		api.GET("/content/category/:category", handlers.GetContentByCategory(store))
		api.GET("/settings/public", handlers.ListPublicSettings(store))

		authed := api.Group("", auth.RequireAuth())
		{
			authed.GET("/people", handlers.ListPeople(store))
			authed.GET("/people/:id", handlers.GetPerson(store))
			authed.POST("/people", handlers.CreatePerson(store))
			authed.PUT("/people/:id", handlers.UpdatePerson(store))
			authed.DELETE("/people/:id", handlers.DeletePerson(store))

			authed.GET("/entries", handlers.ListEntries(store))
			authed.GET("/entries/:id", handlers.GetEntry(store))
			authed.POST("/save_entry", handlers.SaveEntry(store))

			authed.POST("/transcribe", ratelimit.Middleware(limiter, "transcribe"), handlers.Transcribe(cfg, transcriber))
			authed.POST("/analyze", ratelimit.Middleware(limiter, "analyze"), handlers.Analyze(analyzer))
			authed.GET("/insights/:personId", handlers.Insights(store, analyzer))

			authed.POST("/resources", handlers.CreateResource(store))
			authed.POST("/content", handlers.CreateContent(store))
			authed.PUT("/content/:id", handlers.UpdateContent(store))
			authed.POST("/settings", handlers.CreateSetting(store))
			authed.PUT("/settings/:id", handlers.UpdateSetting(store))
		}
	}

	return r
}

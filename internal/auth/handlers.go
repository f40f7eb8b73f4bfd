package auth

import (
	"log"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/jmatson/shepherd/internal/models"
	"github.com/jmatson/shepherd/internal/storage"
	"github.com/markbates/goth/gothic"
)

// HandleLogin initiates the OAuth flow
func HandleLogin(c *gin.Context) {
	// Gothic requires the "provider" query parameter
	q := c.Request.URL.Query()
	q.Add("provider", "google")
	c.Request.URL.RawQuery = q.Encode()

	gothic.BeginAuthHandler(c.Writer, c.Request)
}

// HandleCallback completes the OAuth flow, upserts the user keyed by the
// provider's stable subject id, and stores the id in the session.
func HandleCallback(store *storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := c.Request.URL.Query()
		q.Add("provider", "google")
		c.Request.URL.RawQuery = q.Encode()

		gothUser, err := gothic.CompleteUserAuth(c.Writer, c.Request)
		if err != nil {
			log.Printf("Auth error: %v", err)
			c.Redirect(http.StatusFound, "/?error=auth_failed")
			return
		}

		user := &models.User{
			ID:              gothUser.UserID,
			Email:           gothUser.Email,
			FirstName:       gothUser.FirstName,
			LastName:        gothUser.LastName,
			ProfileImageURL: gothUser.AvatarURL,
		}
		if err := store.UpsertUser(c.Request.Context(), user); err != nil {
			log.Printf("User upsert error: %v", err)
			c.Redirect(http.StatusFound, "/?error=auth_failed")
			return
		}

		session := sessions.Default(c)
		session.Set(sessionUserKey, gothUser.UserID)
		if err := session.Save(); err != nil {
			log.Printf("Session save error: %v", err)
			c.Redirect(http.StatusFound, "/?error=session_failed")
			return
		}

		log.Printf("User authenticated: %s (%s)", gothUser.Name, gothUser.Email)
		c.Redirect(http.StatusFound, "/")
	}
}

// HandleLogout clears the session and redirects to the landing page
func HandleLogout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()

	if err := session.Save(); err != nil {
		log.Printf("Session clear error: %v", err)
	}

	c.Redirect(http.StatusFound, "/")
}

// HandleCurrentUser returns the authenticated user's profile record
func HandleCurrentUser(store *storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := CurrentUserID(c)

		user, err := store.GetUser(c.Request.Context(), userID)
		if err != nil {
			log.Printf("Error fetching user: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch user"})
			return
		}
		if user == nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}

		c.JSON(http.StatusOK, user)
	}
}

package handlers

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jmatson/shepherd/internal/config"
	"github.com/jmatson/shepherd/internal/transcription"
)

// allowedAudioTypes is matched against both the file extension and the
// declared MIME type; both must pass.
var allowedAudioTypes = []string{"wav", "mp3", "m4a", "ogg", "webm"}

// Transcribe accepts one multipart "audio" field, hands the temp file to
// the configured provider, and returns the transcript. The temp file is
// removed on every exit path; an empty transcript is a success, not an
// error.
func Transcribe(cfg *config.Config, transcriber transcription.Transcriber) gin.HandlerFunc {
	maxBytes := cfg.MaxUploadMB << 20

	return func(c *gin.Context) {
		file, err := c.FormFile("audio")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Audio file is required"})
			return
		}

		if file.Size > maxBytes {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Audio file exceeds the 10MB limit"})
			return
		}

		ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(file.Filename)), ".")
		if !audioTypeAllowed(ext) || !audioTypeAllowed(file.Header.Get("Content-Type")) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Only audio files are allowed"})
			return
		}

		path := filepath.Join(cfg.UploadDir, uuid.New().String()+"."+ext)
		if err := c.SaveUploadedFile(file, path); err != nil {
			log.Printf("Error saving upload: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to transcribe audio"})
			return
		}
		defer func() {
			if err := os.Remove(path); err != nil {
				log.Printf("Error removing upload %s: %v", path, err)
			}
		}()

		transcript, err := transcriber.Transcribe(c.Request.Context(), path)
		if err != nil {
			log.Printf("Error transcribing audio: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to transcribe audio", "error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"transcript": transcript})
	}
}

// audioTypeAllowed reports whether the value names one of the accepted
// audio container types. MIME types like "audio/webm;codecs=opus" pass by
// substring, mirroring the extension allow-list.
func audioTypeAllowed(value string) bool {
	value = strings.ToLower(value)
	for _, t := range allowedAudioTypes {
		if strings.Contains(value, t) {
			return true
		}
	}
	return false
}

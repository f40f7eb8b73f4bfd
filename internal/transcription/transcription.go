// Package transcription converts an uploaded audio file into plain text
// through one of two interchangeable vendors. The provider is resolved
// once at startup from configuration; there is no per-request fallback
// and no retry, and an empty transcript is a valid result.
package transcription

import (
	"context"
	"fmt"

	"github.com/jmatson/shepherd/internal/config"
)

// Transcriber converts an audio file on disk into text
type Transcriber interface {
	Transcribe(ctx context.Context, path string) (string, error)
}

// New resolves the configured provider. Config validation has already
// guaranteed the credentials are present; a vendor client that still
// fails to construct fails process startup.
func New(ctx context.Context, cfg *config.Config) (Transcriber, error) {
	switch cfg.TranscriptionProvider {
	case config.ProviderOpenAI:
		return newOpenAITranscriber(cfg.OpenAIAPIKey), nil
	case config.ProviderGoogle:
		return newGoogleTranscriber(ctx)
	default:
		return nil, fmt.Errorf("unsupported transcription provider: %s", cfg.TranscriptionProvider)
	}
}

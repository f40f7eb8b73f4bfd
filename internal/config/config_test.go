package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("PORT", "")
	t.Setenv("TRANSCRIPTION_PROVIDER", "")
	t.Setenv("SESSION_SECRET", "")
	t.Setenv("UPLOAD_DIR", "")

	cfg := Load()

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ProviderGoogle, cfg.TranscriptionProvider)
	assert.Equal(t, "uploads", cfg.UploadDir)
	assert.Equal(t, int64(10), cfg.MaxUploadMB)
	assert.NotEmpty(t, cfg.SessionSecret)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_ReadsEnvironment(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("PORT", "9000")
	t.Setenv("TRANSCRIPTION_PROVIDER", "openai")
	t.Setenv("SESSION_SECRET", "s3cret")

	cfg := Load()

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, ProviderOpenAI, cfg.TranscriptionProvider)
	assert.Equal(t, "s3cret", cfg.SessionSecret)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name:    "openai with key",
			cfg:     Config{TranscriptionProvider: ProviderOpenAI, OpenAIAPIKey: "sk-test"},
			wantErr: false,
		},
		{
			name:    "openai without key",
			cfg:     Config{TranscriptionProvider: ProviderOpenAI},
			wantErr: true,
		},
		{
			name:    "google with credentials file",
			cfg:     Config{TranscriptionProvider: ProviderGoogle, GoogleCredentials: "/etc/creds.json"},
			wantErr: false,
		},
		{
			name:    "google with project only",
			cfg:     Config{TranscriptionProvider: ProviderGoogle, GoogleCloudProject: "my-project"},
			wantErr: false,
		},
		{
			name:    "google without credentials",
			cfg:     Config{TranscriptionProvider: ProviderGoogle},
			wantErr: true,
		},
		{
			name:    "unknown provider",
			cfg:     Config{TranscriptionProvider: "azure"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

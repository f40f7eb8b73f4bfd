package transcription

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

type openAITranscriber struct {
	client *openai.Client
}

func newOpenAITranscriber(apiKey string) *openAITranscriber {
	return &openAITranscriber{client: openai.NewClient(apiKey)}
}

// Transcribe uploads the file to the Whisper endpoint. Whisper returns an
// empty string for silent clips, which is passed through unchanged.
func (t *openAITranscriber) Transcribe(ctx context.Context, path string) (string, error) {
	resp, err := t.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: path,
	})
	if err != nil {
		return "", fmt.Errorf("failed to transcribe audio with openai: %w", err)
	}
	return resp.Text, nil
}

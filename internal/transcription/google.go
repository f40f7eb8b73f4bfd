package transcription

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	speech "cloud.google.com/go/speech/apiv1"
	"cloud.google.com/go/speech/apiv1/speechpb"
)

type googleTranscriber struct {
	client *speech.Client
}

func newGoogleTranscriber(ctx context.Context) (*googleTranscriber, error) {
	client, err := speech.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create google speech client: %w", err)
	}
	return &googleTranscriber{client: client}, nil
}

// Transcribe sends the whole clip in one synchronous recognize call.
// Uploads are capped at 10 MB well under the API's one-minute limit for
// inline content.
func (t *googleTranscriber) Transcribe(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to transcribe audio with google: %w", err)
	}

	resp, err := t.client.Recognize(ctx, &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:                   audioEncoding(path),
			SampleRateHertz:            44100,
			LanguageCode:               "en-US",
			EnableAutomaticPunctuation: true,
			Model:                      "latest_short",
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{Content: data},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to transcribe audio with google: %w", err)
	}

	// No results means no detected speech, which is a valid empty transcript
	var parts []string
	for _, result := range resp.Results {
		if len(result.Alternatives) > 0 && result.Alternatives[0].Transcript != "" {
			parts = append(parts, result.Alternatives[0].Transcript)
		}
	}
	return strings.Join(parts, " "), nil
}

// audioEncoding maps a file extension to the Speech-to-Text encoding.
// M4A/MP4 have no dedicated encoding, so they fall back to MP3.
func audioEncoding(path string) speechpb.RecognitionConfig_AudioEncoding {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		return speechpb.RecognitionConfig_LINEAR16
	case ".flac":
		return speechpb.RecognitionConfig_FLAC
	case ".mp3":
		return speechpb.RecognitionConfig_MP3
	case ".ogg", ".oga":
		return speechpb.RecognitionConfig_OGG_OPUS
	case ".webm":
		return speechpb.RecognitionConfig_WEBM_OPUS
	case ".m4a", ".mp4":
		return speechpb.RecognitionConfig_MP3
	default:
		return speechpb.RecognitionConfig_WEBM_OPUS
	}
}

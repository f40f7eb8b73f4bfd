package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const analyzeSystemPrompt = "You are a compassionate AI assistant helping church members with their ministering responsibilities. Provide thoughtful, scripture-based guidance."

const analyzePromptTemplate = `
You are an AI assistant helping with ministering. Analyze this ministering visit transcript and provide:

1. A thoughtful summary of the conversation (2-3 sentences)
2. Suggested follow-up actions (3-5 specific, actionable items)
3. Relevant scripture references that might help this person (2-4 references with brief context)
4. Suggested conference talks or resources (2-3 talks with titles and speakers)

Focus on spiritual needs, emotional support, and practical help. Be compassionate and Christ-centered in your suggestions.

Transcript: %q

Respond with JSON in this exact format:
{
  "summary": "string",
  "followups": ["string1", "string2", "string3"],
  "scriptures": ["scripture1 - brief context", "scripture2 - brief context"],
  "talks": ["Talk Title by Speaker - brief relevance", "Talk Title by Speaker - brief relevance"]
}
`

const insightsSystemPrompt = "You are a wise, compassionate AI assistant helping with ministering insights."

const insightsPromptTemplate = `
Analyze these ministering visit transcripts to identify patterns and provide insights:

%s

Provide:
1. Patterns you notice in the person's spiritual journey, challenges, or growth (3-4 observations)
2. Suggestions for future ministering approaches or topics to discuss (3-4 actionable suggestions)

Be encouraging and focus on spiritual growth opportunities.

Respond with JSON in this format:
{
  "patterns": ["pattern1", "pattern2", "pattern3"],
  "suggestions": ["suggestion1", "suggestion2", "suggestion3"]
}
`

// Service calls the OpenAI chat completions API with JSON-mode responses.
// In stub mode it returns canned output with a simulated delay, so the
// full flow can be exercised in development without an API key.
type Service struct {
	client   *openai.Client
	stubMode bool
}

// NewService creates an analysis service. Pass stubMode true to avoid
// real model calls.
func NewService(apiKey string, stubMode bool) *Service {
	return &Service{
		client:   openai.NewClient(apiKey),
		stubMode: stubMode,
	}
}

// Analyze summarizes one transcript into summary, follow-ups, scripture
// references and talk suggestions. Fields the model omits come back as
// empty values rather than being absent.
func (s *Service) Analyze(ctx context.Context, transcript string) (*EntryAnalysis, error) {
	if s.stubMode {
		time.Sleep(200 * time.Millisecond)
		return &EntryAnalysis{
			Summary:    "Visit completed successfully.",
			Followups:  []string{"Check in again next week"},
			Scriptures: []string{},
			Talks:      []string{},
		}, nil
	}

	content, err := s.complete(ctx, analyzeSystemPrompt, fmt.Sprintf(analyzePromptTemplate, transcript))
	if err != nil {
		return nil, fmt.Errorf("failed to analyze ministering entry: %w", err)
	}

	var result EntryAnalysis
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		return nil, fmt.Errorf("failed to analyze ministering entry: %w", err)
	}

	if result.Summary == "" {
		result.Summary = "Visit completed successfully."
	}
	if result.Followups == nil {
		result.Followups = []string{}
	}
	if result.Scriptures == nil {
		result.Scriptures = []string{}
	}
	if result.Talks == nil {
		result.Talks = []string{}
	}
	return &result, nil
}

// GenerateInsights looks across a person's dated transcripts for
// recurring patterns and forward-looking suggestions.
func (s *Service) GenerateInsights(ctx context.Context, entries []TranscriptEntry) (*Insights, error) {
	if s.stubMode {
		time.Sleep(200 * time.Millisecond)
		return &Insights{
			Patterns:    []string{"Consistent engagement across visits"},
			Suggestions: []string{"Continue regular visits"},
		}, nil
	}

	var sb strings.Builder
	for i, entry := range entries {
		if i > 0 {
			sb.WriteString("\n\n---\n\n")
		}
		fmt.Fprintf(&sb, "Date: %s\nContent: %s", entry.Date.Format(time.RFC3339), entry.Transcript)
	}

	content, err := s.complete(ctx, insightsSystemPrompt, fmt.Sprintf(insightsPromptTemplate, sb.String()))
	if err != nil {
		return nil, fmt.Errorf("failed to generate insights: %w", err)
	}

	var result Insights
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		return nil, fmt.Errorf("failed to generate insights: %w", err)
	}

	if result.Patterns == nil {
		result.Patterns = []string{}
	}
	if result.Suggestions == nil {
		result.Suggestions = []string{}
	}
	return &result, nil
}

func (s *Service) complete(ctx context.Context, system, user string) (string, error) {
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: openai.GPT4o,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("model returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

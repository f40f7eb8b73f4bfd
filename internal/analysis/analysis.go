// Package analysis turns visit transcripts into structured guidance via a
// hosted language model. The calls are not deterministic: identical input
// can yield different output, so callers persist results as snapshots and
// never treat them as recomputable.
package analysis

import (
	"context"
	"time"
)

// EntryAnalysis is the structured result for a single transcript. All
// fields are always populated, with empty values when the model omits
// something, so callers never deal with missing keys.
type EntryAnalysis struct {
	Summary    string   `json:"summary"`
	Followups  []string `json:"followups"`
	Scriptures []string `json:"scriptures"`
	Talks      []string `json:"talks"`
}

// Insights is the longitudinal result over a person's visit history
type Insights struct {
	Patterns    []string `json:"patterns"`
	Suggestions []string `json:"suggestions"`
}

// TranscriptEntry is one dated transcript fed into insight generation
type TranscriptEntry struct {
	Transcript string
	Date       time.Time
}

// Analyzer produces summaries and longitudinal insights from transcripts
type Analyzer interface {
	Analyze(ctx context.Context, transcript string) (*EntryAnalysis, error)
	GenerateInsights(ctx context.Context, entries []TranscriptEntry) (*Insights, error)
}

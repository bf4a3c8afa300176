package service

import (
	"context"

	"fitbot/internal/model"
)

// Extractor is the boundary with the LLM extraction collaborator: it
// turns the full conversation into a raw candidate-field mapping. The
// result is untrusted; the merger normalizes or discards every value.
// Implementations may fail; the orchestrator degrades any failure to an
// empty extraction.
type Extractor interface {
	// Extract derives structured field candidates from the conversation.
	Extract(ctx context.Context, history []model.ChatMessage) (model.Extraction, error)

	// IsEnabled returns whether the extractor is configured and ready
	IsEnabled() bool
}

// Ensure OpenAIClient implements Extractor
var _ Extractor = (*OpenAIClient)(nil)

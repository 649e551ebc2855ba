package service

import "context"

// ChatMessage is one turn in a narrative or chat exchange.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// NarrativeClient generates natural-language text from a prompt exchange.
// The production implementation proxies an external LLM API; callers treat
// failures as a degraded narrative, never as a failed assessment.
type NarrativeClient interface {
	Complete(ctx context.Context, messages []ChatMessage) (string, error)
}

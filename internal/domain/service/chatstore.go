package service

import "context"

// ChatStore keeps per-session chat history for the bot surfaces. Sessions
// expire after an idle TTL; a missing session reads as empty history.
type ChatStore interface {
	Append(ctx context.Context, sessionID string, msg ChatMessage) error
	History(ctx context.Context, sessionID string) ([]ChatMessage, error)
}

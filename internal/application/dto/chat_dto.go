package dto

import "github.com/healthpredict/healthpredict/pkg/constants"

// ChatRequest is one turn of a bot conversation. The session identifier
// is chosen by the client and scopes the rolling history.
type ChatRequest struct {
	SessionID string `json:"session_id" validate:"required,min=1,max=64"`
	Message   string `json:"message" validate:"required,min=1,max=2000"`
	Lang      string `json:"lang" validate:"omitempty"`
}

// Language returns the normalized reply locale for the request.
func (r *ChatRequest) Language() constants.Language {
	return normalizeLanguage(r.Lang)
}

// ChatResponse carries the bot's reply for one turn.
type ChatResponse struct {
	SessionID string `json:"session_id"`
	Reply     string `json:"reply"`
}

// Package narrative proxies narrative generation to an OpenAI-compatible
// chat completion API (OpenRouter by default).
package narrative

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/healthpredict/healthpredict/internal/config"
	"github.com/healthpredict/healthpredict/internal/domain/service"
	"github.com/healthpredict/healthpredict/pkg/constants"
	"github.com/healthpredict/healthpredict/pkg/errors"
	"github.com/healthpredict/healthpredict/pkg/logger"
)

type openRouterClient struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	log        logger.Logger
}

var _ service.NarrativeClient = (*openRouterClient)(nil)

// NewOpenRouterClient creates the chat completion client. The request
// timeout comes from configuration, defaulting to the 30 second bound every
// narrative call carries.
func NewOpenRouterClient(cfg *config.NarrativeConfig, log logger.Logger) service.NarrativeClient {
	timeout := cfg.TimeoutDuration()
	if timeout <= 0 {
		timeout = constants.DefaultNarrativeTimeout
	}
	return &openRouterClient{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

type chatRequest struct {
	Model    string                `json:"model"`
	Messages []service.ChatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Complete sends the exchange to the chat completions endpoint and returns
// the first choice's content.
func (c *openRouterClient) Complete(ctx context.Context, messages []service.ChatMessage) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model:    c.model,
		Messages: messages,
	})
	if err != nil {
		return "", errors.ErrInternal("failed to encode narrative request").WithCause(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", errors.ErrInternal("failed to build narrative request").WithCause(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.ErrUnavailable("narrative service unreachable").WithCause(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", errors.ErrUnavailable("failed to read narrative response").WithCause(err)
	}

	if resp.StatusCode != http.StatusOK {
		c.log.Warn(ctx, "narrative API returned non-200", logger.Fields{
			"status": resp.StatusCode,
		})
		return "", errors.ErrUnavailable(fmt.Sprintf("narrative API status %d", resp.StatusCode))
	}

	var parsed chatResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", errors.ErrUnavailable("narrative response is not valid JSON").WithCause(err)
	}
	if parsed.Error != nil {
		return "", errors.ErrUnavailable("narrative API error: " + parsed.Error.Message)
	}
	if len(parsed.Choices) == 0 {
		return "", errors.ErrUnavailable("narrative response carries no choices")
	}
	return parsed.Choices[0].Message.Content, nil
}

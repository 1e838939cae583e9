package llm

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/sashabaranov/go-openai"

	"github.com/Balerion769/Disaster-Response-Platform/internal/config"
)

// Completer is a single-shot text-completion call against an external
// generative model.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Client talks to Gemini through its OpenAI-compatible endpoint.
type Client struct {
	api    *openai.Client
	model  string
	logger *slog.Logger
}

func NewClient(cfg config.GeminiConfig, logger *slog.Logger) *Client {
	apiCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		apiCfg.BaseURL = cfg.BaseURL
	}
	apiCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	logger.Info("Initializing generative model client",
		slog.String("model", cfg.Model),
		slog.String("base_url", cfg.BaseURL),
	)

	return &Client{
		api:    openai.NewClientWithConfig(apiCfg),
		model:  cfg.Model,
		logger: logger,
	}
}

func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("model returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

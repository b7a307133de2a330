package llm

import (
	"context"
	"strings"
)

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type Request struct {
	Model       string
	Messages    []Message
	Temperature float64
	MaxTokens   int
}

// Client sends one completion request and returns the text of the first
// choice. Implementations never retry.
type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
	Configured() bool
}

const (
	ProviderOpenRouter = "openrouter"
	ProviderGemini     = "gemini"
)

type Config struct {
	Provider string
	BaseURL  string
	APIKey   string
	Model    string
	Referer  string
	AppTitle string

	GeminiAPIKey string
	GeminiModel  string
}

func (c Config) WithDefaults() Config {
	if c.Provider == "" {
		c.Provider = ProviderOpenRouter
	}
	if c.BaseURL == "" {
		c.BaseURL = "https://openrouter.ai/api/v1"
	}
	if c.Model == "" {
		c.Model = "openai/gpt-4-turbo"
	}
	if c.AppTitle == "" {
		c.AppTitle = "NeuroBridge Quiz System"
	}
	if c.GeminiModel == "" {
		c.GeminiModel = "gemini-2.0-flash"
	}
	return c
}

// NewClient picks the provider named in cfg. A provider without a key still
// yields a Client; every call then fails with ErrNotConfigured.
func NewClient(ctx context.Context, cfg Config) (Client, error) {
	cfg = cfg.WithDefaults()
	switch strings.ToLower(cfg.Provider) {
	case ProviderGemini:
		return NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	default:
		return NewChatClient(cfg), nil
	}
}

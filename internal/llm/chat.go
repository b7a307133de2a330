package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/saulo-duarte/neurobridge-lambda/internal/config"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
)

// ChatClient talks to an OpenAI-compatible chat-completions endpoint.
type ChatClient struct {
	baseURL    string
	model      string
	referer    string
	appTitle   string
	configured bool
	httpClient *http.Client
}

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type chatErrorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func NewChatClient(cfg Config) *ChatClient {
	cfg = cfg.WithDefaults()
	c := &ChatClient{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		model:      cfg.Model,
		referer:    cfg.Referer,
		appTitle:   cfg.AppTitle,
		configured: cfg.APIKey != "",
		httpClient: http.DefaultClient,
	}
	if c.configured {
		src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.APIKey, TokenType: "Bearer"})
		c.httpClient = oauth2.NewClient(context.Background(), src)
	}
	return c
}

func (c *ChatClient) Configured() bool {
	return c.configured
}

func (c *ChatClient) Complete(ctx context.Context, req Request) (string, error) {
	log := config.WithContext(ctx).WithField("provider", ProviderOpenRouter)

	if !c.configured {
		return "", notConfigured("OpenRouter")
	}

	model := req.Model
	if model == "" {
		model = c.model
	}

	body, err := json.Marshal(chatRequest{
		Model:       model,
		Messages:    req.Messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("encode chat request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build chat request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.referer != "" {
		httpReq.Header.Set("HTTP-Referer", c.referer)
	}
	httpReq.Header.Set("X-Title", c.appTitle)

	log.WithFields(logrus.Fields{
		"model":      model,
		"messages":   len(req.Messages),
		"max_tokens": req.MaxTokens,
	}).Info("[LLM] Sending chat completion request")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		log.WithError(err).Error("[LLM] Chat completion transport failure")
		return "", &GatewayError{
			Kind:    KindRequestFailed,
			Message: "LLM request could not be sent",
			Hint:    "Check network connectivity to the LLM provider",
			Cause:   err,
		}
	}
	defer resp.Body.Close()

	log.WithField("status", resp.StatusCode).Info("[LLM] Response status received")

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &GatewayError{Kind: KindRequestFailed, Status: resp.StatusCode, Message: "LLM response could not be read", Cause: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errBody chatErrorBody
		_ = json.Unmarshal(raw, &errBody)
		gwErr := Classify(resp.StatusCode, errBody.Error.Message)
		log.WithFields(logrus.Fields{
			"status": resp.StatusCode,
			"kind":   gwErr.Kind,
		}).Warn("[LLM] Chat completion rejected")
		return "", gwErr
	}

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", &GatewayError{Kind: KindRequestFailed, Status: resp.StatusCode, Message: "LLM response is not valid JSON", Cause: err}
	}

	if len(parsed.Choices) == 0 || strings.TrimSpace(parsed.Choices[0].Message.Content) == "" {
		log.Warn("[LLM] Empty completion content")
		return "", emptyResponse()
	}

	content := parsed.Choices[0].Message.Content
	log.WithField("length", len(content)).Info("[LLM] Content extracted")
	return content, nil
}

package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/saulo-duarte/neurobridge-lambda/internal/config"
	"google.golang.org/genai"
)

type GeminiClient struct {
	client *genai.Client
	model  string
}

func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	if apiKey == "" {
		return &GeminiClient{model: model}, nil
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiClient{client: client, model: model}, nil
}

func (g *GeminiClient) Configured() bool {
	return g.client != nil
}

func (g *GeminiClient) Complete(ctx context.Context, req Request) (string, error) {
	log := config.WithContext(ctx).WithField("provider", ProviderGemini)

	if g.client == nil {
		return "", notConfigured("Gemini")
	}

	model := req.Model
	if model == "" || strings.Contains(model, "/") {
		model = g.model
	}

	system, contents := splitMessages(req.Messages)
	temperature := float32(req.Temperature)
	cfg := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: int32(req.MaxTokens),
	}
	if system != "" {
		cfg.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}

	log.WithField("model", model).Info("[LLM] Sending Gemini request")

	result, err := g.client.Models.GenerateContent(ctx, model, contents, cfg)
	if err != nil {
		gwErr := classifyGemini(err)
		log.WithError(err).WithField("kind", gwErr.Kind).Warn("[LLM] Gemini request failed")
		return "", gwErr
	}

	log.Info("[LLM] Gemini response received")

	text := result.Text()
	if strings.TrimSpace(text) == "" {
		log.Warn("[LLM] Empty Gemini content")
		return "", emptyResponse()
	}

	log.WithField("length", len(text)).Info("[LLM] Content extracted")
	return text, nil
}

func splitMessages(msgs []Message) (string, []*genai.Content) {
	var system []string
	var contents []*genai.Content
	for _, m := range msgs {
		switch m.Role {
		case RoleSystem:
			system = append(system, m.Content)
		case RoleAssistant:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleModel))
		default:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleUser))
		}
	}
	return strings.Join(system, "\n\n"), contents
}

func classifyGemini(err error) *GatewayError {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		gwErr := Classify(apiErr.Code, apiErr.Message)
		gwErr.Cause = err
		return gwErr
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		gwErr := Classify(apiErrPtr.Code, apiErrPtr.Message)
		gwErr.Cause = err
		return gwErr
	}
	return &GatewayError{
		Kind:    KindRequestFailed,
		Message: "Gemini request failed",
		Cause:   err,
	}
}

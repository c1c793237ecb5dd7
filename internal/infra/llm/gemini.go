// Package llm adapts hosted text-generation models to the domain TextGenerator.
package llm

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"clientverse/config"
	domainerrors "clientverse/internal/domain/errors"
	"clientverse/internal/domain/service"

	"github.com/pkg/errors"
	"google.golang.org/genai"
)

const jsonMIMEType = "application/json"

type geminiGenerator struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	logger  *slog.Logger
}

// NewGeminiGenerator creates a TextGenerator backed by the Gemini API
func NewGeminiGenerator(ctx context.Context, apiKey, model string, timeout time.Duration, logger *slog.Logger) (service.TextGenerator, error) {
	if apiKey == "" {
		return nil, errors.New("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create GenAI client")
	}

	return &geminiGenerator{
		client:  client,
		model:   model,
		timeout: timeout,
		logger:  logger,
	}, nil
}

// GenerateJSON sends a single prompt in JSON mode and returns the raw response text
func (g *geminiGenerator) GenerateJSON(ctx context.Context, req *service.GenerationRequest) (string, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	contents := []*genai.Content{
		genai.NewContentFromText(req.Prompt, genai.RoleUser),
	}

	started := time.Now()
	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: jsonMIMEType,
		ResponseSchema:   toGenAISchema(req.Schema),
	})
	if err != nil {
		return "", errors.Wrap(err, "gemini generate content")
	}

	text := strings.TrimSpace(resp.Text())
	g.logger.Debug("Gemini response received",
		slog.String("model", g.model),
		slog.Duration("latency", time.Since(started)),
		slog.Int("response_bytes", len(text)),
	)

	if text == "" {
		return "", errors.New("gemini returned an empty response")
	}

	return text, nil
}

// toGenAISchema converts a domain response schema into the Gemini schema type
func toGenAISchema(schema *service.ResponseSchema) *genai.Schema {
	if schema == nil {
		return nil
	}

	out := &genai.Schema{
		Description: schema.Description,
		Required:    schema.Required,
		Items:       toGenAISchema(schema.Items),
	}

	switch schema.Type {
	case service.SchemaObject:
		out.Type = genai.TypeObject
	case service.SchemaArray:
		out.Type = genai.TypeArray
	case service.SchemaString:
		out.Type = genai.TypeString
	}

	if len(schema.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(schema.Properties))
		for name, property := range schema.Properties {
			out.Properties[name] = toGenAISchema(property)
		}
	}

	return out
}

// disabledGenerator fails every call when no model is configured
type disabledGenerator struct{}

func (disabledGenerator) GenerateJSON(context.Context, *service.GenerationRequest) (string, error) {
	return "", domainerrors.ErrModelUnavailable
}

// NewTextGenerator creates the TextGenerator described by cfg.LLM.
// Without an API key the AI flows report the model as unavailable.
func NewTextGenerator(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.TextGenerator, error) {
	if cfg.LLM == nil || cfg.LLM.APIKey == "" {
		logger.Warn("LLM API key not configured, AI flows are disabled")

		return disabledGenerator{}, nil
	}

	logger.Info("Using Gemini text generator", slog.String("model", cfg.LLM.Model))

	return NewGeminiGenerator(ctx, cfg.LLM.APIKey, cfg.LLM.Model, cfg.LLM.Timeout, logger)
}

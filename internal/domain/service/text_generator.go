package service

import (
	"context"
)

// SchemaType is the JSON type of a ResponseSchema node.
type SchemaType string

const (
	SchemaObject SchemaType = "object"
	SchemaArray  SchemaType = "array"
	SchemaString SchemaType = "string"
)

// ResponseSchema describes the structure a model response must follow.
type ResponseSchema struct {
	Type        SchemaType
	Description string
	Properties  map[string]*ResponseSchema
	Required    []string
	Items       *ResponseSchema
}

// GenerationRequest is a single-shot prompt for a hosted model.
type GenerationRequest struct {
	Prompt string
	// Schema constrains the JSON response. Nil requests free-form JSON.
	Schema *ResponseSchema
}

// TextGenerator submits prompts to a hosted text-generation model.
// Calls are single attempts: no retry, no conversation state.
type TextGenerator interface {
	// GenerateJSON returns the model's raw JSON text for req.
	GenerateJSON(ctx context.Context, req *GenerationRequest) (string, error)
}

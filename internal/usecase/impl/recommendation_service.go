package impl

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"

	deliverycontext "clientverse/internal/delivery/context"
	domainerrors "clientverse/internal/domain/errors"
	"clientverse/internal/domain/service"
	"clientverse/internal/errors"
	"clientverse/internal/usecase"
)

//nolint:gochecknoglobals
var recommendationSchema = &service.ResponseSchema{
	Type: service.SchemaObject,
	Properties: map[string]*service.ResponseSchema{
		"insuranceRecommendations": {
			Type:        service.SchemaArray,
			Description: "Recommended insurance products for the client.",
			Items:       &service.ResponseSchema{Type: service.SchemaString},
		},
		"investmentRecommendations": {
			Type:        service.SchemaArray,
			Description: "Recommended investment products for the client.",
			Items:       &service.ResponseSchema{Type: service.SchemaString},
		},
	},
	Required: []string{"insuranceRecommendations", "investmentRecommendations"},
}

type recommendationService struct {
	generator service.TextGenerator
	logger    *slog.Logger
}

// NewRecommendationService creates a new product recommendation service
func NewRecommendationService(generator service.TextGenerator, logger *slog.Logger) usecase.RecommendationUsecase {
	return &recommendationService{
		generator: generator,
		logger:    logger,
	}
}

// GetProductRecommendations takes a client record serialized as JSON
func (srv *recommendationService) GetProductRecommendations(
	ctx context.Context,
	clientData string,
) (*usecase.ProductRecommendations, error) {
	var record map[string]any
	if err := json.Unmarshal([]byte(clientData), &record); err != nil || record == nil {
		return nil, domainerrors.ErrInvalidClientData
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, []byte(clientData)); err != nil {
		return nil, domainerrors.ErrInvalidClientData
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
	logger.Debug("Requesting product recommendations", slog.Int("client_data_bytes", compact.Len()))

	text, err := srv.generator.GenerateJSON(ctx, &service.GenerationRequest{
		Prompt: recommendationPrompt(compact.String()),
		Schema: recommendationSchema,
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrModelUnavailable) {
			return nil, err
		}

		logger.Error("Product recommendation call failed", slog.Any("error", err))

		return nil, domainerrors.NewUpstreamError(err, "generate recommendations")
	}

	result, err := decodeRecommendations(text)
	if err != nil {
		logger.Error("Undecodable recommendation output", slog.Any("error", err))

		return nil, domainerrors.NewUpstreamError(err, "decode recommendations")
	}

	return result, nil
}

// recommendationOutput tells an absent or null list apart from an empty one.
type recommendationOutput struct {
	InsuranceRecommendations  *[]string `json:"insuranceRecommendations"`
	InvestmentRecommendations *[]string `json:"investmentRecommendations"`
}

// decodeRecommendations requires both lists to be present as arrays.
func decodeRecommendations(text string) (*usecase.ProductRecommendations, error) {
	var output *recommendationOutput
	if err := json.Unmarshal([]byte(text), &output); err != nil {
		return nil, errors.WithStack(err)
	}

	if output == nil {
		return nil, errors.New("recommendation output is null")
	}

	if output.InsuranceRecommendations == nil || output.InvestmentRecommendations == nil {
		return nil, errors.New("recommendation output is missing a recommendation list")
	}

	return &usecase.ProductRecommendations{
		InsuranceRecommendations:  nonNil(*output.InsuranceRecommendations),
		InvestmentRecommendations: nonNil(*output.InvestmentRecommendations),
	}, nil
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}

	return items
}

package usecase

import (
	"context"
)

// ProductRecommendations are cross-sell suggestions in model order.
type ProductRecommendations struct {
	InsuranceRecommendations  []string `json:"insuranceRecommendations"`
	InvestmentRecommendations []string `json:"investmentRecommendations"`
}

// AutofillResult holds the proposed values as a JSON object encoded in a string.
type AutofillResult struct {
	AutofilledData string `json:"autofilledData"`
}

// RecommendationUsecase suggests insurance and investment products for a client
type RecommendationUsecase interface {
	// GetProductRecommendations takes a client record serialized as JSON
	GetProductRecommendations(ctx context.Context, clientData string) (*ProductRecommendations, error)
}

// AutofillUsecase proposes values for missing client fields
type AutofillUsecase interface {
	// AutofillData proposes values for missingFields, a comma-separated list of field names.
	// The result is a JSON object whose keys are a subset of those names.
	AutofillData(ctx context.Context, clientName, availableData, missingFields string) (*AutofillResult, error)
}

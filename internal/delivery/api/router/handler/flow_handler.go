package handler

import (
	"log/slog"
	"net/http"

	"clientverse/internal/delivery/api/response"
	"clientverse/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FlowHandlerParams holds dependencies for FlowHandler, injected by Fx.
type FlowHandlerParams struct {
	fx.In

	RecommendationUC usecase.RecommendationUsecase
	AutofillUC       usecase.AutofillUsecase
	Logger           *slog.Logger
}

// FlowHandler exposes the AI flows
type FlowHandler struct {
	recommendationUC usecase.RecommendationUsecase
	autofillUC       usecase.AutofillUsecase
	logger           *slog.Logger
}

// NewFlowHandler is the constructor for FlowHandler
func NewFlowHandler(params FlowHandlerParams) *FlowHandler {
	return &FlowHandler{
		recommendationUC: params.RecommendationUC,
		autofillUC:       params.AutofillUC,
		logger:           params.Logger,
	}
}

// RecommendationRequest carries a client record serialized as JSON
type RecommendationRequest struct {
	ClientData string `json:"clientData" validate:"required"`
}

// AutofillRequest asks the model to fill missingFields for a client
type AutofillRequest struct {
	ClientName    string `json:"clientName" validate:"required"`
	AvailableData string `json:"availableData"`
	MissingFields string `json:"missingFields" validate:"required"`
}

// GetProductRecommendations suggests insurance and investment products
func (h *FlowHandler) GetProductRecommendations(c echo.Context) error {
	var req RecommendationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid recommendation input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	recommendations, err := h.recommendationUC.GetProductRecommendations(c.Request().Context(), req.ClientData)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, recommendations)
}

// AutofillData proposes values for missing client fields
func (h *FlowHandler) AutofillData(c echo.Context) error {
	var req AutofillRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid autofill input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	result, err := h.autofillUC.AutofillData(c.Request().Context(), req.ClientName, req.AvailableData, req.MissingFields)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

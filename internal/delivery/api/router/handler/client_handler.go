package handler

import (
	"log/slog"
	"net/http"

	"clientverse/internal/delivery/api/middleware"
	"clientverse/internal/delivery/api/response"
	"clientverse/internal/domain/schema"
	"clientverse/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const contactCardContentType = "image/png"

// ClientHandlerParams holds dependencies for ClientHandler, injected by Fx.
type ClientHandlerParams struct {
	fx.In

	ClientUC usecase.ClientUsecase
	Logger   *slog.Logger
}

// ClientHandler holds dependencies for client-related handlers
type ClientHandler struct {
	clientUC usecase.ClientUsecase
	logger   *slog.Logger
}

// NewClientHandler is the constructor for ClientHandler
func NewClientHandler(params ClientHandlerParams) *ClientHandler {
	return &ClientHandler{
		clientUC: params.ClientUC,
		logger:   params.Logger,
	}
}

// ClientIDResponse identifies a created or modified client
type ClientIDResponse struct {
	ID string `json:"id"`
}

// ListClients returns the current snapshot, optionally filtered by ?q=
func (h *ClientHandler) ListClients(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var filter usecase.ClientFilter
	if err := c.Bind(&filter); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid query")
	}

	snapshot, err := h.clientUC.ListClients(c.Request().Context(), userID, filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, snapshot)
}

// GetClient returns one client
func (h *ClientHandler) GetClient(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	client, err := h.clientUC.GetClient(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, client)
}

// CreateClient validates and stores a new client
func (h *ClientHandler) CreateClient(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input schema.ClientInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid client input")
	}

	clientID, err := h.clientUC.CreateClient(c.Request().Context(), userID, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, ClientIDResponse{ID: clientID})
}

// UpdateClient validates and merges a client
func (h *ClientHandler) UpdateClient(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	clientID := c.Param("id")

	var input schema.ClientInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid client input")
	}

	if err := h.clientUC.UpdateClient(c.Request().Context(), userID, clientID, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ClientIDResponse{ID: clientID})
}

// DeleteClient removes a client. Deleting a missing client succeeds.
func (h *ClientHandler) DeleteClient(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	clientID := c.Param("id")
	if err := h.clientUC.DeleteClient(c.Request().Context(), userID, clientID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ClientIDResponse{ID: clientID})
}

// GetContactCard returns the client's vCard as a PNG QR code
func (h *ClientHandler) GetContactCard(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	png, err := h.clientUC.GetContactCard(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, contactCardContentType, png)
}

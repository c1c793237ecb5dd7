package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"clientverse/config"
	"clientverse/internal/delivery/api/middleware"
	"clientverse/internal/delivery/api/response"
	deliverycontext "clientverse/internal/delivery/context"
	domainerrors "clientverse/internal/domain/errors"
	"clientverse/internal/domain/entity"
	"clientverse/internal/domain/repository"
	"clientverse/internal/usecase"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	streamWriteWait      = 10 * time.Second
	streamReadLimit      = 512
	defaultStreamPing    = 30 * time.Second
	streamMessageData    = "snapshot"
	streamMessageFailure = "error"
)

// StreamHandlerParams holds dependencies for StreamHandler, injected by Fx.
type StreamHandlerParams struct {
	fx.In

	ClientUC usecase.ClientUsecase
	Config   *config.Config
	Logger   *slog.Logger
}

// StreamHandler pushes live client snapshots over a WebSocket
type StreamHandler struct {
	clientUC     usecase.ClientUsecase
	upgrader     websocket.Upgrader
	pingInterval time.Duration
	logger       *slog.Logger
}

// NewStreamHandler is the constructor for StreamHandler
func NewStreamHandler(params StreamHandlerParams) *StreamHandler {
	pingInterval := defaultStreamPing
	if params.Config.Stream != nil && params.Config.Stream.PingInterval > 0 {
		pingInterval = params.Config.Stream.PingInterval
	}

	return &StreamHandler{
		clientUC: params.ClientUC,
		upgrader: websocket.Upgrader{
			HandshakeTimeout: streamWriteWait,
			ReadBufferSize:   1024,
			WriteBufferSize:  4096,
			Subprotocols:     []string{middleware.BearerSubprotocol},
			// The bearer token authorizes, not the origin.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		pingInterval: pingInterval,
		logger:       params.Logger,
	}
}

// StreamMessage is one frame sent to the subscriber
type StreamMessage struct {
	Type     string                 `json:"type"`
	Snapshot *entity.ClientSnapshot `json:"snapshot,omitempty"`
	Error    *response.ErrorInfo    `json:"error,omitempty"`
}

type streamResult struct {
	snapshot *entity.ClientSnapshot
	err      error
}

// StreamClients upgrades to a WebSocket and pushes every snapshot until the peer disconnects
func (h *StreamHandler) StreamClients(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	ctx, cancel := context.WithCancel(c.Request().Context())
	defer cancel()

	stream, err := h.clientUC.WatchClients(ctx, userID, usecase.ClientFilter{Query: c.QueryParam("q")})
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer stream.Cancel()

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// The upgrader has already replied with an HTTP error.
		h.log(ctx).Debug("WebSocket upgrade failed", slog.Any("error", err))

		return nil
	}
	defer conn.Close()

	h.log(ctx).Info("Client stream opened")

	go h.readPump(conn, cancel)

	results := make(chan streamResult)
	go pumpSnapshots(ctx, stream, results)

	h.writeLoop(ctx, conn, results)

	h.log(ctx).Info("Client stream closed")

	return nil
}

// writeLoop owns every write to conn.
func (h *StreamHandler) writeLoop(ctx context.Context, conn *websocket.Conn, results <-chan streamResult) {
	ticker := time.NewTicker(h.pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			h.writeClose(conn)

			return

		case <-ticker.C:
			deadline := time.Now().Add(streamWriteWait)
			if err := conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
				h.log(ctx).Debug("Ping failed", slog.Any("error", err))

				return
			}

		case res, ok := <-results:
			if !ok {
				return
			}

			if res.err != nil {
				h.writeFailure(ctx, conn, res.err)

				return
			}

			_ = conn.SetWriteDeadline(time.Now().Add(streamWriteWait))
			if err := conn.WriteJSON(StreamMessage{Type: streamMessageData, Snapshot: res.snapshot}); err != nil {
				h.log(ctx).Debug("Snapshot write failed", slog.Any("error", err))

				return
			}
		}
	}
}

func (h *StreamHandler) writeFailure(ctx context.Context, conn *websocket.Conn, err error) {
	if errors.Is(err, repository.ErrSubscriptionClosed) {
		h.writeClose(conn)

		return
	}

	h.log(ctx).Error("Client stream failed", slog.Any("error", err))

	info := &response.ErrorInfo{Code: "STORAGE_READ_FAILED", Message: "Failed to load clients"}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		info = &response.ErrorInfo{Code: appErr.ErrorCode(), Message: appErr.Message()}
	}

	_ = conn.SetWriteDeadline(time.Now().Add(streamWriteWait))
	_ = conn.WriteJSON(StreamMessage{Type: streamMessageFailure, Error: info})
	h.writeClose(conn)
}

func (h *StreamHandler) writeClose(conn *websocket.Conn) {
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(streamWriteWait))
}

// readPump discards inbound frames and cancels the stream when the peer goes away.
func (h *StreamHandler) readPump(conn *websocket.Conn, cancel context.CancelFunc) {
	defer cancel()

	conn.SetReadLimit(streamReadLimit)
	_ = conn.SetReadDeadline(time.Now().Add(2 * h.pingInterval))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(2 * h.pingInterval))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// pumpSnapshots forwards stream results until the stream fails or ctx ends.
func pumpSnapshots(ctx context.Context, stream usecase.ClientStream, results chan<- streamResult) {
	defer close(results)

	for {
		snapshot, err := stream.Next()

		select {
		case results <- streamResult{snapshot: snapshot, err: err}:
		case <-ctx.Done():
			return
		}

		if err != nil {
			return
		}
	}
}

func (h *StreamHandler) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, h.logger)
}

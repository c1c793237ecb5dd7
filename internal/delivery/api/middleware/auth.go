package middleware

import (
	"log/slog"
	"strings"

	"clientverse/internal/delivery/api/response"
	deliverycontext "clientverse/internal/delivery/context"
	"clientverse/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const (
	contextKeyUserID = "userID"
	contextKeyEmail  = "email"
	bearerPrefix     = "Bearer "

	// BearerSubprotocol marks the WebSocket subprotocol entry followed by the token.
	BearerSubprotocol = "bearer"
	// AccessTokenParam carries the token on WebSocket upgrades from browsers.
	AccessTokenParam = "access_token"

	headerWebSocketProtocol = "Sec-WebSocket-Protocol"
)

// AuthMiddleware resolves the bearer token to the caller's user ID.
type AuthMiddleware struct {
	verifier service.IdentityVerifier
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(verifier service.IdentityVerifier, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier, logger: logger}
}

// Authenticate verifies the Authorization header and stores the identity on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		token, ok := strings.CutPrefix(authHeader, bearerPrefix)
		if !ok || strings.TrimSpace(token) == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		return m.verify(c, next, strings.TrimSpace(token))
	}
}

// AuthenticateStream is Authenticate for WebSocket upgrades. Browsers cannot
// set headers on a WebSocket, so without an Authorization header the token is
// taken from the "bearer, <token>" subprotocol pair or the access_token query
// parameter.
func (m *AuthMiddleware) AuthenticateStream(next echo.HandlerFunc) echo.HandlerFunc {
	authenticate := m.Authenticate(next)

	return func(c echo.Context) error {
		req := c.Request()
		if req.Header.Get(echo.HeaderAuthorization) != "" {
			return authenticate(c)
		}

		token := subprotocolToken(req.Header.Values(headerWebSocketProtocol))
		if token == "" {
			token = strings.TrimSpace(c.QueryParam(AccessTokenParam))
		}
		if token == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Access token is missing")
		}

		return m.verify(c, next, token)
	}
}

func (m *AuthMiddleware) verify(c echo.Context, next echo.HandlerFunc, token string) error {
	ctx := c.Request().Context()

	identity, err := m.verifier.VerifyIDToken(ctx, token)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, m.logger).Debug("Rejected bearer token", slog.Any("error", err))

		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
	}

	SetIdentity(c, identity)

	reqLogger := deliverycontext.GetLoggerOrDefault(ctx, m.logger).With(slog.String("user_id", identity.UserID))
	c.SetRequest(c.Request().WithContext(deliverycontext.WithLogger(ctx, reqLogger)))

	return next(c)
}

// subprotocolToken returns the entry after "bearer" in the offered subprotocols.
func subprotocolToken(headers []string) string {
	var protocols []string
	for _, header := range headers {
		for _, protocol := range strings.Split(header, ",") {
			protocols = append(protocols, strings.TrimSpace(protocol))
		}
	}

	for i := 0; i+1 < len(protocols); i++ {
		if strings.EqualFold(protocols[i], BearerSubprotocol) {
			return protocols[i+1]
		}
	}

	return ""
}

// SetIdentity stores the authenticated identity on the echo context.
func SetIdentity(c echo.Context, identity *service.Identity) {
	c.Set(contextKeyUserID, identity.UserID)
	c.Set(contextKeyEmail, identity.Email)
}

// GetUserID returns the authenticated user ID set by Authenticate.
func GetUserID(c echo.Context) (string, bool) {
	userID, ok := c.Get(contextKeyUserID).(string)

	return userID, ok && userID != ""
}

// GetEmail returns the authenticated email, if the provider asserted one.
func GetEmail(c echo.Context) string {
	email, _ := c.Get(contextKeyEmail).(string)

	return email
}

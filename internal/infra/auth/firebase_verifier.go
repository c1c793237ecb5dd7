package auth

import (
	"context"
	"log/slog"

	domainerrors "clientverse/internal/domain/errors"
	"clientverse/internal/domain/service"

	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
)

// tokenVerifier is the subset of the Firebase auth client used for verification.
type tokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*firebaseauth.Token, error)
}

// firebaseVerifier verifies Firebase ID tokens; the token UID is the user ID.
type firebaseVerifier struct {
	client tokenVerifier
	logger *slog.Logger
}

// NewFirebaseVerifier creates an IdentityVerifier over a Firebase auth client
func NewFirebaseVerifier(client *firebaseauth.Client, logger *slog.Logger) service.IdentityVerifier {
	return &firebaseVerifier{client: client, logger: logger}
}

// VerifyIDToken implements service.IdentityVerifier
func (v *firebaseVerifier) VerifyIDToken(ctx context.Context, idToken string) (*service.Identity, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		v.logger.Debug("Firebase ID token rejected", slog.Any("error", err))

		return nil, domainerrors.ErrInvalidToken.WrapMessage(err.Error())
	}

	if token.UID == "" {
		return nil, errors.WithStack(domainerrors.ErrInvalidToken)
	}

	identity := &service.Identity{UserID: token.UID}
	if email, ok := token.Claims["email"].(string); ok {
		identity.Email = email
	}

	return identity, nil
}

package service

import (
	"context"
	"time"
)

// Identity is the authenticated caller as asserted by the identity provider.
type Identity struct {
	UserID string // Partition key for every repository call
	Email  string // Optional, provider-dependent
}

// IdentityVerifier verifies bearer tokens issued by the identity provider.
// Issuing identities is outside this service.
type IdentityVerifier interface {
	// VerifyIDToken verifies a token and returns the identity it asserts.
	VerifyIDToken(ctx context.Context, idToken string) (*Identity, error)
}

// TokenIssuer mints development tokens accepted by the JWT verifier.
type TokenIssuer interface {
	// IssueToken signs a token for userID valid for ttl.
	IssueToken(userID string, ttl time.Duration) (string, error)
}

package usecase

import (
	"context"

	"clientverse/internal/domain/entity"
	"clientverse/internal/domain/schema"
)

// ClientFilter narrows delivered snapshots.
type ClientFilter struct {
	// Query matches clients whose name contains it, ignoring case.
	Query string `json:"q" query:"q"`
}

// ClientStream delivers filtered, decrypted snapshots of a user's clients.
type ClientStream interface {
	// Next blocks until the next snapshot is available.
	Next() (*entity.ClientSnapshot, error)

	// Cancel stops delivery. It is idempotent.
	Cancel()
}

// ClientUsecase defines the interface for client management use cases.
// Every call is scoped to the explicit userID partition.
type ClientUsecase interface {
	// CreateClient validates input and stores a new client, returning its ID
	CreateClient(ctx context.Context, userID string, input *schema.ClientInput) (string, error)

	// UpdateClient validates input and merges it into an existing client
	UpdateClient(ctx context.Context, userID, clientID string, input *schema.ClientInput) error

	// DeleteClient removes a client and all nested data
	DeleteClient(ctx context.Context, userID, clientID string) error

	// WatchClients opens a live stream of snapshots
	WatchClients(ctx context.Context, userID string, filter ClientFilter) (ClientStream, error)

	// ListClients returns the current snapshot
	ListClients(ctx context.Context, userID string, filter ClientFilter) (*entity.ClientSnapshot, error)

	// GetClient returns one client from the current snapshot
	GetClient(ctx context.Context, userID, clientID string) (*entity.Client, error)

	// GetContactCard renders a client's contact card as a PNG QR code
	GetContactCard(ctx context.Context, userID, clientID string) ([]byte, error)
}

// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"clientverse/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for client persistence.
var (
	// ErrClientNotFound is returned when a client does not exist in the user's partition.
	ErrClientNotFound = errors.New("client not found")
	// ErrSubscriptionClosed is returned by Next once a subscription has been cancelled.
	ErrSubscriptionClosed = errors.New("subscription closed")
)

// ClientRepository stores clients under clients/{userID}/userClients/{clientID}.
// There is no read path besides Subscribe.
type ClientRepository interface {
	// Create assigns an ID and the creation/update timestamps, persists the client and returns its ID.
	Create(ctx context.Context, userID string, client *entity.Client) (string, error)

	// Update merges the client's top-level fields into the stored document and stamps the update time.
	// Collections are replaced wholesale. ID, owner and creation time are never written.
	Update(ctx context.Context, userID, clientID string, client *entity.Client) error

	// Delete removes the client and everything it owns. Deleting an absent client is not an error.
	Delete(ctx context.Context, userID, clientID string) error

	// Subscribe starts a live stream of full snapshots of the user's partition.
	// Cancelling ctx cancels the subscription.
	Subscribe(ctx context.Context, userID string) (ClientSubscription, error)
}

// ClientSubscription is a cancelable stream of snapshots.
type ClientSubscription interface {
	// Next blocks until the next snapshot is available.
	// It returns ErrSubscriptionClosed after Cancel.
	Next() (*entity.ClientSnapshot, error)

	// Cancel stops delivery and releases the subscription. It is idempotent.
	Cancel()
}

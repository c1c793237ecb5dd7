package service

import (
	"context"
)

// ClientAction names the mutation that produced a ClientChangedEvent.
type ClientAction string

const (
	ClientCreated ClientAction = "created"
	ClientUpdated ClientAction = "updated"
	ClientDeleted ClientAction = "deleted"
)

// ClientChangedEvent is published after a committed client write
type ClientChangedEvent struct {
	RequestID string       `json:"request_id,omitempty"` // For distributed tracing
	UserID    string       `json:"user_id"`
	ClientID  string       `json:"client_id"`
	Action    ClientAction `json:"action"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishClientChanged publishes a change event for downstream consumers
	PublishClientChanged(ctx context.Context, event *ClientChangedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"clientverse/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

const publishTimeout = 10 * time.Second

// GoogleOptions locates the client-changed topic
type GoogleOptions struct {
	ProjectID       string
	TopicID         string
	CredentialsPath string
}

// googlePubSubPublisher publishes client changes ordered per user. Publish
// results are resolved in the background; Close waits for them.
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
	pending   sync.WaitGroup
}

// NewGooglePubSubPublisher opens the topic and enables per-user message ordering
func NewGooglePubSubPublisher(ctx context.Context, opts GoogleOptions, logger *slog.Logger) (service.EventPublisher, error) {
	var clientOpts []option.ClientOption
	if opts.CredentialsPath != "" {
		clientOpts = append(clientOpts, option.WithCredentialsFile(opts.CredentialsPath))
	}

	client, err := pubsub.NewClient(ctx, opts.ProjectID, clientOpts...)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	publisher, err := newGooglePublisher(ctx, client, opts, logger)
	if err != nil {
		return nil, err
	}

	return publisher, nil
}

// newGooglePublisher takes ownership of client and closes it on failure.
func newGooglePublisher(
	ctx context.Context,
	client *pubsub.Client,
	opts GoogleOptions,
	logger *slog.Logger,
) (*googlePubSubPublisher, error) {
	topicPath := fmt.Sprintf("projects/%s/topics/%s", opts.ProjectID, opts.TopicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topicPath}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", opts.TopicID)
	}

	publisher := client.Publisher(opts.TopicID)
	publisher.EnableMessageOrdering = true

	logger.Info("Google Pub/Sub publisher initialized", slog.String("topic", topicPath))

	return &googlePubSubPublisher{
		client:    client,
		publisher: publisher,
		logger:    logger,
	}, nil
}

// PublishClientChanged queues the event keyed by user and returns without
// waiting for the server ack.
func (p *googlePubSubPublisher) PublishClientChanged(ctx context.Context, event *service.ClientChangedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	result := p.publisher.Publish(ctx, &pubsub.Message{
		Data:        data,
		Attributes:  eventAttributes(event),
		OrderingKey: event.UserID,
	})

	ackCtx := context.WithoutCancel(ctx)
	p.pending.Go(func() {
		p.awaitAck(ackCtx, result, event)
	})

	return nil
}

func (p *googlePubSubPublisher) awaitAck(ctx context.Context, result *pubsub.PublishResult, event *service.ClientChangedEvent) {
	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	logger := p.logger.With(
		slog.String("request_id", event.RequestID),
		slog.String("client_id", event.ClientID),
		slog.String("action", string(event.Action)),
	)

	serverID, err := result.Get(ctx)
	if err != nil {
		// A failed publish pauses its ordering key until resumed.
		p.publisher.ResumePublish(event.UserID)
		logger.Warn("Failed to publish client change", slog.Any("error", err))

		return
	}

	logger.Debug("Client change published", slog.String("server_id", serverID))
}

// Close flushes queued messages, waits for their acks and releases the client
func (p *googlePubSubPublisher) Close() error {
	p.publisher.Stop()
	p.pending.Wait()

	return errors.WithStack(p.client.Close())
}

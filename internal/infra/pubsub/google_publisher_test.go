package pubsub

import (
	"context"
	"encoding/json"
	"testing"

	"clientverse/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"cloud.google.com/go/pubsub/v2/pstest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const (
	testProjectID = "advisor-test"
	testTopicID   = "client-changed"
)

func newFakePubSubClient(t *testing.T, createTopic bool) (*pstest.Server, *pubsub.Client) {
	t.Helper()

	srv := pstest.NewServer()
	t.Cleanup(func() { _ = srv.Close() })

	ctx := context.Background()
	client, err := pubsub.NewClient(ctx, testProjectID,
		option.WithEndpoint(srv.Addr),
		option.WithoutAuthentication(),
		option.WithGRPCDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())),
	)
	require.NoError(t, err)

	if createTopic {
		_, err = client.TopicAdminClient.CreateTopic(ctx, &pubsubpb.Topic{
			Name: "projects/" + testProjectID + "/topics/" + testTopicID,
		})
		require.NoError(t, err)
	}

	return srv, client
}

func TestGooglePublisher_PublishesOrderedByUser(t *testing.T) {
	srv, client := newFakePubSubClient(t, true)

	publisher, err := newGooglePublisher(context.Background(), client,
		GoogleOptions{ProjectID: testProjectID, TopicID: testTopicID}, discardLogger())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	err = publisher.PublishClientChanged(ctx, &service.ClientChangedEvent{
		RequestID: "req-1",
		UserID:    "u1",
		ClientID:  "c1",
		Action:    service.ClientCreated,
	})
	require.NoError(t, err)

	// The ack is awaited after the request context ends.
	cancel()
	require.NoError(t, publisher.Close())

	messages := srv.Messages()
	require.Len(t, messages, 1)
	assert.Equal(t, "u1", messages[0].OrderingKey)
	assert.Equal(t, "c1", messages[0].Attributes["client_id"])
	assert.Equal(t, "created", messages[0].Attributes["action"])

	var event service.ClientChangedEvent
	require.NoError(t, json.Unmarshal(messages[0].Data, &event))
	assert.Equal(t, "req-1", event.RequestID)
}

func TestGooglePublisher_MissingTopic(t *testing.T) {
	_, client := newFakePubSubClient(t, false)

	publisher, err := newGooglePublisher(context.Background(), client,
		GoogleOptions{ProjectID: testProjectID, TopicID: testTopicID}, discardLogger())

	require.Error(t, err)
	assert.Nil(t, publisher)
	assert.Contains(t, err.Error(), testTopicID)
}

package memory

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"clientverse/internal/domain/entity"
	"clientverse/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) *ClientRepository {
	t.Helper()

	repo := NewClientRepository(slog.New(slog.NewTextHandler(io.Discard, nil)))

	// Deterministic, strictly increasing clock.
	var mu sync.Mutex
	current := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	repo.now = func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		current = current.Add(time.Second)

		return current
	}

	t.Cleanup(func() { assert.NoError(t, repo.Close()) })

	return repo
}

func newClient(name string) *entity.Client {
	return &entity.Client{
		ClientName: name,
		Mobiles:    []entity.Mobile{{Value: "98100"}},
		Addresses:  []entity.Address{{Type: entity.AddressPermanent, Value: "Pune"}},
	}
}

func firstSnapshot(t *testing.T, repo *ClientRepository, userID string) *entity.ClientSnapshot {
	t.Helper()

	sub, err := repo.Subscribe(context.Background(), userID)
	require.NoError(t, err)
	defer sub.Cancel()

	snapshot, err := sub.Next()
	require.NoError(t, err)

	return snapshot
}

func TestClientRepository_CreateThenSubscribe(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	id, err := repo.Create(ctx, "u1", newClient("Asha"))
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	snapshot := firstSnapshot(t, repo, "u1")

	require.Len(t, snapshot.Clients, 1)
	client := snapshot.Clients[0]
	assert.Equal(t, id, client.ID)
	assert.Equal(t, "u1", client.UserID)
	assert.Equal(t, "Asha", client.ClientName)
	assert.Equal(t, []entity.Mobile{{Value: "98100"}}, client.Mobiles)
	assert.False(t, client.CreatedAt.IsZero())
	assert.True(t, client.CreatedAt.Equal(client.UpdatedAt))
}

func TestClientRepository_CreateAssignsDistinctIDs(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	first, err := repo.Create(ctx, "u1", newClient("Asha"))
	require.NoError(t, err)
	second, err := repo.Create(ctx, "u1", newClient("Asha"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	snapshot := firstSnapshot(t, repo, "u1")
	require.Len(t, snapshot.Clients, 2)
	assert.Equal(t, first, snapshot.Clients[0].ID, "snapshots are ordered by creation time")
	assert.Equal(t, second, snapshot.Clients[1].ID)
}

func TestClientRepository_CreateRequiresUser(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.Create(context.Background(), "", newClient("Asha"))
	require.Error(t, err)
}

func TestClientRepository_Update_MergesTopLevelFields(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	original := newClient("Asha")
	original.FamilyMembers = []entity.FamilyMember{{Name: "Ravi"}}
	id, err := repo.Create(ctx, "u1", original)
	require.NoError(t, err)

	before := firstSnapshot(t, repo, "u1").Find(id)
	require.NotNil(t, before)

	updated := newClient("Asha Verma")
	updated.Mobiles = []entity.Mobile{}
	updated.FamilyMembers = []entity.FamilyMember{}
	updated.UserID = "someone-else"
	require.NoError(t, repo.Update(ctx, "u1", id, updated))

	after := firstSnapshot(t, repo, "u1").Find(id)
	require.NotNil(t, after)

	assert.Equal(t, "Asha Verma", after.ClientName)
	assert.Empty(t, after.Mobiles, "collections are replaced wholesale")
	assert.Empty(t, after.FamilyMembers)
	assert.Equal(t, "u1", after.UserID, "owner is never rewritten")
	assert.True(t, before.CreatedAt.Equal(after.CreatedAt))
	assert.True(t, after.UpdatedAt.After(before.UpdatedAt))
}

func TestClientRepository_Update_MissingClient(t *testing.T) {
	repo := newTestRepository(t)

	err := repo.Update(context.Background(), "u1", "missing", newClient("Asha"))

	require.ErrorIs(t, err, repository.ErrClientNotFound)
	assert.Empty(t, firstSnapshot(t, repo, "u1").Clients, "a failed update must not create a document")
}

func TestClientRepository_Delete_IsIdempotent(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	id, err := repo.Create(ctx, "u1", newClient("Asha"))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, "u1", id))
	require.NoError(t, repo.Delete(ctx, "u1", id))
	require.NoError(t, repo.Delete(ctx, "u1", "never-existed"))

	assert.Empty(t, firstSnapshot(t, repo, "u1").Clients)
}

func TestClientRepository_PartitionsAreIsolated(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	id, err := repo.Create(ctx, "u1", newClient("Asha"))
	require.NoError(t, err)

	assert.Empty(t, firstSnapshot(t, repo, "u2").Clients)
	require.ErrorIs(t, repo.Update(ctx, "u2", id, newClient("Mallory")), repository.ErrClientNotFound)
	require.NoError(t, repo.Delete(ctx, "u2", id))
	assert.Len(t, firstSnapshot(t, repo, "u1").Clients, 1)
}

func TestClientRepository_Subscribe_DeliversEveryCommittedWrite(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	sub, err := repo.Subscribe(ctx, "u1")
	require.NoError(t, err)
	defer sub.Cancel()

	initial, err := sub.Next()
	require.NoError(t, err)
	assert.Empty(t, initial.Clients)

	id, err := repo.Create(ctx, "u1", newClient("Asha"))
	require.NoError(t, err)

	created, err := sub.Next()
	require.NoError(t, err)
	require.Len(t, created.Clients, 1)

	require.NoError(t, repo.Update(ctx, "u1", id, newClient("Asha Verma")))

	updated, err := sub.Next()
	require.NoError(t, err)
	assert.Equal(t, "Asha Verma", updated.Clients[0].ClientName)

	require.NoError(t, repo.Delete(ctx, "u1", id))

	deleted, err := sub.Next()
	require.NoError(t, err)
	assert.Empty(t, deleted.Clients)
}

func TestClientRepository_Subscribe_SlowReaderSeesLatest(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	sub, err := repo.Subscribe(ctx, "u1")
	require.NoError(t, err)
	defer sub.Cancel()

	for _, name := range []string{"Asha", "Ravi", "Meera"} {
		_, err := repo.Create(ctx, "u1", newClient(name))
		require.NoError(t, err)
	}

	snapshot, err := sub.Next()
	require.NoError(t, err)
	assert.Len(t, snapshot.Clients, 3)
}

func TestClientRepository_Subscribe_OtherUsersWritesAreNotDelivered(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	sub, err := repo.Subscribe(ctx, "u1")
	require.NoError(t, err)
	defer sub.Cancel()

	_, err = sub.Next()
	require.NoError(t, err)

	_, err = repo.Create(ctx, "u2", newClient("Asha"))
	require.NoError(t, err)

	received := make(chan struct{})
	go func() {
		defer close(received)
		_, _ = sub.Next()
	}()

	select {
	case <-received:
		t.Fatal("snapshot delivered for another user's partition")
	case <-time.After(50 * time.Millisecond):
	}

	sub.Cancel()
	<-received
}

func TestClientRepository_Cancel(t *testing.T) {
	repo := newTestRepository(t)

	sub, err := repo.Subscribe(context.Background(), "u1")
	require.NoError(t, err)

	sub.Cancel()
	sub.Cancel()

	_, err = sub.Next()
	require.ErrorIs(t, err, repository.ErrSubscriptionClosed)

	_, err = repo.Create(context.Background(), "u1", newClient("Asha"))
	require.NoError(t, err)

	repo.mu.Lock()
	assert.Empty(t, repo.subscribers)
	repo.mu.Unlock()
}

func TestClientRepository_Cancel_UnblocksNext(t *testing.T) {
	repo := newTestRepository(t)

	sub, err := repo.Subscribe(context.Background(), "u1")
	require.NoError(t, err)

	_, err = sub.Next()
	require.NoError(t, err)

	result := make(chan error, 1)
	go func() {
		_, err := sub.Next()
		result <- err
	}()

	sub.Cancel()

	select {
	case err := <-result:
		require.ErrorIs(t, err, repository.ErrSubscriptionClosed)
	case <-time.After(time.Second):
		t.Fatal("Next did not return after Cancel")
	}
}

func TestClientRepository_ContextCancelClosesSubscription(t *testing.T) {
	repo := newTestRepository(t)
	ctx, cancel := context.WithCancel(context.Background())

	sub, err := repo.Subscribe(ctx, "u1")
	require.NoError(t, err)

	_, err = sub.Next()
	require.NoError(t, err)

	cancel()

	assert.Eventually(t, func() bool {
		repo.mu.Lock()
		defer repo.mu.Unlock()

		return len(repo.subscribers) == 0
	}, time.Second, 10*time.Millisecond)

	_, err = sub.Next()
	require.ErrorIs(t, err, repository.ErrSubscriptionClosed)
}

func TestClientRepository_ConcurrentUpdatesLastWriteWins(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	id, err := repo.Create(ctx, "u1", newClient("Asha"))
	require.NoError(t, err)

	sub, err := repo.Subscribe(ctx, "u1")
	require.NoError(t, err)
	defer sub.Cancel()

	first := newClient("From session one")
	first.Remarks = "one"
	second := newClient("From session two")
	second.Remarks = "two"

	var wg sync.WaitGroup
	for _, client := range []*entity.Client{first, second} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, repo.Update(ctx, "u1", id, client))
		}()
	}
	wg.Wait()

	// The latest delivered snapshot reflects whichever write committed last, never a mix.
	latest, err := sub.Next()
	require.NoError(t, err)
	stored := latest.Find(id)
	require.NotNil(t, stored)

	switch stored.Remarks {
	case "one":
		assert.Equal(t, "From session one", stored.ClientName)
	case "two":
		assert.Equal(t, "From session two", stored.ClientName)
	default:
		t.Fatalf("unexpected remarks %q", stored.Remarks)
	}

	assert.Equal(t, stored.ClientName, firstSnapshot(t, repo, "u1").Find(id).ClientName)
}

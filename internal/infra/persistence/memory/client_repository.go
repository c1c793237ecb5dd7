// Package memory implements the client repository on an in-process document store.
package memory

import (
	"cmp"
	"context"
	"io"
	"log/slog"
	"slices"
	"sync"
	"time"

	"clientverse/internal/domain/constants"
	"clientverse/internal/domain/entity"
	"clientverse/internal/domain/repository"
	"clientverse/internal/errors"
	"clientverse/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gocloud.dev/docstore"
	"gocloud.dev/docstore/memdocstore"
	"gocloud.dev/gcerrors"
)

const keyField = "id"

// ClientRepository keeps one memdocstore collection per user partition.
// Writes are serialized; each committed write pushes the partition's full
// snapshot to every open subscription in commit order.
type ClientRepository struct {
	mu          sync.Mutex
	collections map[string]*docstore.Collection
	subscribers map[string]map[*subscription]struct{}
	now         func() time.Time
	logger      *slog.Logger
}

// NewClientRepository creates an empty in-memory client repository
func NewClientRepository(logger *slog.Logger) *ClientRepository {
	return &ClientRepository{
		collections: make(map[string]*docstore.Collection),
		subscribers: make(map[string]map[*subscription]struct{}),
		now:         func() time.Time { return time.Now().UTC() },
		logger:      logger,
	}
}

// Create assigns an ID and timestamps and stores the client
func (r *ClientRepository) Create(ctx context.Context, userID string, client *entity.Client) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	coll, err := r.collectionLocked(userID)
	if err != nil {
		return "", err
	}

	doc := model.FromClientDomain(client)
	doc.ID = uuid.NewString()
	doc.UserID = userID
	doc.CreatedAt = r.now()
	doc.UpdatedAt = doc.CreatedAt

	if err := coll.Create(ctx, doc); err != nil {
		return "", errors.Wrap(err, "memdocstore create")
	}

	r.publishLocked(ctx, userID)

	return doc.ID, nil
}

// Update overwrites the client's schema-owned top-level fields
func (r *ClientRepository) Update(ctx context.Context, userID, clientID string, client *entity.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	coll, err := r.collectionLocked(userID)
	if err != nil {
		return err
	}

	fields := model.FromClientDomain(client).MergeFields()
	mods := make(docstore.Mods, len(fields)+1)
	for _, field := range fields {
		mods[docstore.FieldPath(field.Path)] = field.Value
	}
	mods["updatedAt"] = r.now()

	if err := coll.Update(ctx, &model.ClientModel{ID: clientID}, mods); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return errors.Wrapf(repository.ErrClientNotFound, "client %s", clientID)
		}

		return errors.Wrap(err, "memdocstore update")
	}

	r.publishLocked(ctx, userID)

	return nil
}

// Delete removes the client. Absent clients are not an error.
func (r *ClientRepository) Delete(ctx context.Context, userID, clientID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	coll, err := r.collectionLocked(userID)
	if err != nil {
		return err
	}

	if err := coll.Delete(ctx, &model.ClientModel{ID: clientID}); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrap(err, "memdocstore delete")
	}

	r.publishLocked(ctx, userID)

	return nil
}

// Subscribe opens a subscription whose first snapshot is the current partition
func (r *ClientRepository) Subscribe(ctx context.Context, userID string) (repository.ClientSubscription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot, err := r.snapshotLocked(ctx, userID)
	if err != nil {
		return nil, err
	}

	sub := newSubscription()
	sub.remove = func() { r.unsubscribe(userID, sub) }
	sub.offer(snapshot)

	if r.subscribers[userID] == nil {
		r.subscribers[userID] = make(map[*subscription]struct{})
	}
	r.subscribers[userID][sub] = struct{}{}

	sub.watch(ctx)

	return sub, nil
}

// Close releases every collection
func (r *ClientRepository) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var errs []error
	for path, coll := range r.collections {
		if err := coll.Close(); err != nil {
			errs = append(errs, errors.Wrapf(err, "close %s", path))
		}
	}
	clear(r.collections)

	return errors.Join(errs...)
}

func (r *ClientRepository) unsubscribe(userID string, sub *subscription) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.subscribers[userID], sub)
	if len(r.subscribers[userID]) == 0 {
		delete(r.subscribers, userID)
	}
}

func (r *ClientRepository) collectionLocked(userID string) (*docstore.Collection, error) {
	if userID == "" {
		return nil, errors.New("user id is required")
	}

	path := partitionPath(userID)
	if coll, ok := r.collections[path]; ok {
		return coll, nil
	}

	coll, err := memdocstore.OpenCollection(keyField, nil)
	if err != nil {
		return nil, errors.Wrap(err, "open memdocstore collection")
	}
	r.collections[path] = coll

	return coll, nil
}

// publishLocked delivers the partition's current snapshot to its subscribers.
func (r *ClientRepository) publishLocked(ctx context.Context, userID string) {
	subs := r.subscribers[userID]
	if len(subs) == 0 {
		return
	}

	snapshot, err := r.snapshotLocked(ctx, userID)
	if err != nil {
		r.logger.Error("Failed to build client snapshot", slog.Any("error", err), slog.String("user_id", userID))

		return
	}

	for sub := range subs {
		sub.offer(snapshot)
	}
}

// snapshotLocked reads the partition ordered by creation time.
// The returned snapshot is shared by subscribers and must not be modified.
func (r *ClientRepository) snapshotLocked(ctx context.Context, userID string) (*entity.ClientSnapshot, error) {
	coll, err := r.collectionLocked(userID)
	if err != nil {
		return nil, err
	}

	iter := coll.Query().Get(ctx)
	defer iter.Stop()

	clients := make([]*entity.Client, 0)
	for {
		var doc model.ClientModel
		err := iter.Next(ctx, &doc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "memdocstore query")
		}

		clients = append(clients, model.ToClientDomain(&doc))
	}

	slices.SortFunc(clients, func(a, b *entity.Client) int {
		return cmp.Or(a.CreatedAt.Compare(b.CreatedAt), cmp.Compare(a.ID, b.ID))
	})

	return &entity.ClientSnapshot{Clients: clients, ReadTime: r.now()}, nil
}

func partitionPath(userID string) string {
	return constants.ClientsCollection + "/" + userID + "/" + constants.UserClientsCollection
}

// Package firestore implements the client repository on Cloud Firestore.
package firestore

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"clientverse/internal/domain/constants"
	"clientverse/internal/domain/entity"
	"clientverse/internal/domain/repository"
	"clientverse/internal/errors"
	"clientverse/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type clientRepository struct {
	client *firestore.Client
	logger *slog.Logger
}

// NewClientRepository creates a new Firestore-backed client repository
func NewClientRepository(client *firestore.Client, logger *slog.Logger) repository.ClientRepository {
	return &clientRepository{
		client: client,
		logger: logger,
	}
}

func (repo *clientRepository) userClients(userID string) *firestore.CollectionRef {
	return repo.client.Collection(constants.ClientsCollection).Doc(userID).Collection(constants.UserClientsCollection)
}

// Create stores the client under a generated document ID with server timestamps
func (repo *clientRepository) Create(ctx context.Context, userID string, client *entity.Client) (string, error) {
	if userID == "" {
		return "", errors.New("user id is required")
	}

	ref := repo.userClients(userID).NewDoc()

	doc := model.FromClientDomain(client)
	doc.UserID = userID
	// Zero timestamps are filled in by the server.
	doc.CreatedAt = time.Time{}
	doc.UpdatedAt = time.Time{}

	if _, err := ref.Create(ctx, doc); err != nil {
		return "", errors.Wrap(err, "firestore create")
	}

	return ref.ID, nil
}

// Update writes every schema-owned top-level field and refreshes updatedAt
func (repo *clientRepository) Update(ctx context.Context, userID, clientID string, client *entity.Client) error {
	fields := model.FromClientDomain(client).MergeFields()

	updates := make([]firestore.Update, 0, len(fields)+1)
	for _, field := range fields {
		updates = append(updates, firestore.Update{Path: field.Path, Value: field.Value})
	}
	updates = append(updates, firestore.Update{Path: "updatedAt", Value: firestore.ServerTimestamp})

	_, err := repo.userClients(userID).Doc(clientID).Update(ctx, updates)

	return updateError(err, clientID)
}

// updateError maps a failed update on an absent document to ErrClientNotFound.
func updateError(err error, clientID string) error {
	if err == nil {
		return nil
	}

	if status.Code(err) == codes.NotFound {
		return errors.Wrapf(repository.ErrClientNotFound, "client %s", clientID)
	}

	return errors.Wrap(err, "firestore update")
}

// Delete removes the client document. Firestore treats deleting an absent document as success.
func (repo *clientRepository) Delete(ctx context.Context, userID, clientID string) error {
	if _, err := repo.userClients(userID).Doc(clientID).Delete(ctx); err != nil {
		return errors.Wrap(err, "firestore delete")
	}

	return nil
}

// Subscribe listens to the user's whole partition. Snapshots are ordered by
// creation time in process, since a query OrderBy would drop documents
// without createdAt.
func (repo *clientRepository) Subscribe(ctx context.Context, userID string) (repository.ClientSubscription, error) {
	if userID == "" {
		return nil, errors.New("user id is required")
	}

	ctx, cancel := context.WithCancel(ctx)
	it := repo.userClients(userID).Snapshots(ctx)

	return &snapshotSubscription{
		ctx:    ctx,
		cancel: cancel,
		it:     it,
		logger: repo.logger,
	}, nil
}

// snapshotSubscription adapts a query snapshot iterator. Next and Stop are
// serialized by mu because the iterator does not allow them to overlap.
type snapshotSubscription struct {
	ctx    context.Context
	cancel context.CancelFunc
	once   sync.Once

	mu     sync.Mutex
	it     *firestore.QuerySnapshotIterator
	logger *slog.Logger
}

func (s *snapshotSubscription) Next() (*entity.ClientSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ctx.Err() != nil {
		return nil, repository.ErrSubscriptionClosed
	}

	snap, err := s.it.Next()
	if err != nil {
		if errors.Is(err, iterator.Done) || status.Code(err) == codes.Canceled || s.ctx.Err() != nil {
			return nil, repository.ErrSubscriptionClosed
		}

		return nil, errors.Wrap(err, "firestore snapshot")
	}

	docs, err := snap.Documents.GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "firestore snapshot documents")
	}

	documents := make([]clientDocument, len(docs))
	for i, doc := range docs {
		documents[i] = snapshotDocument{doc}
	}

	return toClientSnapshot(documents, snap.ReadTime, s.logger), nil
}

func (s *snapshotSubscription) Cancel() {
	s.once.Do(func() {
		s.cancel()

		s.mu.Lock()
		defer s.mu.Unlock()
		s.it.Stop()
	})
}

// clientDocument is the part of a document snapshot that decoding needs.
type clientDocument interface {
	ID() string
	DataTo(p any) error
}

type snapshotDocument struct {
	*firestore.DocumentSnapshot
}

func (d snapshotDocument) ID() string {
	return d.Ref.ID
}

// toClientSnapshot decodes documents ordered by createdAt, then ID. Documents
// that fail to decode are logged and skipped.
func toClientSnapshot(docs []clientDocument, readTime time.Time, logger *slog.Logger) *entity.ClientSnapshot {
	clients := make([]*entity.Client, 0, len(docs))
	for _, doc := range docs {
		var data model.ClientModel
		if err := doc.DataTo(&data); err != nil {
			logger.Warn("Skipping undecodable client document",
				slog.Any("error", err), slog.String("client_id", doc.ID()))

			continue
		}
		data.ID = doc.ID()

		clients = append(clients, model.ToClientDomain(&data))
	}

	slices.SortStableFunc(clients, func(a, b *entity.Client) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}

		return cmp.Compare(a.ID, b.ID)
	})

	return &entity.ClientSnapshot{Clients: clients, ReadTime: readTime}
}

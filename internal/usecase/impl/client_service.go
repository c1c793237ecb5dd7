package impl

import (
	"context"
	"log/slog"

	deliverycontext "clientverse/internal/delivery/context"
	"clientverse/internal/domain/entity"
	domainerrors "clientverse/internal/domain/errors"
	"clientverse/internal/domain/repository"
	"clientverse/internal/domain/schema"
	"clientverse/internal/domain/service"
	"clientverse/internal/errors"
	"clientverse/internal/usecase"
)

type clientService struct {
	clientRepo     repository.ClientRepository
	cipher         service.FieldCipher
	contactCardSvc service.ContactCardService
	publisher      service.EventPublisher
	logger         *slog.Logger
}

// NewClientService creates a new client service
func NewClientService(
	clientRepo repository.ClientRepository,
	cipher service.FieldCipher,
	contactCardSvc service.ContactCardService,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.ClientUsecase {
	return &clientService{
		clientRepo:     clientRepo,
		cipher:         cipher,
		contactCardSvc: contactCardSvc,
		publisher:      publisher,
		logger:         logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *clientService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateClient validates input and stores a new client, returning its ID
func (srv *clientService) CreateClient(ctx context.Context, userID string, input *schema.ClientInput) (string, error) {
	client, err := srv.prepare(userID, input)
	if err != nil {
		return "", err
	}

	clientID, err := srv.clientRepo.Create(ctx, userID, client)
	if err != nil {
		srv.log(ctx).Error("Failed to create client", slog.Any("error", err), slog.String("user_id", userID))

		return "", domainerrors.NewWriteError(err, "create client")
	}

	srv.log(ctx).Info("Client created", slog.String("user_id", userID), slog.String("client_id", clientID))
	srv.publish(ctx, service.ClientCreated, userID, clientID)

	return clientID, nil
}

// UpdateClient validates input and merges it into an existing client
func (srv *clientService) UpdateClient(ctx context.Context, userID, clientID string, input *schema.ClientInput) error {
	client, err := srv.prepare(userID, input)
	if err != nil {
		return err
	}

	if err := srv.clientRepo.Update(ctx, userID, clientID, client); err != nil {
		if errors.Is(err, repository.ErrClientNotFound) {
			return domainerrors.ErrClientNotFound.WithDetails(clientID)
		}

		srv.log(ctx).Error("Failed to update client",
			slog.Any("error", err), slog.String("user_id", userID), slog.String("client_id", clientID))

		return domainerrors.NewWriteError(err, "update client")
	}

	srv.log(ctx).Info("Client updated", slog.String("user_id", userID), slog.String("client_id", clientID))
	srv.publish(ctx, service.ClientUpdated, userID, clientID)

	return nil
}

// DeleteClient removes a client and all nested data
func (srv *clientService) DeleteClient(ctx context.Context, userID, clientID string) error {
	if err := srv.clientRepo.Delete(ctx, userID, clientID); err != nil {
		srv.log(ctx).Error("Failed to delete client",
			slog.Any("error", err), slog.String("user_id", userID), slog.String("client_id", clientID))

		return domainerrors.NewWriteError(err, "delete client")
	}

	srv.log(ctx).Info("Client deleted", slog.String("user_id", userID), slog.String("client_id", clientID))
	srv.publish(ctx, service.ClientDeleted, userID, clientID)

	return nil
}

// WatchClients opens a live stream of snapshots
func (srv *clientService) WatchClients(
	ctx context.Context,
	userID string,
	filter usecase.ClientFilter,
) (usecase.ClientStream, error) {
	sub, err := srv.clientRepo.Subscribe(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to subscribe to clients", slog.Any("error", err), slog.String("user_id", userID))

		return nil, domainerrors.NewReadError(err, "subscribe")
	}

	srv.log(ctx).Debug("Client subscription opened", slog.String("user_id", userID))

	return &clientStream{
		sub:    sub,
		cipher: srv.cipher,
		query:  filter.Query,
		logger: srv.log(ctx),
	}, nil
}

// ListClients returns the current snapshot
func (srv *clientService) ListClients(
	ctx context.Context,
	userID string,
	filter usecase.ClientFilter,
) (*entity.ClientSnapshot, error) {
	stream, err := srv.WatchClients(ctx, userID, filter)
	if err != nil {
		return nil, err
	}
	defer stream.Cancel()

	return stream.Next()
}

// GetClient returns one client from the current snapshot
func (srv *clientService) GetClient(ctx context.Context, userID, clientID string) (*entity.Client, error) {
	snapshot, err := srv.ListClients(ctx, userID, usecase.ClientFilter{})
	if err != nil {
		return nil, err
	}

	client := snapshot.Find(clientID)
	if client == nil {
		return nil, domainerrors.ErrClientNotFound.WithDetails(clientID)
	}

	return client, nil
}

// GetContactCard renders a client's contact card as a PNG QR code
func (srv *clientService) GetContactCard(ctx context.Context, userID, clientID string) ([]byte, error) {
	client, err := srv.GetClient(ctx, userID, clientID)
	if err != nil {
		return nil, err
	}

	png, err := srv.contactCardSvc.GenerateContactCardQR(client)
	if err != nil {
		srv.log(ctx).Error("Failed to render contact card", slog.Any("error", err), slog.String("client_id", clientID))

		return nil, domainerrors.ErrInternalError.WrapMessage(err.Error())
	}

	return png, nil
}

// prepare validates input and seals sensitive fields for storage.
func (srv *clientService) prepare(userID string, input *schema.ClientInput) (*entity.Client, error) {
	client, err := schema.Validate(input)
	if err != nil {
		return nil, err
	}

	client.UserID = userID

	sealed, err := srv.cipher.Seal(client.IncomeTaxPassword)
	if err != nil {
		return nil, errors.Wrap(err, "seal income tax password")
	}

	client.IncomeTaxPassword = sealed

	return client, nil
}

func (srv *clientService) publish(ctx context.Context, action service.ClientAction, userID, clientID string) {
	event := &service.ClientChangedEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		UserID:    userID,
		ClientID:  clientID,
		Action:    action,
	}

	if err := srv.publisher.PublishClientChanged(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish client change",
			slog.Any("error", err), slog.String("client_id", clientID), slog.String("action", string(action)))
	}
}

// clientStream opens sealed fields and applies the name filter to each snapshot.
type clientStream struct {
	sub    repository.ClientSubscription
	cipher service.FieldCipher
	query  string
	logger *slog.Logger
}

func (s *clientStream) Next() (*entity.ClientSnapshot, error) {
	snapshot, err := s.sub.Next()
	if err != nil {
		if errors.Is(err, repository.ErrSubscriptionClosed) {
			return nil, err
		}

		return nil, domainerrors.NewReadError(err, "next snapshot")
	}

	clients := make([]*entity.Client, 0, len(snapshot.Clients))
	for _, stored := range snapshot.Clients {
		client := *stored

		opened, err := s.cipher.Open(client.IncomeTaxPassword)
		if err != nil {
			s.logger.Warn("Failed to open income tax password", slog.Any("error", err), slog.String("client_id", client.ID))

			opened = ""
		}

		client.IncomeTaxPassword = opened
		clients = append(clients, &client)
	}

	opened := &entity.ClientSnapshot{Clients: clients, ReadTime: snapshot.ReadTime}

	return opened.FilterByName(s.query), nil
}

func (s *clientStream) Cancel() {
	s.sub.Cancel()
}

package impl

import (
	"context"
	"encoding/json"
	"log/slog"

	deliverycontext "clientverse/internal/delivery/context"
	domainerrors "clientverse/internal/domain/errors"
	"clientverse/internal/domain/service"
	"clientverse/internal/errors"
	"clientverse/internal/usecase"
)

type autofillService struct {
	generator service.TextGenerator
	logger    *slog.Logger
}

// NewAutofillService creates a new data autofill service
func NewAutofillService(generator service.TextGenerator, logger *slog.Logger) usecase.AutofillUsecase {
	return &autofillService{
		generator: generator,
		logger:    logger,
	}
}

// AutofillData proposes values for missingFields and returns them as a JSON object string.
// Keys the model adds beyond the requested fields are dropped.
func (srv *autofillService) AutofillData(
	ctx context.Context,
	clientName, availableData, missingFields string,
) (*usecase.AutofillResult, error) {
	fields := splitFields(missingFields)
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
	logger.Debug("Requesting autofill", slog.Any("fields", fields))

	text, err := srv.generator.GenerateJSON(ctx, &service.GenerationRequest{
		Prompt: autofillPrompt(clientName, availableData, fields),
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrModelUnavailable) {
			return nil, err
		}

		logger.Error("Autofill call failed", slog.Any("error", err))

		return nil, domainerrors.NewUpstreamError(err, "generate autofill")
	}

	var proposed map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &proposed); err != nil || proposed == nil {
		if err == nil {
			err = errors.New("model returned null")
		}

		logger.Error("Autofill output is not a JSON object", slog.Any("error", err))

		return nil, domainerrors.NewUpstreamError(err, "decode autofill")
	}

	filled := make(map[string]json.RawMessage, len(fields))
	for _, field := range fields {
		if value, ok := proposed[field]; ok {
			filled[field] = value
		}
	}

	encoded, err := json.Marshal(filled)
	if err != nil {
		return nil, domainerrors.NewUpstreamError(err, "encode autofill")
	}

	return &usecase.AutofillResult{AutofilledData: string(encoded)}, nil
}

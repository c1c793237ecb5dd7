package impl

import (
	"io"
	"log/slog"
	"testing"

	mockService "clientverse/internal/mocks/service"

	"github.com/stretchr/testify/mock"
)

// newDiscardLogger creates a logger that discards all output, used in tests
func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newPassthroughCipher returns a cipher mock that tags sealed values so tests can see the round trip.
func newPassthroughCipher(t *testing.T) *mockService.MockFieldCipher {
	cipher := mockService.NewMockFieldCipher(t)
	cipher.EXPECT().Seal(mock.AnythingOfType("string")).
		RunAndReturn(func(plaintext string) (string, error) {
			if plaintext == "" {
				return "", nil
			}

			return "sealed:" + plaintext, nil
		}).Maybe()
	cipher.EXPECT().Open(mock.AnythingOfType("string")).
		RunAndReturn(func(sealed string) (string, error) {
			if len(sealed) > len("sealed:") && sealed[:len("sealed:")] == "sealed:" {
				return sealed[len("sealed:"):], nil
			}

			return sealed, nil
		}).Maybe()

	return cipher
}

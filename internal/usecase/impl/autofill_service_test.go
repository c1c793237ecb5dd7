package impl

import (
	"context"
	"testing"

	domainerrors "clientverse/internal/domain/errors"
	"clientverse/internal/domain/service"
	"clientverse/internal/errors"
	mockService "clientverse/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAutofillService_AutofillData_Success(t *testing.T) {
	generator := mockService.NewMockTextGenerator(t)
	srv := NewAutofillService(generator, newDiscardLogger())
	ctx := context.Background()

	generator.EXPECT().
		GenerateJSON(ctx, mock.AnythingOfType("*service.GenerationRequest")).
		Run(func(_ context.Context, req *service.GenerationRequest) {
			assert.Contains(t, req.Prompt, "The client's name is Asha Verma.")
			assert.Contains(t, req.Prompt, "PAN: ABCDE1234F")
			assert.Contains(t, req.Prompt, "aadhar, passportNo")
			assert.Nil(t, req.Schema)
		}).
		Return(`{"aadhar":"1234 5678 9012","passportNo":"","email":"asha@example.com"}`, nil)

	result, err := srv.AutofillData(ctx, "Asha Verma", "PAN: ABCDE1234F", " aadhar , passportNo,aadhar")

	require.NoError(t, err)
	assert.JSONEq(t, `{"aadhar":"1234 5678 9012","passportNo":""}`, result.AutofilledData)
}

func TestAutofillService_AutofillData_EmptyObject(t *testing.T) {
	generator := mockService.NewMockTextGenerator(t)
	srv := NewAutofillService(generator, newDiscardLogger())

	generator.EXPECT().GenerateJSON(mock.Anything, mock.Anything).Return(`{}`, nil)

	result, err := srv.AutofillData(context.Background(), "Asha", "", "aadhar")

	require.NoError(t, err)
	assert.JSONEq(t, `{}`, result.AutofilledData)
}

func TestAutofillService_AutofillData_UpstreamFailures(t *testing.T) {
	tests := []struct {
		name string
		text string
		err  error
	}{
		{name: "model error", err: errors.New("deadline exceeded")},
		{name: "prose", text: "Sure! The aadhar is 1234."},
		{name: "array", text: `["aadhar"]`},
		{name: "null", text: "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			generator := mockService.NewMockTextGenerator(t)
			srv := NewAutofillService(generator, newDiscardLogger())

			generator.EXPECT().GenerateJSON(mock.Anything, mock.Anything).Return(tt.text, tt.err)

			result, err := srv.AutofillData(context.Background(), "Asha", "PAN: X", "aadhar")

			assert.Nil(t, result)

			var upstreamErr *domainerrors.UpstreamError
			require.ErrorAs(t, err, &upstreamErr)
			assert.Equal(t, "UPSTREAM_FAILED", upstreamErr.ErrorCode())
		})
	}
}

func TestSplitFields(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitFields(" a,, b ,a,"))
	assert.Empty(t, splitFields(""))
}

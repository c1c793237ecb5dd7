package handler

import (
	"net/http"
	"testing"

	domainerrors "clientverse/internal/domain/errors"
	usecasemocks "clientverse/internal/mocks/usecase"
	"clientverse/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type flowHandlerFixture struct {
	handler        *FlowHandler
	recommendation *usecasemocks.MockRecommendationUsecase
	autofill       *usecasemocks.MockAutofillUsecase
}

func newFlowHandlerFixture(t *testing.T) *flowHandlerFixture {
	t.Helper()

	f := &flowHandlerFixture{
		recommendation: usecasemocks.NewMockRecommendationUsecase(t),
		autofill:       usecasemocks.NewMockAutofillUsecase(t),
	}
	f.handler = NewFlowHandler(FlowHandlerParams{
		RecommendationUC: f.recommendation,
		AutofillUC:       f.autofill,
		Logger:           newDiscardLogger(),
	})

	return f
}

func TestFlowHandler_GetProductRecommendations(t *testing.T) {
	f := newFlowHandlerFixture(t)

	f.recommendation.EXPECT().
		GetProductRecommendations(mock.Anything, `{"clientName":"Asha"}`).
		Return(&usecase.ProductRecommendations{
			InsuranceRecommendations:  []string{"Term life"},
			InvestmentRecommendations: []string{},
		}, nil).
		Once()

	c, rec := newTestContext(http.MethodPost, "/api/v1/flows/getProductRecommendations",
		`{"clientData":"{\"clientName\":\"Asha\"}"}`)

	require.NoError(t, f.handler.GetProductRecommendations(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"insuranceRecommendations":["Term life"],"investmentRecommendations":[]}`,
		string(decodeEnvelope(t, rec).Data))
}

func TestFlowHandler_GetProductRecommendations_Errors(t *testing.T) {
	tests := []struct {
		name       string
		ucErr      error
		wantStatus int
		wantCode   string
	}{
		{name: "invalid client data", ucErr: domainerrors.ErrInvalidClientData, wantStatus: http.StatusBadRequest, wantCode: "INVALID_INPUT"},
		{
			name:       "upstream failure",
			ucErr:      domainerrors.NewUpstreamError(errors.New("deadline exceeded"), "generate"),
			wantStatus: http.StatusBadGateway,
			wantCode:   "UPSTREAM_FAILED",
		},
		{name: "model unavailable", ucErr: domainerrors.ErrModelUnavailable, wantStatus: http.StatusServiceUnavailable, wantCode: "MODEL_UNAVAILABLE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFlowHandlerFixture(t)

			f.recommendation.EXPECT().
				GetProductRecommendations(mock.Anything, "not json").
				Return(nil, tt.ucErr).
				Once()

			c, rec := newTestContext(http.MethodPost, "/api/v1/flows/getProductRecommendations", `{"clientData":"not json"}`)

			require.NoError(t, f.handler.GetProductRecommendations(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, decodeEnvelope(t, rec).Error.Code)
		})
	}
}

func TestFlowHandler_GetProductRecommendations_MissingClientData(t *testing.T) {
	f := newFlowHandlerFixture(t)

	c, rec := newTestContext(http.MethodPost, "/api/v1/flows/getProductRecommendations", `{}`)

	require.NoError(t, f.handler.GetProductRecommendations(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decodeEnvelope(t, rec).Error.Code)
}

func TestFlowHandler_AutofillData(t *testing.T) {
	f := newFlowHandlerFixture(t)

	f.autofill.EXPECT().
		AutofillData(mock.Anything, "Asha Verma", "pan: ABCDE1234F", "aadhar, passportNo").
		Return(&usecase.AutofillResult{AutofilledData: `{"aadhar":"1234"}`}, nil).
		Once()

	body := `{"clientName":"Asha Verma","availableData":"pan: ABCDE1234F","missingFields":"aadhar, passportNo"}`
	c, rec := newTestContext(http.MethodPost, "/api/v1/flows/autofillData", body)

	require.NoError(t, f.handler.AutofillData(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"autofilledData":"{\"aadhar\":\"1234\"}"}`, string(decodeEnvelope(t, rec).Data))
}

func TestFlowHandler_AutofillData_Validation(t *testing.T) {
	f := newFlowHandlerFixture(t)

	c, rec := newTestContext(http.MethodPost, "/api/v1/flows/autofillData", `{"clientName":"Asha"}`)

	require.NoError(t, f.handler.AutofillData(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

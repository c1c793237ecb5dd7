package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"clientverse/internal/domain/entity"
	domainerrors "clientverse/internal/domain/errors"
	"clientverse/internal/domain/schema"
	usecasemocks "clientverse/internal/mocks/usecase"
	"clientverse/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newClientHandler(t *testing.T) (*ClientHandler, *usecasemocks.MockClientUsecase) {
	t.Helper()

	clientUC := usecasemocks.NewMockClientUsecase(t)

	return NewClientHandler(ClientHandlerParams{ClientUC: clientUC, Logger: newDiscardLogger()}), clientUC
}

func TestClientHandler_ListClients(t *testing.T) {
	h, clientUC := newClientHandler(t)
	snapshot := &entity.ClientSnapshot{Clients: []*entity.Client{{ID: "c1", ClientName: "Asha Verma"}}}

	clientUC.EXPECT().
		ListClients(mock.Anything, testUserID, usecase.ClientFilter{Query: "ash"}).
		Return(snapshot, nil).
		Once()

	c, rec := newTestContext(http.MethodGet, "/api/v1/clients?q=ash", "")
	require.NoError(t, h.ListClients(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var got entity.ClientSnapshot
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &got))
	require.Len(t, got.Clients, 1)
	assert.Equal(t, "Asha Verma", got.Clients[0].ClientName)
}

func TestClientHandler_ListClients_Unauthenticated(t *testing.T) {
	h, _ := newClientHandler(t)

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/clients", nil), rec)

	require.NoError(t, h.ListClients(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestClientHandler_GetClient_NotFound(t *testing.T) {
	h, clientUC := newClientHandler(t)

	clientUC.EXPECT().
		GetClient(mock.Anything, testUserID, "missing").
		Return(nil, domainerrors.ErrClientNotFound.WithDetails("missing")).
		Once()

	c, rec := newTestContext(http.MethodGet, "/api/v1/clients/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	require.NoError(t, h.GetClient(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "CLIENT_NOT_FOUND", decodeEnvelope(t, rec).Error.Code)
}

func TestClientHandler_CreateClient(t *testing.T) {
	h, clientUC := newClientHandler(t)

	clientUC.EXPECT().
		CreateClient(mock.Anything, testUserID, mock.MatchedBy(func(in *schema.ClientInput) bool {
			return in.ClientName == "Asha Verma" && len(in.Mobiles) == 1 && in.MutualFunds[0].AMC == "HDFC"
		})).
		Return("c1", nil).
		Once()

	body := `{"clientName":"Asha Verma","mobiles":[{"value":"98100"}],"mutualFundInvestments":[{"amc":"HDFC","folio":"1","units":"10","nav":"101.2","investmentAmount":"1000"}]}`
	c, rec := newTestContext(http.MethodPost, "/api/v1/clients", body)

	require.NoError(t, h.CreateClient(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":"c1"}`, string(decodeEnvelope(t, rec).Data))
}

func TestClientHandler_CreateClient_ValidationFailure(t *testing.T) {
	h, clientUC := newClientHandler(t)

	clientUC.EXPECT().
		CreateClient(mock.Anything, testUserID, mock.Anything).
		Return("", domainerrors.NewValidationError([]domainerrors.FieldError{
			{Field: "clientName", Message: "Client name must be at least 2 characters."},
		})).
		Once()

	c, rec := newTestContext(http.MethodPost, "/api/v1/clients", `{"clientName":"A"}`)

	require.NoError(t, h.CreateClient(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.JSONEq(t,
		`[{"field":"clientName","message":"Client name must be at least 2 characters."}]`,
		string(env.Error.Details))
}

func TestClientHandler_CreateClient_MalformedBody(t *testing.T) {
	h, _ := newClientHandler(t)

	c, rec := newTestContext(http.MethodPost, "/api/v1/clients", `{"clientName":`)

	require.NoError(t, h.CreateClient(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", decodeEnvelope(t, rec).Error.Code)
}

func TestClientHandler_UpdateClient(t *testing.T) {
	tests := []struct {
		name       string
		ucErr      error
		wantStatus int
	}{
		{name: "success", wantStatus: http.StatusOK},
		{name: "missing client", ucErr: domainerrors.ErrClientNotFound, wantStatus: http.StatusNotFound},
		{
			name:       "storage failure",
			ucErr:      domainerrors.NewWriteError(errors.New("unavailable"), "update client"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, clientUC := newClientHandler(t)

			clientUC.EXPECT().
				UpdateClient(mock.Anything, testUserID, "c1", mock.Anything).
				Return(tt.ucErr).
				Once()

			c, rec := newTestContext(http.MethodPut, "/api/v1/clients/c1", `{"clientName":"Asha"}`)
			c.SetParamNames("id")
			c.SetParamValues("c1")

			require.NoError(t, h.UpdateClient(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestClientHandler_DeleteClient(t *testing.T) {
	h, clientUC := newClientHandler(t)

	clientUC.EXPECT().DeleteClient(mock.Anything, testUserID, "c1").Return(nil).Once()

	c, rec := newTestContext(http.MethodDelete, "/api/v1/clients/c1", "")
	c.SetParamNames("id")
	c.SetParamValues("c1")

	require.NoError(t, h.DeleteClient(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestClientHandler_GetContactCard(t *testing.T) {
	h, clientUC := newClientHandler(t)
	png := []byte{0x89, 'P', 'N', 'G'}

	clientUC.EXPECT().GetContactCard(mock.Anything, testUserID, "c1").Return(png, nil).Once()

	c, rec := newTestContext(http.MethodGet, "/api/v1/clients/c1/contact-card.png", "")
	c.SetParamNames("id")
	c.SetParamValues("c1")

	require.NoError(t, h.GetContactCard(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

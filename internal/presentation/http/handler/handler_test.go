package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/sangkips/marketplace-api/internal/application/service"
	"github.com/sangkips/marketplace-api/internal/config"
	"github.com/sangkips/marketplace-api/internal/domain/entity"
	"github.com/sangkips/marketplace-api/internal/domain/enum"
	"github.com/sangkips/marketplace-api/internal/domain/repository"
	"github.com/sangkips/marketplace-api/pkg/apperror"
	"github.com/sangkips/marketplace-api/pkg/money"
)

type stubListingAPI struct {
	listing *entity.Listing
	err     error
	token   string
}

func (s *stubListingAPI) ShowListing(ctx context.Context, id, accessToken string) (*entity.Listing, error) {
	s.token = accessToken
	return s.listing, s.err
}

func (s *stubListingAPI) ShowOwnListing(ctx context.Context, id, accessToken string) (*entity.Listing, error) {
	return s.ShowListing(ctx, id, accessToken)
}

type stubExchanger struct{}

func (s *stubExchanger) ExchangeTrustedToken(ctx context.Context, accessToken string) (*oauth2.Token, error) {
	return &oauth2.Token{AccessToken: "trusted-token"}, nil
}

type stubTransactionAPI struct {
	response  *repository.TransactionResponse
	err       error
	lastQuery url.Values
}

func (s *stubTransactionAPI) Initiate(ctx context.Context, token *oauth2.Token, body map[string]json.RawMessage, query url.Values) (*repository.TransactionResponse, error) {
	s.lastQuery = query
	return s.response, s.err
}

func (s *stubTransactionAPI) InitiateSpeculative(ctx context.Context, token *oauth2.Token, body map[string]json.RawMessage, query url.Values) (*repository.TransactionResponse, error) {
	return s.response, s.err
}

func bookableListing() *entity.Listing {
	price := money.New(10000, "USD")
	return &entity.Listing{ID: "listing-1", Price: &price, UnitType: enum.UnitTypeNight}
}

func lineItemRouter(listings *stubListingAPI) *gin.Engine {
	gin.SetMode(gin.TestMode)
	pricing := service.NewPricingService(&config.CommissionConfig{ProviderPercent: 10})
	h := NewLineItemHandler(service.NewLineItemService(listings, pricing))

	router := gin.New()
	router.POST("/api/transaction-line-items", h.Preview)
	return router
}

func transactionRouter(listings *stubListingAPI, transactions *stubTransactionAPI) *gin.Engine {
	gin.SetMode(gin.TestMode)
	pricing := service.NewPricingService(&config.CommissionConfig{ProviderPercent: 10})
	h := NewTransactionHandler(service.NewTransactionService(listings, &stubExchanger{}, transactions, pricing))

	router := gin.New()
	router.POST("/api/initiate-privileged", h.Initiate)
	return router
}

func TestPreviewEndpoint(t *testing.T) {
	listings := &stubListingAPI{listing: bookableListing()}
	router := lineItemRouter(listings)

	body := `{
		"listingId": "listing-1",
		"bookingData": {"startDate": "2024-01-01T00:00:00Z", "endDate": "2024-01-04T00:00:00Z"}
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/transaction-line-items", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer session-token")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "session-token", listings.token)

	// The body is the raw line item list with decimal-string amounts.
	var items []map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 2)
	assert.JSONEq(t, `{"amount":"30000","currency":"USD"}`, string(items[0]["lineTotal"]))
	assert.JSONEq(t, `"line-item/night"`, string(items[0]["code"]))
}

func TestPreviewEndpointErrors(t *testing.T) {
	testCases := []struct {
		name         string
		listings     *stubListingAPI
		body         string
		expectedCode int
	}{
		{
			name:         "invalid_booking_range",
			listings:     &stubListingAPI{listing: bookableListing()},
			body:         `{"listingId":"listing-1","bookingData":{"startDate":"2024-01-04T00:00:00Z","endDate":"2024-01-01T00:00:00Z"}}`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "missing_listing_id",
			listings:     &stubListingAPI{listing: bookableListing()},
			body:         `{"bookingData":{}}`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "listing_fetch_403_passes_through",
			listings:     &stubListingAPI{err: apperror.NewUpstreamError(403, "Forbidden", []byte(`{"errors":[]}`))},
			body:         `{"listingId":"listing-1","bookingData":{"startDate":"2024-01-01T00:00:00Z","endDate":"2024-01-04T00:00:00Z"}}`,
			expectedCode: http.StatusForbidden,
		},
		{
			name:         "malformed_json",
			listings:     &stubListingAPI{listing: bookableListing()},
			body:         `{`,
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			router := lineItemRouter(tc.listings)

			req := httptest.NewRequest(http.MethodPost, "/api/transaction-line-items", bytes.NewBufferString(tc.body))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tc.expectedCode, w.Code)

			var envelope map[string]json.RawMessage
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
			assert.JSONEq(t, `false`, string(envelope["success"]))
		})
	}
}

func TestInitiateEndpoint(t *testing.T) {
	transactions := &stubTransactionAPI{
		response: &repository.TransactionResponse{
			Status:     200,
			StatusText: "OK",
			Data:       json.RawMessage(`{"data":{"id":"tx-1"}}`),
		},
	}
	router := transactionRouter(&stubListingAPI{listing: bookableListing()}, transactions)

	body := `{
		"isSpeculative": false,
		"bookingData": {"startDate": "2024-01-01T00:00:00Z", "endDate": "2024-01-04T00:00:00Z"},
		"bodyParams": {"params": {"listingId": "listing-1"}},
		"queryParams": {"expand": ["true"]}
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/initiate-privileged", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer session-token")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":200,"statusText":"OK","data":{"data":{"id":"tx-1"}}}`, w.Body.String())
}

func TestInitiateEndpointScalarQueryParams(t *testing.T) {
	// Older storefront clients send query values as bare scalars instead
	// of lists; both shapes must reach the backend as the same query.
	transactions := &stubTransactionAPI{
		response: &repository.TransactionResponse{Status: 200, StatusText: "OK", Data: json.RawMessage(`{}`)},
	}
	router := transactionRouter(&stubListingAPI{listing: bookableListing()}, transactions)

	body := `{
		"bookingData": {"startDate": "2024-01-01T00:00:00Z", "endDate": "2024-01-04T00:00:00Z"},
		"bodyParams": {"params": {"listingId": "listing-1"}},
		"queryParams": {"expand": true, "include": "booking", "limit": 5}
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/initiate-privileged", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, url.Values{
		"expand":  {"true"},
		"include": {"booking"},
		"limit":   {"5"},
	}, transactions.lastQuery)
}

func TestInitiateEndpointUpstreamFailure(t *testing.T) {
	transactions := &stubTransactionAPI{
		err: apperror.NewUpstreamError(409, "Transaction initiation failed", []byte(`{"errors":[{"code":"transaction-invalid-transition"}]}`)),
	}
	router := transactionRouter(&stubListingAPI{listing: bookableListing()}, transactions)

	body := `{
		"bookingData": {"startDate": "2024-01-01T00:00:00Z", "endDate": "2024-01-04T00:00:00Z"},
		"bodyParams": {"params": {"listingId": "listing-1"}}
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/initiate-privileged", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusConflict, w.Code)

	var envelope map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.JSONEq(t, `{"errors":[{"code":"transaction-invalid-transition"}]}`, string(envelope["data"]))
}

func TestSessionTokenFromCookie(t *testing.T) {
	listings := &stubListingAPI{listing: bookableListing()}
	router := lineItemRouter(listings)

	body := `{"listingId":"listing-1","bookingData":{"startDate":"2024-01-01T00:00:00Z","endDate":"2024-01-02T00:00:00Z"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/transaction-line-items", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: "marketplace-session", Value: "cookie-token"})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "cookie-token", listings.token)
}

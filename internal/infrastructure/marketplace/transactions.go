package marketplace

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"golang.org/x/oauth2"

	"github.com/sangkips/marketplace-api/internal/domain/repository"
	"github.com/sangkips/marketplace-api/pkg/apperror"
)

// Initiate submits a committing transaction initiation with the trusted
// credential
func (c *Client) Initiate(ctx context.Context, token *oauth2.Token, body map[string]json.RawMessage, query url.Values) (*repository.TransactionResponse, error) {
	return c.initiate(ctx, "/api/transactions/initiate", token, body, query)
}

// InitiateSpeculative submits a dry-run initiation used to preview the
// transaction without committing it
func (c *Client) InitiateSpeculative(ctx context.Context, token *oauth2.Token, body map[string]json.RawMessage, query url.Values) (*repository.TransactionResponse, error) {
	return c.initiate(ctx, "/api/transactions/initiate_speculative", token, body, query)
}

func (c *Client) initiate(ctx context.Context, path string, token *oauth2.Token, body map[string]json.RawMessage, query url.Values) (*repository.TransactionResponse, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, apperror.NewAppError(http.StatusInternalServerError, "Failed to encode transaction body")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(encoded))
	if err != nil {
		return nil, apperror.NewAppError(http.StatusInternalServerError, "Failed to build transaction request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	token.SetAuthHeader(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperror.NewAppError(http.StatusBadGateway, "Transaction initiation failed: "+err.Error())
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperror.NewAppError(http.StatusBadGateway, "Transaction initiation failed: "+err.Error())
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apperror.NewUpstreamError(resp.StatusCode, "Transaction initiation failed", respBody)
	}

	return &repository.TransactionResponse{
		Status:     resp.StatusCode,
		StatusText: http.StatusText(resp.StatusCode),
		Data:       respBody,
	}, nil
}

package repository

import (
	"context"
	"encoding/json"
	"net/url"

	"golang.org/x/oauth2"

	"github.com/sangkips/marketplace-api/internal/domain/entity"
)

// TransactionResponse carries the marketplace backend's answer to an
// initiation call verbatim: status, status text and the raw body
type TransactionResponse struct {
	Status     int             `json:"status"`
	StatusText string          `json:"statusText"`
	Data       json.RawMessage `json:"data"`
}

// ListingAPI fetches authoritative listing snapshots from the marketplace
// backend on behalf of the caller's session
type ListingAPI interface {
	ShowListing(ctx context.Context, id, accessToken string) (*entity.Listing, error)
	ShowOwnListing(ctx context.Context, id, accessToken string) (*entity.Listing, error)
}

// CredentialExchanger swaps a session-scoped access token for a trusted,
// privilege-escalated token that may finalize transactions
type CredentialExchanger interface {
	ExchangeTrustedToken(ctx context.Context, accessToken string) (*oauth2.Token, error)
}

// TransactionAPI submits transaction initiations to the marketplace backend
// using a trusted credential
type TransactionAPI interface {
	Initiate(ctx context.Context, token *oauth2.Token, body map[string]json.RawMessage, query url.Values) (*TransactionResponse, error)
	InitiateSpeculative(ctx context.Context, token *oauth2.Token, body map[string]json.RawMessage, query url.Values) (*TransactionResponse, error)
}

package service

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/sangkips/marketplace-api/internal/domain/entity"
	"github.com/sangkips/marketplace-api/internal/domain/repository"
	"github.com/sangkips/marketplace-api/pkg/apperror"
)

// clientPriceFields are transaction params the client must never control.
// They are removed from the submitted params before the server-computed
// line items are attached, so a forged value is discarded rather than
// merely shadowed.
var clientPriceFields = []string{
	"lineItems",
	"price",
	"unitPrice",
	"payinTotal",
	"payoutTotal",
}

// TransactionService bridges the low-trust storefront session to a
// privileged backend call. Per request it runs a strictly sequential,
// single-attempt chain: fetch listing, price it, escalate the credential,
// submit. Any failed step aborts the chain and surfaces its error; partial
// progress is discarded.
type TransactionService struct {
	listings     repository.ListingAPI
	credentials  repository.CredentialExchanger
	transactions repository.TransactionAPI
	pricing      *PricingService
}

// NewTransactionService creates a new transaction service
func NewTransactionService(
	listings repository.ListingAPI,
	credentials repository.CredentialExchanger,
	transactions repository.TransactionAPI,
	pricing *PricingService,
) *TransactionService {
	return &TransactionService{
		listings:     listings,
		credentials:  credentials,
		transactions: transactions,
		pricing:      pricing,
	}
}

// InitiateInput represents a transaction initiation request
type InitiateInput struct {
	IsSpeculative bool
	Booking       entity.Booking
	BodyParams    map[string]json.RawMessage
	QueryParams   url.Values
	AccessToken   string
}

// Initiate runs the trusted initiation chain and returns the backend's
// response verbatim
func (s *TransactionService) Initiate(ctx context.Context, input *InitiateInput) (*repository.TransactionResponse, error) {
	params, err := decodeParams(input.BodyParams)
	if err != nil {
		return nil, err
	}

	listingID, err := listingIDFromParams(params)
	if err != nil {
		return nil, err
	}

	// Step 1: fetch the authoritative listing with the caller's own
	// session credential.
	listing, err := s.listings.ShowListing(ctx, listingID, input.AccessToken)
	if err != nil {
		return nil, err
	}
	if listing.Deleted {
		return nil, apperror.ErrListingNotFound
	}

	// Step 2: price from the fetched listing, never from client input.
	lineItems, err := s.pricing.ComputeLineItems(listing, &input.Booking)
	if err != nil {
		return nil, err
	}

	// Step 3: escalate to a trusted credential scoped to this request.
	trusted, err := s.credentials.ExchangeTrustedToken(ctx, input.AccessToken)
	if err != nil {
		return nil, apperror.NewCredentialExchangeError(err)
	}

	// Step 4: strip client-supplied pricing and attach the computed items.
	body, err := buildBody(input.BodyParams, params, lineItems)
	if err != nil {
		return nil, err
	}

	// Step 5: submit, dry-run or committing.
	if input.IsSpeculative {
		return s.transactions.InitiateSpeculative(ctx, trusted, body, input.QueryParams)
	}
	return s.transactions.Initiate(ctx, trusted, body, input.QueryParams)
}

// decodeParams extracts bodyParams.params without re-encoding the values, so
// client fields that pass through keep their exact wire representation
func decodeParams(bodyParams map[string]json.RawMessage) (map[string]json.RawMessage, error) {
	raw, ok := bodyParams["params"]
	if !ok {
		return nil, apperror.NewBadRequestError("bodyParams.params is required")
	}
	params := map[string]json.RawMessage{}
	if err := json.Unmarshal(raw, &params); err != nil {
		return nil, apperror.NewBadRequestError("bodyParams.params must be an object")
	}
	return params, nil
}

func listingIDFromParams(params map[string]json.RawMessage) (string, error) {
	raw, ok := params["listingId"]
	if !ok {
		return "", apperror.NewBadRequestError("bodyParams.params.listingId is required")
	}
	var id string
	if err := json.Unmarshal(raw, &id); err != nil || id == "" {
		return "", apperror.NewBadRequestError("bodyParams.params.listingId must be a non-empty string")
	}
	return id, nil
}

// buildBody rebuilds the outgoing body with sanitized params and the
// server-computed line items in place
func buildBody(bodyParams, params map[string]json.RawMessage, lineItems []entity.LineItem) (map[string]json.RawMessage, error) {
	sanitized := make(map[string]json.RawMessage, len(params)+1)
	for k, v := range params {
		sanitized[k] = v
	}
	for _, field := range clientPriceFields {
		delete(sanitized, field)
	}

	encodedItems, err := json.Marshal(lineItems)
	if err != nil {
		return nil, apperror.NewAppError(500, "Failed to encode line items")
	}
	sanitized["lineItems"] = encodedItems

	encodedParams, err := json.Marshal(sanitized)
	if err != nil {
		return nil, apperror.NewAppError(500, "Failed to encode transaction params")
	}

	body := make(map[string]json.RawMessage, len(bodyParams))
	for k, v := range bodyParams {
		body[k] = v
	}
	body["params"] = encodedParams
	return body, nil
}

package marketplace

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sangkips/marketplace-api/internal/config"
	"github.com/sangkips/marketplace-api/internal/domain/entity"
	"github.com/sangkips/marketplace-api/internal/domain/enum"
	"github.com/sangkips/marketplace-api/internal/domain/repository"
	"github.com/sangkips/marketplace-api/pkg/apperror"
	"github.com/sangkips/marketplace-api/pkg/money"
)

// Client talks to the hosted marketplace backend. It implements the listing,
// credential-exchange and transaction interfaces from the domain layer.
// It never retries: a failed call surfaces the backend's status and body.
type Client struct {
	baseURL      string
	tokenURL     string
	clientID     string
	clientSecret string
	httpClient   *http.Client
}

var (
	_ repository.ListingAPI          = (*Client)(nil)
	_ repository.CredentialExchanger = (*Client)(nil)
	_ repository.TransactionAPI      = (*Client)(nil)
)

// NewClient creates a new marketplace backend client
func NewClient(cfg *config.MarketplaceConfig) *Client {
	return &Client{
		baseURL:      cfg.BaseURL,
		tokenURL:     cfg.TokenURL,
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ShowListing fetches a public listing snapshot using the caller's session
// credential
func (c *Client) ShowListing(ctx context.Context, id, accessToken string) (*entity.Listing, error) {
	return c.showListing(ctx, "/api/listings/show", id, accessToken)
}

// ShowOwnListing fetches a listing owned by the caller, which may be in a
// non-public state
func (c *Client) ShowOwnListing(ctx context.Context, id, accessToken string) (*entity.Listing, error) {
	return c.showListing(ctx, "/api/own_listings/show", id, accessToken)
}

func (c *Client) showListing(ctx context.Context, path, id, accessToken string) (*entity.Listing, error) {
	endpoint := c.baseURL + path + "?" + url.Values{"id": []string{id}}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, apperror.NewAppError(http.StatusInternalServerError, "Failed to build listing request")
	}
	req.Header.Set("Accept", "application/json")
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperror.NewAppError(http.StatusBadGateway, "Listing fetch failed: "+err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperror.NewAppError(http.StatusBadGateway, "Listing fetch failed: "+err.Error())
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, apperror.ErrListingNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Keep the backend's status; a 403 tells the caller the listing
		// exists but is closed to them.
		return nil, apperror.NewUpstreamError(resp.StatusCode, "Listing fetch failed", body)
	}

	return decodeListing(body)
}

// listingPayload mirrors the backend's JSON:API-shaped listing resource.
// Money and date values arrive as tagged fields, never inferred from
// string shape.
type listingPayload struct {
	Data struct {
		ID         string `json:"id"`
		Attributes struct {
			Deleted    bool         `json:"deleted"`
			Price      *money.Money `json:"price"`
			PublicData struct {
				UnitType enum.UnitType `json:"unitType"`
			} `json:"publicData"`
		} `json:"attributes"`
		Relationships struct {
			Author struct {
				Data struct {
					ID string `json:"id"`
				} `json:"data"`
			} `json:"author"`
		} `json:"relationships"`
	} `json:"data"`
}

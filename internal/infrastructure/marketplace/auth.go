package marketplace

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

// trustedScope is the scope the backend grants to tokens that may finalize
// transactions
const trustedScope = "trusted:user"

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
	Scope       string `json:"scope"`
}

// ExchangeTrustedToken swaps the caller's session token for a trusted,
// privilege-escalated token. The exchange authenticates this server with
// its client secret, so it can only happen server-side.
func (c *Client) ExchangeTrustedToken(ctx context.Context, accessToken string) (*oauth2.Token, error) {
	if accessToken == "" {
		return nil, fmt.Errorf("no session token to exchange")
	}

	form := url.Values{
		"grant_type":    []string{"token_exchange"},
		"client_id":     []string{c.clientID},
		"client_secret": []string{c.clientSecret},
		"subject_token": []string{accessToken},
		"scope":         []string{trustedScope},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("token endpoint returned %d", resp.StatusCode)
	}

	var tr tokenResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return nil, fmt.Errorf("unexpected token response: %w", err)
	}
	if tr.AccessToken == "" {
		return nil, fmt.Errorf("token endpoint returned no access token")
	}

	return &oauth2.Token{
		AccessToken: tr.AccessToken,
		TokenType:   tr.TokenType,
		Expiry:      time.Now().Add(time.Duration(tr.ExpiresIn) * time.Second),
	}, nil
}

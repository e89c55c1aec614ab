package google

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// OAuthClient wraps an oauth2.Config built from the application
// identity. It owns the three exchanges the tool performs: building the
// authorization URL, trading a one-time code for a token, and renewing
// an access token from a stored refresh token.
type OAuthClient struct {
	conf *oauth2.Config
}

// NewOAuthClient configures the client for id. Endpoint URIs from the
// credentials file take precedence; otherwise Google's public endpoint
// is used.
func NewOAuthClient(id *Identity) *OAuthClient {
	endpoint := google.Endpoint
	if id.AuthURI != "" && id.TokenURI != "" {
		endpoint = oauth2.Endpoint{
			AuthURL:  id.AuthURI,
			TokenURL: id.TokenURI,
		}
	}

	return &OAuthClient{
		conf: &oauth2.Config{
			ClientID:     id.ClientID,
			ClientSecret: id.ClientSecret,
			RedirectURL:  id.RedirectURI,
			Endpoint:     endpoint,
			Scopes:       Scopes,
		},
	}
}

// AuthCodeURL returns the URL an operator must visit to authorize the
// application. Offline access and forced consent are always requested:
// without both, the provider may omit the refresh token on repeat
// grants, which would silently break headless operation later.
func (c *OAuthClient) AuthCodeURL() string {
	return c.conf.AuthCodeURL("state-token",
		oauth2.AccessTypeOffline,
		oauth2.ApprovalForce)
}

// Exchange trades an authorization code for a token record.
func (c *OAuthClient) Exchange(ctx context.Context, code string) (*TokenRecord, error) {
	tok, err := c.conf.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange auth code: %w", err)
	}
	return RecordFromToken(tok), nil
}

// Refresh obtains a fresh access token using rec's refresh token. The
// token source is seeded with an already-expired copy so the stored
// refresh token is always proven against the provider rather than
// trusting a possibly stale expiry. The result is what the provider
// returned; providers routinely omit the refresh token here, so callers
// merge it back per the retention rule.
//
// Returns (nil, nil) when the provider answered but produced no usable
// access token, e.g. a revoked refresh token.
func (c *OAuthClient) Refresh(ctx context.Context, rec *TokenRecord) (*TokenRecord, error) {
	seed := rec.OAuth2Token()
	seed.AccessToken = ""
	seed.Expiry = time.Unix(1, 0)

	tok, err := c.conf.TokenSource(ctx, seed).Token()
	if err != nil {
		return nil, fmt.Errorf("refresh exchange failed: %w", err)
	}
	if tok.AccessToken == "" {
		return nil, nil
	}
	return RecordFromToken(tok), nil
}

// TokenSource returns a self-refreshing token source seeded with rec,
// for callers that want an authenticated HTTP client rather than a
// one-shot exchange.
func (c *OAuthClient) TokenSource(ctx context.Context, rec *TokenRecord) oauth2.TokenSource {
	return c.conf.TokenSource(ctx, rec.OAuth2Token())
}

// Package auth manages the process-wide SaluteSpeech OAuth2 credential.
//
// One TokenCache is shared by every concurrent session. Reads of a valid
// token never block behind a refresh, and concurrent refreshes coalesce into
// a single in-flight request whose result every waiter shares.
package auth

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/voicegw/salute-bridge/internal/httpc"
)

// RefreshMargin is the lead time before true expiry at which a cached token
// stops being handed out. Refreshing early avoids mid-call expiry races.
const RefreshMargin = 60 * time.Second

// DefaultScope is the personal-tier SaluteSpeech scope.
const DefaultScope = "SALUTE_SPEECH_PERS"

// TokenCache owns one bearer credential and refreshes it on demand.
type TokenCache struct {
	authKey   string // base64(client_id:client_secret)
	scope     string
	url       string
	client    *http.Client
	logger    *slog.Logger
	now       func() time.Time
	onRefresh func(err error)

	group singleflight.Group

	mu        sync.RWMutex
	token     string
	expiresAt int64 // epoch millis, provider clock
}

// Option configures a TokenCache.
type Option func(*TokenCache)

// WithScope overrides the OAuth scope.
func WithScope(scope string) Option {
	return func(c *TokenCache) { c.scope = scope }
}

// WithURL overrides the identity-provider token endpoint.
func WithURL(u string) Option {
	return func(c *TokenCache) { c.url = u }
}

// WithHTTPClient supplies the HTTP client used for refreshes. Use a client
// from httpc.NewTLSClient when the OAuth host needs a custom trust bundle.
func WithHTTPClient(client *http.Client) Option {
	return func(c *TokenCache) { c.client = client }
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *TokenCache) { c.logger = logger }
}

// WithClock overrides the time source. Test hook.
func WithClock(now func() time.Time) Option {
	return func(c *TokenCache) { c.now = now }
}

// WithRefreshObserver registers a callback invoked after every refresh
// attempt with its outcome. Used to feed metrics without coupling to them.
func WithRefreshObserver(fn func(err error)) Option {
	return func(c *TokenCache) { c.onRefresh = fn }
}

// New creates a TokenCache for the given client credentials.
func New(clientID, clientSecret string, opts ...Option) *TokenCache {
	c := &TokenCache{
		authKey: base64.StdEncoding.EncodeToString([]byte(clientID + ":" + clientSecret)),
		scope:   DefaultScope,
		client:  httpc.Client,
		logger:  slog.Default(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetToken returns a currently-valid bearer token, refreshing transparently
// when the cached one is absent or inside the refresh margin.
func (c *TokenCache) GetToken(ctx context.Context) (string, error) {
	if tok, ok := c.cached(); ok {
		return tok, nil
	}

	v, err, _ := c.group.Do("token", func() (any, error) {
		// A waiter queued behind the previous flight may find the cache
		// already fresh.
		if tok, ok := c.cached(); ok {
			return tok, nil
		}
		return c.refresh(ctx)
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// cached returns the token when it is still outside the refresh margin.
func (c *TokenCache) cached() (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.token == "" {
		return "", false
	}
	nowMS := c.now().UnixMilli()
	if nowMS >= c.expiresAt-RefreshMargin.Milliseconds() {
		return "", false
	}
	return c.token, true
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"`
}

// refresh performs one OAuth round-trip and atomically installs the result.
func (c *TokenCache) refresh(ctx context.Context) (string, error) {
	c.logger.Info("requesting access token", "scope", c.scope)

	form := url.Values{"scope": {c.scope}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, strings.NewReader(form.Encode()))
	if err != nil {
		err = fmt.Errorf("auth: build token request: %w", err)
		c.observe(err)
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("RqUID", uuid.NewString())
	req.Header.Set("Authorization", "Basic "+c.authKey)

	resp, err := c.client.Do(req)
	if err != nil {
		err = fmt.Errorf("auth: token request: %w", err)
		c.observe(err)
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		authErr := &AuthError{StatusCode: resp.StatusCode, Body: string(body)}
		c.logger.Error("token refresh rejected", "status", resp.StatusCode)
		c.observe(authErr)
		return "", authErr
	}

	var tr tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		err = fmt.Errorf("auth: decode token response: %w", err)
		c.observe(err)
		return "", err
	}
	if tr.AccessToken == "" {
		err := fmt.Errorf("auth: token response missing access_token")
		c.observe(err)
		return "", err
	}

	c.mu.Lock()
	c.token = tr.AccessToken
	c.expiresAt = tr.ExpiresAt
	c.mu.Unlock()

	c.logger.Info("access token refreshed", "expires_at", tr.ExpiresAt)
	c.observe(nil)
	return tr.AccessToken, nil
}

func (c *TokenCache) observe(err error) {
	if c.onRefresh != nil {
		c.onRefresh(err)
	}
}

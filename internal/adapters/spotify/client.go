package spotify

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/time/rate"

	"github.com/ewilliams-labs/moodmix/internal/core/ports"
	"github.com/ewilliams-labs/moodmix/internal/logging"
	"github.com/ewilliams-labs/moodmix/internal/metrics"
)

const (
	DefaultBaseURL  = "https://api.spotify.com/v1"
	DefaultTokenURL = "https://accounts.spotify.com/api/token"

	DefaultTimeout      = 25 * time.Second
	DefaultTokenTimeout = 20 * time.Second
	DefaultRateLimit    = 10 // requests per second

	DefaultBreakerFailures = 5
	DefaultBreakerTimeout  = 30 * time.Second

	// tokenExpiryMargin is subtracted from the reported token lifetime.
	tokenExpiryMargin = 30 * time.Second
)

// Client is an HTTP client for the Spotify Web API using client-credentials auth.
// It owns the process-wide token cache and artist ID cache.
type Client struct {
	httpClient   *http.Client
	baseURL      string
	tokenURL     string
	tokenTimeout time.Duration
	credentials  clientcredentials.Config
	limiter      *rate.Limiter
	breaker      *gobreaker.CircuitBreaker[[]byte]
	now          func() time.Time

	breakerFailures uint32
	breakerTimeout  time.Duration

	tokenMu     sync.Mutex
	token       string
	tokenExpiry time.Time

	artists *artistIDCache
}

// compile-time interface assertions
var (
	_ ports.Catalog      = (*Client)(nil)
	_ ports.TokenChecker = (*Client)(nil)
)

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets the Web API base URL (useful for testing).
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithTokenURL sets the accounts token endpoint.
func WithTokenURL(tokenURL string) Option {
	return func(c *Client) {
		c.tokenURL = tokenURL
	}
}

// WithHTTPClient sets the HTTP client used for both API and token calls.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout bounds each catalog GET.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithRateLimit caps outbound requests per second. Zero or less disables the limiter.
func WithRateLimit(perSecond float64) Option {
	return func(c *Client) {
		if perSecond <= 0 {
			c.limiter = rate.NewLimiter(rate.Inf, 0)
			return
		}
		burst := int(perSecond)
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

// WithBreaker sets the consecutive-failure threshold and open-state timeout.
func WithBreaker(failures uint32, timeout time.Duration) Option {
	return func(c *Client) {
		if failures > 0 {
			c.breakerFailures = failures
		}
		if timeout > 0 {
			c.breakerTimeout = timeout
		}
	}
}

// NewClient constructs a Spotify client for the given app credentials.
func NewClient(clientID, clientSecret string, opts ...Option) *Client {
	c := &Client{
		httpClient:      &http.Client{Timeout: DefaultTimeout},
		baseURL:         DefaultBaseURL,
		tokenURL:        DefaultTokenURL,
		tokenTimeout:    DefaultTokenTimeout,
		limiter:         rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
		now:             time.Now,
		breakerFailures: DefaultBreakerFailures,
		breakerTimeout:  DefaultBreakerTimeout,
		artists:         newArtistIDCache(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.credentials = clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     c.tokenURL,
		AuthStyle:    oauth2.AuthStyleInHeader,
	}
	c.breaker = newBreaker("spotify", c.breakerFailures, c.breakerTimeout)
	return c
}

// Token returns a cached bearer token, exchanging client credentials when the
// cached one is missing or within 30 seconds of expiry.
func (c *Client) Token(ctx context.Context) (string, error) {
	c.tokenMu.Lock()
	defer c.tokenMu.Unlock()

	if c.token != "" && c.now().Before(c.tokenExpiry) {
		return c.token, nil
	}

	tctx, cancel := context.WithTimeout(context.WithValue(ctx, oauth2.HTTPClient, c.httpClient), c.tokenTimeout)
	defer cancel()

	tok, err := c.credentials.Token(tctx)
	if err != nil {
		metrics.CatalogTokenRefreshes.WithLabelValues("error").Inc()
		authErr := &ports.AuthError{Err: err}
		var re *oauth2.RetrieveError
		if errors.As(err, &re) && re.Response != nil {
			authErr.Status = re.Response.StatusCode
			authErr.Body = string(re.Body)
		}
		logging.Ctx(ctx).Error().Err(err).Int("status", authErr.Status).Msg("spotify token exchange failed")
		return "", authErr
	}
	metrics.CatalogTokenRefreshes.WithLabelValues("success").Inc()

	c.token = tok.AccessToken
	// A token without a reported lifetime is used once and refreshed on the next call.
	c.tokenExpiry = tok.Expiry.Add(-tokenExpiryMargin)
	logging.Ctx(ctx).Debug().Time("expires_at", c.tokenExpiry).Msg("spotify token refreshed")
	return c.token, nil
}

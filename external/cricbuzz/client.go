// Package cricbuzz talks to the Cricbuzz API on RapidAPI. Every fetch either
// returns a decoded payload or reports "no data"; failures are logged here and
// never retried.
package cricbuzz

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/cricket-stats/internal/platform/logging"
	"github.com/riskibarqy/cricket-stats/internal/platform/resilience"
)

const (
	defaultBaseURL = "https://cricbuzz-cricket.p.rapidapi.com"
	defaultHost    = "cricbuzz-cricket.p.rapidapi.com"
	defaultTimeout = 10 * time.Second
	maxBodyBytes   = 6 << 20
)

var errCricbuzzTransient = crerr.New("cricbuzz transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	APIKey         string
	Host           string
	Timeout        time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.BreakerConfig
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	host       string
	logger     *logging.Logger
	breaker    *resilience.Breaker
	now        func() time.Time
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	// Copy so a shared client such as http.DefaultClient is never mutated.
	httpClient := &http.Client{Timeout: cfg.Timeout}
	if cfg.HTTPClient != nil {
		clone := *cfg.HTTPClient
		httpClient = &clone
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = defaultTimeout
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	host := strings.TrimSpace(cfg.Host)
	if host == "" {
		host = defaultHost
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     strings.TrimSpace(cfg.APIKey),
		host:       host,
		logger:     logger,
		breaker:    resilience.NewBreaker(cfg.CircuitBreaker),
		now:        time.Now,
	}
}

// loggerFor prefers a logger carried by ctx, so callers capturing a run log
// also receive the client's warnings.
func (c *Client) loggerFor(ctx context.Context) *logging.Logger {
	return logging.FromContext(ctx, c.logger)
}

func (c *Client) LiveMatches(ctx context.Context) (any, bool) {
	return c.get(ctx, "/matches/v1/live", nil)
}

func (c *Client) RecentMatches(ctx context.Context) (any, bool) {
	return c.get(ctx, "/matches/v1/recent", nil)
}

func (c *Client) Scorecard(ctx context.Context, matchID int64) (any, bool) {
	return c.get(ctx, "/mcenter/v1/"+strconv.FormatInt(matchID, 10)+"/scard", nil)
}

func (c *Client) SearchPlayers(ctx context.Context, name string) (any, bool) {
	return c.get(ctx, "/stats/v1/player/search", url.Values{"plrN": []string{name}})
}

func (c *Client) PlayerDetail(ctx context.Context, playerID int64) (any, bool) {
	return c.get(ctx, "/stats/v1/player/"+strconv.FormatInt(playerID, 10), nil)
}

func (c *Client) get(ctx context.Context, path string, query url.Values) (any, bool) {
	if err := c.breaker.Allow(); err != nil {
		c.loggerFor(ctx).WarnContext(ctx, "cricbuzz circuit breaker rejected request", "path", path, "state", c.breaker.State().String())
		return nil, false
	}

	fullURL := c.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	raw, err := c.executeRequest(ctx, fullURL)
	if err != nil {
		if stderrors.Is(err, errCricbuzzTransient) {
			c.breaker.Failure()
		} else {
			c.breaker.Success()
		}
		c.loggerFor(ctx).WarnContext(ctx, "cricbuzz request failed", "path", path, "error", c.sanitize(err.Error()))
		return nil, false
	}
	c.breaker.Success()

	var payload any
	if err := sonic.Unmarshal(raw, &payload); err != nil {
		c.loggerFor(ctx).WarnContext(ctx, "decode cricbuzz payload failed", "path", path, "error", err)
		return nil, false
	}
	return payload, true
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("x-rapidapi-key", c.apiKey)
	req.Header.Set("x-rapidapi-host", c.host)
	req.Header.Set("accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: send request: %v", errCricbuzzTransient, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read response body: %v", errCricbuzzTransient, err)
	}
	if resp.StatusCode != http.StatusOK {
		if isTransientStatus(resp.StatusCode) {
			return nil, fmt.Errorf("%w: provider status=%d body=%s", errCricbuzzTransient, resp.StatusCode, abbreviateBody(raw))
		}
		return nil, fmt.Errorf("provider status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
	}
	return raw, nil
}

func (c *Client) sanitize(value string) string {
	value = strings.TrimSpace(value)
	if c.apiKey != "" {
		value = strings.ReplaceAll(value, c.apiKey, "REDACTED")
	}
	return value
}

func isTransientStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}

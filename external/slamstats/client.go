package slamstats

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	validator "github.com/go-playground/validator/v10"
	"github.com/sourcegraph/conc/pool"
	"github.com/squaredcircle/ringside/internal/domain/event"
	"github.com/squaredcircle/ringside/internal/platform/logging"
	"github.com/squaredcircle/ringside/internal/platform/resilience"
	"github.com/squaredcircle/ringside/internal/usecase"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	defaultBaseURL     = "https://api.slamstats.example.com/v1"
	defaultPageSize    = 50
	maxPageConcurrency = 4
)

var apiTokenParamRegex = regexp.MustCompile(`api_token=[^&\s"']+`)
var errSlamStatsTransient = crerr.New("slamstats transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Token          string
	Timeout        time.Duration
	MaxRetries     int
	PageSize       int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

type Client struct {
	httpClient     *http.Client
	baseURL        string
	token          string
	maxRetries     int
	pageSize       int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
	validate       *validator.Validate
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 20 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		token:          strings.TrimSpace(cfg.Token),
		maxRetries:     maxInt(cfg.MaxRetries, 0),
		pageSize:       pageSize,
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
		validate:       validator.New(),
	}
}

// FetchEvents pulls the full event archive for a date range. The first page
// establishes pagination, remaining pages are fetched concurrently.
func (c *Client) FetchEvents(ctx context.Context, from, to time.Time) ([]event.Event, error) {
	first, err := c.fetchEventsPage(ctx, from, to, 1)
	if err != nil {
		return nil, fmt.Errorf("fetch events page 1: %w", err)
	}

	events, err := c.mapPayloads(ctx, first.Data)
	if err != nil {
		return nil, err
	}

	if first.Meta.LastPage > 1 {
		p := pool.NewWithResults[[]event.Event]().WithContext(ctx).WithMaxGoroutines(maxPageConcurrency)
		for page := 2; page <= first.Meta.LastPage; page++ {
			page := page
			p.Go(func(ctx context.Context) ([]event.Event, error) {
				envelope, err := c.fetchEventsPage(ctx, from, to, page)
				if err != nil {
					return nil, fmt.Errorf("fetch events page %d: %w", page, err)
				}
				return c.mapPayloads(ctx, envelope.Data)
			})
		}
		pages, err := p.Wait()
		if err != nil {
			return nil, err
		}
		for _, items := range pages {
			events = append(events, items...)
		}
	}

	sort.SliceStable(events, func(i, j int) bool {
		if !events[i].Date.Equal(events[j].Date) {
			return events[i].Date.Before(events[j].Date)
		}
		return events[i].ID < events[j].ID
	})
	return events, nil
}

func (c *Client) mapPayloads(ctx context.Context, payloads []eventPayload) ([]event.Event, error) {
	out := make([]event.Event, 0, len(payloads))
	for _, payload := range payloads {
		if err := c.validate.Struct(payload); err != nil {
			c.logger.WarnContext(ctx, "skipping invalid provider event", "event_id", payload.ID, "error", err)
			continue
		}
		ev, err := payload.toDomain()
		if err != nil {
			c.logger.WarnContext(ctx, "skipping provider event with bad date", "event_id", payload.ID, "date", payload.Date, "error", err)
			continue
		}
		out = append(out, ev)
	}
	return out, nil
}

func (c *Client) fetchEventsPage(ctx context.Context, from, to time.Time, page int) (eventsEnvelope, error) {
	query := map[string]string{
		"page":     strconv.Itoa(page),
		"per_page": strconv.Itoa(c.pageSize),
	}
	if !from.IsZero() {
		query["from"] = from.UTC().Format("2006-01-02")
	}
	if !to.IsZero() {
		query["to"] = to.UTC().Format("2006-01-02")
	}

	var envelope eventsEnvelope
	if _, err := c.doJSON(ctx, "/events", query, &envelope); err != nil {
		return eventsEnvelope{}, err
	}
	return envelope, nil
}

func (c *Client) doJSON(ctx context.Context, path string, query map[string]string, target any) ([]byte, error) {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "slamstats circuit breaker rejected request", "state", c.breaker.State())
			return nil, fmt.Errorf("%w: event data provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	values := url.Values{}
	for key, value := range query {
		values.Set(key, value)
	}
	values.Set("api_token", c.token)

	fullURL := c.baseURL + path
	if encoded := values.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	key := path + "?" + values.Encode()
	out, err, _ := c.flight.Do(key, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, fullURL)
		if c.circuitEnabled {
			if reqErr != nil && crerr.Is(reqErr, errSlamStatsTransient) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return nil, err
	}

	raw, ok := out.([]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected response payload type %T", out)
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return nil, fmt.Errorf("decode provider payload: %w", err)
	}

	return raw, nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %s", errSlamStatsTransient, sanitizeSensitiveText(err.Error(), c.token))
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, 6<<20))
			_ = resp.Body.Close()
			if readErr != nil {
				lastErr = fmt.Errorf("%w: read response body: %v", errSlamStatsTransient, readErr)
			} else if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				return raw, nil
			} else if isRetryableStatus(resp.StatusCode) {
				lastErr = fmt.Errorf("%w: provider status=%d body=%s", errSlamStatsTransient, resp.StatusCode, abbreviateBody(raw))
			} else {
				return nil, fmt.Errorf("provider status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("provider request failed")
	}
	c.logger.WarnContext(ctx, "slamstats request failed", "url", redactAPIURL(fullURL), "error", lastErr)
	return nil, lastErr
}

func isRetryableStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= 500
}

func abbreviateBody(raw []byte) string {
	const limit = 256
	text := strings.TrimSpace(string(raw))
	if len(text) > limit {
		return text[:limit] + "..."
	}
	return text
}

func sanitizeSensitiveText(value, token string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return value
	}
	if token != "" {
		value = strings.ReplaceAll(value, token, "REDACTED")
	}
	value = apiTokenParamRegex.ReplaceAllString(value, "api_token=REDACTED")
	return value
}

func redactAPIURL(fullURL string) string {
	return apiTokenParamRegex.ReplaceAllString(fullURL, "api_token=REDACTED")
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Package clawdsbet is a small client for the ClawdsBet prediction arena REST API.
package clawdsbet

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	querystring "github.com/google/go-querystring/query"
	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/roivaz/clawdsbet-mcp/internal/logging"
	"github.com/roivaz/clawdsbet-mcp/internal/tracing"
)

const (
	headerAPIKey    = "X-API-Key"
	headerRequestID = "X-Request-ID"
)

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	tracer  trace.Tracer
	log     logging.Logger
}

type Option func(*Client)

// WithHTTPClient replaces http.DefaultClient.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func WithTracer(t trace.Tracer) Option {
	return func(c *Client) { c.tracer = t }
}

func WithLogger(l logging.Logger) Option {
	return func(c *Client) { c.log = l }
}

// NewClient returns a client rooted at baseURL. The API key is sent on every
// request when non-empty.
func NewClient(baseURL, apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    http.DefaultClient,
		tracer:  tracing.Tracer(),
		log:     logging.New(logging.DefaultLogger()),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.WithName("clawdsbet")
	return c
}

func (c *Client) HasAPIKey() bool { return c.apiKey != "" }

func (c *Client) Leaderboard(ctx context.Context, q LeaderboardQuery) (json.RawMessage, error) {
	return c.get(ctx, "/leaderboard", q)
}

func (c *Client) Markets(ctx context.Context, q MarketQuery) (json.RawMessage, error) {
	return c.get(ctx, "/markets", q)
}

func (c *Client) Categories(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "/markets/categories", nil)
}

func (c *Client) Market(ctx context.Context, marketID string) (json.RawMessage, error) {
	return c.get(ctx, "/markets/"+url.PathEscape(marketID), nil)
}

func (c *Client) Bot(ctx context.Context, botID string) (json.RawMessage, error) {
	return c.get(ctx, "/bots/"+url.PathEscape(botID), nil)
}

// Bets lists recent betting activity, optionally for a single bot.
func (c *Client) Bets(ctx context.Context, q ActivityQuery) (json.RawMessage, error) {
	return c.get(ctx, "/bets", q)
}

// PlaceBet commits virtual funds on a market outcome. It fails with
// ErrMissingAPIKey before touching the network when no key is configured.
func (c *Client) PlaceBet(ctx context.Context, bet BetRequest) (json.RawMessage, error) {
	if !c.HasAPIKey() {
		return nil, ErrMissingAPIKey
	}
	return c.send(ctx, http.MethodPost, c.baseURL+"/bets", nil, bet)
}

func (c *Client) SyncHealth(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "/monitoring/health/sync", nil)
}

func (c *Client) SyncCursor(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "/monitoring/sync-cursor", nil)
}

// Health queries the service health endpoint, which lives outside the API root.
func (c *Client) Health(ctx context.Context, healthURL string) (json.RawMessage, error) {
	return c.send(ctx, http.MethodGet, healthURL, nil, nil)
}

func (c *Client) get(ctx context.Context, path string, query any) (json.RawMessage, error) {
	return c.send(ctx, http.MethodGet, c.baseURL+path, query, nil)
}

func (c *Client) send(ctx context.Context, method, endpoint string, query, body any) (json.RawMessage, error) {
	reqURL, err := buildURL(endpoint, query)
	if err != nil {
		return nil, err
	}

	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, payload)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(headerRequestID, requestID)
	if c.apiKey != "" {
		req.Header.Set(headerAPIKey, c.apiKey)
	}

	ctx, span := c.tracer.Start(ctx, "clawdsbet "+method+" "+req.URL.Path,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("url.path", req.URL.Path),
			attribute.String("request_id", requestID),
		),
	)
	defer span.End()
	req = req.WithContext(ctx)

	log := c.log.WithValues("method", method, "path", req.URL.Path, "request_id", requestID)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Error(err, "request failed", "duration", time.Since(start))
		return nil, err
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Body: string(data)}
		span.SetStatus(codes.Error, apiErr.Error())
		log.Debug("upstream rejected request", "status", resp.StatusCode, "duration", time.Since(start))
		return nil, apiErr
	}

	if !gjson.ValidBytes(data) {
		err := fmt.Errorf("invalid JSON in response from %s", req.URL.Path)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	log.Debug("request completed", "status", resp.StatusCode, "duration", time.Since(start))
	return json.RawMessage(data), nil
}

func buildURL(endpoint string, query any) (string, error) {
	if query == nil {
		return endpoint, nil
	}
	values, err := querystring.Values(query)
	if err != nil {
		return "", fmt.Errorf("encode query: %w", err)
	}
	if encoded := values.Encode(); encoded != "" {
		return endpoint + "?" + encoded, nil
	}
	return endpoint, nil
}

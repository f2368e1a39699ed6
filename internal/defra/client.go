package defra

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

	"github.com/google/uuid"
)

// Client is a minimal client for DefraDB's v0 HTTP API. It covers the
// two operations the seeder needs: loading a schema and executing
// GraphQL requests.
type Client struct {
	apiURL     string
	multiaddr  string
	httpClient *http.Client
}

type Config struct {
	APIURL       string
	TCPMultiaddr string
	Timeout      time.Duration
}

func NewClient(cfg Config) (*Client, error) {
	if cfg.APIURL == "" {
		return nil, fmt.Errorf("api URL cannot be empty")
	}
	if _, err := url.Parse(cfg.APIURL); err != nil {
		return nil, fmt.Errorf("invalid api URL %q: %w", cfg.APIURL, err)
	}

	apiURL := cfg.APIURL
	if !strings.HasSuffix(apiURL, "/") {
		apiURL += "/"
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		apiURL:    apiURL,
		multiaddr: cfg.TCPMultiaddr,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// APIURL returns the base URL requests are issued against.
func (c *Client) APIURL() string {
	return c.apiURL
}

// LoadSchema posts the given SDL document to the schema load endpoint.
// DefraDB creates the collections and request types for every type in
// the document; types must not already exist.
func (c *Client) LoadSchema(ctx context.Context, sdl string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+"schema/load", strings.NewReader(sdl))
	if err != nil {
		return fmt.Errorf("failed to build schema request: %w", err)
	}
	req.Header.Set("Content-Type", "text/plain")
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to load schema: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read schema response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("schema load failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var envelope struct {
		Errors []graphQLError `json:"errors"`
	}
	// Older DefraDB versions reply with a plain success message rather
	// than JSON; only inspect the body when it decodes.
	if err := json.Unmarshal(body, &envelope); err == nil && len(envelope.Errors) > 0 {
		return fmt.Errorf("schema load failed: %s", envelope.Errors[0].Message)
	}

	return nil
}

// Request executes a GraphQL request and decodes the standard
// {data, errors} envelope. Any reported GraphQL error fails the call.
func (c *Client) Request(ctx context.Context, gql string) (*Response, error) {
	payload, err := json.Marshal(map[string]string{"query": gql})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+"graphql", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("request failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var result Response
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(result.Errors) > 0 {
		return nil, fmt.Errorf("graphql error: %s", result.Errors[0].Message)
	}

	return &result, nil
}

// Ping issues a GET against the API root. Any HTTP response at all
// means the node is reachable; only transport errors fail.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build ping request: %w", err)
	}
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("database unreachable at %s: %w", c.apiURL, err)
	}
	resp.Body.Close()
	return nil
}

package sanity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mhdatheek136/branfern/internal/logging"
)

const DefaultTimeout = 15 * time.Second

// ErrMissingToken is returned by Create when the client holds no write credential.
var ErrMissingToken = errors.New("sanity: missing write token")

// Config holds the connection options for one project/dataset.
type Config struct {
	ProjectID  string
	Dataset    string
	APIVersion string
	UseCDN     bool
	Token      string
	// APIHost replaces the per-project host, e.g. for tests.
	APIHost string
}

// APIError is a non-2xx response from the content store.
type APIError struct {
	StatusCode  int
	Description string
}

func (e *APIError) Error() string {
	if e.Description != "" {
		return fmt.Sprintf("sanity: status %d: %s", e.StatusCode, e.Description)
	}
	return fmt.Sprintf("sanity: status %d", e.StatusCode)
}

// MutationResult is the response of a mutate call.
type MutationResult struct {
	TransactionID string `json:"transactionId"`
	Results       []struct {
		ID        string `json:"id"`
		Operation string `json:"operation"`
	} `json:"results"`
}

// DocumentID returns the id of the first mutated document, or "".
func (r *MutationResult) DocumentID() string {
	if r == nil || len(r.Results) == 0 {
		return ""
	}
	return r.Results[0].ID
}

// Client talks to the content store HTTP API.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// NewClient creates a new content store client
func NewClient(cfg Config) *Client {
	if cfg.APIVersion == "" {
		cfg.APIVersion = "2024-01-01"
	}
	cfg.APIVersion = strings.TrimPrefix(cfg.APIVersion, "v")
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// WithToken returns a copy of the client that authenticates with token.
func (c *Client) WithToken(token string) *Client {
	cfg := c.cfg
	cfg.Token = token
	return &Client{cfg: cfg, httpClient: c.httpClient}
}

// HasToken reports whether a credential is configured.
func (c *Client) HasToken() bool {
	return c.cfg.Token != ""
}

func (c *Client) ProjectID() string { return c.cfg.ProjectID }
func (c *Client) Dataset() string   { return c.cfg.Dataset }

func (c *Client) baseURL(cdn bool) string {
	if c.cfg.APIHost != "" {
		return strings.TrimRight(c.cfg.APIHost, "/")
	}
	host := "api.sanity.io"
	if cdn {
		host = "apicdn.sanity.io"
	}
	return fmt.Sprintf("https://%s.%s", c.cfg.ProjectID, host)
}

func (c *Client) endpoint(kind string, cdn bool) string {
	return fmt.Sprintf("%s/v%s/data/%s/%s", c.baseURL(cdn), c.cfg.APIVersion, kind, url.PathEscape(c.cfg.Dataset))
}

// Query runs a GROQ query and decodes the result into out.
// Each params entry is sent as a JSON-encoded $name variable.
// A null result leaves out untouched.
func (c *Client) Query(ctx context.Context, groq string, params map[string]any, out any) error {
	logger := logging.NewLogger(ctx)
	start := time.Now()

	q := url.Values{}
	q.Set("query", groq)
	for name, value := range params {
		encoded, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("encode param %s: %w", name, err)
		}
		q.Set("$"+strings.TrimPrefix(name, "$"), string(encoded))
	}

	// Authenticated reads never go through the CDN.
	reqURL := c.endpoint("query", c.cfg.UseCDN && c.cfg.Token == "") + "?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		recordQuery(time.Since(start), err)
		return fmt.Errorf("create request: %w", err)
	}
	c.authorize(req)

	var envelope struct {
		Result json.RawMessage `json:"result"`
	}
	err = c.do(req, &envelope)
	recordQuery(time.Since(start), err)
	if err != nil {
		logger.LogError("sanity_query", err)
		return err
	}

	if len(envelope.Result) == 0 || bytes.Equal(envelope.Result, []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(envelope.Result, out); err != nil {
		return fmt.Errorf("decode result: %w", err)
	}
	return nil
}

// Create writes one new document.
func (c *Client) Create(ctx context.Context, doc any) (*MutationResult, error) {
	if !c.HasToken() {
		return nil, ErrMissingToken
	}
	logger := logging.NewLogger(ctx)
	start := time.Now()

	body, err := json.Marshal(map[string]any{
		"mutations": []map[string]any{{"create": doc}},
	})
	if err != nil {
		return nil, fmt.Errorf("encode mutation: %w", err)
	}

	reqURL := c.endpoint("mutate", false) + "?returnIds=true"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		recordMutation(time.Since(start), err)
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req)

	var result MutationResult
	err = c.do(req, &result)
	recordMutation(time.Since(start), err)
	if err != nil {
		logger.LogError("sanity_create", err)
		return nil, err
	}
	logger.LogInfof("sanity_create", "created document id=%s", result.DocumentID())
	return &result, nil
}

func (c *Client) authorize(req *http.Request) {
	req.Header.Set("Accept", "application/json")
	if c.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	}
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sanity request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var body struct {
			Error struct {
				Description string `json:"description"`
			} `json:"error"`
			Message string `json:"message"`
		}
		if json.Unmarshal(raw, &body) == nil {
			apiErr.Description = body.Error.Description
			if apiErr.Description == "" {
				apiErr.Description = body.Message
			}
		}
		return apiErr
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

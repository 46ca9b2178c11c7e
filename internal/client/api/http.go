package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ondoapp/ondo-cli/internal/client/models"
	"github.com/ondoapp/ondo-cli/internal/logging"
	"github.com/sethvargo/go-retry"
)

const (
	// requestTimeout bounds every request; expiry surfaces as a NetworkError.
	requestTimeout = 10 * time.Second

	// Idempotent GETs are retried on transport failure.
	getRetries     = 2
	retryBaseDelay = 200 * time.Millisecond
)

// HTTPClient is the production Client over net/http.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     logging.Logger
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient builds a client for the given base URL. tokens is re-read
// at request-issue time, never cached.
func NewHTTPClient(baseURL string, tokens TokenSource, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: requestTimeout},
		tokens:  tokens,
		log:     log.With("component", "api"),
	}
}

// do issues one request and decodes the response into out (skipped when out
// is nil). Request and response are always logged; logging never alters
// control flow.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, authenticated bool, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	if authenticated {
		// No token means no header, never "Bearer <empty>".
		if token := c.tokens(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	c.log.Info(ctx, "api request", "method", method, "path", path, "request_id", requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error(ctx, "api request failed", "method", method, "path", path, "request_id", requestID, "error", err)
		return &NetworkError{Endpoint: c.baseURL, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &ProtocolError{Path: path, Err: err}
	}

	c.log.Info(ctx, "api response", "method", method, "path", path, "status", resp.StatusCode, "request_id", requestID)

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		if out == nil {
			return nil
		}
		if err := json.Unmarshal(data, out); err != nil {
			return &ProtocolError{Path: path, Err: err}
		}
		return nil
	}

	// Error statuses: use the detail payload when there is one, otherwise
	// fall back to a generic status message.
	var eb errorBody
	if err := json.Unmarshal(data, &eb); err != nil {
		return &AuthError{Status: resp.StatusCode}
	}
	return &AuthError{Status: resp.StatusCode, Detail: string(eb.Detail)}
}

// get wraps do with a bounded fibonacci backoff on transport failures.
// Non-network failures are returned immediately.
func (c *HTTPClient) get(ctx context.Context, path string, authenticated bool, out any) error {
	backoff := retry.WithMaxRetries(getRetries, retry.NewFibonacci(retryBaseDelay))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := c.do(ctx, http.MethodGet, path, nil, authenticated, out)
		var netErr *NetworkError
		if errors.As(err, &netErr) {
			return retry.RetryableError(err)
		}
		return err
	})
}

func (c *HTTPClient) token(ctx context.Context, path, email, password string) (*TokenResponse, error) {
	var tr TokenResponse
	if err := c.do(ctx, http.MethodPost, path, loginRequest{Email: email, Password: password}, false, &tr); err != nil {
		return nil, err
	}
	if tr.AccessToken == "" {
		// A 2xx body without a token is still a failed authentication
		// from the caller's point of view.
		return nil, &AuthError{Detail: "missing access_token"}
	}
	return &tr, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*TokenResponse, error) {
	return c.token(ctx, "/api/auth/login", email, password)
}

func (c *HTTPClient) Register(ctx context.Context, email, password string) (*TokenResponse, error) {
	return c.token(ctx, "/api/auth/register", email, password)
}

func (c *HTTPClient) Radar(ctx context.Context) (*RadarResponse, error) {
	var rr RadarResponse
	if err := c.get(ctx, "/api/users/me/radar", true, &rr); err != nil {
		return nil, err
	}
	return &rr, nil
}

func (c *HTTPClient) Categories(ctx context.Context) ([]models.Category, error) {
	var cats []models.Category
	if err := c.get(ctx, "/api/categories", true, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

func (c *HTTPClient) CreateCategory(ctx context.Context, name string) (*models.Category, error) {
	var cat models.Category
	if err := c.do(ctx, http.MethodPost, "/api/categories", createCategoryRequest{Name: name}, true, &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

func (c *HTTPClient) Personas(ctx context.Context) ([]models.Persona, error) {
	var ps []models.Persona
	if err := c.get(ctx, "/api/personas", true, &ps); err != nil {
		return nil, err
	}
	return ps, nil
}

func (c *HTTPClient) Health(ctx context.Context) error {
	return c.get(ctx, "/health", false, nil)
}

func (c *HTTPClient) AITest(ctx context.Context) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.get(ctx, "/api/ai/test", true, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func (c *HTTPClient) AIChat(ctx context.Context, prompt string, maxTokens int) (*ChatResponse, error) {
	var cr ChatResponse
	if err := c.do(ctx, http.MethodPost, "/api/ai/chat", chatRequest{Prompt: prompt, MaxTokens: maxTokens}, true, &cr); err != nil {
		return nil, err
	}
	return &cr, nil
}

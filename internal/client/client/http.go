package client

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

	"github.com/dmitrijs2005/gophauth/internal/client/models"
	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/logging"
	"github.com/google/uuid"
)

const maxResponseBody = 1 << 20

type HTTPClient struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
	newID   func() string
}

// NewHTTPClient returns a client for the API rooted at baseURL, e.g.
// "https://auth.example.com/api/auth". A zero timeout means none.
func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return nil, fmt.Errorf("base url %q: want http(s)://host[/path]", baseURL)
	}

	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
		newID:   func() string { return uuid.NewString() },
	}, nil
}

func (c *HTTPClient) Register(ctx context.Context, creds models.RegisterCredentials) (*models.AuthResult, error) {
	return c.post(ctx, "/register", creds)
}

func (c *HTTPClient) Login(ctx context.Context, creds models.LoginCredentials) (*models.AuthResult, error) {
	return c.post(ctx, "/login", creds)
}

// Close drops idle keep-alive connections.
func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

func (c *HTTPClient) post(ctx context.Context, path string, body any) (*models.AuthResult, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	requestID := c.newID()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeaderName, requestID)

	log := c.log.With("path", path, "request_id", requestID)
	started := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn(ctx, "api request failed", "error", err)
		return nil, fmt.Errorf("post %s: %w: %w", path, ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return nil, fmt.Errorf("read response: %w: %w", ErrUnavailable, err)
	}
	log.Debug(ctx, "api response", "status", resp.StatusCode, "elapsed", time.Since(started))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, decodeAPIError(resp.StatusCode, data)
	}

	var result models.AuthResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	if !result.Complete() {
		return nil, fmt.Errorf("%w: missing user or token", ErrMalformedResponse)
	}
	if result.Token.TokenType == "" {
		result.Token.TokenType = common.BearerScheme
	}
	return &result, nil
}

// validationIssue is one entry of a list-shaped detail, as produced by
// request-model validation on the server: {"loc": ["body", "email"], "msg": "..."}.
type validationIssue struct {
	Loc []any  `json:"loc"`
	Msg string `json:"msg"`
}

func decodeAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{Status: status}

	var raw struct {
		Detail json.RawMessage `json:"detail"`
		Field  string          `json:"field"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return apiErr
	}

	var detail string
	var issues []validationIssue
	switch {
	case len(raw.Detail) == 0:
	case json.Unmarshal(raw.Detail, &detail) == nil:
		apiErr.Detail = detail
	case json.Unmarshal(raw.Detail, &issues) == nil && len(issues) > 0:
		apiErr.Detail = issues[0].Msg
		apiErr.Field = issueField(issues[0])
	}

	if raw.Field != "" {
		apiErr.Field = raw.Field
	}
	return apiErr
}

func issueField(issue validationIssue) string {
	if len(issue.Loc) == 0 {
		return ""
	}
	name, ok := issue.Loc[len(issue.Loc)-1].(string)
	if !ok || name == "body" {
		return ""
	}
	return name
}

// IsTransport reports whether err is a transport-level failure as opposed
// to an answer from the server.
func IsTransport(err error) bool {
	var apiErr *APIError
	return errors.Is(err, ErrUnavailable) && !errors.As(err, &apiErr)
}

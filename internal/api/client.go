// Package api implements the user and task repositories over the REST
// backend.
package api

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

	"github.com/google/uuid"

	"github.com/sandeepkv93/taskdesk/internal/logger"
	"github.com/sandeepkv93/taskdesk/internal/model"
)

const (
	HeaderUserID    = "X-User-Id"
	HeaderUserEmail = "X-User-Email"
	HeaderRequestID = "X-Request-Id"

	// DefaultTimeout bounds a single request.
	DefaultTimeout = 10 * time.Second

	maxBodyBytes = 32 << 20
)

// ErrResponseTooLarge is returned when a response body exceeds the client's
// read limit.
var ErrResponseTooLarge = errors.New("api: response too large")

// Identity supplies the user whose headers are attached to each request.
type Identity interface {
	CurrentUser() *model.User
}

type Client struct {
	baseURL  string
	http     *http.Client
	identity Identity
	timeout  time.Duration
	maxBody  int64
	logger   *logger.Logger
}

type Option func(*Client)

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithIdentity enables X-User-Id / X-User-Email injection.
func WithIdentity(id Identity) Option {
	return func(c *Client) { c.identity = id }
}

func New(baseURL string, log *logger.Logger, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, fmt.Errorf("api: invalid base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("api: unsupported base url scheme %q", u.Scheme)
	}
	if log == nil {
		log = logger.Noop()
	}
	c := &Client{
		baseURL: strings.TrimRight(u.String(), "/"),
		http:    http.DefaultClient,
		timeout: DefaultTimeout,
		maxBody: maxBodyBytes,
		logger:  log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// do sends one JSON request. A nil out discards the response body.
func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, in, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("api: %s: encode request: %w", op, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("api: %s: build request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	requestID := uuid.NewString()
	req.Header.Set(HeaderRequestID, requestID)
	c.attachIdentity(req)

	c.logger.Debug("API client: sending request",
		"op", op,
		"method", method,
		"path", path,
		"request_id", requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		apiErr := &APIError{Op: op, Status: 0, Message: messageFor(0, nil)}
		c.logger.Error("API client: request failed",
			"op", op,
			"request_id", requestID,
			"error", err.Error())
		return fmt.Errorf("%w: %w", apiErr, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return fmt.Errorf("api: %s: read response: %w", op, err)
	}
	if int64(len(raw)) > c.maxBody {
		c.logger.Error("API client: response too large",
			"op", op,
			"request_id", requestID,
			"limit", c.maxBody)
		return fmt.Errorf("api: %s: %w (limit %d bytes)", op, ErrResponseTooLarge, c.maxBody)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Op: op, Status: resp.StatusCode, Message: messageFor(resp.StatusCode, raw)}
		c.logger.Error("API client: unexpected status",
			"op", op,
			"request_id", requestID,
			"status", resp.StatusCode,
			"message", apiErr.Message)
		return apiErr
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("api: %s: decode response: %w", op, err)
	}
	return nil
}

func (c *Client) attachIdentity(req *http.Request) {
	if c.identity == nil {
		return
	}
	u := c.identity.CurrentUser()
	if u == nil {
		return
	}
	req.Header.Set(HeaderUserID, u.ID)
	req.Header.Set(HeaderUserEmail, u.Email)
}

// StatusOf returns the HTTP status carried by err, or -1 when err is not an
// API error.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return -1
}

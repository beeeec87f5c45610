// Package client is a typed client for the portal API. Inputs are checked against
// the contract before anything is sent, responses are checked against the schema
// registered for their status, and reads are cached until a mutation that affects
// them succeeds.
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

	"recharge-portal/internal/contract"
)

type Client struct {
	baseURL string
	http    *http.Client
	token   string
	cache   *readCache
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithToken sends the session token as a bearer header.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
		cache:   newReadCache(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// LoginURL is where an unauthorized caller should be sent.
func (c *Client) LoginURL() string {
	return c.baseURL + "/api/login"
}

// Invalidate drops cached reads of the named operations.
func (c *Client) Invalidate(ops ...string) {
	c.cache.invalidate(ops...)
}

// Cached reports whether any read of op is cached.
func (c *Client) Cached(op string) bool {
	return c.cache.has(op)
}

type call struct {
	op     string
	params map[string]string
	query  url.Values
	input  any // validated before sending; sent as the body of non-GET calls
}

func (c *Client) do(ctx context.Context, req call, out any) error {
	op, ok := contract.Lookup(req.op)
	if !ok {
		return fmt.Errorf("unknown operation %q", req.op)
	}

	if req.input != nil {
		if err := contract.Validate(req.input); err != nil {
			return err
		}
	}

	target := c.baseURL + contract.BuildURL(op.Path, req.params)
	if len(req.query) > 0 {
		target += "?" + req.query.Encode()
	}
	key := cacheKey(op.Name, target)

	isRead := op.Method == http.MethodGet
	if isRead {
		if body, ok := c.cache.get(key); ok {
			return contract.DecodeResponse(body, out)
		}
	}

	var body io.Reader
	if !isRead && req.input != nil {
		raw, err := json.Marshal(req.input)
		if err != nil {
			return fmt.Errorf("%s: encode input: %w", op.Name, err)
		}
		body = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, op.Method, target, body)
	if err != nil {
		return fmt.Errorf("%s: %w", op.Name, err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%s: %w", op.Name, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s: read response: %w", op.Name, err)
	}

	if err := op.ValidateResponse(resp.StatusCode, raw); err != nil {
		if errors.Is(err, contract.ErrUnexpectedStatus) {
			return &APIError{Op: op.Name, Status: resp.StatusCode, err: err}
		}
		return fmt.Errorf("%s: invalid %d response: %w", op.Name, resp.StatusCode, err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		var e contract.ErrorBody
		_ = json.Unmarshal(raw, &e)
		apiErr := &APIError{Op: op.Name, Status: resp.StatusCode, Message: e.Message, Field: e.Field}
		if resp.StatusCode == http.StatusUnauthorized {
			apiErr.err = ErrUnauthorized
		}
		return apiErr
	}

	if isRead {
		c.cache.put(key, raw)
	} else {
		c.cache.invalidate(op.Invalidates...)
	}
	return contract.DecodeResponse(raw, out)
}

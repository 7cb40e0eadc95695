// Package gql is a thin client for the backend GraphQL API. It keeps the
// error extensions (type/field) the backend attaches to mutations so
// callers can localize a remote failure to a specific form input.
package gql

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type Request struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

func NewRequest(query string) *Request {
	return &Request{Query: query}
}

// Var sets a variable on the request.
func (r *Request) Var(key string, value any) *Request {
	if r.Variables == nil {
		r.Variables = make(map[string]any)
	}
	r.Variables[key] = value
	return r
}

// Error is a single GraphQL error with its backend extensions.
type Error struct {
	Message string `json:"message"`
	// Type is the backend error taxonomy tag, e.g. "DUPLICATE_NAME".
	Type string `json:"-"`
	// Field names the offending form input when the backend tags one.
	Field string `json:"-"`
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("graphql: %s (type=%s field=%s)", e.Message, e.Type, e.Field)
	}
	if e.Type != "" {
		return fmt.Sprintf("graphql: %s (type=%s)", e.Message, e.Type)
	}
	return "graphql: " + e.Message
}

// Errors is the full error list of one response.
type Errors []*Error

func (es Errors) Error() string {
	msgs := make([]string, len(es))
	for i, e := range es {
		msgs[i] = e.Message
	}
	return "graphql: " + strings.Join(msgs, "; ")
}

// First returns the first error, or nil for an empty list.
func (es Errors) First() *Error {
	if len(es) == 0 {
		return nil
	}
	return es[0]
}

// AsErrors unwraps err into the response error list when it came from a
// GraphQL response.
func AsErrors(err error) (Errors, bool) {
	var es Errors
	ok := errors.As(err, &es)
	return es, ok
}

// TokenSource supplies the bearer token and refreshes it on demand.
type TokenSource interface {
	CurrentToken() string
	RefreshToken(ctx context.Context) (string, error)
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.tokens = ts }
}

func WithLogger(l *logrus.Logger) Option {
	return func(c *Client) { c.logger = l }
}

type Client struct {
	endpoint string
	http     *http.Client
	tokens   TokenSource
	logger   *logrus.Logger
}

func NewClient(endpoint string, opts ...Option) *Client {
	c := &Client{
		endpoint: endpoint,
		http:     http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type wireError struct {
	Message    string `json:"message"`
	Extensions struct {
		Type  string `json:"type"`
		Field string `json:"field"`
	} `json:"extensions"`
}

type response struct {
	Data   json.RawMessage `json:"data"`
	Errors []wireError     `json:"errors"`
}

// Run executes the request and decodes the data payload into out. A 401 from
// the backend triggers one token refresh and a single retry.
func (c *Client) Run(ctx context.Context, req *Request, out any) error {
	status, body, err := c.do(ctx, req, c.currentToken())
	if err != nil {
		return err
	}
	if status == http.StatusUnauthorized && c.tokens != nil {
		token, refreshErr := c.tokens.RefreshToken(ctx)
		if refreshErr != nil {
			return errors.Wrap(refreshErr, "refreshing token")
		}
		status, body, err = c.do(ctx, req, token)
		if err != nil {
			return err
		}
	}
	if status != http.StatusOK {
		return errors.Errorf("graphql: unexpected status %d", status)
	}

	var resp response
	if err := json.Unmarshal(body, &resp); err != nil {
		return errors.Wrap(err, "decoding graphql response")
	}
	if len(resp.Errors) > 0 {
		es := make(Errors, 0, len(resp.Errors))
		for _, we := range resp.Errors {
			es = append(es, &Error{
				Message: we.Message,
				Type:    we.Extensions.Type,
				Field:   we.Extensions.Field,
			})
		}
		return es
	}
	if out == nil || len(resp.Data) == 0 {
		return nil
	}
	return errors.Wrap(json.Unmarshal(resp.Data, out), "decoding graphql data")
}

func (c *Client) currentToken() string {
	if c.tokens == nil {
		return ""
	}
	return c.tokens.CurrentToken()
}

func (c *Client) do(ctx context.Context, req *Request, token string) (int, []byte, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return 0, nil, errors.Wrap(err, "encoding graphql request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return 0, nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return 0, nil, errors.Wrap(err, "sending graphql request")
	}
	defer func() {
		if closeErr := httpResp.Body.Close(); closeErr != nil && c.logger != nil {
			c.logger.WithError(closeErr).Warn("failed to close graphql response body")
		}
	}()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return 0, nil, errors.Wrap(err, "reading graphql response")
	}
	return httpResp.StatusCode, body, nil
}

// Package authapi talks to the remote auth endpoint: credential login for
// interactive sessions and the machine account token the GraphQL data plane
// runs under.
package authapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/paddockhq/paddock/modules/core/domain/aggregates/user"
)

// ErrInvalidCredentials reports a rejected login.
var ErrInvalidCredentials = errors.New("invalid credentials")

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      user.User
}

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type wireUser struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	IsAdmin       bool      `json:"isAdmin"`
	IsAdjudicator bool      `json:"isAdjudicator"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      wireUser  `json:"user"`
}

// Login exchanges credentials for a bearer token and the account profile.
func (c *Client) Login(ctx context.Context, email, password string) (LoginResult, error) {
	body, err := c.post(ctx, "/login", loginRequest{Email: email, Password: password})
	if err != nil {
		return LoginResult{}, err
	}
	var resp loginResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return LoginResult{}, errors.Wrap(err, "decoding login response")
	}
	if resp.Token == "" {
		return LoginResult{}, errors.New("received empty token from auth endpoint")
	}
	return LoginResult{
		Token:     resp.Token,
		ExpiresAt: resp.ExpiresAt,
		User: user.Hydrate(
			resp.User.ID,
			resp.User.Name,
			resp.User.Email,
			resp.User.IsAdmin,
			resp.User.IsAdjudicator,
		),
	}, nil
}

func (c *Client) post(ctx context.Context, path string, payload any) ([]byte, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "encoding auth request")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(encoded))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "sending auth request")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "reading auth response")
	}
	switch resp.StatusCode {
	case http.StatusOK:
		return body, nil
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrInvalidCredentials
	default:
		return nil, errors.Errorf("auth endpoint: unexpected status %d", resp.StatusCode)
	}
}

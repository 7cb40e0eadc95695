package authapi

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
)

const (
	maxRetries = 3
	baseDelay  = time.Second
)

// TokenRefresher holds the machine account token the GraphQL client runs
// under and refreshes it on demand. Safe for concurrent use.
type TokenRefresher struct {
	client   *Client
	email    string
	password string

	mu    sync.Mutex
	token string
}

func NewTokenRefresher(client *Client, email, password string) *TokenRefresher {
	return &TokenRefresher{
		client:   client,
		email:    email,
		password: password,
	}
}

func (r *TokenRefresher) CurrentToken() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.token
}

func (r *TokenRefresher) RefreshToken(ctx context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.refreshTokenLocked(ctx)
}

func (r *TokenRefresher) refreshTokenLocked(ctx context.Context) (string, error) {
	if ctx == nil {
		return "", errors.New("context cannot be nil")
	}

	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			delay := time.Duration(attempt) * baseDelay
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(delay):
			}
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		result, err := r.client.Login(ctx, r.email, r.password)
		if err != nil {
			// Rejected credentials will not improve with retries.
			if errors.Is(err, ErrInvalidCredentials) {
				return "", err
			}
			lastErr = err
			continue
		}

		r.token = result.Token
		return result.Token, nil
	}

	return "", lastErr
}

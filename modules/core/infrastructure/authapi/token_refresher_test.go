package authapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRefresher_CurrentToken(t *testing.T) {
	refresher := &TokenRefresher{
		token: "test-token",
	}

	token := refresher.CurrentToken()
	assert.Equal(t, "test-token", token)
}

func TestTokenRefresher_RefreshToken_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	refresher := &TokenRefresher{}

	token, err := refresher.RefreshToken(ctx)

	require.Error(t, err)
	assert.Equal(t, context.Canceled, err)
	assert.Empty(t, token)
}

func TestTokenRefresher_RefreshTokenLocked_NilContext(t *testing.T) {
	refresher := &TokenRefresher{}

	token, err := refresher.refreshTokenLocked(nil) //nolint:staticcheck // Testing nil context behavior

	require.Error(t, err)
	assert.Contains(t, err.Error(), "context cannot be nil")
	assert.Empty(t, token)
}

func TestTokenRefresher_RefreshToken_StoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/login", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{"token": "fresh-token"})
	}))
	defer srv.Close()

	refresher := NewTokenRefresher(NewClient(srv.URL, 0), "svc@example.com", "secret")

	token, err := refresher.RefreshToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "fresh-token", token)
	assert.Equal(t, "fresh-token", refresher.CurrentToken())
}

func TestTokenRefresher_RefreshToken_InvalidCredentialsNotRetried(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	refresher := NewTokenRefresher(NewClient(srv.URL, 0), "svc@example.com", "wrong")

	token, err := refresher.RefreshToken(context.Background())
	require.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, token)
	assert.Equal(t, 1, calls)
}

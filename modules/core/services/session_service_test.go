package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paddockhq/paddock/modules/core/infrastructure/authapi"
)

func newAuthStub(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var creds struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		if creds.Password != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"token": "bearer-token",
			"user": map[string]any{
				"id":    uuid.New().String(),
				"name":  "Jo Practice",
				"email": creds.Email,
			},
		})
	}))
}

func TestSessionService_LoginAndGet(t *testing.T) {
	srv := newAuthStub(t)
	defer srv.Close()

	svc := NewSessionService(authapi.NewClient(srv.URL, 0), time.Hour)

	sess, err := svc.Login(context.Background(), "jo@example.com", "secret")
	require.NoError(t, err)
	assert.NotEmpty(t, sess.ID())
	assert.Equal(t, "bearer-token", sess.Token())
	assert.Equal(t, "jo@example.com", sess.User().Email())

	got, err := svc.Get(context.Background(), sess.ID())
	require.NoError(t, err)
	assert.Equal(t, sess.ID(), got.ID())
	assert.Equal(t, 1, svc.Count())
}

func TestSessionService_Login_InvalidCredentials(t *testing.T) {
	srv := newAuthStub(t)
	defer srv.Close()

	svc := NewSessionService(authapi.NewClient(srv.URL, 0), time.Hour)

	_, err := svc.Login(context.Background(), "jo@example.com", "nope")
	require.ErrorIs(t, err, authapi.ErrInvalidCredentials)
	assert.Zero(t, svc.Count())
}

func TestSessionService_Get_Expired(t *testing.T) {
	srv := newAuthStub(t)
	defer srv.Close()

	svc := NewSessionService(authapi.NewClient(srv.URL, 0), -time.Minute)

	sess, err := svc.Login(context.Background(), "jo@example.com", "secret")
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), sess.ID())
	require.ErrorIs(t, err, ErrSessionNotFound)
	assert.Zero(t, svc.Count(), "expired sessions are evicted on lookup")
}

func TestSessionService_Logout(t *testing.T) {
	srv := newAuthStub(t)
	defer srv.Close()

	svc := NewSessionService(authapi.NewClient(srv.URL, 0), time.Hour)

	sess, err := svc.Login(context.Background(), "jo@example.com", "secret")
	require.NoError(t, err)

	svc.Logout(context.Background(), sess.ID())
	_, err = svc.Get(context.Background(), sess.ID())
	require.ErrorIs(t, err, ErrSessionNotFound)

	svc.Logout(context.Background(), "unknown")
}

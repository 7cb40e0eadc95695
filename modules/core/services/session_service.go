package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/paddockhq/paddock/modules/core/domain/aggregates/session"
	"github.com/paddockhq/paddock/modules/core/infrastructure/authapi"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionService owns the in-memory session store. Sessions live entirely in
// this process; the remote backend only ever sees bearer tokens.
type SessionService struct {
	auth     *authapi.Client
	duration time.Duration

	mu       sync.RWMutex
	sessions map[string]session.Session
}

func NewSessionService(auth *authapi.Client, duration time.Duration) *SessionService {
	return &SessionService{
		auth:     auth,
		duration: duration,
		sessions: make(map[string]session.Session),
	}
}

// Login exchanges credentials for a backend token and opens a session.
func (s *SessionService) Login(ctx context.Context, email, password string) (session.Session, error) {
	result, err := s.auth.Login(ctx, email, password)
	if err != nil {
		return session.Session{}, err
	}

	duration := s.duration
	if !result.ExpiresAt.IsZero() {
		if until := time.Until(result.ExpiresAt); until < duration {
			duration = until
		}
	}
	sess := session.New(uuid.New().String(), result.User, result.Token, duration)

	s.mu.Lock()
	s.sessions[sess.ID()] = sess
	s.mu.Unlock()
	return sess, nil
}

// Get resolves a session ID; expired sessions are evicted on sight.
func (s *SessionService) Get(ctx context.Context, sid string) (session.Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[sid]
	s.mu.RUnlock()
	if !ok {
		return session.Session{}, ErrSessionNotFound
	}
	if sess.Expired() {
		s.mu.Lock()
		delete(s.sessions, sid)
		s.mu.Unlock()
		return session.Session{}, ErrSessionNotFound
	}
	return sess, nil
}

// Logout drops the session. Unknown IDs are not an error.
func (s *SessionService) Logout(ctx context.Context, sid string) {
	s.mu.Lock()
	delete(s.sessions, sid)
	s.mu.Unlock()
}

// Count reports live sessions; used by the health endpoint.
func (s *SessionService) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

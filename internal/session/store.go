package session

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/talentbinder/dashboard/internal/backend"
	"github.com/talentbinder/dashboard/internal/domain"
)

// AuthAPI is the slice of the backend auth client the store needs.
type AuthAPI interface {
	Me(ctx context.Context) (domain.Session, error)
}

// Store memoizes the decoded identity behind each session cookie. Concurrent
// callers for the same token share a single /auth/me fetch. Only a definitive
// 401 is memoized as "no session" (until the next explicit Clear); transport
// failures degrade to unauthenticated for that one call without being cached.
// The store never returns an error: failure degrades to unauthenticated so
// guards can redirect instead of crashing.
type Store struct {
	auth AuthAPI

	mu sync.RWMutex
	// A present entry with a nil session is the memoized negative result.
	sessions map[string]*domain.Session
	group    singleflight.Group
}

func NewStore(auth AuthAPI) *Store {
	return &Store{
		auth:     auth,
		sessions: make(map[string]*domain.Session),
	}
}

// Get resolves the session for a cookie token. A nil result means
// unauthenticated.
func (s *Store) Get(ctx context.Context, token string) *domain.Session {
	if token == "" {
		return nil
	}

	s.mu.RLock()
	cached, ok := s.sessions[token]
	s.mu.RUnlock()
	if ok {
		return cached
	}

	resolved, _, _ := s.group.Do(token, func() (any, error) {
		// The fetch is shared across requests, so it runs on a detached
		// context; an aborted inbound request must not fail the fetch for
		// everyone else holding the same cookie. The HTTP client's own
		// timeout still bounds it.
		fetchCtx := backend.WithSessionCookie(context.Background(), token)

		sess, err := s.auth.Me(fetchCtx)
		if err != nil {
			if errors.Is(err, backend.ErrAuthenticationRequired) {
				// The cookie is definitively not a session.
				s.mu.Lock()
				s.sessions[token] = nil
				s.mu.Unlock()
			} else {
				zap.L().Warn("session fetch degraded to unauthenticated", zap.Error(err))
			}
			return (*domain.Session)(nil), nil
		}

		value := &sess
		s.mu.Lock()
		s.sessions[token] = value
		s.mu.Unlock()

		return value, nil
	})

	sess, _ := resolved.(*domain.Session)
	return sess
}

// Set primes the cache right after a successful login or registration, so the
// follow-up admin check needs no extra network call.
func (s *Store) Set(token string, sess domain.Session) {
	if token == "" {
		return
	}

	s.mu.Lock()
	s.sessions[token] = &sess
	s.mu.Unlock()
}

// Clear drops the memoized value and any in-flight marker. Idempotent.
func (s *Store) Clear(token string) {
	if token == "" {
		return
	}

	s.group.Forget(token)
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

func (s *Store) IsAdmin(ctx context.Context, token string) bool {
	sess := s.Get(ctx, token)
	return sess != nil && sess.IsAdmin()
}

// IsOwner reports whether the caller may edit a resource created by
// creatorID: admins own everything, everyone else only their own resources.
// Fails closed when no session is present.
func (s *Store) IsOwner(ctx context.Context, token string, creatorID uint) bool {
	sess := s.Get(ctx, token)
	if sess == nil {
		return false
	}
	if sess.IsAdmin() {
		return true
	}
	return sess.ID == creatorID
}

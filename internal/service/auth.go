package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/talentbinder/dashboard/internal/backend"
	"github.com/talentbinder/dashboard/internal/domain"
)

type AuthAPI interface {
	Login(ctx context.Context, creds backend.Credentials) (domain.Session, []*http.Cookie, error)
	Register(ctx context.Context, creds backend.Credentials) (domain.Session, []*http.Cookie, error)
	Logout(ctx context.Context) ([]*http.Cookie, error)
	LDAPStatus(ctx context.Context) (bool, error)
}

type SessionCache interface {
	Get(ctx context.Context, token string) *domain.Session
	IsAdmin(ctx context.Context, token string) bool
	Set(token string, sess domain.Session)
	Clear(token string)
}

type AuthService struct {
	api   AuthAPI
	cache SessionCache
}

func NewAuthService(api AuthAPI, cache SessionCache) *AuthService {
	return &AuthService{
		api:   api,
		cache: cache,
	}
}

// Login authenticates upstream and primes the session cache from the returned
// cookie, so the immediate admin check after login needs no extra round trip.
// The cookies are relayed to the browser by the caller.
func (s *AuthService) Login(ctx context.Context, creds backend.Credentials) (domain.Session, []*http.Cookie, error) {
	sess, cookies, err := s.api.Login(ctx, creds)
	if err != nil {
		return domain.Session{}, nil, fmt.Errorf("s.api.Login -> %w", err)
	}

	if token := sessionToken(cookies); token != "" {
		s.cache.Set(token, sess)
	}

	return sess, cookies, nil
}

func (s *AuthService) Register(ctx context.Context, creds backend.Credentials) (domain.Session, []*http.Cookie, error) {
	sess, cookies, err := s.api.Register(ctx, creds)
	if err != nil {
		return domain.Session{}, nil, fmt.Errorf("s.api.Register -> %w", err)
	}

	if token := sessionToken(cookies); token != "" {
		s.cache.Set(token, sess)
	}

	return sess, cookies, nil
}

// Logout ends the upstream session and evicts the cached identity. The cache
// is cleared even when the upstream call fails, so a broken backend cannot
// keep a browser logged in locally.
func (s *AuthService) Logout(ctx context.Context, token string) ([]*http.Cookie, error) {
	cookies, err := s.api.Logout(ctx)
	s.cache.Clear(token)
	if err != nil {
		return nil, fmt.Errorf("s.api.Logout -> %w", err)
	}

	return cookies, nil
}

func (s *AuthService) Me(ctx context.Context, token string) (domain.Session, error) {
	sess := s.cache.Get(ctx, token)
	if sess == nil {
		return domain.Session{}, ErrAuthenticationRequired
	}

	return *sess, nil
}

// AdminStatus answers the role check behind the admin-only navigation. Served
// from the session cache; right after login no network call is needed.
func (s *AuthService) AdminStatus(ctx context.Context, token string) bool {
	return s.cache.IsAdmin(ctx, token)
}

func (s *AuthService) LDAPStatus(ctx context.Context) (bool, error) {
	available, err := s.api.LDAPStatus(ctx)
	if err != nil {
		return false, fmt.Errorf("s.api.LDAPStatus -> %w", err)
	}

	return available, nil
}

func sessionToken(cookies []*http.Cookie) string {
	for _, c := range cookies {
		if c.Name == backend.SessionCookieName {
			return c.Value
		}
	}
	return ""
}

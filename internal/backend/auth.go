package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/talentbinder/dashboard/internal/domain"
)

type AuthClient struct {
	c *Client
}

func NewAuthClient(c *Client) *AuthClient {
	return &AuthClient{c: c}
}

// Credentials covers both auth flows: login ignores the name fields,
// registration sends them upstream (the last name may stay empty).
type Credentials struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	FirstName       string `json:"first_name,omitempty"`
	LastName        string `json:"last_name,omitempty"`
	PreferredMethod string `json:"preferredMethod,omitempty"`
}

type sessionPayload struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	Admin bool   `json:"isAdmin"`
}

func (p sessionPayload) toDomain() domain.Session {
	return domain.Session{
		ID:    p.ID,
		Email: p.Email,
		Name:  p.Name,
		Role:  p.Role,
		Admin: p.Admin,
	}
}

// Login authenticates upstream. The returned cookies are the backend's
// Set-Cookie headers, relayed verbatim to the browser; the session value is
// used to prime the session cache.
func (a *AuthClient) Login(ctx context.Context, creds Credentials) (domain.Session, []*http.Cookie, error) {
	resp, raw, err := a.c.do(ctx, http.MethodPost, "/auth/login", nil, creds)
	if err != nil {
		return domain.Session{}, nil, fmt.Errorf("auth.Login -> %w", err)
	}

	var envelope struct {
		User sessionPayload `json:"user"`
	}
	if err := decodeEnvelope(resp, raw, &envelope); err != nil {
		return domain.Session{}, nil, err
	}

	return envelope.User.toDomain(), resp.Cookies(), nil
}

func (a *AuthClient) Register(ctx context.Context, creds Credentials) (domain.Session, []*http.Cookie, error) {
	resp, raw, err := a.c.do(ctx, http.MethodPost, "/auth/register", nil, creds)
	if err != nil {
		return domain.Session{}, nil, fmt.Errorf("auth.Register -> %w", err)
	}

	var envelope struct {
		User sessionPayload `json:"user"`
	}
	if err := decodeEnvelope(resp, raw, &envelope); err != nil {
		return domain.Session{}, nil, err
	}

	return envelope.User.toDomain(), resp.Cookies(), nil
}

// Logout destroys the server-side session. The returned cookies carry the
// backend's cookie invalidation for the browser.
func (a *AuthClient) Logout(ctx context.Context) ([]*http.Cookie, error) {
	resp, raw, err := a.c.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
	if err != nil {
		return nil, fmt.Errorf("auth.Logout -> %w", err)
	}
	if err := decodeEnvelope(resp, raw, nil); err != nil {
		return nil, err
	}

	return resp.Cookies(), nil
}

func (a *AuthClient) Me(ctx context.Context) (domain.Session, error) {
	resp, raw, err := a.c.do(ctx, http.MethodGet, "/auth/me", nil, nil)
	if err != nil {
		return domain.Session{}, fmt.Errorf("auth.Me -> %w", err)
	}

	var envelope struct {
		User sessionPayload `json:"user"`
	}
	if err := decodeEnvelope(resp, raw, &envelope); err != nil {
		return domain.Session{}, err
	}

	return envelope.User.toDomain(), nil
}

func (a *AuthClient) LDAPStatus(ctx context.Context) (bool, error) {
	resp, raw, err := a.c.do(ctx, http.MethodGet, "/auth/ldap-status", nil, nil)
	if err != nil {
		return false, fmt.Errorf("auth.LDAPStatus -> %w", err)
	}

	var envelope struct {
		Available bool `json:"ldapAvailable"`
	}
	if err := decodeEnvelope(resp, raw, &envelope); err != nil {
		return false, err
	}

	return envelope.Available, nil
}

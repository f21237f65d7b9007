package service

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentbinder/dashboard/internal/backend"
	"github.com/talentbinder/dashboard/internal/domain"
	"github.com/talentbinder/dashboard/internal/session"
)

type fakeAuthAPI struct {
	meCalls atomic.Int32
	session domain.Session
	loginOK bool
}

func (f *fakeAuthAPI) Login(ctx context.Context, creds backend.Credentials) (domain.Session, []*http.Cookie, error) {
	if !f.loginOK {
		return domain.Session{}, nil, backend.ErrAuthenticationRequired
	}
	cookies := []*http.Cookie{{Name: backend.SessionCookieName, Value: "tok-1"}}
	return f.session, cookies, nil
}

func (f *fakeAuthAPI) Register(ctx context.Context, creds backend.Credentials) (domain.Session, []*http.Cookie, error) {
	cookies := []*http.Cookie{{Name: backend.SessionCookieName, Value: "tok-2"}}
	return f.session, cookies, nil
}

func (f *fakeAuthAPI) Logout(ctx context.Context) ([]*http.Cookie, error) {
	return []*http.Cookie{{Name: backend.SessionCookieName, Value: "", MaxAge: -1}}, nil
}

func (f *fakeAuthAPI) LDAPStatus(ctx context.Context) (bool, error) {
	return true, nil
}

func (f *fakeAuthAPI) Me(ctx context.Context) (domain.Session, error) {
	f.meCalls.Add(1)
	return domain.Session{}, errors.New("should not be called after priming")
}

func TestLogin_PrimesSessionCache(t *testing.T) {
	api := &fakeAuthAPI{
		loginOK: true,
		session: domain.Session{ID: 1, Role: "recruiter"},
	}
	store := session.NewStore(api)
	svc := NewAuthService(api, store)

	sess, cookies, err := svc.Login(context.Background(), backend.Credentials{Email: "a@b.ch", Password: "x"})
	require.NoError(t, err)
	require.Len(t, cookies, 1)
	assert.Equal(t, uint(1), sess.ID)

	// The admin check right after login is served from the primed cache.
	assert.False(t, svc.AdminStatus(context.Background(), "tok-1"))
	assert.Equal(t, int32(0), api.meCalls.Load())
}

func TestLogin_FailurePassesThrough(t *testing.T) {
	api := &fakeAuthAPI{}
	svc := NewAuthService(api, session.NewStore(api))

	_, _, err := svc.Login(context.Background(), backend.Credentials{Email: "a@b.ch", Password: "wrong"})
	assert.ErrorIs(t, err, ErrAuthenticationRequired)
}

func TestLogout_ClearsCacheEvenOnUpstreamError(t *testing.T) {
	api := &fakeAuthAPI{loginOK: true, session: domain.Session{ID: 1}}
	store := session.NewStore(api)
	svc := NewAuthService(api, store)

	_, _, err := svc.Login(context.Background(), backend.Credentials{Email: "a@b.ch", Password: "x"})
	require.NoError(t, err)

	_, err = svc.Logout(context.Background(), "tok-1")
	require.NoError(t, err)

	// The next Get refetches; the fake Me fails, which degrades to nil.
	assert.Nil(t, store.Get(context.Background(), "tok-1"))
	assert.Equal(t, int32(1), api.meCalls.Load())
}

func TestMe_NoSession(t *testing.T) {
	api := &fakeAuthAPI{}
	svc := NewAuthService(api, session.NewStore(api))

	_, err := svc.Me(context.Background(), "")
	assert.ErrorIs(t, err, ErrAuthenticationRequired)
}

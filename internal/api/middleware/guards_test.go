package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/talentbinder/dashboard/internal/backend"
	"github.com/talentbinder/dashboard/internal/domain"
)

type stubSessions struct {
	session *domain.Session
}

func (s *stubSessions) Get(ctx context.Context, token string) *domain.Session {
	if token == "" {
		return nil
	}
	return s.session
}

func newGuardedRouter(sessions SessionChecker, adminOnly bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(SessionContext())

	guard := NewGuard(sessions)
	mw := guard.RequireSession()
	if adminOnly {
		mw = guard.RequireAdmin()
	}

	r.GET("/protected", mw, func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})
	return r
}

func request(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: backend.SessionCookieName, Value: token})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireSession_RedirectsAnonymousToLogin(t *testing.T) {
	r := newGuardedRouter(&stubSessions{}, false)

	w := request(r, "")

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestRequireSession_PassesAuthenticated(t *testing.T) {
	r := newGuardedRouter(&stubSessions{session: &domain.Session{ID: 1}}, false)

	w := request(r, "tok")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAdmin_RedirectsNonAdminToEvents(t *testing.T) {
	r := newGuardedRouter(&stubSessions{session: &domain.Session{ID: 1, Role: "recruiter"}}, true)

	w := request(r, "tok")

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/events", w.Header().Get("Location"))
}

func TestRequireAdmin_RedirectsAnonymousToLogin(t *testing.T) {
	r := newGuardedRouter(&stubSessions{session: &domain.Session{ID: 1, Role: domain.RoleAdmin}}, true)

	w := request(r, "")

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestRequireAdmin_PassesAdmin(t *testing.T) {
	r := newGuardedRouter(&stubSessions{session: &domain.Session{ID: 1, Role: domain.RoleAdmin}}, true)

	w := request(r, "tok")

	assert.Equal(t, http.StatusOK, w.Code)
}

package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentbinder/dashboard/internal/backend"
	"github.com/talentbinder/dashboard/internal/domain"
)

type stubAuthService struct {
	registered backend.Credentials
	session    domain.Session
	admin      bool
}

func (s *stubAuthService) Login(ctx context.Context, creds backend.Credentials) (domain.Session, []*http.Cookie, error) {
	return s.session, nil, nil
}

func (s *stubAuthService) Register(ctx context.Context, creds backend.Credentials) (domain.Session, []*http.Cookie, error) {
	s.registered = creds
	return s.session, nil, nil
}

func (s *stubAuthService) Logout(ctx context.Context, token string) ([]*http.Cookie, error) {
	return nil, nil
}

func (s *stubAuthService) Me(ctx context.Context, token string) (domain.Session, error) {
	return s.session, nil
}

func (s *stubAuthService) AdminStatus(ctx context.Context, token string) bool {
	return s.admin
}

func (s *stubAuthService) LDAPStatus(ctx context.Context) (bool, error) {
	return false, nil
}

func newAuthRouter(svc *stubAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAuthHandler(svc)
	r.POST("/auth/register", h.HandleRegister)
	r.GET("/auth/admin-status", h.HandleAdminStatus)
	return r
}

func TestHandleRegister_ForwardsNameFields(t *testing.T) {
	svc := &stubAuthService{session: domain.Session{ID: 1}}
	r := newAuthRouter(svc)

	body := `{"email":"anna@example.ch","password":"abcdef12","confirmPassword":"abcdef12","firstName":"Anna","lastName":"Muster"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "anna@example.ch", svc.registered.Email)
	assert.Equal(t, "Anna", svc.registered.FirstName)
	assert.Equal(t, "Muster", svc.registered.LastName)
}

func TestHandleRegister_MissingFirstNameIs400(t *testing.T) {
	svc := &stubAuthService{}
	r := newAuthRouter(svc)

	body := `{"email":"anna@example.ch","password":"abcdef12","confirmPassword":"abcdef12"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, svc.registered.Email)
}

func TestHandleAdminStatus(t *testing.T) {
	svc := &stubAuthService{admin: true}
	r := newAuthRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auth/admin-status", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		IsAdmin bool `json:"isAdmin"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.IsAdmin)
}

package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/talentbinder/dashboard/internal/api/handler/v1/request"
	"github.com/talentbinder/dashboard/internal/api/handler/v1/response"
	"github.com/talentbinder/dashboard/internal/api/middleware"
	"github.com/talentbinder/dashboard/internal/backend"
	"github.com/talentbinder/dashboard/internal/domain"
)

type AuthService interface {
	Login(ctx context.Context, creds backend.Credentials) (domain.Session, []*http.Cookie, error)
	Register(ctx context.Context, creds backend.Credentials) (domain.Session, []*http.Cookie, error)
	Logout(ctx context.Context, token string) ([]*http.Cookie, error)
	Me(ctx context.Context, token string) (domain.Session, error)
	AdminStatus(ctx context.Context, token string) bool
	LDAPStatus(ctx context.Context) (bool, error)
}

type AuthHandler struct {
	svc AuthService
}

func NewAuthHandler(svc AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// relayCookies forwards the backend's Set-Cookie headers to the browser
// unchanged; the gateway never mints its own session cookie.
func relayCookies(ctx *gin.Context, cookies []*http.Cookie) {
	for _, cookie := range cookies {
		// Add, not Set: the backend may send more than one cookie.
		ctx.Writer.Header().Add("Set-Cookie", cookie.String())
	}
}

// HandleLogin godoc
// @Summary      Login with backend or LDAP credentials
// @Tags         auth
// @Produce      json
// @Param        request   body      request.LoginRequest true "request body"
// @Success      200      {object}   response.SessionResponse
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Router       /auth/login [post]
func (h *AuthHandler) HandleLogin(ctx *gin.Context) {
	var req request.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	sess, cookies, err := h.svc.Login(ctx.Request.Context(), backend.Credentials{
		Email:           req.Email,
		Password:        req.Password,
		PreferredMethod: req.PreferredMethod,
	})
	if err != nil {
		renderServiceErr(ctx, fmt.Errorf("v1.HandleLogin -> %w", err))
		return
	}

	relayCookies(ctx, cookies)
	ctx.JSON(http.StatusOK, response.SessionResponse{User: sess})
}

// HandleRegister godoc
// @Summary      Register a new account
// @Tags         auth
// @Produce      json
// @Param        request   body      request.RegisterRequest true "request body"
// @Success      201      {object}   response.SessionResponse
// @Failure      400      {object}   response.Err
// @Router       /auth/register [post]
func (h *AuthHandler) HandleRegister(ctx *gin.Context) {
	var req request.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	sess, cookies, err := h.svc.Register(ctx.Request.Context(), backend.Credentials{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		renderServiceErr(ctx, fmt.Errorf("v1.HandleRegister -> %w", err))
		return
	}

	relayCookies(ctx, cookies)
	ctx.JSON(http.StatusCreated, response.SessionResponse{User: sess})
}

// HandleLogout godoc
// @Summary      Logout and clear the cached session
// @Tags         auth
// @Produce      json
// @Success      204
// @Failure      502      {object}   response.Err
// @Router       /auth/logout [post]
func (h *AuthHandler) HandleLogout(ctx *gin.Context) {
	cookies, err := h.svc.Logout(ctx.Request.Context(), middleware.SessionToken(ctx))
	if err != nil {
		renderServiceErr(ctx, fmt.Errorf("v1.HandleLogout -> %w", err))
		return
	}

	relayCookies(ctx, cookies)
	ctx.Status(http.StatusNoContent)
}

// HandleMe godoc
// @Summary      Get the current session
// @Tags         auth
// @Produce      json
// @Success      200      {object}   response.SessionResponse
// @Failure      401      {object}   response.Err
// @Router       /auth/me [get]
func (h *AuthHandler) HandleMe(ctx *gin.Context) {
	sess, err := h.svc.Me(ctx.Request.Context(), middleware.SessionToken(ctx))
	if err != nil {
		renderServiceErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response.SessionResponse{User: sess})
}

// HandleAdminStatus godoc
// @Summary      Report whether the current session has admin rights
// @Tags         auth
// @Produce      json
// @Success      200      {object}   response.AdminStatusResponse
// @Router       /auth/admin-status [get]
func (h *AuthHandler) HandleAdminStatus(ctx *gin.Context) {
	isAdmin := h.svc.AdminStatus(ctx.Request.Context(), middleware.SessionToken(ctx))

	ctx.JSON(http.StatusOK, response.AdminStatusResponse{IsAdmin: isAdmin})
}

// HandleLDAPStatus godoc
// @Summary      Report whether LDAP login is available
// @Tags         auth
// @Produce      json
// @Success      200      {object}   response.LDAPStatusResponse
// @Router       /auth/ldap-status [get]
func (h *AuthHandler) HandleLDAPStatus(ctx *gin.Context) {
	available, err := h.svc.LDAPStatus(ctx.Request.Context())
	if err != nil {
		// The login page only hides the LDAP toggle; never block rendering.
		available = false
	}

	ctx.JSON(http.StatusOK, response.LDAPStatusResponse{Available: available})
}

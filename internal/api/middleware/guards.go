package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/talentbinder/dashboard/internal/domain"
)

const loginPath = "/login"
const eventsPath = "/events"

// SessionChecker is the slice of the session store the guards need.
type SessionChecker interface {
	Get(ctx context.Context, token string) *domain.Session
}

type Guard struct {
	sessions SessionChecker
}

func NewGuard(sessions SessionChecker) *Guard {
	return &Guard{sessions: sessions}
}

// RequireSession redirects unauthenticated requests to the login page. The
// check runs on every request; only the session lookup behind it is cached.
func (g *Guard) RequireSession() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		sess := g.sessions.Get(ctx.Request.Context(), SessionToken(ctx))
		if sess == nil {
			ctx.Redirect(http.StatusSeeOther, loginPath)
			ctx.Abort()
			return
		}

		ctx.Next()
	}
}

// RequireAdmin sends unauthenticated requests to the login page and
// authenticated non-admins back to the events overview.
func (g *Guard) RequireAdmin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		sess := g.sessions.Get(ctx.Request.Context(), SessionToken(ctx))
		if sess == nil {
			ctx.Redirect(http.StatusSeeOther, loginPath)
			ctx.Abort()
			return
		}
		if !sess.IsAdmin() {
			ctx.Redirect(http.StatusSeeOther, eventsPath)
			ctx.Abort()
			return
		}

		ctx.Next()
	}
}

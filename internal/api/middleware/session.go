package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/talentbinder/dashboard/internal/backend"
)

const sessionTokenKey = "sessionToken"

// SessionContext lifts the inbound session cookie into the gin context and the
// request context, so every upstream call made on behalf of this request is
// credential-bearing. It never rejects; the guards decide that.
func SessionContext() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token, err := ctx.Cookie(backend.SessionCookieName)
		if err != nil {
			token = ""
		}

		ctx.Set(sessionTokenKey, token)
		ctx.Request = ctx.Request.WithContext(
			backend.WithSessionCookie(ctx.Request.Context(), token),
		)

		ctx.Next()
	}
}

// SessionToken returns the cookie value stashed by SessionContext; empty when
// the browser sent none.
func SessionToken(ctx *gin.Context) string {
	return ctx.GetString(sessionTokenKey)
}

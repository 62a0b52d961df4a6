package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"shuttle-checkin/internal/domain"
	"shuttle-checkin/internal/service"
	resp "shuttle-checkin/internal/transport/http/response"
)

const keyUser = "user"

// IdentityResolver turns a session token into the user acting on the request.
type IdentityResolver interface {
	Resolve(ctx context.Context, token string) (domain.User, error)
}

// Token reads the session token from the Authorization header, falling back to
// the session cookie.
func Token(c *gin.Context, cookie string) string {
	if ah := c.GetHeader("Authorization"); strings.HasPrefix(ah, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(ah, "Bearer "))
	}
	if cookie == "" {
		return ""
	}
	v, err := c.Cookie(cookie)
	if err != nil {
		return ""
	}
	return v
}

// RequireAuth rejects the request with 401 unless it carries a live session.
func RequireAuth(r IdentityResolver, cookie string) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, err := r.Resolve(c.Request.Context(), Token(c, cookie))
		if err != nil {
			resp.FromError(c, err)
			return
		}
		c.Set(keyUser, u)
		c.Set("uid", u.ID)
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		u, ok := CurrentUser(c)
		if !ok {
			resp.FromError(c, service.ErrUnauthenticated)
			return
		}
		if !u.IsAdmin() {
			resp.Abort(c, http.StatusForbidden, service.ErrAdminOnly.Msg)
			return
		}
		c.Next()
	}
}

func CurrentUser(c *gin.Context) (domain.User, bool) {
	v, ok := c.Get(keyUser)
	if !ok {
		return domain.User{}, false
	}
	u, ok := v.(domain.User)
	return u, ok
}

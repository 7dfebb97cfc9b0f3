package middleware

import (
	"net/http"
	"strings"

	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/apierror"
	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/session"

	"github.com/gin-gonic/gin"
)

const (
	SessionStatusKey = "session_status"
	LoginPath        = "/login"
)

// TokenVerifier is satisfied by session.Signer and service.AuthService.
type TokenVerifier interface {
	Verify(token string) session.Status
}

// CookieAuth lets a request through only with a valid chlm_auth cookie.
// Browser page loads are redirected to the login form; API calls get a 401.
func CookieAuth(v TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := session.StatusInvalid
		if token, err := c.Cookie(session.CookieName); err == nil && token != "" {
			status = v.Verify(token)
		}
		c.Set(SessionStatusKey, status)
		if status.OK() {
			c.Next()
			return
		}

		if wantsHTML(c.Request) {
			c.Redirect(http.StatusSeeOther, LoginPath)
			c.Abort()
			return
		}
		detail := "Authentication required"
		if status == session.StatusExpired {
			detail = "Session expired"
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New(detail))
	}
}

func wantsHTML(r *http.Request) bool {
	return r.Method == http.MethodGet && strings.Contains(r.Header.Get("Accept"), "text/html")
}

package handler

import (
	"errors"
	"html/template"
	"net/http"
	"strings"

	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/apierror"
	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/dto"
	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/middleware"
	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/service"
	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

var loginPage = template.Must(template.New("login").Parse(`<!doctype html>
<html lang="en">
<head><meta charset="utf-8"><title>CHLM Dashboard - Sign in</title></head>
<body>
<h1>CHLM Dashboard</h1>
{{if .Failed}}<p role="alert">Wrong password.</p>{{end}}
<form method="post" action="/login">
<label for="password">Employee password</label>
<input id="password" name="password" type="password" autocomplete="current-password" required autofocus>
<button type="submit">Sign in</button>
</form>
</body>
</html>
`))

type AuthHandler struct {
	svc    service.AuthService
	secure bool
}

// NewAuthHandler; secure marks the cookie Secure (production, behind TLS).
func NewAuthHandler(svc service.AuthService, secure bool) *AuthHandler {
	return &AuthHandler{svc: svc, secure: secure}
}

// LoginPage renders the password form, or sends a signed-in browser home.
func (h *AuthHandler) LoginPage(c *gin.Context) {
	if token, err := c.Cookie(session.CookieName); err == nil && h.svc.Verify(token).OK() {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	c.Status(http.StatusOK)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := loginPage.Execute(c.Writer, struct{ Failed bool }{c.Query("error") != ""}); err != nil {
		_ = c.Error(err)
	}
}

// Login godoc
// @Summary Sign in with the employee password
// @Tags auth
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param body body dto.LoginRequest true "Password"
// @Success 200 {object} apierror.Result
// @Failure 401 {object} apierror.APIError
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	form := isFormPost(c.Request)

	var req dto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid request: "+err.Error()))
		return
	}
	if !runValidation(c, &req) {
		return
	}

	token, err := h.svc.Login(c.Request.Context(), req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			log.Warn().Str("ip", c.ClientIP()).Msg("failed login")
			if form {
				c.Redirect(http.StatusSeeOther, middleware.LoginPath+"?error=1")
				return
			}
		}
		respondError(c, err)
		return
	}

	h.setCookie(c, token, int(session.MaxAge.Seconds()))
	if form {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	c.JSON(http.StatusOK, apierror.OK())
}

// Logout clears the cookie. The token itself stays valid until it expires.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.setCookie(c, "", -1)
	if isFormPost(c.Request) {
		c.Redirect(http.StatusSeeOther, middleware.LoginPath)
		return
	}
	c.JSON(http.StatusOK, apierror.OK())
}

func (h *AuthHandler) setCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(session.CookieName, value, maxAge, "/", "", h.secure, true)
}

func isFormPost(r *http.Request) bool {
	ct := r.Header.Get("Content-Type")
	return strings.HasPrefix(ct, "application/x-www-form-urlencoded") || strings.HasPrefix(ct, "multipart/form-data")
}

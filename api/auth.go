package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xwasu/airline-project/config"
	"github.com/xwasu/airline-project/internal/domain"
	"github.com/xwasu/airline-project/internal/service/auth"
)

type AuthHandler struct {
	service auth.AuthUseCase
	cookie  config.SessionConfig
}

type loginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

func NewAuthHandler(service auth.AuthUseCase, cookie config.SessionConfig) *AuthHandler {
	return &AuthHandler{service: service, cookie: cookie}
}

// Register mounts the account routes. Form submissions for login and
// registration pass through limit first.
func (h *AuthHandler) Register(router *gin.RouterGroup, gate *Gate, limit gin.HandlerFunc) {
	router.GET("/login", gate.Public(h.loginForm))
	router.POST("/login", limit, gate.Public(h.login))
	router.GET("/logout", gate.Public(h.logout))
	router.POST("/logout", gate.Public(h.logout))
	router.GET("/registration", gate.Public(h.registrationForm))
	router.POST("/registration", limit, gate.Public(h.register))
}

func (h *AuthHandler) loginForm(c *gin.Context, sess *domain.Session) {
	render(c, http.StatusOK, "login.html", sess, nil)
}

func (h *AuthHandler) login(c *gin.Context, sess *domain.Session) {
	var form loginForm
	_ = c.ShouldBind(&form)

	session, err := h.service.Login(c.Request.Context(), form.Username, form.Password)
	if errors.Is(err, domain.ErrInvalidCredentials) {
		render(c, http.StatusOK, "login.html", sess, gin.H{"Message": "Invalid credentials."})
		return
	}
	if err != nil {
		renderError(c, sess, err)
		return
	}

	h.setCookie(c, session.Token, h.cookie.TTLMinutes*60)
	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) logout(c *gin.Context, sess *domain.Session) {
	if token, err := c.Cookie(h.cookie.CookieName); err == nil {
		if err := h.service.Logout(c.Request.Context(), token); err != nil {
			renderError(c, sess, err)
			return
		}
	}
	h.setCookie(c, "", -1)
	render(c, http.StatusOK, "login.html", nil, gin.H{"Message": "Logged out."})
}

func (h *AuthHandler) registrationForm(c *gin.Context, sess *domain.Session) {
	render(c, http.StatusOK, "registration.html", sess, nil)
}

func (h *AuthHandler) register(c *gin.Context, sess *domain.Session) {
	var form domain.Registration
	_ = c.ShouldBind(&form)

	session, err := h.service.Register(c.Request.Context(), form)
	if verr, ok := domain.AsValidationError(err); ok {
		render(c, http.StatusOK, "registration.html", sess, gin.H{
			"Form":   gin.H{"Username": form.Username, "Email": form.Email},
			"Errors": verr.Fields,
		})
		return
	}
	if err != nil {
		renderError(c, sess, err)
		return
	}

	h.setCookie(c, session.Token, h.cookie.TTLMinutes*60)
	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) setCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.CookieName, value, maxAge, "/", "", h.cookie.Secure, true)
}

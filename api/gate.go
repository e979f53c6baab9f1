package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xwasu/airline-project/internal/domain"
	"github.com/xwasu/airline-project/internal/service/auth"
)

// SessionHandler receives the caller's session explicitly; sess is nil for
// anonymous requests.
type SessionHandler func(c *gin.Context, sess *domain.Session)

// Gate resolves the session cookie and applies a per-route policy for
// anonymous callers.
type Gate struct {
	auth       auth.AuthUseCase
	cookieName string
}

func NewGate(auth auth.AuthUseCase, cookieName string) *Gate {
	return &Gate{auth: auth, cookieName: cookieName}
}

func (g *Gate) session(c *gin.Context) *domain.Session {
	token, err := c.Cookie(g.cookieName)
	if err != nil || token == "" {
		return nil
	}
	sess, err := g.auth.Authenticate(c.Request.Context(), token)
	if err != nil {
		log.Printf("session lookup failed: %v", err)
		return nil
	}
	return sess
}

// Public lets everyone through.
func (g *Gate) Public(h SessionHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		h(c, g.session(c))
	}
}

// LoginRequired sends anonymous callers to the login page.
func (g *Gate) LoginRequired(h SessionHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := g.session(c)
		if sess == nil {
			c.Redirect(http.StatusFound, "/login")
			return
		}
		h(c, sess)
	}
}

// LoginOrNotFound answers anonymous callers as if the resource did not exist.
func (g *Gate) LoginOrNotFound(h SessionHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := g.session(c)
		if sess == nil {
			renderNotFound(c, nil, "Page not found.")
			return
		}
		h(c, sess)
	}
}

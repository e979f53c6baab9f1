package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/xwasu/airline-project/internal/domain"
)

func render(c *gin.Context, status int, name string, sess *domain.Session, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["User"] = sess
	c.HTML(status, name, data)
}

func renderNotFound(c *gin.Context, sess *domain.Session, message string) {
	render(c, http.StatusNotFound, "error.html", sess, gin.H{
		"Status":  http.StatusNotFound,
		"Message": message,
	})
}

// renderError answers with a 404 page for missing rows and a 500 page otherwise.
func renderError(c *gin.Context, sess *domain.Session, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		renderNotFound(c, sess, err.Error())
		return
	}
	log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	render(c, http.StatusInternalServerError, "error.html", sess, gin.H{
		"Status":  http.StatusInternalServerError,
		"Message": "Something went wrong.",
	})
}

// parseID reads a positive integer path parameter. A malformed identifier
// answers 404 and returns false.
func parseID(c *gin.Context, sess *domain.Session, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		renderNotFound(c, sess, "Page not found.")
		return 0, false
	}
	return id, true
}

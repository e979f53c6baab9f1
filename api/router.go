package api

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xwasu/airline-project/internal/domain"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Templates parses every page; each is looked up by file name.
func Templates() *template.Template {
	return template.Must(template.New("").ParseFS(templatesFS, "templates/*.html"))
}

type Handlers struct {
	Flights    *FlightHandler
	Bookings   *BookingHandler
	Airports   *AirportHandler
	Passengers *PassengerHandler
	Auth       *AuthHandler
}

func NewRouter(gate *Gate, limiter *RateLimiter, h Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.SetHTMLTemplate(Templates())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	root := router.Group("/")
	h.Auth.Register(root, gate, limiter.Middleware())
	h.Airports.Register(router.Group("/airports"), gate)
	h.Passengers.Register(router.Group("/passengers"), gate)
	h.Flights.Register(root, gate)
	h.Bookings.Register(root, gate)

	router.NoRoute(gate.Public(func(c *gin.Context, sess *domain.Session) {
		renderNotFound(c, sess, "Page not found.")
	}))

	return router
}

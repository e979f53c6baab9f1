package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xwasu/airline-project/internal/domain"
	"github.com/xwasu/airline-project/internal/service/airports"
	"github.com/xwasu/airline-project/internal/service/flights"
)

type FlightHandler struct {
	service  flights.FlightUseCase
	airports airports.AirportUseCase
}

type flightForm struct {
	Origin      string `form:"origin"`
	Destination string `form:"destination"`
	Duration    string `form:"duration"`
}

func NewFlightHandler(service flights.FlightUseCase, airports airports.AirportUseCase) *FlightHandler {
	return &FlightHandler{service: service, airports: airports}
}

func (h *FlightHandler) Register(router *gin.RouterGroup, gate *Gate) {
	router.GET("/", gate.Public(h.list))
	router.GET("/create/", gate.LoginRequired(h.createForm))
	router.POST("/create/", gate.LoginRequired(h.create))
	router.GET("/:flight_id", gate.Public(h.detail))
	router.GET("/:flight_id/update/", gate.LoginRequired(h.updateForm))
	router.POST("/:flight_id/update/", gate.LoginRequired(h.update))
	router.POST("/:flight_id/delete/", gate.LoginRequired(h.delete))
}

func (h *FlightHandler) list(c *gin.Context, sess *domain.Session) {
	page, err := h.service.List(c.Request.Context(), c.Query("page"))
	if err != nil {
		renderError(c, sess, err)
		return
	}
	render(c, http.StatusOK, "index.html", sess, gin.H{"Page": page})
}

func (h *FlightHandler) detail(c *gin.Context, sess *domain.Session) {
	id, ok := parseID(c, sess, "flight_id")
	if !ok {
		return
	}
	detail, err := h.service.Detail(c.Request.Context(), id)
	if err != nil {
		renderError(c, sess, err)
		return
	}
	render(c, http.StatusOK, "flight.html", sess, gin.H{
		"Flight":        detail.Flight,
		"Passengers":    detail.Passengers,
		"NonPassengers": detail.NonPassengers,
	})
}

func (h *FlightHandler) createForm(c *gin.Context, sess *domain.Session) {
	h.renderForm(c, sess, http.StatusOK, 0, flightForm{}, nil)
}

func (h *FlightHandler) create(c *gin.Context, sess *domain.Session) {
	var form flightForm
	_ = c.ShouldBind(&form)

	flight, err := domain.ParseFlight(form.Origin, form.Destination, form.Duration)
	if err == nil {
		_, err = h.service.Create(c.Request.Context(), flight)
	}
	if verr, ok := domain.AsValidationError(err); ok {
		h.renderForm(c, sess, http.StatusOK, 0, form, verr.Fields)
		return
	}
	if err != nil {
		renderError(c, sess, err)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

func (h *FlightHandler) updateForm(c *gin.Context, sess *domain.Session) {
	id, ok := parseID(c, sess, "flight_id")
	if !ok {
		return
	}
	flight, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		renderError(c, sess, err)
		return
	}
	h.renderForm(c, sess, http.StatusOK, id, flightForm{
		Origin:      fmt.Sprint(flight.OriginID),
		Destination: fmt.Sprint(flight.DestinationID),
		Duration:    fmt.Sprint(flight.Duration),
	}, nil)
}

func (h *FlightHandler) update(c *gin.Context, sess *domain.Session) {
	id, ok := parseID(c, sess, "flight_id")
	if !ok {
		return
	}
	if _, err := h.service.Get(c.Request.Context(), id); err != nil {
		renderError(c, sess, err)
		return
	}

	var form flightForm
	_ = c.ShouldBind(&form)

	flight, err := domain.ParseFlight(form.Origin, form.Destination, form.Duration)
	if err == nil {
		_, err = h.service.Update(c.Request.Context(), id, flight)
	}
	if verr, ok := domain.AsValidationError(err); ok {
		h.renderForm(c, sess, http.StatusOK, id, form, verr.Fields)
		return
	}
	if err != nil {
		renderError(c, sess, err)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

func (h *FlightHandler) delete(c *gin.Context, sess *domain.Session) {
	id, ok := parseID(c, sess, "flight_id")
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		renderError(c, sess, err)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

func (h *FlightHandler) renderForm(c *gin.Context, sess *domain.Session, status int, id int64, form flightForm, errs map[string]string) {
	airportList, err := h.airports.All(c.Request.Context())
	if err != nil {
		renderError(c, sess, err)
		return
	}
	render(c, status, "flight_form.html", sess, gin.H{
		"ID":       id,
		"Form":     form,
		"Errors":   errs,
		"Airports": airportList,
	})
}

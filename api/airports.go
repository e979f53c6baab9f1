package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xwasu/airline-project/internal/domain"
	"github.com/xwasu/airline-project/internal/service/airports"
)

type AirportHandler struct {
	service airports.AirportUseCase
}

type airportForm struct {
	Code string `form:"code"`
	City string `form:"city"`
}

func NewAirportHandler(service airports.AirportUseCase) *AirportHandler {
	return &AirportHandler{service: service}
}

func (h *AirportHandler) Register(router *gin.RouterGroup, gate *Gate) {
	router.GET("", gate.Public(h.list))
	router.GET("/create/", gate.LoginRequired(h.createForm))
	router.POST("/create/", gate.LoginRequired(h.create))
	router.GET("/:id/update/", gate.LoginRequired(h.updateForm))
	router.POST("/:id/update/", gate.LoginRequired(h.update))
	router.POST("/:id/delete/", gate.LoginRequired(h.delete))
}

func (h *AirportHandler) list(c *gin.Context, sess *domain.Session) {
	page, err := h.service.List(c.Request.Context(), c.Query("page"))
	if err != nil {
		renderError(c, sess, err)
		return
	}
	render(c, http.StatusOK, "airports.html", sess, gin.H{"Page": page})
}

func (h *AirportHandler) createForm(c *gin.Context, sess *domain.Session) {
	renderAirportForm(c, sess, 0, airportForm{}, nil)
}

func (h *AirportHandler) create(c *gin.Context, sess *domain.Session) {
	var form airportForm
	_ = c.ShouldBind(&form)

	_, err := h.service.Create(c.Request.Context(), form.Code, form.City)
	if verr, ok := domain.AsValidationError(err); ok {
		renderAirportForm(c, sess, 0, form, verr.Fields)
		return
	}
	if err != nil {
		renderError(c, sess, err)
		return
	}
	c.Redirect(http.StatusFound, "/airports")
}

func (h *AirportHandler) updateForm(c *gin.Context, sess *domain.Session) {
	id, ok := parseID(c, sess, "id")
	if !ok {
		return
	}
	airport, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		renderError(c, sess, err)
		return
	}
	renderAirportForm(c, sess, id, airportForm{Code: airport.Code, City: airport.City}, nil)
}

func (h *AirportHandler) update(c *gin.Context, sess *domain.Session) {
	id, ok := parseID(c, sess, "id")
	if !ok {
		return
	}
	if _, err := h.service.Get(c.Request.Context(), id); err != nil {
		renderError(c, sess, err)
		return
	}

	var form airportForm
	_ = c.ShouldBind(&form)

	_, err := h.service.Update(c.Request.Context(), id, form.Code, form.City)
	if verr, ok := domain.AsValidationError(err); ok {
		renderAirportForm(c, sess, id, form, verr.Fields)
		return
	}
	if err != nil {
		renderError(c, sess, err)
		return
	}
	c.Redirect(http.StatusFound, "/airports")
}

func (h *AirportHandler) delete(c *gin.Context, sess *domain.Session) {
	id, ok := parseID(c, sess, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		renderError(c, sess, err)
		return
	}
	c.Redirect(http.StatusFound, "/airports")
}

func renderAirportForm(c *gin.Context, sess *domain.Session, id int64, form airportForm, errs map[string]string) {
	render(c, http.StatusOK, "airport_form.html", sess, gin.H{
		"ID":     id,
		"Form":   form,
		"Errors": errs,
	})
}

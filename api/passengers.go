package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xwasu/airline-project/internal/domain"
	"github.com/xwasu/airline-project/internal/service/passengers"
)

type PassengerHandler struct {
	service passengers.PassengerUseCase
}

type passengerForm struct {
	First string `form:"first"`
	Last  string `form:"last"`
}

func NewPassengerHandler(service passengers.PassengerUseCase) *PassengerHandler {
	return &PassengerHandler{service: service}
}

func (h *PassengerHandler) Register(router *gin.RouterGroup, gate *Gate) {
	router.GET("", gate.LoginRequired(h.list))
	router.GET("/create/", gate.LoginRequired(h.createForm))
	router.POST("/create/", gate.LoginRequired(h.create))
	router.GET("/:id/update/", gate.LoginRequired(h.updateForm))
	router.POST("/:id/update/", gate.LoginRequired(h.update))
	router.POST("/:id/delete/", gate.LoginRequired(h.delete))
}

func (h *PassengerHandler) list(c *gin.Context, sess *domain.Session) {
	page, err := h.service.List(c.Request.Context(), c.Query("page"))
	if err != nil {
		renderError(c, sess, err)
		return
	}
	render(c, http.StatusOK, "passengers.html", sess, gin.H{"Page": page})
}

func (h *PassengerHandler) createForm(c *gin.Context, sess *domain.Session) {
	renderPassengerForm(c, sess, 0, passengerForm{}, nil)
}

func (h *PassengerHandler) create(c *gin.Context, sess *domain.Session) {
	var form passengerForm
	_ = c.ShouldBind(&form)

	_, err := h.service.Create(c.Request.Context(), form.First, form.Last)
	if verr, ok := domain.AsValidationError(err); ok {
		renderPassengerForm(c, sess, 0, form, verr.Fields)
		return
	}
	if err != nil {
		renderError(c, sess, err)
		return
	}
	c.Redirect(http.StatusFound, "/passengers")
}

func (h *PassengerHandler) updateForm(c *gin.Context, sess *domain.Session) {
	id, ok := parseID(c, sess, "id")
	if !ok {
		return
	}
	passenger, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		renderError(c, sess, err)
		return
	}
	renderPassengerForm(c, sess, id, passengerForm{First: passenger.First, Last: passenger.Last}, nil)
}

func (h *PassengerHandler) update(c *gin.Context, sess *domain.Session) {
	id, ok := parseID(c, sess, "id")
	if !ok {
		return
	}
	if _, err := h.service.Get(c.Request.Context(), id); err != nil {
		renderError(c, sess, err)
		return
	}

	var form passengerForm
	_ = c.ShouldBind(&form)

	_, err := h.service.Update(c.Request.Context(), id, form.First, form.Last)
	if verr, ok := domain.AsValidationError(err); ok {
		renderPassengerForm(c, sess, id, form, verr.Fields)
		return
	}
	if err != nil {
		renderError(c, sess, err)
		return
	}
	c.Redirect(http.StatusFound, "/passengers")
}

func (h *PassengerHandler) delete(c *gin.Context, sess *domain.Session) {
	id, ok := parseID(c, sess, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		renderError(c, sess, err)
		return
	}
	c.Redirect(http.StatusFound, "/passengers")
}

func renderPassengerForm(c *gin.Context, sess *domain.Session, id int64, form passengerForm, errs map[string]string) {
	render(c, http.StatusOK, "passenger_form.html", sess, gin.H{
		"ID":     id,
		"Form":   form,
		"Errors": errs,
	})
}

package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/xwasu/airline-project/internal/domain"
	"github.com/xwasu/airline-project/internal/service/booking"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

type bookingForm struct {
	Passenger string `form:"passenger"`
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup, gate *Gate) {
	router.POST("/:flight_id/book", gate.LoginOrNotFound(h.book))
	router.POST("/:flight_id/unbook", gate.LoginOrNotFound(h.unbook))
}

func (h *BookingHandler) book(c *gin.Context, sess *domain.Session) {
	h.change(c, sess, h.service.Book)
}

func (h *BookingHandler) unbook(c *gin.Context, sess *domain.Session) {
	h.change(c, sess, h.service.Unbook)
}

func (h *BookingHandler) change(c *gin.Context, sess *domain.Session, apply func(ctx context.Context, flightID, passengerID int64) error) {
	flightID, ok := parseID(c, sess, "flight_id")
	if !ok {
		return
	}

	var form bookingForm
	_ = c.ShouldBind(&form)
	passengerID, err := strconv.ParseInt(form.Passenger, 10, 64)
	if err != nil || passengerID <= 0 {
		renderNotFound(c, sess, "Unknown passenger.")
		return
	}

	if err := apply(c.Request.Context(), flightID, passengerID); err != nil {
		renderError(c, sess, err)
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/%d", flightID))
}

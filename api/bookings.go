package api

import (
	"errors"
	"net/http"

	"github.com/Domenick1991/travelapp/internal/domain"
	"github.com/Domenick1991/travelapp/internal/service/booking"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const bookingCreatedMessage = "Booking created successfully"

type BookingHandler struct {
	service booking.BookingUseCase
	log     zerolog.Logger
}

func NewBookingHandler(service booking.BookingUseCase, log zerolog.Logger) *BookingHandler {
	return &BookingHandler{service: service, log: log}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("", h.create)
	router.GET("/:reference", h.get)
}

// create godoc
// @Summary      Create booking
// @Description  Books one passenger on a flight and returns the booking reference
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        request  body  booking.CreateBookingInput  true  "Booking"
// @Success      201  {object}  bookingResult
// @Failure      400  {object}  bookingResult
// @Failure      409  {object}  bookingResult
// @Failure      500  {object}  bookingResult
// @Router       /api/v1/bookings [post]
func (h *BookingHandler) create(c *gin.Context) {
	var req booking.CreateBookingInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bookingResult{Message: "Invalid request body"})
		return
	}

	created, err := h.service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		status, message := errorStatus(err)
		if status == http.StatusInternalServerError {
			h.log.Error().Err(err).Int64("flight_id", req.FlightID).Msg("create_booking")
		}
		c.JSON(status, bookingResult{Message: message})
		return
	}

	c.JSON(http.StatusCreated, bookingResult{
		Success: true,
		Booking: newBookingResponse(created),
		Message: bookingCreatedMessage,
	})
}

// get godoc
// @Summary      Find booking by reference
// @Tags         bookings
// @Produce      json
// @Param        reference  path  string  true  "Booking reference"
// @Success      200  {object}  bookingResponse
// @Failure      404  "null"
// @Router       /api/v1/bookings/{reference} [get]
func (h *BookingHandler) get(c *gin.Context) {
	reference := c.Param("reference")
	if !domain.IsReference(reference) {
		c.JSON(http.StatusNotFound, nil)
		return
	}

	found, err := h.service.GetByReference(c.Request.Context(), reference)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, nil)
			return
		}
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, newBookingResponse(found))
}

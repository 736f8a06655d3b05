package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Domenick1991/travelapp/internal/domain"
	"github.com/Domenick1991/travelapp/internal/service/flights"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type FlightHandler struct {
	service flights.FlightUseCase
	log     zerolog.Logger
}

func NewFlightHandler(service flights.FlightUseCase, log zerolog.Logger) *FlightHandler {
	return &FlightHandler{service: service, log: log}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("/search", h.search)
	router.GET("/:id", h.get)
}

// search godoc
// @Summary      Search flights
// @Description  Flights on a route departing on the given day, in departure order unless sort is set
// @Tags         flights
// @Produce      json
// @Param        origin         query  string  true   "Origin airport code"
// @Param        destination    query  string  true   "Destination airport code"
// @Param        departureDate  query  string  true   "Departure date (YYYY-MM-DD)"
// @Param        passengers     query  int     false  "Passenger count" default(1)
// @Param        sort           query  string  false  "price, duration or departureTime"
// @Success      200  {array}   flightResponse
// @Failure      400  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/v1/flights/search [get]
func (h *FlightHandler) search(c *gin.Context) {
	passengers := 1
	if raw := c.Query("passengers"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "passengers must be a number"})
			return
		}
		passengers = n
	}

	result, err := h.service.Search(c.Request.Context(),
		c.Query("origin"), c.Query("destination"), c.Query("departureDate"), passengers)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	sorted, err := flights.SortBy(result, c.Query("sort"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, newFlightList(sorted))
}

// get godoc
// @Summary      Get flight
// @Tags         flights
// @Produce      json
// @Param        id   path  int  true  "Flight ID"
// @Success      200  {object}  flightResponse
// @Failure      404  "null"
// @Router       /api/v1/flights/{id} [get]
func (h *FlightHandler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}
	flight, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, nil)
			return
		}
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, newFlightResponse(flight))
}

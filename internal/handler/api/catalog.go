package api

import (
	"errors"
	"net/http"

	resdto "gaming-zone-booking/internal/handler/dto/response"
	"gaming-zone-booking/internal/handler/httperr"
	"gaming-zone-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errDateRequired = errors.New("date query parameter is required")

type CatalogHandler struct {
	catalog      queries.CatalogQueries
	availability queries.AvailabilityQueries
}

func NewCatalogHandler(catalog queries.CatalogQueries, availability queries.AvailabilityQueries) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, availability: availability}
}

// @Summary List venues
// @Tags venues
// @Produce json
// @Param city query string false "City filter"
// @Success 200 {array} queries.VenueView
// @Router /venues [get]
func (h *CatalogHandler) ListVenues(c *gin.Context) {
	venues, err := h.catalog.ListVenues(c.Request.Context(), c.Query("city"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	if venues == nil {
		venues = []*queries.VenueView{}
	}
	c.JSON(http.StatusOK, venues)
}

// @Summary Get venue
// @Description Venue with its games and the cafe items currently on offer
// @Tags venues
// @Produce json
// @Param id path string true "Venue ID"
// @Success 200 {object} queries.VenueDetailView
// @Failure 404 {object} httperr.Response
// @Router /venues/{id} [get]
func (h *CatalogHandler) GetVenue(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	v, err := h.catalog.GetVenue(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// @Summary Get game
// @Tags games
// @Produce json
// @Param id path string true "Game ID"
// @Success 200 {object} queries.GameView
// @Failure 404 {object} httperr.Response
// @Router /games/{id} [get]
func (h *CatalogHandler) GetGame(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	g, err := h.catalog.GetGame(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, g)
}

// @Summary Game availability
// @Description Hourly grid for one day; past and booked slots are unavailable
// @Tags games
// @Produce json
// @Param id path string true "Game ID"
// @Param date query string true "Day as YYYY-MM-DD"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Router /games/{id}/availability [get]
func (h *CatalogHandler) Availability(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	date := c.Query("date")
	if date == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errDateRequired, "Date is required", nil)
		return
	}
	a, err := h.availability.ForGame(c.Request.Context(), id, date)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailability(a))
}

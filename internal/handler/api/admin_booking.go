package api

import (
	"net/http"

	reqdto "gaming-zone-booking/internal/handler/dto/request"
	resdto "gaming-zone-booking/internal/handler/dto/response"
	"gaming-zone-booking/internal/handler/httperr"
	"gaming-zone-booking/internal/usecase/commands"
	"gaming-zone-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminBookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewAdminBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *AdminBookingHandler {
	return &AdminBookingHandler{cmds: cmds, q: q}
}

// @Summary List bookings
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter"
// @Param gameId query string false "Game filter"
// @Param venueId query string false "Venue filter"
// @Param date query string false "Day as YYYY-MM-DD"
// @Param limit query int false "Max items"
// @Param offset query int false "Offset"
// @Success 200 {object} resdto.BookingListResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /admin/bookings [get]
func (h *AdminBookingHandler) List(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	var f reqdto.AdminBookingFilter
	if !bindQuery(c, &f) {
		return
	}
	filter, err := f.ToFilter()
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	views, err := h.q.List(c.Request.Context(), a, filter)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary Create booking for a user
// @Description Admins may book on behalf of any user and start the booking as pending
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AdminCreateBookingRequest true "Booking request"
// @Success 201 {object} queries.BookingView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /admin/bookings [post]
func (h *AdminBookingHandler) Create(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	var req reqdto.AdminCreateBookingRequest
	if !bindJSON(c, &req) {
		return
	}
	b, err := h.cmds.Create(c.Request.Context(), a, req.ToInput())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.Header("Location", "/api/bookings/"+b.ID().String())
	c.JSON(http.StatusCreated, resdto.FromBooking(b))
}

// @Summary Change booking status
// @Description Applies a lifecycle transition; a version guards against concurrent edits
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.ChangeStatusRequest true "Transition"
// @Success 200 {object} queries.BookingView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/bookings/{id}/status [patch]
func (h *AdminBookingHandler) ChangeStatus(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.ChangeStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	b, err := h.cmds.ChangeStatus(c.Request.Context(), a, id, req.ToInput())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBooking(b))
}

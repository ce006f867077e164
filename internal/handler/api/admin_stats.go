package api

import (
	"net/http"

	"gaming-zone-booking/internal/handler/httperr"
	"gaming-zone-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminStatsHandler struct {
	q queries.StatsQueries
}

func NewAdminStatsHandler(q queries.StatsQueries) *AdminStatsHandler {
	return &AdminStatsHandler{q: q}
}

// @Summary Dashboard statistics
// @Description Platform totals, today's bookings, revenue and the five latest bookings
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} queries.DashboardView
// @Failure 403 {object} httperr.Response
// @Router /admin/stats [get]
func (h *AdminStatsHandler) Dashboard(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	view, err := h.q.Dashboard(c.Request.Context(), a)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

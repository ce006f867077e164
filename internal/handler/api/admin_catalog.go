package api

import (
	"context"
	"net/http"

	"gaming-zone-booking/internal/domain/user"
	reqdto "gaming-zone-booking/internal/handler/dto/request"
	resdto "gaming-zone-booking/internal/handler/dto/response"
	"gaming-zone-booking/internal/handler/httperr"
	"gaming-zone-booking/internal/usecase/commands"
	"gaming-zone-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminCatalogHandler struct {
	cmds commands.CatalogCommands
	q    queries.CatalogQueries
}

func NewAdminCatalogHandler(cmds commands.CatalogCommands, q queries.CatalogQueries) *AdminCatalogHandler {
	return &AdminCatalogHandler{cmds: cmds, q: q}
}

// @Summary Create venue
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateVenueRequest true "Venue"
// @Success 201 {object} queries.VenueView
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /admin/venues [post]
func (h *AdminCatalogHandler) CreateVenue(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	var req reqdto.CreateVenueRequest
	if !bindJSON(c, &req) {
		return
	}
	details, err := req.ToDetails()
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	v, err := h.cmds.CreateVenue(c.Request.Context(), a, details)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	respond(c, http.StatusCreated, v, resdto.FromVenue)
}

// @Summary Update venue
// @Description Omitted fields keep their current value
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Venue ID"
// @Param request body reqdto.UpdateVenueRequest true "Venue fields"
// @Success 200 {object} queries.VenueView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/venues/{id} [put]
func (h *AdminCatalogHandler) UpdateVenue(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateVenueRequest
	if !bindJSON(c, &req) {
		return
	}
	p, err := req.ToPatch()
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	v, err := h.cmds.UpdateVenue(c.Request.Context(), a, id, p)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	respond(c, http.StatusOK, v, resdto.FromVenue)
}

// @Summary Delete venue
// @Description Removes the venue with its games and cafe items; bookings keep their snapshots
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Venue ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /admin/venues/{id} [delete]
func (h *AdminCatalogHandler) DeleteVenue(c *gin.Context) {
	h.remove(c, h.cmds.DeleteVenue)
}

// @Summary Create game
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateGameRequest true "Game"
// @Success 201 {object} queries.GameView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/games [post]
func (h *AdminCatalogHandler) CreateGame(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	var req reqdto.CreateGameRequest
	if !bindJSON(c, &req) {
		return
	}
	details, err := req.ToDetails()
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	g, err := h.cmds.CreateGame(c.Request.Context(), a, req.VenueID, details)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	respond(c, http.StatusCreated, g, resdto.FromGame)
}

// @Summary Update game
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Game ID"
// @Param request body reqdto.UpdateGameRequest true "Game fields"
// @Success 200 {object} queries.GameView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/games/{id} [put]
func (h *AdminCatalogHandler) UpdateGame(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateGameRequest
	if !bindJSON(c, &req) {
		return
	}
	p, err := req.ToPatch()
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	g, err := h.cmds.UpdateGame(c.Request.Context(), a, id, p)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	respond(c, http.StatusOK, g, resdto.FromGame)
}

// @Summary Delete game
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Game ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /admin/games/{id} [delete]
func (h *AdminCatalogHandler) DeleteGame(c *gin.Context) {
	h.remove(c, h.cmds.DeleteGame)
}

// @Summary List cafe items
// @Description Includes items that are currently unavailable
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param venueId query string true "Venue ID"
// @Success 200 {array} queries.CafeItemView
// @Failure 400 {object} httperr.Response
// @Router /admin/cafe-items [get]
func (h *AdminCatalogHandler) ListCafeItems(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	venueID, err := uuid.Parse(c.Query("venueId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid venueId", nil)
		return
	}
	items, err := h.q.ListCafeItems(c.Request.Context(), a, venueID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	if items == nil {
		items = []*queries.CafeItemView{}
	}
	c.JSON(http.StatusOK, items)
}

// @Summary Create cafe item
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCafeItemRequest true "Cafe item"
// @Success 201 {object} queries.CafeItemView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/cafe-items [post]
func (h *AdminCatalogHandler) CreateCafeItem(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	var req reqdto.CreateCafeItemRequest
	if !bindJSON(c, &req) {
		return
	}
	details, err := req.ToDetails()
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	item, err := h.cmds.CreateCafeItem(c.Request.Context(), a, req.VenueID, details)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	respond(c, http.StatusCreated, item, resdto.FromCafeItem)
}

// @Summary Update cafe item
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Cafe item ID"
// @Param request body reqdto.UpdateCafeItemRequest true "Cafe item fields"
// @Success 200 {object} queries.CafeItemView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/cafe-items/{id} [put]
func (h *AdminCatalogHandler) UpdateCafeItem(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateCafeItemRequest
	if !bindJSON(c, &req) {
		return
	}
	p, err := req.ToPatch()
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	item, err := h.cmds.UpdateCafeItem(c.Request.Context(), a, id, p)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	respond(c, http.StatusOK, item, resdto.FromCafeItem)
}

// @Summary Delete cafe item
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Cafe item ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /admin/cafe-items/{id} [delete]
func (h *AdminCatalogHandler) DeleteCafeItem(c *gin.Context) {
	h.remove(c, h.cmds.DeleteCafeItem)
}

func (h *AdminCatalogHandler) remove(c *gin.Context, del func(ctx context.Context, a user.Actor, id uuid.UUID) error) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := del(c.Request.Context(), a, id); err != nil {
		httperr.Respond(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func respond[E any, V any](c *gin.Context, status int, entity E, toView func(E) (V, error)) {
	view, err := toView(entity)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(status, view)
}

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

type AdminUserHandler struct {
	cmds commands.UserCommands
	q    queries.UserQueries
}

func NewAdminUserHandler(cmds commands.UserCommands, q queries.UserQueries) *AdminUserHandler {
	return &AdminUserHandler{cmds: cmds, q: q}
}

// @Summary List users
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items"
// @Param offset query int false "Offset"
// @Success 200 {array} queries.UserView
// @Failure 403 {object} httperr.Response
// @Router /admin/users [get]
func (h *AdminUserHandler) List(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	page := queries.Page{
		Limit:  queryInt(c, "limit", queries.DefaultListLimit),
		Offset: queryInt(c, "offset", 0),
	}
	users, err := h.q.List(c.Request.Context(), a, page)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	if users == nil {
		users = []*queries.UserView{}
	}
	c.JSON(http.StatusOK, users)
}

// @Summary Change user role
// @Description Admins cannot change their own role
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body reqdto.ChangeRoleRequest true "Role"
// @Success 200 {object} queries.UserView
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/users/{id}/role [patch]
func (h *AdminUserHandler) ChangeRole(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.ChangeRoleRequest
	if !bindJSON(c, &req) {
		return
	}
	u, err := h.cmds.ChangeRole(c.Request.Context(), a, id, req.Role)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUser(u))
}

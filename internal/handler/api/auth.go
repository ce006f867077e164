package api

import (
	"net/http"
	"time"

	reqdto "gaming-zone-booking/internal/handler/dto/request"
	resdto "gaming-zone-booking/internal/handler/dto/response"
	"gaming-zone-booking/internal/handler/httperr"
	"gaming-zone-booking/internal/pkg/config"
	"gaming-zone-booking/internal/pkg/cookie"
	"gaming-zone-booking/internal/usecase/commands"
	"gaming-zone-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds      commands.AuthCommands
	userCmds  commands.UserCommands
	userQuery queries.UserQueries
	cookieCfg config.CookieConfig
}

func NewAuthHandler(cmds commands.AuthCommands, userCmds commands.UserCommands, userQuery queries.UserQueries, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		cmds:      cmds,
		userCmds:  userCmds,
		userQuery: userQuery,
		cookieCfg: cfg.Cookie,
	}
}

// @Summary Register
// @Description Create a user account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Registration"
// @Success 201 {object} queries.UserView
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}
	u, err := h.cmds.Register(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.Header("Location", "/api/auth/me")
	c.JSON(http.StatusCreated, resdto.FromUser(u))
}

// @Summary User login
// @Description Login with email and password; the token is also set as an HttpOnly cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.cmds.Login(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	cookie.SetAccessToken(c, h.cookieCfg, result.AccessToken, time.Until(result.ExpiresAt))
	c.JSON(http.StatusOK, resdto.FromLoginResult(result))
}

// @Summary User logout
// @Description Clears the access token cookie
// @Tags auth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearAccessToken(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary Get current user
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} queries.UserView
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	u, err := h.userQuery.GetCurrentUser(c.Request.Context(), a.UserID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// @Summary Update current user
// @Description Change the caller's name or phone
// @Tags auth
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} queries.UserView
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /auth/me [patch]
func (h *AuthHandler) UpdateMe(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	var req reqdto.UpdateProfileRequest
	if !bindJSON(c, &req) {
		return
	}
	u, err := h.userCmds.UpdateProfile(c.Request.Context(), a, req.ToPatch())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUser(u))
}

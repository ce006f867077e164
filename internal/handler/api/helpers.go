package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"gaming-zone-booking/internal/domain/user"
	"gaming-zone-booking/internal/handler/httperr"
	"gaming-zone-booking/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var errNoActor = errors.New("actor missing from context")

// bindJSON aborts with 400 and the failing fields when the body is invalid.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", fieldErrors(err))
		return false
	}
	return true
}

func bindQuery(c *gin.Context, dst any) bool {
	if err := c.ShouldBindQuery(dst); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", fieldErrors(err))
		return false
	}
	return true
}

func fieldErrors(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make([]string, len(verrs))
	for i, fe := range verrs {
		out[i] = fmt.Sprintf("%s: %s", fe.Field(), fe.Tag())
	}
	return out
}

func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+name, nil)
		return uuid.Nil, false
	}
	return id, true
}

// actor is set by RequireAuth; a miss means the route was wired without it.
func actor(c *gin.Context) (user.Actor, bool) {
	a, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoActor, "Unauthorized", nil)
		return user.Actor{}, false
	}
	return a, true
}

func queryInt(c *gin.Context, key string, def int) int {
	if v := c.Query(key); v != "" {
		if iv, err := strconv.Atoi(v); err == nil {
			return iv
		}
	}
	return def
}

package httperr

import (
	"net/http"

	"gaming-zone-booking/internal/domain/auth"
	"gaming-zone-booking/internal/domain/booking"
	"gaming-zone-booking/internal/domain/catalog"
	"gaming-zone-booking/internal/domain/user"
	"gaming-zone-booking/internal/pkg/errs"
	"gaming-zone-booking/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

type mapping struct {
	target error
	status int
	// empty means the sentinel's own text
	message string
}

// Order matters: the first match wins.
var mappings = []mapping{
	{booking.ErrSlotUnavailable, http.StatusConflict, "Selected time slot is not available"},
	{booking.ErrConflict, http.StatusConflict, "Booking was modified, reload and retry"},
	{shared.ErrMaxRetriesExceeded, http.StatusServiceUnavailable, "Service busy, please retry"},
	{auth.ErrEmailTaken, http.StatusConflict, ""},

	{booking.ErrCancellationWindowClosed, http.StatusUnprocessableEntity, ""},

	{booking.ErrBookingNotFound, http.StatusNotFound, ""},
	{catalog.ErrVenueNotFound, http.StatusNotFound, ""},
	{catalog.ErrGameNotFound, http.StatusNotFound, ""},
	{catalog.ErrCafeItemNotFound, http.StatusNotFound, ""},
	{user.ErrUserNotFound, http.StatusNotFound, ""},

	{auth.ErrInvalidCredentials, http.StatusUnauthorized, ""},

	{booking.ErrNotOwner, http.StatusForbidden, "Access denied"},
	{booking.ErrAdminOnly, http.StatusForbidden, "Admin access required"},
	{user.ErrForbidden, http.StatusForbidden, "Admin access required"},
	{user.ErrSelfRoleChange, http.StatusForbidden, ""},

	{booking.ErrInvalidTransition, http.StatusBadRequest, ""},
	{booking.ErrInvalidStatus, http.StatusBadRequest, ""},
	{booking.ErrInvalidDate, http.StatusBadRequest, ""},
	{booking.ErrInvalidSlot, http.StatusBadRequest, ""},
	{user.ErrInvalidRole, http.StatusBadRequest, ""},

	{booking.ErrSlotOutsideGrid, http.StatusUnprocessableEntity, ""},
	{booking.ErrBeyondHorizon, http.StatusUnprocessableEntity, ""},
	{booking.ErrInvalidDuration, http.StatusUnprocessableEntity, ""},
	{booking.ErrInvalidQuantity, http.StatusUnprocessableEntity, ""},
	{booking.ErrInvalidPaymentMethod, http.StatusUnprocessableEntity, ""},
	{booking.ErrInvalidPaymentStatus, http.StatusUnprocessableEntity, ""},
	{booking.ErrInvalidInitialStatus, http.StatusUnprocessableEntity, ""},
	{booking.ErrGameNotAtVenue, http.StatusUnprocessableEntity, ""},
	{booking.ErrCafeItemUnavailable, http.StatusUnprocessableEntity, ""},
	{catalog.ErrInvalidName, http.StatusUnprocessableEntity, ""},
	{catalog.ErrInvalidCity, http.StatusUnprocessableEntity, ""},
	{catalog.ErrInvalidAddress, http.StatusUnprocessableEntity, ""},
	{catalog.ErrInvalidHourlyRate, http.StatusUnprocessableEntity, ""},
	{catalog.ErrInvalidPrice, http.StatusUnprocessableEntity, ""},
	{catalog.ErrInvalidRating, http.StatusUnprocessableEntity, ""},
	{catalog.ErrInvalidCategory, http.StatusUnprocessableEntity, ""},
	{user.ErrInvalidEmail, http.StatusUnprocessableEntity, ""},
	{user.ErrPasswordTooWeak, http.StatusUnprocessableEntity, ""},
	{user.ErrInvalidName, http.StatusUnprocessableEntity, ""},
	{user.ErrInvalidPhone, http.StatusUnprocessableEntity, ""},
}

// Classify returns the status and public message for a usecase error.
// Unknown errors become a bare 500 so no internal detail leaks.
func Classify(err error) (int, string) {
	for _, m := range mappings {
		if errs.Is(err, m.target) {
			if m.message == "" {
				return m.status, capitalize(m.target.Error())
			}
			return m.status, m.message
		}
	}
	return http.StatusInternalServerError, "Internal server error"
}

// Respond aborts the request with the mapped status for err.
func Respond(c *gin.Context, err error) {
	status, msg := Classify(err)
	AbortWithError(c, status, err, msg, nil)
}

func capitalize(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}

package request

import (
	"sync"

	"gaming-zone-booking/internal/domain/booking"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidators adds the booking tags to gin's validator:
// slot accepts an "HH:00" start label and isodate a "YYYY-MM-DD" day.
func RegisterValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		if err = v.RegisterValidation("slot", validateSlot); err != nil {
			return
		}
		err = v.RegisterValidation("isodate", validateISODate)
	})
	return err
}

func validateSlot(fl validator.FieldLevel) bool {
	_, err := booking.ParseSlot(fl.Field().String())
	return err == nil
}

func validateISODate(fl validator.FieldLevel) bool {
	_, err := booking.ParseDate(fl.Field().String())
	return err == nil
}

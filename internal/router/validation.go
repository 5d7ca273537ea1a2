package router

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// registerValidations installs custom binding rules on gin's validator
// engine. "clock" accepts a 24-hour HH:MM or HH:MM:SS value.
func registerValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	_ = v.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		if _, err := time.Parse("15:04:05", value); err == nil {
			return true
		}
		_, err := time.Parse("15:04", value)
		return err == nil
	})
}

package handlers

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Chart-of-accounts codes are dash-separated numeric segments by
// convention, e.g. "1200-10-06": a four digit major code with optional
// two-digit sub-segments.
var accountCodePattern = regexp.MustCompile(`^[0-9]{4}(-[0-9]{2})*$`)

// registerValidations installs custom binding validations on gin's
// validator engine. Idempotent; safe to call once per process.
func registerValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("accountcode", func(fl validator.FieldLevel) bool {
			return accountCodePattern.MatchString(fl.Field().String())
		})
	}
}

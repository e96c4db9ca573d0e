package validation

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var yearRegex = regexp.MustCompile(`^\d{4}(-\d{4})?$`)

// RegisterCustomValidators adds our binding tags to gin's validator engine.
// Called once at startup before any request binds.
func RegisterCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	// courseyear accepts "2024" or an academic span like "2024-2025"
	_ = v.RegisterValidation("courseyear", func(fl validator.FieldLevel) bool {
		return yearRegex.MatchString(fl.Field().String())
	})
}

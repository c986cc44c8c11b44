package validator

import (
	"log"

	"github.com/go-playground/validator/v10"

	"gymfit_backend/internal/models"
)

// registerCustomRules registers the custom validation tags.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// A rule that fails to register is a startup error.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'is-user-role': the value must be a known role
	mustRegister("is-user-role", validateUserRole)
}

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // empty values are the job of 'required'
	}

	return models.ValidUserRole(models.UserRole(value))
}

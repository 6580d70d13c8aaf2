package validator

import (
	"log"

	"placement_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules installs the portal's custom validation tags.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Startup misconfiguration, do not run half-validated.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-user-role", validateUserRole)
	mustRegister("is-status-field", validateStatusField)
	mustRegister("is-stage", validateStage)
}

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // empty is handled by 'required'
	}

	switch models.UserRole(value) {
	case models.UserRoleStudent, models.UserRoleCompany, models.UserRoleTPO:
		return true
	default:
		return false
	}
}

func validateStatusField(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.IsStatusField(value)
}

func validateStage(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.Stage(value) {
	case models.StageApplied, models.StageShortlisted, models.StageInterview,
		models.StageTechnical, models.StageOffer, models.StageAccepted, models.StageUnknown:
		return true
	default:
		return false
	}
}

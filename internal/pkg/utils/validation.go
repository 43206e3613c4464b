package utils

import (
	"konsulin-portal/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("session_status", validateSessionStatus)
	validate.RegisterValidation("complaint_status", validateComplaintStatus)
	validate.RegisterValidation("application_status", validateApplicationStatus)
	validate.RegisterValidation("application_decision", validateApplicationDecision)
	validate.RegisterValidation("transaction_status", validateTransactionStatus)
	validate.RegisterValidation("psychologist_sort", validatePsychologistSort)
	validate.RegisterValidation("trend_interval", validateTrendInterval)
	validate.RegisterValidation("gender", validateGender)
	validate.RegisterValidation("portal_role", validatePortalRole)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateSessionStatus(fl validator.FieldLevel) bool {
	return constvars.SessionStatus(fl.Field().String()).IsValid()
}

func validateComplaintStatus(fl validator.FieldLevel) bool {
	return constvars.ComplaintStatus(fl.Field().String()).IsValid()
}

func validateApplicationStatus(fl validator.FieldLevel) bool {
	return constvars.ApplicationStatus(fl.Field().String()).IsValid()
}

func validateApplicationDecision(fl validator.FieldLevel) bool {
	return constvars.ApplicationDecision(fl.Field().String()).IsValid()
}

func validateTransactionStatus(fl validator.FieldLevel) bool {
	return constvars.TransactionStatus(fl.Field().String()).IsValid()
}

func validatePsychologistSort(fl validator.FieldLevel) bool {
	return constvars.PsychologistSort(fl.Field().String()).IsValid()
}

func validateTrendInterval(fl validator.FieldLevel) bool {
	return constvars.TrendInterval(fl.Field().String()).IsValid()
}

func validateGender(fl validator.FieldLevel) bool {
	return constvars.Gender(fl.Field().String()).IsValid()
}

func validatePortalRole(fl validator.FieldLevel) bool {
	return constvars.Role(fl.Field().String()).IsValid()
}

package util

import (
	"github.com/go-playground/validator/v10"

	"github.com/bondsio/admin-console/util/values"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("reportstatus", validateReportStatus)
}

func validateReportStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case values.StatusPending, values.StatusReviewed, values.StatusResolved, values.StatusDismissed:
		return true
	}
	return false
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

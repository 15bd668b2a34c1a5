package util

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"

	"ops-backend/models"
)

var Validate *validator.Validate

func init() {
	Validate = validator.New()

	Validate.RegisterValidation("rrule", validateRRule)
	Validate.RegisterValidation("role", validateRole)
}

func validateRRule(fl validator.FieldLevel) bool {
	_, err := rrule.StrToROption(fl.Field().String())
	return err == nil
}

func validateRole(fl validator.FieldLevel) bool {
	return models.ValidRole(fl.Field().String())
}

// ValidateStruct returns one entry per failing field, or nil when s is valid.
func ValidateStruct(s interface{}) []*models.FieldError {
	var errs []*models.FieldError
	err := Validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []*models.FieldError{{Field: "", Tag: "invalid", Msg: err.Error()}}
	}

	for _, err := range verrs {
		var element models.FieldError
		element.Field = err.Field()
		element.Tag = err.Tag()

		switch err.Tag() {
		case "required":
			element.Msg = fmt.Sprintf("Field '%s' is required.", element.Field)
		case "min", "gte":
			element.Msg = fmt.Sprintf("Field '%s' must be at least %s.", element.Field, err.Param())
		case "max":
			element.Msg = fmt.Sprintf("Field '%s' must be at most %s.", element.Field, err.Param())
		case "ne":
			element.Msg = fmt.Sprintf("Field '%s' must not be %s.", element.Field, err.Param())
		case "email":
			element.Msg = "Invalid email format."
		case "url", "uri":
			element.Msg = fmt.Sprintf("Field '%s' must be a valid URL.", element.Field)
		case "oneof":
			element.Msg = fmt.Sprintf("Field '%s' must be one of: %s.", element.Field, err.Param())
		case "datetime":
			element.Msg = fmt.Sprintf("Field '%s' must match the layout %s.", element.Field, err.Param())
		case "gtfield":
			element.Msg = fmt.Sprintf("Field '%s' must be after %s.", element.Field, err.Param())
		case "role":
			element.Msg = fmt.Sprintf("Field '%s' is not a known role.", element.Field)
		case "rrule":
			element.Msg = fmt.Sprintf("Field '%s' is not a valid RFC 5545 recurrence rule.", element.Field)
		default:
			element.Msg = fmt.Sprintf("Field '%s' failed validation for tag '%s'.", element.Field, element.Tag)
		}
		errs = append(errs, &element)
	}
	return errs
}

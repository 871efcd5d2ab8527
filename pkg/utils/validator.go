package util

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

var uppercaseRe = regexp.MustCompile(`[A-Z]`)

func init() {
	Validate = validator.New()

	Validate.RegisterValidation("hasuppercase", validateHasUppercase)
}

func validateHasUppercase(fl validator.FieldLevel) bool {
	return uppercaseRe.MatchString(fl.Field().String())
}

type ErrorResponse struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
	Msg   string `json:"message"`
}

func ValidateStruct(s interface{}) []*ErrorResponse {
	var errors []*ErrorResponse
	err := Validate.Struct(s)
	if err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			var element ErrorResponse
			element.Field = err.Field()
			element.Tag = err.Tag()

			switch err.Tag() {
			case "required":
				element.Msg = fmt.Sprintf("The '%s' field is required.", element.Field)
			case "min":
				element.Msg = fmt.Sprintf("The '%s' field must have at least %s characters/value.", element.Field, err.Param())
			case "max":
				element.Msg = fmt.Sprintf("The '%s' field must have at most %s characters/value.", element.Field, err.Param())
			case "email":
				element.Msg = "Invalid email format."
			case "hasuppercase":
				element.Msg = "Password must contain at least one uppercase letter."
			case "datetime":
				element.Msg = fmt.Sprintf("The '%s' field must match the %s format.", element.Field, err.Param())
			case "oneof":
				element.Msg = fmt.Sprintf("The '%s' field must be one of: %s.", element.Field, err.Param())
			default:
				element.Msg = fmt.Sprintf("The '%s' field failed validation for tag '%s'.", element.Field, element.Tag)
			}
			errors = append(errors, &element)
		}
	}
	return errors
}

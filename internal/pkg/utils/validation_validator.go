package utils

import (
	"consultorio-service/internal/pkg/constvars"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("password", validatePassword)
	validate.RegisterValidation("date", validateDate)
	validate.RegisterValidation("document_type", validateOneOf(constvars.DocumentTypes))
	validate.RegisterValidation("civil_state", validateOneOf(constvars.CivilStates))
	validate.RegisterValidation("sex", validateOneOf(constvars.Sexes))
	validate.RegisterValidation("gender", validateOneOf(constvars.Genders))
	validate.RegisterValidation("specialty", validateOneOf(constvars.Specialties))
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	hasMinLen := len(password) >= 8
	hasSpecialChar := regexp.MustCompile(constvars.RegexContainAtLeastOneSpecialChar).MatchString(password)
	hasUppercase := regexp.MustCompile(constvars.RegexContainAtLeastOneUppercase).MatchString(password)
	return hasMinLen && hasSpecialChar && hasUppercase
}

func validateDate(fl validator.FieldLevel) bool {
	return regexp.MustCompile(constvars.RegexDateYYYYMMDD).MatchString(fl.Field().String())
}

func validateOneOf(allowed []string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		for _, candidate := range allowed {
			if value == candidate {
				return true
			}
		}
		return false
	}
}

package services

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"routerider/internal/domain/models"
)

// The phone check is deliberately loose: an optional leading plus,
// then digits with the usual separators. Email only needs something
// at something dot something.
var (
	phonePattern = regexp.MustCompile(`^\+?[\d\s\-()]+$`)
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

type passengerForm struct {
	Name  string `validate:"required"`
	Phone string `validate:"required,phonefmt"`
	Email string `validate:"required,emailfmt"`
}

var passengerValidator = newPassengerValidator()

func newPassengerValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("phonefmt", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("emailfmt", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	return v
}

// ValidatePassengerDetails checks every passenger's contact fields and
// returns problems keyed "<index>-<field>", so a form can attach each
// message to the row it belongs to. An empty map means all valid.
func ValidatePassengerDetails(passengers []models.Passenger) map[string]string {
	fields := map[string]string{}
	for i, p := range passengers {
		form := passengerForm{
			Name:  strings.TrimSpace(p.Name),
			Phone: strings.TrimSpace(p.Phone),
			Email: strings.TrimSpace(p.Email),
		}
		err := passengerValidator.Struct(form)
		if err == nil {
			continue
		}
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			fields[fmt.Sprintf("%d-form", i)] = err.Error()
			continue
		}
		for _, fe := range verrs {
			field := strings.ToLower(fe.Field())
			key := fmt.Sprintf("%d-%s", i, field)
			if _, seen := fields[key]; seen {
				continue
			}
			fields[key] = passengerMessage(field, fe.Tag())
		}
	}
	return fields
}

func passengerMessage(field, tag string) string {
	switch field {
	case "name":
		return "Name is required"
	case "phone":
		if tag == "required" {
			return "Phone is required"
		}
		return "Invalid phone format"
	case "email":
		if tag == "required" {
			return "Email is required"
		}
		return "Invalid email format"
	}
	return "Invalid value"
}

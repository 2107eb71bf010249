package onboarding

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// Letters (including accented Latin), spaces, and hyphens.
	nameRegex = regexp.MustCompile(`^[a-zA-ZáéíóúÁÉÍÓÚñÑüÜ\s-]+$`)

	// E.164: leading + and country code inline, 2-15 digits, no spaces.
	phoneRegex = regexp.MustCompile(`^\+[1-9]\d{1,14}$`)
)

// FieldError is a single field-level validation failure. These stay
// local to the wizard; they are never sent to the backend.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report json field names so failures match the wire payloads.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("person_name", func(fl validator.FieldLevel) bool {
		return nameRegex.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("intl_phone", func(fl validator.FieldLevel) bool {
		return phoneRegex.MatchString(fl.Field().String())
	})

	return v
}

// ValidateContact checks the step 1 fields
func ValidateContact(data *ContactData) []FieldError {
	return collectErrors(validate.Struct(data))
}

// ValidateEntityType checks the step 2 choice
func ValidateEntityType(data *EntityTypeData) []FieldError {
	return collectErrors(validate.Struct(data))
}

// ValidateMembership checks the step 3 choice
func ValidateMembership(data *MembershipData) []FieldError {
	return collectErrors(validate.Struct(data))
}

/// ValidateState checks the step 4 choice. Only non-emptiness: the UI
// constrains choices to the supported set.
func ValidateState(data *StateData) []FieldError {
	return collectErrors(validate.Struct(data))
}

// ValidateSummary checks the final confirmation checkbox
func ValidateSummary(data *SummaryData) []FieldError {
	return collectErrors(validate.Struct(data))
}

func collectErrors(err error) []FieldError {
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "", Message: err.Error()}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field:   fe.Field(),
			Message: messageFor(fe.Field(), fe.Tag()),
		})
	}
	return out
}

// messageFor maps a failed field + rule to its user-facing message.
func messageFor(field, tag string) string {
	switch field {
	case "firstName":
		if tag == "required" {
			return "El nombre es obligatorio"
		}
		return "El nombre solo puede contener letras, espacios y guiones"
	case "lastName":
		if tag == "required" {
			return "El apellido es obligatorio"
		}
		return "El apellido solo puede contener letras, espacios y guiones"
	case "email":
		if tag == "required" {
			return "El correo electrónico es obligatorio"
		}
		return "Formato de correo electrónico inválido"
	case "phone":
		if tag == "required" {
			return "El teléfono es obligatorio"
		}
		return "El teléfono debe incluir el código de país y código interurbano (ej: +12025551234)"
	case "entityType":
		return "Debes seleccionar un tipo de entidad"
	case "membershipType":
		return "Debes seleccionar un tipo de membresía"
	case "state":
		return "Debes seleccionar un estado"
	case "confirmed":
		return "Debes confirmar la información antes de enviar"
	}
	return "Valor inválido"
}

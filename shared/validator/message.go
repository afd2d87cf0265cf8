package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	templates = map[string]string{
		"required":      "{field} is required",
		"gte":           "{field} must be greater than or equal to {param}",
		"lte":           "{field} must be less than or equal to {param}",
		"gt":            "{field} must be greater than {param}",
		"oneof":         "{field} must be one of {param}",
		"max":           "{field} must be less than or equal to {param}",
		"min":           "{field} must be greater than or equal to {param}",
		"email":         "{field} must be a valid email address",
		"uuid":          "{field} must be a valid UUID",
		"date":          "{field} must be a date in dd/mm/yyyy format",
		"adult":         "You must be at least 18 years old to register.",
		"cpf":           "{field} must contain 11 digits",
		"mimetypes":     "{field} must be one of {param}",
		"maxfilesize":   "{field} must not exceed {param} MB",
		"numeric":       "{field} must be a number",
		"boolean":       "{field} must be true or false",
		"required_with": "{field} is required when {param} is set",
		"nefield":       "{field} must differ from {param}",
		"gtfield":       "{field} must be after {param}",
	}
)

func render(valErr val.FieldError) string {
	tmpl := templates[valErr.Tag()]
	if tmpl == "" {
		return valErr.Error()
	}

	tmpl = strings.ReplaceAll(tmpl, "{field}", valErr.Field())

	return strings.ReplaceAll(tmpl, "{param}", valErr.Param())
}

// messages returns the first readable message and one message per invalid field.
func messages(err error) (string, map[string]string) {
	var valErrors val.ValidationErrors

	if !errors.As(err, &valErrors) || len(valErrors) == 0 {
		return err.Error(), nil
	}

	fields := make(map[string]string, len(valErrors))
	for _, valErr := range valErrors {
		if _, ok := fields[valErr.Field()]; ok {
			continue
		}

		fields[valErr.Field()] = render(valErr)
	}

	return render(valErrors[0]), fields
}

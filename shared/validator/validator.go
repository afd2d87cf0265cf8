package validator

import (
	"encoding/json"
	"fmt"
	"hotel/shared/base64"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/timezone"
	"io"
	"mime/multipart"
	"net/url"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"time"

	val "github.com/go-playground/validator/v10"
)

const (
	cpfLength = 11
	adultAge  = 18
)

var validate *val.Validate

func registerMimetypeValidation(field val.FieldLevel) bool {
	var contentType string

	if file, ok := field.Field().Interface().(multipart.FileHeader); ok {
		contentType = file.Header.Get(constant.RequestHeaderContentType)
	} else if str, ok := field.Field().Interface().(string); ok {
		contentType = base64.GetContentType(str)

		if contentType == "" {
			return false
		}
	}

	allowedTypes := strings.Split(field.Param(), " ")

	return slices.Contains(allowedTypes, contentType)
}

func registerFileSizeValidation(field val.FieldLevel) bool {
	fileSize := 0
	if file, ok := field.Field().Interface().(multipart.FileHeader); ok {
		fileSize = int(file.Size)
	} else if str, ok := field.Field().Interface().(string); ok {
		fileSize = len(str)
	}

	maxSizeMB, err := strconv.ParseFloat(field.Param(), 64)
	if err != nil {
		return false
	}

	bytesConversion := 1024.0
	maxSizeBytes := int(maxSizeMB * bytesConversion * bytesConversion)

	return fileSize <= maxSizeBytes
}

// registerDateValidation accepts calendar dates written as dd/mm/yyyy.
func registerDateValidation(field val.FieldLevel) bool {
	_, err := timezone.Parse(constant.DateInputFormat, field.Field().String())

	return err == nil
}

func registerAdultValidation(field val.FieldLevel) bool {
	birth, err := timezone.Parse(constant.DateInputFormat, field.Field().String())
	if err != nil {
		return false
	}

	return Age(birth, timezone.Today()) >= adultAge
}

func registerCPFValidation(field val.FieldLevel) bool {
	return len(NormalizeCPF(field.Field().String())) == cpfLength
}

// NormalizeCPF strips the punctuation of a formatted CPF and keeps only its digits.
func NormalizeCPF(cpf string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}

		return -1
	}, cpf)
}

// Age returns the number of full years between birth and on.
func Age(birth, on time.Time) int {
	age := on.Year() - birth.Year()
	if on.Month() < birth.Month() || (on.Month() == birth.Month() && on.Day() < birth.Day()) {
		age--
	}

	return age
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"json", "form", "query"} {
			name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0] //nolint:mnd
			if name != "" && name != "-" {
				return name
			}
		}

		return field.Name
	})

	validations := map[string]val.Func{
		"empty": func(fl val.FieldLevel) bool {
			return fl.Field().IsZero()
		},
		"mimetypes":   registerMimetypeValidation,
		"maxfilesize": registerFileSizeValidation,
		"date":        registerDateValidation,
		"adult":       registerAdultValidation,
		"cpf":         registerCPFValidation,
	}

	for tag, fn := range validations {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

// ValidateQuery copies the query string into the string fields of data tagged with `query`,
// then validates it like a request body.
func ValidateQuery[T any](values url.Values, data *T) error {
	target := reflect.ValueOf(data).Elem()

	for index := range target.NumField() {
		field := target.Type().Field(index)

		name := field.Tag.Get("query")
		if name == "" || field.Type.Kind() != reflect.String {
			continue
		}

		if value := values.Get(name); value != "" {
			target.Field(index).SetString(strings.TrimSpace(value))
		}
	}

	return ValidateStruct(data)
}

// ValidateStruct reports every invalid field under its json name.
func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg, fields := messages(err)
		if len(fields) == 0 {
			return failure.BadRequestFromString(msg) //nolint:wrapcheck
		}

		return failure.Validation(msg, fields) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg, _ := messages(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

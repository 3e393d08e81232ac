package validator

import (
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"strings"
	"unicode"

	"clinica-api/pkg/brdoc"

	"github.com/go-playground/validator/v10"
)

var ErrInvalidBody = errors.New("invalid request body")

type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator builds a validator that reports fields by their json name and
// knows the Brazilian document rules cpf_format, cpf and celular_com_ddd.
func NewValidator() *CustomValidator {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		switch name {
		case "-":
			return ""
		case "":
			return fld.Name
		}
		return name
	})

	// Registration only fails for empty tags or nil funcs.
	_ = v.RegisterValidation("cpf_format", func(fl validator.FieldLevel) bool {
		return brdoc.IsCPFFormatted(fl.Field().String())
	})
	_ = v.RegisterValidation("cpf", func(fl validator.FieldLevel) bool {
		return brdoc.IsValidCPF(fl.Field().String())
	})
	_ = v.RegisterValidation("celular_com_ddd", func(fl validator.FieldLevel) bool {
		return brdoc.IsValidPhone(fl.Field().String())
	})

	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// Check runs the struct rules and always returns a non-nil, possibly empty,
// error collection that callers can extend with their own checks.
func (cv *CustomValidator) Check(i interface{}) *Errors {
	return cv.FormatValidationErrors(cv.Validate(i))
}

func (cv *CustomValidator) FormatValidationErrors(err error) *Errors {
	errs := NewErrors()

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, e := range validationErrors {
			field := e.Field()
			attr := Attribute(field)
			switch e.Tag() {
			case "required":
				errs.Add(field, "The "+attr+" field is required.")
			case "email":
				errs.Add(field, "The "+attr+" field must be a valid email address.")
			case "max":
				errs.Add(field, "The "+attr+" field must not be greater than "+e.Param()+unit(e.Kind())+".")
			case "min":
				errs.Add(field, "The "+attr+" field must be at least "+e.Param()+unit(e.Kind())+".")
			case "cpf_format":
				errs.Add(field, "O campo "+attr+" não possui o formato válido de CPF.")
			case "cpf":
				errs.Add(field, "O campo "+attr+" não é um CPF válido.")
			case "celular_com_ddd":
				errs.Add(field, "O campo "+attr+" não é um celular com DDD válido.")
			default:
				errs.Add(field, "The "+attr+" field is invalid.")
			}
		}
	}

	return errs
}

// unit is the suffix of size messages: strings are measured in characters,
// numbers by value.
func unit(kind reflect.Kind) string {
	if kind == reflect.String {
		return " characters"
	}
	return ""
}

// ExistsMessage is reported when a referenced id does not resolve.
func ExistsMessage(field string) string {
	return "The selected " + Attribute(field) + " is invalid."
}

// UniqueMessage is reported when a value is already used by another record.
func UniqueMessage(field string) string {
	return "The " + Attribute(field) + " has already been taken."
}

// DecodeJSON decodes body into v. An empty body leaves v untouched. A value of
// the wrong JSON type is reported as *Errors on that field; any other decode
// failure is ErrInvalidBody.
func DecodeJSON(body io.Reader, v interface{}) error {
	err := json.NewDecoder(body).Decode(v)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		errs := NewErrors()
		attr := Attribute(typeErr.Field)
		switch typeErr.Type.Kind() {
		case reflect.String:
			errs.Add(typeErr.Field, "The "+attr+" field must be a string.")
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			errs.Add(typeErr.Field, "The "+attr+" field must be an integer.")
		default:
			errs.Add(typeErr.Field, "The "+attr+" field is invalid.")
		}
		return errs
	}

	return ErrInvalidBody
}

// Attribute turns a field name into the words used in messages:
// cidade_id becomes "cidade id", cpfWithoutFormat becomes "cpf without format".
func Attribute(field string) string {
	var b strings.Builder
	for i, r := range field {
		switch {
		case r == '_':
			b.WriteByte(' ')
		case unicode.IsUpper(r):
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

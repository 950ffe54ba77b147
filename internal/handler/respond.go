package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/mercata/catalog/internal/domain"
)

// RespondJSON writes v as a JSON response with the given status.
func RespondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		json.NewEncoder(w).Encode(v)
	}
}

// DecodeJSON decodes the request body into dst. Returns EINVALID for a
// missing or malformed body.
func DecodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return domain.Invalid("handler.decode", "request body is required")
	}

	err := json.NewDecoder(r.Body).Decode(dst)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return domain.Invalid("handler.decode", "request body is required")
		}
		return domain.Invalid("handler.decode", "malformed JSON body")
	}
	return nil
}

// ValidateStruct runs struct tag validation on v and converts failures into
// a field-keyed ValidationError.
func ValidateStruct(validate *validator.Validate, op string, v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return domain.Internal(err, op, "validation setup failed")
	}

	var fieldErr error
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			fieldErr = domain.AddFieldError(fieldErr, jsonFieldName(fe), validationMessage(fe))
		}
	}
	return fieldErr
}

func jsonFieldName(fe validator.FieldError) string {
	// Field() reports the struct field name; payloads use lowerCamel.
	name := fe.Field()
	if name == "" {
		return name
	}
	return string(name[0]|0x20) + name[1:]
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return jsonFieldName(fe) + " is required"
	case "min":
		return jsonFieldName(fe) + " must be at least " + fe.Param()
	case "email":
		return jsonFieldName(fe) + " must be a valid email address"
	case "url":
		return jsonFieldName(fe) + " must be a valid URL"
	case "gte":
		return jsonFieldName(fe) + " must be " + fe.Param() + " or greater"
	default:
		return jsonFieldName(fe) + " is invalid"
	}
}

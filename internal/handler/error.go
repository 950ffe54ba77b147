package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/mercata/catalog/internal/domain"
)

// ErrorCodeToHTTPStatus maps domain error codes to HTTP status codes.
func ErrorCodeToHTTPStatus(code string) int {
	switch code {
	case domain.EINVALID:
		return http.StatusBadRequest
	case domain.EUNAUTHORIZED:
		return http.StatusUnauthorized
	case domain.EFORBIDDEN:
		return http.StatusForbidden
	case domain.ENOTFOUND:
		return http.StatusNotFound
	case domain.ECONFLICT:
		return http.StatusConflict
	case domain.EUNPROCESSABLE:
		return http.StatusUnprocessableEntity
	case domain.EINTERNAL:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// errorBody is the JSON error envelope: {"error": {"code", "message", "fields"}}.
type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// ErrorResponse writes err to the client. JSON clients get the error
// envelope; others get a plain text message. Internal error details are
// never exposed. Validation errors include per-field messages.
func ErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	if domain.IsValidationError(err) {
		writeError(w, r, http.StatusBadRequest, errorDetail{
			Code:    domain.EINVALID,
			Message: "Validation failed",
			Fields:  domain.GetValidationFields(err),
		})
		return
	}

	code := domain.ErrorCode(err)
	writeError(w, r, ErrorCodeToHTTPStatus(code), errorDetail{
		Code:    code,
		Message: domain.ErrorMessage(err),
	})
}

// ValidationErrorResponse writes a validation error with its field map.
// Non-validation errors fall back to ErrorResponse.
func ValidationErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	ErrorResponse(w, r, err)
}

// NotFoundResponse writes a generic 404.
func NotFoundResponse(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusNotFound, errorDetail{
		Code:    domain.ENOTFOUND,
		Message: "The requested resource was not found",
	})
}

// UnauthorizedResponse writes a generic 401.
func UnauthorizedResponse(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusUnauthorized, errorDetail{
		Code:    domain.EUNAUTHORIZED,
		Message: "Authentication required",
	})
}

// ForbiddenResponse writes a generic 403.
func ForbiddenResponse(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusForbidden, errorDetail{
		Code:    domain.EFORBIDDEN,
		Message: "You do not have permission to access this resource",
	})
}

// InternalErrorResponse writes a generic 500. The underlying error is
// ignored here; callers log it.
func InternalErrorResponse(w http.ResponseWriter, r *http.Request, _ error) {
	writeError(w, r, http.StatusInternalServerError, errorDetail{
		Code:    domain.EINTERNAL,
		Message: "An internal error occurred. Please try again later.",
	})
}

func writeError(w http.ResponseWriter, r *http.Request, status int, detail errorDetail) {
	if acceptsJSON(r) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(errorBody{Error: detail})
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	w.Write([]byte(detail.Message))
}

// acceptsJSON reports whether the client wants a JSON response, based on
// the Accept header, the request Content-Type, or a .json path suffix.
func acceptsJSON(r *http.Request) bool {
	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		return true
	}
	if strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		return true
	}
	return strings.HasSuffix(r.URL.Path, ".json")
}

package response

import (
	"encoding/json"
	"net/http"

	"clinica-api/pkg/validator"
)

// MessageResponse is the body of every non-validation error and of plain
// acknowledgements such as logout.
type MessageResponse struct {
	Message string `json:"message"`
}

type ValidationResponse struct {
	Message string            `json:"message"`
	Errors  *validator.Errors `json:"errors"`
}

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func Message(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, MessageResponse{Message: message})
}

func ValidationError(w http.ResponseWriter, errs *validator.Errors) {
	JSON(w, http.StatusUnprocessableEntity, ValidationResponse{
		Message: errs.Message(),
		Errors:  errs,
	})
}

func BadRequest(w http.ResponseWriter) {
	Message(w, http.StatusBadRequest, "Invalid request body.")
}

// Unauthenticated is sent when a protected route has no valid bearer token.
func Unauthenticated(w http.ResponseWriter) {
	Message(w, http.StatusUnauthorized, "Unauthenticated.")
}

// Unauthorized is sent when login credentials do not match.
func Unauthorized(w http.ResponseWriter) {
	Message(w, http.StatusUnauthorized, "Unauthorized")
}

func NotFound(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Not found."
	}
	Message(w, http.StatusNotFound, message)
}

func TooManyRequests(w http.ResponseWriter) {
	Message(w, http.StatusTooManyRequests, "Too Many Attempts.")
}

func InternalServerError(w http.ResponseWriter) {
	Message(w, http.StatusInternalServerError, "Server Error")
}

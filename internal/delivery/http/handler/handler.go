package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"clinica-api/internal/usecase"
	"clinica-api/pkg/response"
	"clinica-api/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// pathID reads the {id} route variable. Routes constrain it to digits, so a
// failure here only happens on overflow.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// decode reads the JSON body into req and writes the error response itself
// when the body cannot be used.
func decode(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	err := validator.DecodeJSON(r.Body, req)
	if err == nil {
		return true
	}

	var errs *validator.Errors
	if errors.As(err, &errs) {
		response.ValidationError(w, errs)
		return false
	}

	response.BadRequest(w)
	return false
}

// query reads integer query parameters, collecting a validation message for
// each one that is present but not an integer.
type query struct {
	values url.Values
	errs   *validator.Errors
}

func newQuery(r *http.Request) *query {
	return &query{values: r.URL.Query(), errs: validator.NewErrors()}
}

func (q *query) integer(name string) int64 {
	raw := q.values.Get(name)
	if raw == "" {
		return 0
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		q.errs.Add(name, "The "+validator.Attribute(name)+" field must be an integer.")
		return 0
	}
	return n
}

var notFoundMessages = map[error]string{
	usecase.ErrCidadeNotFound:   "Cidade not found.",
	usecase.ErrMedicoNotFound:   "Medico not found.",
	usecase.ErrPacienteNotFound: "Paciente not found.",
	usecase.ErrUserNotFound:     "User not found.",
	usecase.ErrAuditLogNotFound: "Audit log not found.",
}

// writeError maps usecase errors to responses. Anything unknown is a 500.
func writeError(w http.ResponseWriter, log *logrus.Logger, err error) {
	var errs *validator.Errors
	if errors.As(err, &errs) {
		response.ValidationError(w, errs)
		return
	}

	for target, message := range notFoundMessages {
		if errors.Is(err, target) {
			response.NotFound(w, message)
			return
		}
	}

	if errors.Is(err, usecase.ErrInvalidCredentials) {
		response.Unauthorized(w)
		return
	}

	log.Errorf("Unhandled error: %+v", err)
	response.InternalServerError(w)
}

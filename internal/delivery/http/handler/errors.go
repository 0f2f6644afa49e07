package handler

import (
	"errors"
	"net/http"
	"strconv"

	"hospital-portal/pkg/apperror"
	"hospital-portal/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// writeError maps usecase errors onto the response envelope. Anything
// unrecognised is reported as a 500 with the fallback message.
func writeError(w http.ResponseWriter, log *logrus.Logger, err error, fallback string) {
	if validation, ok := apperror.AsValidation(err); ok {
		response.ValidationError(w, validation.Fields)
		return
	}

	var badRequest *badRequestError
	var tooLarge *bodyTooLargeError
	switch {
	case errors.As(err, &badRequest):
		response.Error(w, http.StatusBadRequest, badRequest.Error(), nil)
	case errors.As(err, &tooLarge):
		response.Error(w, http.StatusRequestEntityTooLarge, tooLarge.Error(), nil)
	case apperror.IsNotFound(err):
		response.NotFound(w, err.Error())
	case apperror.IsStorage(err):
		response.ServiceUnavailable(w, "Failed to store the uploaded file, please try again")
	case apperror.IsConflict(err):
		response.Conflict(w, err.Error())
	default:
		log.Errorf("%s: %+v", fallback, err)
		response.InternalServerError(w, fallback)
	}
}

type badRequestError struct {
	message string
}

func (e *badRequestError) Error() string {
	return e.message
}

func badRequest(message string) error {
	return &badRequestError{message: message}
}

func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		return uuid.Nil, badRequest("Invalid ID")
	}
	return id, nil
}

// queryInt reads a non-negative integer query parameter, 0 when absent or
// malformed.
func queryInt(r *http.Request, name string) int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil || v < 0 {
		return 0
	}
	return v
}

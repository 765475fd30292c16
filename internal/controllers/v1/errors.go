package v1

import (
	"errors"
	"net/http"

	"github.com/centsible/backend/internal/auth"
	"github.com/centsible/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"there is no expense category matching your query"`
}

// status returns the appropriate HTTP status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, auth.ErrInvalidCredentials) || errors.Is(err, auth.ErrInvalidToken) || errors.Is(err, auth.ErrMissingToken) {
		return http.StatusUnauthorized
	}

	return http.StatusBadRequest
}

var errMailNotSent = errors.New("error sending email, please try again later")

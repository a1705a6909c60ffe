package transport

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"urlpro/internal/types"
)

const internalErrorMessage = "internal server error"

// errorStatus maps domain errors to HTTP statuses. Anything unrecognised is
// a 500 whose cause stays in the logs.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, types.ErrNotFound), errors.Is(err, types.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, types.ErrExpired):
		return http.StatusGone
	case errors.Is(err, types.ErrPasswordRequired), errors.Is(err, types.ErrWrongPassword),
		errors.Is(err, types.ErrInvalidAPIKey), errors.Is(err, types.ErrInvalidCredentials),
		errors.Is(err, types.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, types.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, types.ErrAliasTaken), errors.Is(err, types.ErrUserExists), errors.Is(err, types.ErrDomainTaken):
		return http.StatusConflict
	case errors.Is(err, types.ErrQuotaExceeded):
		return http.StatusTooManyRequests
	case errors.Is(err, types.ErrInvalidURL), errors.Is(err, types.ErrInvalidAlias), errors.Is(err, types.ErrInvalidInput),
		errors.Is(err, types.ErrInvalidDomain), errors.Is(err, types.ErrInvalidCategory):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func errorMessage(err error) string {
	if errorStatus(err) == http.StatusInternalServerError {
		return internalErrorMessage
	}
	return err.Error()
}

func writeError(c *gin.Context, err error) {
	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		logrus.WithError(err).WithFields(logrus.Fields{
			"request_id": c.GetString(ctxRequestID),
			"path":       c.Request.URL.Path,
		}).Error("request failed")
	}
	c.AbortWithStatusJSON(status, gin.H{"error": errorMessage(err)})
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/expoconf/conference-portal/internal/domain/entity"
	"github.com/expoconf/conference-portal/pkg/response"
)

const genericError = "Erreur interne du serveur"

// businessError reports whether err is one of the domain sentinels whose
// message is safe to surface verbatim.
func businessError(err error) bool {
	for _, sentinel := range []error{
		entity.ErrNotConnected,
		entity.ErrUnauthorized,
		entity.ErrConferenceNotFound,
		entity.ErrSponsorNotFound,
		entity.ErrRoomNotFound,
		entity.ErrUserNotFound,
		entity.ErrNoSponsorForUser,
		entity.ErrAlreadyInProgram,
		entity.ErrNotInProgram,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, entity.ErrNotConnected):
		return http.StatusUnauthorized
	case errors.Is(err, entity.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, entity.ErrAlreadyInProgram):
		return http.StatusConflict
	case businessError(err):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// fail writes the envelope for a service error. Unexpected errors are
// logged and replaced with a generic message.
func fail(c *gin.Context, logger *logrus.Logger, err error) {
	if businessError(err) {
		response.Error[any](c, statusFor(err), err.Error(), nil)
		return
	}
	if logger != nil {
		logger.WithError(err).WithField("path", c.FullPath()).Error("operation failed")
	}
	response.Error[any](c, http.StatusInternalServerError, genericError, nil)
}

package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"starwars_api/internal/logger"
	"starwars_api/internal/models"
	"starwars_api/internal/repositories"
	"starwars_api/internal/responses"
	"starwars_api/internal/services"
)

var errInvalidID = errors.New("id must be a positive integer")

// statusFor maps domain errors onto HTTP status codes. Anything unknown is a
// server error.
func statusFor(err error) int {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, repositories.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, repositories.ErrInvalidReference):
		return http.StatusUnprocessableEntity
	case errors.Is(err, repositories.ErrInvalidFavorite),
		errors.Is(err, models.ErrInvalidFavoriteTarget),
		errors.Is(err, services.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrUserInactive):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func fail(c *gin.Context, err error, message string) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.HTTP().WithError(err).WithField("path", c.FullPath()).Error(message)
		// Internal details stay in the log.
		responses.Fail(c, status, errors.New("internal server error"), message)
		return
	}
	responses.Fail(c, status, err, message)
}

func parseID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		responses.Fail(c, http.StatusBadRequest, errInvalidID, "Invalid "+param)
		return 0, false
	}
	return id, true
}

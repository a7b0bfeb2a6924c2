package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/trivia-api/internal/dto"
	"github.com/lshigami/trivia-api/internal/service"
	"github.com/rs/zerolog/log"
)

var errorMessages = map[int]string{
	http.StatusBadRequest:          "bad request",
	http.StatusNotFound:            "resource not found",
	http.StatusMethodNotAllowed:    "method not allowed",
	http.StatusUnprocessableEntity: "unprocessable",
	http.StatusInternalServerError: "internal server error",
	http.StatusServiceUnavailable:  "service unavailable",
}

// abortWithError writes the error envelope for status and stops the chain.
func abortWithError(c *gin.Context, status int) {
	c.AbortWithStatusJSON(status, dto.ErrorResponse{
		Success: false,
		Error:   status,
		Message: errorMessages[status],
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrUnprocessable):
		return http.StatusUnprocessableEntity
	case errors.Is(err, service.ErrBadRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled service error")
	} else {
		log.Debug().Err(err).Int("status", status).Str("path", c.FullPath()).Msg("Request failed")
	}
	abortWithError(c, status)
}

// Recovery turns panics into the 500 envelope.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error().Interface("panic", recovered).Str("path", c.Request.URL.Path).Msg("Recovered from panic")
		abortWithError(c, http.StatusInternalServerError)
	})
}

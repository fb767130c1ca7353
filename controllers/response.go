package controllers

import (
	"errors"
	"net/http"
	"strings"

	"ansh-apparels/libs"
	"ansh-apparels/models"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// respondError maps service errors onto status codes. Anything unrecognised
// is an infrastructure failure and is not shown to the client.
func respondError(c *gin.Context, err error) {
	var validation *models.ValidationError
	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: validation.Message})
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{Message: "Not found"})
	case errors.Is(err, models.ErrDuplicate):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Already exists"})
	case errors.Is(err, models.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Message: "Invalid email or password"})
	case errors.Is(err, models.ErrNotLoggedIn):
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Message: "Not logged in"})
	case errors.Is(err, models.ErrSessionExpired):
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Message: "Session expired"})
	case errors.Is(err, models.ErrForbidden):
		c.JSON(http.StatusForbidden, models.ErrorResponse{Message: "Not authorized"})
	case errors.Is(err, models.ErrConflict):
		c.JSON(http.StatusConflict, models.ErrorResponse{Message: "Cart was modified concurrently"})
	case errors.Is(err, libs.ErrMissingSigningSecret):
		log.Error().Err(err).Msg("token signing is not configured")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Server misconfigured"})
	default:
		_ = c.Error(err)
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Internal server error"})
	}
}

// bindJSON decodes the request body into T. A missing or malformed body
// yields the zero value so the usual validation messages apply.
func bindJSON[T any](c *gin.Context) T {
	var req T
	if err := c.ShouldBindJSON(&req); err != nil {
		var zero T
		return zero
	}
	return req
}

// requestBaseURL is the scheme and host the client used, honouring the
// forwarding headers set by the hosting proxy.
func requestBaseURL(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		scheme = strings.TrimSpace(strings.Split(proto, ",")[0])
	}

	host := c.Request.Host
	if forwarded := c.GetHeader("X-Forwarded-Host"); forwarded != "" {
		host = strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}
	return scheme + "://" + host
}

package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/feral-file/ff-market/internal/api/shared/errors"
	"github.com/feral-file/ff-market/internal/domain"
	"github.com/feral-file/ff-market/internal/logger"
)

// respondBadRequest responds with a bad request error
func respondBadRequest(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusBadRequest, errors.NewBadRequestError(message, details...))
}

// respondNotFound responds with a not found error
func respondNotFound(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusNotFound, errors.NewNotFoundError(message, details...))
}

// respondValidationError responds with a validation error
func respondValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusUnprocessableEntity, errors.NewValidationError(message))
}

// respondUnauthorized responds with an unauthorized error
func respondUnauthorized(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusUnauthorized, errors.NewUnauthorizedError(message, details...))
}

// respondForbidden responds with a forbidden error
func respondForbidden(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusForbidden, errors.NewForbiddenError(message, details...))
}

// respondConflict responds with a conflict error
func respondConflict(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusConflict, errors.NewConflictError(message, details...))
}

// respondInternalError responds with an internal server error
func respondInternalError(c *gin.Context, err error, message string, details ...string) {
	logger.ErrorCtx(c.Request.Context(), err, zap.String("path", c.Request.URL.Path))
	c.JSON(http.StatusInternalServerError, errors.NewInternalError(message, details...))
}

// respondRequestError responds to a request body that failed to bind or validate
func respondRequestError(c *gin.Context, err error) {
	if apiErr, ok := err.(*errors.APIError); ok {
		c.JSON(http.StatusUnprocessableEntity, apiErr)
		return
	}
	respondBadRequest(c, "Invalid request body", err.Error())
}

// respondDomainError responds with the status matching an engine error
func respondDomainError(c *gin.Context, err error, message string) {
	if !domain.IsUserError(err) {
		respondInternalError(c, err, message)
		return
	}
	status, apiErr := errors.FromDomainError(err)
	c.JSON(status, apiErr)
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/grubdash/internal/domain/errors"
	"github.com/polkiloo/grubdash/internal/server/http/dto"
)

// OrderIDParam is the route parameter holding the order id.
const OrderIDParam = "orderId"

const (
	msgInvalidBody = "invalid request body"
	msgInternal    = "internal server error"
)

// respondError writes the status and message matching err.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrValidation), errors.Is(err, domainErrors.ErrConflict):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: domainErrors.Message(err)})
	case errors.Is(err, domainErrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: domainErrors.Message(err)})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: msgInternal})
	}
}

// NotFound answers requests for unknown paths.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Path not found: " + c.Request.URL.RequestURI()})
}

// MethodNotAllowed answers requests using a method the path does not support.
func MethodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, dto.ErrorResponse{
		Message: c.Request.Method + " not allowed for " + c.Request.URL.RequestURI(),
	})
}

package handler

import (
	"errors"
	"net/http"

	"github.com/erp/partysync/internal/domain/party"
	"github.com/erp/partysync/internal/domain/shared"
	"github.com/erp/partysync/internal/infrastructure/ecommerce"
	"github.com/erp/partysync/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// RequestIDKey is the gin context key for the request ID
const RequestIDKey = "request_id"

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// getRequestID extracts the request ID from the context
func getRequestID(c *gin.Context) string {
	if id := c.GetString(RequestIDKey); id != "" {
		return id
	}
	return c.GetHeader("X-Request-ID")
}

// Success sends a success response
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// Created sends a 201 created response
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

// Error sends an error response with the appropriate status code
func (h *BaseHandler) Error(c *gin.Context, statusCode int, code, message string) {
	requestID := getRequestID(c)
	c.JSON(statusCode, dto.NewErrorResponseWithRequestID(code, message, requestID))
}

// ErrorWithCode sends an error response, deriving status code from error code
func (h *BaseHandler) ErrorWithCode(c *gin.Context, code, message string) {
	h.Error(c, dto.GetHTTPStatus(code), code, message)
}

// BadRequest sends a 400 bad request response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	h.Error(c, http.StatusBadRequest, dto.ErrCodeBadRequest, message)
}

// NotFound sends a 404 not found response
func (h *BaseHandler) NotFound(c *gin.Context, message string) {
	h.Error(c, http.StatusNotFound, dto.ErrCodeNotFound, message)
}

// InternalError sends a 500 internal server error response
func (h *BaseHandler) InternalError(c *gin.Context, message string) {
	h.Error(c, http.StatusInternalServerError, dto.ErrCodeInternal, message)
}

// HandleError maps reconciliation and domain errors to HTTP responses
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, party.ErrChannelRequired):
		h.ErrorWithCode(c, dto.ErrCodeChannelRequired, err.Error())
	case errors.Is(err, party.ErrDuplicatePartyInChannel):
		h.ErrorWithCode(c, dto.ErrCodeDuplicateParty, err.Error())
	case errors.Is(err, party.ErrAmbiguousRemoteRef):
		h.ErrorWithCode(c, dto.ErrCodeAmbiguousMatch, err.Error())
	case errors.Is(err, ecommerce.ErrPlatformUnavailable),
		errors.Is(err, ecommerce.ErrPlatformRequestFailed):
		h.ErrorWithCode(c, dto.ErrCodePlatformUnavailable, err.Error())
	case errors.Is(err, ecommerce.ErrCustomerNotFound),
		errors.Is(err, shared.ErrNotFound):
		h.NotFound(c, err.Error())
	default:
		var domainErr *shared.DomainError
		if errors.As(err, &domainErr) {
			switch domainErr.Code {
			case "CHANNEL_DISABLED":
				h.ErrorWithCode(c, dto.ErrCodeChannelDisabled, domainErr.Message)
			default:
				h.Error(c, http.StatusUnprocessableEntity, dto.ErrCodeValidation, domainErr.Message)
			}
			return
		}
		h.InternalError(c, "Internal server error")
	}
}

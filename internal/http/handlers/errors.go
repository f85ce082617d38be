package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"routerider/internal/domain"
	"routerider/internal/http/middleware"
	"routerider/internal/utils"
)

// ErrorResponse standardizes error payloads.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

func respondError(c *gin.Context, status int, code, message string, details any) {
	if code == "" {
		code = http.StatusText(status)
	}
	resp := ErrorResponse{
		Error:   message,
		Code:    code,
		Details: details,
	}
	reqID := middleware.GetRequestID(c)
	if reqID != "" {
		c.JSON(status, gin.H{
			"error":      resp.Error,
			"code":       resp.Code,
			"details":    resp.Details,
			"request_id": reqID,
			"message":    message,
		})
		return
	}
	c.JSON(status, resp)
}

// RespondDomainError maps domain errors to HTTP responses. Validation
// failures carry their per-field messages in details; store failures
// come back 502 so clients offer a retry.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		var details any
		if fields := domain.FieldErrors(err); len(fields) > 0 {
			details = fields
		}
		respondError(c, http.StatusBadRequest, "validation_error", err.Error(), details)
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "not_found", err.Error(), nil)
	case domain.IsConflict(err):
		respondError(c, http.StatusConflict, "conflict", err.Error(), nil)
	case domain.IsRemote(err):
		utils.LogError(middleware.GetRequestID(c), "http", "store_error", err)
		respondError(c, http.StatusBadGateway, "store_unavailable", err.Error(), gin.H{"retryable": true})
	default:
		utils.LogError(middleware.GetRequestID(c), "http", "internal_error", err)
		respondError(c, http.StatusInternalServerError, "internal_error", "something went wrong", nil)
	}
}

package v1

import (
	"errors"
	"net/http"

	"leap-forms-backend/internal/domain"
	"leap-forms-backend/pkg/apperror"
	"leap-forms-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// submissionError maps usecase errors onto the API error contract.
func submissionError(c *gin.Context, err error, exposeDetails bool) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		_ = c.Error(apperror.Validation("Validation failed", verr.Fields))
	case errors.Is(err, domain.ErrMailNotConfigured):
		_ = c.Error(apperror.Unavailable("Email service is not configured", err))
	default:
		message := "Failed to send email"
		if exposeDetails {
			message += ": " + err.Error()
		}
		_ = c.Error(apperror.New(http.StatusInternalServerError, message, err))
	}
}

// invalidBody reports a body that failed to bind. The decoder error stays in the debug log.
func invalidBody(c *gin.Context, err error) {
	logger.Log.DebugContext(c.Request.Context(), "invalid request body",
		"request_id", domain.RequestIDFromContext(c.Request.Context()),
		"error", err.Error(),
	)
	_ = c.Error(apperror.BadRequest("Invalid request body"))
}

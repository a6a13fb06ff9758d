package middleware

import (
	"errors"

	"leap-forms-backend/internal/delivery/http/response"
	"leap-forms-backend/internal/domain"
	"leap-forms-backend/pkg/apperror"
	"leap-forms-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		requestID := domain.RequestIDFromContext(c.Request.Context())

		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			appErr = apperror.Internal(err)
		}
		if appErr.Err != nil {
			logger.Log.ErrorContext(c.Request.Context(), appErr.Message,
				"request_id", requestID,
				"status", appErr.Code,
				"error", appErr.Err.Error(),
			)
		}
		response.Error(c, appErr.Code, appErr.Message, appErr.Fields)
	}
}

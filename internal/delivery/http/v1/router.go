package v1

import (
	"fmt"

	"leap-forms-backend/config"
	"leap-forms-backend/internal/delivery/http/middleware"
	"leap-forms-backend/internal/delivery/http/response"
	"leap-forms-backend/internal/domain"
	"leap-forms-backend/internal/usecase"
	"leap-forms-backend/pkg/apperror"
	"leap-forms-backend/pkg/i18n"
	"leap-forms-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ContactUC   domain.ContactUsecase
	QuoteUC     domain.QuoteUsecase
	HealthUC    usecase.HealthUsecase
	Catalog     *i18n.Catalog
	RateLimiter *middleware.RateLimiter
	Config      *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORS(deps.Config.CORSAllowedOrigins, deps.Config.IsProduction())) // CORS must be first!
	r.Use(gin.CustomRecovery(recoverPanic))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.Locale(deps.Catalog))
	r.Use(middleware.ErrorHandler())

	api := r.Group("/api")

	var submitLimit []gin.HandlerFunc
	if deps.RateLimiter != nil {
		api.Use(deps.RateLimiter.Middleware(middleware.GlobalRateLimitConfig(deps.Config)))
		submitLimit = append(submitLimit, deps.RateLimiter.Middleware(middleware.SubmitRateLimitConfig(deps.Config)))
	}

	NewHealthHandler(api, deps.HealthUC)
	NewContactHandler(api, deps.ContactUC, deps.Config.ExposeErrorDetails, submitLimit...)
	NewQuoteHandler(api, deps.QuoteUC, deps.Config.ExposeErrorDetails, submitLimit...)

	// Swagger
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// recoverPanic renders a panic with the same JSON envelope as any other failure.
func recoverPanic(c *gin.Context, recovered any) {
	appErr := apperror.Internal(fmt.Errorf("panic: %v", recovered))
	logger.Log.ErrorContext(c.Request.Context(), "recovered from panic",
		"request_id", domain.RequestIDFromContext(c.Request.Context()),
		"path", c.Request.URL.Path,
		"error", appErr.Err.Error(),
	)
	response.Error(c, appErr.Code, appErr.Message, nil)
	c.Abort()
}

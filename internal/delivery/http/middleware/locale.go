package middleware

import (
	"context"

	"leap-forms-backend/internal/domain"
	"leap-forms-backend/pkg/i18n"

	"github.com/gin-gonic/gin"
)

// Locale negotiates the message locale from ?locale= and Accept-Language.
func Locale(catalog *i18n.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		locale := catalog.Match(c.Query("locale"), c.GetHeader("Accept-Language"))

		c.Set(string(domain.KeyLocale), locale)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), domain.KeyLocale, locale))
		c.Header("Content-Language", locale)

		c.Next()
	}
}

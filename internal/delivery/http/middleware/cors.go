package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS allows the marketing site to post the forms from the browser.
// Only explicit origins are accepted; in debug mode localhost is added.
func CORS(allowedOrigins []string, isProduction bool) gin.HandlerFunc {
	origins := append([]string(nil), allowedOrigins...)
	if !isProduction {
		origins = appendMissing(origins, "http://localhost:3000", "http://127.0.0.1:3000")
	}

	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Accept-Language", RequestIDHeader},
		ExposeHeaders:    []string{RequestIDHeader, "Retry-After", "X-RateLimit-Remaining"},
		AllowCredentials: false,
		MaxAge:           24 * time.Hour,
	})
}

func appendMissing(list []string, values ...string) []string {
	for _, v := range values {
		found := false
		for _, existing := range list {
			if existing == v {
				found = true
				break
			}
		}
		if !found {
			list = append(list, v)
		}
	}
	return list
}

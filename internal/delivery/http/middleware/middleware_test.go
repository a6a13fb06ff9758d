package middleware_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"leap-forms-backend/internal/delivery/http/middleware"
	"leap-forms-backend/internal/delivery/http/response"
	"leap-forms-backend/internal/domain"
	"leap-forms-backend/pkg/apperror"
	"leap-forms-backend/pkg/i18n"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func ok(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"request_id": domain.RequestIDFromContext(c.Request.Context()),
		"locale":     domain.LocaleFromContext(c.Request.Context()),
	})
}

func do(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func limitConfig(limit int) middleware.RateLimitConfig {
	return middleware.RateLimitConfig{
		Limit:     limit,
		Window:    time.Minute,
		KeyPrefix: "rl:test:",
		KeyFunc:   func(c *gin.Context) string { return c.GetHeader("X-Client") },
	}
}

func TestRateLimitInMemory(t *testing.T) {
	rl := middleware.NewRateLimiter(nil, nil)
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.POST("/submit", rl.Middleware(limitConfig(2)), ok)

	send := func(client string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/submit", nil)
		req.Header.Set("X-Client", client)
		return do(r, req)
	}

	assert.Equal(t, http.StatusOK, send("a").Code)
	assert.Equal(t, http.StatusOK, send("a").Code)

	w := send("a")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))

	var body response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "Too many requests. Please try again later.", body.Error)

	// other clients are unaffected
	assert.Equal(t, http.StatusOK, send("b").Code)
}

func TestRateLimitRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	defer client.Close()

	rl := middleware.NewRateLimiter(client, nil)
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.POST("/submit", rl.Middleware(limitConfig(3)), ok)

	req := func() *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/submit", nil)
		req.Header.Set("X-Client", "10.0.0.1")
		return req
	}

	for i := 0; i < 3; i++ {
		w := do(r, req())
		require.Equal(t, http.StatusOK, w.Code, "request %d", i+1)
		assert.Equal(t, []string{"3"}, w.Header().Values("X-RateLimit-Limit"))
	}
	assert.Equal(t, http.StatusTooManyRequests, do(r, req()).Code)

	count, err := mr.Get("rl:test:10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, "4", count)
	assert.Equal(t, time.Minute, mr.TTL("rl:test:10.0.0.1"))

	// the window expires with the key
	mr.FastForward(time.Minute + time.Second)
	assert.Equal(t, http.StatusOK, do(r, req()).Code)
}

func TestRateLimitRedisFailure(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer client.Close()
	mr.Close()

	r := gin.New()
	r.Use(middleware.ErrorHandler())
	open := limitConfig(1)
	closed := limitConfig(1)
	closed.FailClosed = true
	rl := middleware.NewRateLimiter(client, nil)
	r.POST("/open", rl.Middleware(open), ok)
	r.POST("/closed", rl.Middleware(closed), ok)

	// fail open falls back to the in-memory limiter
	assert.Equal(t, http.StatusOK, do(r, httptest.NewRequest(http.MethodPost, "/open", nil)).Code)
	assert.Equal(t, http.StatusTooManyRequests, do(r, httptest.NewRequest(http.MethodPost, "/open", nil)).Code)

	w := do(r, httptest.NewRequest(http.MethodPost, "/closed", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.JSONEq(t, `{"success":false,"error":"Service temporarily unavailable. Please try again."}`, w.Body.String())
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/", ok)

	w := do(r, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := w.Header().Get(middleware.RequestIDHeader)
	assert.Len(t, generated, 36)
	assert.Contains(t, w.Body.String(), generated)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(middleware.RequestIDHeader, "client-trace-0001")
	w = do(r, req)
	assert.Equal(t, "client-trace-0001", w.Header().Get(middleware.RequestIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(middleware.RequestIDHeader, "<script>")
	w = do(r, req)
	assert.NotEqual(t, "<script>", w.Header().Get(middleware.RequestIDHeader))
}

func TestLocale(t *testing.T) {
	r := gin.New()
	r.Use(middleware.Locale(i18n.MustNewCatalog()))
	r.GET("/", ok)

	req := httptest.NewRequest(http.MethodGet, "/?locale=zh-HK", nil)
	w := do(r, req)
	assert.Contains(t, w.Body.String(), `"locale":"zh-HK"`)
	assert.Equal(t, "zh-HK", w.Header().Get("Content-Language"))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "zh-HK,zh;q=0.9")
	assert.Contains(t, do(r, req).Body.String(), `"locale":"zh-HK"`)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Contains(t, do(r, req).Body.String(), `"locale":"en"`)
}

func TestErrorHandler(t *testing.T) {
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.GET("/validation", func(c *gin.Context) {
		_ = c.Error(apperror.Validation("Validation failed", map[string]string{"email": "bad"}))
	})
	r.GET("/unavailable", func(c *gin.Context) {
		_ = c.Error(apperror.Unavailable("Email service is not configured", errors.New("no host")))
	})
	r.GET("/panic-free", func(c *gin.Context) {
		_ = c.Error(errors.New("db password is hunter2"))
	})

	w := do(r, httptest.NewRequest(http.MethodGet, "/validation", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"success":false,"error":"Validation failed","errors":{"email":"bad"}}`, w.Body.String())

	w = do(r, httptest.NewRequest(http.MethodGet, "/unavailable", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.NotContains(t, w.Body.String(), "no host")

	w = do(r, httptest.NewRequest(http.MethodGet, "/panic-free", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "hunter2")
	assert.JSONEq(t, `{"success":false,"error":"An unexpected error occurred. Please try again later."}`, w.Body.String())
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(middleware.CORS([]string{"https://lll.com.hk"}, true))
	r.POST("/api/send-contact", ok)

	preflight := func(origin string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodOptions, "/api/send-contact", nil)
		req.Header.Set("Origin", origin)
		req.Header.Set("Access-Control-Request-Method", "POST")
		req.Header.Set("Access-Control-Request-Headers", "Content-Type")
		return do(r, req)
	}

	w := preflight("https://lll.com.hk")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://lll.com.hk", w.Header().Get("Access-Control-Allow-Origin"))
	assert.True(t, strings.Contains(w.Header().Get("Access-Control-Allow-Methods"), "POST"))

	w = preflight("https://evil.example")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestSecurityHeaders(t *testing.T) {
	r := gin.New()
	r.Use(middleware.SecurityHeadersMiddleware())
	r.POST("/api/send-quote", ok)

	w := do(r, httptest.NewRequest(http.MethodPost, "/api/send-quote", nil))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
}

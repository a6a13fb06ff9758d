package domain

import "context"

type CtxKey string

const (
	KeyRequestID CtxKey = "RequestID"
	KeyLocale    CtxKey = "Locale"
)

// DefaultLocale is used when a request carries no usable locale.
const DefaultLocale = "en"

// LocaleFromContext returns the negotiated locale stored by the locale middleware.
func LocaleFromContext(ctx context.Context) string {
	if ctx == nil {
		return DefaultLocale
	}
	if locale, ok := ctx.Value(KeyLocale).(string); ok && locale != "" {
		return locale
	}
	return DefaultLocale
}

// RequestIDFromContext returns the request ID, or "" outside a request.
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(KeyRequestID).(string)
	return id
}

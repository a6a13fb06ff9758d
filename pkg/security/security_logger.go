package security

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EventType represents the type of security event
type EventType string

const (
	EventRateLimitTriggered EventType = "rate_limit_triggered"
	EventRateLimitBackend   EventType = "rate_limit_backend_error"
	EventValidationFailed   EventType = "validation_failed"
	EventSubmissionSent     EventType = "submission_sent"
	EventSubmissionFailed   EventType = "submission_failed"
	EventEstimateMismatch   EventType = "estimate_mismatch"
)

// SecurityEvent represents a security-related event to be logged
type SecurityEvent struct {
	Timestamp    time.Time              `json:"timestamp"`
	Service      string                 `json:"service"`
	Environment  string                 `json:"env"`
	Level        string                 `json:"level"`
	Event        EventType              `json:"event"`
	SubjectType  string                 `json:"subject_type,omitempty"`  // "email", "ip", "form"
	SubjectValue string                 `json:"subject_value,omitempty"` // Masked or hashed for PII
	IP           string                 `json:"ip,omitempty"`
	UserAgent    string                 `json:"user_agent,omitempty"`
	RequestID    string                 `json:"request_id,omitempty"`
	Details      map[string]interface{} `json:"details,omitempty"`
}

// SecurityLogger provides structured logging for security events
type SecurityLogger struct {
	zapLogger   *zap.Logger
	serviceName string
	environment string
}

// NewSecurityLogger wraps an existing zap logger.
func NewSecurityLogger(z *zap.Logger, serviceName, environment string) *SecurityLogger {
	if z == nil {
		z = zap.NewNop()
	}
	return &SecurityLogger{
		zapLogger:   z,
		serviceName: serviceName,
		environment: environment,
	}
}

// InitSecurityLogger builds a production zap logger writing JSON to stdout.
func InitSecurityLogger(serviceName, environment string) *SecurityLogger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.LevelKey = "level"
	config.EncoderConfig.MessageKey = "message"

	// Set output to stdout for container environments
	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}

	logger, err := config.Build(
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
	)
	if err != nil {
		// Fallback to a basic logger if config fails
		logger, _ = zap.NewProduction()
	}

	return NewSecurityLogger(logger, serviceName, environment)
}

// Log logs a security event
func (sl *SecurityLogger) Log(ctx context.Context, event SecurityEvent) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	event.Service = sl.serviceName
	event.Environment = sl.environment

	level := zapcore.WarnLevel
	switch event.Event {
	case EventSubmissionSent:
		level = zapcore.InfoLevel
	case EventRateLimitTriggered, EventValidationFailed, EventEstimateMismatch:
		level = zapcore.WarnLevel
	case EventSubmissionFailed, EventRateLimitBackend:
		level = zapcore.ErrorLevel
	}
	event.Level = level.String()

	fields := []zap.Field{
		zap.String("service", event.Service),
		zap.String("env", event.Environment),
		zap.String("event", string(event.Event)),
	}
	if event.SubjectType != "" {
		fields = append(fields, zap.String("subject_type", event.SubjectType))
	}
	if event.SubjectValue != "" {
		fields = append(fields, zap.String("subject_value", event.SubjectValue))
	}
	if event.IP != "" {
		fields = append(fields, zap.String("ip", event.IP))
	}
	if event.UserAgent != "" {
		fields = append(fields, zap.String("user_agent", event.UserAgent))
	}
	if event.RequestID != "" {
		fields = append(fields, zap.String("request_id", event.RequestID))
	}
	if len(event.Details) > 0 {
		detailsJSON, _ := json.Marshal(event.Details)
		fields = append(fields, zap.String("details", string(detailsJSON)))
	}

	sl.zapLogger.Log(level, string(event.Event), fields...)
}

// LogRateLimitTriggered logs when rate limiting is triggered
func (sl *SecurityLogger) LogRateLimitTriggered(ctx context.Context, ip, userAgent, requestID, endpoint string) {
	sl.Log(ctx, SecurityEvent{
		Event:        EventRateLimitTriggered,
		SubjectType:  "ip",
		SubjectValue: ip,
		IP:           ip,
		UserAgent:    userAgent,
		RequestID:    requestID,
		Details:      map[string]interface{}{"endpoint": endpoint},
	})
}

// LogValidationFailed records the rejected field names, never their values.
func (sl *SecurityLogger) LogValidationFailed(ctx context.Context, form, requestID string, fields []string) {
	sl.Log(ctx, SecurityEvent{
		Event:        EventValidationFailed,
		SubjectType:  "form",
		SubjectValue: form,
		RequestID:    requestID,
		Details:      map[string]interface{}{"fields": fields},
	})
}

// LogSubmissionSent logs a dispatched form email
func (sl *SecurityLogger) LogSubmissionSent(ctx context.Context, form, email, requestID string) {
	sl.Log(ctx, SecurityEvent{
		Event:        EventSubmissionSent,
		SubjectType:  "email",
		SubjectValue: MaskEmail(email),
		RequestID:    requestID,
		Details:      map[string]interface{}{"form": form},
	})
}

// LogSubmissionFailed logs a dispatch failure
func (sl *SecurityLogger) LogSubmissionFailed(ctx context.Context, form, email, requestID string, err error) {
	details := map[string]interface{}{"form": form}
	if err != nil {
		details["error"] = err.Error()
	}
	sl.Log(ctx, SecurityEvent{
		Event:        EventSubmissionFailed,
		SubjectType:  "email",
		SubjectValue: MaskEmail(email),
		RequestID:    requestID,
		Details:      details,
	})
}

// Sync flushes any buffered log entries
func (sl *SecurityLogger) Sync() error {
	return sl.zapLogger.Sync()
}

// --- Helper Functions ---

// MaskEmail masks an email for logging (e.g., "j***@example.com")
func MaskEmail(email string) string {
	email = strings.TrimSpace(email)
	if len(email) < 3 {
		return "***"
	}
	atIndex := strings.IndexByte(email, '@')
	if atIndex <= 1 {
		return "***" + email[1:]
	}
	return string(email[0]) + "***" + email[atIndex:]
}

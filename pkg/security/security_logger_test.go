package security_test

import (
	"context"
	"errors"
	"testing"

	"leap-forms-backend/pkg/security"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObserved() (*security.SecurityLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return security.NewSecurityLogger(zap.New(core), "leap-forms-api", "test"), logs
}

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "j***@example.com", security.MaskEmail("jane@example.com"))
	assert.Equal(t, "***", security.MaskEmail("ab"))
	assert.Equal(t, "***@example.com", security.MaskEmail("j@example.com"))
}

func TestLogSubmissionSentMasksEmail(t *testing.T) {
	sl, logs := newObserved()
	sl.LogSubmissionSent(context.Background(), "quote", "jane@example.com", "req-1")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.InfoLevel, entry.Level)
	assert.Equal(t, "submission_sent", entry.Message)
	fields := entry.ContextMap()
	assert.Equal(t, "j***@example.com", fields["subject_value"])
	assert.Equal(t, "req-1", fields["request_id"])
}

func TestLogLevels(t *testing.T) {
	sl, logs := newObserved()
	ctx := context.Background()

	sl.LogValidationFailed(ctx, "contact", "", []string{"email", "name"})
	sl.LogSubmissionFailed(ctx, "contact", "jane@example.com", "", errors.New("dial tcp: refused"))
	sl.LogRateLimitTriggered(ctx, "10.0.0.1", "curl", "", "/api/send-quote")

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Contains(t, entries[0].ContextMap()["details"], "email")
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Contains(t, entries[1].ContextMap()["details"], "dial tcp")
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
}

func TestLogEstimateMismatch(t *testing.T) {
	sl, logs := newObserved()
	sl.Log(context.Background(), security.SecurityEvent{
		Event:     security.EventEstimateMismatch,
		RequestID: "req-2",
		Details:   map[string]interface{}{"client": 100, "server": 200},
	})

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.WarnLevel, entry.Level)
	assert.Equal(t, "estimate_mismatch", entry.Message)
	assert.Equal(t, "req-2", entry.ContextMap()["request_id"])
	assert.JSONEq(t, `{"client":100,"server":200}`, entry.ContextMap()["details"].(string))
}

package usecase

import "context"

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

// MailStatus reports whether a mail relay is configured.
type MailStatus interface {
	IsConfigured() bool
}

type healthUsecase struct {
	mail      MailStatus
	redisPing func(ctx context.Context) error
}

// NewHealthUsecase reports mail and redis state; redisPing may be nil when rate limiting runs in memory
func NewHealthUsecase(mail MailStatus, redisPing func(ctx context.Context) error) HealthUsecase {
	return &healthUsecase{mail: mail, redisPing: redisPing}
}

func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	status := map[string]string{
		"status": "ok",
		"mail":   "not_configured",
		"redis":  "disabled",
	}
	if u.mail != nil && u.mail.IsConfigured() {
		status["mail"] = "configured"
	} else {
		status["status"] = "degraded"
	}
	if u.redisPing != nil {
		if err := u.redisPing(ctx); err != nil {
			status["redis"] = "unavailable"
		} else {
			status["redis"] = "ok"
		}
	}
	return status
}

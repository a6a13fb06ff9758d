package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"leap-forms-backend/internal/domain"
	"leap-forms-backend/pkg/email"
	"leap-forms-backend/pkg/security"
)

// MailRoute is the fixed sender and recipient of every form email.
type MailRoute struct {
	From string
	To   string
}

type contactUsecase struct {
	validator domain.SubmissionValidator
	formatter *SubmissionFormatter
	sender    email.Sender
	route     MailRoute
	audit     *security.SecurityLogger
}

// NewContactUsecase creates a new contact usecase
func NewContactUsecase(validator domain.SubmissionValidator, formatter *SubmissionFormatter, sender email.Sender, route MailRoute, audit *security.SecurityLogger) domain.ContactUsecase {
	if audit == nil {
		audit = security.NewSecurityLogger(nil, "", "")
	}
	return &contactUsecase{
		validator: validator,
		formatter: formatter,
		sender:    sender,
		route:     route,
		audit:     audit,
	}
}

// SendContactMessage validates the inquiry and mails it to the firm with Reply-To set to the submitter
func (uc *contactUsecase) SendContactMessage(ctx context.Context, env *domain.ContactEnvelope) error {
	if env == nil {
		env = &domain.ContactEnvelope{}
	}
	form := &env.FormData
	requestID := domain.RequestIDFromContext(ctx)

	if errs := uc.validator.ValidateContact(ctx, form); !errs.Empty() {
		uc.audit.LogValidationFailed(ctx, "contact", requestID, errs.Fields())
		return &domain.ValidationError{Fields: errs}
	}

	if !uc.sender.IsConfigured() {
		return domain.ErrMailNotConfigured
	}

	doc := uc.formatter.FormatContact(form, parseTimestamp(env.Timestamp))
	msg := email.Message{
		From:    uc.route.From,
		To:      uc.route.To,
		ReplyTo: strings.TrimSpace(form.Email),
		Subject: doc.Subject,
		Text:    doc.Text,
		HTML:    doc.HTML,
	}

	if err := uc.sender.Send(ctx, msg); err != nil {
		uc.audit.LogSubmissionFailed(ctx, "contact", form.Email, requestID, err)
		return fmt.Errorf("failed to send contact email: %w", err)
	}

	uc.audit.LogSubmissionSent(ctx, "contact", form.Email, requestID)
	return nil
}

// parseTimestamp accepts the browser's ISO-8601 submission time; anything else is dropped.
func parseTimestamp(ts string) *time.Time {
	ts = strings.TrimSpace(ts)
	if ts == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return nil
	}
	return &t
}

package usecase

import (
	"context"
	"fmt"

	"leap-forms-backend/internal/domain"
	"leap-forms-backend/pkg/email"
	"leap-forms-backend/pkg/security"
)

type quoteUsecase struct {
	validator domain.SubmissionValidator
	estimator domain.FeeEstimator
	formatter *SubmissionFormatter
	sender    email.Sender
	route     MailRoute
	audit     *security.SecurityLogger
}

// NewQuoteUsecase creates a new quote usecase
func NewQuoteUsecase(validator domain.SubmissionValidator, estimator domain.FeeEstimator, formatter *SubmissionFormatter, sender email.Sender, route MailRoute, audit *security.SecurityLogger) domain.QuoteUsecase {
	if audit == nil {
		audit = security.NewSecurityLogger(nil, "", "")
	}
	return &quoteUsecase{
		validator: validator,
		estimator: estimator,
		formatter: formatter,
		sender:    sender,
		route:     route,
		audit:     audit,
	}
}

// EstimateQuote validates a quote and returns the indicative fees without sending anything
func (uc *quoteUsecase) EstimateQuote(ctx context.Context, quote *domain.QuoteSubmission) (*domain.FeeEstimate, error) {
	if quote == nil {
		quote = &domain.QuoteSubmission{}
	}
	if errs := uc.validator.ValidateQuote(ctx, quote); !errs.Empty() {
		return nil, &domain.ValidationError{Fields: errs}
	}
	est := uc.estimator.Estimate(quote)
	return &est, nil
}

// SendQuoteRequest validates the quote, recomputes the estimate and mails the request to the firm.
// The returned estimate is the server's own, whatever the client sent.
func (uc *quoteUsecase) SendQuoteRequest(ctx context.Context, env *domain.QuoteEnvelope) (*domain.FeeEstimate, error) {
	if env == nil {
		env = &domain.QuoteEnvelope{}
	}
	form := &env.FormData
	requestID := domain.RequestIDFromContext(ctx)

	if errs := uc.validator.ValidateQuote(ctx, form); !errs.Empty() {
		uc.audit.LogValidationFailed(ctx, "quote", requestID, errs.Fields())
		return nil, &domain.ValidationError{Fields: errs}
	}

	if !uc.sender.IsConfigured() {
		return nil, domain.ErrMailNotConfigured
	}

	est := uc.estimator.Estimate(form)
	if env.FeeEstimates != nil && !env.FeeEstimates.Equal(est) {
		uc.audit.Log(ctx, security.SecurityEvent{
			Event:        security.EventEstimateMismatch,
			SubjectType:  "form",
			SubjectValue: "quote",
			RequestID:    requestID,
			Details:      map[string]interface{}{"client": env.FeeEstimates, "server": est},
		})
	}

	doc := uc.formatter.FormatQuote(form, &est, parseTimestamp(env.Timestamp))
	msg := email.Message{
		From:    uc.route.From,
		To:      uc.route.To,
		Subject: doc.Subject,
		Text:    doc.Text,
		HTML:    doc.HTML,
	}

	if err := uc.sender.Send(ctx, msg); err != nil {
		uc.audit.LogSubmissionFailed(ctx, "quote", form.Email, requestID, err)
		return nil, fmt.Errorf("failed to send quote email: %w", err)
	}

	uc.audit.LogSubmissionSent(ctx, "quote", form.Email, requestID)
	return &est, nil
}

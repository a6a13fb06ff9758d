package usecase

import (
	"context"
	"strings"

	"leap-forms-backend/internal/domain"
	"leap-forms-backend/pkg/i18n"
	"leap-forms-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type submissionValidator struct {
	validate *validator.Validate
	catalog  *i18n.Catalog
}

// NewSubmissionValidator creates the validator shared by the contact and quote flows
func NewSubmissionValidator(catalog *i18n.Catalog) domain.SubmissionValidator {
	v := validation.New()
	v.RegisterStructValidation(quoteStructLevel, domain.QuoteSubmission{})
	return &submissionValidator{
		validate: v,
		catalog:  catalog,
	}
}

// quoteStructLevel holds the rules that span several fields
func quoteStructLevel(sl validator.StructLevel) {
	q := sl.Current().Interface().(domain.QuoteSubmission)

	if !q.Services.Any() {
		sl.ReportError(q.Services, "services", "Services", validation.TagSelectService, "")
	}
	if q.Services.Other && strings.TrimSpace(q.OtherServiceDetails) == "" {
		sl.ReportError(q.OtherServiceDetails, "otherServiceDetails", "OtherServiceDetails", "notblank", "")
	}
}

func (sv *submissionValidator) ValidateContact(ctx context.Context, s *domain.ContactSubmission) domain.ValidationErrorMap {
	return sv.run(ctx, s)
}

func (sv *submissionValidator) ValidateQuote(ctx context.Context, s *domain.QuoteSubmission) domain.ValidationErrorMap {
	return sv.run(ctx, s)
}

func (sv *submissionValidator) run(ctx context.Context, s interface{}) domain.ValidationErrorMap {
	err := sv.validate.StructCtx(ctx, s)
	if err == nil {
		return domain.ValidationErrorMap{}
	}
	messages := sv.catalog.For(domain.LocaleFromContext(ctx))
	return domain.ValidationErrorMap(validation.FormatValidationErrors(err, messages))
}

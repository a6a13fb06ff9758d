package domain

import "context"

// ContactService is one of the services a visitor can tick on the contact form.
type ContactService string

const (
	ContactServiceAccountingBookkeeping ContactService = "accountingBookkeeping"
	ContactServiceAuditAssurance        ContactService = "auditAssurance"
	ContactServiceTaxAdvisory           ContactService = "taxAdvisory"
	ContactServiceCompanySecretarial    ContactService = "companySecretarial"
)

// ContactServices holds the service checkboxes of the contact form
type ContactServices struct {
	AccountingBookkeeping bool `json:"accountingBookkeeping"`
	AuditAssurance        bool `json:"auditAssurance"`
	TaxAdvisory           bool `json:"taxAdvisory"`
	CompanySecretarial    bool `json:"companySecretarial"`
}

// Selected returns the ticked services in form order.
func (s ContactServices) Selected() []ContactService {
	var out []ContactService
	if s.AccountingBookkeeping {
		out = append(out, ContactServiceAccountingBookkeeping)
	}
	if s.AuditAssurance {
		out = append(out, ContactServiceAuditAssurance)
	}
	if s.TaxAdvisory {
		out = append(out, ContactServiceTaxAdvisory)
	}
	if s.CompanySecretarial {
		out = append(out, ContactServiceCompanySecretarial)
	}
	return out
}

// ContactSubmission represents a contact form submission
type ContactSubmission struct {
	Name     string          `json:"name" validate:"notblank" example:"Jane Chan"`
	Email    string          `json:"email" validate:"notblank,simple_email" example:"jane@example.com"`
	Company  string          `json:"company" example:"Chan Trading Ltd"`
	Message  string          `json:"message" validate:"notblank" example:"I would like to discuss bookkeeping."`
	Services ContactServices `json:"services"`
}

// ContactEnvelope is the request body of POST /api/send-contact
type ContactEnvelope struct {
	FormData  ContactSubmission `json:"formData"`
	Timestamp string            `json:"timestamp" example:"2026-10-19T08:30:00.000Z"`
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SendContactMessage validates the submission and mails it to the firm
	SendContactMessage(ctx context.Context, env *ContactEnvelope) error
}

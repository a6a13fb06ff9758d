package usecase

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"
	"unicode/utf8"

	"leap-forms-backend/internal/domain"
	"leap-forms-backend/pkg/phone"
)

const (
	sectionRule = "═══════════════════════════════════════"

	contactLabelWidth = 20
	quoteLabelWidth   = 21
	feeLabelWidth     = 27
)

// htmlTemplate wraps the plain-text report for mail clients that prefer HTML
var htmlTemplate = template.Must(template.New("submission").Parse(
	`<pre style="font-family: monospace; font-size: 14px;">{{.}}</pre>`))

// SubmissionFormatter renders submissions into the plain-text report mailed to the firm
type SubmissionFormatter struct {
	brand  string
	labels domain.Labels
}

// NewSubmissionFormatter creates a formatter that signs reports with brand
// and resolves display labels through labels.
func NewSubmissionFormatter(brand string, labels domain.Labels) *SubmissionFormatter {
	return &SubmissionFormatter{
		brand:  brand,
		labels: labels,
	}
}

// FormatContact renders a contact inquiry
func (f *SubmissionFormatter) FormatContact(s *domain.ContactSubmission, submittedAt *time.Time) domain.Document {
	var r report
	f.header(&r, "contact.title", submittedAt)

	r.section(f.t("contact.section.contact"))
	r.field(f.t("contact.field.name"), s.Name, contactLabelWidth)
	r.field(f.t("contact.field.email"), s.Email, contactLabelWidth)
	r.field(f.t("contact.field.company"), s.Company, contactLabelWidth)

	services := make([]string, 0, 4)
	for _, svc := range s.Services.Selected() {
		services = append(services, f.enumLabel("contact.service", string(svc)))
	}
	selected := strings.Join(services, ", ")
	if selected == "" {
		selected = f.t("contact.noServices")
	}
	r.section(f.t("contact.section.services"))
	r.field(f.t("contact.field.services"), selected, contactLabelWidth)

	r.section(f.t("contact.section.message"))
	r.line(strings.TrimSpace(s.Message))

	subject := fmt.Sprintf("%s - %s - %s", f.t("contact.title"), strings.TrimSpace(s.Name), f.brand)
	return f.document(subject, r.String())
}

// FormatQuote renders a quote request, with the fee estimate section when est
// carries at least one bracket.
func (f *SubmissionFormatter) FormatQuote(s *domain.QuoteSubmission, est *domain.FeeEstimate, submittedAt *time.Time) domain.Document {
	var r report
	f.header(&r, "quote.title", submittedAt)

	r.section(f.t("quote.section.client"))
	r.field(f.t("quote.field.companyName"), s.CompanyName, quoteLabelWidth)
	r.field(f.t("quote.field.natureOfBusiness"), s.NatureOfBusiness, quoteLabelWidth)
	r.field(f.t("quote.field.companyType"), f.enumLabel("companyType", string(s.CompanyType)), quoteLabelWidth)
	r.field(f.t("quote.field.contactPerson"), s.ContactPerson, quoteLabelWidth)
	r.field(f.t("quote.field.position"), s.Position, quoteLabelWidth)
	r.field(f.t("quote.field.email"), s.Email, quoteLabelWidth)
	r.field(f.t("quote.field.phone"), displayPhone(s.Phone), quoteLabelWidth)

	services := make([]string, 0, 7)
	for _, svc := range s.Services.Selected() {
		if svc == domain.QuoteServiceOther {
			services = append(services, f.t("quote.service.other")+": "+strings.TrimSpace(s.OtherServiceDetails))
			continue
		}
		services = append(services, f.enumLabel("quote.service", string(svc)))
	}
	r.section(f.t("quote.section.services"))
	r.field(f.t("quote.field.services"), strings.Join(services, ", "), quoteLabelWidth)

	r.section(f.t("quote.section.business"))
	r.field(f.t("quote.field.transactions"), f.enumLabel("transactions", string(s.TransactionsPerMonth)), quoteLabelWidth)
	r.field(f.t("quote.field.bankAccounts"), f.enumLabel("bankAccounts", string(s.NumberOfBankAccounts)), quoteLabelWidth)
	r.field(f.t("quote.field.employees"), s.NumberOfEmployees, quoteLabelWidth)
	r.field(f.t("quote.field.turnover"), f.enumLabel("turnover", string(s.AnnualTurnover)), quoteLabelWidth)

	if est != nil && !est.IsEmpty() {
		r.section(f.t("quote.section.fees"))
		if b := est.AccountingBookkeeping; b != nil {
			r.field(f.t("quote.service.accountingBookkeeping"), f.FeeRange(*b)+" "+f.t("fee.perMonth"), feeLabelWidth)
		}
		if b := est.AuditServices; b != nil {
			r.field(f.t("quote.service.auditServices"), f.FeeRange(*b), feeLabelWidth)
		}
	}

	subject := fmt.Sprintf("%s - %s - %s", f.t("quote.title"), strings.TrimSpace(s.CompanyName), f.brand)
	return f.document(subject, r.String())
}

// FeeRange renders a bracket as "HKD 1,500 - 2,500" or "From HKD 3,500"
func (f *SubmissionFormatter) FeeRange(b domain.Bracket) string {
	from := f.labels.FormatNumber(b.Min)
	if b.Max == nil {
		return f.t("fee.from", from)
	}
	return f.t("fee.range", from, f.labels.FormatNumber(*b.Max))
}

func (f *SubmissionFormatter) header(r *report, titleKey string, submittedAt *time.Time) {
	r.line(f.t(titleKey) + " - " + f.brand)
	if submittedAt != nil {
		r.line(f.t("email.submittedAt") + ": " + submittedAt.UTC().Format("2006-01-02 15:04:05 MST"))
	}
}

func (f *SubmissionFormatter) document(subject, text string) domain.Document {
	var html bytes.Buffer
	// The template is static; Execute only fails on writer errors.
	_ = htmlTemplate.Execute(&html, text)
	return domain.Document{
		Subject: subject,
		Text:    text,
		HTML:    html.String(),
	}
}

func (f *SubmissionFormatter) t(key string, params ...string) string {
	if s, ok := f.labels.T(key, params...); ok {
		return s
	}
	return key
}

// enumLabel returns the display label of an enumeration value, or the raw value when unknown
func (f *SubmissionFormatter) enumLabel(group, value string) string {
	if s, ok := f.labels.T(group + "." + value); ok {
		return s
	}
	return value
}

// displayPhone shows the number as entered, plus its E.164 form when that differs
func displayPhone(raw string) string {
	trimmed := strings.TrimSpace(raw)
	e164, ok := phone.NormalizeE164(trimmed, phone.DefaultRegion)
	if !ok || e164 == trimmed {
		return trimmed
	}
	return fmt.Sprintf("%s (%s)", trimmed, e164)
}

// report accumulates the fixed layout of a submission email
type report struct {
	b strings.Builder
}

func (r *report) line(s string) {
	r.b.WriteString(s)
	r.b.WriteByte('\n')
}

func (r *report) section(title string) {
	r.b.WriteByte('\n')
	r.line(sectionRule)
	r.line(title)
	r.line(sectionRule)
	r.b.WriteByte('\n')
}

func (r *report) field(label, value string, width int) {
	label += ":"
	pad := width - utf8.RuneCountInString(label)
	if pad < 1 {
		pad = 1
	}
	r.line(strings.TrimRight(label+strings.Repeat(" ", pad)+strings.TrimSpace(value), " "))
}

func (r *report) String() string {
	return strings.TrimRight(r.b.String(), "\n") + "\n"
}

package usecase_test

import (
	"strings"
	"testing"
	"time"

	"leap-forms-backend/internal/domain"
	"leap-forms-backend/internal/usecase"
	"leap-forms-backend/pkg/i18n"

	"github.com/stretchr/testify/assert"
)

func newFormatter(locale string) *usecase.SubmissionFormatter {
	return usecase.NewSubmissionFormatter("LEAP by LLL", i18n.MustNewCatalog().For(locale))
}

func TestFormatContact(t *testing.T) {
	f := newFormatter(i18n.LocaleEN)
	c := validContact()

	doc := f.FormatContact(&c, nil)

	assert.Equal(t, "New Contact Inquiry - Jane - LEAP by LLL", doc.Subject)
	assert.True(t, strings.HasPrefix(doc.Text, "New Contact Inquiry - LEAP by LLL\n"))
	assert.Contains(t, doc.Text, "\nSelected Services:  Accounting & Bookkeeping\n")
	assert.Contains(t, doc.Text, "\nName:               Jane\n")
	assert.Contains(t, doc.Text, "\nCompany:\n")
	assert.Contains(t, doc.Text, "═══════════════════════════════════════\nMESSAGE\n═══════════════════════════════════════\n\nHi\n")
	assert.NotContains(t, doc.Text, "Submitted:")
}

func TestFormatContactNoServices(t *testing.T) {
	f := newFormatter(i18n.LocaleEN)
	c := validContact()
	c.Services = domain.ContactServices{}

	doc := f.FormatContact(&c, nil)
	assert.Contains(t, doc.Text, "Selected Services:  None selected\n")
}

func TestFormatContactEscapesHTML(t *testing.T) {
	f := newFormatter(i18n.LocaleEN)
	c := validContact()
	c.Message = `<script>alert("x")</script> & more`

	doc := f.FormatContact(&c, nil)

	assert.Contains(t, doc.Text, `<script>alert("x")</script> & more`)
	assert.True(t, strings.HasPrefix(doc.HTML, `<pre style="font-family: monospace; font-size: 14px;">`))
	assert.True(t, strings.HasSuffix(doc.HTML, "</pre>"))
	assert.NotContains(t, doc.HTML, "<script>")
	assert.Contains(t, doc.HTML, "&lt;script&gt;")
	assert.Contains(t, doc.HTML, "&amp; more")
}

func TestFormatSubmittedAt(t *testing.T) {
	f := newFormatter(i18n.LocaleEN)
	c := validContact()
	at := time.Date(2026, 10, 19, 16, 30, 0, 0, time.FixedZone("HKT", 8*3600))

	doc := f.FormatContact(&c, &at)
	assert.True(t, strings.HasPrefix(doc.Text, "New Contact Inquiry - LEAP by LLL\nSubmitted: 2026-10-19 08:30:00 UTC\n"), doc.Text)
	assert.Less(t, strings.Index(doc.Text, "Submitted:"), strings.Index(doc.Text, "═"))

	doc = f.FormatContact(&c, nil)
	assert.NotContains(t, doc.Text, "Submitted:")
}

func TestFormatQuote(t *testing.T) {
	f := newFormatter(i18n.LocaleEN)
	q := validQuote()
	q.Services.Other = true
	q.OtherServiceDetails = "Payroll"
	est := usecase.NewFeeEstimator().Estimate(&q)

	doc := f.FormatQuote(&q, &est, nil)

	assert.Equal(t, "New Quote Request - Chan Trading Ltd - LEAP by LLL", doc.Subject)
	assert.Contains(t, doc.Text, "Company Name:        Chan Trading Ltd\n")
	assert.Contains(t, doc.Text, "Company Type:        Active Small & Medium-sized Enterprise\n")
	assert.Contains(t, doc.Text, "Phone:               5123 4567 (+85251234567)\n")
	assert.Contains(t, doc.Text, "Selected Services:   Accounting & Bookkeeping, Audit Services, Other: Payroll\n")
	assert.Contains(t, doc.Text, "Transactions/Month:  Up to 100 transactions per month\n")
	assert.Contains(t, doc.Text, "Annual Turnover:     HKD 1 - 10 million\n")
	assert.Contains(t, doc.Text, "ESTIMATED FEES")
	assert.Contains(t, doc.Text, "Accounting & Bookkeeping:  HKD 1,500 - 2,500 / month\n")
	assert.Contains(t, doc.Text, "Audit Services:            HKD 20,000 - 45,000\n")
}

func TestFormatQuoteWithoutEstimate(t *testing.T) {
	f := newFormatter(i18n.LocaleEN)
	q := validQuote()
	q.Services = domain.QuoteServices{TaxEnquiryCase: true}
	est := usecase.NewFeeEstimator().Estimate(&q)

	doc := f.FormatQuote(&q, &est, nil)
	assert.NotContains(t, doc.Text, "ESTIMATED FEES")

	doc = f.FormatQuote(&q, nil, nil)
	assert.NotContains(t, doc.Text, "ESTIMATED FEES")
}

func TestFormatQuoteUnknownEnumFallsBackToRawValue(t *testing.T) {
	f := newFormatter(i18n.LocaleEN)
	q := validQuote()
	q.AnnualTurnover = "100m+"

	doc := f.FormatQuote(&q, nil, nil)
	assert.Contains(t, doc.Text, "Annual Turnover:     100m+\n")
}

func TestFeeRange(t *testing.T) {
	f := newFormatter(i18n.LocaleEN)
	assert.Equal(t, "HKD 800 - 1,000", f.FeeRange(*bracket(800, 1000)))
	assert.Equal(t, "From HKD 50,000", f.FeeRange(*bracket(50000)))
}

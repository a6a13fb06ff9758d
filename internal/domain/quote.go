package domain

import "context"

// CompanyType is the maturity band the visitor picks for their company.
type CompanyType string

const (
	CompanyTypeNewlyIncorporated CompanyType = "newly-incorporated"
	CompanyTypeActiveSME         CompanyType = "active-sme"
	CompanyTypeEstablished       CompanyType = "established"
)

// TransactionVolume is the monthly bank transaction band.
type TransactionVolume string

const (
	TransactionsUpTo25      TransactionVolume = "up-to-25"
	TransactionsUpTo100     TransactionVolume = "up-to-100"
	TransactionsMoreThan100 TransactionVolume = "more-than-100"
)

// BankAccounts is the number-of-bank-accounts band.
type BankAccounts string

const (
	BankAccountsOne       BankAccounts = "1"
	BankAccountsUpTo3     BankAccounts = "up-to-3"
	BankAccountsMoreThan3 BankAccounts = "more-than-3"
)

// AnnualTurnover is the turnover band in HKD.
type AnnualTurnover string

const (
	TurnoverUpTo1M  AnnualTurnover = "1m"
	Turnover1To10M  AnnualTurnover = "1-10m"
	Turnover10To50M AnnualTurnover = "10-50m"
	TurnoverOver50M AnnualTurnover = "50m+"
)

// QuoteService is one of the services offered on the quote form.
type QuoteService string

const (
	QuoteServiceAccountingBookkeeping    QuoteService = "accountingBookkeeping"
	QuoteServiceAuditServices            QuoteService = "auditServices"
	QuoteServiceTaxComputationFiling     QuoteService = "taxComputationFiling"
	QuoteServiceEmployerReturnFiling     QuoteService = "employerReturnFiling"
	QuoteServiceCompanySecretaryServices QuoteService = "companySecretaryServices"
	QuoteServiceTaxEnquiryCase           QuoteService = "taxEnquiryCase"
	QuoteServiceOther                    QuoteService = "other"
)

// QuoteServices holds the service checkboxes of the quote form
type QuoteServices struct {
	AccountingBookkeeping    bool `json:"accountingBookkeeping"`
	AuditServices            bool `json:"auditServices"`
	TaxComputationFiling     bool `json:"taxComputationFiling"`
	EmployerReturnFiling     bool `json:"employerReturnFiling"`
	CompanySecretaryServices bool `json:"companySecretaryServices"`
	TaxEnquiryCase           bool `json:"taxEnquiryCase"`
	Other                    bool `json:"other"`
}

// Selected returns the ticked services in form order.
func (s QuoteServices) Selected() []QuoteService {
	flags := []struct {
		on      bool
		service QuoteService
	}{
		{s.AccountingBookkeeping, QuoteServiceAccountingBookkeeping},
		{s.AuditServices, QuoteServiceAuditServices},
		{s.TaxComputationFiling, QuoteServiceTaxComputationFiling},
		{s.EmployerReturnFiling, QuoteServiceEmployerReturnFiling},
		{s.CompanySecretaryServices, QuoteServiceCompanySecretaryServices},
		{s.TaxEnquiryCase, QuoteServiceTaxEnquiryCase},
		{s.Other, QuoteServiceOther},
	}
	var out []QuoteService
	for _, f := range flags {
		if f.on {
			out = append(out, f.service)
		}
	}
	return out
}

// Any reports whether at least one service is ticked.
func (s QuoteServices) Any() bool {
	return len(s.Selected()) > 0
}

// QuoteSubmission represents a quote request form submission
type QuoteSubmission struct {
	CompanyName          string            `json:"companyName" validate:"notblank" example:"Chan Trading Ltd"`
	NatureOfBusiness     string            `json:"natureOfBusiness" validate:"notblank" example:"Import and export"`
	CompanyType          CompanyType       `json:"companyType" validate:"required,oneof=newly-incorporated active-sme established" example:"active-sme"`
	ContactPerson        string            `json:"contactPerson" validate:"notblank" example:"Jane Chan"`
	Position             string            `json:"position" validate:"notblank" example:"Director"`
	Email                string            `json:"email" validate:"notblank,simple_email" example:"jane@example.com"`
	Phone                string            `json:"phone" validate:"notblank,phone_min_digits=8,phone_max_digits=15" example:"+852 5123 4567"`
	Services             QuoteServices     `json:"services"`
	OtherServiceDetails  string            `json:"otherServiceDetails"`
	TransactionsPerMonth TransactionVolume `json:"transactionsPerMonth" validate:"required,oneof=up-to-25 up-to-100 more-than-100" example:"up-to-100"`
	NumberOfBankAccounts BankAccounts      `json:"numberOfBankAccounts" validate:"required,oneof=1 up-to-3 more-than-3" example:"up-to-3"`
	NumberOfEmployees    string            `json:"numberOfEmployees" validate:"notblank" example:"5"`
	AnnualTurnover       AnnualTurnover    `json:"annualTurnover" validate:"required,oneof=1m 1-10m 10-50m 50m+" example:"1-10m"`
}

// Bracket is a price range in HKD. A nil Max means "from Min, no upper bound".
type Bracket struct {
	Min int  `json:"min"`
	Max *int `json:"max"`
}

// Equal compares two brackets by value.
func (b Bracket) Equal(other Bracket) bool {
	if b.Min != other.Min {
		return false
	}
	if b.Max == nil || other.Max == nil {
		return b.Max == nil && other.Max == nil
	}
	return *b.Max == *other.Max
}

// FeeEstimate is the set of brackets computed for a quote request.
// A service without a bracket is omitted.
type FeeEstimate struct {
	AccountingBookkeeping *Bracket `json:"accountingBookkeeping,omitempty"`
	AuditServices         *Bracket `json:"auditServices,omitempty"`
}

// IsEmpty reports whether no bracket was produced.
func (f FeeEstimate) IsEmpty() bool {
	return f.AccountingBookkeeping == nil && f.AuditServices == nil
}

// Equal compares two estimates by value.
func (f FeeEstimate) Equal(other FeeEstimate) bool {
	return bracketsEqual(f.AccountingBookkeeping, other.AccountingBookkeeping) &&
		bracketsEqual(f.AuditServices, other.AuditServices)
}

func bracketsEqual(a, b *Bracket) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

// QuoteEnvelope is the request body of POST /api/send-quote.
// FeeEstimates is what the browser calculated; the server recomputes it.
type QuoteEnvelope struct {
	FormData     QuoteSubmission `json:"formData"`
	FeeEstimates *FeeEstimate    `json:"feeEstimates,omitempty"`
	Timestamp    string          `json:"timestamp" example:"2026-10-19T08:30:00.000Z"`
}

// FeeEstimator maps a quote request to price brackets
type FeeEstimator interface {
	Estimate(quote *QuoteSubmission) FeeEstimate
}

// QuoteUsecase defines the interface for quote request operations
type QuoteUsecase interface {
	// SendQuoteRequest validates, prices and mails a quote request
	SendQuoteRequest(ctx context.Context, env *QuoteEnvelope) (*FeeEstimate, error)
	// EstimateQuote validates and prices a quote request without sending anything
	EstimateQuote(ctx context.Context, quote *QuoteSubmission) (*FeeEstimate, error)
}

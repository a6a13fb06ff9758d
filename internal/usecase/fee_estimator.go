package usecase

import "leap-forms-backend/internal/domain"

// bracketRule pairs a condition with the bracket it yields.
// Rules are evaluated in order and the first match wins, so a quote with a low
// transaction volume and a high turnover lands in the low bracket.
type bracketRule struct {
	matches func(q *domain.QuoteSubmission) bool
	bracket domain.Bracket
}

func upTo(n int) *int { return &n }

var bookkeepingRules = []bracketRule{
	{
		matches: func(q *domain.QuoteSubmission) bool {
			return q.TransactionsPerMonth == domain.TransactionsUpTo25 || q.AnnualTurnover == domain.TurnoverUpTo1M
		},
		bracket: domain.Bracket{Min: 800, Max: upTo(1000)},
	},
	{
		matches: func(q *domain.QuoteSubmission) bool {
			return q.TransactionsPerMonth == domain.TransactionsUpTo100 || q.AnnualTurnover == domain.Turnover1To10M
		},
		bracket: domain.Bracket{Min: 1500, Max: upTo(2500)},
	},
	{
		matches: func(q *domain.QuoteSubmission) bool {
			return q.TransactionsPerMonth == domain.TransactionsMoreThan100 || largeTurnover(q.AnnualTurnover)
		},
		bracket: domain.Bracket{Min: 3500},
	},
}

var auditRules = []bracketRule{
	{
		matches: func(q *domain.QuoteSubmission) bool {
			return q.CompanyType == domain.CompanyTypeNewlyIncorporated || q.AnnualTurnover == domain.TurnoverUpTo1M
		},
		bracket: domain.Bracket{Min: 10000, Max: upTo(20000)},
	},
	{
		matches: func(q *domain.QuoteSubmission) bool {
			return q.CompanyType == domain.CompanyTypeActiveSME || q.AnnualTurnover == domain.Turnover1To10M
		},
		bracket: domain.Bracket{Min: 20000, Max: upTo(45000)},
	},
	{
		matches: func(q *domain.QuoteSubmission) bool {
			return q.CompanyType == domain.CompanyTypeEstablished || largeTurnover(q.AnnualTurnover)
		},
		bracket: domain.Bracket{Min: 50000},
	},
}

func largeTurnover(t domain.AnnualTurnover) bool {
	return t == domain.Turnover10To50M || t == domain.TurnoverOver50M
}

// firstMatch returns a copy of the first matching bracket, or nil.
func firstMatch(rules []bracketRule, q *domain.QuoteSubmission) *domain.Bracket {
	for _, r := range rules {
		if !r.matches(q) {
			continue
		}
		b := domain.Bracket{Min: r.bracket.Min}
		if r.bracket.Max != nil {
			b.Max = upTo(*r.bracket.Max)
		}
		return &b
	}
	return nil
}

type feeEstimator struct{}

// NewFeeEstimator returns the rule-based estimator used by the quote calculator
func NewFeeEstimator() domain.FeeEstimator {
	return feeEstimator{}
}

// Estimate prices the selected services. Only accounting & bookkeeping and
// audit services carry an indicative bracket.
func (feeEstimator) Estimate(q *domain.QuoteSubmission) domain.FeeEstimate {
	var est domain.FeeEstimate
	if q == nil {
		return est
	}
	if q.Services.AccountingBookkeeping {
		est.AccountingBookkeeping = firstMatch(bookkeepingRules, q)
	}
	if q.Services.AuditServices {
		est.AuditServices = firstMatch(auditRules, q)
	}
	return est
}

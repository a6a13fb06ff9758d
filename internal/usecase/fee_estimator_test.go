package usecase_test

import (
	"testing"

	"leap-forms-backend/internal/domain"
	"leap-forms-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	companyTypes = []domain.CompanyType{
		domain.CompanyTypeNewlyIncorporated, domain.CompanyTypeActiveSME, domain.CompanyTypeEstablished, "",
	}
	transactionVolumes = []domain.TransactionVolume{
		domain.TransactionsUpTo25, domain.TransactionsUpTo100, domain.TransactionsMoreThan100, "",
	}
	turnovers = []domain.AnnualTurnover{
		domain.TurnoverUpTo1M, domain.Turnover1To10M, domain.Turnover10To50M, domain.TurnoverOver50M, "",
	}
)

// forEachProfile walks every combination of the inputs that drive pricing
func forEachProfile(fn func(q *domain.QuoteSubmission)) {
	for _, ct := range companyTypes {
		for _, tx := range transactionVolumes {
			for _, to := range turnovers {
				for mask := 0; mask < 4; mask++ {
					q := &domain.QuoteSubmission{
						CompanyType:          ct,
						TransactionsPerMonth: tx,
						AnnualTurnover:       to,
						Services: domain.QuoteServices{
							AccountingBookkeeping: mask&1 != 0,
							AuditServices:         mask&2 != 0,
						},
					}
					fn(q)
				}
			}
		}
	}
}

func bracket(min int, max ...int) *domain.Bracket {
	b := &domain.Bracket{Min: min}
	if len(max) > 0 {
		b.Max = &max[0]
	}
	return b
}

func TestEstimateOmitsUnselectedServices(t *testing.T) {
	est := usecase.NewFeeEstimator()
	forEachProfile(func(q *domain.QuoteSubmission) {
		got := est.Estimate(q)
		if !q.Services.AccountingBookkeeping {
			assert.Nil(t, got.AccountingBookkeeping, "%+v", q)
		}
		if !q.Services.AuditServices {
			assert.Nil(t, got.AuditServices, "%+v", q)
		}
	})
}

func TestEstimateFirstMatchWins(t *testing.T) {
	est := usecase.NewFeeEstimator()
	for _, to := range turnovers {
		q := &domain.QuoteSubmission{
			TransactionsPerMonth: domain.TransactionsUpTo25,
			AnnualTurnover:       to,
			Services:             domain.QuoteServices{AccountingBookkeeping: true},
		}
		got := est.Estimate(q)
		require.NotNil(t, got.AccountingBookkeeping, "turnover %q", to)
		assert.Equal(t, bracket(800, 1000), got.AccountingBookkeeping, "turnover %q", to)
	}
}

func TestEstimateIsIdempotent(t *testing.T) {
	est := usecase.NewFeeEstimator()
	forEachProfile(func(q *domain.QuoteSubmission) {
		first := est.Estimate(q)
		second := est.Estimate(q)
		assert.True(t, first.Equal(second), "%+v", q)
	})
}

func TestEstimateDoesNotShareBrackets(t *testing.T) {
	est := usecase.NewFeeEstimator()
	q := &domain.QuoteSubmission{
		TransactionsPerMonth: domain.TransactionsUpTo25,
		Services:             domain.QuoteServices{AccountingBookkeeping: true},
	}
	first := est.Estimate(q)
	*first.AccountingBookkeeping.Max = 1

	second := est.Estimate(q)
	assert.Equal(t, 1000, *second.AccountingBookkeeping.Max)
}

func TestEstimateBrackets(t *testing.T) {
	tests := []struct {
		name     string
		quote    domain.QuoteSubmission
		bookkeep *domain.Bracket
		audit    *domain.Bracket
	}{
		{
			name: "active sme with 1-10m turnover",
			quote: domain.QuoteSubmission{
				CompanyType:    domain.CompanyTypeActiveSME,
				AnnualTurnover: domain.Turnover1To10M,
				Services:       domain.QuoteServices{AuditServices: true},
			},
			audit: bracket(20000, 45000),
		},
		{
			name: "turnover beats company type when checked first",
			quote: domain.QuoteSubmission{
				CompanyType:    domain.CompanyTypeEstablished,
				AnnualTurnover: domain.TurnoverUpTo1M,
				Services:       domain.QuoteServices{AuditServices: true},
			},
			audit: bracket(10000, 20000),
		},
		{
			name: "large turnover opens the top brackets",
			quote: domain.QuoteSubmission{
				AnnualTurnover: domain.TurnoverOver50M,
				Services:       domain.QuoteServices{AccountingBookkeeping: true, AuditServices: true},
			},
			bookkeep: bracket(3500),
			audit:    bracket(50000),
		},
		{
			name: "middle volume",
			quote: domain.QuoteSubmission{
				TransactionsPerMonth: domain.TransactionsUpTo100,
				AnnualTurnover:       domain.Turnover10To50M,
				Services:             domain.QuoteServices{AccountingBookkeeping: true},
			},
			bookkeep: bracket(1500, 2500),
		},
		{
			name: "no matching signal omits the bracket",
			quote: domain.QuoteSubmission{
				Services: domain.QuoteServices{AccountingBookkeeping: true, AuditServices: true},
			},
		},
	}

	est := usecase.NewFeeEstimator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := est.Estimate(&tt.quote)
			assert.Equal(t, tt.bookkeep, got.AccountingBookkeeping)
			assert.Equal(t, tt.audit, got.AuditServices)
		})
	}
}

func TestEstimateNilQuote(t *testing.T) {
	assert.True(t, usecase.NewFeeEstimator().Estimate(nil).IsEmpty())
}

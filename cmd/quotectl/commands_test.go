package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const quoteJSON = `{
  "formData": {
    "companyName": "Chan Trading Ltd",
    "natureOfBusiness": "Import and export",
    "companyType": "active-sme",
    "contactPerson": "Jane Chan",
    "position": "Director",
    "email": "jane@example.com",
    "phone": "5123 4567",
    "services": {"accountingBookkeeping": true, "auditServices": true},
    "transactionsPerMonth": "up-to-100",
    "numberOfBankAccounts": "up-to-3",
    "numberOfEmployees": "5",
    "annualTurnover": "1-10m"
  },
  "timestamp": "2026-10-19T08:30:00.000Z"
}`

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestEstimate(t *testing.T) {
	out, err := run(t, quoteJSON, "estimate", "-")
	require.NoError(t, err)
	assert.JSONEq(t, `{"accountingBookkeeping":{"min":1500,"max":2500},"auditServices":{"min":20000,"max":45000}}`, out)
}

func TestEstimateFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quote.json")
	require.NoError(t, os.WriteFile(path, []byte(quoteJSON), 0o600))

	out, err := run(t, "", "estimate", path)
	require.NoError(t, err)
	assert.Contains(t, out, `"min": 1500`)

	_, err = run(t, "", "estimate", filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	out, err := run(t, quoteJSON, "validate", "-")
	require.NoError(t, err)
	assert.Equal(t, "{}\n", out)

	out, err = run(t, `{"name":"","email":"jane@x.com","message":"Hi"}`, "validate", "--form", "contact", "--locale", "zh-HK", "-")
	assert.ErrorIs(t, err, errInvalidSubmission)
	assert.Contains(t, out, `"name": "此欄位為必填"`)

	_, err = run(t, "{}", "validate", "--form", "invoice", "-")
	assert.ErrorContains(t, err, "unknown form")
}

func TestRender(t *testing.T) {
	out, err := run(t, quoteJSON, "render", "quote", "-")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Subject: New Quote Request - Chan Trading Ltd - LEAP by LLL\n\n"))
	assert.Contains(t, out, "Submitted: 2026-10-19 08:30:00 UTC")
	assert.Contains(t, out, "HKD 1,500 - 2,500 / month")

	out, err = run(t, `{"name":"Jane","email":"jane@x.com","message":"Hi","services":{"accountingBookkeeping":true}}`, "render", "contact", "--brand", "LEAP", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "Subject: New Contact Inquiry - Jane - LEAP\n")
	assert.Contains(t, out, "Selected Services:  Accounting & Bookkeeping")
}

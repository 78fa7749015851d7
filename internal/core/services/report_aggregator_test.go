package services_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orgledger/orgledger-backend/internal/core/domain"
	"github.com/orgledger/orgledger-backend/internal/core/services"
	"github.com/orgledger/orgledger-backend/internal/utils/period"
)

func strPtr(s string) *string { return &s }

func makeTxn(txnType domain.TransactionType, amount string, categoryName *string, date time.Time) domain.Transaction {
	return domain.Transaction{
		TransactionID:   uuid.NewString(),
		Type:            txnType,
		Amount:          decimal.RequireFromString(amount),
		Currency:        domain.CurrencyINR,
		Description:     "test transaction",
		PaymentMethod:   domain.PaymentCash,
		PayerPayee:      "counterparty",
		TransactionDate: date,
		OrganizationID:  "org-1",
		CreatedByID:     "user-1",
		CategoryName:    categoryName,
	}
}

func TestSummarize_MonthlyTotalsAndBalance(t *testing.T) {
	reference := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	window := period.Resolve(domain.PeriodMonth, reference)

	txns := []domain.Transaction{
		makeTxn(domain.Income, "5000", strPtr("Salary"), time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)),
		makeTxn(domain.Expense, "1200", strPtr("Rent"), time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)),
	}

	report := services.Summarize(txns, window)
	require.NotNil(t, report)

	assert.True(t, report.Summary.TotalIncome.Equal(decimal.RequireFromString("5000")),
		"total income was %s", report.Summary.TotalIncome)
	assert.True(t, report.Summary.TotalExpenses.Equal(decimal.RequireFromString("1200")),
		"total expenses was %s", report.Summary.TotalExpenses)
	assert.True(t, report.Summary.Balance.Equal(decimal.RequireFromString("3800")),
		"balance was %s", report.Summary.Balance)
	assert.Equal(t, 1, report.Summary.IncomeCount)
	assert.Equal(t, 1, report.Summary.ExpenseCount)

	require.Contains(t, report.Breakdown[domain.Income], "Salary")
	require.Contains(t, report.Breakdown[domain.Expense], "Rent")
	assert.True(t, report.Breakdown[domain.Income]["Salary"].Total.Equal(decimal.RequireFromString("5000")))
	assert.True(t, report.Breakdown[domain.Expense]["Rent"].Total.Equal(decimal.RequireFromString("1200")))
	assert.Equal(t, domain.PeriodMonth, report.Period.Type)
	assert.Len(t, report.Transactions, 2)
}

func TestSummarize_UncategorizedBucket(t *testing.T) {
	window := period.Resolve(domain.PeriodMonth, time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC))
	date := time.Date(2024, time.June, 2, 0, 0, 0, 0, time.UTC)

	txns := []domain.Transaction{
		makeTxn(domain.Expense, "100.50", nil, date),
		makeTxn(domain.Expense, "49.50", strPtr(""), date),
		makeTxn(domain.Expense, "30", strPtr("Supplies"), date),
	}

	report := services.Summarize(txns, window)

	bucket, ok := report.Breakdown[domain.Expense][domain.UncategorizedLabel]
	require.True(t, ok, "expected an %q bucket", domain.UncategorizedLabel)
	assert.Equal(t, 2, bucket.Count)
	assert.True(t, bucket.Total.Equal(decimal.RequireFromString("150")), "bucket total was %s", bucket.Total)
	assert.Len(t, bucket.Transactions, 2)

	assert.Equal(t, 1, report.Breakdown[domain.Expense]["Supplies"].Count)
}

func TestSummarize_BreakdownLeavesSumToTypeTotals(t *testing.T) {
	window := period.Resolve(domain.PeriodYear, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC))
	date := time.Date(2024, time.April, 4, 0, 0, 0, 0, time.UTC)

	txns := []domain.Transaction{
		makeTxn(domain.Income, "0.10", strPtr("Sales"), date),
		makeTxn(domain.Income, "0.20", strPtr("Sales"), date),
		makeTxn(domain.Income, "0.30", nil, date),
		makeTxn(domain.Expense, "0.10", strPtr("Travel"), date),
		makeTxn(domain.Expense, "0.25", strPtr("Supplies"), date),
	}

	report := services.Summarize(txns, window)

	for txnType, buckets := range report.Breakdown {
		sum := decimal.Zero
		count := 0
		for _, bucket := range buckets {
			sum = sum.Add(bucket.Total)
			count += bucket.Count
			assert.Len(t, bucket.Transactions, bucket.Count)
		}
		switch txnType {
		case domain.Income:
			assert.True(t, sum.Equal(report.Summary.TotalIncome),
				"income leaves summed to %s, total is %s", sum, report.Summary.TotalIncome)
			assert.Equal(t, report.Summary.IncomeCount, count)
		case domain.Expense:
			assert.True(t, sum.Equal(report.Summary.TotalExpenses),
				"expense leaves summed to %s, total is %s", sum, report.Summary.TotalExpenses)
			assert.Equal(t, report.Summary.ExpenseCount, count)
		}
	}

	// 0.10 + 0.20 + 0.30 must be exactly 0.60, not a float approximation.
	assert.True(t, report.Summary.TotalIncome.Equal(decimal.RequireFromString("0.60")))
	assert.True(t, report.Summary.TotalExpenses.Equal(decimal.RequireFromString("0.35")))
	assert.True(t, report.Summary.Balance.Equal(decimal.RequireFromString("0.25")))
}

func TestSummarize_EmptyInput(t *testing.T) {
	window := period.Resolve(domain.PeriodWeek, time.Date(2024, time.May, 8, 0, 0, 0, 0, time.UTC))

	report := services.Summarize(nil, window)
	require.NotNil(t, report)

	assert.True(t, report.Summary.TotalIncome.IsZero())
	assert.True(t, report.Summary.TotalExpenses.IsZero())
	assert.True(t, report.Summary.Balance.IsZero())
	assert.Equal(t, 0, report.Summary.IncomeCount)
	assert.Equal(t, 0, report.Summary.ExpenseCount)

	// Both type maps exist even when empty so clients never see a nil group.
	require.Contains(t, report.Breakdown, domain.Income)
	require.Contains(t, report.Breakdown, domain.Expense)
	assert.Empty(t, report.Breakdown[domain.Income])
	assert.Empty(t, report.Breakdown[domain.Expense])
}

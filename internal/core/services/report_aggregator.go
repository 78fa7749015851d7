package services

import (
	"github.com/orgledger/orgledger-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Summarize folds an already-filtered transaction set into per-type totals
// and the two-level category breakdown. It performs no I/O and does not
// re-filter: the caller supplies exactly the rows belonging to one tenant
// and one period window.
//
// Amounts are summed in decimal, never divided, so for each type the leaf
// totals of the breakdown equal the type's total exactly.
func Summarize(transactions []domain.Transaction, window domain.PeriodWindow) *domain.Report {
	summary := domain.Summary{
		TotalIncome:   decimal.Zero,
		TotalExpenses: decimal.Zero,
	}

	breakdown := domain.CategoryBreakdown{
		domain.Income:  {},
		domain.Expense: {},
	}

	for _, txn := range transactions {
		switch txn.Type {
		case domain.Income:
			summary.TotalIncome = summary.TotalIncome.Add(txn.Amount)
			summary.IncomeCount++
		case domain.Expense:
			summary.TotalExpenses = summary.TotalExpenses.Add(txn.Amount)
			summary.ExpenseCount++
		default:
			continue
		}

		label := domain.UncategorizedLabel
		if txn.CategoryName != nil && *txn.CategoryName != "" {
			label = *txn.CategoryName
		}

		bucket, ok := breakdown[txn.Type][label]
		if !ok {
			bucket = &domain.CategoryBucket{Total: decimal.Zero}
			breakdown[txn.Type][label] = bucket
		}
		bucket.Total = bucket.Total.Add(txn.Amount)
		bucket.Count++
		bucket.Transactions = append(bucket.Transactions, txn)
	}

	summary.Balance = summary.TotalIncome.Sub(summary.TotalExpenses)

	return &domain.Report{
		Period:       window,
		Summary:      summary,
		Breakdown:    breakdown,
		Transactions: transactions,
	}
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PeriodType selects the reporting window kind.
type PeriodType string

const (
	PeriodWeek  PeriodType = "week"
	PeriodMonth PeriodType = "month"
	PeriodYear  PeriodType = "year"
)

// PeriodWindow is an inclusive [Start, End] instant range at full-day granularity.
type PeriodWindow struct {
	Type  PeriodType `json:"type"`
	Start time.Time  `json:"startDate"`
	End   time.Time  `json:"endDate"`
}

// Summary holds the per-type totals and counts for one period window.
// Balance is TotalIncome minus TotalExpenses, exactly.
type Summary struct {
	TotalIncome   decimal.Decimal `json:"totalIncome"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	Balance       decimal.Decimal `json:"balance"`
	IncomeCount   int             `json:"incomeCount"`
	ExpenseCount  int             `json:"expenseCount"`
}

// UncategorizedLabel is the breakdown bucket for transactions without a category.
const UncategorizedLabel = "Uncategorized"

// CategoryBucket is one leaf of the category breakdown: the summed amount,
// row count and the matching transactions for one (type, category name) pair.
type CategoryBucket struct {
	Total        decimal.Decimal `json:"total"`
	Count        int             `json:"count"`
	Transactions []Transaction   `json:"transactions"`
}

// CategoryBreakdown groups transactions first by type, then by category name.
// For each type the leaf totals sum exactly to the corresponding Summary total.
type CategoryBreakdown map[TransactionType]map[string]*CategoryBucket

// Report is the full output of a summary computation for one tenant and window.
type Report struct {
	Period       PeriodWindow      `json:"period"`
	Summary      Summary           `json:"summary"`
	Breakdown    CategoryBreakdown `json:"categoryBreakdown"`
	Transactions []Transaction     `json:"transactions"`
}

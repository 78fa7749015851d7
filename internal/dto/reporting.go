package dto

import (
	"time"

	"github.com/orgledger/orgledger-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// --- Reporting DTOs ---

// SummaryQuery binds the report endpoint's query string. An absent date means "now".
type SummaryQuery struct {
	Period domain.PeriodType `form:"period,default=month" binding:"omitempty,oneof=week month year"`
	Date   *string           `form:"date"`
}

// PeriodResponse describes the resolved reporting window.
type PeriodResponse struct {
	Type      domain.PeriodType `json:"type"`
	StartDate time.Time         `json:"startDate"`
	EndDate   time.Time         `json:"endDate"`
}

// SummaryResponse carries the per-type totals for the window.
type SummaryResponse struct {
	TotalIncome   decimal.Decimal `json:"totalIncome"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	Balance       decimal.Decimal `json:"balance"`
	IncomeCount   int             `json:"incomeCount"`
	ExpenseCount  int             `json:"expenseCount"`
}

// CategoryBucketResponse is one (type, category name) leaf of the breakdown.
type CategoryBucketResponse struct {
	Total        decimal.Decimal       `json:"total"`
	Count        int                   `json:"count"`
	Transactions []TransactionResponse `json:"transactions"`
}

// ReportResponse is the full summary report payload.
type ReportResponse struct {
	Period            PeriodResponse                                           `json:"period"`
	Summary           SummaryResponse                                          `json:"summary"`
	CategoryBreakdown map[domain.TransactionType]map[string]CategoryBucketResponse `json:"categoryBreakdown"`
	Transactions      []TransactionResponse                                    `json:"transactions"`
}

// ToReportResponse converts a domain report to the wire shape.
func ToReportResponse(r *domain.Report) ReportResponse {
	breakdown := make(map[domain.TransactionType]map[string]CategoryBucketResponse, len(r.Breakdown))
	for txnType, buckets := range r.Breakdown {
		group := make(map[string]CategoryBucketResponse, len(buckets))
		for name, bucket := range buckets {
			txns := make([]TransactionResponse, len(bucket.Transactions))
			for i := range bucket.Transactions {
				txns[i] = ToTransactionResponse(&bucket.Transactions[i])
			}
			group[name] = CategoryBucketResponse{
				Total:        bucket.Total,
				Count:        bucket.Count,
				Transactions: txns,
			}
		}
		breakdown[txnType] = group
	}

	transactions := make([]TransactionResponse, len(r.Transactions))
	for i := range r.Transactions {
		transactions[i] = ToTransactionResponse(&r.Transactions[i])
	}

	return ReportResponse{
		Period: PeriodResponse{
			Type:      r.Period.Type,
			StartDate: r.Period.Start,
			EndDate:   r.Period.End,
		},
		Summary: SummaryResponse{
			TotalIncome:   r.Summary.TotalIncome,
			TotalExpenses: r.Summary.TotalExpenses,
			Balance:       r.Summary.Balance,
			IncomeCount:   r.Summary.IncomeCount,
			ExpenseCount:  r.Summary.ExpenseCount,
		},
		CategoryBreakdown: breakdown,
		Transactions:      transactions,
	}
}

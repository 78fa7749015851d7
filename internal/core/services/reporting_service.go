package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/orgledger/orgledger-backend/internal/core/domain"
	portsrepo "github.com/orgledger/orgledger-backend/internal/core/ports/repositories"
	portssvc "github.com/orgledger/orgledger-backend/internal/core/ports/services"
	"github.com/orgledger/orgledger-backend/internal/utils/period"
)

// reportingService implements the ReportingService interface.
type reportingService struct {
	BaseService
	transactionRepo portsrepo.TransactionReader
}

// NewReportingService creates a new reporting service.
func NewReportingService(transactionRepo portsrepo.TransactionReader) portssvc.ReportingService {
	return &reportingService{transactionRepo: transactionRepo}
}

var _ portssvc.ReportingService = (*reportingService)(nil)

// Summary resolves the window, fetches the tenant's transactions inside it
// and folds them into the report.
func (s *reportingService) Summary(ctx context.Context, organizationID string, periodType domain.PeriodType, reference time.Time) (*domain.Report, error) {
	window := period.Resolve(periodType, reference)

	transactions, err := s.transactionRepo.FindTransactionsInWindow(ctx, organizationID, window)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve transactions for summary",
			slog.String("organization_id", organizationID),
			slog.String("period", string(window.Type)))
		return nil, fmt.Errorf("failed to retrieve transactions for summary: %w", err)
	}

	report := Summarize(transactions, window)

	s.LogInfo(ctx, "Summary report generated",
		slog.String("organization_id", organizationID),
		slog.String("period", string(window.Type)),
		slog.String("start", window.Start.Format(time.RFC3339)),
		slog.String("end", window.End.Format(time.RFC3339)),
		slog.Int("transaction_count", len(transactions)))
	return report, nil
}

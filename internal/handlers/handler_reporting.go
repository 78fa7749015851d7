package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/orgledger/orgledger-backend/internal/core/domain"
	portssvc "github.com/orgledger/orgledger-backend/internal/core/ports/services"
	"github.com/orgledger/orgledger-backend/internal/dto"
	"github.com/orgledger/orgledger-backend/internal/middleware"
)

// reportingHandler handles financial summary report requests.
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers report routes. Reports are read-only, so
// every role including VIEWER may call them.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/summary", h.getSummary)
	}
}

// getSummary godoc
// @Summary Generate financial summary report
// @Description Resolves the requested period around a reference date and returns totals, a category breakdown and the matching transactions.
// @Tags reports
// @Produce json
// @Param period query string false "Period type (week, month or year)" default(month)
// @Param date query string false "Reference date (YYYY-MM-DD)" default(current date)
// @Success 200 {object} dto.ReportResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/summary [get]
func (h *reportingHandler) getSummary(c *gin.Context) {
	identity, ok := middleware.GetAuthFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var query dto.SummaryQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindingErrorMessage(err)})
		return
	}

	reference := time.Now()
	if query.Date != nil && *query.Date != "" {
		parsed, err := time.Parse("2006-01-02", *query.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid date format. Use YYYY-MM-DD"})
			return
		}
		reference = parsed
	}

	periodType := query.Period
	if periodType == "" {
		periodType = domain.PeriodMonth
	}

	report, err := h.reportingService.Summary(c.Request.Context(), identity.OrganizationID, periodType, reference)
	if err != nil {
		respondWithError(c, err, "Failed to generate summary report")
		return
	}

	c.JSON(http.StatusOK, dto.ToReportResponse(report))
}

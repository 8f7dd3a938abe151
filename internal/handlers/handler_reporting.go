package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/fynbospay/ledger/internal/core/ports/services"
	"github.com/fynbospay/ledger/internal/dto"
	"github.com/fynbospay/ledger/internal/middleware"
)

// reportingHandler handles HTTP requests for derived reports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// registerReportingRoutes registers the reporting routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := &reportingHandler{reportingService: reportingService}

	reports := rg.Group("/reports")
	{
		reports.GET("/trial-balance", h.trialBalance)
	}
}

func (h *reportingHandler) trialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	asOf := time.Now().UTC()
	if asOfStr := c.Query("asOf"); asOfStr != "" {
		parsed, err := time.Parse(time.RFC3339, asOfStr)
		if err != nil {
			logger.Warn("Invalid asOf parameter", slog.String("asOf", asOfStr))
			c.JSON(http.StatusBadRequest, gin.H{"error": "asOf must be RFC3339"})
			return
		}
		asOf = parsed
	}

	rows, err := h.reportingService.TrialBalance(c.Request.Context(), asOf)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := dto.TrialBalanceResponse{
		AsOf: asOf,
		Rows: make([]dto.TrialBalanceRowResponse, len(rows)),
	}
	for i := range rows {
		resp.Rows[i] = dto.ToTrialBalanceRowResponse(&rows[i])
		resp.DebitTotalMinorUnits += resp.Rows[i].DebitTotalMinorUnits
		resp.CreditTotalMinorUnits += resp.Rows[i].CreditTotalMinorUnits
	}

	c.JSON(http.StatusOK, resp)
}

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/fynbospay/ledger/internal/apperrors"
	portssvc "github.com/fynbospay/ledger/internal/core/ports/services"
	"github.com/fynbospay/ledger/internal/middleware"
	"github.com/fynbospay/ledger/internal/platform/config"
)

// Services bundles the service facades the HTTP layer exposes.
type Services struct {
	Account   portssvc.AccountSvcFacade
	Posting   portssvc.PostingSvcFacade
	Reporting portssvc.ReportingSvcFacade
	Template  portssvc.TemplateSvcFacade
}

// RegisterHandlers wires all routes onto the /api/v1 group.
func RegisterHandlers(r *gin.Engine, cfg *config.Config, svcs Services) {
	registerValidations()

	v1 := r.Group("/api/v1")

	postingLimiter := limiter.New(memory.NewStore(), limiter.Rate{
		Limit:  cfg.PostingRateLimit,
		Period: cfg.PostingRatePeriod,
	})

	registerAccountRoutes(v1, svcs.Account, svcs.Reporting)
	registerJournalRoutes(v1, svcs.Posting, middleware.RateLimit(postingLimiter))
	registerReportingRoutes(v1, svcs.Reporting)

	if cfg.EnableDemoPostings {
		// Draft posting helpers for generating representative entries
		// without a live upstream event. Gated off by default and always
		// off in production.
		registerDemoRoutes(v1, svcs.Template)
	}
}

// respondError translates service errors into HTTP responses. Typed ledger
// errors serialise with their context fields so reconciliation tooling can
// act without parsing free text.
func respondError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var consistencyErr *apperrors.ConsistencyError
	if errors.As(err, &consistencyErr) {
		// Fatal alarm, not a request-level error: the posting engine is
		// suspect. Page-worthy.
		logger.Error("Ledger consistency alarm", slog.String("error", consistencyErr.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": consistencyErr.Error(), "alarm": "ledger_consistency"})
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrStorageUnavailable):
		logger.Error("Storage unavailable", slog.String("error", err.Error()))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "storage unavailable, retry with the same reference"})
	default:
		logger.Error("Unhandled service error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

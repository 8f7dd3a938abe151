package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/fynbospay/ledger/internal/core/ports/services"
	"github.com/fynbospay/ledger/internal/dto"
	"github.com/fynbospay/ledger/internal/middleware"
)

// demoHandler exposes the draft posting helpers. These exist so a
// representative VAS or PayShap posting can be generated without a live
// upstream event; the routes are registered only when demo postings are
// enabled and never in production.
type demoHandler struct {
	templateService portssvc.TemplateSvcFacade
}

// registerDemoRoutes registers the environment-gated draft posting routes.
func registerDemoRoutes(rg *gin.RouterGroup, templateService portssvc.TemplateSvcFacade) {
	h := &demoHandler{templateService: templateService}

	demo := rg.Group("/demo")
	{
		demo.POST("/vas-purchase", h.draftPostVasPurchase)
		demo.POST("/payshap-rtp", h.draftPostPayShapRtp)
	}
}

func (h *demoHandler) draftPostVasPurchase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.VasPurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for draft VAS purchase", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	entry, replayed, err := h.templateService.PostVasPurchase(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusCreated
	if replayed {
		status = http.StatusOK
	}
	c.JSON(status, dto.ToEntryResponse(entry, replayed))
}

func (h *demoHandler) draftPostPayShapRtp(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.PayShapRtpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for draft PayShap RTP", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	entry, replayed, err := h.templateService.PostPayShapRtp(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusCreated
	if replayed {
		status = http.StatusOK
	}
	c.JSON(status, dto.ToEntryResponse(entry, replayed))
}

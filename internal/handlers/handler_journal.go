package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/fynbospay/ledger/internal/core/ports/services"
	"github.com/fynbospay/ledger/internal/dto"
	"github.com/fynbospay/ledger/internal/middleware"
)

// journalHandler handles HTTP requests for posting and reading journal
// entries. Posting is the collaborators' single write path into the ledger.
type journalHandler struct {
	postingService portssvc.PostingSvcFacade
}

// registerJournalRoutes registers routes related to journal entries. The
// posting route carries the rate limiter: webhook retries burst.
func registerJournalRoutes(rg *gin.RouterGroup, postingService portssvc.PostingSvcFacade, rateLimit gin.HandlerFunc) {
	h := &journalHandler{postingService: postingService}

	entries := rg.Group("/journal-entries")
	{
		entries.POST("", rateLimit, h.postEntry)
		entries.GET("/:entryID", h.getEntry)
	}
}

func (h *journalHandler) postEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.PostEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for PostEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	entry, replayed, err := h.postingService.PostEntry(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusCreated
	if replayed {
		// The reference matched an already committed entry: hand it back
		// unchanged instead of double-posting.
		status = http.StatusOK
	}
	c.JSON(status, dto.ToEntryResponse(entry, replayed))
}

func (h *journalHandler) getEntry(c *gin.Context) {
	entry, lines, err := h.postingService.GetEntry(c.Request.Context(), c.Param("entryID"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.GetEntryResponse{
		Entry: dto.ToEntryResponse(entry, false),
		Lines: dto.ToLineResponses(lines),
	})
}

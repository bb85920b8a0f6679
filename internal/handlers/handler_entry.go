package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/def_finance/internal/core/domain"
	portssvc "github.com/SscSPs/def_finance/internal/core/ports/services"
	"github.com/SscSPs/def_finance/internal/dto"
	"github.com/SscSPs/def_finance/internal/middleware"
	"github.com/gin-gonic/gin"
)

// entryHandler handles HTTP requests related to entries.
type entryHandler struct {
	entryService portssvc.EntrySvcFacade
}

func newEntryHandler(es portssvc.EntrySvcFacade) *entryHandler {
	return &entryHandler{entryService: es}
}

// RegisterEntryRoutes registers the entry routes and the payables and
// receivables listings.
func RegisterEntryRoutes(rg *gin.RouterGroup, entryService portssvc.EntrySvcFacade) {
	h := newEntryHandler(entryService)

	entries := rg.Group("/entries")
	{
		entries.POST("", h.createEntry)
		entries.GET("", h.listEntries)
		entries.GET("/:id", h.getEntry)
		entries.PUT("/:id", h.updateEntry)
		entries.POST("/:id/pay", h.markAsPaid)
	}
	rg.GET("/payables", h.listByKind(domain.Outflow))
	rg.GET("/receivables", h.listByKind(domain.Inflow))
}

// createEntry godoc
// @Summary Create an entry
// @Description Creates a payable (Saida) or receivable (Entrada)
// @Tags entries
// @Accept json
// @Produce json
// @Param entry body dto.EntryRequest true "Entry"
// @Success 201 {object} dto.EntryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create entry"
// @Security BearerAuth
// @Router /entries [post]
func (h *entryHandler) createEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.EntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	entry, derived, err := h.entryService.CreateEntry(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create entry")
		return
	}
	logger.Info("Entry created successfully", slog.String("entry_id", entry.ID))
	c.JSON(http.StatusCreated, dto.ToEntryResponse(*entry, derived))
}

// getEntry godoc
// @Summary Get an entry
// @Tags entries
// @Produce json
// @Param id path string true "Entry ID"
// @Success 200 {object} dto.EntryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 500 {object} map[string]string "Failed to retrieve entry"
// @Security BearerAuth
// @Router /entries/{id} [get]
func (h *entryHandler) getEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("entry_id", c.Param("id")))

	entry, derived, err := h.entryService.GetEntry(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToEntryResponse(*entry, derived))
}

// listEntries godoc
// @Summary List entries
// @Description Filters and sorts entries; the summary groups them by due date
// @Tags entries
// @Produce json
// @Param kind query string false "Entrada or Saida"
// @Param status query string false "due, overdue or paid"
// @Param unit query string false "Unit name or 'todas'"
// @Param counterparty query string false "Counterparty substring"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Param sort query string false "Sort column"
// @Param direction query string false "asc or desc"
// @Success 200 {object} dto.ListEntriesResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list entries"
// @Security BearerAuth
// @Router /entries [get]
func (h *entryHandler) listEntries(c *gin.Context) {
	h.list(c, nil)
}

// listByKind godoc
// @Summary List payables or receivables
// @Tags entries
// @Produce json
// @Param status query string false "due, overdue or paid"
// @Param unit query string false "Unit name or 'todas'"
// @Param counterparty query string false "Counterparty substring"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.ListEntriesResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /payables [get]
// @Router /receivables [get]
func (h *entryHandler) listByKind(kind domain.EntryKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		h.list(c, &kind)
	}
}

func (h *entryHandler) list(c *gin.Context, kind *domain.EntryKind) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListEntries", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.entryService.ListEntries(c.Request.Context(), kind, params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list entries")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// updateEntry godoc
// @Summary Update an entry
// @Description Replaces every editable field of an entry
// @Tags entries
// @Accept json
// @Produce json
// @Param id path string true "Entry ID"
// @Param entry body dto.EntryRequest true "Entry"
// @Success 200 {object} dto.EntryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 500 {object} map[string]string "Failed to update entry"
// @Security BearerAuth
// @Router /entries/{id} [put]
func (h *entryHandler) updateEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("entry_id", c.Param("id")))
	var req dto.EntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	entry, derived, err := h.entryService.UpdateEntry(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToEntryResponse(*entry, derived))
}

// markAsPaid godoc
// @Summary Mark an entry as paid
// @Description Sets the status to Pago with today as the payment date
// @Tags entries
// @Produce json
// @Param id path string true "Entry ID"
// @Success 200 {object} dto.EntryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 500 {object} map[string]string "Failed to mark entry as paid"
// @Security BearerAuth
// @Router /entries/{id}/pay [post]
func (h *entryHandler) markAsPaid(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("entry_id", c.Param("id")))
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	entry, derived, err := h.entryService.MarkAsPaid(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to mark entry as paid")
		return
	}
	c.JSON(http.StatusOK, dto.ToEntryResponse(*entry, derived))
}

package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/def_finance/internal/core/ports/services"
	"github.com/SscSPs/def_finance/internal/dto"
	"github.com/SscSPs/def_finance/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

type importHandler struct {
	importService portssvc.ImportSvc
}

// RegisterImportRoutes registers the spreadsheet import route, rate limited
// per client IP when lim is not nil.
func RegisterImportRoutes(rg *gin.RouterGroup, importService portssvc.ImportSvc, lim *limiter.Limiter) {
	h := &importHandler{importService: importService}

	imports := rg.Group("/imports")
	if lim != nil {
		imports.Use(middleware.RateLimit(lim))
	}
	imports.POST("/sheets", h.importSheets)
}

// importSheets godoc
// @Summary Import entries from Google Sheets
// @Description Reads the configured range (or the given one) and upserts every valid row
// @Tags imports
// @Accept json
// @Produce json
// @Param request body dto.ImportSheetsRequest false "Optional range override"
// @Success 200 {object} domain.ImportResult
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 503 {object} map[string]string "Spreadsheet not configured or unreachable"
// @Security BearerAuth
// @Router /imports/sheets [post]
func (h *importHandler) importSheets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ImportSheetsRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		logger.Warn("Failed to bind JSON for ImportSheets", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	result, err := h.importService.ImportFromSheets(c.Request.Context(), req.Range, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to import spreadsheet")
		return
	}
	logger.Info("Spreadsheet imported", slog.Int("imported", result.Imported), slog.Int("skipped", result.Skipped))
	c.JSON(http.StatusOK, result)
}

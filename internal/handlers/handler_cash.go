package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/def_finance/internal/core/ports/services"
	"github.com/SscSPs/def_finance/internal/dto"
	"github.com/SscSPs/def_finance/internal/middleware"
	"github.com/gin-gonic/gin"
)

type cashHandler struct {
	cashService portssvc.CashSvc
}

// RegisterCashRoutes registers the cash adjustment routes.
func RegisterCashRoutes(rg *gin.RouterGroup, cashService portssvc.CashSvc) {
	h := &cashHandler{cashService: cashService}

	rg.GET("/cash-adjustment", h.getCashAdjustment)
	rg.PUT("/cash-adjustment", h.setCashAdjustment)
}

// getCashAdjustment godoc
// @Summary Get the cash adjustment
// @Tags cash
// @Produce json
// @Success 200 {object} dto.CashAdjustmentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /cash-adjustment [get]
func (h *cashHandler) getCashAdjustment(c *gin.Context) {
	c.JSON(http.StatusOK, dto.CashAdjustmentResponse{Value: h.cashService.GetCashAdjustment(c.Request.Context())})
}

// setCashAdjustment godoc
// @Summary Set the cash adjustment
// @Description Stores the manually confirmed cash-in-hand value, rounded to cents
// @Tags cash
// @Accept json
// @Produce json
// @Param value body dto.CashAdjustmentRequest true "Cash value"
// @Success 200 {object} dto.CashAdjustmentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to store cash adjustment"
// @Security BearerAuth
// @Router /cash-adjustment [put]
func (h *cashHandler) setCashAdjustment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CashAdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetCashAdjustment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	stored, err := h.cashService.SetCashAdjustment(c.Request.Context(), *req.Value, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to store cash adjustment")
		return
	}
	c.JSON(http.StatusOK, dto.CashAdjustmentResponse{Value: stored})
}

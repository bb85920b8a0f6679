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

type registryHandler struct {
	registryService portssvc.RegistrySvcFacade
}

// RegisterRegistryRoutes registers the counterparty and unit routes.
func RegisterRegistryRoutes(rg *gin.RouterGroup, registryService portssvc.RegistrySvcFacade) {
	h := &registryHandler{registryService: registryService}

	counterparties := rg.Group("/counterparties")
	{
		counterparties.POST("", h.createCounterparty)
		counterparties.GET("", h.listCounterparties)
	}
	units := rg.Group("/units")
	{
		units.POST("", h.createUnit)
		units.GET("", h.listUnits)
	}
}

// createCounterparty godoc
// @Summary Register a client or supplier
// @Tags registry
// @Accept json
// @Produce json
// @Param counterparty body dto.CreateCounterpartyRequest true "Counterparty"
// @Success 201 {object} domain.Counterparty
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Already registered"
// @Security BearerAuth
// @Router /counterparties [post]
func (h *registryHandler) createCounterparty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCounterpartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCounterparty", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	counterparty, err := h.registryService.CreateCounterparty(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create counterparty")
		return
	}
	c.JSON(http.StatusCreated, counterparty)
}

// listCounterparties godoc
// @Summary List clients and suppliers
// @Tags registry
// @Produce json
// @Param kind query string false "Cliente or Fornecedor"
// @Success 200 {array} domain.Counterparty
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /counterparties [get]
func (h *registryHandler) listCounterparties(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListCounterpartiesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	var kind *domain.CounterpartyKind
	if params.Kind != "" {
		k := domain.CounterpartyKind(params.Kind)
		kind = &k
	}

	list, err := h.registryService.ListCounterparties(c.Request.Context(), kind)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list counterparties")
		return
	}
	c.JSON(http.StatusOK, list)
}

// createUnit godoc
// @Summary Register a unit
// @Tags registry
// @Accept json
// @Produce json
// @Param unit body dto.CreateUnitRequest true "Unit"
// @Success 201 {object} domain.Unit
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Already registered"
// @Security BearerAuth
// @Router /units [post]
func (h *registryHandler) createUnit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateUnit", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	unit, err := h.registryService.CreateUnit(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create unit")
		return
	}
	c.JSON(http.StatusCreated, unit)
}

// listUnits godoc
// @Summary List units
// @Tags registry
// @Produce json
// @Success 200 {array} domain.Unit
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /units [get]
func (h *registryHandler) listUnits(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	units, err := h.registryService.ListUnits(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list units")
		return
	}
	c.JSON(http.StatusOK, units)
}

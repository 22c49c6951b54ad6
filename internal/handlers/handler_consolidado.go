package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/fegundez/maqtrack/internal/core/ports/services"
	"github.com/fegundez/maqtrack/internal/dto"
	"github.com/fegundez/maqtrack/internal/middleware"
	"github.com/gin-gonic/gin"
)

// consolidationHandler handles HTTP requests for the consolidated portfolio
// view over management records.
type consolidationHandler struct {
	consolidationService portssvc.ConsolidationSvcFacade
}

// newConsolidationHandler creates a new consolidationHandler.
func newConsolidationHandler(cs portssvc.ConsolidationSvcFacade) *consolidationHandler {
	return &consolidationHandler{
		consolidationService: cs,
	}
}

// registerConsolidationRoutes registers the consolidated view routes.
func registerConsolidationRoutes(rg *gin.RouterGroup, consolidationService portssvc.ConsolidationSvcFacade) {
	h := newConsolidationHandler(consolidationService)

	consolidado := rg.Group("/consolidado")
	{
		consolidado.GET("/totals", h.totals)
		consolidado.GET("/stats", h.stats)
	}
}

// totals godoc
// @Summary Get portfolio totals
// @Description Rolls up the filtered management records into machine counts, FOB/CIF/cost/projection sums and state/type breakdowns. A store failure degrades to an all-zero result with canonical bucket keys so the view always renders.
// @Tags consolidado
// @Produce  json
// @Param   salesState query string false "Sales state filter (OK, X, BLANCO)"
// @Param   tipoCompra query string false "Purchase type filter (SUBASTA, COMPRA_DIRECTA, STOCK)"
// @Param   tipoIncoterm query string false "Incoterm filter (EXW, FOB, CIF)"
// @Param   currency query string false "Currency code filter (3 letters)"
// @Success 200 {object} dto.ConsolidatedTotalsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Router /consolidado/totals [get]
func (h *consolidationHandler) totals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var query dto.ConsolidationQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Failed to bind query for consolidated totals", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	totals := h.consolidationService.TotalsOrZero(c.Request.Context(), query.ToFilter())
	c.JSON(http.StatusOK, dto.ToConsolidatedTotalsResponse(totals))
}

// stats godoc
// @Summary Get portfolio statistics
// @Description Extends the portfolio totals with the average sales margin and projection coverage. A store failure degrades to an all-zero result with canonical bucket keys.
// @Tags consolidado
// @Produce  json
// @Param   salesState query string false "Sales state filter (OK, X, BLANCO)"
// @Param   tipoCompra query string false "Purchase type filter (SUBASTA, COMPRA_DIRECTA, STOCK)"
// @Param   tipoIncoterm query string false "Incoterm filter (EXW, FOB, CIF)"
// @Param   currency query string false "Currency code filter (3 letters)"
// @Success 200 {object} dto.ConsolidatedStatsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Router /consolidado/stats [get]
func (h *consolidationHandler) stats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var query dto.ConsolidationQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Failed to bind query for consolidated stats", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	stats := h.consolidationService.StatsOrZero(c.Request.Context(), query.ToFilter())
	c.JSON(http.StatusOK, dto.ToConsolidatedStatsResponse(stats))
}

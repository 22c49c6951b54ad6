package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/fegundez/maqtrack/internal/apperrors"
	portssvc "github.com/fegundez/maqtrack/internal/core/ports/services"
	"github.com/fegundez/maqtrack/internal/dto"
	"github.com/fegundez/maqtrack/internal/middleware"
	"github.com/gin-gonic/gin"
)

// costItemHandler handles HTTP requests related to purchase cost items.
type costItemHandler struct {
	costService portssvc.CostSvcFacade
}

// newCostItemHandler creates a new costItemHandler.
func newCostItemHandler(cs portssvc.CostSvcFacade) *costItemHandler {
	return &costItemHandler{
		costService: cs,
	}
}

// registerCostItemRoutes registers routes related to cost items. The
// aggregate views hang off the owning purchase.
func registerCostItemRoutes(rg *gin.RouterGroup, costService portssvc.CostSvcFacade) {
	h := newCostItemHandler(costService)

	costItems := rg.Group("/cost-items")
	{
		costItems.POST("", h.createCostItem)
		costItems.DELETE("/:costItemID", h.deleteCostItem)
	}

	purchaseCosts := rg.Group("/purchases/:purchaseID/costs")
	{
		purchaseCosts.GET("", h.listCostItems)
		purchaseCosts.GET("/totals", h.costTotals)
		purchaseCosts.GET("/summary", h.costSummary)
	}
}

// createCostItem godoc
// @Summary Add a cost item to a purchase
// @Description Records a cost entry under one of the fixed cost categories
// @Tags costs
// @Accept  json
// @Produce  json
// @Param   item body dto.CreateCostItemRequest true "Cost item details"
// @Success 201 {object} dto.CostItemResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create cost item"
// @Router /cost-items [post]
func (h *costItemHandler) createCostItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCostItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCostItem", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetActorIDFromContext(c)
	if !ok {
		logger.Error("Actor ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("creator_user_id", creatorUserID))
	logger.Info("Received request to create cost item",
		slog.String("purchase_id", req.PurchaseID),
		slog.String("category", req.Category),
		slog.Any("amount", req.Amount),
	)

	created, err := h.costService.CreateCostItem(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating cost item", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create cost item in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create cost item"})
		}
		return
	}

	logger.Info("Cost item created successfully", slog.String("cost_item_id", created.CostItemID))
	c.JSON(http.StatusCreated, dto.ToCostItemResponse(created))
}

// deleteCostItem godoc
// @Summary Delete a cost item
// @Description Removes a cost entry by its identifier
// @Tags costs
// @Produce  json
// @Param   costItemID path string true "Cost Item ID"
// @Success 204 "Cost item deleted"
// @Failure 404 {object} map[string]string "Cost item not found"
// @Failure 500 {object} map[string]string "Failed to delete cost item"
// @Router /cost-items/{costItemID} [delete]
func (h *costItemHandler) deleteCostItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	costItemID := c.Param("costItemID")

	if err := h.costService.DeleteCostItem(c.Request.Context(), costItemID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Cost item not found for deletion", slog.String("cost_item_id", costItemID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Cost item not found"})
		} else {
			logger.Error("Failed to delete cost item", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete cost item"})
		}
		return
	}

	logger.Info("Cost item deleted successfully", slog.String("cost_item_id", costItemID))
	c.Status(http.StatusNoContent)
}

// listCostItems godoc
// @Summary List the cost items of a purchase
// @Description Retrieves all cost entries recorded against a purchase
// @Tags costs
// @Produce  json
// @Param   purchaseID path string true "Purchase ID"
// @Success 200 {array} dto.CostItemResponse
// @Failure 500 {object} map[string]string "Failed to list cost items"
// @Router /purchases/{purchaseID}/costs [get]
func (h *costItemHandler) listCostItems(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	purchaseID := c.Param("purchaseID")

	items, err := h.costService.ListCostItems(c.Request.Context(), purchaseID)
	if err != nil {
		logger.Error("Failed to list cost items", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list cost items"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListCostItemResponse(items))
}

// costTotals godoc
// @Summary Get the per-category cost totals of a purchase
// @Description Sums cost items per category. A store failure degrades to an all-zero result so dashboards always render.
// @Tags costs
// @Produce  json
// @Param   purchaseID path string true "Purchase ID"
// @Success 200 {object} dto.CostTotalsResponse
// @Router /purchases/{purchaseID}/costs/totals [get]
func (h *costItemHandler) costTotals(c *gin.Context) {
	purchaseID := c.Param("purchaseID")

	totals := h.costService.TotalsOrZero(c.Request.Context(), purchaseID)
	c.JSON(http.StatusOK, dto.ToCostTotalsResponse(totals))
}

// costSummary godoc
// @Summary Get the labeled cost breakdown of a purchase
// @Description Returns one labeled row per cost category in canonical order plus the grand total
// @Tags costs
// @Produce  json
// @Param   purchaseID path string true "Purchase ID"
// @Success 200 {object} dto.CostSummaryResponse
// @Failure 500 {object} map[string]string "Failed to build cost summary"
// @Router /purchases/{purchaseID}/costs/summary [get]
func (h *costItemHandler) costSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	purchaseID := c.Param("purchaseID")

	summary, err := h.costService.Summary(c.Request.Context(), purchaseID)
	if err != nil {
		logger.Error("Failed to build cost summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build cost summary"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCostSummaryResponse(summary))
}

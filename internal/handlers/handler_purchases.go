package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/fegundez/maqtrack/internal/apperrors"
	portssvc "github.com/fegundez/maqtrack/internal/core/ports/services"
	"github.com/fegundez/maqtrack/internal/dto"
	"github.com/fegundez/maqtrack/internal/middleware"
	"github.com/gin-gonic/gin"
)

// purchaseHandler handles HTTP requests related to purchases.
type purchaseHandler struct {
	purchaseService portssvc.PurchaseSvcFacade
}

// newPurchaseHandler creates a new purchaseHandler.
func newPurchaseHandler(ps portssvc.PurchaseSvcFacade) *purchaseHandler {
	return &purchaseHandler{
		purchaseService: ps,
	}
}

// registerPurchaseRoutes registers routes related to purchases.
func registerPurchaseRoutes(rg *gin.RouterGroup, purchaseService portssvc.PurchaseSvcFacade) {
	h := newPurchaseHandler(purchaseService)

	purchases := rg.Group("/purchases")
	{
		purchases.POST("", h.createPurchase)
		purchases.GET("", h.listPurchases)
		purchases.GET("/:purchaseID", h.getPurchase)
		purchases.PUT("/:purchaseID", h.updatePurchase)
		purchases.GET("/:purchaseID/financial-summary", h.financialSummary)
	}
}

// createPurchase godoc
// @Summary Register a purchase
// @Description Registers a machinery purchase with its incoterm and monetary fields
// @Tags purchases
// @Accept  json
// @Produce  json
// @Param   purchase body dto.CreatePurchaseRequest true "Purchase details"
// @Success 201 {object} dto.PurchaseResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create purchase"
// @Router /purchases [post]
func (h *purchaseHandler) createPurchase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePurchase", slog.String("error", err.Error()))
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
	logger.Info("Received request to create purchase",
		slog.String("supplier", req.Supplier),
		slog.String("incoterm", req.Incoterm),
	)

	created, err := h.purchaseService.CreatePurchase(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating purchase", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create purchase in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create purchase"})
		}
		return
	}

	logger.Info("Purchase created successfully", slog.String("purchase_id", created.PurchaseID))
	c.JSON(http.StatusCreated, dto.ToPurchaseResponse(created))
}

// listPurchases godoc
// @Summary List purchases
// @Description Retrieves purchases with paging, newest first
// @Tags purchases
// @Produce  json
// @Param   page query int false "Page number" default(1)
// @Param   pageSize query int false "Page size" default(50)
// @Success 200 {object} map[string]interface{} "purchases and total count"
// @Failure 500 {object} map[string]string "Failed to list purchases"
// @Router /purchases [get]
func (h *purchaseHandler) listPurchases(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "50"))
	if err != nil || pageSize < 1 || pageSize > 200 {
		pageSize = 50
	}

	purchases, total, err := h.purchaseService.ListPurchases(c.Request.Context(), page, pageSize)
	if err != nil {
		logger.Error("Failed to list purchases", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list purchases"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"purchases": dto.ToListPurchaseResponse(purchases),
		"total":     total,
	})
}

// getPurchase godoc
// @Summary Get a purchase
// @Description Retrieves a purchase by its identifier
// @Tags purchases
// @Produce  json
// @Param   purchaseID path string true "Purchase ID"
// @Success 200 {object} dto.PurchaseResponse
// @Failure 404 {object} map[string]string "Purchase not found"
// @Failure 500 {object} map[string]string "Failed to retrieve purchase"
// @Router /purchases/{purchaseID} [get]
func (h *purchaseHandler) getPurchase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	purchaseID := c.Param("purchaseID")

	purchase, err := h.purchaseService.GetPurchaseByID(c.Request.Context(), purchaseID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Purchase not found", slog.String("purchase_id", purchaseID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Purchase not found"})
		} else {
			logger.Error("Failed to get purchase from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve purchase"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPurchaseResponse(purchase))
}

// updatePurchase godoc
// @Summary Update a purchase
// @Description Updates the mutable fields of a purchase; omitted fields are left untouched
// @Tags purchases
// @Accept  json
// @Produce  json
// @Param   purchaseID path string true "Purchase ID"
// @Param   purchase body dto.UpdatePurchaseRequest true "Fields to update"
// @Success 200 {object} dto.PurchaseResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Purchase not found"
// @Failure 500 {object} map[string]string "Failed to update purchase"
// @Router /purchases/{purchaseID} [put]
func (h *purchaseHandler) updatePurchase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	purchaseID := c.Param("purchaseID")

	var req dto.UpdatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdatePurchase", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetActorIDFromContext(c)
	if !ok {
		logger.Error("Actor ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	updated, err := h.purchaseService.UpdatePurchase(c.Request.Context(), purchaseID, req, updaterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error updating purchase", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Purchase not found for update", slog.String("purchase_id", purchaseID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Purchase not found"})
		} else {
			logger.Error("Failed to update purchase in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update purchase"})
		}
		return
	}

	logger.Info("Purchase updated successfully", slog.String("purchase_id", purchaseID))
	c.JSON(http.StatusOK, dto.ToPurchaseResponse(updated))
}

// financialSummary godoc
// @Summary Get the financial summary of a purchase
// @Description Combines the purchase monetary fields with its per-category cost totals, optionally converted to a target currency using the latest rate
// @Tags purchases
// @Produce  json
// @Param   purchaseID path string true "Purchase ID"
// @Param   currency query string false "Target currency code (3 letters)"
// @Success 200 {object} dto.FinancialSummaryResponse
// @Failure 400 {object} map[string]string "Invalid target currency"
// @Failure 404 {object} map[string]string "Purchase not found"
// @Failure 422 {object} map[string]string "No rate available for conversion"
// @Failure 500 {object} map[string]string "Failed to build financial summary"
// @Router /purchases/{purchaseID}/financial-summary [get]
func (h *purchaseHandler) financialSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	purchaseID := c.Param("purchaseID")

	var targetCurrency *string
	if code := strings.ToUpper(c.Query("currency")); code != "" {
		if len(code) != 3 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Target currency code must be 3 letters"})
			return
		}
		targetCurrency = &code
	}

	summary, err := h.purchaseService.FinancialSummary(c.Request.Context(), purchaseID, targetCurrency)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Purchase not found for financial summary", slog.String("purchase_id", purchaseID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Purchase not found"})
		} else if errors.Is(err, apperrors.ErrConversionUnavailable) {
			logger.Warn("No rate available for summary conversion", slog.String("purchase_id", purchaseID))
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to build financial summary", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build financial summary"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToFinancialSummaryResponse(summary))
}

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/fegundez/maqtrack/internal/apperrors"
	"github.com/fegundez/maqtrack/internal/core/domain"
	portssvc "github.com/fegundez/maqtrack/internal/core/ports/services"
	"github.com/fegundez/maqtrack/internal/dto"
	"github.com/fegundez/maqtrack/internal/middleware"
	"github.com/gin-gonic/gin"
)

// rateHandler handles HTTP requests related to exchange rates.
type rateHandler struct {
	rateService portssvc.RateSvcFacade
}

// newRateHandler creates a new rateHandler.
func newRateHandler(rs portssvc.RateSvcFacade) *rateHandler {
	return &rateHandler{
		rateService: rs,
	}
}

// registerRateRoutes registers routes related to exchange rates.
func registerRateRoutes(rg *gin.RouterGroup, rateService portssvc.RateSvcFacade) {
	h := newRateHandler(rateService)

	rates := rg.Group("/rates")
	{
		rates.POST("", h.upsertRate)
		rates.GET("", h.listRates)
		rates.GET("/:from/:to", h.resolveRate)
		rates.DELETE("/:rateID", h.deleteRate)
	}
}

// upsertRate godoc
// @Summary Record an exchange rate
// @Description Stores a rate for a currency pair and date, overwriting any rate already stored for the same pair and date
// @Tags rates
// @Accept  json
// @Produce  json
// @Param   rate body dto.UpsertCurrencyRateRequest true "Exchange rate details"
// @Success 201 {object} dto.CurrencyRateResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to save rate"
// @Router /rates [post]
func (h *rateHandler) upsertRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpsertCurrencyRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpsertRate", slog.String("error", err.Error()))
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
	logger.Info("Received request to upsert rate",
		slog.String("from", req.FromCurrencyCode),
		slog.String("to", req.ToCurrencyCode),
		slog.Any("rate", req.Rate),
		slog.String("rate_date", req.RateDate),
	)

	saved, err := h.rateService.UpsertRate(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error upserting rate", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to upsert rate in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save rate"})
		}
		return
	}

	logger.Info("Rate saved successfully", slog.String("rate_id", saved.RateID))
	c.JSON(http.StatusCreated, dto.ToCurrencyRateResponse(saved))
}

// listRates godoc
// @Summary List exchange rates
// @Description Retrieves stored rates, optionally filtered by pair and boundary date
// @Tags rates
// @Produce  json
// @Param   from query string false "From currency code" MinLength(3) MaxLength(3)
// @Param   to query string false "To currency code" MinLength(3) MaxLength(3)
// @Param   onOrBefore query string false "Boundary date (YYYY-MM-DD)"
// @Param   page query int false "Page number" default(1)
// @Param   pageSize query int false "Page size" default(50)
// @Success 200 {object} map[string]interface{} "rates and total count"
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list rates"
// @Router /rates [get]
func (h *rateHandler) listRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ListCurrencyRatesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		logger.Warn("Failed to bind query for ListRates", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	rates, total, err := h.rateService.ListRates(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error listing rates", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to list rates", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list rates"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"rates": dto.ToListCurrencyRateResponse(rates),
		"total": total,
	})
}

// resolveRate godoc
// @Summary Resolve an exchange rate
// @Description Resolves the rate for a pair as of an optional date: exact or nearest-past direct rate first, then the inverse pair as 1/rate
// @Tags rates
// @Produce  json
// @Param   from path string true "From Currency Code (3 letters)" MinLength(3) MaxLength(3)
// @Param   to   path string true "To Currency Code (3 letters)" MinLength(3) MaxLength(3)
// @Param   date query string false "As-of date (YYYY-MM-DD); omitted means latest"
// @Success 200 {object} dto.CurrencyRateResponse
// @Failure 400 {object} map[string]string "Invalid currency code or date format"
// @Failure 404 {object} map[string]string "No rate found for pair"
// @Failure 500 {object} map[string]string "Failed to resolve rate"
// @Router /rates/{from}/{to} [get]
func (h *rateHandler) resolveRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	fromCode := strings.ToUpper(c.Param("from"))
	toCode := strings.ToUpper(c.Param("to"))

	if len(fromCode) != 3 || len(toCode) != 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Currency codes must be 3 letters"})
		return
	}

	var asOf *time.Time
	if dateStr := c.Query("date"); dateStr != "" {
		day, err := time.ParseInLocation(domain.RateDateFormat, dateStr, time.UTC)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format, expected YYYY-MM-DD"})
			return
		}
		asOf = &day
	}

	logger = logger.With(slog.String("from_code", fromCode), slog.String("to_code", toCode))

	rate, err := h.rateService.Resolve(c.Request.Context(), fromCode, toCode, asOf)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error resolving rate", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("No rate found for pair")
			c.JSON(http.StatusNotFound, gin.H{"error": "No rate found for pair"})
		} else {
			logger.Error("Failed to resolve rate from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve rate"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCurrencyRateResponse(rate))
}

// deleteRate godoc
// @Summary Delete an exchange rate
// @Description Removes a stored rate by its identifier
// @Tags rates
// @Produce  json
// @Param   rateID path string true "Rate ID"
// @Success 204 "Rate deleted"
// @Failure 404 {object} map[string]string "Rate not found"
// @Failure 500 {object} map[string]string "Failed to delete rate"
// @Router /rates/{rateID} [delete]
func (h *rateHandler) deleteRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	rateID := c.Param("rateID")

	if err := h.rateService.DeleteRate(c.Request.Context(), rateID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Rate not found for deletion", slog.String("rate_id", rateID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Rate not found"})
		} else {
			logger.Error("Failed to delete rate", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete rate"})
		}
		return
	}

	logger.Info("Rate deleted successfully", slog.String("rate_id", rateID))
	c.Status(http.StatusNoContent)
}

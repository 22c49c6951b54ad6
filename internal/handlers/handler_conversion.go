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

// conversionHandler handles HTTP requests for currency conversion.
type conversionHandler struct {
	conversionService portssvc.ConversionSvcFacade
}

// newConversionHandler creates a new conversionHandler.
func newConversionHandler(cs portssvc.ConversionSvcFacade) *conversionHandler {
	return &conversionHandler{
		conversionService: cs,
	}
}

// registerConversionRoutes registers the conversion route.
func registerConversionRoutes(rg *gin.RouterGroup, conversionService portssvc.ConversionSvcFacade) {
	h := newConversionHandler(conversionService)

	rg.GET("/convert", h.convert)
}

// convert godoc
// @Summary Convert an amount between currencies
// @Description Converts an amount using the resolved rate for the pair, optionally as of a date. Fails with 422 when neither a direct nor an inverse rate exists.
// @Tags conversion
// @Produce  json
// @Param   amount query string true "Amount to convert"
// @Param   from query string true "From currency code (3 letters)" MinLength(3) MaxLength(3)
// @Param   to query string true "To currency code (3 letters)" MinLength(3) MaxLength(3)
// @Param   date query string false "As-of date (YYYY-MM-DD); omitted means latest"
// @Success 200 {object} dto.ConversionResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 422 {object} map[string]string "No rate available for pair"
// @Failure 500 {object} map[string]string "Failed to convert amount"
// @Router /convert [get]
func (h *conversionHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ConvertRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		logger.Warn("Failed to bind query for Convert", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	asOf, err := req.AsOf()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format, expected YYYY-MM-DD"})
		return
	}

	logger = logger.With(
		slog.String("from", req.FromCurrencyCode),
		slog.String("to", req.ToCurrencyCode),
		slog.Any("amount", req.Amount),
	)

	result, err := h.conversionService.Convert(c.Request.Context(), req.Amount, req.FromCurrencyCode, req.ToCurrencyCode, asOf)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error converting amount", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrConversionUnavailable) {
			logger.Warn("No rate available for pair")
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to convert amount", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to convert amount"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToConversionResponse(result))
}

package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/finanzo/finanzo-backend/internal/domain"
	"github.com/finanzo/finanzo-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// StatisticsHandler handles statistics-related HTTP requests
type StatisticsHandler struct {
	statisticsService *service.StatisticsService
}

// NewStatisticsHandler creates a new StatisticsHandler
func NewStatisticsHandler(statisticsService *service.StatisticsService) *StatisticsHandler {
	return &StatisticsHandler{statisticsService: statisticsService}
}

// CategoryTotalResponse represents one per-category total in API responses
type CategoryTotalResponse struct {
	Category string      `json:"category"`
	Color    *string     `json:"color"`
	Total    json.Number `json:"total"`
}

// GetTotalsByCategory handles GET /statistics/by-category/:user_uid/:type?period=
func (h *StatisticsHandler) GetTotalsByCategory(c echo.Context) error {
	userUID := c.Param("user_uid")
	categoryType := domain.CategoryType(c.Param("type"))
	period := c.QueryParam("period")
	if period == "" {
		period = "month"
	}

	totals, err := h.statisticsService.TotalsByCategory(c.Request().Context(), userUID, categoryType, period)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCategoryType) {
			return NewValidationError(c, "Invalid category type")
		}
		log.Error().Err(err).Str("user_uid", userUID).Str("type", string(categoryType)).Msg("Failed to get statistics")
		return NewInternalError(c, "Failed to get statistics")
	}

	response := make([]CategoryTotalResponse, len(totals))
	for i, ct := range totals {
		response[i] = CategoryTotalResponse{
			Category: ct.Category,
			Color:    ct.Color,
			Total:    decimalNumber(ct.Total),
		}
	}
	return c.JSON(http.StatusOK, response)
}

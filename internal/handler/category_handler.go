package handler

import (
	"net/http"

	"github.com/finanzo/finanzo-backend/internal/domain"
	"github.com/finanzo/finanzo-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// CategoryHandler handles category-related HTTP requests
type CategoryHandler struct {
	categoryService *service.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	ID    int32   `json:"id"`
	Name  string  `json:"name"`
	Type  string  `json:"type"`
	Color *string `json:"color"`
	Icon  string  `json:"icon"`
}

// GetCategories handles GET /categories?type=
func (h *CategoryHandler) GetCategories(c echo.Context) error {
	typeFilter := c.QueryParam("type")

	categories, err := h.categoryService.GetCategories(c.Request().Context(), typeFilter)
	if err != nil {
		log.Error().Err(err).Str("type", typeFilter).Msg("Failed to get categories")
		return NewInternalError(c, "Failed to get categories")
	}

	response := make([]CategoryResponse, len(categories))
	for i, cat := range categories {
		response[i] = toCategoryResponse(cat)
	}
	return c.JSON(http.StatusOK, response)
}

func toCategoryResponse(cat *domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:    cat.ID,
		Name:  cat.Name,
		Type:  string(cat.Type),
		Color: cat.Color,
		Icon:  cat.Icon,
	}
}

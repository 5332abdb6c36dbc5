package handler

import (
	"net/http"

	"github.com/dafibh/budgetly/budgetly-backend/internal/domain"
	"github.com/dafibh/budgetly/budgetly-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// CategoryHandler handles category HTTP requests
type CategoryHandler struct {
	categoryService *service.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CategoryRequest represents the create/update category request body
type CategoryRequest struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

func toCategoryResponse(category domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:    category.ID,
		Name:  category.Name,
		Color: category.Color,
	}
}

// CreateCategory godoc
// @Summary Create a category
// @Tags categories
// @Accept json
// @Produce json
// @Param category body CategoryRequest true "Category"
// @Success 201 {object} CategoryResponse
// @Failure 400 {object} ProblemDetails
// @Failure 409 {object} ProblemDetails
// @Router /categories [post]
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	category, err := h.categoryService.CreateCategory(service.CategoryInput{
		ID:    req.ID,
		Name:  req.Name,
		Color: req.Color,
	})
	if err != nil {
		if handled, resp := respondDomainError(c, err, "Category not found"); handled {
			return resp
		}
		log.Error().Err(err).Str("name", req.Name).Msg("Failed to create category")
		return NewInternalError(c, "Failed to create category")
	}

	log.Info().Str("category_id", category.ID).Str("name", category.Name).Msg("Category created")

	return c.JSON(http.StatusCreated, toCategoryResponse(category))
}

// GetCategories godoc
// @Summary List categories
// @Tags categories
// @Produce json
// @Success 200 {array} CategoryResponse
// @Router /categories [get]
func (h *CategoryHandler) GetCategories(c echo.Context) error {
	categories := h.categoryService.GetCategories()

	response := make([]CategoryResponse, len(categories))
	for i, category := range categories {
		response[i] = toCategoryResponse(category)
	}

	return c.JSON(http.StatusOK, response)
}

// GetCategory godoc
// @Summary Get a category
// @Tags categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} CategoryResponse
// @Failure 404 {object} ProblemDetails
// @Router /categories/{id} [get]
func (h *CategoryHandler) GetCategory(c echo.Context) error {
	category, err := h.categoryService.GetCategory(c.Param("id"))
	if err != nil {
		if handled, resp := respondDomainError(c, err, "Category not found"); handled {
			return resp
		}
		log.Error().Err(err).Str("category_id", c.Param("id")).Msg("Failed to get category")
		return NewInternalError(c, "Failed to get category")
	}

	return c.JSON(http.StatusOK, toCategoryResponse(category))
}

// UpdateCategory godoc
// @Summary Update a category
// @Tags categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param category body CategoryRequest true "Category"
// @Success 200 {object} CategoryResponse
// @Failure 400 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Router /categories/{id} [put]
func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	id := c.Param("id")

	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	category, err := h.categoryService.UpdateCategory(id, service.CategoryInput{
		Name:  req.Name,
		Color: req.Color,
	})
	if err != nil {
		if handled, resp := respondDomainError(c, err, "Category not found"); handled {
			return resp
		}
		log.Error().Err(err).Str("category_id", id).Msg("Failed to update category")
		return NewInternalError(c, "Failed to update category")
	}

	log.Info().Str("category_id", category.ID).Str("name", category.Name).Msg("Category updated")

	return c.JSON(http.StatusOK, toCategoryResponse(category))
}

// DeleteCategory godoc
// @Summary Delete a category
// @Description Transactions and budgets that reference the category are kept.
// @Tags categories
// @Param id path string true "Category ID"
// @Success 204
// @Failure 404 {object} ProblemDetails
// @Router /categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	id := c.Param("id")

	if err := h.categoryService.DeleteCategory(id); err != nil {
		if handled, resp := respondDomainError(c, err, "Category not found"); handled {
			return resp
		}
		log.Error().Err(err).Str("category_id", id).Msg("Failed to delete category")
		return NewInternalError(c, "Failed to delete category")
	}

	log.Info().Str("category_id", id).Msg("Category deleted")

	return c.NoContent(http.StatusNoContent)
}

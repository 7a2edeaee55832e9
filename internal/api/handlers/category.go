package handlers

import (
	"net/http"
	"strconv"

	"rewards-recognition-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CategoryHandler handles HTTP requests for award category operations
type CategoryHandler struct {
	categoryService *service.CategoryService
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryService *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

// CreateCategory handles POST /categories
// @Summary Create a new award category
// @Tags categories
// @Accept json
// @Produce json
// @Param category body service.CreateCategoryRequest true "Category data"
// @Success 201 {object} service.CategoryResponse "Successfully created category"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Category name already in use"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req service.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := h.categoryService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, category)
}

// GetCategory handles GET /categories/:id
// @Summary Get category by ID
// @Tags categories
// @Produce json
// @Param id path string true "Category ID (UUID)"
// @Success 200 {object} service.CategoryResponse "Category"
// @Failure 400 {object} ErrorResponse "Invalid category ID"
// @Failure 404 {object} ErrorResponse "Category not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /categories/{id} [get]
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category ID"})
		return
	}

	category, err := h.categoryService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, category)
}

// GetAllCategories handles GET /categories
// @Summary List all award categories
// @Tags categories
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.CategoryListResponse "Categories"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /categories [get]
func (h *CategoryHandler) GetAllCategories(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	categories, err := h.categoryService.GetAll(page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}

// UpdateCategory handles PUT /categories/:id
// @Summary Update a category
// @Tags categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID (UUID)"
// @Param category body service.UpdateCategoryRequest true "Category changes"
// @Success 200 {object} service.CategoryResponse "Updated category"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Category not found"
// @Failure 409 {object} ErrorResponse "Category name already in use"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /categories/{id} [put]
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category ID"})
		return
	}

	var req service.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := h.categoryService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, category)
}

// DeleteCategory handles DELETE /categories/:id
// @Summary Delete a category
// @Tags categories
// @Produce json
// @Param id path string true "Category ID (UUID)"
// @Success 204 "Deleted"
// @Failure 400 {object} ErrorResponse "Invalid category ID"
// @Failure 404 {object} ErrorResponse "Category not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category ID"})
		return
	}

	if err := h.categoryService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

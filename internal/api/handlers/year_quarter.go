package handlers

import (
	"net/http"
	"strconv"

	"rewards-recognition-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// YearQuarterHandler handles HTTP requests for reporting period operations
type YearQuarterHandler struct {
	yearQuarterService *service.YearQuarterService
}

// NewYearQuarterHandler creates a new year quarter handler
func NewYearQuarterHandler(yearQuarterService *service.YearQuarterService) *YearQuarterHandler {
	return &YearQuarterHandler{
		yearQuarterService: yearQuarterService,
	}
}

// CreateYearQuarter handles POST /year-quarters
// @Summary Create a reporting period
// @Description Create a year/quarter period with calendar dates derived from the quarter
// @Tags year-quarters
// @Accept json
// @Produce json
// @Param period body service.CreateYearQuarterRequest true "Period data"
// @Success 201 {object} service.YearQuarterResponse "Successfully created period"
// @Failure 400 {object} ErrorResponse "Invalid year or quarter"
// @Failure 409 {object} ErrorResponse "Period already exists"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /year-quarters [post]
func (h *YearQuarterHandler) CreateYearQuarter(c *gin.Context) {
	var req service.CreateYearQuarterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	yq, err := h.yearQuarterService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, yq)
}

// GetYearQuarter handles GET /year-quarters/:id
// @Summary Get period by ID
// @Tags year-quarters
// @Produce json
// @Param id path string true "Year quarter ID (UUID)"
// @Success 200 {object} service.YearQuarterResponse "Period"
// @Failure 400 {object} ErrorResponse "Invalid year quarter ID"
// @Failure 404 {object} ErrorResponse "Period not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /year-quarters/{id} [get]
func (h *YearQuarterHandler) GetYearQuarter(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year quarter ID"})
		return
	}

	yq, err := h.yearQuarterService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, yq)
}

// GetActiveYearQuarter handles GET /year-quarters/active
// @Summary Get the active period
// @Description Get the period currently open for nominations
// @Tags year-quarters
// @Produce json
// @Success 200 {object} service.YearQuarterResponse "Active period"
// @Failure 404 {object} ErrorResponse "No active period"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /year-quarters/active [get]
func (h *YearQuarterHandler) GetActiveYearQuarter(c *gin.Context) {
	yq, err := h.yearQuarterService.GetActive()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, yq)
}

// GetAllYearQuarters handles GET /year-quarters
// @Summary List all reporting periods
// @Tags year-quarters
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.YearQuarterListResponse "Periods"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /year-quarters [get]
func (h *YearQuarterHandler) GetAllYearQuarters(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	quarters, err := h.yearQuarterService.GetAll(page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, quarters)
}

// ActivateYearQuarter handles POST /year-quarters/:id/activate
// @Summary Activate a period
// @Description Make a period the active one; every other period is deactivated
// @Tags year-quarters
// @Produce json
// @Param id path string true "Year quarter ID (UUID)"
// @Success 200 {object} service.YearQuarterResponse "Activated period"
// @Failure 400 {object} ErrorResponse "Invalid year quarter ID"
// @Failure 404 {object} ErrorResponse "Period not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /year-quarters/{id}/activate [post]
func (h *YearQuarterHandler) ActivateYearQuarter(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year quarter ID"})
		return
	}

	yq, err := h.yearQuarterService.SetActive(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, yq)
}

// DeleteYearQuarter handles DELETE /year-quarters/:id
// @Summary Delete a period
// @Description Soft-delete an inactive period
// @Tags year-quarters
// @Produce json
// @Param id path string true "Year quarter ID (UUID)"
// @Success 204 "Deleted"
// @Failure 400 {object} ErrorResponse "Invalid year quarter ID or period is active"
// @Failure 404 {object} ErrorResponse "Period not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /year-quarters/{id} [delete]
func (h *YearQuarterHandler) DeleteYearQuarter(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year quarter ID"})
		return
	}

	if err := h.yearQuarterService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

package handlers

import (
	"net/http"
	"strconv"
	"time"

	"rewards-recognition-backend/internal/auth"
	"rewards-recognition-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DashboardHandler handles HTTP requests for dashboard aggregations
type DashboardHandler struct {
	dashboardService service.DashboardServiceInterface
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService service.DashboardServiceInterface) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// GetSummary handles GET /dashboard/summary
// @Summary Generic dashboard summary
// @Description Status counts over the caller's visible nominations, the ten newest, and the head of the caller's review queue
// @Tags dashboard
// @Produce json
// @Success 200 {object} service.DashboardSummaryResponse "Dashboard summary"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	viewer := auth.CurrentUser(c)
	if viewer == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	summary, err := h.dashboardService.Summary(viewer)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetManagerDashboard handles GET /dashboard/manager
// @Summary Manager dashboard
// @Description Quarter totals and ledger-derived decision counts for the calling manager's teams
// @Tags dashboard
// @Produce json
// @Param year query int false "Year (defaults to current)"
// @Param quarter query int false "Quarter 1-4 (defaults to current)"
// @Success 200 {object} service.ApproverDashboardResponse "Manager dashboard"
// @Failure 400 {object} ErrorResponse "Invalid year or quarter"
// @Failure 403 {object} ErrorResponse "Caller is not a manager"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /dashboard/manager [get]
func (h *DashboardHandler) GetManagerDashboard(c *gin.Context) {
	viewer := auth.CurrentUser(c)
	if viewer == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	year, quarter, ok := parsePeriod(c)
	if !ok {
		return
	}

	dashboard, err := h.dashboardService.ManagerSummary(viewer, year, quarter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

// GetDirectorDashboard handles GET /dashboard/director
// @Summary Director dashboard
// @Description Quarter totals and ledger-derived decision counts for the calling director's teams
// @Tags dashboard
// @Produce json
// @Param year query int false "Year (defaults to current)"
// @Param quarter query int false "Quarter 1-4 (defaults to current)"
// @Success 200 {object} service.ApproverDashboardResponse "Director dashboard"
// @Failure 400 {object} ErrorResponse "Invalid year or quarter"
// @Failure 403 {object} ErrorResponse "Caller is not a director"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /dashboard/director [get]
func (h *DashboardHandler) GetDirectorDashboard(c *gin.Context) {
	viewer := auth.CurrentUser(c)
	if viewer == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	year, quarter, ok := parsePeriod(c)
	if !ok {
		return
	}

	dashboard, err := h.dashboardService.DirectorSummary(viewer, year, quarter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

// GetTeamLeadDashboard handles GET /dashboard/team-lead
// @Summary Team lead dashboard
// @Description Nominations the calling team lead submitted in a period
// @Tags dashboard
// @Produce json
// @Param year_quarter_id query string true "Year quarter ID (UUID)"
// @Success 200 {object} service.TeamLeadDashboardResponse "Team lead dashboard"
// @Failure 400 {object} ErrorResponse "Invalid year quarter ID"
// @Failure 403 {object} ErrorResponse "Caller is not a team lead"
// @Failure 404 {object} ErrorResponse "Year quarter not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /dashboard/team-lead [get]
func (h *DashboardHandler) GetTeamLeadDashboard(c *gin.Context) {
	viewer := auth.CurrentUser(c)
	if viewer == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	yearQuarterID, err := uuid.Parse(c.Query("year_quarter_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year quarter ID"})
		return
	}

	dashboard, err := h.dashboardService.TeamLeadSummary(viewer, yearQuarterID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

// GetEmployeeDashboard handles GET /dashboard/employee
// @Summary Employee dashboard
// @Description The caller's own authored and received nominations
// @Tags dashboard
// @Produce json
// @Success 200 {object} service.EmployeeDashboardResponse "Employee dashboard"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /dashboard/employee [get]
func (h *DashboardHandler) GetEmployeeDashboard(c *gin.Context) {
	viewer := auth.CurrentUser(c)
	if viewer == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	dashboard, err := h.dashboardService.EmployeeSummary(viewer)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

// GetTeamNominations handles GET /dashboard/teams/:id/nominations
// @Summary One team's nominations in a period
// @Description List a team's nominations for a period. Callers must sit in the team's review chain.
// @Tags dashboard
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param year_quarter_id query string true "Year quarter ID (UUID)"
// @Success 200 {array} service.NominationResponse "Team nominations"
// @Failure 400 {object} ErrorResponse "Invalid IDs"
// @Failure 403 {object} ErrorResponse "Caller outside the team's review chain"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /dashboard/teams/{id}/nominations [get]
func (h *DashboardHandler) GetTeamNominations(c *gin.Context) {
	viewer := auth.CurrentUser(c)
	if viewer == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	teamID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team ID"})
		return
	}
	yearQuarterID, err := uuid.Parse(c.Query("year_quarter_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year quarter ID"})
		return
	}

	nominations, err := h.dashboardService.TeamNominations(viewer, teamID, yearQuarterID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, nominations)
}

// GetDirectorManagers handles GET /dashboard/director/managers
// @Summary Managers under the calling director
// @Description Distinct managers of the teams the calling director oversees
// @Tags dashboard
// @Produce json
// @Success 200 {array} service.UserSummary "Managers"
// @Failure 403 {object} ErrorResponse "Caller is not a director"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /dashboard/director/managers [get]
func (h *DashboardHandler) GetDirectorManagers(c *gin.Context) {
	viewer := auth.CurrentUser(c)
	if viewer == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	managers, err := h.dashboardService.DirectorManagers(viewer)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, managers)
}

// GetOrphanedNominations handles GET /dashboard/orphaned
// @Summary Orphaned nominations
// @Description Pending nominations whose nominee has no team, so no approver can act. Admin only.
// @Tags dashboard
// @Produce json
// @Success 200 {array} service.NominationResponse "Orphaned nominations"
// @Failure 403 {object} ErrorResponse "Caller is not an admin"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /dashboard/orphaned [get]
func (h *DashboardHandler) GetOrphanedNominations(c *gin.Context) {
	viewer := auth.CurrentUser(c)
	if viewer == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	nominations, err := h.dashboardService.Orphaned(viewer)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, nominations)
}

// parsePeriod reads year/quarter query params, defaulting to the current
// calendar quarter
func parsePeriod(c *gin.Context) (int, int, bool) {
	now := time.Now().UTC()
	year := now.Year()
	quarter := int(now.Month()-1)/3 + 1

	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 2000 || parsed > 2100 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
			return 0, 0, false
		}
		year = parsed
	}
	if raw := c.Query("quarter"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 4 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid quarter"})
			return 0, 0, false
		}
		quarter = parsed
	}
	return year, quarter, true
}

package handlers

import (
	"net/http"

	"rewards-recognition-backend/internal/auth"
	"rewards-recognition-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// NominationHandler handles HTTP requests for nomination operations
type NominationHandler struct {
	nominationService service.NominationServiceInterface
}

// NewNominationHandler creates a new nomination handler
func NewNominationHandler(nominationService service.NominationServiceInterface) *NominationHandler {
	return &NominationHandler{
		nominationService: nominationService,
	}
}

// CreateNomination handles POST /nominations
// @Summary Create a nomination
// @Description File a new nomination, optionally as a draft
// @Tags nominations
// @Accept json
// @Produce json
// @Param nomination body service.CreateNominationRequest true "Nomination data"
// @Success 201 {object} service.NominationResponse "Successfully created nomination"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Nominee, category or period not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /nominations [post]
func (h *NominationHandler) CreateNomination(c *gin.Context) {
	viewer := auth.CurrentUser(c)
	if viewer == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.CreateNominationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	nomination, err := h.nominationService.Create(viewer, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, nomination)
}

// ListNominations handles GET /nominations
// @Summary List visible nominations
// @Description List every nomination inside the caller's visibility scope
// @Tags nominations
// @Produce json
// @Success 200 {array} service.NominationResponse "Visible nominations"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /nominations [get]
func (h *NominationHandler) ListNominations(c *gin.Context) {
	viewer := auth.CurrentUser(c)
	if viewer == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	nominations, err := h.nominationService.ListVisible(viewer)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, nominations)
}

// GetNomination handles GET /nominations/:id
// @Summary Get nomination by ID
// @Description Get a nomination the caller is allowed to see
// @Tags nominations
// @Produce json
// @Param id path string true "Nomination ID (UUID)"
// @Success 200 {object} service.NominationResponse "Nomination"
// @Failure 400 {object} ErrorResponse "Invalid nomination ID"
// @Failure 404 {object} ErrorResponse "Nomination not found or out of scope"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /nominations/{id} [get]
func (h *NominationHandler) GetNomination(c *gin.Context) {
	viewer := auth.CurrentUser(c)
	if viewer == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid nomination ID"})
		return
	}

	nomination, err := h.nominationService.GetByID(viewer, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, nomination)
}

// GetNominationHistory handles GET /nominations/:id/history
// @Summary Get a nomination's approval history
// @Description Return the append-only decision ledger for a nomination, oldest first
// @Tags nominations
// @Produce json
// @Param id path string true "Nomination ID (UUID)"
// @Success 200 {array} service.ApprovalResponse "Approval history"
// @Failure 400 {object} ErrorResponse "Invalid nomination ID"
// @Failure 404 {object} ErrorResponse "Nomination not found or out of scope"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /nominations/{id}/history [get]
func (h *NominationHandler) GetNominationHistory(c *gin.Context) {
	viewer := auth.CurrentUser(c)
	if viewer == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid nomination ID"})
		return
	}

	history, err := h.nominationService.History(viewer, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, history)
}

// GetPendingNominations handles GET /nominations/pending
// @Summary Get the caller's review queue
// @Description List nominations the calling manager or director can act on now
// @Tags nominations
// @Produce json
// @Success 200 {array} service.NominationResponse "Actionable nominations"
// @Failure 403 {object} ErrorResponse "Caller has no review authority"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /nominations/pending [get]
func (h *NominationHandler) GetPendingNominations(c *gin.Context) {
	viewer := auth.CurrentUser(c)
	if viewer == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	nominations, err := h.nominationService.PendingForApprover(viewer)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, nominations)
}

// ReviewNomination handles POST /nominations/:id/review
// @Summary Submit a review decision
// @Description Record an approve or reject decision on a nomination
// @Tags nominations
// @Accept json
// @Produce json
// @Param id path string true "Nomination ID (UUID)"
// @Param review body service.ReviewRequest true "Review decision"
// @Success 200 {object} service.NominationResponse "Updated nomination"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "No authority for this review"
// @Failure 404 {object} ErrorResponse "Nomination not found"
// @Failure 409 {object} ErrorResponse "Already finalized, duplicate approval or concurrent modification"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /nominations/{id}/review [post]
func (h *NominationHandler) ReviewNomination(c *gin.Context) {
	viewer := auth.CurrentUser(c)
	if viewer == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid nomination ID"})
		return
	}

	var req service.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	nomination, err := h.nominationService.SubmitReview(viewer, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, nomination)
}

// ListDrafts handles GET /nominations/drafts
// @Summary List the caller's drafts
// @Description List the caller's draft nominations, most recently edited first
// @Tags nominations
// @Produce json
// @Success 200 {array} service.NominationResponse "Drafts"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /nominations/drafts [get]
func (h *NominationHandler) ListDrafts(c *gin.Context) {
	viewer := auth.CurrentUser(c)
	if viewer == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	drafts, err := h.nominationService.Drafts(viewer.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, drafts)
}

// GetLatestDraft handles GET /nominations/drafts/latest
// @Summary Get the caller's most recent draft
// @Tags nominations
// @Produce json
// @Success 200 {object} service.NominationResponse "Latest draft"
// @Failure 404 {object} ErrorResponse "No draft found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /nominations/drafts/latest [get]
func (h *NominationHandler) GetLatestDraft(c *gin.Context) {
	viewer := auth.CurrentUser(c)
	if viewer == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	draft, err := h.nominationService.LatestDraft(viewer.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, draft)
}

// UpdateDraft handles PUT /nominations/drafts/:id
// @Summary Update or submit a draft
// @Description Edit a draft in place; set submit=true to move it into the manager's queue
// @Tags nominations
// @Accept json
// @Produce json
// @Param id path string true "Draft nomination ID (UUID)"
// @Param draft body service.UpdateDraftRequest true "Draft changes"
// @Success 200 {object} service.NominationResponse "Updated nomination"
// @Failure 400 {object} ErrorResponse "Invalid request or draft incomplete"
// @Failure 404 {object} ErrorResponse "Draft not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /nominations/drafts/{id} [put]
func (h *NominationHandler) UpdateDraft(c *gin.Context) {
	viewer := auth.CurrentUser(c)
	if viewer == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid draft ID"})
		return
	}

	var req service.UpdateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	nomination, err := h.nominationService.UpdateDraft(viewer, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, nomination)
}

// DeleteNomination handles DELETE /nominations/:id
// @Summary Delete a nomination
// @Description Soft-delete a nomination. Admins may delete any; others only their own drafts.
// @Tags nominations
// @Produce json
// @Param id path string true "Nomination ID (UUID)"
// @Success 204 "Deleted"
// @Failure 400 {object} ErrorResponse "Invalid nomination ID"
// @Failure 403 {object} ErrorResponse "Not allowed to delete this nomination"
// @Failure 404 {object} ErrorResponse "Nomination not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /nominations/{id} [delete]
func (h *NominationHandler) DeleteNomination(c *gin.Context) {
	viewer := auth.CurrentUser(c)
	if viewer == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid nomination ID"})
		return
	}

	if err := h.nominationService.Delete(viewer, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

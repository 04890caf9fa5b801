package handlers

import (
	"fmt"
	"net/http"
	"time"

	leadRepo "moveboard/database/repository/lead"
	"moveboard/models"
	"moveboard/services/lead"
	"moveboard/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LeadHandler exposes the lead CRM over HTTP.
type LeadHandler struct {
	Service lead.LeadService
}

func NewLeadHandler(svc lead.LeadService) *LeadHandler {
	return &LeadHandler{Service: svc}
}

// ownedLead fetches a lead and verifies it belongs to the caller. Foreign
// leads read as not-found so IDs don't leak across accounts.
func (h *LeadHandler) ownedLead(c *gin.Context, owner, id string) (*models.Lead, bool) {
	ld, err := h.Service.GetLeadByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch lead"})
		return nil, false
	}
	if ld == nil || ld.OwnerID != owner {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lead not found"})
		return nil, false
	}
	return ld, true
}

// CreateLeadHandler handles POST /api/leads.
func (h *LeadHandler) CreateLeadHandler(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	var ld models.Lead
	if err := c.ShouldBindJSON(&ld); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ld.OwnerID = owner
	created, err := h.Service.CreateLead(ld)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListLeadsHandler handles GET /api/leads with optional status and
// followUpDue query filters.
func (h *LeadHandler) ListLeadsHandler(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	filter := leadRepo.LeadFilter{
		OwnerID:     owner,
		Status:      c.Query("status"),
		FollowUpDue: c.Query("followUpDue") == "true",
		NewestFirst: c.DefaultQuery("sort", "newest") == "newest",
	}
	if filter.Status != "" && !models.ValidLeadStatus(filter.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Unknown status %q", filter.Status)})
		return
	}
	leads, err := h.Service.ListLeads(filter)
	if err != nil {
		utils.GetLogger().Error("failed to list leads", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list leads"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"leads": leads, "count": len(leads)})
}

// GetLeadHandler handles GET /api/leads/:id.
func (h *LeadHandler) GetLeadHandler(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	ld, ok := h.ownedLead(c, owner, c.Param("id"))
	if !ok {
		return
	}
	c.JSON(http.StatusOK, ld)
}

// UpdateLeadHandler handles PUT /api/leads/:id.
func (h *LeadHandler) UpdateLeadHandler(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	if _, ok := h.ownedLead(c, owner, c.Param("id")); !ok {
		return
	}
	var req models.LeadUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.ID = c.Param("id")
	updated, err := h.Service.UpdateLead(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// MarkContactedHandler handles POST /api/leads/:id/contacted.
func (h *LeadHandler) MarkContactedHandler(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	if _, ok := h.ownedLead(c, owner, c.Param("id")); !ok {
		return
	}
	ld, err := h.Service.MarkContacted(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark contacted"})
		return
	}
	c.JSON(http.StatusOK, ld)
}

// DeleteLeadHandler handles DELETE /api/leads/:id.
func (h *LeadHandler) DeleteLeadHandler(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	if _, ok := h.ownedLead(c, owner, c.Param("id")); !ok {
		return
	}
	if err := h.Service.DeleteLead(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete lead"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Lead deleted"})
}

// ImportLeadsHandler handles POST /api/leads/import with a multipart "file"
// field containing CSV rows.
func (h *LeadHandler) ImportLeadsHandler(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing CSV file upload"})
		return
	}
	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to open uploaded file"})
		return
	}
	defer f.Close()

	result, err := h.Service.ImportCSV(f, owner)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	utils.GetLogger().Info("lead CSV import",
		zap.String("ownerID", owner),
		zap.Int("imported", result.Imported),
		zap.Int("failed", result.Failed))
	c.JSON(http.StatusOK, result)
}

// ExportLeadsHandler handles GET /api/leads/export, streaming the caller's
// leads as a CSV attachment.
func (h *LeadHandler) ExportLeadsHandler(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	filename := fmt.Sprintf("leads-%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if _, err := h.Service.ExportCSV(c.Writer, owner); err != nil {
		utils.GetLogger().Error("lead CSV export failed", zap.Error(err))
		c.Status(http.StatusInternalServerError)
		return
	}
}

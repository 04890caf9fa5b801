package lead

import (
	"fmt"
	"time"

	leadRepo "moveboard/database/repository/lead"
	"moveboard/models"
	"moveboard/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (s *DefaultLeadService) followUpDelay() time.Duration {
	if s.FollowUpDelay > 0 {
		return s.FollowUpDelay
	}
	return 72 * time.Hour
}

// CreateLead validates and stores a new lead record.
func (s *DefaultLeadService) CreateLead(lead models.Lead) (*models.Lead, error) {
	if lead.BusinessName == "" {
		return nil, fmt.Errorf("business name is required")
	}
	if lead.Status == "" {
		lead.Status = models.LeadStatusNew
	}
	if !models.ValidLeadStatus(lead.Status) {
		return nil, fmt.Errorf("invalid lead status %q", lead.Status)
	}
	if lead.ID == "" {
		lead.ID = uuid.NewString()
	}
	if err := s.Repo.Create(&lead); err != nil {
		return nil, err
	}
	return &lead, nil
}

// UpdateLead applies the non-nil fields of the request. Setting the status to
// Contacted behaves like MarkContacted: the contacted flag and last-contact
// time are stamped and a follow-up reminder is scheduled.
func (s *DefaultLeadService) UpdateLead(req models.LeadUpdateRequest) (*models.Lead, error) {
	existing, err := s.Repo.GetByID(req.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("lead with id %s not found", req.ID)
	}

	if req.BusinessName != nil {
		if *req.BusinessName == "" {
			return nil, fmt.Errorf("business name is required")
		}
		existing.BusinessName = *req.BusinessName
	}
	if req.ContactName != nil {
		existing.ContactName = *req.ContactName
	}
	if req.Email != nil {
		existing.Email = *req.Email
	}
	if req.Phone != nil {
		existing.Phone = *req.Phone
	}
	if req.Website != nil {
		existing.Website = *req.Website
	}
	if req.Address != nil {
		existing.Address = *req.Address
	}
	if req.Zip != nil {
		existing.Zip = *req.Zip
	}
	if req.BusinessType != nil {
		existing.BusinessType = *req.BusinessType
	}
	if req.Contacted != nil {
		existing.Contacted = *req.Contacted
	}
	if req.Responded != nil {
		existing.Responded = *req.Responded
	}
	if req.Notes != nil {
		existing.Notes = *req.Notes
	}
	if req.LastContact != nil {
		existing.LastContact = *req.LastContact
	}

	becameContacted := false
	if req.Status != nil {
		if !models.ValidLeadStatus(*req.Status) {
			return nil, fmt.Errorf("invalid lead status %q", *req.Status)
		}
		becameContacted = *req.Status == models.LeadStatusContacted && existing.Status != models.LeadStatusContacted
		existing.Status = *req.Status
	}
	if becameContacted {
		existing.Contacted = true
		existing.LastContact = time.Now()
		existing.FollowUpDue = false
	}

	if err := s.Repo.Update(existing); err != nil {
		return nil, err
	}
	if becameContacted {
		s.scheduleFollowUp(existing.ID)
	}
	return existing, nil
}

// GetLeadByID fetches one lead record.
func (s *DefaultLeadService) GetLeadByID(id string) (*models.Lead, error) {
	lead, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, fmt.Errorf("lead with id %s not found", id)
	}
	return lead, nil
}

// ListLeads returns the leads matching the filter.
func (s *DefaultLeadService) ListLeads(filter leadRepo.LeadFilter) ([]models.Lead, error) {
	return s.Repo.List(filter)
}

// DeleteLead removes the lead record.
func (s *DefaultLeadService) DeleteLead(id string) error {
	return s.Repo.Delete(id)
}

// MarkContacted stamps the contact and schedules the follow-up reminder.
func (s *DefaultLeadService) MarkContacted(id string) (*models.Lead, error) {
	lead, err := s.GetLeadByID(id)
	if err != nil {
		return nil, err
	}
	lead.Contacted = true
	lead.Status = models.LeadStatusContacted
	lead.LastContact = time.Now()
	lead.FollowUpDue = false
	if err := s.Repo.Update(lead); err != nil {
		return nil, err
	}
	s.scheduleFollowUp(lead.ID)
	return lead, nil
}

// MarkFollowUpDue flags the lead for follow-up. Leads that responded in the
// meantime are left alone.
func (s *DefaultLeadService) MarkFollowUpDue(id string) error {
	lead, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if lead == nil {
		// Deleted since the reminder was queued; nothing to flag.
		return nil
	}
	if lead.Responded || lead.Status == models.LeadStatusResponded ||
		lead.Status == models.LeadStatusConverted || lead.Status == models.LeadStatusNotInterested {
		return nil
	}
	lead.FollowUpDue = true
	return s.Repo.Update(lead)
}

func (s *DefaultLeadService) scheduleFollowUp(leadID string) {
	if s.Scheduler == nil {
		return
	}
	if err := s.Scheduler.ScheduleFollowUp(leadID, s.followUpDelay()); err != nil {
		utils.GetLogger().Error("failed to schedule follow-up reminder",
			zap.String("leadId", leadID), zap.Error(err))
	}
}

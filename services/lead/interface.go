package lead

import (
	"io"
	"time"

	leadRepo "moveboard/database/repository/lead"
	"moveboard/models"
)

// FollowUpScheduler queues a follow-up reminder for a contacted lead.
// Implemented by the asynq reminder client; kept as an interface so the
// service stays testable without a queue.
type FollowUpScheduler interface {
	ScheduleFollowUp(leadID string, delay time.Duration) error
}

// ImportResult summarizes a CSV import run.
type ImportResult struct {
	Imported int `json:"imported"`
	Failed   int `json:"failed"`
}

// LeadService manages prospective customer records.
type LeadService interface {
	CreateLead(lead models.Lead) (*models.Lead, error)
	UpdateLead(req models.LeadUpdateRequest) (*models.Lead, error)
	GetLeadByID(id string) (*models.Lead, error)
	ListLeads(filter leadRepo.LeadFilter) ([]models.Lead, error)
	DeleteLead(id string) error

	// MarkContacted flips the contacted flag, stamps the last-contact time,
	// and schedules a follow-up reminder.
	MarkContacted(id string) (*models.Lead, error)
	// MarkFollowUpDue is invoked by the reminder worker when the follow-up
	// window for a contacted lead elapses.
	MarkFollowUpDue(id string) error

	ImportCSV(r io.Reader, ownerID string) (*ImportResult, error)
	ExportCSV(w io.Writer, ownerID string) (int, error)
}

// DefaultLeadService is the production implementation.
type DefaultLeadService struct {
	Repo      leadRepo.LeadRepository
	Scheduler FollowUpScheduler
	// FollowUpDelay defaults to 72h when zero.
	FollowUpDelay time.Duration
}

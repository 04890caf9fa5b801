package lead

import (
	"testing"
	"time"

	"moveboard/models"
)

type fakeScheduler struct {
	calls []string
	delay time.Duration
}

func (f *fakeScheduler) ScheduleFollowUp(leadID string, delay time.Duration) error {
	f.calls = append(f.calls, leadID)
	f.delay = delay
	return nil
}

func TestCreateLead(t *testing.T) {
	svc := &DefaultLeadService{Repo: &fakeLeadRepo{}}

	lead, err := svc.CreateLead(models.Lead{BusinessName: "Acme Storage", OwnerID: "owner-1"})
	if err != nil {
		t.Fatalf("CreateLead() failed: %v", err)
	}
	if lead.ID == "" {
		t.Error("lead id not assigned")
	}
	if lead.Status != models.LeadStatusNew {
		t.Errorf("default status = %q, want New", lead.Status)
	}

	if _, err := svc.CreateLead(models.Lead{OwnerID: "owner-1"}); err == nil {
		t.Error("CreateLead() without business name should fail")
	}
	if _, err := svc.CreateLead(models.Lead{BusinessName: "X", Status: "Maybe"}); err == nil {
		t.Error("CreateLead() with unknown status should fail")
	}
}

func TestMarkContactedSchedulesFollowUp(t *testing.T) {
	repo := &fakeLeadRepo{}
	sched := &fakeScheduler{}
	svc := &DefaultLeadService{Repo: repo, Scheduler: sched, FollowUpDelay: 48 * time.Hour}

	created, err := svc.CreateLead(models.Lead{BusinessName: "Acme Storage"})
	if err != nil {
		t.Fatalf("CreateLead() failed: %v", err)
	}

	lead, err := svc.MarkContacted(created.ID)
	if err != nil {
		t.Fatalf("MarkContacted() failed: %v", err)
	}
	if !lead.Contacted || lead.Status != models.LeadStatusContacted {
		t.Errorf("lead = %+v, want contacted status", lead)
	}
	if lead.LastContact.IsZero() {
		t.Error("last-contact time not stamped")
	}
	if len(sched.calls) != 1 || sched.calls[0] != created.ID {
		t.Errorf("scheduler calls = %v, want one for the lead", sched.calls)
	}
	if sched.delay != 48*time.Hour {
		t.Errorf("follow-up delay = %v, want 48h", sched.delay)
	}
}

func TestUpdateLeadStatusToContacted(t *testing.T) {
	repo := &fakeLeadRepo{}
	sched := &fakeScheduler{}
	svc := &DefaultLeadService{Repo: repo, Scheduler: sched}

	created, _ := svc.CreateLead(models.Lead{BusinessName: "Acme Storage"})

	status := models.LeadStatusContacted
	updated, err := svc.UpdateLead(models.LeadUpdateRequest{ID: created.ID, Status: &status})
	if err != nil {
		t.Fatalf("UpdateLead() failed: %v", err)
	}
	if !updated.Contacted {
		t.Error("contacted flag not set by status change")
	}
	if len(sched.calls) != 1 {
		t.Errorf("scheduler calls = %v, want follow-up scheduled", sched.calls)
	}

	// A second update to the same status must not schedule again.
	if _, err := svc.UpdateLead(models.LeadUpdateRequest{ID: created.ID, Status: &status}); err != nil {
		t.Fatalf("UpdateLead() failed: %v", err)
	}
	if len(sched.calls) != 1 {
		t.Errorf("scheduler calls = %v, want no duplicate", sched.calls)
	}
}

func TestMarkFollowUpDue(t *testing.T) {
	repo := &fakeLeadRepo{}
	svc := &DefaultLeadService{Repo: repo}

	created, _ := svc.CreateLead(models.Lead{BusinessName: "Acme Storage"})
	if err := svc.MarkFollowUpDue(created.ID); err != nil {
		t.Fatalf("MarkFollowUpDue() failed: %v", err)
	}
	got, _ := repo.GetByID(created.ID)
	if !got.FollowUpDue {
		t.Error("follow-up flag not set")
	}

	// Leads that already responded are left alone.
	responded, _ := svc.CreateLead(models.Lead{BusinessName: "Other Co", Status: models.LeadStatusResponded})
	if err := svc.MarkFollowUpDue(responded.ID); err != nil {
		t.Fatalf("MarkFollowUpDue() failed: %v", err)
	}
	got, _ = repo.GetByID(responded.ID)
	if got.FollowUpDue {
		t.Error("responded lead flagged for follow-up")
	}

	// A lead deleted before the reminder fires is not an error.
	if err := svc.MarkFollowUpDue("gone"); err != nil {
		t.Errorf("MarkFollowUpDue() for a deleted lead: %v", err)
	}
}

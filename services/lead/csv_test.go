package lead

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	leadRepo "moveboard/database/repository/lead"
	"moveboard/models"

	"go.mongodb.org/mongo-driver/bson"
)

// fakeLeadRepo is an in-memory LeadRepository for service tests.
type fakeLeadRepo struct {
	leads []models.Lead
}

func (f *fakeLeadRepo) Create(lead *models.Lead) error {
	if lead.CreatedAt.IsZero() {
		lead.CreatedAt = time.Now()
	}
	f.leads = append(f.leads, *lead)
	return nil
}

func (f *fakeLeadRepo) Update(lead *models.Lead) error {
	for i := range f.leads {
		if f.leads[i].ID == lead.ID {
			f.leads[i] = *lead
			return nil
		}
	}
	return fmt.Errorf("lead with id %s not found", lead.ID)
}

func (f *fakeLeadRepo) Delete(id string) error {
	for i := range f.leads {
		if f.leads[i].ID == id {
			f.leads = append(f.leads[:i], f.leads[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("lead with id %s not found", id)
}

func (f *fakeLeadRepo) GetByID(id string) (*models.Lead, error) {
	for i := range f.leads {
		if f.leads[i].ID == id {
			l := f.leads[i]
			return &l, nil
		}
	}
	return nil, nil
}

func (f *fakeLeadRepo) GetByIDWithProjection(id string, _ bson.M) (*models.Lead, error) {
	return f.GetByID(id)
}

func (f *fakeLeadRepo) List(filter leadRepo.LeadFilter) ([]models.Lead, error) {
	var out []models.Lead
	for _, l := range f.leads {
		if filter.OwnerID != "" && l.OwnerID != filter.OwnerID {
			continue
		}
		if filter.Status != "" && l.Status != filter.Status {
			continue
		}
		if filter.FollowUpDue && !l.FollowUpDue {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

func TestImportCSV(t *testing.T) {
	repo := &fakeLeadRepo{}
	svc := &DefaultLeadService{Repo: repo}

	// Mixed-case headers, an unrecognized column, and a row without the
	// required business name.
	input := strings.Join([]string{
		"business name,CONTACT NAME,Email,Favorite Snack,Status",
		"Acme Storage,Jane Fox,jane@acme.test,pretzels,Contacted",
		",Sam Roe,sam@roe.test,chips,Bogus Status",
	}, "\n")

	result, err := svc.ImportCSV(strings.NewReader(input), "owner-1")
	if err != nil {
		t.Fatalf("ImportCSV() failed: %v", err)
	}
	if result.Imported != 2 || result.Failed != 0 {
		t.Fatalf("result = %+v, want 2 imported", result)
	}

	first := repo.leads[0]
	if first.BusinessName != "Acme Storage" || first.ContactName != "Jane Fox" || first.Email != "jane@acme.test" {
		t.Errorf("first lead = %+v, header mapping broken", first)
	}
	if first.Status != models.LeadStatusContacted {
		t.Errorf("first lead status = %q, want Contacted", first.Status)
	}
	if first.OwnerID != "owner-1" {
		t.Errorf("first lead owner = %q", first.OwnerID)
	}

	second := repo.leads[1]
	if second.BusinessName != "" {
		t.Errorf("missing required field should stay unset, got %q", second.BusinessName)
	}
	if second.Status != models.LeadStatusNew {
		t.Errorf("unknown status should fall back to New, got %q", second.Status)
	}
}

func TestExportCSV(t *testing.T) {
	repo := &fakeLeadRepo{leads: []models.Lead{
		{
			ID:           "l1",
			BusinessName: "Acme Storage",
			ContactName:  "Jane Fox",
			Status:       models.LeadStatusNew,
			Notes:        "big warehouse, call after 5pm, ask for Jane",
			OwnerID:      "owner-1",
			CreatedAt:    time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
		},
		{ID: "l2", BusinessName: "Other Co", Status: models.LeadStatusNew, OwnerID: "owner-2"},
	}}
	svc := &DefaultLeadService{Repo: repo}

	var buf bytes.Buffer
	n, err := svc.ExportCSV(&buf, "owner-1")
	if err != nil {
		t.Fatalf("ExportCSV() failed: %v", err)
	}
	if n != 1 {
		t.Fatalf("exported %d rows, want 1 (owner filter)", n)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("output has %d lines, want header plus one row", len(lines))
	}
	if lines[0] != strings.Join(csvColumns, ",") {
		t.Errorf("header = %q, want fixed column order", lines[0])
	}
	if strings.Contains(lines[1], "call after 5pm, ask") {
		t.Error("embedded commas in notes were not substituted")
	}
	if !strings.Contains(lines[1], "big warehouse; call after 5pm; ask for Jane") {
		t.Errorf("row = %q, want semicolon-substituted notes", lines[1])
	}
}

func TestImportExportRoundTripHeader(t *testing.T) {
	repo := &fakeLeadRepo{leads: []models.Lead{{
		ID: "l1", BusinessName: "Acme Storage", Status: models.LeadStatusNew, OwnerID: "owner-1",
	}}}
	svc := &DefaultLeadService{Repo: repo}

	var buf bytes.Buffer
	if _, err := svc.ExportCSV(&buf, "owner-1"); err != nil {
		t.Fatalf("ExportCSV() failed: %v", err)
	}

	// The exported header must be importable as-is.
	result, err := svc.ImportCSV(&buf, "owner-1")
	if err != nil {
		t.Fatalf("ImportCSV() of exported data failed: %v", err)
	}
	if result.Imported != 1 {
		t.Errorf("re-import got %d rows, want 1", result.Imported)
	}
}

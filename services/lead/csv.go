// File: moveboard/services/lead/csv.go
package lead

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	leadRepo "moveboard/database/repository/lead"
	"moveboard/models"
	"moveboard/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// csvColumns is the fixed export column order. Import matches header names
// against these case-insensitively; unrecognized columns are ignored.
var csvColumns = []string{
	"Business Name",
	"Contact Name",
	"Email",
	"Phone",
	"Website",
	"Address",
	"Zip",
	"Business Type",
	"Contacted",
	"Responded",
	"Status",
	"Notes",
	"Last Contact",
	"Created At",
}

// ImportCSV reads lead rows from r and stores them under ownerID. The header
// row maps columns to lead fields; a row missing the required business name
// is still imported with the field unset.
func (s *DefaultLeadService) ImportCSV(r io.Reader, ownerID string) (*ImportResult, error) {
	logger := utils.GetLogger()
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	// Column index -> canonical field name, case-insensitive exact match.
	fields := make(map[int]string, len(header))
	for i, name := range header {
		for _, col := range csvColumns {
			if strings.EqualFold(strings.TrimSpace(name), col) {
				fields[i] = col
				break
			}
		}
	}

	result := &ImportResult{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}

		lead := models.Lead{
			ID:      uuid.NewString(),
			Status:  models.LeadStatusNew,
			OwnerID: ownerID,
		}
		for i, value := range record {
			field, ok := fields[i]
			if !ok {
				continue
			}
			setLeadField(&lead, field, strings.TrimSpace(value))
		}

		if err := s.Repo.Create(&lead); err != nil {
			logger.Warn("failed to import lead row", zap.String("businessName", lead.BusinessName), zap.Error(err))
			result.Failed++
			continue
		}
		result.Imported++
	}
	return result, nil
}

// setLeadField assigns one CSV cell to its lead field.
func setLeadField(lead *models.Lead, field, value string) {
	switch field {
	case "Business Name":
		lead.BusinessName = value
	case "Contact Name":
		lead.ContactName = value
	case "Email":
		lead.Email = value
	case "Phone":
		lead.Phone = value
	case "Website":
		lead.Website = value
	case "Address":
		lead.Address = value
	case "Zip":
		lead.Zip = value
	case "Business Type":
		lead.BusinessType = value
	case "Contacted":
		if v, err := strconv.ParseBool(value); err == nil {
			lead.Contacted = v
		}
	case "Responded":
		if v, err := strconv.ParseBool(value); err == nil {
			lead.Responded = v
		}
	case "Status":
		if models.ValidLeadStatus(value) {
			lead.Status = value
		}
	case "Notes":
		lead.Notes = value
	case "Last Contact":
		if t, err := time.Parse(time.RFC3339, value); err == nil {
			lead.LastContact = t
		}
	case "Created At":
		if t, err := time.Parse(time.RFC3339, value); err == nil {
			lead.CreatedAt = t
		}
	}
}

// ExportCSV writes all of the owner's leads in the fixed column order and
// returns the row count. Embedded commas in the free-text notes are replaced
// with semicolons; the format is deliberately plain, not RFC-4180 quoting.
func (s *DefaultLeadService) ExportCSV(w io.Writer, ownerID string) (int, error) {
	leads, err := s.Repo.List(leadRepo.LeadFilter{OwnerID: ownerID, NewestFirst: true})
	if err != nil {
		return 0, err
	}

	if _, err := fmt.Fprintln(w, strings.Join(csvColumns, ",")); err != nil {
		return 0, fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, l := range leads {
		row := []string{
			l.BusinessName,
			l.ContactName,
			l.Email,
			l.Phone,
			l.Website,
			l.Address,
			l.Zip,
			l.BusinessType,
			strconv.FormatBool(l.Contacted),
			strconv.FormatBool(l.Responded),
			l.Status,
			strings.ReplaceAll(l.Notes, ",", ";"),
			formatCSVTime(l.LastContact),
			formatCSVTime(l.CreatedAt),
		}
		if _, err := fmt.Fprintln(w, strings.Join(row, ",")); err != nil {
			return 0, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	return len(leads), nil
}

func formatCSVTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

package models

import "time"

// Lead status values.
const (
	LeadStatusNew           = "New"
	LeadStatusContacted     = "Contacted"
	LeadStatusResponded     = "Responded"
	LeadStatusNotInterested = "Not Interested"
	LeadStatusConverted     = "Converted"
)

// ValidLeadStatus reports whether s is one of the known status values.
func ValidLeadStatus(s string) bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusResponded, LeadStatusNotInterested, LeadStatusConverted:
		return true
	}
	return false
}

// Lead is a prospective customer record.
type Lead struct {
	ID           string    `bson:"id" json:"id"`
	BusinessName string    `bson:"businessName" json:"businessName"`
	ContactName  string    `bson:"contactName,omitempty" json:"contactName,omitempty"`
	Email        string    `bson:"email,omitempty" json:"email,omitempty"`
	Phone        string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Website      string    `bson:"website,omitempty" json:"website,omitempty"`
	Address      string    `bson:"address,omitempty" json:"address,omitempty"`
	Zip          string    `bson:"zip,omitempty" json:"zip,omitempty"`
	BusinessType string    `bson:"businessType,omitempty" json:"businessType,omitempty"`
	Contacted    bool      `bson:"contacted" json:"contacted"`
	Responded    bool      `bson:"responded" json:"responded"`
	Status       string    `bson:"status" json:"status"`
	Notes        string    `bson:"notes,omitempty" json:"notes,omitempty"`
	LastContact  time.Time `bson:"lastContact,omitempty" json:"lastContact,omitempty"`
	FollowUpDue  bool      `bson:"followUpDue,omitempty" json:"followUpDue,omitempty"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
	OwnerID      string    `bson:"ownerId" json:"ownerId"`
}

// LeadUpdateRequest is a partial update payload; nil fields are left untouched.
type LeadUpdateRequest struct {
	ID           string     `json:"id"`
	BusinessName *string    `json:"businessName,omitempty"`
	ContactName  *string    `json:"contactName,omitempty"`
	Email        *string    `json:"email,omitempty"`
	Phone        *string    `json:"phone,omitempty"`
	Website      *string    `json:"website,omitempty"`
	Address      *string    `json:"address,omitempty"`
	Zip          *string    `json:"zip,omitempty"`
	BusinessType *string    `json:"businessType,omitempty"`
	Contacted    *bool      `json:"contacted,omitempty"`
	Responded    *bool      `json:"responded,omitempty"`
	Status       *string    `json:"status,omitempty"`
	Notes        *string    `json:"notes,omitempty"`
	LastContact  *time.Time `json:"lastContact,omitempty"`
}

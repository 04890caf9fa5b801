package leadRepo

import (
	"moveboard/models"

	"go.mongodb.org/mongo-driver/bson"
)

// LeadFilter narrows and orders List results. Zero values mean "no filter".
type LeadFilter struct {
	OwnerID     string
	Status      string
	FollowUpDue bool
	// NewestFirst orders by creation time descending when set.
	NewestFirst bool
}

// LeadRepository defines persistence operations for lead records.
type LeadRepository interface {
	Create(lead *models.Lead) error
	Update(lead *models.Lead) error
	Delete(id string) error
	GetByID(id string) (*models.Lead, error)
	GetByIDWithProjection(id string, projection bson.M) (*models.Lead, error)
	List(filter LeadFilter) ([]models.Lead, error)
}

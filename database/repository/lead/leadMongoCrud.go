// File: database/repository/lead/leadMongoCrud.go
package leadRepo

import (
	"fmt"
	"time"

	"moveboard/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new lead document.
func (r *MongoLeadRepo) Create(lead *models.Lead) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	if lead.CreatedAt.IsZero() {
		lead.CreatedAt = now
	}
	lead.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, lead)
	if err != nil {
		return fmt.Errorf("failed to create lead: %w", err)
	}
	return nil
}

// Update modifies an existing lead document.
func (r *MongoLeadRepo) Update(lead *models.Lead) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	lead.UpdatedAt = time.Now()
	filter := bson.M{"id": lead.ID}
	update := bson.M{"$set": lead}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update lead with id %s: %w", lead.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("lead with id %s not found", lead.ID)
	}
	return nil
}

// Delete removes a lead document by its ID.
func (r *MongoLeadRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	result, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete lead with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("lead with id %s not found", id)
	}
	return nil
}

// File: database/repository/lead/leadMongoQueries.go
package leadRepo

import (
	"fmt"
	"time"

	"moveboard/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetByIDWithProjection retrieves a lead by its unique ID using a projection.
// Pass nil for projection to retrieve the full document.
func (r *MongoLeadRepo) GetByIDWithProjection(id string, projection bson.M) (*models.Lead, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.FindOne()
	if projection != nil {
		opts.SetProjection(projection)
	}

	var lead models.Lead
	if err := r.coll.FindOne(ctx, bson.M{"id": id}, opts).Decode(&lead); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch lead with id %s: %w", id, err)
	}
	return &lead, nil
}

// GetByID retrieves a lead by its unique ID (full document).
func (r *MongoLeadRepo) GetByID(id string) (*models.Lead, error) {
	return r.GetByIDWithProjection(id, nil)
}

// List retrieves leads matching the filter, optionally ordered newest first.
func (r *MongoLeadRepo) List(filter LeadFilter) ([]models.Lead, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	query := bson.M{}
	if filter.OwnerID != "" {
		query["ownerId"] = filter.OwnerID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.FollowUpDue {
		query["followUpDue"] = true
	}

	opts := options.Find()
	if filter.NewestFirst {
		opts.SetSort(bson.D{{Key: "createdAt", Value: -1}})
	}

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve leads: %w", err)
	}
	defer cursor.Close(ctx)

	var leads []models.Lead
	for cursor.Next(ctx) {
		var l models.Lead
		if err := cursor.Decode(&l); err != nil {
			return nil, fmt.Errorf("failed to decode lead: %w", err)
		}
		leads = append(leads, l)
	}
	return leads, nil
}

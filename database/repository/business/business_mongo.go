package businessRepo

import (
	"context"
	"fmt"
	"time"

	"instrufix/database"
	"instrufix/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBusinessRepo implements BusinessRepository using MongoDB.
type MongoBusinessRepo struct {
	coll *mongo.Collection
}

// NewMongoBusinessRepo creates a new instance of BusinessRepository using MongoDB.
func NewMongoBusinessRepo() BusinessRepository {
	// Use the "instrufix" database and the "businesses" collection.
	coll := database.MongoClient.Database("instrufix").Collection("businesses")
	return &MongoBusinessRepo{coll: coll}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoBusinessRepo) GetByID(id string) (*models.Business, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	var business models.Business
	filter := bson.M{"id": id}
	if err := r.coll.FindOne(ctx, filter).Decode(&business); err != nil {
		return nil, fmt.Errorf("failed to fetch business with id %s: %w", id, err)
	}
	return &business, nil
}

func (r *MongoBusinessRepo) GetByTrackingID(trackingID string) (*models.Business, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	var business models.Business
	filter := bson.M{"trackingId": trackingID}
	if err := r.coll.FindOne(ctx, filter).Decode(&business); err != nil {
		return nil, fmt.Errorf("failed to fetch business with tracking id %s: %w", trackingID, err)
	}
	return &business, nil
}

func (r *MongoBusinessRepo) GetByOwner(ownerID string) ([]models.Business, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	cursor, err := r.coll.Find(ctx, bson.M{"ownerId": ownerID})
	if err != nil {
		return nil, fmt.Errorf("failed to find businesses for owner %s: %w", ownerID, err)
	}
	defer cursor.Close(ctx)
	return decodeBusinesses(ctx, cursor)
}

// GetAll returns listings matching the criteria, newest first.
func (r *MongoBusinessRepo) GetAll(criteria SearchCriteria) ([]models.Business, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{}
	if criteria.Status != "" {
		filter["status"] = criteria.Status
	}
	if criteria.OwnerID != "" {
		filter["ownerId"] = criteria.OwnerID
	}
	if criteria.InstrumentGroup != "" {
		filter["services.selectedInstrumentsGroup"] = bson.M{"$regex": criteria.InstrumentGroup, "$options": "i"}
	}
	if criteria.InstrumentFamily != "" {
		filter["services.instrumentFamily"] = bson.M{"$regex": criteria.InstrumentFamily, "$options": "i"}
	}

	limit := criteria.Limit
	if limit <= 0 {
		limit = 50
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve businesses: %w", err)
	}
	defer cursor.Close(ctx)
	return decodeBusinesses(ctx, cursor)
}

func decodeBusinesses(ctx context.Context, cursor *mongo.Cursor) ([]models.Business, error) {
	var businesses []models.Business
	for cursor.Next(ctx) {
		var b models.Business
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("failed to decode business: %w", err)
		}
		businesses = append(businesses, b)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return businesses, nil
}

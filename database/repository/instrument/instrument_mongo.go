package instrumentRepo

import (
	"context"
	"fmt"
	"time"

	"instrufix/database"
	"instrufix/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoInstrumentRepo implements InstrumentRepository using MongoDB.
type MongoInstrumentRepo struct {
	coll *mongo.Collection
}

// NewMongoInstrumentRepo creates a new instance of InstrumentRepository using MongoDB.
func NewMongoInstrumentRepo() InstrumentRepository {
	coll := database.MongoClient.Database("instrufix").Collection("instrumentFamilies")
	return &MongoInstrumentRepo{coll: coll}
}

func (r *MongoInstrumentRepo) GetAll() ([]models.InstrumentFamily, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve instrument families: %w", err)
	}
	defer cursor.Close(ctx)
	return decodeFamilies(ctx, cursor)
}

// GetByTypeName returns the families containing an instrument type matching
// the given name.
func (r *MongoInstrumentRepo) GetByTypeName(typeName string) ([]models.InstrumentFamily, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	filter := bson.M{
		"instrumentTypes.type": bson.M{"$regex": typeName, "$options": "i"},
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find instrument families for type %s: %w", typeName, err)
	}
	defer cursor.Close(ctx)
	return decodeFamilies(ctx, cursor)
}

func decodeFamilies(ctx context.Context, cursor *mongo.Cursor) ([]models.InstrumentFamily, error) {
	var families []models.InstrumentFamily
	for cursor.Next(ctx) {
		var f models.InstrumentFamily
		if err := cursor.Decode(&f); err != nil {
			return nil, fmt.Errorf("failed to decode instrument family: %w", err)
		}
		families = append(families, f)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return families, nil
}

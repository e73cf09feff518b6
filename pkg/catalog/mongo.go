package catalog

import (
	"context"
	"strings"
	"time"

	"github.com/example/homeli/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionName = "food_items"

type MongoStore struct {
	collection *mongo.Collection
}

func NewMongoStore(db interface {
	Collection(name string) *mongo.Collection
}) *MongoStore {
	return &MongoStore{collection: db.Collection(collectionName)}
}

func (s *MongoStore) List(ctx context.Context, q Query) ([]models.FoodItem, error) {
	filter := bson.M{"isAvailable": true}

	if q.Category != "" && q.Category != "more" {
		filter["category"] = strings.ToLower(q.Category)
	}

	if q.Search != "" {
		rx := primitive.Regex{Pattern: q.Search, Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"name": rx},
			bson.M{"category": rx},
			bson.M{"description": rx},
		}
	}

	opts := options.Find().SetSort(bson.D{{Key: "rating", Value: -1}})
	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := []models.FoodItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *MongoStore) ReplaceAll(ctx context.Context, items []models.FoodItem) error {
	if _, err := s.collection.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}

	now := time.Now()
	docs := make([]interface{}, len(items))
	for i, item := range items {
		item.CreatedAt = now
		item.UpdatedAt = now
		docs[i] = item
	}

	_, err := s.collection.InsertMany(ctx, docs)
	return err
}

package orders

import (
	"context"

	"github.com/example/homeli/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionName = "orders"

type MongoStore struct {
	collection *mongo.Collection
}

func NewMongoStore(db interface {
	Collection(name string) *mongo.Collection
}) *MongoStore {
	return &MongoStore{collection: db.Collection(collectionName)}
}

func (s *MongoStore) Insert(ctx context.Context, order *models.Order) (string, error) {
	order.ID = primitive.NewObjectID().Hex()
	if _, err := s.collection.InsertOne(ctx, order); err != nil {
		return "", err
	}
	return order.ID, nil
}

func (s *MongoStore) Count(ctx context.Context) (int64, error) {
	return s.collection.CountDocuments(ctx, bson.M{})
}

func (s *MongoStore) FindByID(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *MongoStore) Update(ctx context.Context, order *models.Order) error {
	res, err := s.collection.ReplaceOne(ctx, bson.M{"_id": order.ID}, order)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) FindByPhone(ctx context.Context, phone string, limit int64) ([]models.Order, error) {
	return s.find(ctx, bson.M{"phoneNumber": phone}, limit)
}

func (s *MongoStore) FindByUser(ctx context.Context, userID string, limit int64) ([]models.Order, error) {
	return s.find(ctx, bson.M{"userId": userID}, limit)
}

func (s *MongoStore) List(ctx context.Context, q ListQuery) ([]models.Order, int64, error) {
	filter := bson.M{}
	if q.Status != "" {
		filter["orderStatus"] = q.Status
	}

	total, err := s.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64(q.Page-1) * int64(q.Limit)).
		SetLimit(int64(q.Limit))

	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	out := []models.Order{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (s *MongoStore) find(ctx context.Context, filter bson.M, limit int64) ([]models.Order, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)

	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	out := []models.Order{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

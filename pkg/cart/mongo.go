package cart

import (
	"context"

	"github.com/example/homeli/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionName = "carts"

type MongoStore struct {
	collection *mongo.Collection
}

func NewMongoStore(db interface {
	Collection(name string) *mongo.Collection
}) *MongoStore {
	return &MongoStore{collection: db.Collection(collectionName)}
}

func (s *MongoStore) Find(ctx context.Context, userID string) (*models.Cart, error) {
	var c models.Cart
	err := s.collection.FindOne(ctx, bson.M{"userId": userID}).Decode(&c)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Save replaces the cart document for its user, inserting on first write.
// Single-document read-modify-write: concurrent mutations of the same cart
// are last-write-wins.
func (s *MongoStore) Save(ctx context.Context, cart *models.Cart) error {
	doc := bson.M{
		"userId":      cart.UserID,
		"items":       cart.Items,
		"totalAmount": cart.TotalAmount,
		"createdAt":   cart.CreatedAt,
		"updatedAt":   cart.UpdatedAt,
	}
	opts := options.Replace().SetUpsert(true)
	_, err := s.collection.ReplaceOne(ctx, bson.M{"userId": cart.UserID}, doc, opts)
	return err
}

package tokenstore

import (
	"context"
	"fmt"
	"time"

	"voice-commerce-gateway/internal/domain"
	"voice-commerce-gateway/internal/ports"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore implements TokenStore on a MongoDB collection.
type MongoStore struct {
	shops *mongo.Collection
}

// NewMongoStore creates a MongoDB-backed token store.
func NewMongoStore(db *mongo.Database) ports.TokenStore {
	return &MongoStore{shops: db.Collection("shops")}
}

// Put saves or updates a shop record, keyed by domain.
func (s *MongoStore) Put(ctx context.Context, shop *domain.Shop) error {
	doc := *shop
	doc.UpdatedAt = time.Now()
	if doc.InstalledAt.IsZero() {
		doc.InstalledAt = doc.UpdatedAt
	}

	opts := options.Update().SetUpsert(true)
	filter := bson.M{"domain": shop.Domain}
	update := bson.M{
		"$set": bson.M{
			"access_token": doc.AccessToken,
			"updated_at":   doc.UpdatedAt,
		},
		"$setOnInsert": bson.M{
			"domain":       doc.Domain,
			"installed_at": doc.InstalledAt,
		},
	}

	if _, err := s.shops.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to save shop: %w", err)
	}
	return nil
}

// Get retrieves a shop by domain.
func (s *MongoStore) Get(ctx context.Context, shopDomain string) (*domain.Shop, error) {
	var shop domain.Shop
	filter := bson.M{"domain": shopDomain}

	err := s.shops.FindOne(ctx, filter).Decode(&shop)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get shop: %w", err)
	}
	return &shop, nil
}

// List retrieves all installed shops.
func (s *MongoStore) List(ctx context.Context) ([]*domain.Shop, error) {
	cursor, err := s.shops.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"domain": 1}))
	if err != nil {
		return nil, fmt.Errorf("failed to list shops: %w", err)
	}
	defer cursor.Close(ctx)

	var shops []*domain.Shop
	for cursor.Next(ctx) {
		var shop domain.Shop
		if err := cursor.Decode(&shop); err != nil {
			return nil, fmt.Errorf("failed to decode shop: %w", err)
		}
		shops = append(shops, &shop)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return shops, nil
}

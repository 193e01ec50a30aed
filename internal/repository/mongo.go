package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names within the restaurant database.
const (
	usersCollection     = "users"
	inventoryCollection = "inventory"
	ordersCollection    = "orders"
	itemsCollection     = "items"
	countersCollection  = "counters"
)

// MongoStore implements Store using MongoDB.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewMongoStore connects to MongoDB and prepares the four collections.
// Unique indexes back the email and item-name constraints.
func NewMongoStore(uri, database string) (*MongoStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	clientOpts := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(50).
		SetMaxConnIdleTime(5 * time.Minute).
		SetRetryWrites(true)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	db := client.Database(database)

	uniqueIndexes := map[string]string{
		usersCollection: "email",
		itemsCollection: "name",
	}
	for coll, field := range uniqueIndexes {
		_, err := db.Collection(coll).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: field, Value: 1}},
			Options: options.Index().SetUnique(true),
		})
		if err != nil {
			log.Printf("[MongoStore] Warning: failed to create index on %s.%s: %v", coll, field, err)
		}
	}

	_, err = db.Collection(inventoryCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "dateTime", Value: 1}},
	})
	if err != nil {
		log.Printf("[MongoStore] Warning: failed to create index on inventory.dateTime: %v", err)
	}

	log.Printf("[MongoStore] Connected to %s", database)
	return &MongoStore{client: client, db: db}, nil
}

// Users returns the user repository.
func (s *MongoStore) Users() UserRepository {
	return &mongoUserRepository{coll: s.db.Collection(usersCollection)}
}

// Inventory returns the inventory repository.
func (s *MongoStore) Inventory() InventoryRepository {
	return &mongoInventoryRepository{
		coll:     s.db.Collection(inventoryCollection),
		counters: s.db.Collection(countersCollection),
	}
}

// Orders returns the order repository.
func (s *MongoStore) Orders() OrderRepository {
	return &mongoOrderRepository{coll: s.db.Collection(ordersCollection)}
}

// Items returns the item catalog repository.
func (s *MongoStore) Items() ItemRepository {
	return &mongoItemRepository{coll: s.db.Collection(itemsCollection)}
}

// Close disconnects from MongoDB.
func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

// Ensure MongoStore implements Store
var _ Store = (*MongoStore)(nil)

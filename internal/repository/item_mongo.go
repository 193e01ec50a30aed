package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tingtingtong/udup-restaurant-backend/internal/model"
)

// mongoItemRepository implements ItemRepository using MongoDB.
type mongoItemRepository struct {
	coll *mongo.Collection
}

// itemDoc is the MongoDB document shape for a catalog entry.
type itemDoc struct {
	ID   primitive.ObjectID `bson:"_id,omitempty"`
	Name string             `bson:"name"`
}

// ExistsByName reports whether a catalog entry with the name exists.
func (r *mongoItemRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	err := r.coll.FindOne(ctx, bson.M{"name": name}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to look up item: %w", err)
	}
	return true, nil
}

// Insert stores a new catalog entry.
func (r *mongoItemRepository) Insert(ctx context.Context, item *model.CatalogItem) error {
	result, err := r.coll.InsertOne(ctx, itemDoc{Name: item.Name})
	if err != nil {
		return fmt.Errorf("failed to insert item: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		item.ID = oid.Hex()
	}
	return nil
}

// List returns all catalog entries.
func (r *mongoItemRepository) List(ctx context.Context) ([]model.CatalogItem, error) {
	cursor, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer cursor.Close(ctx)

	items := []model.CatalogItem{}
	for cursor.Next(ctx) {
		var doc itemDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode item: %w", err)
		}
		items = append(items, model.CatalogItem{ID: doc.ID.Hex(), Name: doc.Name})
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate items: %w", err)
	}

	return items, nil
}

// Ensure mongoItemRepository implements ItemRepository
var _ ItemRepository = (*mongoItemRepository)(nil)

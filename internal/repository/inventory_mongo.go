package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tingtingtong/udup-restaurant-backend/internal/model"
)

// mongoInventoryRepository implements InventoryRepository using MongoDB.
type mongoInventoryRepository struct {
	coll     *mongo.Collection
	counters *mongo.Collection
}

// inventoryDoc is the MongoDB document shape for an inventory record.
type inventoryDoc struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	ItemName       string             `bson:"itemName"`
	Key            int64              `bson:"key"`
	StockTaken     float64            `bson:"stockTaken"`
	StockRemaining float64            `bson:"stockRemaining"`
	TotalStock     float64            `bson:"totalStock"`
	DateTime       time.Time          `bson:"dateTime"`
}

func (d *inventoryDoc) toModel() model.InventoryItem {
	return model.InventoryItem{
		ID:             d.ID.Hex(),
		ItemName:       d.ItemName,
		Key:            d.Key,
		StockTaken:     d.StockTaken,
		StockRemaining: d.StockRemaining,
		TotalStock:     d.TotalStock,
		DateTime:       d.DateTime,
	}
}

// nextKey atomically increments and returns the inventory key counter.
// FindOneAndUpdate with $inc makes concurrent inserts safe, unlike a
// count-then-insert sequence.
func (r *mongoInventoryRepository) nextKey(ctx context.Context) (int64, error) {
	var counter struct {
		Seq int64 `bson:"seq"`
	}

	err := r.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": "inventory_key"},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("failed to allocate inventory key: %w", err)
	}

	return counter.Seq, nil
}

// Insert stores a new record, assigning its ID and Key.
func (r *mongoInventoryRepository) Insert(ctx context.Context, item *model.InventoryItem) error {
	key, err := r.nextKey(ctx)
	if err != nil {
		return err
	}

	doc := inventoryDoc{
		ItemName:       item.ItemName,
		Key:            key,
		StockTaken:     item.StockTaken,
		StockRemaining: item.StockRemaining,
		TotalStock:     item.TotalStock,
		DateTime:       item.DateTime,
	}

	result, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("failed to insert inventory record: %w", err)
	}

	item.Key = key
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		item.ID = oid.Hex()
	}
	return nil
}

// ListRange returns records with DateTime in [start, end).
func (r *mongoInventoryRepository) ListRange(ctx context.Context, start, end time.Time) ([]model.InventoryItem, error) {
	filter := bson.M{"dateTime": bson.M{"$gte": start, "$lt": end}}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}
	defer cursor.Close(ctx)

	items := []model.InventoryItem{}
	for cursor.Next(ctx) {
		var doc inventoryDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode inventory record: %w", err)
		}
		items = append(items, doc.toModel())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate inventory: %w", err)
	}

	return items, nil
}

// Update overwrites the stock fields of the record with the given id.
func (r *mongoInventoryRepository) Update(ctx context.Context, id string, stockTaken, stockRemaining, totalStock float64) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	update := bson.M{"$set": bson.M{
		"stockTaken":     stockTaken,
		"stockRemaining": stockRemaining,
		"totalStock":     totalStock,
	}}

	result, err := r.coll.UpdateByID(ctx, oid, update)
	if err != nil {
		return fmt.Errorf("failed to update inventory record: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the record with the given id.
func (r *mongoInventoryRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete inventory record: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the number of inventory records.
func (r *mongoInventoryRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("failed to count inventory: %w", err)
	}
	return count, nil
}

// Ensure mongoInventoryRepository implements InventoryRepository
var _ InventoryRepository = (*mongoInventoryRepository)(nil)

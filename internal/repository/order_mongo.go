package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tingtingtong/udup-restaurant-backend/internal/model"
)

// mongoOrderRepository implements OrderRepository using MongoDB.
type mongoOrderRepository struct {
	coll *mongo.Collection
}

// orderDoc is the MongoDB document shape for an order.
type orderDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Items       []model.OrderLine  `bson:"items"`
	TotalAmount float64            `bson:"totalAmount"`
	Date        time.Time          `bson:"date"`
}

// Insert stores a new order.
func (r *mongoOrderRepository) Insert(ctx context.Context, order *model.Order) error {
	doc := orderDoc{
		Items:       order.Items,
		TotalAmount: order.TotalAmount,
		Date:        order.Date,
	}

	result, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		order.ID = oid.Hex()
	}
	return nil
}

// List returns all orders in store order.
func (r *mongoOrderRepository) List(ctx context.Context) ([]model.Order, error) {
	cursor, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer cursor.Close(ctx)

	orders := []model.Order{}
	for cursor.Next(ctx) {
		var doc orderDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode order: %w", err)
		}
		orders = append(orders, model.Order{
			ID:          doc.ID.Hex(),
			Items:       doc.Items,
			TotalAmount: doc.TotalAmount,
			Date:        doc.Date,
		})
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate orders: %w", err)
	}

	return orders, nil
}

// Count returns the number of orders.
func (r *mongoOrderRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return count, nil
}

// Ensure mongoOrderRepository implements OrderRepository
var _ OrderRepository = (*mongoOrderRepository)(nil)

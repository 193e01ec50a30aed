package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tingtingtong/udup-restaurant-backend/internal/model"
)

// mongoUserRepository implements UserRepository using MongoDB.
type mongoUserRepository struct {
	coll *mongo.Collection
}

// userDoc is the MongoDB document shape for a user.
type userDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password"`
}

func (d *userDoc) toModel() *model.User {
	return &model.User{
		ID:           d.ID.Hex(),
		Name:         d.Name,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
	}
}

// Create inserts a new user. A duplicate email violates the unique
// index and surfaces as a store error.
func (r *mongoUserRepository) Create(ctx context.Context, user *model.User) error {
	doc := userDoc{
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
	}

	result, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid.Hex()
	}
	return nil
}

// GetByEmail returns the user with the given email, or ErrNotFound.
func (r *mongoUserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var doc userDoc
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return doc.toModel(), nil
}

// Ensure mongoUserRepository implements UserRepository
var _ UserRepository = (*mongoUserRepository)(nil)

package repository

import (
	"context"
	"errors"
	"time"

	"github.com/tingtingtong/udup-restaurant-backend/internal/model"
)

// ErrNotFound is returned when a document addressed by id or email does
// not exist. Unknown and malformed ids are treated the same way.
var ErrNotFound = errors.New("not found")

// UserRepository defines user data access methods.
type UserRepository interface {
	// Create inserts a new user. Fails on duplicate email via the
	// store's unique constraint; there is no pre-check.
	Create(ctx context.Context, user *model.User) error

	// GetByEmail returns the user with the given email, or ErrNotFound.
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

// InventoryRepository defines inventory data access methods.
type InventoryRepository interface {
	// Insert stores a new record and assigns its ID and Key. Key
	// assignment is atomic; concurrent inserts never collide.
	Insert(ctx context.Context, item *model.InventoryItem) error

	// ListRange returns records with DateTime in [start, end).
	ListRange(ctx context.Context, start, end time.Time) ([]model.InventoryItem, error)

	// Update overwrites the stock fields of the record with the given
	// id. Returns ErrNotFound if no such record exists.
	Update(ctx context.Context, id string, stockTaken, stockRemaining, totalStock float64) error

	// Delete removes the record with the given id. Returns ErrNotFound
	// if no such record exists.
	Delete(ctx context.Context, id string) error

	// Count returns the number of inventory records.
	Count(ctx context.Context) (int64, error)
}

// OrderRepository defines order data access methods.
type OrderRepository interface {
	// Insert stores a new order and assigns its ID.
	Insert(ctx context.Context, order *model.Order) error

	// List returns all orders in store order.
	List(ctx context.Context) ([]model.Order, error)

	// Count returns the number of orders.
	Count(ctx context.Context) (int64, error)
}

// ItemRepository defines item catalog data access methods.
type ItemRepository interface {
	// ExistsByName reports whether a catalog entry with the name exists.
	ExistsByName(ctx context.Context, name string) (bool, error)

	// Insert stores a new catalog entry and assigns its ID.
	Insert(ctx context.Context, item *model.CatalogItem) error

	// List returns all catalog entries.
	List(ctx context.Context) ([]model.CatalogItem, error)
}

// Store aggregates the per-collection repositories over one backend.
type Store interface {
	Users() UserRepository
	Inventory() InventoryRepository
	Orders() OrderRepository
	Items() ItemRepository
	Close() error
}

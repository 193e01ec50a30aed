package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite" // Pure Go SQLite driver - no CGO required

	"github.com/tingtingtong/udup-restaurant-backend/internal/model"
)

// SQLStore implements Store over database/sql. The driver is either
// "sqlite" (modernc, pure Go) or "mysql". Timestamps are stored as unix
// nanoseconds so range queries behave identically on both drivers.
type SQLStore struct {
	db     *sql.DB
	driver string
}

// NewSQLStore opens the database and creates the four tables.
func NewSQLStore(driver, dsn string) (*SQLStore, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", driver, err)
	}

	if driver == "sqlite" {
		// SQLite only supports 1 writer
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	} else {
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping %s: %w", driver, err)
	}

	s := &SQLStore{db: db, driver: driver}
	if err := s.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	log.Printf("[SQLStore] Initialized %s store", driver)
	return s, nil
}

// createTables creates the schema. The auto-increment keyword is the
// only dialect difference.
func (s *SQLStore) createTables() error {
	autoinc := "INTEGER PRIMARY KEY AUTOINCREMENT"
	if s.driver == "mysql" {
		autoinc = "BIGINT PRIMARY KEY AUTO_INCREMENT"
	}

	statements := []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS users (
			id %s,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) NOT NULL UNIQUE,
			password VARCHAR(255) NOT NULL
		)`, autoinc),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS inventory (
			id %s,
			item_name VARCHAR(255) NOT NULL,
			item_key BIGINT NOT NULL,
			stock_taken DOUBLE PRECISION NOT NULL,
			stock_remaining DOUBLE PRECISION NOT NULL,
			total_stock DOUBLE PRECISION NOT NULL,
			date_time BIGINT NOT NULL
		)`, autoinc),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS orders (
			id %s,
			items_json TEXT NOT NULL,
			total_amount DOUBLE PRECISION NOT NULL,
			order_date BIGINT NOT NULL
		)`, autoinc),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS items (
			id %s,
			name VARCHAR(255) NOT NULL UNIQUE
		)`, autoinc),
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Users returns the user repository.
func (s *SQLStore) Users() UserRepository { return &sqlUserRepository{db: s.db} }

// Inventory returns the inventory repository.
func (s *SQLStore) Inventory() InventoryRepository { return &sqlInventoryRepository{db: s.db} }

// Orders returns the order repository.
func (s *SQLStore) Orders() OrderRepository { return &sqlOrderRepository{db: s.db} }

// Items returns the item catalog repository.
func (s *SQLStore) Items() ItemRepository { return &sqlItemRepository{db: s.db} }

// Close closes the database connection.
func (s *SQLStore) Close() error { return s.db.Close() }

// parseRowID converts a path id to the integer primary key. Malformed
// ids match nothing, so they report ErrNotFound.
func parseRowID(id string) (int64, error) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0, ErrNotFound
	}
	return n, nil
}

// sqlUserRepository implements UserRepository.
type sqlUserRepository struct {
	db *sql.DB
}

func (r *sqlUserRepository) Create(ctx context.Context, user *model.User) error {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO users (name, email, password) VALUES (?, ?, ?)`,
		user.Name, user.Email, user.PasswordHash)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	if id, err := result.LastInsertId(); err == nil {
		user.ID = strconv.FormatInt(id, 10)
	}
	return nil
}

func (r *sqlUserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var (
		id   int64
		user model.User
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, email, password FROM users WHERE email = ?`, email).
		Scan(&id, &user.Name, &user.Email, &user.PasswordHash)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	user.ID = strconv.FormatInt(id, 10)
	return &user, nil
}

// sqlInventoryRepository implements InventoryRepository.
type sqlInventoryRepository struct {
	db *sql.DB
}

func (r *sqlInventoryRepository) Insert(ctx context.Context, item *model.InventoryItem) error {
	// Key allocation happens inside the INSERT so concurrent inserts
	// cannot observe the same MAX.
	result, err := r.db.ExecContext(ctx, `
		INSERT INTO inventory (item_name, item_key, stock_taken, stock_remaining, total_stock, date_time)
		SELECT ?, COALESCE(MAX(item_key), 0) + 1, ?, ?, ?, ? FROM inventory`,
		item.ItemName, item.StockTaken, item.StockRemaining, item.TotalStock, item.DateTime.UnixNano())
	if err != nil {
		return fmt.Errorf("failed to insert inventory record: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read inserted id: %w", err)
	}
	item.ID = strconv.FormatInt(id, 10)

	err = r.db.QueryRowContext(ctx,
		`SELECT item_key FROM inventory WHERE id = ?`, id).Scan(&item.Key)
	if err != nil {
		return fmt.Errorf("failed to read assigned key: %w", err)
	}
	return nil
}

func (r *sqlInventoryRepository) ListRange(ctx context.Context, start, end time.Time) ([]model.InventoryItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, item_name, item_key, stock_taken, stock_remaining, total_stock, date_time
		FROM inventory WHERE date_time >= ? AND date_time < ?`,
		start.UnixNano(), end.UnixNano())
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}
	defer rows.Close()

	items := []model.InventoryItem{}
	for rows.Next() {
		var (
			id    int64
			nanos int64
			item  model.InventoryItem
		)
		err := rows.Scan(&id, &item.ItemName, &item.Key, &item.StockTaken,
			&item.StockRemaining, &item.TotalStock, &nanos)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inventory record: %w", err)
		}
		item.ID = strconv.FormatInt(id, 10)
		item.DateTime = time.Unix(0, nanos)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate inventory: %w", err)
	}

	return items, nil
}

func (r *sqlInventoryRepository) Update(ctx context.Context, id string, stockTaken, stockRemaining, totalStock float64) error {
	rowID, err := parseRowID(id)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, `
		UPDATE inventory SET stock_taken = ?, stock_remaining = ?, total_stock = ?
		WHERE id = ?`,
		stockTaken, stockRemaining, totalStock, rowID)
	if err != nil {
		return fmt.Errorf("failed to update inventory record: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *sqlInventoryRepository) Delete(ctx context.Context, id string) error {
	rowID, err := parseRowID(id)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, `DELETE FROM inventory WHERE id = ?`, rowID)
	if err != nil {
		return fmt.Errorf("failed to delete inventory record: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *sqlInventoryRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM inventory`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count inventory: %w", err)
	}
	return count, nil
}

// sqlOrderRepository implements OrderRepository. Order lines are stored
// as a JSON column; they are only ever read back whole.
type sqlOrderRepository struct {
	db *sql.DB
}

func (r *sqlOrderRepository) Insert(ctx context.Context, order *model.Order) error {
	itemsJSON, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("failed to serialize order items: %w", err)
	}

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO orders (items_json, total_amount, order_date) VALUES (?, ?, ?)`,
		string(itemsJSON), order.TotalAmount, order.Date.UnixNano())
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	if id, err := result.LastInsertId(); err == nil {
		order.ID = strconv.FormatInt(id, 10)
	}
	return nil
}

func (r *sqlOrderRepository) List(ctx context.Context) ([]model.Order, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, items_json, total_amount, order_date FROM orders`)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	orders := []model.Order{}
	for rows.Next() {
		var (
			id        int64
			itemsJSON string
			nanos     int64
			order     model.Order
		)
		if err := rows.Scan(&id, &itemsJSON, &order.TotalAmount, &nanos); err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		if err := json.Unmarshal([]byte(itemsJSON), &order.Items); err != nil {
			return nil, fmt.Errorf("failed to parse order items: %w", err)
		}
		order.ID = strconv.FormatInt(id, 10)
		order.Date = time.Unix(0, nanos)
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate orders: %w", err)
	}

	return orders, nil
}

func (r *sqlOrderRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM orders`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return count, nil
}

// sqlItemRepository implements ItemRepository.
type sqlItemRepository struct {
	db *sql.DB
}

func (r *sqlItemRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM items WHERE name = ?`, name).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to look up item: %w", err)
	}
	return count > 0, nil
}

func (r *sqlItemRepository) Insert(ctx context.Context, item *model.CatalogItem) error {
	result, err := r.db.ExecContext(ctx, `INSERT INTO items (name) VALUES (?)`, item.Name)
	if err != nil {
		return fmt.Errorf("failed to insert item: %w", err)
	}

	if id, err := result.LastInsertId(); err == nil {
		item.ID = strconv.FormatInt(id, 10)
	}
	return nil
}

func (r *sqlItemRepository) List(ctx context.Context) ([]model.CatalogItem, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM items`)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	items := []model.CatalogItem{}
	for rows.Next() {
		var (
			id   int64
			item model.CatalogItem
		)
		if err := rows.Scan(&id, &item.Name); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		item.ID = strconv.FormatInt(id, 10)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate items: %w", err)
	}

	return items, nil
}

// Ensure SQLStore wiring satisfies the repository interfaces
var (
	_ Store               = (*SQLStore)(nil)
	_ UserRepository      = (*sqlUserRepository)(nil)
	_ InventoryRepository = (*sqlInventoryRepository)(nil)
	_ OrderRepository     = (*sqlOrderRepository)(nil)
	_ ItemRepository      = (*sqlItemRepository)(nil)
)

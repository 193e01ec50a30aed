package service

import (
	"context"
	"time"

	"github.com/tingtingtong/udup-restaurant-backend/internal/model"
	"github.com/tingtingtong/udup-restaurant-backend/internal/repository"
)

// Named time frames accepted by ListByTimeFrame.
const (
	TimeFrameToday   = "today"
	TimeFrameTwoDays = "twoDays"
	TimeFrameWeek    = "week"
	TimeFrameMonth   = "month"
)

// InventoryService handles inventory business logic: derived stock
// fields and the date windows behind the two listing modes.
type InventoryService struct {
	repo repository.InventoryRepository
}

// NewInventoryService creates a new inventory service.
func NewInventoryService(repo repository.InventoryRepository) *InventoryService {
	return &InventoryService{repo: repo}
}

// Add stores a new record. StockRemaining is derived from the inputs
// and DateTime defaults to now; the store assigns the key.
func (s *InventoryService) Add(ctx context.Context, itemName string, stockTaken, totalStock float64) (*model.InventoryItem, error) {
	item := &model.InventoryItem{
		ItemName:       itemName,
		StockTaken:     stockTaken,
		StockRemaining: totalStock - stockTaken,
		TotalStock:     totalStock,
		DateTime:       time.Now(),
	}

	if err := s.repo.Insert(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// ListByTimeFrame returns records with DateTime in [window start, now).
// Unknown frame names fall back to the epoch, returning everything;
// callers relying on that permissive default get the full record set
// rather than an error.
func (s *InventoryService) ListByTimeFrame(ctx context.Context, frame string) ([]model.InventoryItem, error) {
	now := time.Now()
	return s.repo.ListRange(ctx, startOfWindow(frame, now), now)
}

// startOfWindow resolves a named time frame to the lower bound of its
// listing window, anchored at local midnight.
func startOfWindow(frame string, now time.Time) time.Time {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch frame {
	case TimeFrameToday:
		return midnight
	case TimeFrameTwoDays:
		return midnight.AddDate(0, 0, -2)
	case TimeFrameWeek:
		return midnight.AddDate(0, 0, -7)
	case TimeFrameMonth:
		return midnight.AddDate(0, -1, 0)
	default:
		return time.Unix(0, 0)
	}
}

// ListByRange returns records with DateTime in [start, end + 1 day).
// Advancing the end by a day with an exclusive upper bound makes the
// range inclusive of the entire end day.
func (s *InventoryService) ListByRange(ctx context.Context, start, end time.Time) ([]model.InventoryItem, error) {
	return s.repo.ListRange(ctx, start, end.AddDate(0, 0, 1))
}

// Update overwrites the stock fields of a record, recomputing
// StockRemaining. Returns repository.ErrNotFound for unknown ids.
func (s *InventoryService) Update(ctx context.Context, id string, stockTaken, totalStock float64) error {
	return s.repo.Update(ctx, id, stockTaken, totalStock-stockTaken, totalStock)
}

// Delete removes a record. Returns repository.ErrNotFound for unknown
// ids.
func (s *InventoryService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// Count returns the number of inventory records.
func (s *InventoryService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

package service

import (
	"context"
	"testing"
	"time"

	"github.com/tingtingtong/udup-restaurant-backend/internal/model"
)

// fakeInventoryRepo records the arguments of the last call.
type fakeInventoryRepo struct {
	nextKey int64

	lastStart time.Time
	lastEnd   time.Time

	lastUpdateID       string
	lastStockTaken     float64
	lastStockRemaining float64
	lastTotalStock     float64
	lastDeleteID       string
	count              int64
}

func (f *fakeInventoryRepo) Insert(ctx context.Context, item *model.InventoryItem) error {
	f.nextKey++
	item.Key = f.nextKey
	item.ID = "fake-id"
	return nil
}

func (f *fakeInventoryRepo) ListRange(ctx context.Context, start, end time.Time) ([]model.InventoryItem, error) {
	f.lastStart, f.lastEnd = start, end
	return []model.InventoryItem{}, nil
}

func (f *fakeInventoryRepo) Update(ctx context.Context, id string, stockTaken, stockRemaining, totalStock float64) error {
	f.lastUpdateID = id
	f.lastStockTaken = stockTaken
	f.lastStockRemaining = stockRemaining
	f.lastTotalStock = totalStock
	return nil
}

func (f *fakeInventoryRepo) Delete(ctx context.Context, id string) error {
	f.lastDeleteID = id
	return nil
}

func (f *fakeInventoryRepo) Count(ctx context.Context) (int64, error) {
	return f.count, nil
}

func TestAddDerivesStockRemaining(t *testing.T) {
	repo := &fakeInventoryRepo{}
	svc := NewInventoryService(repo)

	item, err := svc.Add(context.Background(), "Rice", 5, 20)
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	if item.StockRemaining != 15 {
		t.Errorf("StockRemaining = %v, want 15", item.StockRemaining)
	}
	if item.Key != 1 {
		t.Errorf("Key = %d, want 1", item.Key)
	}
	if item.DateTime.IsZero() {
		t.Error("DateTime should default to creation time")
	}
}

func TestStartOfWindow(t *testing.T) {
	now := time.Date(2026, time.March, 15, 13, 45, 30, 0, time.Local)
	midnight := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.Local)

	tests := []struct {
		frame string
		want  time.Time
	}{
		{TimeFrameToday, midnight},
		{TimeFrameTwoDays, midnight.AddDate(0, 0, -2)},
		{TimeFrameWeek, midnight.AddDate(0, 0, -7)},
		{TimeFrameMonth, midnight.AddDate(0, -1, 0)},
		{"bogus", time.Unix(0, 0)},
		{"", time.Unix(0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.frame, func(t *testing.T) {
			got := startOfWindow(tt.frame, now)
			if !got.Equal(tt.want) {
				t.Errorf("startOfWindow(%q) = %v, want %v", tt.frame, got, tt.want)
			}
		})
	}
}

func TestListByTimeFrameUnknownReturnsFullSet(t *testing.T) {
	repo := &fakeInventoryRepo{}
	svc := NewInventoryService(repo)

	if _, err := svc.ListByTimeFrame(context.Background(), "bogus"); err != nil {
		t.Fatalf("ListByTimeFrame() error = %v", err)
	}

	if !repo.lastStart.Equal(time.Unix(0, 0)) {
		t.Errorf("window start = %v, want epoch", repo.lastStart)
	}
	if time.Since(repo.lastEnd) > time.Minute {
		t.Errorf("window end = %v, want now", repo.lastEnd)
	}
}

func TestListByRangeIncludesEndDay(t *testing.T) {
	repo := &fakeInventoryRepo{}
	svc := NewInventoryService(repo)

	start := time.Date(2026, time.January, 10, 0, 0, 0, 0, time.Local)
	end := time.Date(2026, time.January, 12, 0, 0, 0, 0, time.Local)

	if _, err := svc.ListByRange(context.Background(), start, end); err != nil {
		t.Fatalf("ListByRange() error = %v", err)
	}

	if !repo.lastStart.Equal(start) {
		t.Errorf("range start = %v, want %v", repo.lastStart, start)
	}
	wantEnd := end.AddDate(0, 0, 1)
	if !repo.lastEnd.Equal(wantEnd) {
		t.Errorf("range end = %v, want %v (end day inclusive)", repo.lastEnd, wantEnd)
	}
}

func TestUpdateRecomputesStockRemaining(t *testing.T) {
	repo := &fakeInventoryRepo{}
	svc := NewInventoryService(repo)

	if err := svc.Update(context.Background(), "abc", 4, 10); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	if repo.lastUpdateID != "abc" {
		t.Errorf("update id = %q, want %q", repo.lastUpdateID, "abc")
	}
	if repo.lastStockRemaining != 6 {
		t.Errorf("stockRemaining = %v, want 6", repo.lastStockRemaining)
	}
	if repo.lastStockTaken != 4 || repo.lastTotalStock != 10 {
		t.Errorf("stockTaken/totalStock = %v/%v, want 4/10", repo.lastStockTaken, repo.lastTotalStock)
	}
}

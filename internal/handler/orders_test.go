package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/tingtingtong/udup-restaurant-backend/internal/model"
)

// fakeOrderRepo is an in-memory OrderRepository.
type fakeOrderRepo struct {
	orders []model.Order
	nextID int
}

func (f *fakeOrderRepo) Insert(ctx context.Context, order *model.Order) error {
	f.nextID++
	order.ID = strconv.Itoa(f.nextID)
	f.orders = append(f.orders, *order)
	return nil
}

func (f *fakeOrderRepo) List(ctx context.Context) ([]model.Order, error) {
	return append([]model.Order{}, f.orders...), nil
}

func (f *fakeOrderRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.orders)), nil
}

func TestOrderCreateDefaultsDate(t *testing.T) {
	repo := &fakeOrderRepo{}
	h := NewOrderHandler(repo)

	rec := postJSON(h.Create, "/api/orders/create",
		`{"items":[{"itemName":"Dosa","quantity":2,"price":60}],"totalAmount":120}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	if body := rec.Body.String(); body != "Order created" {
		t.Errorf("body = %q, want %q", body, "Order created")
	}

	if len(repo.orders) != 1 {
		t.Fatalf("stored orders = %d, want 1", len(repo.orders))
	}
	order := repo.orders[0]
	if order.Date.IsZero() {
		t.Error("order date should default to creation time")
	}
	if order.TotalAmount != 120 || len(order.Items) != 1 {
		t.Errorf("order = %+v, want totalAmount 120 with one line", order)
	}
}

func TestOrderList(t *testing.T) {
	repo := &fakeOrderRepo{}
	h := NewOrderHandler(repo)

	postJSON(h.Create, "/api/orders/create", `{"items":[],"totalAmount":40}`)
	postJSON(h.Create, "/api/orders/create", `{"items":[],"totalAmount":75}`)

	req := httptest.NewRequest(http.MethodGet, "/api/orders/list", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	var orders []model.Order
	if err := json.Unmarshal(rec.Body.Bytes(), &orders); err != nil {
		t.Fatalf("response is not a JSON array: %v", err)
	}
	if len(orders) != 2 {
		t.Errorf("orders = %d, want 2", len(orders))
	}
}

func TestDashboardStats(t *testing.T) {
	inventory := &fakeInventoryRepo{}
	inventory.items = []model.InventoryItem{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	orders := &fakeOrderRepo{orders: []model.Order{{ID: "1"}, {ID: "2"}}}

	h := NewDashboardHandler(inventory, orders)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/stats", nil)
	rec := httptest.NewRecorder()
	h.Stats(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var stats struct {
		InventoryCount int64 `json:"inventoryCount"`
		OrderCount     int64 `json:"orderCount"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &stats); err != nil {
		t.Fatalf("failed to parse stats: %v", err)
	}
	if stats.InventoryCount != 3 || stats.OrderCount != 2 {
		t.Errorf("stats = %+v, want 3 inventory / 2 orders", stats)
	}
}

package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/tingtingtong/udup-restaurant-backend/internal/model"
)

// fakeItemRepo is an in-memory ItemRepository.
type fakeItemRepo struct {
	items  []model.CatalogItem
	nextID int
}

func (f *fakeItemRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	for _, item := range f.items {
		if item.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeItemRepo) Insert(ctx context.Context, item *model.CatalogItem) error {
	f.nextID++
	item.ID = strconv.Itoa(f.nextID)
	f.items = append(f.items, *item)
	return nil
}

func (f *fakeItemRepo) List(ctx context.Context) ([]model.CatalogItem, error) {
	return append([]model.CatalogItem{}, f.items...), nil
}

func TestItemAddAndList(t *testing.T) {
	repo := &fakeItemRepo{}
	h := NewItemHandler(repo)

	rec := postJSON(h.Add, "/api/items/add", `{"name":"Rice"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	if body := rec.Body.String(); body != "Item name added" {
		t.Errorf("body = %q, want %q", body, "Item name added")
	}

	listReq := httptest.NewRequest(http.MethodGet, "/api/items/list", nil)
	listRec := httptest.NewRecorder()
	h.List(listRec, listReq)

	var items []model.CatalogItem
	if err := json.Unmarshal(listRec.Body.Bytes(), &items); err != nil {
		t.Fatalf("response is not a JSON array: %v", err)
	}
	if len(items) != 1 || items[0].Name != "Rice" {
		t.Errorf("items = %+v, want the added name", items)
	}
}

func TestItemAddDuplicateRejected(t *testing.T) {
	repo := &fakeItemRepo{}
	h := NewItemHandler(repo)

	if rec := postJSON(h.Add, "/api/items/add", `{"name":"Rice"}`); rec.Code != http.StatusOK {
		t.Fatalf("first add status = %d", rec.Code)
	}

	rec := postJSON(h.Add, "/api/items/add", `{"name":"Rice"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("duplicate add status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if !strings.Contains(rec.Body.String(), "DUPLICATE_ITEM") {
		t.Errorf("body = %q, want DUPLICATE_ITEM code", rec.Body.String())
	}
	if len(repo.items) != 1 {
		t.Errorf("stored items = %d, want 1", len(repo.items))
	}
}

func TestItemAddRequiresName(t *testing.T) {
	h := NewItemHandler(&fakeItemRepo{})

	rec := postJSON(h.Add, "/api/items/add", `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestItemListEmptyIsBareArray(t *testing.T) {
	h := NewItemHandler(&fakeItemRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/items/list", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Errorf("body = %q, want %q", body, "[]")
	}
}

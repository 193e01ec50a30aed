package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tingtingtong/udup-restaurant-backend/internal/repository"
	"github.com/tingtingtong/udup-restaurant-backend/internal/service"
	"github.com/tingtingtong/udup-restaurant-backend/pkg/apierror"
	"github.com/tingtingtong/udup-restaurant-backend/pkg/response"
)

// InventoryHandler handles inventory-related HTTP requests.
type InventoryHandler struct {
	inventory *service.InventoryService
}

// NewInventoryHandler creates a new inventory handler.
func NewInventoryHandler(inventory *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventory: inventory}
}

// addRequest is the request body for POST /api/inventory/add.
type addRequest struct {
	ItemName   string  `json:"itemName"`
	StockTaken float64 `json:"stockTaken"`
	TotalStock float64 `json:"totalStock"`
}

// updateRequest is the request body for PUT /api/inventory/update/{id}.
type updateRequest struct {
	StockTaken float64 `json:"stockTaken"`
	TotalStock float64 `json:"totalStock"`
}

// Add handles POST /api/inventory/add.
func (h *InventoryHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, apierror.BadRequest("invalid request body"))
		return
	}
	defer r.Body.Close()

	if req.ItemName == "" {
		response.Error(w, apierror.BadRequest("itemName is required"))
		return
	}

	item, err := h.inventory.Add(r.Context(), req.ItemName, req.StockTaken, req.TotalStock)
	if err != nil {
		log.Printf("[InventoryHandler] Add failed: %v", err)
		response.Error(w, apierror.InternalError("failed to add inventory item"))
		return
	}

	log.Printf("[InventoryHandler] Item added: key=%d name=%s", item.Key, item.ItemName)
	response.Text(w, http.StatusOK, "Item added to inventory")
}

// ListByTimeFrame handles GET /api/inventory/list/{timeFrame}.
func (h *InventoryHandler) ListByTimeFrame(w http.ResponseWriter, r *http.Request) {
	frame := chi.URLParam(r, "timeFrame")

	items, err := h.inventory.ListByTimeFrame(r.Context(), frame)
	if err != nil {
		log.Printf("[InventoryHandler] List failed: %v", err)
		response.Error(w, apierror.InternalError("failed to list inventory"))
		return
	}

	response.JSON(w, http.StatusOK, items)
}

// ListByRange handles GET /api/inventory/list?startDate=...&endDate=...
func (h *InventoryHandler) ListByRange(w http.ResponseWriter, r *http.Request) {
	start, err := parseDate(r.URL.Query().Get("startDate"))
	if err != nil {
		response.Error(w, apierror.BadRequest("invalid startDate"))
		return
	}
	end, err := parseDate(r.URL.Query().Get("endDate"))
	if err != nil {
		response.Error(w, apierror.BadRequest("invalid endDate"))
		return
	}

	items, err := h.inventory.ListByRange(r.Context(), start, end)
	if err != nil {
		log.Printf("[InventoryHandler] List failed: %v", err)
		response.Error(w, apierror.InternalError("failed to list inventory"))
		return
	}

	response.JSON(w, http.StatusOK, items)
}

// Update handles PUT /api/inventory/update/{id}.
func (h *InventoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, apierror.BadRequest("invalid request body"))
		return
	}
	defer r.Body.Close()

	err := h.inventory.Update(r.Context(), id, req.StockTaken, req.TotalStock)
	if errors.Is(err, repository.ErrNotFound) {
		response.Error(w, apierror.NotFound("inventory item not found"))
		return
	}
	if err != nil {
		log.Printf("[InventoryHandler] Update failed: %v", err)
		response.Error(w, apierror.InternalError("failed to update inventory item"))
		return
	}

	response.Text(w, http.StatusOK, "Inventory updated")
}

// Delete handles DELETE /api/inventory/delete/{id}.
func (h *InventoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := h.inventory.Delete(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		response.Error(w, apierror.NotFound("inventory item not found"))
		return
	}
	if err != nil {
		log.Printf("[InventoryHandler] Delete failed: %v", err)
		response.Error(w, apierror.InternalError("failed to delete inventory item"))
		return
	}

	response.Text(w, http.StatusOK, "Item deleted from inventory")
}

// parseDate accepts the date-only form used by the original clients and
// full RFC 3339 timestamps.
func parseDate(value string) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02", value, time.Local); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

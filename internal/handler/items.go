package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/tingtingtong/udup-restaurant-backend/internal/model"
	"github.com/tingtingtong/udup-restaurant-backend/internal/repository"
	"github.com/tingtingtong/udup-restaurant-backend/pkg/apierror"
	"github.com/tingtingtong/udup-restaurant-backend/pkg/response"
)

// ItemHandler handles item catalog HTTP requests.
type ItemHandler struct {
	items repository.ItemRepository
}

// NewItemHandler creates a new item catalog handler.
func NewItemHandler(items repository.ItemRepository) *ItemHandler {
	return &ItemHandler{items: items}
}

// addItemRequest is the request body for POST /api/items/add.
type addItemRequest struct {
	Name string `json:"name"`
}

// Add handles POST /api/items/add. The existence pre-check makes the
// duplicate case a deliberate 400 instead of a store failure.
func (h *ItemHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, apierror.BadRequest("invalid request body"))
		return
	}
	defer r.Body.Close()

	if req.Name == "" {
		response.Error(w, apierror.BadRequest("name is required"))
		return
	}

	exists, err := h.items.ExistsByName(r.Context(), req.Name)
	if err != nil {
		log.Printf("[ItemHandler] Lookup failed: %v", err)
		response.Error(w, apierror.InternalError("failed to add item"))
		return
	}
	if exists {
		response.Error(w, apierror.DuplicateItem("Item already exists"))
		return
	}

	item := &model.CatalogItem{Name: req.Name}
	if err := h.items.Insert(r.Context(), item); err != nil {
		log.Printf("[ItemHandler] Insert failed: %v", err)
		response.Error(w, apierror.InternalError("failed to add item"))
		return
	}

	log.Printf("[ItemHandler] Item name added: %s", item.Name)
	response.Text(w, http.StatusOK, "Item name added")
}

// List handles GET /api/items/list.
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.items.List(r.Context())
	if err != nil {
		log.Printf("[ItemHandler] List failed: %v", err)
		response.Error(w, apierror.InternalError("failed to list items"))
		return
	}

	response.JSON(w, http.StatusOK, items)
}

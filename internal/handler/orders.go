package handler

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/tingtingtong/udup-restaurant-backend/internal/model"
	"github.com/tingtingtong/udup-restaurant-backend/internal/repository"
	"github.com/tingtingtong/udup-restaurant-backend/pkg/apierror"
	"github.com/tingtingtong/udup-restaurant-backend/pkg/response"
)

// OrderHandler handles order-related HTTP requests.
type OrderHandler struct {
	orders repository.OrderRepository
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(orders repository.OrderRepository) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// createOrderRequest is the request body for POST /api/orders/create.
type createOrderRequest struct {
	Items       []model.OrderLine `json:"items"`
	TotalAmount float64           `json:"totalAmount"`
}

// Create handles POST /api/orders/create.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, apierror.BadRequest("invalid request body"))
		return
	}
	defer r.Body.Close()

	order := &model.Order{
		Items:       req.Items,
		TotalAmount: req.TotalAmount,
		Date:        time.Now(),
	}
	if err := h.orders.Insert(r.Context(), order); err != nil {
		log.Printf("[OrderHandler] Create failed: %v", err)
		response.Error(w, apierror.InternalError("failed to create order"))
		return
	}

	log.Printf("[OrderHandler] Order created: id=%s total=%.2f", order.ID, order.TotalAmount)
	response.Text(w, http.StatusOK, "Order created")
}

// List handles GET /api/orders/list. Orders come back in store order;
// no sorting is applied.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.List(r.Context())
	if err != nil {
		log.Printf("[OrderHandler] List failed: %v", err)
		response.Error(w, apierror.InternalError("failed to list orders"))
		return
	}

	response.JSON(w, http.StatusOK, orders)
}

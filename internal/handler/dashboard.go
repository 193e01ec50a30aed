package handler

import (
	"log"
	"net/http"

	"github.com/tingtingtong/udup-restaurant-backend/internal/repository"
	"github.com/tingtingtong/udup-restaurant-backend/pkg/apierror"
	"github.com/tingtingtong/udup-restaurant-backend/pkg/response"
)

// DashboardHandler serves aggregate counts for the dashboard.
type DashboardHandler struct {
	inventory repository.InventoryRepository
	orders    repository.OrderRepository
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(inventory repository.InventoryRepository, orders repository.OrderRepository) *DashboardHandler {
	return &DashboardHandler{
		inventory: inventory,
		orders:    orders,
	}
}

// statsResponse is the response body for GET /api/dashboard/stats.
type statsResponse struct {
	InventoryCount int64 `json:"inventoryCount"`
	OrderCount     int64 `json:"orderCount"`
}

// Stats handles GET /api/dashboard/stats. The two counts are separate
// queries; there is no transactional snapshot between them.
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	inventoryCount, err := h.inventory.Count(r.Context())
	if err != nil {
		log.Printf("[DashboardHandler] Inventory count failed: %v", err)
		response.Error(w, apierror.InternalError("failed to load stats"))
		return
	}

	orderCount, err := h.orders.Count(r.Context())
	if err != nil {
		log.Printf("[DashboardHandler] Order count failed: %v", err)
		response.Error(w, apierror.InternalError("failed to load stats"))
		return
	}

	response.JSON(w, http.StatusOK, statsResponse{
		InventoryCount: inventoryCount,
		OrderCount:     orderCount,
	})
}

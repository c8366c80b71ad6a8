package gateway

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	orderdomain "github.com/mandihub/mandi/internal/order/domain"
)

type orderDTO struct {
	ID              string         `json:"id"`
	SellerID        string         `json:"seller_id"`
	VendorID        string         `json:"vendor_id"`
	DeliveryAddress string         `json:"delivery_address"`
	Currency        string         `json:"currency"`
	TotalAmount     int64          `json:"total_amount"`
	Status          string         `json:"status"`
	Items           []orderItemDTO `json:"items,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

type orderItemDTO struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
	Subtotal  int64  `json:"subtotal"`
}

type updateStatusDTO struct {
	Status string `json:"status"`
}

func (s *Server) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := s.orders.ListForActor(r.Context(), userID(r.Context()))
	if err != nil {
		respondAppError(w, err)
		return
	}

	out := make([]orderDTO, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderDTO(o, nil))
	}
	respondJSON(w, http.StatusOK, out)
}

func (s *Server) getOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderID")

	order, err := s.orders.Get(r.Context(), orderID)
	if err != nil {
		respondAppError(w, err)
		return
	}

	items, err := s.orders.Items(r.Context(), orderID)
	if err != nil {
		respondAppError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toOrderDTO(order, items))
}

// PATCH /api/v1/orders/{orderID}/status: vendor-only lifecycle
// transition.
func (s *Server) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req updateStatusDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	next, err := orderdomain.ParseStatus(req.Status)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_status", err.Error())
		return
	}

	order, err := s.orders.UpdateStatus(r.Context(), userID(r.Context()), chi.URLParam(r, "orderID"), next)
	if err != nil {
		respondAppError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toOrderDTO(order, nil))
}

func toOrderDTO(o orderdomain.Order, items []orderdomain.Item) orderDTO {
	dto := orderDTO{
		ID:              o.ID,
		SellerID:        o.SellerID,
		VendorID:        o.VendorID,
		DeliveryAddress: o.DeliveryAddress,
		Currency:        o.Currency,
		TotalAmount:     o.TotalAmount,
		Status:          string(o.Status),
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
	for _, it := range items {
		dto.Items = append(dto.Items, orderItemDTO{
			ID:        it.ID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Subtotal:  it.Subtotal,
		})
	}
	return dto
}

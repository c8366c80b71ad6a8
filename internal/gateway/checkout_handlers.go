package gateway

import (
	"encoding/json"
	"net/http"
)

type checkoutRequestDTO struct {
	DeliveryAddress string `json:"delivery_address"`
}

type checkoutResponseDTO struct {
	OrderIDs []string `json:"order_ids"`
}

// POST /api/v1/checkout
func (s *Server) checkoutCart(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	cart, ok := s.cartFor(w, r)
	if !ok {
		return
	}

	orderIDs, err := s.checkout.Checkout(r.Context(), userID(r.Context()), s.checkoutStore(cart), req.DeliveryAddress)
	if err != nil {
		respondAppError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, checkoutResponseDTO{OrderIDs: orderIDs})
}

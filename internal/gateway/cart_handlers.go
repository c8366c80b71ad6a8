package gateway

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type cartLineDTO struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

type cartDTO struct {
	Lines []cartLineDTO `json:"lines"`
}

type addCartItemDTO struct {
	ProductID string `json:"product_id"`
}

type setQuantityDTO struct {
	Quantity int64 `json:"quantity"`
}

func (s *Server) getCart(w http.ResponseWriter, r *http.Request) {
	cart, ok := s.cartFor(w, r)
	if !ok {
		return
	}

	snap := cart.Snapshot()
	out := cartDTO{Lines: make([]cartLineDTO, 0, len(snap))}
	for _, ln := range snap {
		out.Lines = append(out.Lines, cartLineDTO{ProductID: ln.ProductID, Quantity: ln.Quantity})
	}
	respondJSON(w, http.StatusOK, out)
}

// addCartItem always adds quantity 1; the browse flow has no quantity
// selector and that is a business rule, not an omission.
func (s *Server) addCartItem(w http.ResponseWriter, r *http.Request) {
	var req addCartItemDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.ProductID == "" {
		respondError(w, http.StatusBadRequest, "invalid_request", "product_id is required")
		return
	}

	if _, err := s.catalog.GetProduct(r.Context(), req.ProductID); err != nil {
		respondAppError(w, err)
		return
	}

	cart, ok := s.cartFor(w, r)
	if !ok {
		return
	}
	if err := cart.Add(r.Context(), req.ProductID, 1); err != nil {
		respondAppError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, nil)
}

func (s *Server) setCartQuantity(w http.ResponseWriter, r *http.Request) {
	var req setQuantityDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	cart, ok := s.cartFor(w, r)
	if !ok {
		return
	}
	if err := cart.SetQuantity(r.Context(), chi.URLParam(r, "productID"), req.Quantity); err != nil {
		respondAppError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, nil)
}

func (s *Server) removeCartItem(w http.ResponseWriter, r *http.Request) {
	cart, ok := s.cartFor(w, r)
	if !ok {
		return
	}
	if err := cart.Remove(r.Context(), chi.URLParam(r, "productID")); err != nil {
		respondAppError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, nil)
}

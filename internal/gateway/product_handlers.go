package gateway

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	catalogdomain "github.com/mandihub/mandi/internal/catalog/domain"
)

type productDTO struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Currency      string    `json:"currency"`
	PriceAmount   int64     `json:"price_amount"`
	StockQuantity int64     `json:"stock_quantity"`
	Unit          string    `json:"unit"`
	VendorID      string    `json:"vendor_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type createProductDTO struct {
	Name          string `json:"name"`
	Unit          string `json:"unit"`
	Currency      string `json:"currency"`
	PriceAmount   int64  `json:"price_amount"`
	StockQuantity int64  `json:"stock_quantity"`
}

func (s *Server) listProducts(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	products, err := s.catalog.ListProducts(r.Context(), r.URL.Query().Get("vendor_id"), limit)
	if err != nil {
		respondAppError(w, err)
		return
	}

	out := make([]productDTO, 0, len(products))
	for _, p := range products {
		out = append(out, toProductDTO(p))
	}
	respondJSON(w, http.StatusOK, out)
}

// createProduct lists a new raw material under the calling vendor.
func (s *Server) createProduct(w http.ResponseWriter, r *http.Request) {
	var req createProductDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if req.Currency == "" {
		req.Currency = s.currency
	}

	p, err := s.catalog.CreateProduct(r.Context(), userID(r.Context()),
		req.Name, req.Unit, req.Currency, req.PriceAmount, req.StockQuantity)
	if err != nil {
		respondAppError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, toProductDTO(p))
}

func toProductDTO(p catalogdomain.Product) productDTO {
	return productDTO{
		ID:            p.ID,
		Name:          p.Name,
		Currency:      p.Price.Currency,
		PriceAmount:   p.Price.Amount,
		StockQuantity: p.StockQuantity,
		Unit:          p.Unit,
		VendorID:      p.VendorID,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

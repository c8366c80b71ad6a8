package gateway

import (
	"encoding/json"
	"errors"
	"net/http"

	cartapp "github.com/mandihub/mandi/internal/cart/app"
	catalogapp "github.com/mandihub/mandi/internal/catalog/app"
	checkoutapp "github.com/mandihub/mandi/internal/checkout/app"
	orderapp "github.com/mandihub/mandi/internal/order/app"
	profileapp "github.com/mandihub/mandi/internal/profile/app"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

func respondError(w http.ResponseWriter, status int, code, msg string) {
	respondJSON(w, status, ErrorResponse{Error: msg, Code: code})
}

// respondAppError maps app-layer failures onto HTTP statuses in one
// place so handlers stay thin.
func respondAppError(w http.ResponseWriter, err error) {
	var partial *checkoutapp.PartialCheckoutError
	if errors.As(err, &partial) {
		respondJSON(w, http.StatusConflict, ErrorResponse{
			Error: partial.Error(),
			Code:  "partial_checkout",
			Details: map[string]any{
				"succeeded_vendor_ids": partial.SucceededVendorIDs,
				"failed_vendor_ids":    partial.FailedVendorIDs,
				"order_ids":            partial.OrderIDs,
			},
		})
		return
	}

	switch {
	case errors.Is(err, checkoutapp.ErrInvalidAddress),
		errors.Is(err, checkoutapp.ErrEmptyCart),
		errors.Is(err, cartapp.ErrInvalidQuantity),
		errors.Is(err, catalogapp.ErrInvalidInput),
		errors.Is(err, orderapp.ErrInvalidInput),
		errors.Is(err, profileapp.ErrInvalidInput):
		respondError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, orderapp.ErrUnauthorized):
		respondError(w, http.StatusForbidden, "forbidden", err.Error())
	case errors.Is(err, catalogapp.ErrNotFound),
		errors.Is(err, orderapp.ErrNotFound),
		errors.Is(err, profileapp.ErrNotFound):
		respondError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, orderapp.ErrInvalidTransition):
		respondError(w, http.StatusConflict, "invalid_transition", err.Error())
	default:
		respondError(w, http.StatusInternalServerError, "internal", "internal error")
	}
}

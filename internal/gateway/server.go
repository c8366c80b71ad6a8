// Package gateway is the JSON HTTP surface over the marketplace's app
// services. It owns no business rules; it decodes, delegates, and maps
// errors to statuses.
package gateway

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	cartapp "github.com/mandihub/mandi/internal/cart/app"
	catalogapp "github.com/mandihub/mandi/internal/catalog/app"
	checkoutapp "github.com/mandihub/mandi/internal/checkout/app"
	checkoutadapter "github.com/mandihub/mandi/internal/checkout/infra/adapter"
	orderapp "github.com/mandihub/mandi/internal/order/app"
)

type Server struct {
	carts    *cartapp.Manager
	catalog  *catalogapp.Service
	checkout *checkoutapp.Service
	orders   *orderapp.Service
	currency string
	log      *slog.Logger
}

// NewServer wires the app services behind the HTTP surface. currency is
// the default for product listings that do not name one.
func NewServer(carts *cartapp.Manager, catalog *catalogapp.Service, checkout *checkoutapp.Service, orders *orderapp.Service, currency string, log *slog.Logger) *Server {
	if currency == "" {
		currency = "INR"
	}
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		carts:    carts,
		catalog:  catalog,
		checkout: checkout,
		orders:   orders,
		currency: currency,
		log:      log,
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(requireUser)

		r.Get("/products", s.listProducts)
		r.Post("/products", s.createProduct)

		r.Get("/cart", s.getCart)
		r.Post("/cart/items", s.addCartItem)
		r.Put("/cart/items/{productID}", s.setCartQuantity)
		r.Delete("/cart/items/{productID}", s.removeCartItem)

		r.Post("/checkout", s.checkoutCart)

		r.Get("/orders", s.listOrders)
		r.Get("/orders/{orderID}", s.getOrder)
		r.Patch("/orders/{orderID}/status", s.updateOrderStatus)
	})

	return r
}

// cartFor resolves the caller's cart, reporting the error itself so
// handlers can bail with a plain return.
func (s *Server) cartFor(w http.ResponseWriter, r *http.Request) (*cartapp.Store, bool) {
	cart, err := s.carts.ForUser(r.Context(), userID(r.Context()))
	if err != nil {
		s.log.Error("open cart failed", slog.Any("err", err))
		respondError(w, http.StatusInternalServerError, "internal", "could not open cart")
		return nil, false
	}
	return cart, true
}

func (s *Server) checkoutStore(cart *cartapp.Store) checkoutapp.CartStore {
	return checkoutadapter.NewCartStoreAdapter(cart)
}

package router

import (
	"net/http"

	"medimart/internal/handler"
	"medimart/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Handlers bundles every HTTP handler the router mounts.
type Handlers struct {
	Order        *handler.OrderHandler
	Cart         *handler.CartHandler
	Store        *handler.StoreHandler
	Medicine     *handler.MedicineHandler
	Consultation *handler.ConsultationHandler
}

// New creates a new HTTP router with all routes and middleware configured.
// Catalog browsing and store lookups are public; everything that acts on
// behalf of a user requires a bearer token, and inventory writes
// additionally require the pharmacist role.
func New(h Handlers, jwtSecret string, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Public routes
	r.Get("/api/medicines", h.Medicine.List)
	r.Get("/api/medicines/{id}", h.Medicine.Get)
	r.Get("/api/stores", h.Store.List)
	r.Get("/api/stores/nearby", h.Store.Nearby)
	r.Get("/api/stores/{id}/inventory", h.Store.Inventory)
	r.Get("/api/doctors", h.Consultation.ListDoctors)

	// Authenticated routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(jwtSecret, logger))

		r.Post("/api/orders", h.Order.Place)
		r.Get("/api/orders", h.Order.List)
		r.Put("/api/orders/{id}/cancel", h.Order.Cancel)

		r.Get("/api/cart", h.Cart.Get)
		r.Post("/api/cart/items", h.Cart.AddItem)
		r.Put("/api/cart/items/{id}", h.Cart.UpdateItem)
		r.Delete("/api/cart/items/{id}", h.Cart.RemoveItem)

		r.Post("/api/consultations", h.Consultation.Book)
		r.Get("/api/consultations", h.Consultation.List)
		r.Put("/api/consultations/{id}", h.Consultation.Update)
		r.Put("/api/consultations/{id}/cancel", h.Consultation.Cancel)

		// Pharmacist-only writes
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole("pharmacist", logger))

			r.Post("/api/medicines", h.Medicine.Add)
			r.Post("/api/stores/inventory", h.Store.Stock)
			r.Put("/api/stores/inventory/{id}", h.Store.UpdateInventory)
		})
	})

	return r
}

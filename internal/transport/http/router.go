package httptransport

import (
	"net/http"
	"strconv"

	"restomenu-be/internal/logger"
	ratelimit "restomenu-be/internal/middleware"
	"restomenu-be/internal/menu"
	"restomenu-be/internal/order"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// Handler wires the menu and order services into the REST surface.
type Handler struct {
	menuSvc  menu.Service
	orderSvc order.Service
}

func NewHandler(menuSvc menu.Service, orderSvc order.Service) *Handler {
	return &Handler{menuSvc: menuSvc, orderSvc: orderSvc}
}

// Routes builds the router with the full middleware chain.
func (h *Handler) Routes() *chi.Mux {
	router := chi.NewMux()

	router.Use(logger.RequestIDMiddleware)
	router.Use(logger.LoggingMiddleware)
	router.Use(ratelimit.RateLimitMiddleware)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	})
	router.Use(c.Handler)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	router.Route("/menu", func(r chi.Router) {
		r.Get("/", h.listMenu)
		r.Post("/", h.addMenuItem)
		r.Get("/category/{category}", h.listMenuByCategory)
		r.Get("/{id}", h.getMenuItem)
		r.Put("/{id}", h.updateMenuItem)
		r.Delete("/{id}", h.deleteMenuItem)
	})

	router.Route("/orders", func(r chi.Router) {
		r.Get("/", h.listOrders)
		r.Post("/", h.createOrder)
		r.Get("/{id}", h.getOrder)
		r.Put("/{id}", h.updateOrder)
	})

	return router
}

// pathID parses the {id} parameter; ids start at 1.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

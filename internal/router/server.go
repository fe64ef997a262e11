package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/snapshelf/orderdesk/internal/auth"
	"github.com/snapshelf/orderdesk/internal/handlers"
)

const (
	compressLevel = 5
)

type Middleware interface {
	Handle(h http.Handler) http.Handler
}

type Router struct {
	address string
	router  *chi.Mux
}

func NewRouter(address string, secret []byte, h *handlers.HandlerSet, middlewares ...Middleware) *Router {

	r := chi.NewRouter()

	for _, m := range middlewares {
		r.Use(m.Handle)
	}
	r.Use(middleware.Compress(compressLevel))

	r.Post("/api/admin/login", h.HandleLogin)
	r.Post("/api/admin/refresh", h.HandleRefresh)
	r.Get("/api/admin/catalog", h.HandleGetCatalog)

	authMiddleware := &auth.AuthenticateMiddleware{Secret: secret}

	r.Group(func(r chi.Router) {

		r.Use(authMiddleware.Handle)
		r.Get("/api/admin/orders", h.HandleGetOrders)
		r.Get("/api/admin/orders/stats", h.HandleGetStats)
		r.Get("/api/admin/team", h.HandleGetTeam)
		r.Patch("/api/admin/orders/{orderID}/status", h.HandleUpdateStatus)
		r.Patch("/api/admin/orders/{orderID}/priority", h.HandleUpdatePriority)
		r.Patch("/api/admin/orders/{orderID}/assignee", h.HandleAssign)
		r.Post("/api/admin/orders/{orderID}/cancel", h.HandleCancel)
		r.Post("/api/admin/orders/bulk", h.HandleBulkUpdate)
	})

	return &Router{router: r, address: address}
}

func (r *Router) ListenAndServe() error {
	err := http.ListenAndServe(r.address, r.router)
	return err
}

// Handler exposes the mux for httptest servers.
func (r *Router) Handler() http.Handler {
	return r.router
}

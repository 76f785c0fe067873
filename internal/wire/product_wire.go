package wire

import (
	"organic-store/internal/adaptor"
	"organic-store/internal/data/repository"
	"organic-store/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireProduct(
	r chi.Router,
	productHandler *adaptor.ProductHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// Read-only catalog browsing, no session needed
	r.Get("/api/products", productHandler.List)
	r.Get("/api/products/{id}", productHandler.GetByID)

	// ==================== ADMIN ROUTES ====================
	// Every mutation goes through the admin gate
	r.Group(func(r chi.Router) {
		r.Use(middleware.AdminSession(repo.Session, log))

		r.Post("/api/products", productHandler.Create)
		r.Put("/api/products/{id}", productHandler.Update)
		r.Delete("/api/products/{id}", productHandler.Delete)
	})
}

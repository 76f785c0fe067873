package wire

import (
	"organic-store/internal/adaptor"
	"organic-store/internal/data/repository"
	"organic-store/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/api/send-otp", authHandler.SendOTP)
	r.Post("/api/resend-otp", authHandler.ResendOTP)
	r.Post("/api/verify-otp", authHandler.VerifyOTP)
	r.Post("/api/admin-login", authHandler.AdminLogin)

	// Logout skips the gate on purpose: it succeeds with or without a
	// valid session cookie.
	r.Post("/api/admin/logout", authHandler.AdminLogout)

	// ==================== ADMIN ROUTES ====================
	r.With(middleware.AdminSession(repo.Session, log)).Get("/api/admin/check", authHandler.AdminCheck)
}

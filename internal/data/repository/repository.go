package repository

import (
	"time"

	"organic-store/pkg/database"
	"organic-store/pkg/utils"

	"go.uber.org/zap"
)

type Repository struct {
	OTP     OTPRepository
	Session SessionRepository
	Product ProductRepository
}

func NewRepository(db database.PgxIface, otp utils.OTPConfig, log *zap.Logger) *Repository {
	return &Repository{
		OTP: NewMemoryOTPRepository(
			time.Duration(otp.ExpiryMinutes)*time.Minute,
			otp.MaxAttempts,
			log,
		),
		Session: NewMemorySessionRepository(log),
		Product: NewProductRepository(db, log),
	}
}

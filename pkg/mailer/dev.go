package mailer

import (
	"context"

	"go.uber.org/zap"
)

// DevMailer logs the code instead of sending mail. Used when no mail
// provider is configured.
type DevMailer struct {
	log *zap.Logger
}

func NewDevMailer(log *zap.Logger) *DevMailer {
	return &DevMailer{log: log.With(zap.String("mailer", "dev"))}
}

func (m *DevMailer) SendOTP(ctx context.Context, toEmail, toName, code string) error {
	m.log.Info("OTP email (dev mode, not sent)",
		zap.String("to", toEmail),
		zap.String("name", toName),
		zap.String("code", code),
	)
	return nil
}

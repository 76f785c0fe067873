package mailer

import "context"

// Service delivers a one-time login code to a customer. Delivery failure
// is reported to the caller but never blocks challenge creation.
type Service interface {
	SendOTP(ctx context.Context, toEmail, toName, code string) error
}

package entity

import "time"

// OTPChallenge is one outstanding login code for an email address.
// At most one challenge is live per email; issuing again replaces it.
type OTPChallenge struct {
	Email    string
	Code     string
	Name     string
	IssuedAt time.Time
	Attempts int
}

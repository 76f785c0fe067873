package utils

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
)

// ==================== SESSION TOKEN ====================

// GenerateSessionToken returns an opaque bearer token. UUIDv4 gives a
// negligible collision probability, the session store still refuses
// duplicates outright.
func GenerateSessionToken() string {
	return uuid.New().String()
}

// ==================== OTP ====================

// GenerateOTP returns a 6-digit code in [100000, 999999].
func GenerateOTP() string {
	return fmt.Sprintf("%06d", 100000+rand.Intn(900000))
}

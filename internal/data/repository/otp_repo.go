package repository

import (
	"context"
	"sync"
	"time"

	"organic-store/internal/data/entity"

	"go.uber.org/zap"
)

type OTPVerifyStatus int

const (
	OTPVerifyOK OTPVerifyStatus = iota
	OTPVerifyNotFound
	OTPVerifyExpired
	OTPVerifyTooManyAttempts
	OTPVerifyMismatch
)

// OTPVerifyResult is the outcome of one verification attempt.
// AttemptsRemaining is meaningful only for OTPVerifyMismatch.
type OTPVerifyResult struct {
	Status            OTPVerifyStatus
	AttemptsRemaining int
	Challenge         entity.OTPChallenge
}

type OTPRepository interface {
	Save(ctx context.Context, challenge entity.OTPChallenge)
	Get(ctx context.Context, email string) (entity.OTPChallenge, bool)
	Delete(ctx context.Context, email string)
	Verify(ctx context.Context, email, code string, now time.Time) OTPVerifyResult
}

// memoryOTPRepository holds pending challenges in a process-local map.
// Entries are lost on restart; there is no background sweep, expiry is
// detected lazily when a destination is touched again.
type memoryOTPRepository struct {
	mu          sync.Mutex
	challenges  map[string]*entity.OTPChallenge
	expiry      time.Duration
	maxAttempts int
	log         *zap.Logger
}

func NewMemoryOTPRepository(expiry time.Duration, maxAttempts int, log *zap.Logger) OTPRepository {
	return &memoryOTPRepository{
		challenges:  make(map[string]*entity.OTPChallenge),
		expiry:      expiry,
		maxAttempts: maxAttempts,
		log:         log.With(zap.String("repository", "otp")),
	}
}

func (r *memoryOTPRepository) Save(ctx context.Context, challenge entity.OTPChallenge) {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	// Last writer wins: a new challenge replaces any pending one for the
	// same email, attempts and all.
	r.challenges[challenge.Email] = &challenge
}

func (r *memoryOTPRepository) Get(ctx context.Context, email string) (entity.OTPChallenge, bool) {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	ch, ok := r.challenges[email]
	if !ok {
		return entity.OTPChallenge{}, false
	}
	return *ch, true
}

func (r *memoryOTPRepository) Delete(ctx context.Context, email string) {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.challenges, email)
}

// Verify runs the whole read-check-mutate sequence under one critical
// section so a concurrent issue/resend can never resurrect a deleted
// challenge or lose an attempt increment.
func (r *memoryOTPRepository) Verify(ctx context.Context, email, code string, now time.Time) OTPVerifyResult {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	ch, ok := r.challenges[email]
	if !ok {
		return OTPVerifyResult{Status: OTPVerifyNotFound}
	}

	if now.Sub(ch.IssuedAt) > r.expiry {
		delete(r.challenges, email)
		return OTPVerifyResult{Status: OTPVerifyExpired}
	}

	if ch.Attempts >= r.maxAttempts {
		delete(r.challenges, email)
		r.log.Warn("OTP challenge withdrawn, attempt ceiling reached", zap.String("email", email))
		return OTPVerifyResult{Status: OTPVerifyTooManyAttempts}
	}

	// Exact string comparison, no normalization
	if code != ch.Code {
		ch.Attempts++
		return OTPVerifyResult{
			Status:            OTPVerifyMismatch,
			AttemptsRemaining: r.maxAttempts - ch.Attempts,
		}
	}

	verified := *ch
	delete(r.challenges, email)

	return OTPVerifyResult{Status: OTPVerifyOK, Challenge: verified}
}

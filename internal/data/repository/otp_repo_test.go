package repository

import (
	"context"
	"testing"
	"time"

	"organic-store/internal/data/entity"

	"go.uber.org/zap"
)

func newOTPRepoForTests() OTPRepository {
	return NewMemoryOTPRepository(10*time.Minute, 3, zap.NewNop())
}

func issue(t *testing.T, repo OTPRepository, email, code string, issuedAt time.Time) {
	t.Helper()
	repo.Save(context.Background(), entity.OTPChallenge{
		Email:    email,
		Code:     code,
		Name:     "Ann",
		IssuedAt: issuedAt,
	})
}

func TestOTPRepo_VerifyConsumesChallenge(t *testing.T) {
	repo := newOTPRepoForTests()
	ctx := context.Background()
	now := time.Now()

	issue(t, repo, "a@b.com", "123456", now)

	res := repo.Verify(ctx, "a@b.com", "123456", now)
	if res.Status != OTPVerifyOK {
		t.Fatalf("expected OK, got %v", res.Status)
	}
	if res.Challenge.Name != "Ann" {
		t.Fatalf("expected challenge name carried through, got %q", res.Challenge.Name)
	}

	// Same code again: the challenge is gone
	res = repo.Verify(ctx, "a@b.com", "123456", now)
	if res.Status != OTPVerifyNotFound {
		t.Fatalf("expected NotFound after consume, got %v", res.Status)
	}
}

func TestOTPRepo_VerifyNotFound(t *testing.T) {
	repo := newOTPRepoForTests()

	res := repo.Verify(context.Background(), "nobody@b.com", "123456", time.Now())
	if res.Status != OTPVerifyNotFound {
		t.Fatalf("expected NotFound, got %v", res.Status)
	}
}

func TestOTPRepo_MismatchCountsAttempts(t *testing.T) {
	repo := newOTPRepoForTests()
	ctx := context.Background()
	now := time.Now()

	issue(t, repo, "a@b.com", "123456", now)

	res := repo.Verify(ctx, "a@b.com", "000000", now)
	if res.Status != OTPVerifyMismatch || res.AttemptsRemaining != 2 {
		t.Fatalf("first mismatch: got %v remaining %d", res.Status, res.AttemptsRemaining)
	}

	res = repo.Verify(ctx, "a@b.com", "000000", now)
	if res.Status != OTPVerifyMismatch || res.AttemptsRemaining != 1 {
		t.Fatalf("second mismatch: got %v remaining %d", res.Status, res.AttemptsRemaining)
	}

	// Correct code still works before the ceiling
	res = repo.Verify(ctx, "a@b.com", "123456", now)
	if res.Status != OTPVerifyOK {
		t.Fatalf("expected OK on correct code, got %v", res.Status)
	}
}

func TestOTPRepo_AttemptCeiling(t *testing.T) {
	repo := newOTPRepoForTests()
	ctx := context.Background()
	now := time.Now()

	issue(t, repo, "a@b.com", "123456", now)

	for i := 0; i < 3; i++ {
		res := repo.Verify(ctx, "a@b.com", "000000", now)
		if res.Status != OTPVerifyMismatch {
			t.Fatalf("mismatch %d: got %v", i+1, res.Status)
		}
		if res.AttemptsRemaining != 2-i {
			t.Fatalf("mismatch %d: remaining %d", i+1, res.AttemptsRemaining)
		}
	}

	// Ceiling reached: even the correct code is rejected and the
	// challenge is withdrawn
	res := repo.Verify(ctx, "a@b.com", "123456", now)
	if res.Status != OTPVerifyTooManyAttempts {
		t.Fatalf("expected TooManyAttempts, got %v", res.Status)
	}

	res = repo.Verify(ctx, "a@b.com", "123456", now)
	if res.Status != OTPVerifyNotFound {
		t.Fatalf("expected NotFound after withdrawal, got %v", res.Status)
	}
}

func TestOTPRepo_Expiry(t *testing.T) {
	repo := newOTPRepoForTests()
	ctx := context.Background()
	issuedAt := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	issue(t, repo, "a@b.com", "123456", issuedAt)

	// Just inside the window
	res := repo.Verify(ctx, "a@b.com", "000000", issuedAt.Add(10*time.Minute))
	if res.Status != OTPVerifyMismatch {
		t.Fatalf("expected mismatch inside window, got %v", res.Status)
	}

	// Past the window: correct code is irrelevant
	res = repo.Verify(ctx, "a@b.com", "123456", issuedAt.Add(10*time.Minute+time.Second))
	if res.Status != OTPVerifyExpired {
		t.Fatalf("expected Expired, got %v", res.Status)
	}

	res = repo.Verify(ctx, "a@b.com", "123456", issuedAt.Add(11*time.Minute))
	if res.Status != OTPVerifyNotFound {
		t.Fatalf("expected NotFound after expiry deletion, got %v", res.Status)
	}
}

func TestOTPRepo_SaveReplacesPendingChallenge(t *testing.T) {
	repo := newOTPRepoForTests()
	ctx := context.Background()
	now := time.Now()

	issue(t, repo, "a@b.com", "111111", now.Add(-9*time.Minute))
	repo.Verify(ctx, "a@b.com", "000000", now) // accumulate an attempt

	// Reissue: fresh code, fresh windows
	issue(t, repo, "a@b.com", "222222", now)

	res := repo.Verify(ctx, "a@b.com", "111111", now)
	if res.Status != OTPVerifyMismatch || res.AttemptsRemaining != 2 {
		t.Fatalf("old code after reissue: got %v remaining %d", res.Status, res.AttemptsRemaining)
	}

	res = repo.Verify(ctx, "a@b.com", "222222", now)
	if res.Status != OTPVerifyOK {
		t.Fatalf("new code after reissue: got %v", res.Status)
	}
}

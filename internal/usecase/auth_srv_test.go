package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"organic-store/internal/data/repository"
	"organic-store/pkg/utils"

	"go.uber.org/zap"
)

type sentMail struct {
	To   string
	Name string
	Code string
}

type fakeMailer struct {
	sent []sentMail
	fail bool
}

func (m *fakeMailer) SendOTP(ctx context.Context, toEmail, toName, code string) error {
	if m.fail {
		return fmt.Errorf("smtp connect refused")
	}
	m.sent = append(m.sent, sentMail{To: toEmail, Name: toName, Code: code})
	return nil
}

func newAuthServiceForTests(t *testing.T) (AuthService, *fakeMailer) {
	t.Helper()
	config := &utils.Config{
		Admin: utils.AdminConfig{ID: "8144680437", Password: "Thefarmer@143"},
		OTP:   utils.OTPConfig{ExpiryMinutes: 10, MaxAttempts: 3},
		Email: utils.EmailConfig{SendTimeout: 1},
	}
	repo := repository.NewRepository(nil, config.OTP, zap.NewNop())
	mail := &fakeMailer{}
	return NewAuthService(repo, mail, config, zap.NewNop()), mail
}

func TestAuthService_OTPLoginFlow(t *testing.T) {
	svc, mail := newAuthServiceForTests(t)
	ctx := context.Background()

	if err := svc.SendOTP(ctx, "a@b.com", "482913", "Ann"); err != nil {
		t.Fatalf("send otp: %v", err)
	}
	if len(mail.sent) != 1 || mail.sent[0].Code != "482913" {
		t.Fatalf("expected caller-supplied code delivered verbatim, got %+v", mail.sent)
	}

	// Two wrong codes burn attempts
	var invalid *InvalidCodeError
	if _, err := svc.VerifyOTP(ctx, "a@b.com", "000000"); !errors.As(err, &invalid) || invalid.AttemptsRemaining != 2 {
		t.Fatalf("first mismatch: got %v", err)
	}
	if _, err := svc.VerifyOTP(ctx, "a@b.com", "000000"); !errors.As(err, &invalid) || invalid.AttemptsRemaining != 1 {
		t.Fatalf("second mismatch: got %v", err)
	}

	// Correct code succeeds, mints a non-admin session
	session, err := svc.VerifyOTP(ctx, "a@b.com", "482913")
	if err != nil {
		t.Fatalf("verify otp: %v", err)
	}
	if session.IsAdmin {
		t.Fatal("customer session must not be admin")
	}
	if session.Email != "a@b.com" || session.Name != "Ann" {
		t.Fatalf("unexpected session: %+v", session)
	}
	if session.Token == "" {
		t.Fatal("expected a session token")
	}

	// The challenge is consumed, the same code no longer works
	if _, err := svc.VerifyOTP(ctx, "a@b.com", "482913"); !errors.Is(err, ErrOTPNotFound) {
		t.Fatalf("expected ErrOTPNotFound after consume, got %v", err)
	}

	// The session is live
	if _, ok := svc.CheckSession(ctx, session.Token); !ok {
		t.Fatal("expected session to be live")
	}
}

func TestAuthService_SendOTPFailOpenOnNotify(t *testing.T) {
	svc, mail := newAuthServiceForTests(t)
	ctx := context.Background()
	mail.fail = true

	err := svc.SendOTP(ctx, "a@b.com", "482913", "Ann")

	var notifyErr *NotifyError
	if !errors.As(err, &notifyErr) {
		t.Fatalf("expected NotifyError, got %v", err)
	}

	// The challenge was still issued
	if _, err := svc.VerifyOTP(ctx, "a@b.com", "482913"); err != nil {
		t.Fatalf("expected challenge issued despite notify failure, got %v", err)
	}
}

func TestAuthService_ResendResetsChallenge(t *testing.T) {
	svc, mail := newAuthServiceForTests(t)
	ctx := context.Background()

	if err := svc.ResendOTP(ctx, "a@b.com"); !errors.Is(err, ErrOTPNotFound) {
		t.Fatalf("resend without pending challenge: got %v", err)
	}

	if err := svc.SendOTP(ctx, "a@b.com", "482913", "Ann"); err != nil {
		t.Fatalf("send otp: %v", err)
	}

	// Burn an attempt, then resend
	svc.VerifyOTP(ctx, "a@b.com", "000000")

	if err := svc.ResendOTP(ctx, "a@b.com"); err != nil {
		t.Fatalf("resend: %v", err)
	}
	if len(mail.sent) != 2 {
		t.Fatalf("expected two deliveries, got %d", len(mail.sent))
	}

	newCode := mail.sent[1].Code
	if newCode == "482913" {
		t.Fatal("resend must generate a fresh code")
	}

	// Attempt window restarted: a mismatch reports the full count again
	var invalid *InvalidCodeError
	if _, err := svc.VerifyOTP(ctx, "a@b.com", "000000"); !errors.As(err, &invalid) || invalid.AttemptsRemaining != 2 {
		t.Fatalf("mismatch after resend: got %v", err)
	}

	if _, err := svc.VerifyOTP(ctx, "a@b.com", newCode); err != nil {
		t.Fatalf("verify with resent code: %v", err)
	}
}

func TestAuthService_AdminLoginExactMatchOnly(t *testing.T) {
	svc, _ := newAuthServiceForTests(t)
	ctx := context.Background()

	cases := []struct {
		name     string
		id, pass string
	}{
		{"wrong id", "0000000000", "Thefarmer@143"},
		{"wrong password", "8144680437", "wrong"},
		{"case difference", "8144680437", "thefarmer@143"},
		{"trailing space", "8144680437", "Thefarmer@143 "},
		{"leading space id", " 8144680437", "Thefarmer@143"},
	}

	for _, tc := range cases {
		if _, err := svc.AdminLogin(ctx, tc.id, tc.pass); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("%s: expected ErrInvalidCredentials, got %v", tc.name, err)
		}
	}

	session, err := svc.AdminLogin(ctx, "8144680437", "Thefarmer@143")
	if err != nil {
		t.Fatalf("admin login: %v", err)
	}
	if !session.IsAdmin {
		t.Fatal("admin session must be admin")
	}
	if session.Email != "8144680437" {
		t.Fatalf("expected admin id as identity, got %q", session.Email)
	}
}

func TestAuthService_LogoutEndsSession(t *testing.T) {
	svc, _ := newAuthServiceForTests(t)
	ctx := context.Background()

	session, err := svc.AdminLogin(ctx, "8144680437", "Thefarmer@143")
	if err != nil {
		t.Fatalf("admin login: %v", err)
	}

	svc.Logout(ctx, session.Token)

	if _, ok := svc.CheckSession(ctx, session.Token); ok {
		t.Fatal("expected session to be gone after logout")
	}

	// Logging out again is a no-op
	svc.Logout(ctx, session.Token)
}

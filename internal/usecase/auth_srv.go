package usecase

import (
	"context"
	"fmt"
	"time"

	"organic-store/internal/data/entity"
	"organic-store/internal/data/repository"
	"organic-store/pkg/mailer"
	"organic-store/pkg/utils"

	"go.uber.org/zap"
)

type AuthService interface {
	SendOTP(ctx context.Context, email, code, name string) error
	ResendOTP(ctx context.Context, email string) error
	VerifyOTP(ctx context.Context, email, code string) (*entity.Session, error)
	AdminLogin(ctx context.Context, adminID, password string) (*entity.Session, error)
	CheckSession(ctx context.Context, token string) (*entity.Session, bool)
	Logout(ctx context.Context, token string)
}

type authService struct {
	repo    *repository.Repository
	mailer  mailer.Service
	config  *utils.Config
	log     *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	mail mailer.Service,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		mailer: mail,
		config: config,
		log:    log,
	}
}

// SendOTP stores a challenge for email and hands the code to the mailer.
// The submitted code is stored verbatim when present; an empty code gets
// a server-generated one. A mail failure does not withdraw the challenge.
func (s *authService) SendOTP(ctx context.Context, email, code, name string) error {
	if code == "" {
		code = utils.GenerateOTP()
	}

	challenge := entity.OTPChallenge{
		Email:    email,
		Code:     code,
		Name:     name,
		IssuedAt: time.Now(),
		Attempts: 0,
	}

	// Replaces any pending challenge for this email
	s.repo.OTP.Save(ctx, challenge)

	s.log.Info("OTP challenge issued", zap.String("email", email))

	if err := s.notify(ctx, email, name, code); err != nil {
		s.log.Warn("OTP delivery failed, challenge remains issued",
			zap.Error(err),
			zap.String("email", email),
		)
		return &NotifyError{Err: err}
	}

	return nil
}

// ResendOTP restarts a pending challenge with a fresh server-generated
// code. The expiry and attempt windows restart from now.
func (s *authService) ResendOTP(ctx context.Context, email string) error {
	challenge, ok := s.repo.OTP.Get(ctx, email)
	if !ok {
		return ErrOTPNotFound
	}

	challenge.Code = utils.GenerateOTP()
	challenge.IssuedAt = time.Now()
	challenge.Attempts = 0

	s.repo.OTP.Save(ctx, challenge)

	s.log.Info("OTP challenge reissued", zap.String("email", email))

	if err := s.notify(ctx, email, challenge.Name, challenge.Code); err != nil {
		s.log.Warn("OTP redelivery failed, challenge remains issued",
			zap.Error(err),
			zap.String("email", email),
		)
		return &NotifyError{Err: err}
	}

	return nil
}

func (s *authService) VerifyOTP(ctx context.Context, email, code string) (*entity.Session, error) {
	result := s.repo.OTP.Verify(ctx, email, code, time.Now())

	switch result.Status {
	case repository.OTPVerifyNotFound:
		return nil, ErrOTPNotFound
	case repository.OTPVerifyExpired:
		return nil, ErrOTPExpired
	case repository.OTPVerifyTooManyAttempts:
		return nil, ErrTooManyAttempts
	case repository.OTPVerifyMismatch:
		s.log.Warn("OTP mismatch",
			zap.String("email", email),
			zap.Int("attempts_remaining", result.AttemptsRemaining),
		)
		return nil, &InvalidCodeError{AttemptsRemaining: result.AttemptsRemaining}
	}

	session, err := s.createSession(ctx, entity.KindUser, email, result.Challenge.Name, false)
	if err != nil {
		s.log.Error("Failed to create session after OTP verify",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("failed to create session")
	}

	s.log.Info("User logged in", zap.String("email", email))

	return session, nil
}

// AdminLogin checks the configured identity/secret pair by exact string
// equality. Failures are not counted and there is no lockout.
func (s *authService) AdminLogin(ctx context.Context, adminID, password string) (*entity.Session, error) {
	if adminID != s.config.Admin.ID || password != s.config.Admin.Password {
		s.log.Warn("Admin login rejected")
		return nil, ErrInvalidCredentials
	}

	session, err := s.createSession(ctx, entity.KindAdmin, adminID, "", true)
	if err != nil {
		s.log.Error("Failed to create admin session", zap.Error(err))
		return nil, fmt.Errorf("failed to create session")
	}

	s.log.Info("Admin logged in")

	return session, nil
}

func (s *authService) CheckSession(ctx context.Context, token string) (*entity.Session, bool) {
	session, ok := s.repo.Session.Find(ctx, token)
	if !ok {
		return nil, false
	}
	return &session, true
}

// Logout is idempotent; deleting an unknown token is a no-op.
func (s *authService) Logout(ctx context.Context, token string) {
	s.repo.Session.Delete(ctx, token)
	s.log.Info("Session ended")
}

// ==================== HELPER METHODS ====================

func (s *authService) createSession(ctx context.Context, kind entity.SessionKind, identity, name string, isAdmin bool) (*entity.Session, error) {
	session := entity.Session{
		Token:     utils.GenerateSessionToken(),
		Kind:      kind,
		Email:     identity,
		Name:      name,
		IsAdmin:   isAdmin,
		CreatedAt: time.Now(),
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		return nil, err
	}

	return &session, nil
}

func (s *authService) notify(ctx context.Context, email, name, code string) error {
	timeout := time.Duration(s.config.Email.SendTimeout) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	sendCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	return s.mailer.SendOTP(sendCtx, email, name, code)
}

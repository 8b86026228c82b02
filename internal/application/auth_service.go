package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/checkpass/checkpass-server/internal/domain/entity"
	repo "github.com/checkpass/checkpass-server/internal/domain/repository"
	"github.com/checkpass/checkpass-server/internal/infrastructure/google"
	"github.com/checkpass/checkpass-server/pkg/helpers"
	"github.com/checkpass/checkpass-server/pkg/mailer"
)

var (
	ErrInvalidOrExpiredCode = errors.New("invalid or expired code")
	ErrTooManyAttempts      = errors.New("too many verification attempts")
	ErrMissingCredential    = errors.New("missing credential")
	ErrMissingEmailClaim    = errors.New("credential has no email claim")
	ErrInvalidAssertion     = errors.New("identity verification failed")
)

// CodeSender delivers a verification code to an email address. The send-code
// flow depends only on this contract so tests can observe dispatches.
type CodeSender interface {
	SendVerificationCode(ctx context.Context, to, code string, ttl time.Duration) error
}

// IdentityVerifier exchanges a Google ID token for verified claims.
type IdentityVerifier interface {
	Verify(ctx context.Context, credential string) (*google.Claims, error)
}

// AttemptLimiter bounds failed verifications per email.
type AttemptLimiter interface {
	Bump(ctx context.Context, email string) (bool, error)
	Reset(ctx context.Context, email string)
}

// Publisher enqueues best-effort notification emails.
type Publisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// AuthService implements the passwordless and Google login flows.
type AuthService struct {
	Users    repo.UserRepository
	Codes    repo.CodeRepository
	Sender   CodeSender
	Verifier IdentityVerifier
	JWT      *helpers.JWTManager
	Limiter  AttemptLimiter
	Pub      Publisher
	Logger   *logrus.Logger
	CodeTTL  time.Duration
}

// LoginResult is what both login flows hand back to the HTTP layer.
type LoginResult struct {
	Token string
	User  *entity.User
}

func NewAuthService(users repo.UserRepository, codes repo.CodeRepository, sender CodeSender,
	verifier IdentityVerifier, jwt *helpers.JWTManager, limiter AttemptLimiter,
	pub Publisher, logger *logrus.Logger, codeTTL time.Duration) *AuthService {
	return &AuthService{
		Users:    users,
		Codes:    codes,
		Sender:   sender,
		Verifier: verifier,
		JWT:      jwt,
		Limiter:  limiter,
		Pub:      pub,
		Logger:   logger,
		CodeTTL:  codeTTL,
	}
}

// RequestCode generates a 6-digit code, emails it, and persists it with the
// configured TTL. The email is sent before the row is written: a dispatch
// failure leaves no dangling code behind.
func (s *AuthService) RequestCode(ctx context.Context, email string) error {
	code, err := helpers.GenVerificationCode()
	if err != nil {
		return fmt.Errorf("generate code: %w", err)
	}
	if err := s.Sender.SendVerificationCode(ctx, email, code, s.CodeTTL); err != nil {
		return fmt.Errorf("send code: %w", err)
	}
	vc := &entity.VerificationCode{
		Email:     email,
		Code:      code,
		ExpiresAt: time.Now().Add(s.CodeTTL),
	}
	if err := s.Codes.Create(ctx, vc); err != nil {
		return fmt.Errorf("store code: %w", err)
	}
	return nil
}

// CompleteCodeLogin verifies a submitted code and logs the user in, creating
// the account on first success. Codes are single-use: the matching row is
// consumed atomically, so replaying the same code fails.
func (s *AuthService) CompleteCodeLogin(ctx context.Context, email, code string) (*LoginResult, error) {
	allowed, err := s.Limiter.Bump(ctx, email)
	if err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("email", email).Warn("attempt limiter unavailable")
	}
	if !allowed {
		return nil, ErrTooManyAttempts
	}

	ok, err := s.Codes.Consume(ctx, email, code)
	if err != nil {
		return nil, fmt.Errorf("consume code: %w", err)
	}
	if !ok {
		return nil, ErrInvalidOrExpiredCode
	}

	user, err := s.Users.FindOrCreate(ctx, &entity.User{Email: email})
	if err != nil {
		return nil, fmt.Errorf("find or create user: %w", err)
	}
	return s.finishLogin(ctx, user, "email code")
}

// CompleteGoogleLogin validates a Google ID token, reconciles the verified
// email against the user directory, and logs the user in. Profile fields are
// seeded from the Google claims only on first login.
func (s *AuthService) CompleteGoogleLogin(ctx context.Context, credential string) (*LoginResult, error) {
	if credential == "" {
		return nil, ErrMissingCredential
	}
	claims, err := s.Verifier.Verify(ctx, credential)
	if err != nil {
		if errors.Is(err, google.ErrNoEmailClaim) {
			return nil, ErrMissingEmailClaim
		}
		if s.Logger != nil {
			s.Logger.WithError(err).Warn("google token rejected")
		}
		return nil, ErrInvalidAssertion
	}

	user, err := s.Users.FindOrCreate(ctx, &entity.User{
		Email:     claims.Email,
		FirstName: claims.GivenName,
		LastName:  claims.FamilyName,
		Avatar:    claims.Picture,
	})
	if err != nil {
		return nil, fmt.Errorf("find or create user: %w", err)
	}
	return s.finishLogin(ctx, user, "google")
}

func (s *AuthService) finishLogin(ctx context.Context, user *entity.User, method string) (*LoginResult, error) {
	if err := s.Users.TouchLastLogin(ctx, user.ID); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", user.ID).Warn("touch last_login failed")
	}
	token, _, err := s.JWT.Generate(user.ID)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	s.Limiter.Reset(ctx, user.Email)
	s.notifyLogin(ctx, user, method)
	return &LoginResult{Token: token, User: user}, nil
}

// notifyLogin enqueues a sign-in notification email. Best effort only.
func (s *AuthService) notifyLogin(ctx context.Context, user *entity.User, method string) {
	if s.Pub == nil {
		return
	}
	job := mailer.EmailJob{
		To:       user.Email,
		Template: "login_notification",
		Data:     map[string]any{"Email": user.Email, "Method": method},
	}
	if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", user.ID).Warn("login notification enqueue failed")
	}
}

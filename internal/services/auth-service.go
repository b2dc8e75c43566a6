package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SundayYogurt/alumni_service/internal/clients/google"
	"github.com/SundayYogurt/alumni_service/internal/domain"
	"github.com/SundayYogurt/alumni_service/internal/dto"
	"github.com/SundayYogurt/alumni_service/internal/helper"
	"github.com/SundayYogurt/alumni_service/internal/helper/utils"
	"github.com/SundayYogurt/alumni_service/internal/interfaces"
	"github.com/SundayYogurt/alumni_service/internal/repository"
	"github.com/google/uuid"
)

const (
	minPasswordLen = 8
	resetTokenTTL  = 30 * time.Minute
)

// OAuthProvider is the slice of the Google client the auth flow needs.
type OAuthProvider interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*google.UserInfo, error)
}

type AuthService interface {
	interfaces.IdentityProvider

	GoogleAuthURL(state string) (string, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

type authService struct {
	users    repository.UserRepository
	profiles repository.ProfileRepository
	auth     helper.Auth
	oauth    OAuthProvider
	producer interfaces.ProducerHandler
	log      *slog.Logger
	now      func() time.Time
}

// NewAuthService wires the identity flows. oauth and producer may be nil:
// Google sign-in is then refused and reset emails are not queued.
func NewAuthService(
	users repository.UserRepository,
	profiles repository.ProfileRepository,
	auth helper.Auth,
	oauth OAuthProvider,
	producer interfaces.ProducerHandler,
	logger *slog.Logger,
) AuthService {
	if logger == nil {
		logger = slog.Default()
	}
	return &authService{
		users:    users,
		profiles: profiles,
		auth:     auth,
		oauth:    oauth,
		producer: producer,
		log:      logger,
		now:      time.Now,
	}
}

// newProfile is the near-empty row every account starts with.
func newProfile(id uuid.UUID, email string) *domain.Profile {
	pending := domain.ApprovalPending
	public := true
	return &domain.Profile{
		ID:         id,
		Email:      email,
		IsPublic:   &public,
		CanContact: true,
		Approval:   &pending,
		Onboarded:  false,
	}
}

func (s *authService) SignUp(ctx context.Context, email, password string) (*dto.SessionResponse, error) {
	email, err := utils.NormalizeEmail(email)
	if err != nil {
		return nil, ErrInvalidEmail
	}
	if len(password) < minPasswordLen {
		return nil, ErrWeakPassword
	}

	existing, err := s.users.FindUserByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, ErrEmailTaken
	}
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hashed, err := s.auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hashed,
		Status:       domain.UserStatusActive,
	}
	if err := s.users.CreateUserWithProfile(ctx, user, newProfile(user.ID, email)); err != nil {
		if helper.IsUniqueViolation(err, "") {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Info("user signed up", slog.String("user_id", user.ID.String()))
	return s.session(user)
}

func (s *authService) SignInWithPassword(ctx context.Context, email, password string) (*dto.SessionResponse, error) {
	email, err := utils.NormalizeEmail(email)
	if err != nil || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.users.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := s.auth.VerifyPassword(password, user.PasswordHash); err != nil {
		return nil, ErrInvalidCredentials
	}
	if user.Status != "" && user.Status != domain.UserStatusActive {
		return nil, ErrAccountSuspended
	}

	return s.session(user)
}

func (s *authService) GoogleAuthURL(state string) (string, error) {
	if s.oauth == nil {
		return "", ErrGoogleUnavailable
	}
	return s.oauth.AuthCodeURL(state), nil
}

// ExchangeAuthCodeForSession completes Google sign-in. Accounts are matched
// by Google subject first, then by verified email (linking an existing
// password account); otherwise a new account and profile are created.
func (s *authService) ExchangeAuthCodeForSession(ctx context.Context, code string) (*dto.SessionResponse, error) {
	if s.oauth == nil {
		return nil, ErrGoogleUnavailable
	}
	if strings.TrimSpace(code) == "" {
		return nil, ErrUnauthorized
	}

	info, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		s.log.Warn("google code exchange failed", slog.String("error", err.Error()))
		return nil, ErrUnauthorized
	}
	email, err := utils.NormalizeEmail(info.Email)
	if err != nil {
		return nil, ErrInvalidEmail
	}

	user, err := s.users.FindUserByGoogleSub(ctx, info.Sub)
	switch {
	case err == nil:
	case errors.Is(err, repository.ErrNotFound):
		user, err = s.linkOrCreate(ctx, info, email)
		if err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	if user.Status != "" && user.Status != domain.UserStatusActive {
		return nil, ErrAccountSuspended
	}
	return s.session(user)
}

func (s *authService) linkOrCreate(ctx context.Context, info *google.UserInfo, email string) (*domain.User, error) {
	sub := info.Sub

	user, err := s.users.FindUserByEmail(ctx, email)
	if err == nil {
		if !info.EmailVerified {
			return nil, ErrGoogleUnverified
		}
		user.GoogleSub = &sub
		if err := s.users.SaveUser(ctx, user); err != nil {
			return nil, err
		}
		if err := s.profiles.CreateIfMissing(ctx, newProfile(user.ID, user.Email)); err != nil {
			return nil, fmt.Errorf("ensure profile: %w", err)
		}
		return user, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	user = &domain.User{
		ID:        uuid.New(),
		Email:     email,
		GoogleSub: &sub,
		Status:    domain.UserStatusActive,
	}
	if err := s.users.CreateUserWithProfile(ctx, user, newProfile(user.ID, email)); err != nil {
		if helper.IsUniqueViolation(err, "") {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	s.log.Info("user signed up with google", slog.String("user_id", user.ID.String()))
	return user, nil
}

func (s *authService) GetCurrentUser(token string) (*dto.CurrentUser, error) {
	claims, err := s.auth.VerifyToken(token)
	if err != nil {
		return nil, ErrUnauthorized
	}
	return &dto.CurrentUser{ID: claims.UserID, Email: claims.Email}, nil
}

func (s *authService) UpdatePassword(ctx context.Context, userID uuid.UUID, newPassword string) error {
	if len(newPassword) < minPasswordLen {
		return ErrWeakPassword
	}

	user, err := s.users.FindUserById(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUnauthorized
		}
		return err
	}

	hashed, err := s.auth.HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hashed
	return s.users.SaveUser(ctx, user)
}

// RequestPasswordReset queues a reset email. Unknown addresses succeed
// silently so the endpoint cannot be used to probe for accounts.
func (s *authService) RequestPasswordReset(ctx context.Context, email string) error {
	email, err := utils.NormalizeEmail(email)
	if err != nil {
		return ErrInvalidEmail
	}

	user, err := s.users.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return err
	}

	plain, err := utils.RandomToken(32)
	if err != nil {
		return errors.New("failed to generate reset token")
	}
	exp := s.now().Add(resetTokenTTL)

	user.ResetTokenHash = utils.Sha256Hex(plain)
	user.ResetTokenExpiresAt = &exp
	if err := s.users.SaveUser(ctx, user); err != nil {
		return err
	}

	if s.producer != nil {
		payload, _ := json.Marshal(dto.ResetPasswordEvent{
			UserID:    user.ID.String(),
			Email:     user.Email,
			Token:     plain,
			ExpiresAt: exp.Format(time.RFC3339),
		})
		_ = s.producer.PublishMessage([]byte(dto.EventResetPassword), payload)
	}
	return nil
}

func (s *authService) ResetPassword(ctx context.Context, token, newPassword string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrInvalidResetToken
	}
	if len(newPassword) < minPasswordLen {
		return ErrWeakPassword
	}

	user, err := s.users.FindUserByResetToken(ctx, utils.Sha256Hex(token))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrInvalidResetToken
		}
		return err
	}
	if user.ResetTokenExpiresAt == nil || s.now().After(*user.ResetTokenExpiresAt) {
		return ErrInvalidResetToken
	}

	hashed, err := s.auth.HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hashed
	user.ResetTokenHash = ""
	user.ResetTokenExpiresAt = nil
	return s.users.SaveUser(ctx, user)
}

func (s *authService) session(user *domain.User) (*dto.SessionResponse, error) {
	token, err := s.auth.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, err
	}
	return &dto.SessionResponse{
		Token: token,
		User:  dto.CurrentUser{ID: user.ID, Email: user.Email},
	}, nil
}

package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/SundayYogurt/alumni_service/internal/domain"
	"github.com/SundayYogurt/alumni_service/internal/dto"
	"github.com/SundayYogurt/alumni_service/internal/helper"
	"github.com/SundayYogurt/alumni_service/internal/interfaces"
	"github.com/SundayYogurt/alumni_service/internal/profile"
	"github.com/SundayYogurt/alumni_service/internal/repository"
	"github.com/SundayYogurt/alumni_service/pkg/utils"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

const (
	MaxAvatarBytes  = 5 * 1024 * 1024
	avatarMaxWidth  = 512
	avatarQuality   = 85
	avatarFolderFmt = "alumni/avatars/%s"
)

var avatarExts = map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".webp": true}

type ProfileService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	// RequireOnboarded returns the profile only when onboarding is complete.
	RequireOnboarded(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	SubmitOnboarding(ctx context.Context, userID uuid.UUID, email string, input dto.OnboardingRequest) (*domain.Profile, error)
	UploadAvatar(ctx context.Context, userID uuid.UUID, filename string, data []byte) (string, error)
}

type profileService struct {
	repo     repository.ProfileRepository
	uploader interfaces.Uploader
	producer interfaces.ProducerHandler
	validate *validator.Validate
	log      *slog.Logger
	now      func() time.Time
}

func NewProfileService(
	repo repository.ProfileRepository,
	uploader interfaces.Uploader,
	producer interfaces.ProducerHandler,
	logger *slog.Logger,
) ProfileService {
	if logger == nil {
		logger = slog.Default()
	}
	return &profileService{
		repo:     repo,
		uploader: uploader,
		producer: producer,
		validate: newValidator(time.Now),
		log:      logger,
		now:      time.Now,
	}
}

// Describe bundles a profile with its derived completeness and status.
func Describe(p *domain.Profile) dto.ProfileResponse {
	return dto.ProfileResponse{
		Profile:      p,
		Completeness: profile.Completeness(*p),
		Status:       profile.ResolveStatus(p.Approval, p.IsPublic),
		Visibility:   profile.VisibilityLabel(p.IsPublic),
	}
}

func (s *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	p, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *profileService) RequireOnboarded(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	p, err := s.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			return nil, ErrNotOnboarded
		}
		return nil, err
	}
	if !p.Onboarded {
		return nil, ErrNotOnboarded
	}
	return p, nil
}

// SubmitOnboarding validates and stores the whole editable record. It is the
// only write path for profile fields; approval is left to moderation.
func (s *profileService) SubmitOnboarding(ctx context.Context, userID uuid.UUID, email string, in dto.OnboardingRequest) (*domain.Profile, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}

	in.FullName = strings.TrimSpace(in.FullName)
	in.PhoneE164 = strings.TrimSpace(in.PhoneE164)
	if in.AvatarURL != nil {
		in.AvatarURL = helper.NullableString(*in.AvatarURL)
	}
	if err := s.validate.Struct(in); err != nil {
		return nil, toValidationError(err, s.now())
	}

	before, err := s.repo.FindByID(ctx, userID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if before != nil {
		email = before.Email
	}

	year := in.GraduationYear
	degree, branch, employment := in.Degree, in.Branch, in.EmploymentType
	pending := domain.ApprovalPending
	interests := pq.StringArray(in.Interests)
	if interests == nil {
		interests = pq.StringArray{}
	}

	rec := &domain.Profile{
		ID:                  userID,
		Email:               email,
		FullName:            helper.NullableString(in.FullName),
		AvatarURL:           in.AvatarURL,
		PhoneE164:           helper.NullableString(in.PhoneE164),
		City:                helper.NullableString(in.City),
		Country:             helper.NullableString(in.Country),
		GraduationYear:      &year,
		Degree:              &degree,
		Branch:              &branch,
		EmploymentType:      &employment,
		Company:             helper.NullableString(in.Company),
		Designation:         helper.NullableString(in.Designation),
		Interests:           interests,
		IsPublic:            boolOr(in.IsPublic, true),
		CanContact:          *boolOr(in.CanContact, true),
		Approval:            &pending, // insert only; an existing approval is never overwritten
		Onboarded:           true,
		HasConsentedTerms:   in.HasConsentedTerms,
		HasConsentedPrivacy: in.HasConsentedPrivacy,
	}

	saved, err := s.repo.Upsert(ctx, rec)
	if err != nil {
		return nil, err
	}

	if before == nil || !before.Onboarded {
		s.publishOnboarded(saved)
	}
	return saved, nil
}

func (s *profileService) publishOnboarded(p *domain.Profile) {
	if s.producer == nil {
		return
	}
	payload, err := json.Marshal(dto.ProfileOnboardedEvent{
		UserID:   p.ID.String(),
		Email:    p.Email,
		FullName: strings.TrimSpace(derefString(p.FullName)),
		Approval: string(profile.EffectiveApproval(p.Approval, p.IsPublic)),
	})
	if err != nil {
		return
	}
	_ = s.producer.PublishMessage([]byte(dto.EventProfileOnboarded), payload)
}

// UploadAvatar normalises the image to a small JPEG and stores it. The
// returned URL is saved by the next onboarding submission.
func (s *profileService) UploadAvatar(ctx context.Context, userID uuid.UUID, filename string, data []byte) (string, error) {
	if !avatarExts[strings.ToLower(filepath.Ext(filename))] {
		return "", ErrInvalidAvatar
	}
	if len(data) > MaxAvatarBytes {
		return "", ErrAvatarTooLarge
	}
	if s.uploader == nil {
		return "", ErrUploadUnavailable
	}

	jpg, err := utils.NormalizeToJPG(data, avatarMaxWidth, avatarQuality)
	if err != nil {
		return "", ErrInvalidAvatar
	}

	ctx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	name := fmt.Sprintf("avatar-%d", s.now().Unix())
	url, err := s.uploader.UploadBytes(ctx, fmt.Sprintf(avatarFolderFmt, userID), name, jpg)
	if err != nil {
		s.log.Error("avatar upload failed", slog.String("user_id", userID.String()), slog.String("error", err.Error()))
		return "", fmt.Errorf("upload avatar: %w", err)
	}
	return url, nil
}

func boolOr(b *bool, def bool) *bool {
	if b != nil {
		v := *b
		return &v
	}
	return &def
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

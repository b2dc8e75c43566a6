package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/SundayYogurt/alumni_service/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrNotFound = errors.New("record not found")

// editableColumns is everything the onboarding form owns. approval is
// moderated elsewhere and never appears here.
var editableColumns = []string{
	"email",
	"full_name",
	"avatar_url",
	"phone_e164",
	"city",
	"country",
	"graduation_year",
	"degree",
	"branch",
	"employment_type",
	"company",
	"designation",
	"interests",
	"is_public",
	"can_contact",
	"onboarded",
	"updated_at",
}

type ProfileRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	CreateIfMissing(ctx context.Context, p *domain.Profile) error
	Upsert(ctx context.Context, p *domain.Profile) (*domain.Profile, error)
	QueryDirectory(ctx context.Context) ([]domain.Profile, error)
	ListSuggestions(ctx context.Context, excludeID uuid.UUID, limit int) ([]domain.Profile, error)
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	var p domain.Profile
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}
	return &p, nil
}

// CreateIfMissing inserts the near-empty row written at first sign-in.
// An existing row is left untouched.
func (r *profileRepository) CreateIfMissing(ctx context.Context, p *domain.Profile) error {
	if p == nil {
		return errors.New("nil profile")
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
		Create(p).Error
}

// Upsert replaces every editable column in one statement. Consent flags are
// OR-ed with the stored value so they can be granted but never revoked.
func (r *profileRepository) Upsert(ctx context.Context, p *domain.Profile) (*domain.Profile, error) {
	if p == nil {
		return nil, errors.New("nil profile")
	}

	set := clause.AssignmentColumns(editableColumns)
	set = append(set,
		clause.Assignment{
			Column: clause.Column{Name: "has_consented_terms"},
			Value:  gorm.Expr("profiles.has_consented_terms OR excluded.has_consented_terms"),
		},
		clause.Assignment{
			Column: clause.Column{Name: "has_consented_privacy"},
			Value:  gorm.Expr("profiles.has_consented_privacy OR excluded.has_consented_privacy"),
		},
	)

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoUpdates: set}).
		Create(p).Error
	if err != nil {
		return nil, fmt.Errorf("upsert profile: %w", err)
	}

	// re-read: the stored approval and consents may differ from the input
	return r.FindByID(ctx, p.ID)
}

func (r *profileRepository) QueryDirectory(ctx context.Context) ([]domain.Profile, error) {
	var out []domain.Profile
	err := r.db.WithContext(ctx).
		Where("is_public = ? AND approval = ?", true, domain.ApprovalApproved).
		Order("graduation_year DESC NULLS LAST").
		Order("full_name ASC").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("query directory: %w", err)
	}
	return out, nil
}

func (r *profileRepository) ListSuggestions(ctx context.Context, excludeID uuid.UUID, limit int) ([]domain.Profile, error) {
	var out []domain.Profile
	err := r.db.WithContext(ctx).
		Where("is_public = ? AND approval = ? AND id <> ?", true, domain.ApprovalApproved, excludeID).
		Order("updated_at DESC").
		Limit(limit).
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("list suggestions: %w", err)
	}
	return out, nil
}

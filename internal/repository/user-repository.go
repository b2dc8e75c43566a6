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

type UserRepository interface {
	// CreateUserWithProfile writes the credentials row and the near-empty
	// profile in one transaction. Driver errors are returned unwrapped by
	// gorm so callers can detect unique violations.
	CreateUserWithProfile(ctx context.Context, user *domain.User, profile *domain.Profile) error
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	FindUserById(ctx context.Context, id uuid.UUID) (*domain.User, error)
	FindUserByGoogleSub(ctx context.Context, sub string) (*domain.User, error)
	FindUserByResetToken(ctx context.Context, hash string) (*domain.User, error)
	SaveUser(ctx context.Context, user *domain.User) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUserWithProfile(ctx context.Context, user *domain.User, profile *domain.Profile) error {
	if user == nil || profile == nil {
		return errors.New("nil user or profile")
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		return tx.Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
			Create(profile).Error
	})
}

func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.first(ctx, "email = ?", email)
}

func (r *userRepository) FindUserById(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *userRepository) FindUserByGoogleSub(ctx context.Context, sub string) (*domain.User, error) {
	return r.first(ctx, "google_sub = ?", sub)
}

func (r *userRepository) FindUserByResetToken(ctx context.Context, hash string) (*domain.User, error) {
	if hash == "" {
		return nil, ErrNotFound
	}
	return r.first(ctx, "reset_token_hash = ?", hash)
}

func (r *userRepository) SaveUser(ctx context.Context, user *domain.User) error {
	if user == nil {
		return errors.New("nil user")
	}
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return fmt.Errorf("save user: %w", err)
	}
	return nil
}

func (r *userRepository) first(ctx context.Context, query string, arg any) (*domain.User, error) {
	user := &domain.User{}
	if err := r.db.WithContext(ctx).Where(query, arg).First(user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/SundayYogurt/alumni_service/internal/domain"
	"gorm.io/gorm"
)

type EventRepository interface {
	ListUpcoming(ctx context.Context, from, to time.Time, limit int) ([]domain.Event, error)
}

type JobRepository interface {
	ListLatest(ctx context.Context, limit int) ([]domain.Job, error)
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) ListUpcoming(ctx context.Context, from, to time.Time, limit int) ([]domain.Event, error) {
	var out []domain.Event
	err := r.db.WithContext(ctx).
		Where("starts_at >= ? AND starts_at <= ?", from, to).
		Order("starts_at ASC").
		Limit(limit).
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return out, nil
}

type jobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) ListLatest(ctx context.Context, limit int) ([]domain.Job, error) {
	var out []domain.Job
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	return out, nil
}

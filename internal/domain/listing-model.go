package domain

import (
	"time"

	"github.com/google/uuid"
)

type Event struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title    string    `gorm:"type:varchar(200);not null" json:"title"`
	City     *string   `gorm:"type:varchar(100)" json:"city,omitempty"`
	Venue    *string   `gorm:"type:varchar(200)" json:"venue,omitempty"`
	StartsAt time.Time `gorm:"not null;index" json:"starts_at"`
}

type Job struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title     string    `gorm:"type:varchar(200);not null" json:"title"`
	Company   *string   `gorm:"type:varchar(150)" json:"company,omitempty"`
	Location  *string   `gorm:"type:varchar(150)" json:"location,omitempty"`
	URL       *string   `gorm:"type:text" json:"url,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Movie struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
	Title       string         `gorm:"size:255;not null" json:"title"`
	Director    string         `gorm:"size:255" json:"director"`
	ReleaseDate *time.Time     `json:"release_date"`
	ViewedDate  time.Time      `gorm:"not null" json:"viewed_date"`
	ImageURL    string         `gorm:"size:255" json:"image_url"`
	Description string         `gorm:"type:text" json:"description"`
	Genre       string         `gorm:"size:50" json:"genre"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Reviews     []MovieReview  `gorm:"foreignKey:MovieID" json:"reviews,omitempty"`
}

func (m *Movie) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// MovieReview has no author column; mutation is open to any caller.
type MovieReview struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Review    string    `gorm:"type:text;not null" json:"review"`
	Rating    int       `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	MovieID   uuid.UUID `gorm:"type:uuid;not null;index" json:"movie_id"`
}

func (r *MovieReview) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Book struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Title     string         `gorm:"size:255;not null" json:"title"`
	Author    string         `gorm:"size:255;not null" json:"author"`
	ReadDate  time.Time      `gorm:"not null" json:"read_date"`
	ImageURL  string         `gorm:"size:255" json:"image_url"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Reviews   []BookReview   `gorm:"foreignKey:BookID" json:"reviews,omitempty"`
}

func (b *Book) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// BookReview carries its author, so edits and deletes are owner-gated.
type BookReview struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Review    string    `gorm:"type:text;not null" json:"review"`
	Rating    int       `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	BookID    uuid.UUID `gorm:"type:uuid;not null;index" json:"book_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null" json:"user_id"`
}

func (r *BookReview) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TBRBook is a "to be read" wishlist entry.
type TBRBook struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
}

func (t *TBRBook) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Meal types for a daily diet plan.
const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealSnack     = "snack"
	MealDinner    = "dinner"
)

// DailyDiet is one planned day per user; meals are replaced wholesale
// on every save.
type DailyDiet struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Date      time.Time `gorm:"not null;index:idx_daily_diets_user_date,unique" json:"date"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_daily_diets_user_date,unique" json:"user_id"`
	Meals     []Meal    `gorm:"foreignKey:DietID" json:"meals"`
}

func (d *DailyDiet) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// Meal links a diet slot to a recipe. Planner entries typed by food
// name get a lightweight "daily"-category recipe created on demand.
type Meal struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Type     string    `gorm:"size:20;not null" json:"type"`
	Notes    string    `gorm:"type:text" json:"notes"`
	DietID   uuid.UUID `gorm:"type:uuid;not null;index" json:"diet_id"`
	RecipeID uuid.UUID `gorm:"type:uuid;not null" json:"recipe_id"`
	Recipe   *Recipe   `gorm:"foreignKey:RecipeID" json:"recipe,omitempty"`
}

func (m *Meal) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

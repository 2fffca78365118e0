package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shelfline/backend/internal/models"
)

// DietService maintains daily meal plans. Saving a plan replaces its
// meal set wholesale rather than diffing.
type DietService struct {
	db      *gorm.DB
	recipes *RecipeService
}

func NewDietService(db *gorm.DB, recipes *RecipeService) *DietService {
	return &DietService{db: db, recipes: recipes}
}

var mealTypes = map[string]bool{
	models.MealBreakfast: true,
	models.MealLunch:     true,
	models.MealSnack:     true,
	models.MealDinner:    true,
}

type MealEntry struct {
	Type     string `json:"type"`
	FoodName string `json:"food_name"`
	Notes    string `json:"notes"`
}

type SaveDietRequest struct {
	Date  time.Time   `json:"date"`
	Meals []MealEntry `json:"meals"`
}

// GetDiet returns the caller's plan for the day with meals and their
// recipes nested; ErrNotFound when the day has no plan.
func (s *DietService) GetDiet(ctx context.Context, userID uuid.UUID, date time.Time) (*models.DailyDiet, error) {
	var diet models.DailyDiet
	err := s.db.WithContext(ctx).
		Preload("Meals").
		Preload("Meals.Recipe").
		Where("user_id = ? AND date = ?", userID, dayOf(date)).
		First(&diet).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &diet, nil
}

// SaveDiet finds or creates the plan for (user, date), lazily creates a
// "daily" recipe per novel food name, then swaps in the new meal set.
// The whole replace runs in one transaction so a failure mid-sequence
// cannot strand a diet with no meals.
func (s *DietService) SaveDiet(ctx context.Context, userID uuid.UUID, req *SaveDietRequest) (*models.DailyDiet, error) {
	if req.Date.IsZero() {
		return nil, ErrValidation
	}
	for _, m := range req.Meals {
		if !mealTypes[m.Type] || strings.TrimSpace(m.FoodName) == "" {
			return nil, ErrValidation
		}
	}

	var diet models.DailyDiet
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("user_id = ? AND date = ?", userID, dayOf(req.Date)).First(&diet).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			diet = models.DailyDiet{UserID: userID, Date: dayOf(req.Date)}
			if err := tx.Create(&diet).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		if err := tx.Where("diet_id = ?", diet.ID).Delete(&models.Meal{}).Error; err != nil {
			return err
		}

		for _, entry := range req.Meals {
			recipe, err := s.recipes.findOrCreateDailyRecipe(tx, userID, entry.FoodName)
			if err != nil {
				return err
			}
			meal := models.Meal{
				Type:     entry.Type,
				Notes:    entry.Notes,
				DietID:   diet.ID,
				RecipeID: recipe.ID,
			}
			if err := tx.Create(&meal).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetDiet(ctx, userID, req.Date)
}

// dayOf truncates a timestamp to its calendar day in UTC.
func dayOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

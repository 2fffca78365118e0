package database

import (
	"gorm.io/gorm"

	"github.com/shelfline/backend/internal/models"
)

// Migrate brings the schema up to date for every tracked entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.Book{},
		&models.BookReview{},
		&models.TBRBook{},
		&models.Movie{},
		&models.MovieReview{},
		&models.Recipe{},
		&models.NutritionalValue{},
		&models.Rating{},
		&models.Comment{},
		&models.Message{},
		&models.ShoppingCart{},
		&models.ShoppingItem{},
		&models.DailyDiet{},
		&models.Meal{},
	)
}

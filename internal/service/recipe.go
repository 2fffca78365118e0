package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/shelfline/backend/internal/models"
)

type RecipeService struct {
	db *gorm.DB
}

func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

var recipeCategories = map[string]bool{
	models.CategoryBreakfast: true,
	models.CategoryLunch:     true,
	models.CategoryDinner:    true,
	models.CategorySnack:     true,
	models.CategoryDessert:   true,
	models.CategoryDaily:     true,
}

type CreateRecipeRequest struct {
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Ingredients []string `json:"ingredients"`
	Public      bool     `json:"public"`
}

// RecipeView is a recipe with its computed average rating attached.
type RecipeView struct {
	models.Recipe
	AverageRating float64 `json:"average_rating"`
}

// ListFilter selects exactly one of the three visibility modes.
type ListFilter struct {
	Category   string
	PublicOnly bool
	OwnerID    uuid.UUID // recipes of this user, public or not
	ViewerID   uuid.UUID // caller, excluded from publicOnly results
}

// AverageRating is the mean of all rating values, 0 with no ratings.
// Recomputed on every read rather than cached.
func AverageRating(ratings []models.Rating) float64 {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r.Value
	}
	return float64(sum) / float64(len(ratings))
}

// GetRecipe returns a single recipe when it is public or owned by the
// viewer; everything else reads as not found.
func (s *RecipeService) GetRecipe(ctx context.Context, id, viewerID uuid.UUID) (*RecipeView, error) {
	var recipe models.Recipe
	err := s.db.WithContext(ctx).
		Preload("Nutrition").
		Preload("Comments").
		Preload("Ratings").
		First(&recipe, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if !recipe.Public && recipe.UserID != viewerID {
		return nil, ErrNotFound
	}

	return &RecipeView{Recipe: recipe, AverageRating: AverageRating(recipe.Ratings)}, nil
}

// ListRecipes applies the mode selected by the filter. A filter that
// names neither publicOnly nor an owner returns an empty list.
func (s *RecipeService) ListRecipes(ctx context.Context, f ListFilter) ([]RecipeView, error) {
	query := s.db.WithContext(ctx).Preload("Ratings")
	if f.Category != "" {
		query = query.Where("category = ?", f.Category)
	}

	switch {
	case f.PublicOnly:
		query = query.Where("public = ?", true).Where("user_id <> ?", f.ViewerID)
	case f.OwnerID != uuid.Nil:
		query = query.Where("user_id = ?", f.OwnerID)
	default:
		return []RecipeView{}, nil
	}

	var recipes []models.Recipe
	if err := query.Order("created_at DESC").Find(&recipes).Error; err != nil {
		return nil, err
	}

	views := make([]RecipeView, len(recipes))
	for i, r := range recipes {
		views[i] = RecipeView{Recipe: r, AverageRating: AverageRating(r.Ratings)}
	}
	return views, nil
}

func (s *RecipeService) CreateRecipe(ctx context.Context, userID uuid.UUID, req *CreateRecipeRequest) (*models.Recipe, error) {
	if strings.TrimSpace(req.Title) == "" || !recipeCategories[req.Category] {
		return nil, ErrValidation
	}

	recipe := models.Recipe{
		Title:       req.Title,
		Category:    req.Category,
		Description: req.Description,
		Ingredients: models.StringArray(req.Ingredients),
		Public:      req.Public,
		UserID:      userID,
	}
	if err := s.db.WithContext(ctx).Create(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (s *RecipeService) UpdateRecipe(ctx context.Context, id, actorID uuid.UUID, req *CreateRecipeRequest) (*models.Recipe, error) {
	if strings.TrimSpace(req.Title) == "" || !recipeCategories[req.Category] {
		return nil, ErrValidation
	}

	var recipe models.Recipe
	err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := requireOwner(recipe.UserID, actorID); err != nil {
		return nil, err
	}

	recipe.Title = req.Title
	recipe.Category = req.Category
	recipe.Description = req.Description
	recipe.Ingredients = models.StringArray(req.Ingredients)
	recipe.Public = req.Public
	if err := s.db.WithContext(ctx).Save(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (s *RecipeService) DeleteRecipe(ctx context.Context, id, actorID uuid.UUID) error {
	var recipe models.Recipe
	err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if err := requireOwner(recipe.UserID, actorID); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(&models.Recipe{}, "id = ?", id).Error
}

type NutritionRequest struct {
	Calories float64  `json:"calories"`
	Protein  float64  `json:"protein"`
	Carbs    float64  `json:"carbs"`
	Fats     float64  `json:"fats"`
	Fiber    *float64 `json:"fiber"`
	Sugar    *float64 `json:"sugar"`
	Sodium   *float64 `json:"sodium"`
}

// UpsertNutrition keeps the single nutrition row per recipe current.
// The unique index on recipe_id makes the write atomic.
func (s *RecipeService) UpsertNutrition(ctx context.Context, recipeID, actorID uuid.UUID, req *NutritionRequest) (*models.NutritionalValue, error) {
	var recipe models.Recipe
	err := s.db.WithContext(ctx).First(&recipe, "id = ?", recipeID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := requireOwner(recipe.UserID, actorID); err != nil {
		return nil, err
	}

	nutrition := models.NutritionalValue{
		RecipeID: recipeID,
		Calories: req.Calories,
		Protein:  req.Protein,
		Carbs:    req.Carbs,
		Fats:     req.Fats,
		Fiber:    req.Fiber,
		Sugar:    req.Sugar,
		Sodium:   req.Sodium,
	}
	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "recipe_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"calories", "protein", "carbs", "fats", "fiber", "sugar", "sodium", "updated_at",
		}),
	}).Create(&nutrition).Error
	if err != nil {
		return nil, err
	}

	var stored models.NutritionalValue
	if err := s.db.WithContext(ctx).Where("recipe_id = ?", recipeID).First(&stored).Error; err != nil {
		return nil, err
	}
	return &stored, nil
}

// RateRecipe upserts the caller's rating atomically on the
// (recipe_id, user_id) unique key, so concurrent raters cannot end up
// with duplicate rows.
func (s *RecipeService) RateRecipe(ctx context.Context, recipeID, userID uuid.UUID, value int) (*models.Rating, error) {
	if !validRating(value) {
		return nil, ErrValidation
	}

	var recipe models.Recipe
	err := s.db.WithContext(ctx).First(&recipe, "id = ?", recipeID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	rating := models.Rating{
		RecipeID: recipeID,
		UserID:   userID,
		Value:    value,
	}
	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "recipe_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&rating).Error
	if err != nil {
		return nil, err
	}

	var stored models.Rating
	if err := s.db.WithContext(ctx).Where("recipe_id = ? AND user_id = ?", recipeID, userID).First(&stored).Error; err != nil {
		return nil, err
	}
	return &stored, nil
}

func (s *RecipeService) AddComment(ctx context.Context, recipeID, userID uuid.UUID, text string) (*models.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrValidation
	}

	var recipe models.Recipe
	err := s.db.WithContext(ctx).First(&recipe, "id = ?", recipeID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	comment := models.Comment{
		Text:     text,
		RecipeID: recipeID,
		UserID:   userID,
	}
	if err := s.db.WithContext(ctx).Create(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (s *RecipeService) DeleteComment(ctx context.Context, id, actorID uuid.UUID) error {
	var comment models.Comment
	err := s.db.WithContext(ctx).First(&comment, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if err := requireOwner(comment.UserID, actorID); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(&comment).Error
}

// findOrCreateDailyRecipe backs the meal planner: a food typed by name
// resolves to the user's recipe of that title, or a fresh private
// "daily" recipe when none exists yet.
func (s *RecipeService) findOrCreateDailyRecipe(tx *gorm.DB, userID uuid.UUID, title string) (*models.Recipe, error) {
	var recipe models.Recipe
	err := tx.Where("user_id = ? AND title = ?", userID, title).First(&recipe).Error
	if err == nil {
		return &recipe, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	recipe = models.Recipe{
		Title:       title,
		Category:    models.CategoryDaily,
		Ingredients: models.StringArray{},
		Public:      false,
		UserID:      userID,
		CreatedAt:   time.Now(),
	}
	if err := tx.Create(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

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

type MovieService struct {
	db *gorm.DB
}

func NewMovieService(db *gorm.DB) *MovieService {
	return &MovieService{db: db}
}

type CreateMovieRequest struct {
	Title       string     `json:"title"`
	Director    string     `json:"director"`
	ReleaseDate *time.Time `json:"release_date"`
	ViewedDate  time.Time  `json:"viewed_date"`
	ImageURL    string     `json:"image_url"`
	Description string     `json:"description"`
	Genre       string     `json:"genre"`
}

// UpdateMovieRequest uses pointers so a PATCH can fall back to the
// stored value for every absent field.
type UpdateMovieRequest struct {
	Title       *string    `json:"title"`
	Director    *string    `json:"director"`
	ReleaseDate *time.Time `json:"release_date"`
	ViewedDate  *time.Time `json:"viewed_date"`
	ImageURL    *string    `json:"image_url"`
	Description *string    `json:"description"`
	Genre       *string    `json:"genre"`
}

func (s *MovieService) ListMovies(ctx context.Context, userID uuid.UUID) ([]models.Movie, error) {
	var movies []models.Movie
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("viewed_date DESC").
		Find(&movies).Error
	return movies, err
}

func (s *MovieService) GetMovie(ctx context.Context, id uuid.UUID) (*models.Movie, error) {
	var movie models.Movie
	err := s.db.WithContext(ctx).Preload("Reviews").First(&movie, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

func (s *MovieService) CreateMovie(ctx context.Context, userID uuid.UUID, req *CreateMovieRequest) (*models.Movie, error) {
	if strings.TrimSpace(req.Title) == "" || req.ViewedDate.IsZero() {
		return nil, ErrValidation
	}

	movie := models.Movie{
		Title:       req.Title,
		Director:    req.Director,
		ReleaseDate: req.ReleaseDate,
		ViewedDate:  req.ViewedDate,
		ImageURL:    req.ImageURL,
		Description: req.Description,
		Genre:       req.Genre,
		UserID:      userID,
	}
	if err := s.db.WithContext(ctx).Create(&movie).Error; err != nil {
		return nil, err
	}
	return &movie, nil
}

func (s *MovieService) UpdateMovie(ctx context.Context, id, actorID uuid.UUID, req *UpdateMovieRequest) (*models.Movie, error) {
	movie, err := s.GetMovie(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(movie.UserID, actorID); err != nil {
		return nil, err
	}

	if req.Title != nil {
		movie.Title = *req.Title
	}
	if req.Director != nil {
		movie.Director = *req.Director
	}
	if req.ReleaseDate != nil {
		movie.ReleaseDate = req.ReleaseDate
	}
	if req.ViewedDate != nil {
		movie.ViewedDate = *req.ViewedDate
	}
	if req.ImageURL != nil {
		movie.ImageURL = *req.ImageURL
	}
	if req.Description != nil {
		movie.Description = *req.Description
	}
	if req.Genre != nil {
		movie.Genre = *req.Genre
	}

	if err := s.db.WithContext(ctx).Save(movie).Error; err != nil {
		return nil, err
	}
	return movie, nil
}

func (s *MovieService) DeleteMovie(ctx context.Context, id, actorID uuid.UUID) error {
	movie, err := s.GetMovie(ctx, id)
	if err != nil {
		return err
	}
	if err := requireOwner(movie.UserID, actorID); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(&models.Movie{}, "id = ?", id).Error
}

// Movie reviews carry no author column, so mutation is not ownership-checked.

func (s *MovieService) AddReview(ctx context.Context, movieID uuid.UUID, req *ReviewRequest) (*models.MovieReview, error) {
	if strings.TrimSpace(req.Review) == "" || !validRating(req.Rating) {
		return nil, ErrValidation
	}
	if _, err := s.GetMovie(ctx, movieID); err != nil {
		return nil, err
	}

	review := models.MovieReview{
		Review:  req.Review,
		Rating:  req.Rating,
		MovieID: movieID,
	}
	if err := s.db.WithContext(ctx).Create(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (s *MovieService) UpdateReview(ctx context.Context, id uuid.UUID, req *ReviewRequest) (*models.MovieReview, error) {
	if strings.TrimSpace(req.Review) == "" || !validRating(req.Rating) {
		return nil, ErrValidation
	}

	var review models.MovieReview
	err := s.db.WithContext(ctx).First(&review, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	review.Review = req.Review
	review.Rating = req.Rating
	if err := s.db.WithContext(ctx).Save(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (s *MovieService) DeleteReview(ctx context.Context, id uuid.UUID) error {
	var review models.MovieReview
	err := s.db.WithContext(ctx).First(&review, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(&review).Error
}

package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shelfline/backend/internal/models"
)

// ProfileService handles user profile operations
type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// ProfileView is the user identity plus the editable profile fields.
type ProfileView struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	ImageURL      string    `json:"image_url"`
	Bio           string    `json:"bio"`
	Location      string    `json:"location"`
	Theme         string    `json:"theme"`
	FavoriteGenre string    `json:"favorite_genre"`
}

// UpdateProfileRequest carries optional fields; nil means "keep".
type UpdateProfileRequest struct {
	Name          *string `json:"name"`
	ImageURL      *string `json:"image_url"`
	Bio           *string `json:"bio"`
	Location      *string `json:"location"`
	Theme         *string `json:"theme"`
	FavoriteGenre *string `json:"favorite_genre"`
}

func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileView, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var profile models.UserProfile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		// Older accounts may predate the profile row; fall through with zero values.
	}

	return &ProfileView{
		ID:            user.ID,
		Name:          user.Name,
		Email:         user.Email,
		ImageURL:      user.ImageURL,
		Bio:           profile.Bio,
		Location:      profile.Location,
		Theme:         profile.Theme,
		FavoriteGenre: profile.FavoriteGenre,
	}, nil
}

// UpdateProfile merges the provided fields into the user and profile rows.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *UpdateProfileRequest) (*ProfileView, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.ImageURL != nil {
		user.ImageURL = *req.ImageURL
	}
	if err := s.db.WithContext(ctx).Save(&user).Error; err != nil {
		return nil, err
	}

	var profile models.UserProfile
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		profile = models.UserProfile{UserID: userID}
	} else if err != nil {
		return nil, err
	}

	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.Location != nil {
		profile.Location = *req.Location
	}
	if req.Theme != nil {
		profile.Theme = *req.Theme
	}
	if req.FavoriteGenre != nil {
		profile.FavoriteGenre = *req.FavoriteGenre
	}
	if err := s.db.WithContext(ctx).Save(&profile).Error; err != nil {
		return nil, err
	}

	return s.GetProfile(ctx, userID)
}

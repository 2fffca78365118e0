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

// BookService owns books, book reviews and the TBR wishlist.
type BookService struct {
	db *gorm.DB
}

func NewBookService(db *gorm.DB) *BookService {
	return &BookService{db: db}
}

type CreateBookRequest struct {
	Title    string    `json:"title"`
	Author   string    `json:"author"`
	ReadDate time.Time `json:"read_date"`
	ImageURL string    `json:"image_url"`
}

type UpdateBookRequest struct {
	Title    string    `json:"title"`
	Author   string    `json:"author"`
	ReadDate time.Time `json:"read_date"`
	ImageURL string    `json:"image_url"`
}

func (s *BookService) ListBooks(ctx context.Context, userID uuid.UUID) ([]models.Book, error) {
	var books []models.Book
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("read_date DESC").
		Find(&books).Error
	return books, err
}

func (s *BookService) GetBook(ctx context.Context, id uuid.UUID) (*models.Book, error) {
	var book models.Book
	err := s.db.WithContext(ctx).Preload("Reviews").First(&book, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &book, nil
}

func (s *BookService) CreateBook(ctx context.Context, userID uuid.UUID, req *CreateBookRequest) (*models.Book, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Author) == "" || req.ReadDate.IsZero() {
		return nil, ErrValidation
	}

	book := models.Book{
		Title:    req.Title,
		Author:   req.Author,
		ReadDate: req.ReadDate,
		ImageURL: req.ImageURL,
		UserID:   userID,
	}
	if err := s.db.WithContext(ctx).Create(&book).Error; err != nil {
		return nil, err
	}
	return &book, nil
}

// UpdateBook overwrites the named fields with whatever was supplied.
func (s *BookService) UpdateBook(ctx context.Context, id, actorID uuid.UUID, req *UpdateBookRequest) (*models.Book, error) {
	book, err := s.GetBook(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(book.UserID, actorID); err != nil {
		return nil, err
	}

	book.Title = req.Title
	book.Author = req.Author
	book.ReadDate = req.ReadDate
	book.ImageURL = req.ImageURL
	if err := s.db.WithContext(ctx).Save(book).Error; err != nil {
		return nil, err
	}
	return book, nil
}

func (s *BookService) DeleteBook(ctx context.Context, id, actorID uuid.UUID) error {
	book, err := s.GetBook(ctx, id)
	if err != nil {
		return err
	}
	if err := requireOwner(book.UserID, actorID); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(&models.Book{}, "id = ?", id).Error
}

type ReviewRequest struct {
	Review string `json:"review"`
	Rating int    `json:"rating"`
}

func (s *BookService) AddReview(ctx context.Context, bookID, userID uuid.UUID, req *ReviewRequest) (*models.BookReview, error) {
	if strings.TrimSpace(req.Review) == "" || !validRating(req.Rating) {
		return nil, ErrValidation
	}
	if _, err := s.GetBook(ctx, bookID); err != nil {
		return nil, err
	}

	review := models.BookReview{
		Review: req.Review,
		Rating: req.Rating,
		BookID: bookID,
		UserID: userID,
	}
	if err := s.db.WithContext(ctx).Create(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (s *BookService) UpdateReview(ctx context.Context, id, actorID uuid.UUID, req *ReviewRequest) (*models.BookReview, error) {
	if strings.TrimSpace(req.Review) == "" || !validRating(req.Rating) {
		return nil, ErrValidation
	}

	var review models.BookReview
	err := s.db.WithContext(ctx).First(&review, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := requireOwner(review.UserID, actorID); err != nil {
		return nil, err
	}

	review.Review = req.Review
	review.Rating = req.Rating
	if err := s.db.WithContext(ctx).Save(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (s *BookService) DeleteReview(ctx context.Context, id, actorID uuid.UUID) error {
	var review models.BookReview
	err := s.db.WithContext(ctx).First(&review, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if err := requireOwner(review.UserID, actorID); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(&review).Error
}

func (s *BookService) ListTBR(ctx context.Context, userID uuid.UUID) ([]models.TBRBook, error) {
	var entries []models.TBRBook
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&entries).Error
	return entries, err
}

func (s *BookService) AddTBR(ctx context.Context, userID uuid.UUID, title string) (*models.TBRBook, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrValidation
	}
	entry := models.TBRBook{Title: title, UserID: userID}
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *BookService) DeleteTBR(ctx context.Context, id, actorID uuid.UUID) error {
	var entry models.TBRBook
	err := s.db.WithContext(ctx).First(&entry, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if err := requireOwner(entry.UserID, actorID); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(&entry).Error
}

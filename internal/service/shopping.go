package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shelfline/backend/internal/models"
)

type ShoppingService struct {
	db *gorm.DB
}

func NewShoppingService(db *gorm.DB) *ShoppingService {
	return &ShoppingService{db: db}
}

// GetCart returns the user's cart with items, or an unsaved empty cart
// shape when none exists yet. Carts are only persisted on first add.
func (s *ShoppingService) GetCart(ctx context.Context, userID uuid.UUID) (*models.ShoppingCart, error) {
	var cart models.ShoppingCart
	err := s.db.WithContext(ctx).Preload("Items").Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.ShoppingCart{UserID: userID, Items: []models.ShoppingItem{}}, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

type AddItemRequest struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

func (s *ShoppingService) AddItem(ctx context.Context, userID uuid.UUID, req *AddItemRequest) (*models.ShoppingItem, error) {
	if strings.TrimSpace(req.Name) == "" || req.Quantity < 1 {
		return nil, ErrValidation
	}

	var cart models.ShoppingCart
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cart = models.ShoppingCart{UserID: userID}
		if err := s.db.WithContext(ctx).Create(&cart).Error; err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	item := models.ShoppingItem{
		Name:     req.Name,
		Quantity: req.Quantity,
		CartID:   cart.ID,
	}
	if err := s.db.WithContext(ctx).Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteItem removes an item only when the caller owns the parent cart.
func (s *ShoppingService) DeleteItem(ctx context.Context, itemID, actorID uuid.UUID) error {
	var item models.ShoppingItem
	err := s.db.WithContext(ctx).First(&item, "id = ?", itemID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	var cart models.ShoppingCart
	if err := s.db.WithContext(ctx).First(&cart, "id = ?", item.CartID).Error; err != nil {
		return err
	}
	if err := requireOwner(cart.UserID, actorID); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(&item).Error
}

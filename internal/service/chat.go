package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shelfline/backend/internal/models"
)

// ChatService stores and reads messages; clients poll, the server is
// plain request/response.
type ChatService struct {
	db *gorm.DB
}

func NewChatService(db *gorm.DB) *ChatService {
	return &ChatService{db: db}
}

// ListMessages returns the public room (no peer) or the two-way thread
// between the caller and peer, oldest first.
func (s *ChatService) ListMessages(ctx context.Context, callerID uuid.UUID, peerID *uuid.UUID) ([]models.Message, error) {
	query := s.db.WithContext(ctx)
	if peerID == nil {
		query = query.Where("recipient_id IS NULL")
	} else {
		query = query.Where(
			"(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)",
			callerID, *peerID, *peerID, callerID,
		)
	}

	var messages []models.Message
	err := query.Order("created_at ASC").Find(&messages).Error
	return messages, err
}

func (s *ChatService) SendMessage(ctx context.Context, senderID uuid.UUID, recipientID *uuid.UUID, content string) (*models.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrValidation
	}

	message := models.Message{
		Content:     content,
		SenderID:    senderID,
		RecipientID: recipientID,
	}
	if err := s.db.WithContext(ctx).Create(&message).Error; err != nil {
		return nil, err
	}
	return &message, nil
}

func (s *ChatService) UpdateMessage(ctx context.Context, id, actorID uuid.UUID, content string) (*models.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrValidation
	}

	var message models.Message
	err := s.db.WithContext(ctx).First(&message, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := requireOwner(message.SenderID, actorID); err != nil {
		return nil, err
	}

	message.Content = content
	if err := s.db.WithContext(ctx).Save(&message).Error; err != nil {
		return nil, err
	}
	return &message, nil
}

func (s *ChatService) DeleteMessage(ctx context.Context, id, actorID uuid.UUID) error {
	var message models.Message
	err := s.db.WithContext(ctx).First(&message, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if err := requireOwner(message.SenderID, actorID); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(&message).Error
}

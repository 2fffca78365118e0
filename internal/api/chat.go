package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/shelfline/backend/internal/middleware"
	"github.com/shelfline/backend/internal/service"
)

type ChatHandler struct {
	chatService *service.ChatService
	authService *service.AuthService
	rateLimiter *middleware.RateLimiter
}

func NewChatHandler(chatService *service.ChatService, authService *service.AuthService, rateLimiter *middleware.RateLimiter) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		authService: authService,
		rateLimiter: rateLimiter,
	}
}

func (h *ChatHandler) RegisterRoutes(router *gin.RouterGroup) {
	messages := router.Group("/messages")
	messages.Use(middleware.AuthMiddleware(h.authService))
	{
		messages.GET("", h.ListMessages)
		if h.rateLimiter != nil {
			messages.POST("", h.rateLimiter.RateLimitMiddleware(), h.SendMessage)
		} else {
			messages.POST("", h.SendMessage)
		}
		messages.PATCH("/:id", h.UpdateMessage)
		messages.DELETE("/:id", h.DeleteMessage)
	}
}

// ListMessages serves the public room by default, or the private
// thread with ?peerId=. Clients poll this on an interval.
func (h *ChatHandler) ListMessages(c *gin.Context) {
	callerID, _ := middleware.CurrentUserID(c)

	var peerID *uuid.UUID
	if param := c.Query("peerId"); param != "" {
		parsed, err := uuid.Parse(param)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid peerId"})
			return
		}
		peerID = &parsed
	}

	messages, err := h.chatService.ListMessages(c.Request.Context(), callerID, peerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, messages)
}

type sendMessageRequest struct {
	Content     string     `json:"content"`
	RecipientID *uuid.UUID `json:"recipient_id"`
}

func (h *ChatHandler) SendMessage(c *gin.Context) {
	senderID, _ := middleware.CurrentUserID(c)

	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	message, err := h.chatService.SendMessage(c.Request.Context(), senderID, req.RecipientID, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, message)
}

type editMessageRequest struct {
	Content string `json:"content"`
}

func (h *ChatHandler) UpdateMessage(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid message id"})
		return
	}

	var req editMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	message, err := h.chatService.UpdateMessage(c.Request.Context(), id, userID, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, message)
}

func (h *ChatHandler) DeleteMessage(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid message id"})
		return
	}

	if err := h.chatService.DeleteMessage(c.Request.Context(), id, userID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "message deleted successfully"})
}

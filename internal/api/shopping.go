package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/shelfline/backend/internal/middleware"
	"github.com/shelfline/backend/internal/service"
)

type ShoppingHandler struct {
	shoppingService *service.ShoppingService
	authService     *service.AuthService
}

func NewShoppingHandler(shoppingService *service.ShoppingService, authService *service.AuthService) *ShoppingHandler {
	return &ShoppingHandler{
		shoppingService: shoppingService,
		authService:     authService,
	}
}

func (h *ShoppingHandler) RegisterRoutes(router *gin.RouterGroup) {
	cart := router.Group("/shopping-cart")
	cart.Use(middleware.AuthMiddleware(h.authService))
	{
		cart.GET("", h.GetCart)
		cart.POST("/items", h.AddItem)
		cart.DELETE("/items/:id", h.DeleteItem)
	}
}

func (h *ShoppingHandler) GetCart(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	cart, err := h.shoppingService.GetCart(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, cart)
}

func (h *ShoppingHandler) AddItem(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	var req service.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.shoppingService.AddItem(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

func (h *ShoppingHandler) DeleteItem(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}

	if err := h.shoppingService.DeleteItem(c.Request.Context(), id, userID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "item deleted successfully"})
}

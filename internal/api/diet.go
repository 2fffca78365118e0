package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shelfline/backend/internal/middleware"
	"github.com/shelfline/backend/internal/service"
)

type DietHandler struct {
	dietService *service.DietService
	authService *service.AuthService
}

func NewDietHandler(dietService *service.DietService, authService *service.AuthService) *DietHandler {
	return &DietHandler{
		dietService: dietService,
		authService: authService,
	}
}

func (h *DietHandler) RegisterRoutes(router *gin.RouterGroup) {
	diet := router.Group("/daily-diet")
	diet.Use(middleware.AuthMiddleware(h.authService))
	{
		diet.GET("", h.GetDiet)
		diet.PUT("", h.SaveDiet)
	}
}

func (h *DietHandler) GetDiet(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	dateParam := c.Query("date")
	if dateParam == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date is required"})
		return
	}
	date, err := time.Parse("2006-01-02", dateParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}

	diet, err := h.dietService.GetDiet(c.Request.Context(), userID, date)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, diet)
}

type saveDietRequest struct {
	Date  string              `json:"date" binding:"required"`
	Meals []service.MealEntry `json:"meals"`
}

// SaveDiet replaces the whole meal set for the date.
func (h *DietHandler) SaveDiet(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	var req saveDietRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}

	diet, err := h.dietService.SaveDiet(c.Request.Context(), userID, &service.SaveDietRequest{
		Date:  date,
		Meals: req.Meals,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, diet)
}

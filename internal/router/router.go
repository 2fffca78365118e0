package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/shelfline/backend/internal/api"
)

// Handlers collects every resource handler the router mounts.
type Handlers struct {
	Auth     *api.AuthHandler
	Profile  *api.ProfileHandler
	Book     *api.BookHandler
	Movie    *api.MovieHandler
	Recipe   *api.RecipeHandler
	Chat     *api.ChatHandler
	Shopping *api.ShoppingHandler
	Diet     *api.DietHandler
	Upload   *api.UploadHandler
}

// Setup configures the application routes
func Setup(h Handlers, allowedOrigins []string) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	h.Auth.RegisterRoutes(v1)
	h.Profile.RegisterRoutes(v1)
	h.Book.RegisterRoutes(v1)
	h.Movie.RegisterRoutes(v1)
	h.Recipe.RegisterRoutes(v1)
	h.Chat.RegisterRoutes(v1)
	h.Shopping.RegisterRoutes(v1)
	h.Diet.RegisterRoutes(v1)
	h.Upload.RegisterRoutes(v1)

	return router
}

package server

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/shelfline/backend/config"
	"github.com/shelfline/backend/internal/api"
	"github.com/shelfline/backend/internal/database"
	"github.com/shelfline/backend/internal/middleware"
	"github.com/shelfline/backend/internal/router"
	"github.com/shelfline/backend/internal/service"
)

// Server wires the services and handlers together and owns the HTTP
// listener lifecycle.
type Server struct {
	cfg    *config.Config
	engine *gin.Engine
	http   *http.Server
	db     *gorm.DB
}

// New builds a fully wired server from configuration.
func New(cfg *config.Config) (*Server, error) {
	db, err := database.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}
	if err := database.Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	// Redis only backs rate limiting; run without it when unreachable.
	var redisClient *redis.Client
	if rc, err := database.NewRedisClient(cfg); err != nil {
		log.Printf("redis unavailable, rate limiting disabled: %v", err)
	} else {
		redisClient = rc
	}

	s3Config, err := config.NewS3Config(context.Background(), cfg)
	if err != nil {
		return nil, fmt.Errorf("s3: %w", err)
	}
	// Uploads are served by public URL; make sure the bucket allows reads.
	if err := s3Config.SetupBucketPolicy(context.Background()); err != nil {
		log.Printf("could not apply bucket policy, uploads may not be readable: %v", err)
	}

	authService := service.NewAuthService(db, cfg.JWTSecret)
	profileService := service.NewProfileService(db)
	bookService := service.NewBookService(db)
	movieService := service.NewMovieService(db)
	recipeService := service.NewRecipeService(db)
	chatService := service.NewChatService(db)
	shoppingService := service.NewShoppingService(db)
	dietService := service.NewDietService(db, recipeService)
	storageService := service.NewStorageService(s3Config)

	var messageLimiter, uploadLimiter *middleware.RateLimiter
	if redisClient != nil {
		messageLimiter = middleware.NewMessageRateLimiter(redisClient)
		uploadLimiter = middleware.NewUploadRateLimiter(redisClient)
	}

	engine := router.Setup(router.Handlers{
		Auth:     api.NewAuthHandler(authService),
		Profile:  api.NewProfileHandler(profileService, authService),
		Book:     api.NewBookHandler(bookService, authService),
		Movie:    api.NewMovieHandler(movieService, authService),
		Recipe:   api.NewRecipeHandler(recipeService, authService),
		Chat:     api.NewChatHandler(chatService, authService, messageLimiter),
		Shopping: api.NewShoppingHandler(shoppingService, authService),
		Diet:     api.NewDietHandler(dietService, authService),
		Upload:   api.NewUploadHandler(storageService, authService, uploadLimiter),
	}, []string{"http://localhost:5173"})

	return &Server{
		cfg:    cfg,
		engine: engine,
		db:     db,
	}, nil
}

// Start begins serving and blocks until the listener stops.
func (s *Server) Start() error {
	s.http = &http.Server{
		Addr:    s.cfg.ServerHost + ":" + s.cfg.ServerPort,
		Handler: s.engine,
	}

	log.Printf("Listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http != nil {
		return s.http.Shutdown(ctx)
	}
	return nil
}

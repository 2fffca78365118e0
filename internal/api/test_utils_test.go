package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/shelfline/backend/internal/api"
	"github.com/shelfline/backend/internal/models"
	"github.com/shelfline/backend/internal/router"
	"github.com/shelfline/backend/internal/service"
)

// TestDB holds the test database and services
type TestDB struct {
	DB          *gorm.DB
	AuthService *service.AuthService
}

// SetupTestDB opens an in-memory sqlite database and migrates the full
// schema. Each test gets its own named database.
func SetupTestDB(t *testing.T) *TestDB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.Book{},
		&models.BookReview{},
		&models.TBRBook{},
		&models.Movie{},
		&models.MovieReview{},
		&models.Recipe{},
		&models.NutritionalValue{},
		&models.Rating{},
		&models.Comment{},
		&models.Message{},
		&models.ShoppingCart{},
		&models.ShoppingItem{},
		&models.DailyDiet{},
		&models.Meal{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return &TestDB{
		DB:          db,
		AuthService: service.NewAuthService(db, "test-secret"),
	}
}

// SetupTestRouter builds a full engine over a fresh test database.
func SetupTestRouter(t *testing.T) (*gin.Engine, *TestDB) {
	gin.SetMode(gin.TestMode)
	testDB := SetupTestDB(t)

	profileService := service.NewProfileService(testDB.DB)
	bookService := service.NewBookService(testDB.DB)
	movieService := service.NewMovieService(testDB.DB)
	recipeService := service.NewRecipeService(testDB.DB)
	chatService := service.NewChatService(testDB.DB)
	shoppingService := service.NewShoppingService(testDB.DB)
	dietService := service.NewDietService(testDB.DB, recipeService)

	engine := router.Setup(router.Handlers{
		Auth:     api.NewAuthHandler(testDB.AuthService),
		Profile:  api.NewProfileHandler(profileService, testDB.AuthService),
		Book:     api.NewBookHandler(bookService, testDB.AuthService),
		Movie:    api.NewMovieHandler(movieService, testDB.AuthService),
		Recipe:   api.NewRecipeHandler(recipeService, testDB.AuthService),
		Chat:     api.NewChatHandler(chatService, testDB.AuthService, nil),
		Shopping: api.NewShoppingHandler(shoppingService, testDB.AuthService),
		Diet:     api.NewDietHandler(dietService, testDB.AuthService),
		Upload:   api.NewUploadHandler(&fakeUploader{}, testDB.AuthService, nil),
	}, []string{"http://localhost:5173"})

	return engine, testDB
}

// fakeUploader stands in for the S3-backed storage service.
type fakeUploader struct {
	lastSize int
	fail     bool
}

func (f *fakeUploader) UploadImage(_ context.Context, data []byte) (string, error) {
	if f.fail {
		return "", fmt.Errorf("upload failed")
	}
	f.lastSize = len(data)
	return "https://cdn.example.com/uploads/test.jpg", nil
}

// CreateTestUserAndToken creates a test user and returns their ID and a
// valid JWT token.
func CreateTestUserAndToken(t *testing.T, db *TestDB) (uuid.UUID, string) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("testpassword123"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := models.User{
		Name:         "Test User",
		Email:        fmt.Sprintf("testuser+%s@example.com", uuid.New().String()),
		PasswordHash: string(hashedPassword),
	}
	if err := db.DB.Create(&user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	if err := db.DB.Create(&models.UserProfile{UserID: user.ID}).Error; err != nil {
		t.Fatalf("failed to create test user profile: %v", err)
	}

	token, err := db.AuthService.GenerateToken(user.ID, user.Email)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	return user.ID, token
}

// PerformRequest makes an HTTP request against the test engine.
func PerformRequest(router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}
		req = httptest.NewRequest(method, path, bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

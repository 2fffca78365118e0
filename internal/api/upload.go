package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shelfline/backend/internal/middleware"
	"github.com/shelfline/backend/internal/service"
)

// Uploads above this size are rejected before decoding.
const maxUploadBytes = 10 << 20

type UploadHandler struct {
	uploader    service.Uploader
	authService *service.AuthService
	rateLimiter *middleware.RateLimiter
}

func NewUploadHandler(uploader service.Uploader, authService *service.AuthService, rateLimiter *middleware.RateLimiter) *UploadHandler {
	return &UploadHandler{
		uploader:    uploader,
		authService: authService,
		rateLimiter: rateLimiter,
	}
}

func (h *UploadHandler) RegisterRoutes(router *gin.RouterGroup) {
	upload := router.Group("/upload")
	upload.Use(middleware.AuthMiddleware(h.authService))
	if h.rateLimiter != nil {
		upload.Use(h.rateLimiter.RateLimitMiddleware())
	}
	{
		upload.POST("", h.Upload)
	}
}

// Upload accepts a multipart "file" field and returns the stored URL.
func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file"})
		return
	}
	if fileHeader.Size > maxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		respondError(c, err)
		return
	}

	imageURL, err := h.uploader.UploadImage(c.Request.Context(), data)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"image_url": imageURL})
}

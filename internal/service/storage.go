package service

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"github.com/shelfline/backend/config"
)

// Uploaded images wider than this are downscaled before storage.
const maxUploadWidth = 1600

// Uploader accepts image bytes and returns a public URL.
type Uploader interface {
	UploadImage(ctx context.Context, data []byte) (string, error)
}

// StorageService is the object-storage adapter: decode, downscale,
// re-encode, put to S3.
type StorageService struct {
	s3Config *config.S3Config
}

var _ Uploader = (*StorageService)(nil)

func NewStorageService(s3Config *config.S3Config) *StorageService {
	return &StorageService{s3Config: s3Config}
}

// UploadImage stores the image under uploads/<uuid>.<ext> and returns
// its public URL. Non-image payloads fail with ErrValidation.
func (s *StorageService) UploadImage(ctx context.Context, data []byte) (string, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: not a decodable image", ErrValidation)
	}

	if img.Bounds().Dx() > maxUploadWidth {
		img = imaging.Resize(img, maxUploadWidth, 0, imaging.Lanczos)
	}

	encFormat := imaging.JPEG
	ext := "jpg"
	contentType := "image/jpeg"
	if format == "png" {
		encFormat = imaging.PNG
		ext = "png"
		contentType = "image/png"
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, encFormat); err != nil {
		return "", fmt.Errorf("failed to encode image: %w", err)
	}

	fileName := fmt.Sprintf("uploads/%s.%s", uuid.New().String(), ext)
	_, err = s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(fileName),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	publicURL := fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.s3Config.BucketName, fileName)
	log.Printf("[StorageService] uploaded image: %s", publicURL)

	return publicURL, nil
}

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUploadImageRejectsNonImage(t *testing.T) {
	svc := NewStorageService(nil)

	// Decoding fails before any S3 call is attempted.
	_, err := svc.UploadImage(context.Background(), []byte("definitely not an image"))
	assert.ErrorIs(t, err, ErrValidation)
}

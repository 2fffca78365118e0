package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shelfline/backend/internal/models"
)

func TestAverageRating(t *testing.T) {
	assert.Equal(t, 0.0, AverageRating(nil))
	assert.Equal(t, 0.0, AverageRating([]models.Rating{}))
	assert.Equal(t, 4.0, AverageRating([]models.Rating{{Value: 3}, {Value: 5}}))
	assert.InDelta(t, 3.6667, AverageRating([]models.Rating{{Value: 3}, {Value: 4}, {Value: 4}}), 0.001)
}

func TestValidRating(t *testing.T) {
	for _, v := range []int{1, 3, 5} {
		assert.True(t, validRating(v), "rating %d", v)
	}
	for _, v := range []int{0, 6, -1} {
		assert.False(t, validRating(v), "rating %d", v)
	}
}

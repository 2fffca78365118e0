package api_test

import (
	"encoding/json"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestMovie(t *testing.T, router *gin.Engine, token string) string {
	t.Helper()
	w := PerformRequest(router, "POST", "/api/v1/movies", token, map[string]interface{}{
		"title":       "Stalker",
		"director":    "Andrei Tarkovsky",
		"viewed_date": "2024-06-15T00:00:00Z",
		"genre":       "sci-fi",
	})
	require.Equal(t, 201, w.Code)

	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	return created["id"].(string)
}

func TestCreateMovieRequiresViewedDate(t *testing.T) {
	router, testDB := SetupTestRouter(t)
	_, token := CreateTestUserAndToken(t, testDB)

	w := PerformRequest(router, "POST", "/api/v1/movies", token, map[string]interface{}{
		"title": "Undated",
	})
	assert.Equal(t, 400, w.Code)
}

func TestPatchMovieMergesAbsentFields(t *testing.T) {
	router, testDB := SetupTestRouter(t)
	_, token := CreateTestUserAndToken(t, testDB)

	id := createTestMovie(t, router, token)

	// Only the description is sent; director must survive the patch.
	w := PerformRequest(router, "PATCH", "/api/v1/movies/"+id, token, map[string]interface{}{
		"description": "A guide leads two men through the Zone.",
	})
	require.Equal(t, 200, w.Code)

	var movie map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &movie))
	assert.Equal(t, "Andrei Tarkovsky", movie["director"])
	assert.Equal(t, "A guide leads two men through the Zone.", movie["description"])
}

func TestDeleteMovieAsNonOwner(t *testing.T) {
	router, testDB := SetupTestRouter(t)
	_, ownerToken := CreateTestUserAndToken(t, testDB)
	_, otherToken := CreateTestUserAndToken(t, testDB)

	id := createTestMovie(t, router, ownerToken)

	w := PerformRequest(router, "DELETE", "/api/v1/movies/"+id, otherToken, nil)
	assert.Equal(t, 403, w.Code)
}

func TestMovieReviewHasNoOwnershipCheck(t *testing.T) {
	router, testDB := SetupTestRouter(t)
	_, ownerToken := CreateTestUserAndToken(t, testDB)
	_, otherToken := CreateTestUserAndToken(t, testDB)

	id := createTestMovie(t, router, ownerToken)

	w := PerformRequest(router, "POST", "/api/v1/movies/"+id+"/reviews", ownerToken, map[string]interface{}{
		"review": "Hypnotic.",
		"rating": 5,
	})
	require.Equal(t, 201, w.Code)
	var review map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &review))
	reviewID := review["id"].(string)

	// The schema records no author, so any authenticated user may edit.
	w = PerformRequest(router, "PATCH", "/api/v1/movie-reviews/"+reviewID, otherToken, map[string]interface{}{
		"review": "Hypnotic and slow.",
		"rating": 4,
	})
	assert.Equal(t, 200, w.Code)

	w = PerformRequest(router, "DELETE", "/api/v1/movie-reviews/"+reviewID, otherToken, nil)
	assert.Equal(t, 200, w.Code)
}

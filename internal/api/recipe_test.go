package api_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelfline/backend/internal/models"
)

func createTestRecipe(t *testing.T, router *gin.Engine, token string, public bool) string {
	t.Helper()
	w := PerformRequest(router, "POST", "/api/v1/recipes", token, map[string]interface{}{
		"title":       "Shakshuka",
		"category":    "breakfast",
		"description": "Eggs poached in tomato sauce",
		"ingredients": []string{"eggs", "tomatoes", "paprika"},
		"public":      public,
	})
	require.Equal(t, 201, w.Code)

	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	return created["id"].(string)
}

func TestCreateRecipeRejectsUnknownCategory(t *testing.T) {
	router, testDB := SetupTestRouter(t)
	_, token := CreateTestUserAndToken(t, testDB)

	w := PerformRequest(router, "POST", "/api/v1/recipes", token, map[string]interface{}{
		"title":    "Mystery Dish",
		"category": "midnight",
	})
	assert.Equal(t, 400, w.Code)
}

func TestGetRecipeVisibility(t *testing.T) {
	router, testDB := SetupTestRouter(t)
	_, ownerToken := CreateTestUserAndToken(t, testDB)
	_, otherToken := CreateTestUserAndToken(t, testDB)

	privateID := createTestRecipe(t, router, ownerToken, false)

	// Owner sees their private recipe.
	w := PerformRequest(router, "GET", "/api/v1/recipes?id="+privateID, ownerToken, nil)
	assert.Equal(t, 200, w.Code)

	// Everyone else gets a 404, not a 403, so existence is not leaked.
	w = PerformRequest(router, "GET", "/api/v1/recipes?id="+privateID, otherToken, nil)
	assert.Equal(t, 404, w.Code)
}

func TestListRecipesModes(t *testing.T) {
	router, testDB := SetupTestRouter(t)
	ownerID, ownerToken := CreateTestUserAndToken(t, testDB)
	_, otherToken := CreateTestUserAndToken(t, testDB)

	createTestRecipe(t, router, ownerToken, true)
	createTestRecipe(t, router, ownerToken, false)

	// publicOnly excludes the caller's own recipes.
	w := PerformRequest(router, "GET", "/api/v1/recipes?publicOnly=true&category=breakfast", ownerToken, nil)
	require.Equal(t, 200, w.Code)
	var resp map[string][]map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp["recipes"], 0)

	// Another user sees the public one.
	w = PerformRequest(router, "GET", "/api/v1/recipes?publicOnly=true&category=breakfast", otherToken, nil)
	require.Equal(t, 200, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp["recipes"], 1)

	// The owner listing includes both regardless of the public flag.
	w = PerformRequest(router, "GET", fmt.Sprintf("/api/v1/recipes?userId=%s&category=breakfast", ownerID), ownerToken, nil)
	require.Equal(t, 200, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp["recipes"], 2)

	// No mode selected returns an empty list.
	w = PerformRequest(router, "GET", "/api/v1/recipes", ownerToken, nil)
	require.Equal(t, 200, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp["recipes"], 0)
}

func TestRateRecipeUpsert(t *testing.T) {
	router, testDB := SetupTestRouter(t)
	_, ownerToken := CreateTestUserAndToken(t, testDB)
	raterID, raterToken := CreateTestUserAndToken(t, testDB)

	recipeID := createTestRecipe(t, router, ownerToken, true)

	w := PerformRequest(router, "POST", "/api/v1/ratings", raterToken, map[string]interface{}{
		"recipe_id": recipeID,
		"value":     3,
	})
	require.Equal(t, 200, w.Code)

	w = PerformRequest(router, "POST", "/api/v1/ratings", raterToken, map[string]interface{}{
		"recipe_id": recipeID,
		"value":     5,
	})
	require.Equal(t, 200, w.Code)

	// Exactly one row for the (recipe, user) pair, holding the last value.
	var ratings []models.Rating
	testDB.DB.Where("recipe_id = ? AND user_id = ?", recipeID, raterID).Find(&ratings)
	require.Len(t, ratings, 1)
	assert.Equal(t, 5, ratings[0].Value)
}

func TestRateRecipeRejectsOutOfRange(t *testing.T) {
	router, testDB := SetupTestRouter(t)
	_, token := CreateTestUserAndToken(t, testDB)

	recipeID := createTestRecipe(t, router, token, true)

	for _, value := range []int{0, 6, -1} {
		w := PerformRequest(router, "POST", "/api/v1/ratings", token, map[string]interface{}{
			"recipe_id": recipeID,
			"value":     value,
		})
		assert.Equal(t, 400, w.Code, "value %d should be rejected", value)
	}
}

func TestAverageRating(t *testing.T) {
	router, testDB := SetupTestRouter(t)
	_, ownerToken := CreateTestUserAndToken(t, testDB)
	_, raterA := CreateTestUserAndToken(t, testDB)
	_, raterB := CreateTestUserAndToken(t, testDB)

	recipeID := createTestRecipe(t, router, ownerToken, true)

	// No ratings reads as 0, not null.
	w := PerformRequest(router, "GET", "/api/v1/recipes?id="+recipeID, ownerToken, nil)
	require.Equal(t, 200, w.Code)
	var recipe map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &recipe))
	assert.Equal(t, float64(0), recipe["average_rating"])

	for token, value := range map[string]int{raterA: 3, raterB: 5} {
		w = PerformRequest(router, "POST", "/api/v1/ratings", token, map[string]interface{}{
			"recipe_id": recipeID,
			"value":     value,
		})
		require.Equal(t, 200, w.Code)
	}

	w = PerformRequest(router, "GET", "/api/v1/recipes?id="+recipeID, ownerToken, nil)
	require.Equal(t, 200, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &recipe))
	assert.Equal(t, float64(4), recipe["average_rating"])
}

func TestUpsertNutrition(t *testing.T) {
	router, testDB := SetupTestRouter(t)
	_, token := CreateTestUserAndToken(t, testDB)

	recipeID := createTestRecipe(t, router, token, false)

	w := PerformRequest(router, "PUT", "/api/v1/recipes/"+recipeID+"/nutrition", token, map[string]interface{}{
		"calories": 320.0,
		"protein":  14.0,
		"carbs":    18.0,
		"fats":     21.0,
	})
	require.Equal(t, 200, w.Code)

	// A second save updates the row in place.
	w = PerformRequest(router, "PUT", "/api/v1/recipes/"+recipeID+"/nutrition", token, map[string]interface{}{
		"calories": 280.0,
		"protein":  14.0,
		"carbs":    18.0,
		"fats":     19.0,
	})
	require.Equal(t, 200, w.Code)

	var rows []models.NutritionalValue
	testDB.DB.Where("recipe_id = ?", recipeID).Find(&rows)
	require.Len(t, rows, 1)
	assert.Equal(t, 280.0, rows[0].Calories)
}

func TestNutritionOwnerOnly(t *testing.T) {
	router, testDB := SetupTestRouter(t)
	_, ownerToken := CreateTestUserAndToken(t, testDB)
	_, otherToken := CreateTestUserAndToken(t, testDB)

	recipeID := createTestRecipe(t, router, ownerToken, true)

	w := PerformRequest(router, "PUT", "/api/v1/recipes/"+recipeID+"/nutrition", otherToken, map[string]interface{}{
		"calories": 1.0, "protein": 1.0, "carbs": 1.0, "fats": 1.0,
	})
	assert.Equal(t, 403, w.Code)
}

func TestComments(t *testing.T) {
	router, testDB := SetupTestRouter(t)
	_, ownerToken := CreateTestUserAndToken(t, testDB)
	_, commenterToken := CreateTestUserAndToken(t, testDB)

	recipeID := createTestRecipe(t, router, ownerToken, true)

	w := PerformRequest(router, "POST", "/api/v1/recipes/"+recipeID+"/comments", commenterToken, map[string]interface{}{
		"text": "Weeknight favorite.",
	})
	require.Equal(t, 201, w.Code)
	var comment map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &comment))
	commentID := comment["id"].(string)

	// Even the recipe owner cannot delete someone else's comment.
	w = PerformRequest(router, "DELETE", "/api/v1/comments/"+commentID, ownerToken, nil)
	assert.Equal(t, 403, w.Code)

	w = PerformRequest(router, "DELETE", "/api/v1/comments/"+commentID, commenterToken, nil)
	assert.Equal(t, 200, w.Code)
}

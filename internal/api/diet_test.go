package api_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelfline/backend/internal/models"
)

func TestSaveAndGetDailyDiet(t *testing.T) {
	router, testDB := SetupTestRouter(t)
	userID, token := CreateTestUserAndToken(t, testDB)

	w := PerformRequest(router, "PUT", "/api/v1/daily-diet", token, map[string]interface{}{
		"date": "2024-07-01",
		"meals": []map[string]interface{}{
			{"type": "breakfast", "food_name": "Oatmeal"},
			{"type": "dinner", "food_name": "Lentil soup", "notes": "double batch"},
		},
	})
	require.Equal(t, 200, w.Code)

	w = PerformRequest(router, "GET", "/api/v1/daily-diet?date=2024-07-01", token, nil)
	require.Equal(t, 200, w.Code)

	var diet map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &diet))
	meals := diet["meals"].([]interface{})
	assert.Len(t, meals, 2)

	// Each food name gets a backing recipe in the "daily" category.
	var recipes []models.Recipe
	require.NoError(t, testDB.DB.Where("user_id = ? AND category = ?", userID, models.CategoryDaily).Find(&recipes).Error)
	assert.Len(t, recipes, 2)
}

func TestSaveDietReplacesPriorMeals(t *testing.T) {
	router, testDB := SetupTestRouter(t)
	_, token := CreateTestUserAndToken(t, testDB)

	w := PerformRequest(router, "PUT", "/api/v1/daily-diet", token, map[string]interface{}{
		"date": "2024-07-02",
		"meals": []map[string]interface{}{
			{"type": "breakfast", "food_name": "Toast"},
			{"type": "lunch", "food_name": "Salad"},
			{"type": "dinner", "food_name": "Pasta"},
		},
	})
	require.Equal(t, 200, w.Code)

	// Resubmitting the day with only lunch must drop breakfast and dinner.
	w = PerformRequest(router, "PUT", "/api/v1/daily-diet", token, map[string]interface{}{
		"date": "2024-07-02",
		"meals": []map[string]interface{}{
			{"type": "lunch", "food_name": "Ramen"},
		},
	})
	require.Equal(t, 200, w.Code)

	var diet map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &diet))
	meals := diet["meals"].([]interface{})
	require.Len(t, meals, 1)
	meal := meals[0].(map[string]interface{})
	assert.Equal(t, "lunch", meal["type"])

	var count int64
	require.NoError(t, testDB.DB.Model(&models.Meal{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSaveDietDailyRecipeReuse(t *testing.T) {
	router, testDB := SetupTestRouter(t)
	userID, token := CreateTestUserAndToken(t, testDB)

	for _, date := range []string{"2024-07-03", "2024-07-04"} {
		w := PerformRequest(router, "PUT", "/api/v1/daily-diet", token, map[string]interface{}{
			"date": date,
			"meals": []map[string]interface{}{
				{"type": "breakfast", "food_name": "Oatmeal"},
			},
		})
		require.Equal(t, 200, w.Code)
	}

	// The same food name on two days reuses one daily recipe.
	var count int64
	require.NoError(t, testDB.DB.Model(&models.Recipe{}).
		Where("user_id = ? AND category = ?", userID, models.CategoryDaily).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSaveDietRejectsUnknownMealType(t *testing.T) {
	router, testDB := SetupTestRouter(t)
	_, token := CreateTestUserAndToken(t, testDB)

	w := PerformRequest(router, "PUT", "/api/v1/daily-diet", token, map[string]interface{}{
		"date": "2024-07-05",
		"meals": []map[string]interface{}{
			{"type": "brunch", "food_name": "Eggs"},
		},
	})
	assert.Equal(t, 400, w.Code)
}

func TestGetDietMissingDay(t *testing.T) {
	router, testDB := SetupTestRouter(t)
	_, token := CreateTestUserAndToken(t, testDB)

	w := PerformRequest(router, "GET", "/api/v1/daily-diet?date=1999-01-01", token, nil)
	assert.Equal(t, 404, w.Code)
}

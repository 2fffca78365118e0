package api_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelfline/backend/internal/models"
)

func TestGetEmptyCart(t *testing.T) {
	router, testDB := SetupTestRouter(t)
	_, token := CreateTestUserAndToken(t, testDB)

	w := PerformRequest(router, "GET", "/api/v1/shopping-cart", token, nil)
	require.Equal(t, 200, w.Code)

	var cart map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))
	assert.Empty(t, cart["items"])

	// Reading never persists a cart row.
	var count int64
	require.NoError(t, testDB.DB.Model(&models.ShoppingCart{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestAddItemCreatesCartLazily(t *testing.T) {
	router, testDB := SetupTestRouter(t)
	_, token := CreateTestUserAndToken(t, testDB)

	w := PerformRequest(router, "POST", "/api/v1/shopping-cart/items", token, map[string]interface{}{
		"name":     "Flour",
		"quantity": 2,
	})
	require.Equal(t, 201, w.Code)

	var count int64
	require.NoError(t, testDB.DB.Model(&models.ShoppingCart{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	// A second add reuses the same cart.
	w = PerformRequest(router, "POST", "/api/v1/shopping-cart/items", token, map[string]interface{}{
		"name":     "Butter",
		"quantity": 1,
	})
	require.Equal(t, 201, w.Code)
	require.NoError(t, testDB.DB.Model(&models.ShoppingCart{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	w = PerformRequest(router, "GET", "/api/v1/shopping-cart", token, nil)
	require.Equal(t, 200, w.Code)
	var cart map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))
	assert.Len(t, cart["items"], 2)
}

func TestAddItemRejectsInvalidQuantity(t *testing.T) {
	router, testDB := SetupTestRouter(t)
	_, token := CreateTestUserAndToken(t, testDB)

	w := PerformRequest(router, "POST", "/api/v1/shopping-cart/items", token, map[string]interface{}{
		"name":     "Flour",
		"quantity": 0,
	})
	assert.Equal(t, 400, w.Code)
}

func TestDeleteItemAsNonOwner(t *testing.T) {
	router, testDB := SetupTestRouter(t)
	_, ownerToken := CreateTestUserAndToken(t, testDB)
	_, otherToken := CreateTestUserAndToken(t, testDB)

	w := PerformRequest(router, "POST", "/api/v1/shopping-cart/items", ownerToken, map[string]interface{}{
		"name":     "Eggs",
		"quantity": 12,
	})
	require.Equal(t, 201, w.Code)
	var item map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
	itemID := item["id"].(string)

	w = PerformRequest(router, "DELETE", "/api/v1/shopping-cart/items/"+itemID, otherToken, nil)
	assert.Equal(t, 403, w.Code)

	w = PerformRequest(router, "DELETE", "/api/v1/shopping-cart/items/"+itemID, ownerToken, nil)
	assert.Equal(t, 200, w.Code)

	var count int64
	require.NoError(t, testDB.DB.Model(&models.ShoppingItem{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

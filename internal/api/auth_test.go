package api_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelfline/backend/internal/models"
)

func TestRegisterAndLogin(t *testing.T) {
	router, testDB := SetupTestRouter(t)

	w := PerformRequest(router, "POST", "/api/v1/auth/register", "", map[string]interface{}{
		"name":     "Ada",
		"email":    "ada@example.com",
		"password": "hunter22",
	})
	require.Equal(t, 201, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body["token"])

	// Registering seeds an empty profile row alongside the user.
	var user models.User
	require.NoError(t, testDB.DB.Where("email = ?", "ada@example.com").First(&user).Error)
	var profileCount int64
	require.NoError(t, testDB.DB.Model(&models.UserProfile{}).Where("user_id = ?", user.ID).Count(&profileCount).Error)
	assert.Equal(t, int64(1), profileCount)

	w = PerformRequest(router, "POST", "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "ada@example.com",
		"password": "hunter22",
	})
	require.Equal(t, 200, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body["token"])
}

func TestRegisterDuplicateEmail(t *testing.T) {
	router, _ := SetupTestRouter(t)

	payload := map[string]interface{}{
		"name":     "Ada",
		"email":    "ada@example.com",
		"password": "hunter22",
	}
	w := PerformRequest(router, "POST", "/api/v1/auth/register", "", payload)
	require.Equal(t, 201, w.Code)

	w = PerformRequest(router, "POST", "/api/v1/auth/register", "", payload)
	assert.Equal(t, 400, w.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	router, _ := SetupTestRouter(t)

	w := PerformRequest(router, "POST", "/api/v1/auth/register", "", map[string]interface{}{
		"name":     "Ada",
		"email":    "ada@example.com",
		"password": "hunter22",
	})
	require.Equal(t, 201, w.Code)

	w = PerformRequest(router, "POST", "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "ada@example.com",
		"password": "wrongpassword",
	})
	assert.Equal(t, 401, w.Code)
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	router, _ := SetupTestRouter(t)

	w := PerformRequest(router, "POST", "/api/v1/auth/register", "", map[string]interface{}{
		"name":     "Ada",
		"email":    "ada@example.com",
		"password": "abc",
	})
	assert.Equal(t, 400, w.Code)
}

package user_test

import (
	"bytes"
	"coinnect-backend/internal/api/v1/user"
	"coinnect-backend/internal/database"
	"coinnect-backend/internal/models"
	"coinnect-backend/internal/services"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB() {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}

	db.Migrator().DropTable(&models.User{}, &models.Skill{}, &models.Transaction{}, &models.TrustScore{}, &models.AuditEvent{})
	err = db.AutoMigrate(&models.User{}, &models.Skill{}, &models.Transaction{}, &models.TrustScore{}, &models.AuditEvent{})
	if err != nil {
		panic("failed to migrate database")
	}

	database.DB = db
	database.RedisClient = nil
	services.AnchorClient = nil
}

func newRouter() *gin.Engine {
	r := gin.New()
	user.RegisterRoutes(r.Group("/api/v1"))
	return r
}

func TestRegister(t *testing.T) {
	setupTestDB()
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		body           string
		expectedStatus int
		checkResponse  func(t *testing.T, body []byte)
	}{
		{
			name:           "Valid registration with skills",
			body:           `{"name":"Alice","email":"alice@example.com","skills":[{"name":"Guitar"},{"name":"Spanish","is_offered":false}]}`,
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, body []byte) {
				var resp struct {
					Status int               `json:"status"`
					Data   user.UserResponse `json:"data"`
				}
				json.Unmarshal(body, &resp)
				assert.Equal(t, 200, resp.Status)
				assert.Equal(t, "Alice", resp.Data.Name)
				assert.InDelta(t, 10.0, resp.Data.Balance, 1e-9)
				assert.InDelta(t, 5.0, resp.Data.TrustScore, 1e-9)
				assert.Len(t, resp.Data.Skills, 2)
				assert.True(t, resp.Data.Skills[0].IsOffered)
				assert.False(t, resp.Data.Skills[1].IsOffered)
			},
		},
		{
			name:           "Duplicate email",
			body:           `{"name":"Impostor","email":"alice@example.com"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Invalid email",
			body:           `{"name":"Bob","email":"not-an-email"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Missing name",
			body:           `{"email":"bob@example.com"}`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	r := newRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodPost, "/api/v1/users", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, w.Body.Bytes())
			}
		})
	}
}

func TestGetUser(t *testing.T) {
	setupTestDB()
	gin.SetMode(gin.TestMode)

	u, err := services.RegisterUser("Alice", "alice@example.com", []services.SkillInput{
		{Name: "Guitar", IsOffered: true},
	})
	assert.NoError(t, err)

	r := newRouter()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/users/1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data user.UserResponse `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, u.ID, resp.Data.ID)
	assert.Len(t, resp.Data.Skills, 1)

	req, _ = http.NewRequest(http.MethodGet, "/api/v1/users/9999", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	req, _ = http.NewRequest(http.MethodGet, "/api/v1/users/abc", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListUsers(t *testing.T) {
	setupTestDB()
	gin.SetMode(gin.TestMode)

	services.RegisterUser("Alice", "alice@example.com", nil)
	services.RegisterUser("Bob", "bob@example.com", nil)

	r := newRouter()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/users?page=1&limit=1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data user.UserListResponse `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, int64(2), resp.Data.Total)
	assert.Len(t, resp.Data.Users, 1)
	assert.Equal(t, "Alice", resp.Data.Users[0].Name)
}

func TestDeleteUser(t *testing.T) {
	setupTestDB()
	gin.SetMode(gin.TestMode)

	u, _ := services.RegisterUser("Alice", "alice@example.com", nil)

	r := newRouter()

	req, _ := http.NewRequest(http.MethodDelete, "/api/v1/users/1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	_, err := services.FindUserByID(u.ID)
	assert.ErrorIs(t, err, services.ErrUserNotFound)

	req, _ = http.NewRequest(http.MethodDelete, "/api/v1/users/1", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAnchorUserDisabled(t *testing.T) {
	setupTestDB()
	gin.SetMode(gin.TestMode)

	services.RegisterUser("Alice", "alice@example.com", nil)

	r := newRouter()

	// No gateway configured in tests
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/users/1/anchor", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestGetRecommendations(t *testing.T) {
	setupTestDB()
	gin.SetMode(gin.TestMode)

	services.RegisterUser("U", "u@example.com", []services.SkillInput{
		{Name: "Guitar", IsOffered: false},
	})
	services.RegisterUser("Alice", "alice@example.com", []services.SkillInput{
		{Name: "Guitar", IsOffered: true},
		{Name: "Cooking", IsOffered: true},
	})

	r := newRouter()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/users/1/recommendations", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data services.Recommendations `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Len(t, resp.Data.UserMatches, 1)
	assert.Equal(t, "Guitar", resp.Data.UserMatches[0].SkillName)
	assert.Len(t, resp.Data.SkillSuggestions, 1)
	assert.Equal(t, "Cooking", resp.Data.SkillSuggestions[0].SkillName)

	req, _ = http.NewRequest(http.MethodGet, "/api/v1/users/9999/recommendations", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

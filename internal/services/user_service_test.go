package services

import (
	"coinnect-backend/internal/database"
	"coinnect-backend/internal/models"
	"fmt"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupUserTestDB() {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}

	db.Migrator().DropTable(&models.User{}, &models.Skill{}, &models.Transaction{}, &models.TrustScore{}, &models.AuditEvent{})
	db.AutoMigrate(&models.User{}, &models.Skill{}, &models.Transaction{}, &models.TrustScore{}, &models.AuditEvent{})

	database.DB = db
	database.RedisClient = nil
	AnchorClient = nil
}

func setupUserTestRedis(t *testing.T) *miniredis.Miniredis {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	database.RedisClient = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		database.RedisClient = nil
		mr.Close()
	})
	return mr
}

func TestRegisterUser(t *testing.T) {
	setupUserTestDB()

	user, err := RegisterUser("Alice", "alice@example.com", []SkillInput{
		{Name: "Guitar", IsOffered: true, Availability: "weekends"},
		{Name: "Spanish", IsOffered: false},
	})
	assert.NoError(t, err)
	assert.NotZero(t, user.ID)

	// New accounts start with the default trust score and grant
	assert.InDelta(t, 5.0, user.TrustScore, 1e-9)
	assert.InDelta(t, 10.0, user.Balance, 1e-9)

	assert.Len(t, user.Skills, 2)
	assert.Equal(t, "weekends", user.Skills[0].Availability)
	assert.Equal(t, "anytime", user.Skills[1].Availability)
	assert.False(t, user.Skills[1].IsOffered)
}

func TestRegisterUserEmailTaken(t *testing.T) {
	setupUserTestDB()

	_, err := RegisterUser("Alice", "alice@example.com", nil)
	assert.NoError(t, err)

	user, err := RegisterUser("Impostor", "alice@example.com", nil)
	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.Nil(t, user)

	var count int64
	database.DB.Model(&models.User{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestFindUserByID(t *testing.T) {
	setupUserTestDB()

	user, _ := RegisterUser("Alice", "alice@example.com", nil)

	found, err := FindUserByID(user.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Alice", found.Name)

	_, err = FindUserByID(9999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestFindUserByIDCache(t *testing.T) {
	setupUserTestDB()
	mr := setupUserTestRedis(t)

	user, _ := RegisterUser("Alice", "alice@example.com", nil)
	cacheKey := fmt.Sprintf("user:%d", user.ID)

	// First read populates the cache
	found, err := FindUserByID(user.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Alice", found.Name)
	assert.True(t, mr.Exists(cacheKey))

	// Second read is served from the cache even if the row changed
	database.DB.Model(&models.User{}).Where("id = ?", user.ID).Update("name", "Renamed")
	found, err = FindUserByID(user.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Alice", found.Name)

	// Invalidation forces the next read back to the database
	InvalidateUserCache(user.ID)
	assert.False(t, mr.Exists(cacheKey))
	found, err = FindUserByID(user.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Renamed", found.Name)
}

func TestFindUsers(t *testing.T) {
	setupUserTestDB()

	for i := 0; i < 5; i++ {
		RegisterUser(fmt.Sprintf("User %d", i), fmt.Sprintf("user%d@example.com", i), nil)
	}

	users, total, err := FindUsers(1, 3)
	assert.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, users, 3)
	assert.Equal(t, "User 0", users[0].Name)

	users, total, err = FindUsers(2, 3)
	assert.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, users, 2)
}

func TestDeleteUser(t *testing.T) {
	setupUserTestDB()

	user, _ := RegisterUser("Alice", "alice@example.com", []SkillInput{
		{Name: "Guitar", IsOffered: true},
	})

	assert.NoError(t, DeleteUser(user.ID))

	_, err := FindUserByID(user.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)

	// No orphaned skill rows survive the delete
	var skills int64
	database.DB.Model(&models.Skill{}).Where("user_id = ?", user.ID).Count(&skills)
	assert.Equal(t, int64(0), skills)

	assert.ErrorIs(t, DeleteUser(user.ID), ErrUserNotFound)
}

func TestDeleteUserKeepsHistory(t *testing.T) {
	setupUserTestDB()

	offerer, _ := RegisterUser("A", "a@example.com", []SkillInput{{Name: "Guitar", IsOffered: true}})
	requester, _ := RegisterUser("B", "b@example.com", nil)

	txn, err := CreateTransaction(offerer.ID, requester.ID, offerer.Skills[0].ID, 2.0)
	assert.NoError(t, err)

	assert.NoError(t, DeleteUser(offerer.ID))

	// Transaction history remains after the account is gone
	kept, err := GetTransactionByID(txn.ID)
	assert.NoError(t, err)
	assert.Equal(t, offerer.ID, kept.OffererID)
}

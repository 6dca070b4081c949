package services

import (
	"coinnect-backend/config"
	"coinnect-backend/internal/database"
	"coinnect-backend/internal/models"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")
var ErrEmailTaken = errors.New("email already registered")

// SkillInput describes a skill supplied at registration time.
type SkillInput struct {
	Name         string
	IsOffered    bool
	Availability string
}

// RegisterUser creates a user with the configured starting balance and
// default trust score, plus any initial skills, in one transaction.
// The profile is anchored best-effort after commit.
func RegisterUser(name, email string, skills []SkillInput) (*models.User, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:       name,
		Email:      email,
		TrustScore: 5.0,
		Balance:    cfg.StartingBalance,
	}

	tx := database.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var count int64
	if err := tx.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if count > 0 {
		tx.Rollback()
		return nil, ErrEmailTaken
	}

	if err := tx.Create(&user).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	for _, s := range skills {
		availability := s.Availability
		if availability == "" {
			availability = "anytime"
		}
		skill := models.Skill{
			SkillName:    s.Name,
			UserID:       user.ID,
			IsOffered:    s.IsOffered,
			Availability: availability,
		}
		if err := tx.Create(&skill).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	AnchorUserProfile(&user)

	database.DB.Preload("Skills").First(&user, user.ID)
	return &user, nil
}

// FindUserByID loads a user with their skills, going through the redis
// cache when it is available.
func FindUserByID(userID uint) (models.User, error) {
	cacheKey := fmt.Sprintf("user:%d", userID)
	if database.RedisClient != nil {
		val, err := database.RedisClient.Get(database.Ctx, cacheKey).Result()
		if err == nil {
			var user models.User
			if err := json.Unmarshal([]byte(val), &user); err == nil {
				return user, nil
			}
		}
	}

	var user models.User
	if err := database.DB.Preload("Skills").First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user, ErrUserNotFound
		}
		return user, err
	}

	if database.RedisClient != nil {
		if data, err := json.Marshal(user); err == nil {
			database.RedisClient.Set(database.Ctx, cacheKey, data, time.Hour)
		}
	}

	return user, nil
}

// InvalidateUserCache drops the cached copy after a balance, trust
// score or skill mutation.
func InvalidateUserCache(userIDs ...uint) {
	if database.RedisClient == nil {
		return
	}
	for _, id := range userIDs {
		database.RedisClient.Del(database.Ctx, fmt.Sprintf("user:%d", id))
	}
}

// FindUsers retrieves a paginated list of users with their skills.
func FindUsers(page, limit int) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	offset := (page - 1) * limit

	if err := database.DB.Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := database.DB.Preload("Skills").Order("id asc").Limit(limit).Offset(offset).Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// DeleteUser removes a user and cascade-deletes their skills in the
// same transaction, so no orphaned skill rows remain. Transactions and
// ratings are kept as historical records.
func DeleteUser(userID uint) error {
	tx := database.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var user models.User
	if err := tx.First(&user, userID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if err := tx.Where("user_id = ?", userID).Delete(&models.Skill{}).Error; err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Delete(&user).Error; err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit().Error; err != nil {
		return err
	}

	InvalidateUserCache(userID)
	return nil
}

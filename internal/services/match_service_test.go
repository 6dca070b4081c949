package services

import (
	"coinnect-backend/internal/database"
	"coinnect-backend/internal/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupMatchTestDB() {
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

func seedOffer(name, email string, trust float64, skillName string, offered bool) models.User {
	user := models.User{Name: name, Email: email, TrustScore: trust, Balance: 10}
	database.DB.Create(&user)
	database.DB.Create(&models.Skill{SkillName: skillName, UserID: user.ID, IsOffered: offered, Availability: "anytime"})
	return user
}

func TestMatchSkillRanking(t *testing.T) {
	setupMatchTestDB()

	low := seedOffer("Low", "low@example.com", 3.2, "Guitar", true)
	high := seedOffer("High", "high@example.com", 6.4, "Guitar", true)
	mid := seedOffer("Mid", "mid@example.com", 4.8, "Guitar", true)

	// Noise: other skills and a requested (not offered) Guitar
	seedOffer("Pianist", "piano@example.com", 9.9, "Piano", true)
	seedOffer("Wants", "wants@example.com", 9.9, "Guitar", false)

	matches, err := MatchSkill("Guitar")
	assert.NoError(t, err)
	assert.Len(t, matches, 3)
	assert.Equal(t, high.ID, matches[0].UserID)
	assert.Equal(t, mid.ID, matches[1].UserID)
	assert.Equal(t, low.ID, matches[2].UserID)
	for _, m := range matches {
		assert.Equal(t, "Guitar", m.SkillName)
	}
}

func TestMatchSkillExactNameOnly(t *testing.T) {
	setupMatchTestDB()

	seedOffer("Alice", "alice@example.com", 5.0, "Bass Guitar", true)

	matches, err := MatchSkill("Guitar")
	assert.NoError(t, err)
	assert.Len(t, matches, 0)
}

func TestMatchSkillTies(t *testing.T) {
	setupMatchTestDB()

	first := seedOffer("First", "first@example.com", 5.0, "Guitar", true)
	second := seedOffer("Second", "second@example.com", 5.0, "Guitar", true)

	matches, err := MatchSkill("Guitar")
	assert.NoError(t, err)
	assert.Len(t, matches, 2)
	// Equal trust scores: deterministic tie-break on user ID
	assert.Equal(t, first.ID, matches[0].UserID)
	assert.Equal(t, second.ID, matches[1].UserID)
}

func TestMatchSkillNoOffers(t *testing.T) {
	setupMatchTestDB()

	matches, err := MatchSkill("Juggling")
	assert.NoError(t, err)
	assert.NotNil(t, matches)
	assert.Len(t, matches, 0)
}

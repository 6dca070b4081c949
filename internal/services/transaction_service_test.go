package services

import (
	"coinnect-backend/internal/database"
	"coinnect-backend/internal/models"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTransactionTestDB() {
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

func seedTransactionRows() {
	rows := []models.Transaction{
		{OffererID: 1, RequesterID: 2, SkillID: 10, AmountPaid: 2.0, Status: models.TransactionStatusCompleted},
		{OffererID: 1, RequesterID: 3, SkillID: 10, AmountPaid: 5.0, Status: models.TransactionStatusCompleted},
		{OffererID: 2, RequesterID: 3, SkillID: 11, AmountPaid: 8.0, Status: models.TransactionStatusCompleted},
	}
	for i := range rows {
		database.DB.Create(&rows[i])
	}
}

func uintPtr(v uint) *uint           { return &v }
func floatPtr(v float64) *float64    { return &v }
func timePtr(v time.Time) *time.Time { return &v }

func TestFindTransactionsFilters(t *testing.T) {
	setupTransactionTestDB()
	seedTransactionRows()

	txns, total, err := FindTransactions(TransactionFilter{Page: 1, Limit: 10})
	assert.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, txns, 3)

	txns, total, err = FindTransactions(TransactionFilter{OffererID: uintPtr(1), Page: 1, Limit: 10})
	assert.NoError(t, err)
	assert.Equal(t, int64(2), total)
	for _, txn := range txns {
		assert.Equal(t, uint(1), txn.OffererID)
	}

	txns, total, err = FindTransactions(TransactionFilter{RequesterID: uintPtr(3), SkillID: uintPtr(11), Page: 1, Limit: 10})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, 8.0, txns[0].AmountPaid)

	_, total, err = FindTransactions(TransactionFilter{MinAmount: floatPtr(3.0), MaxAmount: floatPtr(6.0), Page: 1, Limit: 10})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)

	_, total, err = FindTransactions(TransactionFilter{EndTime: timePtr(time.Now().Add(-time.Hour)), Page: 1, Limit: 10})
	assert.NoError(t, err)
	assert.Equal(t, int64(0), total)
}

func TestFindTransactionsPagination(t *testing.T) {
	setupTransactionTestDB()
	seedTransactionRows()

	txns, total, err := FindTransactions(TransactionFilter{Page: 1, Limit: 2})
	assert.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, txns, 2)

	txns, _, err = FindTransactions(TransactionFilter{Page: 2, Limit: 2})
	assert.NoError(t, err)
	assert.Len(t, txns, 1)
}

func TestGetTransactionByID(t *testing.T) {
	setupTransactionTestDB()
	seedTransactionRows()

	txn, err := GetTransactionByID(1)
	assert.NoError(t, err)
	assert.Equal(t, uint(1), txn.ID)

	_, err = GetTransactionByID(404)
	assert.ErrorIs(t, err, ErrTransactionNotFound)
}

func TestGenerateTransactionCSV(t *testing.T) {
	setupTransactionTestDB()

	hash := "QmTestHash"
	txns := []models.Transaction{
		{
			OffererID:   1,
			RequesterID: 2,
			SkillID:     10,
			AmountPaid:  2.5,
			Status:      models.TransactionStatusCompleted,
			IPFSHash:    &hash,
		},
		{
			OffererID:   2,
			RequesterID: 1,
			SkillID:     11,
			AmountPaid:  4.0,
			Status:      models.TransactionStatusCompleted,
		},
	}

	data, err := GenerateTransactionCSV(txns)
	assert.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 3)
	assert.Equal(t, "ID,Date,Offerer ID,Requester ID,Skill ID,Amount Paid,Status,IPFS Hash", lines[0])
	assert.Contains(t, lines[1], "2.50")
	assert.Contains(t, lines[1], "QmTestHash")
	assert.Contains(t, lines[2], "4.00")
}

func TestGenerateTransactionCSVEmpty(t *testing.T) {
	setupTransactionTestDB()

	data, err := GenerateTransactionCSV(nil)
	assert.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 1)
}

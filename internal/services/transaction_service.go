package services

import (
	"bytes"
	"coinnect-backend/internal/database"
	"coinnect-backend/internal/models"
	"encoding/csv"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// TransactionFilter defines criteria for filtering transactions
type TransactionFilter struct {
	OffererID   *uint
	RequesterID *uint
	SkillID     *uint
	StartTime   *time.Time
	EndTime     *time.Time
	MinAmount   *float64
	MaxAmount   *float64
	Page        int
	Limit       int
}

// FindTransactions retrieves a paginated list of transactions with filtering
func FindTransactions(filter TransactionFilter) ([]models.Transaction, int64, error) {
	var transactions []models.Transaction
	var total int64

	query := database.DB.Model(&models.Transaction{})

	if filter.OffererID != nil {
		query = query.Where("offerer_id = ?", *filter.OffererID)
	}
	if filter.RequesterID != nil {
		query = query.Where("requester_id = ?", *filter.RequesterID)
	}
	if filter.SkillID != nil {
		query = query.Where("skill_id = ?", *filter.SkillID)
	}
	if filter.StartTime != nil {
		query = query.Where("created_at >= ?", *filter.StartTime)
	}
	if filter.EndTime != nil {
		query = query.Where("created_at <= ?", *filter.EndTime)
	}
	if filter.MinAmount != nil {
		query = query.Where("amount_paid >= ?", *filter.MinAmount)
	}
	if filter.MaxAmount != nil {
		query = query.Where("amount_paid <= ?", *filter.MaxAmount)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	if err := query.Order("created_at desc").Limit(filter.Limit).Offset(offset).Find(&transactions).Error; err != nil {
		return nil, 0, err
	}

	return transactions, total, nil
}

// GetTransactionByID retrieves a single transaction by ID
func GetTransactionByID(id uint) (*models.Transaction, error) {
	var txn models.Transaction
	if err := database.DB.First(&txn, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}
	return &txn, nil
}

// GenerateTransactionCSV generates a CSV file content for transactions
func GenerateTransactionCSV(transactions []models.Transaction) ([]byte, error) {
	b := &bytes.Buffer{}
	w := csv.NewWriter(b)

	header := []string{
		"ID", "Date", "Offerer ID", "Requester ID", "Skill ID",
		"Amount Paid", "Status", "IPFS Hash",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, t := range transactions {
		ipfsHash := ""
		if t.IPFSHash != nil {
			ipfsHash = *t.IPFSHash
		}
		record := []string{
			fmt.Sprintf("%d", t.ID),
			t.CreatedAt.Format(time.RFC3339),
			fmt.Sprintf("%d", t.OffererID),
			fmt.Sprintf("%d", t.RequesterID),
			fmt.Sprintf("%d", t.SkillID),
			fmt.Sprintf("%.2f", t.AmountPaid),
			t.Status,
			ipfsHash,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return b.Bytes(), nil
}

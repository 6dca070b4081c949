package services

import (
	"coinnect-backend/internal/database"
	"coinnect-backend/internal/models"
	"errors"

	"gorm.io/gorm"
)

var ErrTransactionNotFound = errors.New("transaction not found")
var ErrInsufficientFunds = errors.New("insufficient skillcoin balance")
var ErrDuplicateRating = errors.New("rating already submitted for this transaction")
var ErrInvalidScore = errors.New("score must be an integer between 1 and 5")
var ErrInvalidAmount = errors.New("amount must be greater than zero")
var ErrSkillOwnership = errors.New("skill does not belong to the offerer")
var ErrSelfTransaction = errors.New("offerer and requester must be different users")

// Fixed trust increments applied on every completed transaction.
// Deliberately unconditional: not scaled by amount or rating.
const (
	offererTrustBonus   = 0.1
	requesterTrustBonus = 0.05
	ratingWeight        = 0.1
)

// CreateTransaction transfers amount SkillCoins from the requester to
// the offerer for the given skill. Balance movement, the two trust
// increments and the transaction row commit as one unit; on any
// failure nothing is persisted. The balance debit is a conditional
// update (balance >= amount in the WHERE clause), so two concurrent
// transfers cannot jointly overdraw the requester.
func CreateTransaction(offererID, requesterID, skillID uint, amount float64) (*models.Transaction, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if offererID == requesterID {
		return nil, ErrSelfTransaction
	}

	tx := database.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var skill models.Skill
	if err := tx.First(&skill, skillID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSkillNotFound
		}
		return nil, err
	}
	if skill.UserID != offererID {
		tx.Rollback()
		return nil, ErrSkillOwnership
	}

	var offerer, requester models.User
	if err := tx.First(&offerer, offererID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if err := tx.First(&requester, requesterID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	// Conditional debit doubles as the insufficient-funds check.
	debit := tx.Model(&models.User{}).
		Where("id = ? AND balance >= ?", requesterID, amount).
		Updates(map[string]interface{}{
			"balance":     gorm.Expr("balance - ?", amount),
			"trust_score": gorm.Expr("trust_score + ?", requesterTrustBonus),
		})
	if debit.Error != nil {
		tx.Rollback()
		return nil, debit.Error
	}
	if debit.RowsAffected == 0 {
		tx.Rollback()
		return nil, ErrInsufficientFunds
	}

	credit := tx.Model(&models.User{}).
		Where("id = ?", offererID).
		Updates(map[string]interface{}{
			"balance":     gorm.Expr("balance + ?", amount),
			"trust_score": gorm.Expr("trust_score + ?", offererTrustBonus),
		})
	if credit.Error != nil {
		tx.Rollback()
		return nil, credit.Error
	}

	txn := models.Transaction{
		OffererID:   offererID,
		RequesterID: requesterID,
		SkillID:     skillID,
		AmountPaid:  amount,
		Status:      models.TransactionStatusCompleted,
	}
	if err := tx.Create(&txn).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	InvalidateUserCache(offererID, requesterID)

	// Best-effort anchor: the transfer is already committed, a gateway
	// failure only leaves ipfs_hash unset.
	AnchorTransaction(&txn)

	database.DB.First(&txn, txn.ID)
	return &txn, nil
}

// RateTransaction records a 1-5 rating on a transaction for the
// rater's counterpart and folds it into the rated user's trust score
// as an exponential moving average: new = 0.9*old + 0.1*score.
func RateTransaction(transactionID uint, raterIsRequester bool, score int, feedback string) (*models.TrustScore, error) {
	if score < 1 || score > 5 {
		return nil, ErrInvalidScore
	}

	tx := database.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var txn models.Transaction
	if err := tx.First(&txn, transactionID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}

	ratedID := txn.RequesterID
	if raterIsRequester {
		ratedID = txn.OffererID
	}

	var existing int64
	if err := tx.Model(&models.TrustScore{}).
		Where("transaction_id = ? AND user_id = ?", transactionID, ratedID).
		Count(&existing).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if existing > 0 {
		tx.Rollback()
		return nil, ErrDuplicateRating
	}

	var rated models.User
	if err := tx.First(&rated, ratedID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	entry := models.TrustScore{
		UserID:        ratedID,
		TransactionID: transactionID,
		Score:         float64(score),
		Feedback:      feedback,
	}
	if err := tx.Create(&entry).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	newScore := (1-ratingWeight)*rated.TrustScore + ratingWeight*float64(score)
	if err := tx.Model(&rated).Update("trust_score", newScore).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	InvalidateUserCache(ratedID)
	return &entry, nil
}

package repository

import (
	"github.com/elitesugar/elitesugar-backend/internal/models"
	"gorm.io/gorm"
)

type TokenRepository struct {
	db *gorm.DB
}

func NewTokenRepository(db *gorm.DB) *TokenRepository {
	return &TokenRepository{db: db}
}

func (r *TokenRepository) Create(token *models.AuthToken) error {
	return r.db.Create(token).Error
}

func (r *TokenRepository) GetByKey(key string) (*models.AuthToken, error) {
	var token models.AuthToken
	err := r.db.Preload("Account").Where("key = ?", key).First(&token).Error
	if err != nil {
		return nil, err
	}
	return &token, nil
}

func (r *TokenRepository) GetByAccountID(accountID uint) (*models.AuthToken, error) {
	var token models.AuthToken
	err := r.db.Where("account_id = ?", accountID).First(&token).Error
	if err != nil {
		return nil, err
	}
	return &token, nil
}

// DeleteByAccountID removes the account's token and reports whether one existed.
func (r *TokenRepository) DeleteByAccountID(accountID uint) (int64, error) {
	result := r.db.Where("account_id = ?", accountID).Delete(&models.AuthToken{})
	return result.RowsAffected, result.Error
}

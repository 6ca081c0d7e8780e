package repository

import (
	"time"

	"github.com/elitesugar/elitesugar-backend/internal/models"
	"gorm.io/gorm"
)

type AccountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) Create(account *models.Account) error {
	return r.db.Create(account).Error
}

func (r *AccountRepository) GetByID(id uint) (*models.Account, error) {
	var account models.Account
	err := r.db.First(&account, id).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *AccountRepository) GetByEmail(email string) (*models.Account, error) {
	var account models.Account
	err := r.db.Where("email = ?", email).First(&account).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *AccountRepository) EmailExists(email string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Account{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (r *AccountRepository) EmailExistsExcluding(email string, accountID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Account{}).
		Where("email = ? AND id <> ?", email, accountID).
		Count(&count).Error
	return count > 0, err
}

func (r *AccountRepository) Update(account *models.Account) error {
	return r.db.Save(account).Error
}

func (r *AccountRepository) UpdatePassword(accountID uint, hashedPassword string) error {
	return r.db.Model(&models.Account{}).
		Where("id = ?", accountID).
		Update("password", hashedPassword).Error
}

func (r *AccountRepository) UpdateLastLogin(accountID uint, t time.Time) error {
	return r.db.Model(&models.Account{}).
		Where("id = ?", accountID).
		Update("last_login", t).Error
}

func (r *AccountRepository) UpdateMembership(accountID uint, tier models.MembershipType) error {
	return r.db.Model(&models.Account{}).
		Where("id = ?", accountID).
		Update("membership_type", tier).Error
}

// GetActiveByIDs resolves the subset of ids that belong to active accounts.
func (r *AccountRepository) GetActiveByIDs(ids []uint) ([]models.Account, error) {
	var accounts []models.Account
	err := r.db.Where("id IN ? AND is_active = ?", ids, true).Find(&accounts).Error
	return accounts, err
}

package repository

import (
	"github.com/elitesugar/elitesugar-backend/internal/models"
	"gorm.io/gorm"
)

type PhotoRepository struct {
	db *gorm.DB
}

func NewPhotoRepository(db *gorm.DB) *PhotoRepository {
	return &PhotoRepository{
		db: db,
	}
}

// photoOrdering matches the stored display order: explicit order first,
// profile picture as tiebreak, newest upload last.
const photoOrdering = "display_order ASC, is_profile_picture DESC, uploaded_at DESC"

func (r *PhotoRepository) Create(photo *models.AccountPhoto) error {
	return r.db.Create(photo).Error
}

func (r *PhotoRepository) GetByAccountID(accountID uint) ([]models.AccountPhoto, error) {
	var photos []models.AccountPhoto
	err := r.db.Where("account_id = ?", accountID).
		Order(photoOrdering).
		Find(&photos).Error
	return photos, err
}

func (r *PhotoRepository) GetByIDAndAccount(id, accountID uint) (*models.AccountPhoto, error) {
	var photo models.AccountPhoto
	err := r.db.Where("id = ? AND account_id = ?", id, accountID).First(&photo).Error
	if err != nil {
		return nil, err
	}
	return &photo, nil
}

func (r *PhotoRepository) CountByAccountID(accountID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.AccountPhoto{}).Where("account_id = ?", accountID).Count(&count).Error
	return count, err
}

func (r *PhotoRepository) Delete(id uint) error {
	return r.db.Delete(&models.AccountPhoto{}, id).Error
}

// ClearProfileFlag removes the profile mark from every photo of the account
// in one statement, so a new mark never coexists with a stale one.
func (r *PhotoRepository) ClearProfileFlag(accountID uint) error {
	return r.db.Model(&models.AccountPhoto{}).
		Where("account_id = ? AND is_profile_picture = ?", accountID, true).
		Update("is_profile_picture", false).Error
}

func (r *PhotoRepository) SetProfileFlag(photoID uint) error {
	return r.db.Model(&models.AccountPhoto{}).
		Where("id = ?", photoID).
		Update("is_profile_picture", true).Error
}

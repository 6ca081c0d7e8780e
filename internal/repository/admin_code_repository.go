package repository

import (
	"github.com/elitesugar/elitesugar-backend/internal/models"
	"gorm.io/gorm"
)

type AdminCodeRepository struct {
	db *gorm.DB
}

func NewAdminCodeRepository(db *gorm.DB) *AdminCodeRepository {
	return &AdminCodeRepository{db: db}
}

func (r *AdminCodeRepository) Exists(code string) (bool, error) {
	var count int64
	err := r.db.Model(&models.AdminCode{}).Where("code = ?", code).Count(&count).Error
	return count > 0, err
}

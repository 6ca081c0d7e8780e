package repository

import (
	"time"

	"github.com/elitesugar/elitesugar-backend/internal/models"
	"gorm.io/gorm"
)

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(notification *models.Notification) error {
	return r.db.Create(notification).Error
}

func (r *NotificationRepository) CreateBatch(notifications []models.Notification) error {
	if len(notifications) == 0 {
		return nil
	}
	return r.db.Create(&notifications).Error
}

// ListByAccount returns the account's feed newest-first. isRead filters by
// read state when non-nil; limit truncates, never errors.
func (r *NotificationRepository) ListByAccount(accountID uint, isRead *bool, limit int) ([]models.Notification, error) {
	query := r.db.Preload("Person").Preload("Person.Photos", preloadPhotos).
		Where("account_id = ?", accountID)

	if isRead != nil {
		query = query.Where("is_read = ?", *isRead)
	}

	var notifications []models.Notification
	err := query.Order("created_at DESC").Limit(limit).Find(&notifications).Error
	return notifications, err
}

func (r *NotificationRepository) GetByIDAndAccount(id, accountID uint) (*models.Notification, error) {
	var notification models.Notification
	err := r.db.Preload("Person").Preload("Person.Photos", preloadPhotos).
		Where("id = ? AND account_id = ?", id, accountID).
		First(&notification).Error
	if err != nil {
		return nil, err
	}
	return &notification, nil
}

// MarkRead flips the given unread notifications in one statement and returns
// how many rows actually changed; already-read entries are left untouched.
func (r *NotificationRepository) MarkRead(accountID uint, ids []uint) (int64, error) {
	result := r.db.Model(&models.Notification{}).
		Where("account_id = ? AND id IN ? AND is_read = ?", accountID, ids, false).
		Updates(map[string]interface{}{
			"is_read": true,
			"read_at": time.Now(),
		})
	return result.RowsAffected, result.Error
}

func (r *NotificationRepository) MarkAllRead(accountID uint) (int64, error) {
	result := r.db.Model(&models.Notification{}).
		Where("account_id = ? AND is_read = ?", accountID, false).
		Updates(map[string]interface{}{
			"is_read": true,
			"read_at": time.Now(),
		})
	return result.RowsAffected, result.Error
}

func (r *NotificationRepository) Delete(id, accountID uint) (int64, error) {
	result := r.db.Where("id = ? AND account_id = ?", id, accountID).
		Delete(&models.Notification{})
	return result.RowsAffected, result.Error
}

func (r *NotificationRepository) DeleteAllRead(accountID uint) (int64, error) {
	result := r.db.Where("account_id = ? AND is_read = ?", accountID, true).
		Delete(&models.Notification{})
	return result.RowsAffected, result.Error
}

func (r *NotificationRepository) CountByAccount(accountID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).Where("account_id = ?", accountID).Count(&count).Error
	return count, err
}

func (r *NotificationRepository) CountUnread(accountID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).
		Where("account_id = ? AND is_read = ?", accountID, false).
		Count(&count).Error
	return count, err
}

func (r *NotificationRepository) CountByType(accountID uint) (map[string]int64, error) {
	rows, err := r.db.Model(&models.Notification{}).
		Select("notification_type, COUNT(*) AS count").
		Where("account_id = ?", accountID).
		Group("notification_type").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byType := make(map[string]int64)
	for rows.Next() {
		var notificationType string
		var count int64
		if err := rows.Scan(&notificationType, &count); err != nil {
			return nil, err
		}
		byType[notificationType] = count
	}

	return byType, rows.Err()
}

package models

import (
	"time"
)

type Notification struct {
	ID               uint       `json:"id" gorm:"primaryKey"`
	AccountID        uint       `json:"account_id" gorm:"not null;index"`
	PersonID         uint       `json:"-" gorm:"not null;index"`
	NotificationType string     `json:"notification_type" gorm:"size:30;index"`
	Message          string     `json:"message"`
	IsRead           bool       `json:"is_read" gorm:"default:false;index"`
	CreatedAt        time.Time  `json:"created_at" gorm:"index"`
	ReadAt           *time.Time `json:"read_at"`

	Person Person `json:"-" gorm:"foreignKey:PersonID"`
}

type CreateNotificationRequest struct {
	AccountID        uint   `json:"account_id" validate:"required"`
	PersonID         uint   `json:"person_id" validate:"required"`
	NotificationType string `json:"notification_type" validate:"required"`
	Message          string `json:"message" validate:"required"`
}

type BulkNotificationRequest struct {
	AccountIDs       []uint `json:"account_ids" validate:"required,min=1"`
	PersonID         uint   `json:"person_id" validate:"required"`
	NotificationType string `json:"notification_type" validate:"required"`
	Message          string `json:"message" validate:"required"`
}

type MarkManyReadRequest struct {
	NotificationIDs []uint `json:"notification_ids" validate:"required,min=1"`
}

// NotificationPersonCard is the trimmed person view embedded in feed entries.
type NotificationPersonCard struct {
	ID             uint           `json:"id"`
	FirstName      string         `json:"first_name"`
	LastName       string         `json:"last_name"`
	FullName       string         `json:"full_name"`
	Age            *int           `json:"age"`
	Occupation     string         `json:"occupation"`
	Location       string         `json:"location"`
	Verified       bool           `json:"verified"`
	ProfilePicture *string        `json:"profile_picture"`
	MembershipType MembershipType `json:"membership_type"`
}

type NotificationResponse struct {
	ID               uint                   `json:"id"`
	Person           NotificationPersonCard `json:"person"`
	NotificationType string                 `json:"notification_type"`
	Message          string                 `json:"message"`
	IsRead           bool                   `json:"is_read"`
	CreatedAt        time.Time              `json:"created_at"`
	ReadAt           *time.Time             `json:"read_at"`
	TimeAgo          string                 `json:"time_ago"`
}

type NotificationStats struct {
	Total  int64            `json:"total"`
	Unread int64            `json:"unread"`
	Read   int64            `json:"read"`
	ByType map[string]int64 `json:"by_type"`
}

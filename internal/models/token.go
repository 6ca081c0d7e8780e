package models

import (
	"time"
)

// AuthToken is the opaque bearer credential sent as "Authorization: Token <key>".
// Each account holds at most one reusable key; it is rotated on password change
// and deleted on logout.
type AuthToken struct {
	ID        uint      `json:"-" gorm:"primaryKey"`
	Key       string    `json:"key" gorm:"size:40;unique;not null"`
	AccountID uint      `json:"-" gorm:"unique;not null"`
	CreatedAt time.Time `json:"created_at"`

	Account Account `json:"-" gorm:"foreignKey:AccountID"`
}

func (AuthToken) TableName() string { return "auth_tokens" }

// AdminCode is a pre-shared code that unlocks the administrative frontend.
type AdminCode struct {
	ID   uint   `json:"-" gorm:"primaryKey"`
	Code string `json:"code" gorm:"unique;not null"`
}

func (AdminCode) TableName() string { return "admin_codes" }

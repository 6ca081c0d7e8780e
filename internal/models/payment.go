package models

import "time"

type CheckoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// MembershipPurchase tracks a tier upgrade bought through Stripe checkout.
type MembershipPurchase struct {
	ID              uint           `json:"id" gorm:"primaryKey"`
	AccountID       uint           `json:"account_id" gorm:"not null;index"`
	Tier            MembershipType `json:"tier" gorm:"type:varchar(10);not null"`
	Price           float64        `json:"price" gorm:"not null"`
	StripeSessionID string         `json:"stripe_session_id" gorm:"unique;not null"`
	Status          string         `json:"status" gorm:"not null;default:'pending'"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

const (
	PurchaseStatusPending   = "pending"
	PurchaseStatusCompleted = "completed"
)

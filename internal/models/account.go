package models

import (
	"time"
)

type Account struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Email    string `json:"email" gorm:"unique;not null"`
	Password string `json:"-" gorm:"not null"`

	FirstName string `json:"first_name" gorm:"not null"`
	LastName  string `json:"last_name" gorm:"not null"`

	DateOfBirth  *time.Time `json:"date_of_birth"`
	PlaceOfBirth string     `json:"place_of_birth"`
	Nationality  string     `json:"nationality"`
	CityCountry  string     `json:"city_country"`
	Gender       string     `json:"gender"`
	FullAddress  string     `json:"full_address"`
	PhoneNumber  string     `json:"phone_number"`

	MembershipType MembershipType `json:"membership_type" gorm:"type:varchar(10);default:'regular'"`
	Interests      []string       `json:"interests" gorm:"type:json;serializer:json"`

	Bio               string   `json:"bio"`
	Occupation        string   `json:"occupation"`
	Education         string   `json:"education"`
	Height            string   `json:"height"`
	Location          string   `json:"location"`
	NetWorth          string   `json:"net_worth"`
	LookingFor        string   `json:"looking_for"`
	RelationshipGoals []string `json:"relationship_goals" gorm:"type:json;serializer:json"`

	// Viewer-side coordinates for distance computation.
	Latitude  *float64 `json:"latitude" gorm:"type:decimal(9,6)"`
	Longitude *float64 `json:"longitude" gorm:"type:decimal(9,6)"`

	// Single-value primary picture, takes priority over the photo set.
	ProfilePicture string `json:"profile_picture,omitempty"`

	IsApproved bool `json:"is_approved" gorm:"default:false"`
	IsActive   bool `json:"is_active" gorm:"default:true"`
	IsStaff    bool `json:"is_staff" gorm:"default:false"`
	Verified   bool `json:"verified" gorm:"default:false"`

	DateJoined time.Time  `json:"date_joined" gorm:"autoCreateTime"`
	LastLogin  *time.Time `json:"last_login"`

	ProfileViews   int `json:"profile_views" gorm:"default:0"`
	MatchesCount   int `json:"matches_count" gorm:"default:0"`
	FavoritesCount int `json:"favorites_count" gorm:"default:0"`
}

func (Account) TableName() string { return "users" }

type AccountPhoto struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	AccountID        uint      `json:"-" gorm:"not null;index"`
	ImageRef         string    `json:"-" gorm:"not null"`
	IsProfilePicture bool      `json:"is_profile_picture" gorm:"default:false"`
	DisplayOrder     int       `json:"order" gorm:"default:0"`
	UploadedAt       time.Time `json:"uploaded_at" gorm:"autoCreateTime"`
}

func (AccountPhoto) TableName() string { return "user_photos" }

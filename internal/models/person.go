package models

import (
	"time"
)

// Person is a browsable directory profile. Unlike Account it never
// authenticates; age is stored and recomputed whenever date_of_birth changes.
type Person struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	FirstName string `json:"first_name" gorm:"not null"`
	LastName  string `json:"last_name" gorm:"not null"`
	Email     string `json:"email" gorm:"unique;not null"`

	DateOfBirth  time.Time `json:"date_of_birth" gorm:"not null"`
	Age          *int      `json:"age"`
	PlaceOfBirth string    `json:"place_of_birth"`
	Nationality  string    `json:"nationality"`
	CityCountry  string    `json:"city_country"`
	Gender       string    `json:"gender" gorm:"not null"`
	FullAddress  string    `json:"full_address"`
	PhoneNumber  string    `json:"phone_number"`

	Bio               string   `json:"bio"`
	Occupation        string   `json:"occupation"`
	Education         string   `json:"education"`
	Height            string   `json:"height"`
	Location          string   `json:"location"`
	NetWorth          string   `json:"net_worth"`
	LookingFor        string   `json:"looking_for"`
	RelationshipGoals []string `json:"relationship_goals" gorm:"type:json;serializer:json"`
	Interests         []string `json:"interests" gorm:"type:json;serializer:json"`

	MembershipType MembershipType `json:"membership_type" gorm:"type:varchar(10);default:'regular'"`
	Verified       bool           `json:"verified" gorm:"default:false"`
	IsActive       bool           `json:"is_active" gorm:"default:true"`

	Whatsapp  string `json:"-"`
	Instagram string `json:"-"`
	Twitter   string `json:"-"`
	Telegram  string `json:"-"`

	Latitude  *float64 `json:"-" gorm:"type:decimal(9,6)"`
	Longitude *float64 `json:"-" gorm:"type:decimal(9,6)"`

	ProfilePicture string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ProfileViews int `json:"profile_views" gorm:"default:0"`

	Photos []PersonPhoto `json:"-" gorm:"foreignKey:PersonID"`
}

func (Person) TableName() string { return "people" }

type PersonPhoto struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	PersonID         uint      `json:"-" gorm:"not null;index"`
	ImageRef         string    `json:"-" gorm:"not null"`
	IsProfilePicture bool      `json:"is_profile_picture" gorm:"default:false"`
	DisplayOrder     int       `json:"order" gorm:"default:0"`
	UploadedAt       time.Time `json:"uploaded_at" gorm:"autoCreateTime"`
}

func (PersonPhoto) TableName() string { return "people_photos" }

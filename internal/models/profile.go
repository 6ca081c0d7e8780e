package models

import (
	"time"
)

// PhotoResponse is the API view of an owned photo with its URL materialized.
type PhotoResponse struct {
	ID               uint      `json:"id"`
	Image            string    `json:"image"`
	IsProfilePicture bool      `json:"is_profile_picture"`
	Order            int       `json:"order"`
	UploadedAt       time.Time `json:"uploaded_at"`
}

// ProfileResponse is the authenticated account's own profile view.
type ProfileResponse struct {
	ID                uint            `json:"id"`
	Email             string          `json:"email"`
	FirstName         string          `json:"first_name"`
	LastName          string          `json:"last_name"`
	FullName          string          `json:"full_name"`
	Age               *int            `json:"age"`
	DateOfBirth       *time.Time      `json:"date_of_birth"`
	PlaceOfBirth      string          `json:"place_of_birth"`
	Nationality       string          `json:"nationality"`
	CityCountry       string          `json:"city_country"`
	Gender            string          `json:"gender"`
	FullAddress       string          `json:"full_address"`
	PhoneNumber       string          `json:"phone_number"`
	MembershipType    MembershipType  `json:"membership_type"`
	Interests         []string        `json:"interests"`
	Bio               string          `json:"bio"`
	Occupation        string          `json:"occupation"`
	Education         string          `json:"education"`
	Height            string          `json:"height"`
	Location          string          `json:"location"`
	NetWorth          string          `json:"net_worth"`
	LookingFor        string          `json:"looking_for"`
	RelationshipGoals []string        `json:"relationship_goals"`
	IsApproved        bool            `json:"is_approved"`
	Verified          bool            `json:"verified"`
	DateJoined        time.Time       `json:"date_joined"`
	ProfileViews      int             `json:"profile_views"`
	MatchesCount      int             `json:"matches_count"`
	FavoritesCount    int             `json:"favorites_count"`
	Photos            []PhotoResponse `json:"photos"`
	ProfilePicture    *string         `json:"profile_picture"`
}

type AuthResponse struct {
	Message string          `json:"message"`
	Token   string          `json:"token,omitempty"`
	User    ProfileResponse `json:"user"`
}

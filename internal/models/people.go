package models

import (
	"time"
)

// PeopleFilters are the query parameters accepted by the people listing.
type PeopleFilters struct {
	MembershipTier string
	VerifiedOnly   bool
	AgeMin         *int
	AgeMax         *int
	Gender         string
	Search         string
}

// PersonCard is the trimmed listing view shown on the explore page.
type PersonCard struct {
	ID             uint           `json:"id"`
	FirstName      string         `json:"first_name"`
	LastName       string         `json:"last_name"`
	FullName       string         `json:"full_name"`
	Age            *int           `json:"age"`
	Occupation     string         `json:"occupation"`
	Location       string         `json:"location"`
	Verified       bool           `json:"verified"`
	ProfilePicture *string        `json:"profile_picture"`
	Interests      []string       `json:"interests"`
	Distance       string         `json:"distance"`
	MembershipType MembershipType `json:"membership_type"`
	Nationality    string         `json:"nationality"`
	CityCountry    string         `json:"city_country"`
}

type PeopleListResponse struct {
	Results             []PersonCard   `json:"results"`
	Count               int64          `json:"count"`
	UserMembership      MembershipType `json:"user_membership"`
	UserMembershipLevel int            `json:"user_membership_level"`
}

// PersonDetail is the full profile view returned once the tier gate grants access.
type PersonDetail struct {
	ID                uint              `json:"id"`
	FirstName         string            `json:"first_name"`
	LastName          string            `json:"last_name"`
	FullName          string            `json:"full_name"`
	Age               *int              `json:"age"`
	DateOfBirth       time.Time         `json:"date_of_birth"`
	PlaceOfBirth      string            `json:"place_of_birth"`
	Nationality       string            `json:"nationality"`
	CityCountry       string            `json:"city_country"`
	Gender            string            `json:"gender"`
	PhoneNumber       string            `json:"phone_number"`
	Bio               string            `json:"bio"`
	Occupation        string            `json:"occupation"`
	Education         string            `json:"education"`
	Height            string            `json:"height"`
	Location          string            `json:"location"`
	NetWorth          string            `json:"net_worth"`
	LookingFor        string            `json:"looking_for"`
	RelationshipGoals []string          `json:"relationship_goals"`
	Interests         []string          `json:"interests"`
	MembershipType    MembershipType    `json:"membership_type"`
	Verified          bool              `json:"verified"`
	ProfileViews      int               `json:"profile_views"`
	ProfilePicture    *string           `json:"profile_picture"`
	Photos            []PhotoResponse   `json:"photos"`
	Distance          string            `json:"distance"`
	Images            []string          `json:"images"`
	SocialMedia       map[string]string `json:"social_media"`
}

// LockedProfile is the minimal representation returned on gate denial. It
// leaks nothing beyond the tier needed to unlock the subject.
type LockedProfile struct {
	Error              string         `json:"error"`
	Message            string         `json:"message"`
	RequiredMembership MembershipType `json:"required_membership"`
	UserMembership     MembershipType `json:"user_membership"`
	Locked             bool           `json:"locked"`
}

type CheckAccessResponse struct {
	HasAccess        bool            `json:"has_access"`
	PersonMembership MembershipType  `json:"person_membership"`
	UserMembership   MembershipType  `json:"user_membership"`
	RequiredUpgrade  *MembershipType `json:"required_upgrade"`
}

type PeopleStats struct {
	TotalPeople      int64                    `json:"total_people"`
	AccessiblePeople int64                    `json:"accessible_people"`
	VerifiedPeople   int64                    `json:"verified_people"`
	ByTier           map[MembershipType]int64 `json:"by_tier"`
	UserMembership   MembershipType           `json:"user_membership"`
	UserLevel        int                      `json:"user_level"`
}

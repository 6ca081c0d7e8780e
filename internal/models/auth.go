package models

type RegisterRequest struct {
	Email           string   `json:"email" validate:"required,email"`
	Password        string   `json:"password" validate:"required,min=8"`
	ConfirmPassword string   `json:"confirm_password" validate:"required"`
	FirstName       string   `json:"first_name" validate:"required"`
	LastName        string   `json:"last_name" validate:"required"`
	DateOfBirth     string   `json:"date_of_birth"`
	PlaceOfBirth    string   `json:"place_of_birth"`
	Nationality     string   `json:"nationality"`
	CityCountry     string   `json:"city_country"`
	Gender          string   `json:"gender" validate:"omitempty,oneof=male female other"`
	FullAddress     string   `json:"full_address"`
	PhoneNumber     string   `json:"phone_number"`
	MembershipType  string   `json:"membership_type" validate:"omitempty,oneof=regular gold platinum"`
	Interests       []string `json:"interests"`
	PhotoURLs       []string `json:"photo_urls" validate:"omitempty,dive,url"`
	CaptchaToken    string   `json:"captcha_token"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

type VerifyAdminCodeRequest struct {
	Code string `json:"code" validate:"required"`
}

// UpdateProfileRequest uses pointers so omitted fields keep their stored value.
type UpdateProfileRequest struct {
	Email             *string   `json:"email" validate:"omitempty,email"`
	FirstName         *string   `json:"first_name"`
	LastName          *string   `json:"last_name"`
	DateOfBirth       *string   `json:"date_of_birth"`
	PlaceOfBirth      *string   `json:"place_of_birth"`
	Nationality       *string   `json:"nationality"`
	CityCountry       *string   `json:"city_country"`
	Gender            *string   `json:"gender" validate:"omitempty,oneof=male female other"`
	FullAddress       *string   `json:"full_address"`
	PhoneNumber       *string   `json:"phone_number"`
	Interests         *[]string `json:"interests"`
	Bio               *string   `json:"bio"`
	Occupation        *string   `json:"occupation"`
	Education         *string   `json:"education"`
	Height            *string   `json:"height"`
	Location          *string   `json:"location"`
	NetWorth          *string   `json:"net_worth"`
	LookingFor        *string   `json:"looking_for"`
	RelationshipGoals *[]string `json:"relationship_goals"`
	Latitude          *float64  `json:"latitude"`
	Longitude         *float64  `json:"longitude"`
}

package service

import (
	"fmt"
	"time"

	"github.com/elitesugar/elitesugar-backend/internal/models"
	"github.com/elitesugar/elitesugar-backend/internal/repository"
	"github.com/elitesugar/elitesugar-backend/pkg/bcrypt"
	"github.com/elitesugar/elitesugar-backend/pkg/utils"
)

type AccountService struct {
	accountRepo *repository.AccountRepository
	photoRepo   *repository.PhotoRepository
	tokenRepo   *repository.TokenRepository
	imageBase   string
}

func NewAccountService(
	accountRepo *repository.AccountRepository,
	photoRepo *repository.PhotoRepository,
	tokenRepo *repository.TokenRepository,
	imageBase string,
) *AccountService {
	return &AccountService{
		accountRepo: accountRepo,
		photoRepo:   photoRepo,
		tokenRepo:   tokenRepo,
		imageBase:   imageBase,
	}
}

func (s *AccountService) GetProfile(accountID uint) (*models.ProfileResponse, error) {
	account, err := s.accountRepo.GetByID(accountID)
	if err != nil {
		return nil, ErrAccountNotFound
	}

	photos, err := s.photoRepo.GetByAccountID(account.ID)
	if err != nil {
		return nil, err
	}

	profile := profileResponse(s.imageBase, account, photos)
	return &profile, nil
}

// UpdateProfile applies only the fields present in the request; omitted
// fields keep their stored values.
func (s *AccountService) UpdateProfile(accountID uint, req models.UpdateProfileRequest) (*models.ProfileResponse, error) {
	account, err := s.accountRepo.GetByID(accountID)
	if err != nil {
		return nil, ErrAccountNotFound
	}

	if req.Email != nil && *req.Email != account.Email {
		exists, err := s.accountRepo.EmailExistsExcluding(*req.Email, account.ID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrEmailExists
		}
		account.Email = *req.Email
	}

	if req.FirstName != nil {
		account.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		account.LastName = *req.LastName
	}
	if req.DateOfBirth != nil {
		if *req.DateOfBirth == "" {
			account.DateOfBirth = nil
		} else {
			dob, err := time.Parse(dateLayout, *req.DateOfBirth)
			if err != nil {
				return nil, fmt.Errorf("invalid date_of_birth: %v", err)
			}
			account.DateOfBirth = &dob
		}
	}
	if req.PlaceOfBirth != nil {
		account.PlaceOfBirth = *req.PlaceOfBirth
	}
	if req.Nationality != nil {
		account.Nationality = *req.Nationality
	}
	if req.CityCountry != nil {
		account.CityCountry = *req.CityCountry
	}
	if req.Gender != nil {
		account.Gender = *req.Gender
	}
	if req.FullAddress != nil {
		account.FullAddress = *req.FullAddress
	}
	if req.PhoneNumber != nil {
		account.PhoneNumber = *req.PhoneNumber
	}
	if req.Interests != nil {
		account.Interests = *req.Interests
	}
	if req.Bio != nil {
		account.Bio = *req.Bio
	}
	if req.Occupation != nil {
		account.Occupation = *req.Occupation
	}
	if req.Education != nil {
		account.Education = *req.Education
	}
	if req.Height != nil {
		account.Height = *req.Height
	}
	if req.Location != nil {
		account.Location = *req.Location
	}
	if req.NetWorth != nil {
		account.NetWorth = *req.NetWorth
	}
	if req.LookingFor != nil {
		account.LookingFor = *req.LookingFor
	}
	if req.RelationshipGoals != nil {
		account.RelationshipGoals = *req.RelationshipGoals
	}
	if req.Latitude != nil {
		account.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		account.Longitude = req.Longitude
	}

	if err := s.accountRepo.Update(account); err != nil {
		return nil, err
	}

	photos, err := s.photoRepo.GetByAccountID(account.ID)
	if err != nil {
		return nil, err
	}

	profile := profileResponse(s.imageBase, account, photos)
	return &profile, nil
}

// ChangePassword verifies the current password before storing the new one,
// then rotates the bearer token. Old sessions are cut off; the caller gets
// the fresh key back.
func (s *AccountService) ChangePassword(accountID uint, req models.ChangePasswordRequest) (string, error) {
	if req.NewPassword != req.ConfirmPassword {
		return "", ErrPasswordMismatch
	}

	account, err := s.accountRepo.GetByID(accountID)
	if err != nil {
		return "", ErrAccountNotFound
	}

	if err := bcrypt.ComparePassword(account.Password, req.CurrentPassword); err != nil {
		return "", ErrCurrentPassword
	}

	hashedPassword, err := bcrypt.HashPassword(req.NewPassword)
	if err != nil {
		return "", err
	}

	if err := s.accountRepo.UpdatePassword(account.ID, hashedPassword); err != nil {
		return "", err
	}

	if _, err := s.tokenRepo.DeleteByAccountID(account.ID); err != nil {
		return "", err
	}

	key, err := utils.GenerateTokenKey()
	if err != nil {
		return "", err
	}

	token := &models.AuthToken{Key: key, AccountID: account.ID}
	if err := s.tokenRepo.Create(token); err != nil {
		return "", err
	}
	return token.Key, nil
}

// profileResponse assembles the account's own profile view from the stored
// record and its ordered photo set.
func profileResponse(imageBase string, account *models.Account, photos []models.AccountPhoto) models.ProfileResponse {
	refs := accountPhotoRefs(photos)

	interests := account.Interests
	if interests == nil {
		interests = []string{}
	}
	goals := account.RelationshipGoals
	if goals == nil {
		goals = []string{}
	}

	return models.ProfileResponse{
		ID:                account.ID,
		Email:             account.Email,
		FirstName:         account.FirstName,
		LastName:          account.LastName,
		FullName:          fullName(account.FirstName, account.LastName),
		Age:               ageFromDate(account.DateOfBirth, time.Now()),
		DateOfBirth:       account.DateOfBirth,
		PlaceOfBirth:      account.PlaceOfBirth,
		Nationality:       account.Nationality,
		CityCountry:       account.CityCountry,
		Gender:            account.Gender,
		FullAddress:       account.FullAddress,
		PhoneNumber:       account.PhoneNumber,
		MembershipType:    account.MembershipType,
		Interests:         interests,
		Bio:               account.Bio,
		Occupation:        account.Occupation,
		Education:         account.Education,
		Height:            account.Height,
		Location:          account.Location,
		NetWorth:          account.NetWorth,
		LookingFor:        account.LookingFor,
		RelationshipGoals: goals,
		IsApproved:        account.IsApproved,
		Verified:          account.Verified,
		DateJoined:        account.DateJoined,
		ProfileViews:      account.ProfileViews,
		MatchesCount:      account.MatchesCount,
		FavoritesCount:    account.FavoritesCount,
		Photos:            accountPhotoResponses(imageBase, photos),
		ProfilePicture:    profilePictureURL(imageBase, account.ProfilePicture, refs),
	}
}

package service

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/elitesugar/elitesugar-backend/internal/models"
	"github.com/elitesugar/elitesugar-backend/internal/repository"
	"github.com/elitesugar/elitesugar-backend/pkg/bcrypt"
	"github.com/elitesugar/elitesugar-backend/pkg/captcha"
	"github.com/elitesugar/elitesugar-backend/pkg/email"
	jwtPkg "github.com/elitesugar/elitesugar-backend/pkg/jwt"
	"github.com/elitesugar/elitesugar-backend/pkg/utils"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type AuthService struct {
	accountRepo   *repository.AccountRepository
	photoRepo     *repository.PhotoRepository
	tokenRepo     *repository.TokenRepository
	adminCodeRepo *repository.AdminCodeRepository
	emailService  *email.EmailService
	imageBase     string
	frontendURL   string
	jwtSecret     []byte
	jwtIssuer     string
}

func NewAuthService(
	accountRepo *repository.AccountRepository,
	photoRepo *repository.PhotoRepository,
	tokenRepo *repository.TokenRepository,
	adminCodeRepo *repository.AdminCodeRepository,
	emailService *email.EmailService,
	imageBase string,
	frontendURL string,
) *AuthService {
	return &AuthService{
		accountRepo:   accountRepo,
		photoRepo:     photoRepo,
		tokenRepo:     tokenRepo,
		adminCodeRepo: adminCodeRepo,
		emailService:  emailService,
		imageBase:     imageBase,
		frontendURL:   frontendURL,
		jwtSecret:     []byte(os.Getenv("JWT_SECRET")),
		jwtIssuer:     os.Getenv("JWT_ISSUER"),
	}
}

// Register creates a pending account. No token is issued: the account is not
// usable until an administrator sets the approval flag.
func (s *AuthService) Register(req models.RegisterRequest) (*models.ProfileResponse, error) {
	ok, err := captcha.VerifyTurnstile(req.CaptchaToken)
	if err != nil || !ok {
		return nil, ErrCaptchaFailed
	}

	if req.Password != req.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}

	exists, err := s.accountRepo.EmailExists(req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailExists
	}

	hashedPassword, err := bcrypt.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	account := &models.Account{
		Email:          req.Email,
		Password:       hashedPassword,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		PlaceOfBirth:   req.PlaceOfBirth,
		Nationality:    req.Nationality,
		CityCountry:    req.CityCountry,
		Gender:         req.Gender,
		FullAddress:    req.FullAddress,
		PhoneNumber:    req.PhoneNumber,
		MembershipType: models.MembershipRegular,
		Interests:      req.Interests,
		IsApproved:     false,
		IsActive:       true,
	}

	if req.DateOfBirth != "" {
		dob, err := time.Parse(dateLayout, req.DateOfBirth)
		if err != nil {
			return nil, fmt.Errorf("invalid date_of_birth: %v", err)
		}
		account.DateOfBirth = &dob
	}

	if req.MembershipType != "" {
		account.MembershipType = models.MembershipType(req.MembershipType)
	}

	if err := s.accountRepo.Create(account); err != nil {
		return nil, err
	}

	// Seed the photo set from pre-uploaded URLs; the first one becomes the
	// profile picture.
	for index, photoURL := range req.PhotoURLs {
		photo := &models.AccountPhoto{
			AccountID:        account.ID,
			ImageRef:         photoURL,
			IsProfilePicture: index == 0,
			DisplayOrder:     index,
		}
		if err := s.photoRepo.Create(photo); err != nil {
			return nil, err
		}
	}

	go s.emailService.SendWelcomeEmail(account.Email, account.FirstName)

	photos, err := s.photoRepo.GetByAccountID(account.ID)
	if err != nil {
		return nil, err
	}

	profile := profileResponse(s.imageBase, account, photos)
	return &profile, nil
}

func (s *AuthService) Login(req models.LoginRequest) (*models.AuthResponse, error) {
	account, err := s.accountRepo.GetByEmail(req.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.ComparePassword(account.Password, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !account.IsApproved {
		return nil, ErrAccountNotApproved
	}
	if !account.IsActive {
		return nil, ErrAccountDeactivated
	}

	token, err := s.getOrCreateToken(account.ID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := s.accountRepo.UpdateLastLogin(account.ID, now); err != nil {
		return nil, err
	}

	photos, err := s.photoRepo.GetByAccountID(account.ID)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Message: "Login successful",
		Token:   token.Key,
		User:    profileResponse(s.imageBase, account, photos),
	}, nil
}

// getOrCreateToken reuses the account's existing key, issuing one only when
// none is stored.
func (s *AuthService) getOrCreateToken(accountID uint) (*models.AuthToken, error) {
	token, err := s.tokenRepo.GetByAccountID(accountID)
	if err == nil {
		return token, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	key, err := utils.GenerateTokenKey()
	if err != nil {
		return nil, err
	}

	token = &models.AuthToken{Key: key, AccountID: accountID}
	if err := s.tokenRepo.Create(token); err != nil {
		return nil, err
	}
	return token, nil
}

// Logout invalidates the caller's token. A missing token row is reported as a
// plain error message instead of propagating the storage fault.
func (s *AuthService) Logout(accountID uint) error {
	deleted, err := s.tokenRepo.DeleteByAccountID(accountID)
	if err != nil || deleted == 0 {
		return errors.New("logout failed")
	}
	return nil
}

// VerifyAdminCode checks a one-off staff access code against the stored set.
func (s *AuthService) VerifyAdminCode(code string) (bool, error) {
	return s.adminCodeRepo.Exists(code)
}

// ValidateToken resolves a bearer key to its account.
func (s *AuthService) ValidateToken(key string) (*models.Account, error) {
	token, err := s.tokenRepo.GetByKey(key)
	if err != nil {
		return nil, err
	}
	return &token.Account, nil
}

// ForgotPassword never reveals whether the address is registered.
func (s *AuthService) ForgotPassword(emailAddr string) error {
	account, err := s.accountRepo.GetByEmail(emailAddr)
	if err != nil {
		return nil
	}

	claims := jwt.MapClaims{
		"sub":  account.Email,
		"exp":  time.Now().Add(jwtPkg.TokenExpiryReset).Unix(),
		"iat":  time.Now().Unix(),
		"iss":  s.jwtIssuer,
		"type": "password_reset",
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	resetToken, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return err
	}

	resetURL := fmt.Sprintf("%s/reset-password?token=%s", s.frontendURL, resetToken)
	return s.emailService.SendPasswordResetEmail(account.Email, resetURL)
}

func (s *AuthService) ResetPassword(tokenString, newPassword string) error {
	claims, err := jwtPkg.ValidateToken(tokenString)
	if err != nil {
		return ErrInvalidResetToken
	}

	emailAddr, ok := claims["sub"].(string)
	if !ok {
		return ErrInvalidResetToken
	}
	if tokenType, _ := claims["type"].(string); tokenType != "password_reset" {
		return ErrInvalidResetToken
	}

	account, err := s.accountRepo.GetByEmail(emailAddr)
	if err != nil {
		return ErrAccountNotFound
	}

	hashedPassword, err := bcrypt.HashPassword(newPassword)
	if err != nil {
		return err
	}

	if err := s.accountRepo.UpdatePassword(account.ID, hashedPassword); err != nil {
		return err
	}

	// Any stored bearer token predates the new password.
	_, err = s.tokenRepo.DeleteByAccountID(account.ID)
	return err
}

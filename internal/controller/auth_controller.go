package controller

import (
	"github.com/elitesugar/elitesugar-backend/internal/models"
	"github.com/elitesugar/elitesugar-backend/internal/service"
)

type AuthController struct {
	authService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

func (c *AuthController) Register(req models.RegisterRequest) (*models.ProfileResponse, error) {
	return c.authService.Register(req)
}

func (c *AuthController) Login(req models.LoginRequest) (*models.AuthResponse, error) {
	return c.authService.Login(req)
}

func (c *AuthController) Logout(accountID uint) error {
	return c.authService.Logout(accountID)
}

func (c *AuthController) ForgotPassword(email string) error {
	return c.authService.ForgotPassword(email)
}

func (c *AuthController) ResetPassword(token string, newPassword string) error {
	return c.authService.ResetPassword(token, newPassword)
}

func (c *AuthController) VerifyAdminCode(code string) (bool, error) {
	return c.authService.VerifyAdminCode(code)
}

package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/elitesugar/elitesugar-backend/internal/controller"
	"github.com/elitesugar/elitesugar-backend/internal/models"
	"github.com/elitesugar/elitesugar-backend/internal/service"
	"github.com/elitesugar/elitesugar-backend/pkg/utils"
)

type AuthHandler struct {
	authController *controller.AuthController
	validator      *utils.Validator
}

func NewAuthHandler(authController *controller.AuthController, validator *utils.Validator) *AuthHandler {
	return &AuthHandler{
		authController: authController,
		validator:      validator,
	}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req models.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	user, err := h.authController.Register(req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(user, "Registration successful, your account is pending approval"))
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	auth, err := h.authController.Login(req)
	if err != nil {
		if errors.Is(err, service.ErrAccountNotApproved) {
			return c.Status(fiber.StatusForbidden).JSON(models.Response{
				Error: err.Error(),
				Data:  fiber.Map{"is_approved": false},
			})
		}
		if errors.Is(err, service.ErrAccountDeactivated) {
			return c.Status(fiber.StatusForbidden).JSON(models.ErrorResponse(err.Error()))
		}
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(auth, "Login successful"))
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	accountID := c.Locals("accountID").(uint)

	if err := h.authController.Logout(accountID); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(nil, "Logged out successfully"))
}

func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var req models.ForgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	if err := h.authController.ForgotPassword(req.Email); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(nil, "If the address is registered, a reset email has been sent"))
}

func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var req models.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	if err := h.authController.ResetPassword(req.Token, req.NewPassword); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(nil, "Password reset successful"))
}

func (h *AuthHandler) VerifyAdminCode(c *fiber.Ctx) error {
	var req models.VerifyAdminCodeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	valid, err := h.authController.VerifyAdminCode(req.Code)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Verification failed"))
	}
	if !valid {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Invalid admin code"))
	}

	return c.JSON(models.SuccessResponse(fiber.Map{"valid": true}, "Admin code verified"))
}

// ValidateToken lets the frontend confirm a stored key is still usable. The
// auth middleware has already resolved it by the time this runs.
func (h *AuthHandler) ValidateToken(c *fiber.Ctx) error {
	return c.JSON(models.SuccessResponse(fiber.Map{
		"valid":      true,
		"account_id": c.Locals("accountID"),
		"email":      c.Locals("accountEmail"),
		"membership": c.Locals("membership"),
	}, "Token is valid"))
}

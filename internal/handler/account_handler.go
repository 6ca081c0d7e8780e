package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/elitesugar/elitesugar-backend/internal/models"
	"github.com/elitesugar/elitesugar-backend/internal/service"
	"github.com/elitesugar/elitesugar-backend/pkg/utils"
)

type AccountHandler struct {
	accountService *service.AccountService
	validator      *utils.Validator
}

func NewAccountHandler(accountService *service.AccountService, validator *utils.Validator) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
		validator:      validator,
	}
}

func (h *AccountHandler) GetProfile(c *fiber.Ctx) error {
	accountID := c.Locals("accountID").(uint)

	profile, err := h.accountService.GetProfile(accountID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(profile, "Profile retrieved"))
}

func (h *AccountHandler) UpdateProfile(c *fiber.Ctx) error {
	accountID := c.Locals("accountID").(uint)

	var req models.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	profile, err := h.accountService.UpdateProfile(accountID, req)
	if err != nil {
		status := fiber.StatusBadRequest
		if errors.Is(err, service.ErrAccountNotFound) {
			status = fiber.StatusNotFound
		}
		return c.Status(status).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(profile, "Profile updated"))
}

func (h *AccountHandler) ChangePassword(c *fiber.Ctx) error {
	accountID := c.Locals("accountID").(uint)

	var req models.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	token, err := h.accountService.ChangePassword(accountID, req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(fiber.Map{"token": token}, "Password changed"))
}

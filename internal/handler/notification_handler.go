package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/elitesugar/elitesugar-backend/internal/models"
	"github.com/elitesugar/elitesugar-backend/internal/service"
	"github.com/elitesugar/elitesugar-backend/pkg/utils"
)

type NotificationHandler struct {
	notificationService *service.NotificationService
	validator           *utils.Validator
}

func NewNotificationHandler(notificationService *service.NotificationService, validator *utils.Validator) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
		validator:           validator,
	}
}

func (h *NotificationHandler) ListNotifications(c *fiber.Ctx) error {
	accountID := c.Locals("accountID").(uint)

	var isRead *bool
	switch c.Query("is_read") {
	case "true":
		value := true
		isRead = &value
	case "false":
		value := false
		isRead = &value
	}

	// A non-numeric limit falls back to the default instead of erroring.
	limit := service.DefaultFeedLimit
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	notifications, err := h.notificationService.ListNotifications(accountID, isRead, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Failed to list notifications"))
	}

	return c.JSON(models.SuccessResponse(notifications, "Notifications retrieved"))
}

func (h *NotificationHandler) GetNotification(c *fiber.Ctx) error {
	accountID := c.Locals("accountID").(uint)

	notificationID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid notification ID"))
	}

	notification, err := h.notificationService.GetNotification(accountID, uint(notificationID))
	if err != nil {
		if errors.Is(err, service.ErrNotificationNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse(err.Error()))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Failed to load notification"))
	}

	return c.JSON(models.SuccessResponse(notification, "Notification retrieved"))
}

func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	accountID := c.Locals("accountID").(uint)

	notificationID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid notification ID"))
	}

	updated, err := h.notificationService.MarkRead(accountID, uint(notificationID))
	if err != nil {
		if errors.Is(err, service.ErrNotificationNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse(err.Error()))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Failed to mark notification read"))
	}

	return c.JSON(models.SuccessResponse(fiber.Map{"updated": updated}, "Notification marked as read"))
}

func (h *NotificationHandler) MarkManyRead(c *fiber.Ctx) error {
	accountID := c.Locals("accountID").(uint)

	var req models.MarkManyReadRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	updated, err := h.notificationService.MarkManyRead(accountID, req.NotificationIDs)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Failed to mark notifications read"))
	}

	return c.JSON(models.SuccessResponse(fiber.Map{"updated": updated}, "Notifications marked as read"))
}

func (h *NotificationHandler) MarkAllRead(c *fiber.Ctx) error {
	accountID := c.Locals("accountID").(uint)

	updated, err := h.notificationService.MarkAllRead(accountID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Failed to mark notifications read"))
	}

	return c.JSON(models.SuccessResponse(fiber.Map{"updated": updated}, "All notifications marked as read"))
}

func (h *NotificationHandler) DeleteNotification(c *fiber.Ctx) error {
	accountID := c.Locals("accountID").(uint)

	notificationID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid notification ID"))
	}

	if err := h.notificationService.DeleteNotification(accountID, uint(notificationID)); err != nil {
		if errors.Is(err, service.ErrNotificationNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse(err.Error()))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Failed to delete notification"))
	}

	return c.JSON(models.SuccessResponse(nil, "Notification deleted"))
}

func (h *NotificationHandler) DeleteAllRead(c *fiber.Ctx) error {
	accountID := c.Locals("accountID").(uint)

	deleted, err := h.notificationService.DeleteAllRead(accountID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Failed to delete notifications"))
	}

	return c.JSON(models.SuccessResponse(fiber.Map{"deleted": deleted}, "Read notifications deleted"))
}

func (h *NotificationHandler) GetStats(c *fiber.Ctx) error {
	accountID := c.Locals("accountID").(uint)

	stats, err := h.notificationService.GetStats(accountID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Failed to load stats"))
	}

	return c.JSON(models.SuccessResponse(stats, "Notification stats retrieved"))
}

// CreateNotification is staff-only.
func (h *NotificationHandler) CreateNotification(c *fiber.Ctx) error {
	var req models.CreateNotificationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	notification, err := h.notificationService.CreateNotification(req)
	if err != nil {
		status := fiber.StatusBadRequest
		if errors.Is(err, service.ErrAccountNotFound) {
			status = fiber.StatusNotFound
		}
		return c.Status(status).JSON(models.ErrorResponse(err.Error()))
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(notification, "Notification created"))
}

// SendBulk is staff-only.
func (h *NotificationHandler) SendBulk(c *fiber.Ctx) error {
	var req models.BulkNotificationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	created, err := h.notificationService.SendBulk(req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(fiber.Map{"created": created}, "Notifications sent"))
}

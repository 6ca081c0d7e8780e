package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/elitesugar/elitesugar-backend/internal/models"
	"github.com/elitesugar/elitesugar-backend/internal/service"
	"github.com/elitesugar/elitesugar-backend/pkg/utils"
)

type PhotoHandler struct {
	photoService *service.PhotoService
	validator    *utils.Validator
}

func NewPhotoHandler(photoService *service.PhotoService, validator *utils.Validator) *PhotoHandler {
	return &PhotoHandler{
		photoService: photoService,
		validator:    validator,
	}
}

type photoUpload struct {
	ContentType string `validate:"supported_image"`
}

// UploadPhotos accepts a multipart form with one or more "photos" files.
func (h *PhotoHandler) UploadPhotos(c *fiber.Ctx) error {
	accountID := c.Locals("accountID").(uint)

	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid multipart form"))
	}

	files := form.File["photos"]

	for _, fileHeader := range files {
		upload := photoUpload{ContentType: fileHeader.Header.Get("Content-Type")}
		if err := h.validator.Struct(upload); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Unsupported image type"))
		}
	}

	result, err := h.photoService.UploadPhotos(accountID, files)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(result, "Photos uploaded"))
}

func (h *PhotoHandler) ListPhotos(c *fiber.Ctx) error {
	accountID := c.Locals("accountID").(uint)

	photos, err := h.photoService.ListPhotos(accountID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Failed to list photos"))
	}

	return c.JSON(models.SuccessResponse(photos, "Photos retrieved"))
}

func (h *PhotoHandler) DeletePhoto(c *fiber.Ctx) error {
	accountID := c.Locals("accountID").(uint)

	photoID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid photo ID"))
	}

	if err := h.photoService.DeletePhoto(accountID, uint(photoID)); err != nil {
		status := fiber.StatusBadRequest
		if errors.Is(err, service.ErrPhotoNotFound) {
			status = fiber.StatusNotFound
		}
		return c.Status(status).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(nil, "Photo deleted"))
}

func (h *PhotoHandler) SetProfilePicture(c *fiber.Ctx) error {
	accountID := c.Locals("accountID").(uint)

	photoID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid photo ID"))
	}

	if err := h.photoService.SetProfilePicture(accountID, uint(photoID)); err != nil {
		status := fiber.StatusBadRequest
		if errors.Is(err, service.ErrPhotoNotFound) {
			status = fiber.StatusNotFound
		}
		return c.Status(status).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(nil, "Profile picture updated"))
}

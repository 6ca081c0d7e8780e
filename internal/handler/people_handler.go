package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/elitesugar/elitesugar-backend/internal/models"
	"github.com/elitesugar/elitesugar-backend/internal/service"
)

type PeopleHandler struct {
	peopleService *service.PeopleService
}

func NewPeopleHandler(peopleService *service.PeopleService) *PeopleHandler {
	return &PeopleHandler{
		peopleService: peopleService,
	}
}

// parseFilters reads the listing query parameters. Non-numeric age bounds and
// out-of-enum gender values are ignored rather than rejected.
func parseFilters(c *fiber.Ctx) models.PeopleFilters {
	filters := models.PeopleFilters{
		MembershipTier: c.Query("membership_tier"),
		VerifiedOnly:   c.Query("verified_only") == "true",
		Search:         c.Query("search"),
	}

	if gender := c.Query("gender"); validGender(gender) {
		filters.Gender = gender
	}

	if raw := c.Query("age_min"); raw != "" {
		if ageMin, err := strconv.Atoi(raw); err == nil {
			filters.AgeMin = &ageMin
		}
	}
	if raw := c.Query("age_max"); raw != "" {
		if ageMax, err := strconv.Atoi(raw); err == nil {
			filters.AgeMax = &ageMax
		}
	}

	return filters
}

func validGender(gender string) bool {
	switch gender {
	case "male", "female", "other":
		return true
	}
	return false
}

func (h *PeopleHandler) ListPeople(c *fiber.Ctx) error {
	accountID := c.Locals("accountID").(uint)

	list, err := h.peopleService.ListPeople(accountID, parseFilters(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Failed to list people"))
	}

	return c.JSON(list)
}

// GetPersonDetail returns the full profile when the tier gate grants access,
// or the locked payload with 403 when it does not.
func (h *PeopleHandler) GetPersonDetail(c *fiber.Ctx) error {
	accountID := c.Locals("accountID").(uint)

	personID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid person ID"))
	}

	detail, locked, err := h.peopleService.GetPersonDetail(accountID, uint(personID))
	if err != nil {
		if errors.Is(err, service.ErrPersonNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse(err.Error()))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Failed to load profile"))
	}

	if locked != nil {
		return c.Status(fiber.StatusForbidden).JSON(locked)
	}

	return c.JSON(detail)
}

func (h *PeopleHandler) CheckAccess(c *fiber.Ctx) error {
	accountID := c.Locals("accountID").(uint)

	personID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid person ID"))
	}

	access, err := h.peopleService.CheckAccess(accountID, uint(personID))
	if err != nil {
		if errors.Is(err, service.ErrPersonNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse(err.Error()))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Failed to check access"))
	}

	return c.JSON(access)
}

func (h *PeopleHandler) GetStats(c *fiber.Ctx) error {
	accountID := c.Locals("accountID").(uint)

	stats, err := h.peopleService.GetStats(accountID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Failed to load stats"))
	}

	return c.JSON(stats)
}

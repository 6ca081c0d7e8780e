package handler

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/matryer/is"

	"github.com/elitesugar/elitesugar-backend/internal/models"
)

func filtersFor(t *testing.T, target string) models.PeopleFilters {
	t.Helper()

	var filters models.PeopleFilters
	app := fiber.New()
	app.Get("/people", func(c *fiber.Ctx) error {
		filters = parseFilters(c)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()

	return filters
}

func TestParseFilters(t *testing.T) {
	is := is.New(t)

	filters := filtersFor(t, "/people?gender=female&age_min=25&age_max=40&membership_tier=gold&verified_only=true&search=pilot")
	is.Equal(filters.Gender, "female")
	is.Equal(*filters.AgeMin, 25)
	is.Equal(*filters.AgeMax, 40)
	is.Equal(filters.MembershipTier, "gold")
	is.True(filters.VerifiedOnly)
	is.Equal(filters.Search, "pilot")
}

func TestParseFiltersDropsInvalidValues(t *testing.T) {
	is := is.New(t)

	// Out-of-enum gender values never reach the query builder.
	filters := filtersFor(t, "/people?gender=alien")
	is.Equal(filters.Gender, "")

	// Non-numeric age bounds are ignored the same way.
	filters = filtersFor(t, "/people?age_min=abc&age_max=")
	is.Equal(filters.AgeMin, nil)
	is.Equal(filters.AgeMax, nil)
}

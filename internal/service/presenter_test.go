package service

import (
	"testing"
	"time"

	"github.com/matryer/is"

	"github.com/elitesugar/elitesugar-backend/internal/models"
)

func TestPickProfilePicture(t *testing.T) {
	is := is.New(t)

	photos := []photoRef{
		{ref: "users/1/a.jpg"},
		{ref: "users/1/b.jpg", profile: true},
		{ref: "users/1/c.jpg"},
	}

	// The primary field wins over everything.
	ref, ok := pickProfilePicture("users/1/primary.jpg", photos)
	is.True(ok)
	is.Equal(ref, "users/1/primary.jpg")

	// Without a primary, the first flagged photo wins.
	ref, ok = pickProfilePicture("", photos)
	is.True(ok)
	is.Equal(ref, "users/1/b.jpg")

	// Without a flag, the first photo wins.
	ref, ok = pickProfilePicture("", []photoRef{{ref: "users/1/a.jpg"}, {ref: "users/1/c.jpg"}})
	is.True(ok)
	is.Equal(ref, "users/1/a.jpg")

	// Nothing at all.
	_, ok = pickProfilePicture("", nil)
	is.True(!ok)
}

func TestMaterializeImageURL(t *testing.T) {
	is := is.New(t)

	// Absolute refs pass through unchanged.
	is.Equal(materializeImageURL("https://cdn.example.com", "https://other.example.com/x.jpg"), "https://other.example.com/x.jpg")
	is.Equal(materializeImageURL("https://cdn.example.com", "http://other.example.com/x.jpg"), "http://other.example.com/x.jpg")

	// Keys compose with the base regardless of slashes on either side.
	is.Equal(materializeImageURL("https://cdn.example.com", "users/1/a.jpg"), "https://cdn.example.com/users/1/a.jpg")
	is.Equal(materializeImageURL("https://cdn.example.com/", "/users/1/a.jpg"), "https://cdn.example.com/users/1/a.jpg")
}

func TestGalleryURLs(t *testing.T) {
	is := is.New(t)

	photos := []photoRef{
		{ref: "users/1/primary.jpg", profile: true},
		{ref: "users/1/a.jpg"},
		{ref: "users/1/a.jpg"},
	}

	// The canonical picture leads, duplicates are dropped first-wins.
	images := galleryURLs("https://cdn.example.com", "users/1/primary.jpg", photos)
	is.Equal(images, []string{
		"https://cdn.example.com/users/1/primary.jpg",
		"https://cdn.example.com/users/1/a.jpg",
	})

	// No photos at all still yields an empty slice, never nil.
	images = galleryURLs("https://cdn.example.com", "", nil)
	is.Equal(len(images), 0)
	is.True(images != nil)
}

func TestAgeFromDate(t *testing.T) {
	is := is.New(t)

	dob := time.Date(2000, 6, 15, 0, 0, 0, 0, time.UTC)

	// Day before the birthday.
	age := ageFromDate(&dob, time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC))
	is.Equal(*age, 23)

	// On the birthday.
	age = ageFromDate(&dob, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC))
	is.Equal(*age, 24)

	is.Equal(ageFromDate(nil, time.Now()), nil)

	var zero time.Time
	is.Equal(ageFromDate(&zero, time.Now()), nil)
}

func TestFullName(t *testing.T) {
	is := is.New(t)
	is.Equal(fullName("Ada", "Lovelace"), "Ada Lovelace")
}

func TestSocialMediaMap(t *testing.T) {
	is := is.New(t)

	person := &models.Person{
		Instagram: "ada.l",
		Telegram:  "adal",
	}

	social := socialMediaMap(person)
	is.Equal(social, map[string]string{
		"instagram": "ada.l",
		"telegram":  "adal",
	})

	// Empty handles are omitted entirely.
	_, present := social["whatsapp"]
	is.True(!present)
}

func TestDistanceLabel(t *testing.T) {
	is := is.New(t)

	lat1, lon1 := 41.0, 29.0
	lat2, lon2 := 42.0, 29.0

	// One degree of latitude is roughly 69.1 miles.
	is.Equal(distanceLabel(&lat1, &lon1, &lat2, &lon2), "69.1 miles away")

	// Missing coordinates on either side degrade to N/A.
	is.Equal(distanceLabel(nil, &lon1, &lat2, &lon2), "N/A")
	is.Equal(distanceLabel(&lat1, &lon1, &lat2, nil), "N/A")
	is.Equal(distanceLabel(nil, nil, nil, nil), "N/A")
}

package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/elitesugar/elitesugar-backend/internal/models"
	"github.com/elitesugar/elitesugar-backend/pkg/utils"
)

// photoRef is the owner-agnostic view of an owned photo, in stored order.
type photoRef struct {
	ref     string
	profile bool
}

func accountPhotoRefs(photos []models.AccountPhoto) []photoRef {
	refs := make([]photoRef, 0, len(photos))
	for _, p := range photos {
		refs = append(refs, photoRef{ref: p.ImageRef, profile: p.IsProfilePicture})
	}
	return refs
}

func personPhotoRefs(photos []models.PersonPhoto) []photoRef {
	refs := make([]photoRef, 0, len(photos))
	for _, p := range photos {
		refs = append(refs, photoRef{ref: p.ImageRef, profile: p.IsProfilePicture})
	}
	return refs
}

// pictureStrategy yields a candidate image ref, or reports that it has none.
type pictureStrategy func() (string, bool)

// pickProfilePicture resolves the canonical picture ref by trying each
// strategy in order: the primary single-value field, then the first photo
// flagged as profile picture, then the first photo at all. Storage is not
// trusted to enforce a single profile flag; the first match wins.
func pickProfilePicture(primary string, photos []photoRef) (string, bool) {
	strategies := []pictureStrategy{
		func() (string, bool) {
			return primary, primary != ""
		},
		func() (string, bool) {
			for _, p := range photos {
				if p.profile {
					return p.ref, true
				}
			}
			return "", false
		},
		func() (string, bool) {
			if len(photos) > 0 {
				return photos[0].ref, true
			}
			return "", false
		},
	}

	for _, strategy := range strategies {
		if ref, ok := strategy(); ok {
			return ref, true
		}
	}
	return "", false
}

// materializeImageURL is the single place a stored image ref becomes an
// absolute URL. Refs that are already absolute pass through unchanged;
// anything else is a storage key composed with the configured public base.
func materializeImageURL(base, ref string) string {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(ref, "/")
}

func profilePictureURL(base, primary string, photos []photoRef) *string {
	ref, ok := pickProfilePicture(primary, photos)
	if !ok {
		return nil
	}
	url := materializeImageURL(base, ref)
	return &url
}

// galleryURLs assembles the image gallery: canonical picture first, then the
// owned photos in stored order, with exact duplicate URLs dropped.
func galleryURLs(base, primary string, photos []photoRef) []string {
	images := []string{}
	seen := make(map[string]bool)

	add := func(url string) {
		if !seen[url] {
			seen[url] = true
			images = append(images, url)
		}
	}

	if primary != "" {
		add(materializeImageURL(base, primary))
	}
	for _, p := range photos {
		add(materializeImageURL(base, p.ref))
	}

	return images
}

// ageFromDate computes completed years between the birth date and now; a
// birthday not yet reached this year subtracts one. Nil when there is no
// birth date.
func ageFromDate(dob *time.Time, now time.Time) *int {
	if dob == nil || dob.IsZero() {
		return nil
	}

	age := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}
	return &age
}

func fullName(first, last string) string {
	return first + " " + last
}

// socialMediaMap collects only the non-empty handles; empty ones are omitted
// rather than serialized as empty strings.
func socialMediaMap(person *models.Person) map[string]string {
	social := make(map[string]string)
	if person.Whatsapp != "" {
		social["whatsapp"] = person.Whatsapp
	}
	if person.Instagram != "" {
		social["instagram"] = person.Instagram
	}
	if person.Twitter != "" {
		social["twitter"] = person.Twitter
	}
	if person.Telegram != "" {
		social["telegram"] = person.Telegram
	}
	return social
}

// distanceLabel renders the haversine distance between viewer and person, or
// "N/A" when either side has no coordinates.
func distanceLabel(viewerLat, viewerLon, personLat, personLon *float64) string {
	if viewerLat == nil || viewerLon == nil || personLat == nil || personLon == nil {
		return "N/A"
	}
	miles := utils.HaversineMiles(*viewerLat, *viewerLon, *personLat, *personLon)
	return fmt.Sprintf("%.1f miles away", miles)
}

func accountPhotoResponses(base string, photos []models.AccountPhoto) []models.PhotoResponse {
	responses := make([]models.PhotoResponse, 0, len(photos))
	for _, p := range photos {
		responses = append(responses, models.PhotoResponse{
			ID:               p.ID,
			Image:            materializeImageURL(base, p.ImageRef),
			IsProfilePicture: p.IsProfilePicture,
			Order:            p.DisplayOrder,
			UploadedAt:       p.UploadedAt,
		})
	}
	return responses
}

func personPhotoResponses(base string, photos []models.PersonPhoto) []models.PhotoResponse {
	responses := make([]models.PhotoResponse, 0, len(photos))
	for _, p := range photos {
		responses = append(responses, models.PhotoResponse{
			ID:               p.ID,
			Image:            materializeImageURL(base, p.ImageRef),
			IsProfilePicture: p.IsProfilePicture,
			Order:            p.DisplayOrder,
			UploadedAt:       p.UploadedAt,
		})
	}
	return responses
}

package service

import (
	"testing"
	"time"

	"github.com/matryer/is"

	"github.com/elitesugar/elitesugar-backend/internal/models"
)

func TestPersonPresentationUsesStoredAge(t *testing.T) {
	is := is.New(t)

	s := &PeopleService{imageBase: "https://cdn.example.com"}
	viewer := &models.Account{MembershipType: models.MembershipGold}

	// The stored column is authoritative even when it disagrees with the
	// birth date; it is recomputed on write, never on read.
	storedAge := 30
	person := &models.Person{
		ID:          7,
		FirstName:   "Ada",
		LastName:    "Lovelace",
		DateOfBirth: time.Now().AddDate(-25, 0, 0),
		Age:         &storedAge,
	}

	card := s.personCard(viewer, person)
	is.Equal(card.Age, &storedAge)

	detail := s.personDetail(viewer, person)
	is.Equal(detail.Age, &storedAge)
}

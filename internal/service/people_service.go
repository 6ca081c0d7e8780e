package service

import (
	"github.com/elitesugar/elitesugar-backend/internal/models"
	"github.com/elitesugar/elitesugar-backend/internal/repository"
)

type PeopleService struct {
	personRepo  *repository.PersonRepository
	accountRepo *repository.AccountRepository
	imageBase   string
}

func NewPeopleService(personRepo *repository.PersonRepository, accountRepo *repository.AccountRepository, imageBase string) *PeopleService {
	return &PeopleService{
		personRepo:  personRepo,
		accountRepo: accountRepo,
		imageBase:   imageBase,
	}
}

func (s *PeopleService) viewer(accountID uint) (*models.Account, error) {
	account, err := s.accountRepo.GetByID(accountID)
	if err != nil {
		return nil, ErrAccountNotFound
	}
	return account, nil
}

// ListPeople returns the filtered directory as cards. Every active profile is
// listed regardless of tier; the gate applies on detail access, not listing.
func (s *PeopleService) ListPeople(viewerID uint, filters models.PeopleFilters) (*models.PeopleListResponse, error) {
	viewer, err := s.viewer(viewerID)
	if err != nil {
		return nil, err
	}

	people, err := s.personRepo.List(filters)
	if err != nil {
		return nil, err
	}

	cards := make([]models.PersonCard, 0, len(people))
	for i := range people {
		cards = append(cards, s.personCard(viewer, &people[i]))
	}

	return &models.PeopleListResponse{
		Results:             cards,
		Count:               int64(len(cards)),
		UserMembership:      viewer.MembershipType,
		UserMembershipLevel: models.MembershipRank(viewer.MembershipType),
	}, nil
}

// GetPersonDetail applies the tier gate. A denied view returns the locked
// payload with no error; a granted view bumps the profile view counter.
func (s *PeopleService) GetPersonDetail(viewerID, personID uint) (*models.PersonDetail, *models.LockedProfile, error) {
	viewer, err := s.viewer(viewerID)
	if err != nil {
		return nil, nil, err
	}

	person, err := s.personRepo.GetActiveByID(personID)
	if err != nil {
		return nil, nil, ErrPersonNotFound
	}

	if !models.CanView(viewer.MembershipType, person.MembershipType) {
		return nil, &models.LockedProfile{
			Error:              "upgrade_required",
			Message:            "Upgrade your membership to view this profile",
			RequiredMembership: person.MembershipType,
			UserMembership:     viewer.MembershipType,
			Locked:             true,
		}, nil
	}

	if err := s.personRepo.IncrementProfileViews(person.ID); err != nil {
		return nil, nil, err
	}
	person.ProfileViews++

	detail := s.personDetail(viewer, person)
	return detail, nil, nil
}

// CheckAccess is the dry-run form of the gate: it reports the verdict without
// touching the view counter.
func (s *PeopleService) CheckAccess(viewerID, personID uint) (*models.CheckAccessResponse, error) {
	viewer, err := s.viewer(viewerID)
	if err != nil {
		return nil, err
	}

	person, err := s.personRepo.GetActiveByID(personID)
	if err != nil {
		return nil, ErrPersonNotFound
	}

	response := &models.CheckAccessResponse{
		HasAccess:        models.CanView(viewer.MembershipType, person.MembershipType),
		PersonMembership: person.MembershipType,
		UserMembership:   viewer.MembershipType,
	}
	if !response.HasAccess {
		required := person.MembershipType
		response.RequiredUpgrade = &required
	}
	return response, nil
}

func (s *PeopleService) GetStats(viewerID uint) (*models.PeopleStats, error) {
	viewer, err := s.viewer(viewerID)
	if err != nil {
		return nil, err
	}

	total, err := s.personRepo.CountActive()
	if err != nil {
		return nil, err
	}

	accessible, err := s.personRepo.CountActiveInTiers(models.AccessibleTiers(viewer.MembershipType))
	if err != nil {
		return nil, err
	}

	verified, err := s.personRepo.CountActiveVerified()
	if err != nil {
		return nil, err
	}

	byTier := make(map[models.MembershipType]int64)
	for _, tier := range []models.MembershipType{models.MembershipRegular, models.MembershipGold, models.MembershipPlatinum} {
		count, err := s.personRepo.CountActiveByTier(tier)
		if err != nil {
			return nil, err
		}
		byTier[tier] = count
	}

	return &models.PeopleStats{
		TotalPeople:      total,
		AccessiblePeople: accessible,
		VerifiedPeople:   verified,
		ByTier:           byTier,
		UserMembership:   viewer.MembershipType,
		UserLevel:        models.MembershipRank(viewer.MembershipType),
	}, nil
}

func (s *PeopleService) personCard(viewer *models.Account, person *models.Person) models.PersonCard {
	refs := personPhotoRefs(person.Photos)

	interests := person.Interests
	if interests == nil {
		interests = []string{}
	}

	return models.PersonCard{
		ID:             person.ID,
		FirstName:      person.FirstName,
		LastName:       person.LastName,
		FullName:       fullName(person.FirstName, person.LastName),
		Age:            person.Age,
		Occupation:     person.Occupation,
		Location:       person.Location,
		Verified:       person.Verified,
		ProfilePicture: profilePictureURL(s.imageBase, person.ProfilePicture, refs),
		Interests:      interests,
		Distance:       distanceLabel(viewer.Latitude, viewer.Longitude, person.Latitude, person.Longitude),
		MembershipType: person.MembershipType,
		Nationality:    person.Nationality,
		CityCountry:    person.CityCountry,
	}
}

func (s *PeopleService) personDetail(viewer *models.Account, person *models.Person) *models.PersonDetail {
	refs := personPhotoRefs(person.Photos)

	interests := person.Interests
	if interests == nil {
		interests = []string{}
	}
	goals := person.RelationshipGoals
	if goals == nil {
		goals = []string{}
	}

	return &models.PersonDetail{
		ID:                person.ID,
		FirstName:         person.FirstName,
		LastName:          person.LastName,
		FullName:          fullName(person.FirstName, person.LastName),
		Age:               person.Age,
		DateOfBirth:       person.DateOfBirth,
		PlaceOfBirth:      person.PlaceOfBirth,
		Nationality:       person.Nationality,
		CityCountry:       person.CityCountry,
		Gender:            person.Gender,
		PhoneNumber:       person.PhoneNumber,
		Bio:               person.Bio,
		Occupation:        person.Occupation,
		Education:         person.Education,
		Height:            person.Height,
		Location:          person.Location,
		NetWorth:          person.NetWorth,
		LookingFor:        person.LookingFor,
		RelationshipGoals: goals,
		Interests:         interests,
		MembershipType:    person.MembershipType,
		Verified:          person.Verified,
		ProfileViews:      person.ProfileViews,
		ProfilePicture:    profilePictureURL(s.imageBase, person.ProfilePicture, refs),
		Photos:            personPhotoResponses(s.imageBase, person.Photos),
		Distance:          distanceLabel(viewer.Latitude, viewer.Longitude, person.Latitude, person.Longitude),
		Images:            galleryURLs(s.imageBase, person.ProfilePicture, refs),
		SocialMedia:       socialMediaMap(person),
	}
}

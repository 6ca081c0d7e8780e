package repository

import (
	"time"

	"github.com/elitesugar/elitesugar-backend/internal/models"
	"gorm.io/gorm"
)

type PersonRepository struct {
	db *gorm.DB
}

func NewPersonRepository(db *gorm.DB) *PersonRepository {
	return &PersonRepository{db: db}
}

func preloadPhotos(db *gorm.DB) *gorm.DB {
	return db.Order(photoOrdering)
}

// GetActiveByID returns an active person with photos, or gorm.ErrRecordNotFound
// for absent and deactivated profiles alike.
func (r *PersonRepository) GetActiveByID(id uint) (*models.Person, error) {
	var person models.Person
	err := r.db.Preload("Photos", preloadPhotos).
		Where("id = ? AND is_active = ?", id, true).
		First(&person).Error
	if err != nil {
		return nil, err
	}
	return &person, nil
}

func (r *PersonRepository) List(filters models.PeopleFilters) ([]models.Person, error) {
	query := r.db.Preload("Photos", preloadPhotos).Where("is_active = ?", true)

	if filters.MembershipTier != "" {
		query = query.Where("membership_type = ?", filters.MembershipTier)
	}
	if filters.VerifiedOnly {
		query = query.Where("verified = ?", true)
	}
	if filters.AgeMin != nil {
		query = query.Where("age >= ?", *filters.AgeMin)
	}
	if filters.AgeMax != nil {
		query = query.Where("age <= ?", *filters.AgeMax)
	}
	if filters.Gender != "" {
		query = query.Where("gender = ?", filters.Gender)
	}
	if filters.Search != "" {
		pattern := "%" + filters.Search + "%"
		query = query.Where(
			"first_name ILIKE ? OR last_name ILIKE ? OR occupation ILIKE ? OR location ILIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}

	var people []models.Person
	err := query.Order("created_at DESC").Find(&people).Error
	return people, err
}

// IncrementProfileViews bumps the view counter without read-modify-write;
// concurrent bumps may still race, which is acceptable for an informational count.
func (r *PersonRepository) IncrementProfileViews(id uint) error {
	return r.db.Model(&models.Person{}).
		Where("id = ?", id).
		UpdateColumn("profile_views", gorm.Expr("profile_views + 1")).Error
}

func (r *PersonRepository) CountActive() (int64, error) {
	var count int64
	err := r.db.Model(&models.Person{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}

func (r *PersonRepository) CountActiveVerified() (int64, error) {
	var count int64
	err := r.db.Model(&models.Person{}).
		Where("is_active = ? AND verified = ?", true, true).
		Count(&count).Error
	return count, err
}

func (r *PersonRepository) CountActiveByTier(tier models.MembershipType) (int64, error) {
	var count int64
	err := r.db.Model(&models.Person{}).
		Where("is_active = ? AND membership_type = ?", true, tier).
		Count(&count).Error
	return count, err
}

func (r *PersonRepository) CountActiveInTiers(tiers []models.MembershipType) (int64, error) {
	var count int64
	err := r.db.Model(&models.Person{}).
		Where("is_active = ? AND membership_type IN ?", true, tiers).
		Count(&count).Error
	return count, err
}

func (r *PersonRepository) Create(person *models.Person) error {
	recomputeAge(person)
	return r.db.Create(person).Error
}

func (r *PersonRepository) Update(person *models.Person) error {
	recomputeAge(person)
	return r.db.Save(person).Error
}

// recomputeAge keeps the stored age in sync with date_of_birth on every write.
func recomputeAge(person *models.Person) {
	if person.DateOfBirth.IsZero() {
		person.Age = nil
		return
	}

	now := time.Now()
	age := now.Year() - person.DateOfBirth.Year()
	if now.Month() < person.DateOfBirth.Month() ||
		(now.Month() == person.DateOfBirth.Month() && now.Day() < person.DateOfBirth.Day()) {
		age--
	}
	person.Age = &age
}

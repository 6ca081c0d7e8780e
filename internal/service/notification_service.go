package service

import (
	"fmt"
	"time"

	"github.com/elitesugar/elitesugar-backend/internal/models"
	"github.com/elitesugar/elitesugar-backend/internal/repository"
)

// DefaultFeedLimit caps the feed when the client gives no usable limit.
const DefaultFeedLimit = 50

type NotificationService struct {
	notificationRepo *repository.NotificationRepository
	accountRepo      *repository.AccountRepository
	personRepo       *repository.PersonRepository
	imageBase        string
}

func NewNotificationService(
	notificationRepo *repository.NotificationRepository,
	accountRepo *repository.AccountRepository,
	personRepo *repository.PersonRepository,
	imageBase string,
) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		accountRepo:      accountRepo,
		personRepo:       personRepo,
		imageBase:        imageBase,
	}
}

// timeAgo renders the elapsed time in the coarsest bucket that fits, with
// integer truncation: seconds under a minute, then minutes, hours, days, weeks.
func timeAgo(createdAt, now time.Time) string {
	elapsed := now.Sub(createdAt)

	switch {
	case elapsed < time.Minute:
		return "Just now"
	case elapsed < time.Hour:
		return fmt.Sprintf("%dm ago", int(elapsed.Minutes()))
	case elapsed < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(elapsed.Hours()))
	case elapsed < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(elapsed.Hours()/24))
	default:
		return fmt.Sprintf("%dw ago", int(elapsed.Hours()/(24*7)))
	}
}

func (s *NotificationService) ListNotifications(accountID uint, isRead *bool, limit int) ([]models.NotificationResponse, error) {
	if limit <= 0 {
		limit = DefaultFeedLimit
	}

	notifications, err := s.notificationRepo.ListByAccount(accountID, isRead, limit)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	responses := make([]models.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		responses = append(responses, s.notificationResponse(&notifications[i], now))
	}
	return responses, nil
}

// GetNotification returns one feed entry and marks it read as a side effect
// of being observed.
func (s *NotificationService) GetNotification(accountID, notificationID uint) (*models.NotificationResponse, error) {
	notification, err := s.notificationRepo.GetByIDAndAccount(notificationID, accountID)
	if err != nil {
		return nil, ErrNotificationNotFound
	}

	if !notification.IsRead {
		if _, err := s.notificationRepo.MarkRead(accountID, []uint{notification.ID}); err != nil {
			return nil, err
		}
		now := time.Now()
		notification.IsRead = true
		notification.ReadAt = &now
	}

	response := s.notificationResponse(notification, time.Now())
	return &response, nil
}

// MarkRead is idempotent: marking an already-read entry reports zero changes
// without erroring.
func (s *NotificationService) MarkRead(accountID, notificationID uint) (int64, error) {
	if _, err := s.notificationRepo.GetByIDAndAccount(notificationID, accountID); err != nil {
		return 0, ErrNotificationNotFound
	}
	return s.notificationRepo.MarkRead(accountID, []uint{notificationID})
}

func (s *NotificationService) MarkManyRead(accountID uint, ids []uint) (int64, error) {
	return s.notificationRepo.MarkRead(accountID, ids)
}

func (s *NotificationService) MarkAllRead(accountID uint) (int64, error) {
	return s.notificationRepo.MarkAllRead(accountID)
}

func (s *NotificationService) DeleteNotification(accountID, notificationID uint) error {
	deleted, err := s.notificationRepo.Delete(notificationID, accountID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func (s *NotificationService) DeleteAllRead(accountID uint) (int64, error) {
	return s.notificationRepo.DeleteAllRead(accountID)
}

func (s *NotificationService) GetStats(accountID uint) (*models.NotificationStats, error) {
	total, err := s.notificationRepo.CountByAccount(accountID)
	if err != nil {
		return nil, err
	}

	unread, err := s.notificationRepo.CountUnread(accountID)
	if err != nil {
		return nil, err
	}

	byType, err := s.notificationRepo.CountByType(accountID)
	if err != nil {
		return nil, err
	}

	return &models.NotificationStats{
		Total:  total,
		Unread: unread,
		Read:   total - unread,
		ByType: byType,
	}, nil
}

// CreateNotification is the admin entry point. Both ends must be active: the
// receiving account and the referenced person.
func (s *NotificationService) CreateNotification(req models.CreateNotificationRequest) (*models.NotificationResponse, error) {
	account, err := s.accountRepo.GetByID(req.AccountID)
	if err != nil {
		return nil, ErrAccountNotFound
	}
	if !account.IsActive {
		return nil, ErrInactiveAccount
	}

	person, err := s.personRepo.GetActiveByID(req.PersonID)
	if err != nil {
		return nil, ErrInactivePerson
	}

	notification := &models.Notification{
		AccountID:        account.ID,
		PersonID:         person.ID,
		NotificationType: req.NotificationType,
		Message:          req.Message,
	}
	if err := s.notificationRepo.Create(notification); err != nil {
		return nil, err
	}

	notification.Person = *person
	response := s.notificationResponse(notification, time.Now())
	return &response, nil
}

// SendBulk fans the same notification out to many accounts. Unresolvable or
// inactive account ids are skipped; the returned count is what was created.
func (s *NotificationService) SendBulk(req models.BulkNotificationRequest) (int, error) {
	person, err := s.personRepo.GetActiveByID(req.PersonID)
	if err != nil {
		return 0, ErrInactivePerson
	}

	accounts, err := s.accountRepo.GetActiveByIDs(req.AccountIDs)
	if err != nil {
		return 0, err
	}

	notifications := make([]models.Notification, 0, len(accounts))
	for _, account := range accounts {
		notifications = append(notifications, models.Notification{
			AccountID:        account.ID,
			PersonID:         person.ID,
			NotificationType: req.NotificationType,
			Message:          req.Message,
		})
	}

	if err := s.notificationRepo.CreateBatch(notifications); err != nil {
		return 0, err
	}
	return len(notifications), nil
}

func (s *NotificationService) notificationResponse(notification *models.Notification, now time.Time) models.NotificationResponse {
	person := notification.Person
	refs := personPhotoRefs(person.Photos)

	return models.NotificationResponse{
		ID: notification.ID,
		Person: models.NotificationPersonCard{
			ID:             person.ID,
			FirstName:      person.FirstName,
			LastName:       person.LastName,
			FullName:       fullName(person.FirstName, person.LastName),
			Age:            person.Age,
			Occupation:     person.Occupation,
			Location:       person.Location,
			Verified:       person.Verified,
			ProfilePicture: profilePictureURL(s.imageBase, person.ProfilePicture, refs),
			MembershipType: person.MembershipType,
		},
		NotificationType: notification.NotificationType,
		Message:          notification.Message,
		IsRead:           notification.IsRead,
		CreatedAt:        notification.CreatedAt,
		ReadAt:           notification.ReadAt,
		TimeAgo:          timeAgo(notification.CreatedAt, now),
	}
}

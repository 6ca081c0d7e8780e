package service

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/elitesugar/elitesugar-backend/internal/models"
	"github.com/elitesugar/elitesugar-backend/internal/repository"
	"github.com/elitesugar/elitesugar-backend/pkg/storage"
)

// MaxPhotosPerAccount caps the photo set; uploads past the ceiling are
// rejected or skipped depending on how the batch arrives.
const MaxPhotosPerAccount = 6

type PhotoService struct {
	photoRepo *repository.PhotoRepository
	storage   storage.StorageService
	logger    *zap.Logger
}

func NewPhotoService(photoRepo *repository.PhotoRepository, storage storage.StorageService, logger *zap.Logger) *PhotoService {
	return &PhotoService{
		photoRepo: photoRepo,
		storage:   storage,
		logger:    logger,
	}
}

type PhotoUploadResult struct {
	Uploaded []models.PhotoResponse `json:"uploaded"`
	Skipped  int                    `json:"skipped"`
}

// planBatch decides how many of the incoming files fit under the ceiling.
// A request carrying more files than the ceiling itself is rejected outright;
// otherwise extras past the account's remaining slots are skipped.
func planBatch(existing int64, incoming int) (accepted int, err error) {
	if incoming == 0 {
		return 0, ErrNoPhotos
	}
	if incoming > MaxPhotosPerAccount {
		return 0, ErrTooManyPhotos
	}

	remaining := MaxPhotosPerAccount - int(existing)
	if remaining <= 0 {
		return 0, ErrTooManyPhotos
	}
	if incoming > remaining {
		return remaining, nil
	}
	return incoming, nil
}

// UploadPhotos stores the batch under the account's storage prefix. The very
// first photo an account ever uploads becomes its profile picture.
func (s *PhotoService) UploadPhotos(accountID uint, files []*multipart.FileHeader) (*PhotoUploadResult, error) {
	existing, err := s.photoRepo.CountByAccountID(accountID)
	if err != nil {
		return nil, err
	}

	accepted, err := planBatch(existing, len(files))
	if err != nil {
		return nil, err
	}

	result := &PhotoUploadResult{
		Uploaded: []models.PhotoResponse{},
		Skipped:  len(files) - accepted,
	}

	for index, fileHeader := range files[:accepted] {
		file, err := fileHeader.Open()
		if err != nil {
			return nil, err
		}

		key := fmt.Sprintf("users/%d/%d%s", accountID, time.Now().UnixNano(), filepath.Ext(fileHeader.Filename))
		if err := s.storage.Upload(key, file); err != nil {
			file.Close()
			return nil, err
		}
		file.Close()

		photo := &models.AccountPhoto{
			AccountID:        accountID,
			ImageRef:         key,
			IsProfilePicture: existing == 0 && index == 0,
			DisplayOrder:     int(existing) + index,
		}
		if err := s.photoRepo.Create(photo); err != nil {
			return nil, err
		}

		result.Uploaded = append(result.Uploaded, models.PhotoResponse{
			ID:               photo.ID,
			Image:            materializeImageURL(s.storage.PublicBaseURL(), photo.ImageRef),
			IsProfilePicture: photo.IsProfilePicture,
			Order:            photo.DisplayOrder,
			UploadedAt:       photo.UploadedAt,
		})
	}

	return result, nil
}

func (s *PhotoService) ListPhotos(accountID uint) ([]models.PhotoResponse, error) {
	photos, err := s.photoRepo.GetByAccountID(accountID)
	if err != nil {
		return nil, err
	}
	return accountPhotoResponses(s.storage.PublicBaseURL(), photos), nil
}

// DeletePhoto removes the row first; the storage object is cleaned up best
// effort so a storage fault never leaves a deleted photo visible.
func (s *PhotoService) DeletePhoto(accountID, photoID uint) error {
	photo, err := s.photoRepo.GetByIDAndAccount(photoID, accountID)
	if err != nil {
		return ErrPhotoNotFound
	}

	if err := s.photoRepo.Delete(photo.ID); err != nil {
		return err
	}

	if err := s.storage.Delete(photo.ImageRef); err != nil {
		s.logger.Warn("failed to delete photo object",
			zap.String("key", photo.ImageRef),
			zap.Error(err),
		)
	}

	return nil
}

// SetProfilePicture clears the current mark before setting the new one, so
// at most one photo per account carries the flag.
func (s *PhotoService) SetProfilePicture(accountID, photoID uint) error {
	photo, err := s.photoRepo.GetByIDAndAccount(photoID, accountID)
	if err != nil {
		return ErrPhotoNotFound
	}

	if err := s.photoRepo.ClearProfileFlag(accountID); err != nil {
		return err
	}
	return s.photoRepo.SetProfileFlag(photo.ID)
}

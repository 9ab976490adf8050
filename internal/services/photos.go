package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/skinsync/skinsync/internal/logging"
	"github.com/skinsync/skinsync/internal/models"
	"github.com/skinsync/skinsync/internal/repositories/photos"
	"github.com/skinsync/skinsync/internal/storage"
)

// PhotoService manages a user's progress-photo timeline.
type PhotoService interface {
	// Timeline returns the user's photos, newest first.
	Timeline(ctx context.Context, userID string) ([]models.SkinPhoto, error)

	// AddPhoto stores a new timeline entry. imageURL is an opaque reference
	// to the image bytes (typically a data URI); note may be empty.
	AddPhoto(ctx context.Context, userID string, imageURL string, note string) (*models.SkinPhoto, error)

	// DeletePhoto removes an entry. Absent ids are a no-op.
	DeletePhoto(ctx context.Context, userID string, photoID string) error
}

type photoService struct {
	store *storage.Store
	log   logging.Logger
	now   func() time.Time
}

func NewPhotoService(store *storage.Store, log logging.Logger) PhotoService {
	return &photoService{store: store, log: log, now: time.Now}
}

func (s *photoService) getPhotoRepo() photos.Repository {
	return photos.NewKVRepository(s.store)
}

func (s *photoService) Timeline(ctx context.Context, userID string) ([]models.SkinPhoto, error) {
	return s.getPhotoRepo().List(ctx, userID)
}

func (s *photoService) AddPhoto(ctx context.Context, userID string, imageURL string, note string) (*models.SkinPhoto, error) {
	photo := &models.SkinPhoto{
		ID:        uuid.NewString(),
		Timestamp: s.now().UTC().Format(time.RFC3339),
		ImageURL:  imageURL,
		Note:      note,
	}

	if err := s.getPhotoRepo().Add(ctx, userID, photo); err != nil {
		return nil, err
	}

	s.log.Info(ctx, "photo added", "user_id", userID, "photo_id", photo.ID)
	return photo, nil
}

func (s *photoService) DeletePhoto(ctx context.Context, userID string, photoID string) error {
	if err := s.getPhotoRepo().Delete(ctx, userID, photoID); err != nil {
		return err
	}
	s.log.Info(ctx, "photo deleted", "user_id", userID, "photo_id", photoID)
	return nil
}

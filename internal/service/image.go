package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"picstash/internal/domain"
	"picstash/internal/domain/models"
	"picstash/internal/domain/repositories"
	"picstash/internal/storage"
)

// ImageService handles image business logic, owner-scoped like FolderService.
type ImageService struct {
	images repositories.ImageRepository
	blobs  storage.BlobStore
	tx     repositories.TransactionManager
	logger *slog.Logger
}

// NewImageService creates a new image service
func NewImageService(
	images repositories.ImageRepository,
	blobs storage.BlobStore,
	tx repositories.TransactionManager,
	logger *slog.Logger,
) *ImageService {
	return &ImageService{
		images: images,
		blobs:  blobs,
		tx:     tx,
		logger: logger,
	}
}

// UploadFile is one file of an upload batch
type UploadFile struct {
	Filename    string
	Reader      io.Reader
	Size        int64
	ContentType string
}

// List returns the owner's images selected by scope. With ScopeAll no folder
// filter applies at all; this differs from folder listing, where an omitted
// parameter means root level.
func (s *ImageService) List(ctx context.Context, ownerID string, scope models.ListScope) ([]models.Image, error) {
	return s.images.List(ctx, ownerID, scope)
}

// Upload pushes each file to the blob store, then commits every row in one
// transaction. If any single upload fails the whole batch fails and no rows
// are committed, including for files that already uploaded; those blobs are
// left behind in the store.
func (s *ImageService) Upload(ctx context.Context, ownerID string, files []UploadFile, folderID *string) ([]models.Image, error) {
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no files provided", domain.ErrValidation)
	}

	folderID = models.NormalizeParent(folderID)

	images := make([]*models.Image, 0, len(files))
	for _, f := range files {
		name, err := SanitizeFilename(f.Filename)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", domain.ErrValidation, f.Filename, err)
		}

		url, err := s.blobs.Put(ctx, name, f.Reader, f.Size, f.ContentType)
		if err != nil {
			return nil, &domain.UploadError{Filename: name, Err: err}
		}

		images = append(images, &models.Image{
			OwnerID:  ownerID,
			FolderID: folderID,
			Filename: name,
			URL:      url,
		})
	}

	err := s.tx.ExecTx(ctx, func(txCtx context.Context) error {
		for _, img := range images {
			if err := s.images.Create(txCtx, img); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result := make([]models.Image, len(images))
	for i, img := range images {
		result[i] = *img
	}

	s.logger.Info("images uploaded", "owner_id", ownerID, "count", len(result))
	return result, nil
}

// Move changes the containing folder. The target folder is not verified to
// exist or belong to the owner.
func (s *ImageService) Move(ctx context.Context, ownerID, imageID string, folderID *string) error {
	return s.images.SetFolder(ctx, imageID, ownerID, models.NormalizeParent(folderID))
}

// Delete removes the image row, then makes a best-effort attempt to remove
// the underlying blob. Blob removal failures are logged, never surfaced.
func (s *ImageService) Delete(ctx context.Context, ownerID, imageID string) error {
	image, err := s.images.GetByID(ctx, imageID, ownerID)
	if err != nil {
		return err
	}

	if err := s.images.Delete(ctx, imageID, ownerID); err != nil {
		return err
	}

	if err := s.blobs.Remove(ctx, image.Filename); err != nil {
		s.logger.Warn("blob removal failed", "image_id", imageID, "filename", image.Filename, "error", err)
	}

	return nil
}

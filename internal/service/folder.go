package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"picstash/internal/domain"
	"picstash/internal/domain/models"
	"picstash/internal/domain/repositories"
)

// FolderService handles folder business logic. Every operation is scoped to
// the authenticated owner; ids that resolve to another owner's folders behave
// exactly like ids that resolve to nothing.
type FolderService struct {
	folders repositories.FolderRepository
	logger  *slog.Logger
}

// NewFolderService creates a new folder service
func NewFolderService(folders repositories.FolderRepository, logger *slog.Logger) *FolderService {
	return &FolderService{
		folders: folders,
		logger:  logger,
	}
}

// CreateFolderRequest represents a folder creation request
type CreateFolderRequest struct {
	OwnerID  string  `json:"-"`
	Name     string  `json:"name"`
	ParentID *string `json:"parent_id,omitempty"`
}

func (r CreateFolderRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.OwnerID, validation.Required),
		validation.Field(&r.Name, validation.Required),
	)
}

// List returns the owner's folders selected by scope
func (s *FolderService) List(ctx context.Context, ownerID string, scope models.ListScope) ([]models.Folder, error) {
	return s.folders.List(ctx, ownerID, scope)
}

// Create creates a new folder. The parent id is normalized (root sentinel
// becomes nil) but not verified: a parent that does not exist, or that belongs
// to another owner, is accepted and simply dangles.
func (s *FolderService) Create(ctx context.Context, req *CreateFolderRequest) (*models.Folder, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	folder := &models.Folder{
		OwnerID:  req.OwnerID,
		ParentID: models.NormalizeParent(req.ParentID),
		Name:     req.Name,
	}
	if err := s.folders.Create(ctx, folder); err != nil {
		return nil, err
	}

	s.logger.Info("folder created", "folder_id", folder.ID, "owner_id", folder.OwnerID)
	return folder, nil
}

// Move reparents a folder. The new parent is not verified, and moving a
// folder under its own descendant is not prevented; breadcrumb traversal
// stays bounded regardless.
func (s *FolderService) Move(ctx context.Context, ownerID, folderID string, parentID *string) error {
	return s.folders.SetParent(ctx, folderID, ownerID, models.NormalizeParent(parentID))
}

// Delete removes exactly one folder row. Children and contained images are
// left in place with dangling references.
func (s *FolderService) Delete(ctx context.Context, ownerID, folderID string) error {
	return s.folders.Delete(ctx, folderID, ownerID)
}

// Breadcrumbs walks parent links upward from the given folder and returns the
// trail ordered root to leaf. A parent that does not resolve under the owner
// silently truncates the trail. The walk is bounded by the owner's total
// folder count: exceeding it means the parent links form a cycle.
func (s *FolderService) Breadcrumbs(ctx context.Context, ownerID, folderID string) ([]models.Crumb, error) {
	bound, err := s.folders.CountByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	crumbs := []models.Crumb{}
	visited := 0
	next := &folderID
	for next != nil {
		folder, err := s.folders.GetByID(ctx, *next, ownerID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				break
			}
			return nil, err
		}

		// A legitimate trail can visit at most every folder the owner has.
		visited++
		if visited > bound {
			return nil, fmt.Errorf("folder %s: %w", folderID, domain.ErrCorruptHierarchy)
		}

		crumbs = append([]models.Crumb{{ID: folder.ID, Name: folder.Name}}, crumbs...)
		next = folder.ParentID
	}

	return crumbs, nil
}

package repositories

import (
	"context"

	"picstash/internal/domain/models"
)

// FolderRepository defines data access operations for folders.
// Every lookup and mutation is scoped to an owner: a folder that exists but
// belongs to someone else is indistinguishable from one that does not exist.
type FolderRepository interface {
	// Create inserts a new folder, minting its ID.
	Create(ctx context.Context, folder *models.Folder) error

	// GetByID retrieves a folder by ID under the given owner.
	GetByID(ctx context.Context, id, ownerID string) (*models.Folder, error)

	// SetParent changes a folder's parent. A nil parent moves it to root.
	// Returns domain.ErrNotFound if the folder does not resolve under the owner.
	SetParent(ctx context.Context, id, ownerID string, parentID *string) error

	// Delete removes exactly one folder row; children and contained images
	// are not touched.
	Delete(ctx context.Context, id, ownerID string) error

	// List returns the owner's folders selected by scope
	// (root-level rows or direct children of one folder).
	List(ctx context.Context, ownerID string, scope models.ListScope) ([]models.Folder, error)

	// CountByOwner returns the total number of folders the owner has.
	CountByOwner(ctx context.Context, ownerID string) (int, error)
}

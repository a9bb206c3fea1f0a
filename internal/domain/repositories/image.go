package repositories

import (
	"context"

	"picstash/internal/domain/models"
)

// ImageRepository defines data access operations for images, owner-scoped
// the same way FolderRepository is.
type ImageRepository interface {
	// Create inserts a new image row, minting its ID.
	Create(ctx context.Context, image *models.Image) error

	// GetByID retrieves an image by ID under the given owner.
	GetByID(ctx context.Context, id, ownerID string) (*models.Image, error)

	// SetFolder changes the containing folder. A nil folder moves the
	// image to root. Returns domain.ErrNotFound if unresolved.
	SetFolder(ctx context.Context, id, ownerID string, folderID *string) error

	// Delete removes one image row.
	Delete(ctx context.Context, id, ownerID string) error

	// List returns the owner's images selected by scope; ScopeAll returns
	// every image regardless of folder.
	List(ctx context.Context, ownerID string, scope models.ListScope) ([]models.Image, error)
}

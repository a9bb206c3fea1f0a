package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"picstash/internal/domain"
	"picstash/internal/domain/models"
	"picstash/internal/domain/repositories"
)

// PostgresImageRepository implements the ImageRepository interface
type PostgresImageRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewImageRepository creates a new image repository
func NewImageRepository(config *RepositoryConfig) repositories.ImageRepository {
	return &PostgresImageRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create inserts a new image row
func (r *PostgresImageRepository) Create(ctx context.Context, image *models.Image) error {
	if image.ID == "" {
		image.ID = uuid.NewString()
	}
	if image.UploadDate.IsZero() {
		image.UploadDate = time.Now()
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (id, owner_id, folder_id, filename, url, upload_date)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, r.tables.Images)

	exec := GetExecutor(ctx, r.pool)
	_, err := exec.Exec(ctx, query,
		image.ID,
		image.OwnerID,
		image.FolderID,
		image.Filename,
		image.URL,
		image.UploadDate,
	)
	if err != nil {
		return fmt.Errorf("create image: %w", err)
	}

	return nil
}

// GetByID retrieves an image by ID under the given owner
func (r *PostgresImageRepository) GetByID(ctx context.Context, id, ownerID string) (*models.Image, error) {
	query := fmt.Sprintf(`
		SELECT id, owner_id, folder_id, filename, url, upload_date
		FROM %s
		WHERE id = $1 AND owner_id = $2
	`, r.tables.Images)

	exec := GetExecutor(ctx, r.pool)

	var image models.Image
	err := exec.QueryRow(ctx, query, id, ownerID).Scan(
		&image.ID,
		&image.OwnerID,
		&image.FolderID,
		&image.Filename,
		&image.URL,
		&image.UploadDate,
	)
	if err != nil {
		if isPgNoRowsError(err) {
			return nil, fmt.Errorf("image %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get image: %w", err)
	}

	return &image, nil
}

// SetFolder changes the containing folder; nil moves the image to root level
func (r *PostgresImageRepository) SetFolder(ctx context.Context, id, ownerID string, folderID *string) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET folder_id = $1
		WHERE id = $2 AND owner_id = $3
	`, r.tables.Images)

	exec := GetExecutor(ctx, r.pool)
	result, err := exec.Exec(ctx, query, folderID, id, ownerID)
	if err != nil {
		return fmt.Errorf("move image: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("image %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// Delete removes one image row
func (r *PostgresImageRepository) Delete(ctx context.Context, id, ownerID string) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE id = $1 AND owner_id = $2
	`, r.tables.Images)

	exec := GetExecutor(ctx, r.pool)
	result, err := exec.Exec(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete image: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("image %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// List returns the owner's images selected by scope. ScopeAll applies no
// folder filter at all, unlike folder listing where omission means root.
func (r *PostgresImageRepository) List(ctx context.Context, ownerID string, scope models.ListScope) ([]models.Image, error) {
	var query string
	var args []interface{}

	switch scope.Kind {
	case models.ScopeFolder:
		query = fmt.Sprintf(`
			SELECT id, owner_id, folder_id, filename, url, upload_date
			FROM %s
			WHERE owner_id = $1 AND folder_id = $2
			ORDER BY upload_date DESC
		`, r.tables.Images)
		args = append(args, ownerID, scope.FolderID)
	case models.ScopeRoot:
		query = fmt.Sprintf(`
			SELECT id, owner_id, folder_id, filename, url, upload_date
			FROM %s
			WHERE owner_id = $1 AND folder_id IS NULL
			ORDER BY upload_date DESC
		`, r.tables.Images)
		args = append(args, ownerID)
	default: // ScopeAll
		query = fmt.Sprintf(`
			SELECT id, owner_id, folder_id, filename, url, upload_date
			FROM %s
			WHERE owner_id = $1
			ORDER BY upload_date DESC
		`, r.tables.Images)
		args = append(args, ownerID)
	}

	exec := GetExecutor(ctx, r.pool)
	rows, err := exec.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list images: %w", err)
	}
	defer rows.Close()

	var images []models.Image
	for rows.Next() {
		var image models.Image
		err := rows.Scan(
			&image.ID,
			&image.OwnerID,
			&image.FolderID,
			&image.Filename,
			&image.URL,
			&image.UploadDate,
		)
		if err != nil {
			return nil, fmt.Errorf("scan image: %w", err)
		}
		images = append(images, image)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate images: %w", err)
	}

	return images, nil
}

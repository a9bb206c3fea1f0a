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

// PostgresFolderRepository implements the FolderRepository interface
type PostgresFolderRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewFolderRepository creates a new folder repository
func NewFolderRepository(config *RepositoryConfig) repositories.FolderRepository {
	return &PostgresFolderRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create inserts a new folder
func (r *PostgresFolderRepository) Create(ctx context.Context, folder *models.Folder) error {
	if folder.ID == "" {
		folder.ID = uuid.NewString()
	}
	if folder.CreatedAt.IsZero() {
		folder.CreatedAt = time.Now()
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (id, owner_id, parent_id, name, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, r.tables.Folders)

	exec := GetExecutor(ctx, r.pool)
	_, err := exec.Exec(ctx, query,
		folder.ID,
		folder.OwnerID,
		folder.ParentID,
		folder.Name,
		folder.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create folder: %w", err)
	}

	return nil
}

// GetByID retrieves a folder by ID under the given owner
func (r *PostgresFolderRepository) GetByID(ctx context.Context, id, ownerID string) (*models.Folder, error) {
	query := fmt.Sprintf(`
		SELECT id, owner_id, parent_id, name, created_at
		FROM %s
		WHERE id = $1 AND owner_id = $2
	`, r.tables.Folders)

	exec := GetExecutor(ctx, r.pool)

	var folder models.Folder
	err := exec.QueryRow(ctx, query, id, ownerID).Scan(
		&folder.ID,
		&folder.OwnerID,
		&folder.ParentID,
		&folder.Name,
		&folder.CreatedAt,
	)
	if err != nil {
		if isPgNoRowsError(err) {
			return nil, fmt.Errorf("folder %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get folder: %w", err)
	}

	return &folder, nil
}

// SetParent changes a folder's parent; nil moves it to root level
func (r *PostgresFolderRepository) SetParent(ctx context.Context, id, ownerID string, parentID *string) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET parent_id = $1
		WHERE id = $2 AND owner_id = $3
	`, r.tables.Folders)

	exec := GetExecutor(ctx, r.pool)
	result, err := exec.Exec(ctx, query, parentID, id, ownerID)
	if err != nil {
		return fmt.Errorf("move folder: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("folder %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// Delete removes exactly one folder row. There is no FK from children to
// parents, so contained folders and images are deliberately left in place.
func (r *PostgresFolderRepository) Delete(ctx context.Context, id, ownerID string) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE id = $1 AND owner_id = $2
	`, r.tables.Folders)

	exec := GetExecutor(ctx, r.pool)
	result, err := exec.Exec(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete folder: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("folder %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// List returns the owner's folders selected by scope
func (r *PostgresFolderRepository) List(ctx context.Context, ownerID string, scope models.ListScope) ([]models.Folder, error) {
	var query string
	var args []interface{}

	switch scope.Kind {
	case models.ScopeFolder:
		query = fmt.Sprintf(`
			SELECT id, owner_id, parent_id, name, created_at
			FROM %s
			WHERE owner_id = $1 AND parent_id = $2
			ORDER BY name ASC
		`, r.tables.Folders)
		args = append(args, ownerID, scope.FolderID)
	case models.ScopeAll:
		query = fmt.Sprintf(`
			SELECT id, owner_id, parent_id, name, created_at
			FROM %s
			WHERE owner_id = $1
			ORDER BY name ASC
		`, r.tables.Folders)
		args = append(args, ownerID)
	default: // ScopeRoot
		query = fmt.Sprintf(`
			SELECT id, owner_id, parent_id, name, created_at
			FROM %s
			WHERE owner_id = $1 AND parent_id IS NULL
			ORDER BY name ASC
		`, r.tables.Folders)
		args = append(args, ownerID)
	}

	exec := GetExecutor(ctx, r.pool)
	rows, err := exec.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list folders: %w", err)
	}
	defer rows.Close()

	var folders []models.Folder
	for rows.Next() {
		var folder models.Folder
		err := rows.Scan(
			&folder.ID,
			&folder.OwnerID,
			&folder.ParentID,
			&folder.Name,
			&folder.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan folder: %w", err)
		}
		folders = append(folders, folder)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate folders: %w", err)
	}

	return folders, nil
}

// CountByOwner returns the total number of folders the owner has
func (r *PostgresFolderRepository) CountByOwner(ctx context.Context, ownerID string) (int, error) {
	query := fmt.Sprintf(`
		SELECT COUNT(*) FROM %s WHERE owner_id = $1
	`, r.tables.Folders)

	exec := GetExecutor(ctx, r.pool)

	var count int
	if err := exec.QueryRow(ctx, query, ownerID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count folders: %w", err)
	}

	return count, nil
}

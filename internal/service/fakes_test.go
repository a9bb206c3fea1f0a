package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"time"

	"picstash/internal/domain"
	"picstash/internal/domain/models"
	"picstash/internal/domain/repositories"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeUserRepo is an in-memory UserRepository
type fakeUserRepo struct {
	users map[string]*models.User // keyed by username
	seq   int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	if _, ok := r.users[user.Username]; ok {
		return fmt.Errorf("username %q: %w", user.Username, domain.ErrConflict)
	}
	if user.ID == "" {
		r.seq++
		user.ID = fmt.Sprintf("u%d", r.seq)
	}
	user.CreatedAt = time.Now()
	copied := *user
	r.users[user.Username] = &copied
	return nil
}

func (r *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	user, ok := r.users[username]
	if !ok {
		return nil, fmt.Errorf("user %q: %w", username, domain.ErrNotFound)
	}
	copied := *user
	return &copied, nil
}

// fakeFolderRepo is an in-memory FolderRepository
type fakeFolderRepo struct {
	folders map[string]*models.Folder
	seq     int
}

func newFakeFolderRepo() *fakeFolderRepo {
	return &fakeFolderRepo{folders: make(map[string]*models.Folder)}
}

func (r *fakeFolderRepo) Create(ctx context.Context, folder *models.Folder) error {
	if folder.ID == "" {
		r.seq++
		folder.ID = fmt.Sprintf("f%d", r.seq)
	}
	folder.CreatedAt = time.Now()
	copied := *folder
	r.folders[folder.ID] = &copied
	return nil
}

func (r *fakeFolderRepo) GetByID(ctx context.Context, id, ownerID string) (*models.Folder, error) {
	folder, ok := r.folders[id]
	if !ok || folder.OwnerID != ownerID {
		return nil, fmt.Errorf("folder %s: %w", id, domain.ErrNotFound)
	}
	copied := *folder
	return &copied, nil
}

func (r *fakeFolderRepo) SetParent(ctx context.Context, id, ownerID string, parentID *string) error {
	folder, ok := r.folders[id]
	if !ok || folder.OwnerID != ownerID {
		return fmt.Errorf("folder %s: %w", id, domain.ErrNotFound)
	}
	folder.ParentID = parentID
	return nil
}

func (r *fakeFolderRepo) Delete(ctx context.Context, id, ownerID string) error {
	folder, ok := r.folders[id]
	if !ok || folder.OwnerID != ownerID {
		return fmt.Errorf("folder %s: %w", id, domain.ErrNotFound)
	}
	delete(r.folders, id)
	return nil
}

func (r *fakeFolderRepo) List(ctx context.Context, ownerID string, scope models.ListScope) ([]models.Folder, error) {
	var result []models.Folder
	for _, folder := range r.folders {
		if folder.OwnerID != ownerID {
			continue
		}
		switch scope.Kind {
		case models.ScopeRoot:
			if folder.ParentID != nil {
				continue
			}
		case models.ScopeFolder:
			if folder.ParentID == nil || *folder.ParentID != scope.FolderID {
				continue
			}
		}
		result = append(result, *folder)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (r *fakeFolderRepo) CountByOwner(ctx context.Context, ownerID string) (int, error) {
	count := 0
	for _, folder := range r.folders {
		if folder.OwnerID == ownerID {
			count++
		}
	}
	return count, nil
}

// fakeImageRepo is an in-memory ImageRepository
type fakeImageRepo struct {
	images map[string]*models.Image
	seq    int
}

func newFakeImageRepo() *fakeImageRepo {
	return &fakeImageRepo{images: make(map[string]*models.Image)}
}

func (r *fakeImageRepo) Create(ctx context.Context, image *models.Image) error {
	if image.ID == "" {
		r.seq++
		image.ID = fmt.Sprintf("i%d", r.seq)
	}
	image.UploadDate = time.Now()
	copied := *image
	r.images[image.ID] = &copied
	return nil
}

func (r *fakeImageRepo) GetByID(ctx context.Context, id, ownerID string) (*models.Image, error) {
	image, ok := r.images[id]
	if !ok || image.OwnerID != ownerID {
		return nil, fmt.Errorf("image %s: %w", id, domain.ErrNotFound)
	}
	copied := *image
	return &copied, nil
}

func (r *fakeImageRepo) SetFolder(ctx context.Context, id, ownerID string, folderID *string) error {
	image, ok := r.images[id]
	if !ok || image.OwnerID != ownerID {
		return fmt.Errorf("image %s: %w", id, domain.ErrNotFound)
	}
	image.FolderID = folderID
	return nil
}

func (r *fakeImageRepo) Delete(ctx context.Context, id, ownerID string) error {
	image, ok := r.images[id]
	if !ok || image.OwnerID != ownerID {
		return fmt.Errorf("image %s: %w", id, domain.ErrNotFound)
	}
	delete(r.images, id)
	return nil
}

func (r *fakeImageRepo) List(ctx context.Context, ownerID string, scope models.ListScope) ([]models.Image, error) {
	var result []models.Image
	for _, image := range r.images {
		if image.OwnerID != ownerID {
			continue
		}
		switch scope.Kind {
		case models.ScopeRoot:
			if image.FolderID != nil {
				continue
			}
		case models.ScopeFolder:
			if image.FolderID == nil || *image.FolderID != scope.FolderID {
				continue
			}
		}
		result = append(result, *image)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Filename < result[j].Filename })
	return result, nil
}

// fakeTxManager runs the function directly; the fakes have no transactions
type fakeTxManager struct{}

func (fakeTxManager) ExecTx(ctx context.Context, fn repositories.TxFn) error {
	return fn(ctx)
}

// fakeBlobStore records puts and can be told to fail for specific names
type fakeBlobStore struct {
	failOn  map[string]error
	puts    []string
	removed []string
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{failOn: make(map[string]error)}
}

func (b *fakeBlobStore) Put(ctx context.Context, name string, r io.Reader, size int64, contentType string) (string, error) {
	if err, ok := b.failOn[name]; ok {
		return "", err
	}
	b.puts = append(b.puts, name)
	return "https://blobs.test/" + name, nil
}

func (b *fakeBlobStore) Remove(ctx context.Context, name string) error {
	b.removed = append(b.removed, name)
	return nil
}

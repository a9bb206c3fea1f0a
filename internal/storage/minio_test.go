package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/minio/minio-go/v7"
)

type fakeObjectClient struct {
	putName    string
	putBucket  string
	putType    string
	putErr     error
	removeName string
	removeErr  error
}

func (c *fakeObjectClient) PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	if c.putErr != nil {
		return minio.UploadInfo{}, c.putErr
	}
	c.putBucket = bucketName
	c.putName = objectName
	c.putType = opts.ContentType
	return minio.UploadInfo{Bucket: bucketName, Key: objectName, Size: objectSize}, nil
}

func (c *fakeObjectClient) RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error {
	if c.removeErr != nil {
		return c.removeErr
	}
	c.removeName = objectName
	return nil
}

func TestMinioBlobStorePut(t *testing.T) {
	client := &fakeObjectClient{}
	store := &MinioBlobStore{
		client:    client,
		bucket:    "pics",
		publicURL: "https://cdn.example.com/pics",
	}

	url, err := store.Put(context.Background(), "photo.jpg", strings.NewReader("bytes"), 5, "image/jpeg")
	if err != nil {
		t.Fatalf("Put() failed: %v", err)
	}
	if url != "https://cdn.example.com/pics/photo.jpg" {
		t.Errorf("Put() url = %q", url)
	}
	if client.putBucket != "pics" || client.putName != "photo.jpg" {
		t.Errorf("uploaded %s/%s, want pics/photo.jpg", client.putBucket, client.putName)
	}
	if client.putType != "image/jpeg" {
		t.Errorf("content type = %q, want image/jpeg", client.putType)
	}
}

func TestMinioBlobStorePutDefaultsContentType(t *testing.T) {
	client := &fakeObjectClient{}
	store := &MinioBlobStore{client: client, bucket: "pics", publicURL: "https://cdn.example.com/pics"}

	if _, err := store.Put(context.Background(), "blob", strings.NewReader("x"), 1, ""); err != nil {
		t.Fatalf("Put() failed: %v", err)
	}
	if client.putType != defaultContentType {
		t.Errorf("content type = %q, want %q", client.putType, defaultContentType)
	}
}

func TestMinioBlobStorePutError(t *testing.T) {
	client := &fakeObjectClient{putErr: fmt.Errorf("connection refused")}
	store := &MinioBlobStore{client: client, bucket: "pics", publicURL: "https://cdn.example.com/pics"}

	if _, err := store.Put(context.Background(), "photo.jpg", strings.NewReader("x"), 1, ""); err == nil {
		t.Fatal("Put() succeeded, want error")
	}
}

func TestMinioBlobStoreRemove(t *testing.T) {
	client := &fakeObjectClient{}
	store := &MinioBlobStore{client: client, bucket: "pics", publicURL: "https://cdn.example.com/pics"}

	if err := store.Remove(context.Background(), "photo.jpg"); err != nil {
		t.Fatalf("Remove() failed: %v", err)
	}
	if client.removeName != "photo.jpg" {
		t.Errorf("removed %q, want photo.jpg", client.removeName)
	}
}

package models

import (
	"time"
)

type Image struct {
	ID         string    `json:"id" db:"id"`
	OwnerID    string    `json:"-" db:"owner_id"`
	FolderID   *string   `json:"folder_id" db:"folder_id"` // NULL = root level
	Filename   string    `json:"filename" db:"filename"`
	URL        string    `json:"url" db:"url"` // opaque blob store URL, immutable
	UploadDate time.Time `json:"upload_date" db:"upload_date"`
}

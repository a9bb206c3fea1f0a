package models

import (
	"time"
)

type Folder struct {
	ID        string    `json:"id" db:"id"`
	OwnerID   string    `json:"-" db:"owner_id"`
	ParentID  *string   `json:"parent_id" db:"parent_id"` // NULL = root level
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Crumb is one step of a breadcrumb trail, ordered root to leaf.
type Crumb struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

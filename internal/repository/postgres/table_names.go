package postgres

import (
	"fmt"
)

// TableNames holds dynamically prefixed table names so dev/test/prod can
// share one database. The prefix is interpolated before the SQL is sent,
// so each environment gets its own statements.
type TableNames struct {
	Users   string
	Folders string
	Images  string
}

// NewTableNames creates table names with the given prefix
func NewTableNames(prefix string) *TableNames {
	return &TableNames{
		Users:   fmt.Sprintf("%susers", prefix),
		Folders: fmt.Sprintf("%sfolders", prefix),
		Images:  fmt.Sprintf("%simages", prefix),
	}
}

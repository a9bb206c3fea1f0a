package httputil

import (
	"net/http"

	"picstash/internal/domain/models"
)

// ScopeParam is the query/form parameter carrying the containing-folder
// filter. The literal value models.RootSentinel means "root level" and is
// distinct from the parameter being omitted.
const ScopeParam = "folder_id"

// ParseScope reads the folder filter from the query string. The fallback
// decides what omission means: folder listing falls back to root-only, image
// listing falls back to unfiltered.
func ParseScope(r *http.Request, fallback models.ListScope) models.ListScope {
	if !r.URL.Query().Has(ScopeParam) {
		return fallback
	}

	value := r.URL.Query().Get(ScopeParam)
	if value == models.RootSentinel || value == "" {
		return models.RootScope()
	}
	return models.FolderScope(value)
}

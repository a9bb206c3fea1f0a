package handler

import (
	"log/slog"
	"net/http"

	"picstash/internal/domain/models"
	"picstash/internal/httputil"
	"picstash/internal/service"
)

// FolderHandler handles folder HTTP requests
type FolderHandler struct {
	folders *service.FolderService
	logger  *slog.Logger
}

// NewFolderHandler creates a new folder handler
func NewFolderHandler(folders *service.FolderService, logger *slog.Logger) *FolderHandler {
	return &FolderHandler{
		folders: folders,
		logger:  logger,
	}
}

// List returns folders for the authenticated user.
// GET /api/folders?folder_id={id|null}. Omitting the parameter lists
// root-level folders.
func (h *FolderHandler) List(w http.ResponseWriter, r *http.Request) {
	ownerID := httputil.GetUserID(r)
	scope := httputil.ParseScope(r, models.RootScope())

	folders, err := h.folders.List(r.Context(), ownerID, scope)
	if err != nil {
		handleError(w, err)
		return
	}

	if folders == nil {
		folders = []models.Folder{}
	}
	httputil.RespondJSON(w, http.StatusOK, folders)
}

// Create creates a new folder
// POST /api/folders
func (h *FolderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req service.CreateFolderRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.OwnerID = httputil.GetUserID(r)

	folder, err := h.folders.Create(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, folder)
}

// Move reparents a folder
// PUT /api/folders/{id}/move
func (h *FolderHandler) Move(w http.ResponseWriter, r *http.Request) {
	ownerID := httputil.GetUserID(r)
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "folder ID is required")
		return
	}

	var req struct {
		ParentID *string `json:"parent_id"`
	}
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.folders.Move(r.Context(), ownerID, id, req.ParentID); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Delete removes one folder
// DELETE /api/folders/{id}
func (h *FolderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ownerID := httputil.GetUserID(r)
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "folder ID is required")
		return
	}

	if err := h.folders.Delete(r.Context(), ownerID, id); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Breadcrumbs returns the root-to-leaf trail for a folder
// GET /api/folders/{id}/breadcrumbs
func (h *FolderHandler) Breadcrumbs(w http.ResponseWriter, r *http.Request) {
	ownerID := httputil.GetUserID(r)
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "folder ID is required")
		return
	}

	crumbs, err := h.folders.Breadcrumbs(r.Context(), ownerID, id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, crumbs)
}

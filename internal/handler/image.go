package handler

import (
	"log/slog"
	"net/http"

	"picstash/internal/domain/models"
	"picstash/internal/httputil"
	"picstash/internal/service"
)

// maxUploadBytes caps a whole multipart upload request
const maxUploadBytes = 64 << 20

// ImageHandler handles image HTTP requests
type ImageHandler struct {
	images *service.ImageService
	logger *slog.Logger
}

// NewImageHandler creates a new image handler
func NewImageHandler(images *service.ImageService, logger *slog.Logger) *ImageHandler {
	return &ImageHandler{
		images: images,
		logger: logger,
	}
}

// List returns images for the authenticated user.
// GET /api/images?folder_id={id|null}. Omitting the parameter returns every
// image regardless of folder, unlike folder listing.
func (h *ImageHandler) List(w http.ResponseWriter, r *http.Request) {
	ownerID := httputil.GetUserID(r)
	scope := httputil.ParseScope(r, models.AllScope())

	images, err := h.images.List(r.Context(), ownerID, scope)
	if err != nil {
		handleError(w, err)
		return
	}

	if images == nil {
		images = []models.Image{}
	}
	httputil.RespondJSON(w, http.StatusOK, images)
}

// Upload accepts a multipart batch of files under the "files" field, with an
// optional "folder_id" form value (the root sentinel or a folder id).
// POST /api/images/upload
func (h *ImageHandler) Upload(w http.ResponseWriter, r *http.Request) {
	ownerID := httputil.GetUserID(r)

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid multipart request")
		return
	}
	defer r.MultipartForm.RemoveAll()

	headers := r.MultipartForm.File["files"]
	if len(headers) == 0 {
		httputil.RespondError(w, http.StatusBadRequest, "no files provided")
		return
	}

	var folderID *string
	if r.MultipartForm.Value["folder_id"] != nil {
		v := r.FormValue("folder_id")
		folderID = &v
	}

	files := make([]service.UploadFile, 0, len(headers))
	for _, hdr := range headers {
		f, err := hdr.Open()
		if err != nil {
			httputil.RespondError(w, http.StatusBadRequest, "unreadable file in request")
			return
		}
		defer f.Close()

		files = append(files, service.UploadFile{
			Filename:    hdr.Filename,
			Reader:      f,
			Size:        hdr.Size,
			ContentType: hdr.Header.Get("Content-Type"),
		})
	}

	images, err := h.images.Upload(r.Context(), ownerID, files, folderID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, images)
}

// Move changes an image's containing folder
// PUT /api/images/{id}/move
func (h *ImageHandler) Move(w http.ResponseWriter, r *http.Request) {
	ownerID := httputil.GetUserID(r)
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "image ID is required")
		return
	}

	var req struct {
		FolderID *string `json:"folder_id"`
	}
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.images.Move(r.Context(), ownerID, id, req.FolderID); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Delete removes one image
// DELETE /api/images/{id}
func (h *ImageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ownerID := httputil.GetUserID(r)
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "image ID is required")
		return
	}

	if err := h.images.Delete(r.Context(), ownerID, id); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

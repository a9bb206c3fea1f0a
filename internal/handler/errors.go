package handler

import (
	"errors"
	"net/http"

	"picstash/internal/domain"
	"picstash/internal/httputil"
)

// handleError converts domain errors to HTTP responses
func handleError(w http.ResponseWriter, err error) {
	var uploadErr *domain.UploadError

	switch {
	case errors.Is(err, domain.ErrValidation):
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		httputil.RespondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrConflict):
		httputil.RespondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		httputil.RespondError(w, http.StatusUnauthorized, "unauthorized")
	case errors.As(err, &uploadErr):
		httputil.RespondErrorWithExtras(w, http.StatusBadGateway, uploadErr.Error(),
			map[string]interface{}{"filename": uploadErr.Filename})
	default:
		httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
	}
}

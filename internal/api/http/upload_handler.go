package http

import (
	"io"
	"net/http"
	"path/filepath"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/service"
	"vehicle-rental-backend/internal/storage"
)

// UploadHandler exposes the document upload flow: request an upload slot,
// PUT the bytes, confirm. The file endpoints back the URLs the local
// storage hands out.
type UploadHandler struct {
	docSvc service.DocumentService
	store  storage.Storage
}

func NewUploadHandler(docSvc service.DocumentService, store storage.Storage) *UploadHandler {
	return &UploadHandler{
		docSvc: docSvc,
		store:  store,
	}
}

type requestUploadRequest struct {
	Kind        domain.DocumentKind `json:"kind"`
	FileName    string              `json:"file_name"`
	ContentType string              `json:"content_type"`
}

func (h *UploadHandler) RequestUpload(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	var req requestUploadRequest
	if !decodeBody(w, r, &req) {
		return
	}

	doc, uploadURL, err := h.docSvc.RequestUpload(r.Context(), claims.UserID, req.Kind, req.FileName, req.ContentType)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"document":   doc,
		"upload_url": uploadURL,
	})
}

type confirmUploadRequest struct {
	FileSize int64 `json:"file_size"`
}

func (h *UploadHandler) ConfirmUpload(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req confirmUploadRequest
	if !decodeBody(w, r, &req) {
		return
	}

	doc, downloadURL, err := h.docSvc.ConfirmUpload(r.Context(), claims.UserID, id, req.FileSize)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"document":     doc,
		"download_url": downloadURL,
	})
}

// PutFile receives the raw body for a previously requested upload key.
func (h *UploadHandler) PutFile(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		writeBadRequest(w, "missing key parameter")
		return
	}

	contentType := r.Header.Get("Content-Type")
	switch contentType {
	case "image/jpeg", "image/png", "image/gif", "application/pdf":
	default:
		writeBadRequest(w, "unsupported content type")
		return
	}

	if err := h.store.SaveFile(key, r.Body); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to save file"})
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *UploadHandler) GetFile(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		writeBadRequest(w, "missing key parameter")
		return
	}

	file, err := h.store.ReadFile(key)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "file not found"})
		return
	}
	defer file.Close()

	contentType := "application/octet-stream"
	switch filepath.Ext(key) {
	case ".jpg", ".jpeg":
		contentType = "image/jpeg"
	case ".png":
		contentType = "image/png"
	case ".gif":
		contentType = "image/gif"
	case ".pdf":
		contentType = "application/pdf"
	}
	w.Header().Set("Content-Type", contentType)
	if _, err := io.Copy(w, file); err != nil {
		return
	}
}

package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/repository"
	"vehicle-rental-backend/internal/storage"

	"github.com/google/uuid"
)

const (
	uploadURLExpiry   = 15 * time.Minute
	downloadURLExpiry = time.Hour
	pendingUploadTTL  = 24 * time.Hour
)

type documentService struct {
	docRepo repository.DocumentRepository
	store   storage.Storage
}

func NewDocumentService(docRepo repository.DocumentRepository, store storage.Storage) DocumentService {
	return &documentService{
		docRepo: docRepo,
		store:   store,
	}
}

// RequestUpload records a pending document and hands back the URL the
// client should PUT the file to. Unconfirmed uploads expire after a day.
func (s *documentService) RequestUpload(ctx context.Context, userID int32, kind domain.DocumentKind, fileName, contentType string) (*domain.StoredDocument, string, error) {
	if kind != domain.DocumentKindVehicleImage && kind != domain.DocumentKindKYCPhoto {
		return nil, "", fmt.Errorf("unknown document kind %q", kind)
	}
	if fileName == "" {
		return nil, "", errors.New("file name is required")
	}

	key := fmt.Sprintf("%s/%d/%s%s", kind, userID, uuid.New().String(), filepath.Ext(fileName))
	expires := time.Now().Add(pendingUploadTTL)

	doc := &domain.StoredDocument{
		UserID:    userID,
		Kind:      kind,
		FileName:  fileName,
		FilePath:  key,
		MimeType:  contentType,
		Status:    "PENDING",
		ExpiresAt: &expires,
	}
	if err := s.docRepo.Create(ctx, doc); err != nil {
		return nil, "", err
	}

	uploadURL, err := s.store.GenerateUploadURL(ctx, key, contentType, uploadURLExpiry)
	if err != nil {
		return nil, "", err
	}
	return doc, uploadURL, nil
}

// ConfirmUpload verifies the file actually landed in storage before
// marking the document confirmed.
func (s *documentService) ConfirmUpload(ctx context.Context, userID, documentID int32, fileSize int64) (*domain.StoredDocument, string, error) {
	doc, err := s.docRepo.GetByID(ctx, documentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", ErrNotFound
		}
		return nil, "", err
	}
	if doc.UserID != userID {
		return nil, "", ErrUnauthorized
	}

	exists, size, err := s.store.FileExists(ctx, doc.FilePath)
	if err != nil {
		return nil, "", err
	}
	if !exists {
		return nil, "", errors.New("file has not been uploaded yet")
	}
	if fileSize > 0 && fileSize != size {
		return nil, "", fmt.Errorf("uploaded size %d does not match reported size %d", size, fileSize)
	}

	if err := s.docRepo.Confirm(ctx, doc.ID, size); err != nil {
		return nil, "", err
	}
	doc.Status = "CONFIRMED"
	doc.FileSize = size
	doc.ExpiresAt = nil

	downloadURL, err := s.store.GenerateDownloadURL(ctx, doc.FilePath, downloadURLExpiry)
	if err != nil {
		return nil, "", err
	}
	return doc, downloadURL, nil
}

package postgres

import (
	"context"
	"database/sql"
	"time"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/repository"
)

type documentRepository struct {
	db *sql.DB
}

func NewDocumentRepository(db *sql.DB) repository.DocumentRepository {
	return &documentRepository{db: db}
}

func (r *documentRepository) Create(ctx context.Context, d *domain.StoredDocument) error {
	query := `INSERT INTO stored_documents (user_id, kind, file_name, file_path, file_size, mime_type, status, expires_at, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	return r.db.QueryRowContext(ctx, query, d.UserID, d.Kind, d.FileName, d.FilePath, d.FileSize, d.MimeType, d.Status, d.ExpiresAt, time.Now()).Scan(&d.ID)
}

func (r *documentRepository) GetByID(ctx context.Context, id int32) (*domain.StoredDocument, error) {
	d := &domain.StoredDocument{}
	query := `SELECT id, user_id, kind, file_name, file_path, file_size, mime_type, status, expires_at, created_on, confirmed_on
	          FROM stored_documents WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&d.ID, &d.UserID, &d.Kind, &d.FileName, &d.FilePath, &d.FileSize, &d.MimeType, &d.Status, &d.ExpiresAt, &d.CreatedOn, &d.ConfirmedOn)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (r *documentRepository) Confirm(ctx context.Context, id int32, fileSize int64) error {
	query := `UPDATE stored_documents SET status = 'CONFIRMED', file_size = $1, confirmed_on = $2, expires_at = NULL WHERE id = $3`
	_, err := r.db.ExecContext(ctx, query, fileSize, time.Now(), id)
	return err
}

func (r *documentRepository) DeleteExpiredPending(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM stored_documents WHERE status = 'PENDING' AND expires_at < $1`, now)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

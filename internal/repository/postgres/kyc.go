package postgres

import (
	"context"
	"database/sql"
	"time"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/repository"
)

type kycRepository struct {
	db *sql.DB
}

func NewKYCRepository(db *sql.DB) repository.KYCRepository {
	return &kycRepository{db: db}
}

func (r *kycRepository) GetByUser(ctx context.Context, userID int32) (*domain.KYCDocument, error) {
	doc := &domain.KYCDocument{}
	query := `SELECT user_id, full_name, date_of_birth, address, phone, email, driving_license_number, secondary_doc_type, secondary_doc_number, status, submitted_on, verified_on
	          FROM kyc_documents WHERE user_id = $1`
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&doc.UserID, &doc.FullName, &doc.DateOfBirth, &doc.Address, &doc.Phone, &doc.Email, &doc.DrivingLicenseNumber, &doc.SecondaryDocType, &doc.SecondaryDocNumber, &doc.Status, &doc.SubmittedOn, &doc.VerifiedOn)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (r *kycRepository) Upsert(ctx context.Context, doc *domain.KYCDocument) error {
	query := `INSERT INTO kyc_documents (user_id, full_name, date_of_birth, address, phone, email, driving_license_number, secondary_doc_type, secondary_doc_number, status, submitted_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	          ON CONFLICT (user_id) DO UPDATE SET
	            full_name=EXCLUDED.full_name, date_of_birth=EXCLUDED.date_of_birth, address=EXCLUDED.address,
	            phone=EXCLUDED.phone, email=EXCLUDED.email, driving_license_number=EXCLUDED.driving_license_number,
	            secondary_doc_type=EXCLUDED.secondary_doc_type, secondary_doc_number=EXCLUDED.secondary_doc_number,
	            status=EXCLUDED.status, submitted_on=EXCLUDED.submitted_on, verified_on=NULL`
	_, err := r.db.ExecContext(ctx, query, doc.UserID, doc.FullName, doc.DateOfBirth, doc.Address, doc.Phone, doc.Email, doc.DrivingLicenseNumber, doc.SecondaryDocType, doc.SecondaryDocNumber, doc.Status, time.Now())
	return err
}

func (r *kycRepository) SetStatus(ctx context.Context, userID int32, status domain.KYCStatus) error {
	var verifiedOn interface{}
	if status == domain.KYCStatusVerified {
		verifiedOn = time.Now()
	}
	_, err := r.db.ExecContext(ctx, `UPDATE kyc_documents SET status = $1, verified_on = $2 WHERE user_id = $3`, status, verifiedOn, userID)
	return err
}

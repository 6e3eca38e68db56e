package postgres

import (
	"context"
	"database/sql"
	"time"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/repository"
)

type paymentMethodRepository struct {
	db *sql.DB
}

func NewPaymentMethodRepository(db *sql.DB) repository.PaymentMethodRepository {
	return &paymentMethodRepository{db: db}
}

func (r *paymentMethodRepository) Create(ctx context.Context, pm *domain.PaymentMethod) error {
	query := `INSERT INTO payment_methods (user_id, type, name, details, is_default, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	return r.db.QueryRowContext(ctx, query, pm.UserID, pm.Type, pm.Name, pm.Details, pm.IsDefault, time.Now()).Scan(&pm.ID)
}

func (r *paymentMethodRepository) GetByID(ctx context.Context, id int32) (*domain.PaymentMethod, error) {
	pm := &domain.PaymentMethod{}
	query := `SELECT id, user_id, type, name, details, is_default, created_on FROM payment_methods WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&pm.ID, &pm.UserID, &pm.Type, &pm.Name, &pm.Details, &pm.IsDefault, &pm.CreatedOn)
	if err != nil {
		return nil, err
	}
	return pm, nil
}

func (r *paymentMethodRepository) ListByUser(ctx context.Context, userID int32) ([]domain.PaymentMethod, error) {
	query := `SELECT id, user_id, type, name, details, is_default, created_on FROM payment_methods WHERE user_id = $1 ORDER BY is_default DESC, created_on`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var methods []domain.PaymentMethod
	for rows.Next() {
		var pm domain.PaymentMethod
		if err := rows.Scan(&pm.ID, &pm.UserID, &pm.Type, &pm.Name, &pm.Details, &pm.IsDefault, &pm.CreatedOn); err != nil {
			return nil, err
		}
		methods = append(methods, pm)
	}
	return methods, rows.Err()
}

func (r *paymentMethodRepository) Update(ctx context.Context, pm *domain.PaymentMethod) error {
	query := `UPDATE payment_methods SET type=$1, name=$2, details=$3, is_default=$4 WHERE id=$5 AND user_id=$6`
	_, err := r.db.ExecContext(ctx, query, pm.Type, pm.Name, pm.Details, pm.IsDefault, pm.ID, pm.UserID)
	return err
}

func (r *paymentMethodRepository) Delete(ctx context.Context, id, userID int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM payment_methods WHERE id = $1 AND user_id = $2`, id, userID)
	return err
}

func (r *paymentMethodRepository) ClearDefault(ctx context.Context, userID int32) error {
	_, err := r.db.ExecContext(ctx, `UPDATE payment_methods SET is_default = false WHERE user_id = $1`, userID)
	return err
}

type savedLocationRepository struct {
	db *sql.DB
}

func NewSavedLocationRepository(db *sql.DB) repository.SavedLocationRepository {
	return &savedLocationRepository{db: db}
}

func (r *savedLocationRepository) Create(ctx context.Context, loc *domain.SavedLocation) error {
	query := `INSERT INTO saved_locations (user_id, name, address, type, latitude, longitude, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	return r.db.QueryRowContext(ctx, query, loc.UserID, loc.Name, loc.Address, loc.Type, loc.Latitude, loc.Longitude, time.Now()).Scan(&loc.ID)
}

func (r *savedLocationRepository) ListByUser(ctx context.Context, userID int32) ([]domain.SavedLocation, error) {
	query := `SELECT id, user_id, name, address, type, latitude, longitude, created_on FROM saved_locations WHERE user_id = $1 ORDER BY created_on`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var locations []domain.SavedLocation
	for rows.Next() {
		var loc domain.SavedLocation
		if err := rows.Scan(&loc.ID, &loc.UserID, &loc.Name, &loc.Address, &loc.Type, &loc.Latitude, &loc.Longitude, &loc.CreatedOn); err != nil {
			return nil, err
		}
		locations = append(locations, loc)
	}
	return locations, rows.Err()
}

func (r *savedLocationRepository) Delete(ctx context.Context, id, userID int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM saved_locations WHERE id = $1 AND user_id = $2`, id, userID)
	return err
}

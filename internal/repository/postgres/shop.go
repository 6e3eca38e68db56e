package postgres

import (
	"context"
	"database/sql"
	"time"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/repository"
)

type shopRepository struct {
	db *sql.DB
}

func NewShopRepository(db *sql.DB) repository.ShopRepository {
	return &shopRepository{db: db}
}

const shopColumns = `id, owner_id, name, address, latitude, longitude, phone, image_url, rating, review_count, operating_hours, is_open, created_on`

func scanShop(row interface{ Scan(...interface{}) error }, s *domain.RentalShop) error {
	return row.Scan(&s.ID, &s.OwnerID, &s.Name, &s.Address, &s.Latitude, &s.Longitude, &s.Phone, &s.ImageURL, &s.Rating, &s.ReviewCount, &s.OperatingHours, &s.IsOpen, &s.CreatedOn)
}

func (r *shopRepository) Create(ctx context.Context, s *domain.RentalShop) error {
	query := `INSERT INTO rental_shops (owner_id, name, address, latitude, longitude, phone, image_url, rating, review_count, operating_hours, is_open, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING id`
	return r.db.QueryRowContext(ctx, query, s.OwnerID, s.Name, s.Address, s.Latitude, s.Longitude, s.Phone, s.ImageURL, s.Rating, s.ReviewCount, s.OperatingHours, s.IsOpen, time.Now()).Scan(&s.ID)
}

func (r *shopRepository) GetByID(ctx context.Context, id int32) (*domain.RentalShop, error) {
	s := &domain.RentalShop{}
	query := `SELECT ` + shopColumns + ` FROM rental_shops WHERE id = $1`
	if err := scanShop(r.db.QueryRowContext(ctx, query, id), s); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *shopRepository) List(ctx context.Context) ([]domain.RentalShop, error) {
	query := `SELECT ` + shopColumns + ` FROM rental_shops ORDER BY name`
	return r.queryShops(ctx, query)
}

func (r *shopRepository) ListByOwner(ctx context.Context, ownerID int32) ([]domain.RentalShop, error) {
	query := `SELECT ` + shopColumns + ` FROM rental_shops WHERE owner_id = $1 ORDER BY name`
	return r.queryShops(ctx, query, ownerID)
}

func (r *shopRepository) queryShops(ctx context.Context, query string, args ...interface{}) ([]domain.RentalShop, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shops []domain.RentalShop
	for rows.Next() {
		var s domain.RentalShop
		if err := scanShop(rows, &s); err != nil {
			return nil, err
		}
		shops = append(shops, s)
	}
	return shops, rows.Err()
}

func (r *shopRepository) Update(ctx context.Context, s *domain.RentalShop) error {
	query := `UPDATE rental_shops SET name=$1, address=$2, latitude=$3, longitude=$4, phone=$5, image_url=$6, operating_hours=$7, is_open=$8 WHERE id=$9`
	_, err := r.db.ExecContext(ctx, query, s.Name, s.Address, s.Latitude, s.Longitude, s.Phone, s.ImageURL, s.OperatingHours, s.IsOpen, s.ID)
	return err
}

func (r *shopRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM rental_shops WHERE id = $1`, id)
	return err
}

package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/repository"
)

type vehicleRepository struct {
	db *sql.DB
}

func NewVehicleRepository(db *sql.DB) repository.VehicleRepository {
	return &vehicleRepository{db: db}
}

const vehicleColumns = `id, shop_id, type, name, brand, model, registration_number, images, price_per_hour_cents, price_per_day_cents, fuel_type, transmission, seating, is_available, features, created_on`

// Images and features are stored as JSON arrays, mirroring the mobile API.
func scanVehicle(row interface{ Scan(...interface{}) error }, v *domain.Vehicle) error {
	var images, features []byte
	err := row.Scan(&v.ID, &v.ShopID, &v.Type, &v.Name, &v.Brand, &v.Model, &v.RegistrationNumber, &images, &v.PricePerHourCents, &v.PricePerDayCents, &v.FuelType, &v.Transmission, &v.Seating, &v.IsAvailable, &features, &v.CreatedOn)
	if err != nil {
		return err
	}
	if len(images) > 0 {
		if err := json.Unmarshal(images, &v.Images); err != nil {
			return err
		}
	}
	if len(features) > 0 {
		if err := json.Unmarshal(features, &v.Features); err != nil {
			return err
		}
	}
	return nil
}

func (r *vehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	images, err := json.Marshal(v.Images)
	if err != nil {
		return err
	}
	features, err := json.Marshal(v.Features)
	if err != nil {
		return err
	}
	query := `INSERT INTO vehicles (shop_id, type, name, brand, model, registration_number, images, price_per_hour_cents, price_per_day_cents, fuel_type, transmission, seating, is_available, features, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15) RETURNING id`
	return r.db.QueryRowContext(ctx, query, v.ShopID, v.Type, v.Name, v.Brand, v.Model, v.RegistrationNumber, images, v.PricePerHourCents, v.PricePerDayCents, v.FuelType, v.Transmission, v.Seating, v.IsAvailable, features, time.Now()).Scan(&v.ID)
}

func (r *vehicleRepository) GetByID(ctx context.Context, id int32) (*domain.Vehicle, error) {
	v := &domain.Vehicle{}
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = $1`
	if err := scanVehicle(r.db.QueryRowContext(ctx, query, id), v); err != nil {
		return nil, err
	}
	return v, nil
}

func (r *vehicleRepository) ListByShop(ctx context.Context, shopID int32) ([]domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE shop_id = $1 ORDER BY name`
	return r.queryVehicles(ctx, query, shopID)
}

func (r *vehicleRepository) List(ctx context.Context) ([]domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles ORDER BY name`
	return r.queryVehicles(ctx, query)
}

func (r *vehicleRepository) queryVehicles(ctx context.Context, query string, args ...interface{}) ([]domain.Vehicle, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vehicles []domain.Vehicle
	for rows.Next() {
		var v domain.Vehicle
		if err := scanVehicle(rows, &v); err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, rows.Err()
}

func (r *vehicleRepository) Update(ctx context.Context, v *domain.Vehicle) error {
	images, err := json.Marshal(v.Images)
	if err != nil {
		return err
	}
	features, err := json.Marshal(v.Features)
	if err != nil {
		return err
	}
	query := `UPDATE vehicles SET type=$1, name=$2, brand=$3, model=$4, registration_number=$5, images=$6, price_per_hour_cents=$7, price_per_day_cents=$8, fuel_type=$9, transmission=$10, seating=$11, is_available=$12, features=$13 WHERE id=$14`
	_, err = r.db.ExecContext(ctx, query, v.Type, v.Name, v.Brand, v.Model, v.RegistrationNumber, images, v.PricePerHourCents, v.PricePerDayCents, v.FuelType, v.Transmission, v.Seating, v.IsAvailable, features, v.ID)
	return err
}

func (r *vehicleRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM vehicles WHERE id = $1`, id)
	return err
}

func (r *vehicleRepository) BookedDays(ctx context.Context, vehicleID int32, year int, month time.Month) ([]int, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)
	query := `SELECT DISTINCT EXTRACT(DAY FROM start_date)::int FROM bookings
	          WHERE vehicle_id = $1 AND status IN ('upcoming', 'active')
	          AND start_date >= $2 AND start_date < $3 ORDER BY 1`
	rows, err := r.db.QueryContext(ctx, query, vehicleID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var days []int
	for rows.Next() {
		var d int
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	return days, rows.Err()
}

package postgres

import (
	"context"
	"testing"
	"time"

	"vehicle-rental-backend/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestVehicleRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewVehicleRepository(db)
	ctx := context.Background()

	cols := []string{"id", "shop_id", "type", "name", "brand", "model", "registration_number", "images",
		"price_per_hour_cents", "price_per_day_cents", "fuel_type", "transmission", "seating", "is_available",
		"features", "created_on"}

	seating := int32(5)
	rows := sqlmock.NewRows(cols).
		AddRow(int32(2), int32(3), "car", "City Hatchback", "Maruti", "Swift", "MH12AB1234",
			[]byte(`["a.jpg","b.jpg"]`), int32(1500), int32(8900), "petrol", "manual", seating, true,
			[]byte(`["AC","Bluetooth"]`), "2026-01-01T00:00:00Z")

	mock.ExpectQuery("SELECT (.+) FROM vehicles WHERE id").
		WithArgs(int32(2)).
		WillReturnRows(rows)

	v, err := repo.GetByID(ctx, 2)
	assert.NoError(t, err)
	assert.Equal(t, domain.VehicleTypeCar, v.Type)
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, v.Images)
	assert.Equal(t, []string{"AC", "Bluetooth"}, v.Features)
	assert.Equal(t, int32(8900), v.PricePerDayCents)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVehicleRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewVehicleRepository(db)
	ctx := context.Background()

	v := &domain.Vehicle{
		ShopID:            3,
		Type:              domain.VehicleTypeBike,
		Name:              "Commuter 125",
		Images:            []string{"bike.jpg"},
		PricePerHourCents: 500,
		PricePerDayCents:  2500,
		IsAvailable:       true,
		Features:          []string{"Helmet included"},
	}

	mock.ExpectQuery("INSERT INTO vehicles").
		WithArgs(int32(3), domain.VehicleTypeBike, "Commuter 125", "", "", "", []byte(`["bike.jpg"]`),
			int32(500), int32(2500), "", "", nil, true, []byte(`["Helmet included"]`), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int32(9)))

	err = repo.Create(ctx, v)
	assert.NoError(t, err)
	assert.Equal(t, int32(9), v.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVehicleRepository_BookedDays(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewVehicleRepository(db)
	ctx := context.Background()

	from := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)
	mock.ExpectQuery("SELECT DISTINCT EXTRACT").
		WithArgs(int32(2), from, to).
		WillReturnRows(sqlmock.NewRows([]string{"day"}).AddRow(14).AddRow(15))

	days, err := repo.BookedDays(ctx, 2, 2025, time.February)
	assert.NoError(t, err)
	assert.Equal(t, []int{14, 15}, days)
	assert.NoError(t, mock.ExpectationsWereMet())
}

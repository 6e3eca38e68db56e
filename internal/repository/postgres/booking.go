package postgres

import (
	"context"
	"database/sql"
	"time"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/repository"
)

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

const bookingColumns = `id, reference, user_id, vehicle_id, shop_id, booking_type, start_date, end_date, duration, delivery_option, delivery_address, payment_method_id, base_cost_cents, delivery_fee_cents, service_fee_cents, total_cost_cents, status, created_on, updated_on`

func scanBooking(row interface{ Scan(...interface{}) error }, b *domain.Booking) error {
	return row.Scan(&b.ID, &b.Reference, &b.UserID, &b.VehicleID, &b.ShopID, &b.BookingType, &b.StartDate, &b.EndDate, &b.Duration, &b.DeliveryOption, &b.DeliveryAddress, &b.PaymentMethodID, &b.BaseCostCents, &b.DeliveryFeeCents, &b.ServiceFeeCents, &b.TotalCostCents, &b.Status, &b.CreatedOn, &b.UpdatedOn)
}

func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (reference, user_id, vehicle_id, shop_id, booking_type, start_date, end_date, duration, delivery_option, delivery_address, payment_method_id, base_cost_cents, delivery_fee_cents, service_fee_cents, total_cost_cents, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18) RETURNING id`
	return r.db.QueryRowContext(ctx, query, b.Reference, b.UserID, b.VehicleID, b.ShopID, b.BookingType, b.StartDate, b.EndDate, b.Duration, b.DeliveryOption, b.DeliveryAddress, b.PaymentMethodID, b.BaseCostCents, b.DeliveryFeeCents, b.ServiceFeeCents, b.TotalCostCents, b.Status, time.Now(), time.Now()).Scan(&b.ID)
}

func (r *bookingRepository) GetByID(ctx context.Context, id int32) (*domain.Booking, error) {
	b := &domain.Booking{}
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	if err := scanBooking(r.db.QueryRowContext(ctx, query, id), b); err != nil {
		return nil, err
	}
	return b, nil
}

func (r *bookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	query := `UPDATE bookings SET status=$1, delivery_address=$2, updated_on=$3 WHERE id=$4`
	_, err := r.db.ExecContext(ctx, query, b.Status, b.DeliveryAddress, time.Now(), b.ID)
	return err
}

func (r *bookingRepository) ListByUser(ctx context.Context, userID int32, status string) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE user_id = $1`
	args := []interface{}{userID}
	if status != "" {
		query += ` AND status = $2`
		args = append(args, status)
	}
	query += ` ORDER BY created_on DESC`
	return r.queryBookings(ctx, query, args...)
}

func (r *bookingRepository) ListByShop(ctx context.Context, shopID int32, status string) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE shop_id = $1`
	args := []interface{}{shopID}
	if status != "" {
		query += ` AND status = $2`
		args = append(args, status)
	}
	query += ` ORDER BY created_on DESC`
	return r.queryBookings(ctx, query, args...)
}

func (r *bookingRepository) queryBookings(ctx context.Context, query string, args ...interface{}) ([]domain.Booking, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err := scanBooking(rows, &b); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (r *bookingRepository) ActivateStarted(ctx context.Context, now time.Time) (int64, error) {
	query := `UPDATE bookings SET status = $1, updated_on = $2 WHERE status = $3 AND start_date <= $2`
	res, err := r.db.ExecContext(ctx, query, domain.BookingStatusActive, now, domain.BookingStatusUpcoming)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *bookingRepository) CompleteExpired(ctx context.Context, now time.Time) (int64, error) {
	query := `UPDATE bookings SET status = $1, updated_on = $2 WHERE status = $3 AND end_date <= $2`
	res, err := r.db.ExecContext(ctx, query, domain.BookingStatusCompleted, now, domain.BookingStatusActive)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *bookingRepository) ListStartingBetween(ctx context.Context, from, to time.Time) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE status = 'upcoming' AND start_date >= $1 AND start_date < $2 ORDER BY start_date`
	return r.queryBookings(ctx, query, from, to)
}

func (r *bookingRepository) ShopStats(ctx context.Context, shopID int32) (*domain.ShopStats, error) {
	stats := &domain.ShopStats{ShopID: shopID}

	query := `SELECT
	            COALESCE(SUM(total_cost_cents) FILTER (WHERE status = 'completed'), 0),
	            COUNT(*) FILTER (WHERE status IN ('upcoming', 'active')),
	            COUNT(*) FILTER (WHERE status = 'completed')
	          FROM bookings WHERE shop_id = $1`
	err := r.db.QueryRowContext(ctx, query, shopID).Scan(&stats.TotalRevenueCents, &stats.ActiveBookings, &stats.CompletedBookings)
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM vehicles WHERE shop_id = $1`, shopID).Scan(&stats.FleetSize)
	if err != nil {
		return nil, err
	}

	recent, err := r.queryBookings(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE shop_id = $1 ORDER BY created_on DESC LIMIT 5`, shopID)
	if err != nil {
		return nil, err
	}
	stats.RecentBookings = recent
	return stats, nil
}

package postgres

import (
	"context"
	"database/sql"
	"time"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/repository"
)

type staffTaskRepository struct {
	db *sql.DB
}

func NewStaffTaskRepository(db *sql.DB) repository.StaffTaskRepository {
	return &staffTaskRepository{db: db}
}

func (r *staffTaskRepository) Create(ctx context.Context, t *domain.StaffTask) error {
	query := `INSERT INTO staff_tasks (staff_id, booking_id, type, scheduled_time, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	return r.db.QueryRowContext(ctx, query, t.StaffID, t.BookingID, t.Type, t.ScheduledTime, t.Status, time.Now(), time.Now()).Scan(&t.ID)
}

func (r *staffTaskRepository) GetByID(ctx context.Context, id int32) (*domain.StaffTask, error) {
	t := &domain.StaffTask{}
	query := `SELECT id, staff_id, booking_id, type, scheduled_time, status, created_on, updated_on FROM staff_tasks WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&t.ID, &t.StaffID, &t.BookingID, &t.Type, &t.ScheduledTime, &t.Status, &t.CreatedOn, &t.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// ListByStaff joins in the booking so the task list screen can show the
// vehicle, address and timing without extra round trips.
func (r *staffTaskRepository) ListByStaff(ctx context.Context, staffID int32) ([]domain.StaffTask, error) {
	query := `SELECT t.id, t.staff_id, t.booking_id, t.type, t.scheduled_time, t.status, t.created_on, t.updated_on,
	                 b.id, b.reference, b.user_id, b.vehicle_id, b.shop_id, b.booking_type, b.start_date, b.end_date, b.duration,
	                 b.delivery_option, b.delivery_address, b.payment_method_id, b.base_cost_cents, b.delivery_fee_cents,
	                 b.service_fee_cents, b.total_cost_cents, b.status, b.created_on, b.updated_on
	          FROM staff_tasks t JOIN bookings b ON b.id = t.booking_id
	          WHERE t.staff_id = $1 ORDER BY t.created_on DESC`
	rows, err := r.db.QueryContext(ctx, query, staffID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []domain.StaffTask
	for rows.Next() {
		var t domain.StaffTask
		var b domain.Booking
		err := rows.Scan(&t.ID, &t.StaffID, &t.BookingID, &t.Type, &t.ScheduledTime, &t.Status, &t.CreatedOn, &t.UpdatedOn,
			&b.ID, &b.Reference, &b.UserID, &b.VehicleID, &b.ShopID, &b.BookingType, &b.StartDate, &b.EndDate, &b.Duration,
			&b.DeliveryOption, &b.DeliveryAddress, &b.PaymentMethodID, &b.BaseCostCents, &b.DeliveryFeeCents,
			&b.ServiceFeeCents, &b.TotalCostCents, &b.Status, &b.CreatedOn, &b.UpdatedOn)
		if err != nil {
			return nil, err
		}
		t.Booking = &b
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *staffTaskRepository) UpdateStatus(ctx context.Context, id int32, status domain.TaskStatus) error {
	_, err := r.db.ExecContext(ctx, `UPDATE staff_tasks SET status = $1, updated_on = $2 WHERE id = $3`, status, time.Now(), id)
	return err
}

func (r *staffTaskRepository) DeleteByBooking(ctx context.Context, bookingID int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM staff_tasks WHERE booking_id = $1`, bookingID)
	return err
}

type staffComplaintRepository struct {
	db *sql.DB
}

func NewStaffComplaintRepository(db *sql.DB) repository.StaffComplaintRepository {
	return &staffComplaintRepository{db: db}
}

func (r *staffComplaintRepository) Create(ctx context.Context, c *domain.StaffComplaint) error {
	query := `INSERT INTO staff_complaints (staff_id, subject, details, is_resolved, created_on)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return r.db.QueryRowContext(ctx, query, c.StaffID, c.Subject, c.Details, c.IsResolved, time.Now()).Scan(&c.ID)
}

func (r *staffComplaintRepository) ListByStaff(ctx context.Context, staffID int32) ([]domain.StaffComplaint, error) {
	query := `SELECT id, staff_id, subject, details, is_resolved, created_on FROM staff_complaints WHERE staff_id = $1 ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query, staffID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var complaints []domain.StaffComplaint
	for rows.Next() {
		var c domain.StaffComplaint
		if err := rows.Scan(&c.ID, &c.StaffID, &c.Subject, &c.Details, &c.IsResolved, &c.CreatedOn); err != nil {
			return nil, err
		}
		complaints = append(complaints, c)
	}
	return complaints, rows.Err()
}

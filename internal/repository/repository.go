package repository

import (
	"context"
	"time"

	"vehicle-rental-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	ListStaffByShop(ctx context.Context, shopID int32) ([]domain.User, error)
}

type ShopRepository interface {
	Create(ctx context.Context, shop *domain.RentalShop) error
	GetByID(ctx context.Context, id int32) (*domain.RentalShop, error)
	List(ctx context.Context) ([]domain.RentalShop, error)
	ListByOwner(ctx context.Context, ownerID int32) ([]domain.RentalShop, error)
	Update(ctx context.Context, shop *domain.RentalShop) error
	Delete(ctx context.Context, id int32) error
}

type VehicleRepository interface {
	Create(ctx context.Context, vehicle *domain.Vehicle) error
	GetByID(ctx context.Context, id int32) (*domain.Vehicle, error)
	ListByShop(ctx context.Context, shopID int32) ([]domain.Vehicle, error)
	List(ctx context.Context) ([]domain.Vehicle, error)
	Update(ctx context.Context, vehicle *domain.Vehicle) error
	Delete(ctx context.Context, id int32) error
	// BookedDays returns the days of a month (1..31) on which the vehicle
	// has an upcoming or active booking.
	BookedDays(ctx context.Context, vehicleID int32, year int, month time.Month) ([]int, error)
}

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id int32) (*domain.Booking, error)
	Update(ctx context.Context, booking *domain.Booking) error
	ListByUser(ctx context.Context, userID int32, status string) ([]domain.Booking, error)
	ListByShop(ctx context.Context, shopID int32, status string) ([]domain.Booking, error)
	// Lifecycle sweeps used by the cron jobs.
	ActivateStarted(ctx context.Context, now time.Time) (int64, error)
	CompleteExpired(ctx context.Context, now time.Time) (int64, error)
	ListStartingBetween(ctx context.Context, from, to time.Time) ([]domain.Booking, error)
	// ShopStats feeds the owner dashboard.
	ShopStats(ctx context.Context, shopID int32) (*domain.ShopStats, error)
}

type PaymentMethodRepository interface {
	Create(ctx context.Context, pm *domain.PaymentMethod) error
	GetByID(ctx context.Context, id int32) (*domain.PaymentMethod, error)
	ListByUser(ctx context.Context, userID int32) ([]domain.PaymentMethod, error)
	Update(ctx context.Context, pm *domain.PaymentMethod) error
	Delete(ctx context.Context, id, userID int32) error
	ClearDefault(ctx context.Context, userID int32) error
}

type SavedLocationRepository interface {
	Create(ctx context.Context, loc *domain.SavedLocation) error
	ListByUser(ctx context.Context, userID int32) ([]domain.SavedLocation, error)
	Delete(ctx context.Context, id, userID int32) error
}

type KYCRepository interface {
	GetByUser(ctx context.Context, userID int32) (*domain.KYCDocument, error)
	Upsert(ctx context.Context, doc *domain.KYCDocument) error
	SetStatus(ctx context.Context, userID int32, status domain.KYCStatus) error
}

type StaffTaskRepository interface {
	Create(ctx context.Context, task *domain.StaffTask) error
	GetByID(ctx context.Context, id int32) (*domain.StaffTask, error)
	ListByStaff(ctx context.Context, staffID int32) ([]domain.StaffTask, error)
	UpdateStatus(ctx context.Context, id int32, status domain.TaskStatus) error
	DeleteByBooking(ctx context.Context, bookingID int32) error
}

type StaffComplaintRepository interface {
	Create(ctx context.Context, complaint *domain.StaffComplaint) error
	ListByStaff(ctx context.Context, staffID int32) ([]domain.StaffComplaint, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) error
	List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, id, userID int32) error
}

type DocumentRepository interface {
	Create(ctx context.Context, doc *domain.StoredDocument) error
	GetByID(ctx context.Context, id int32) (*domain.StoredDocument, error)
	Confirm(ctx context.Context, id int32, fileSize int64) error
	DeleteExpiredPending(ctx context.Context, now time.Time) (int64, error)
}

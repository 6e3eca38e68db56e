package service

import (
	"context"
	"time"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/utils"
)

type AuthService interface {
	Register(ctx context.Context, name, email, phone, password string, role domain.UserRole) (*domain.User, string, string, error) // user, access, refresh
	Login(ctx context.Context, email, password string) (*domain.User, string, string, error)
	RefreshToken(ctx context.Context, refresh string) (string, string, error)
	GetProfile(ctx context.Context, userID int32) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID int32, name, phone, avatarURL string) error
}

type ShopService interface {
	ListShops(ctx context.Context) ([]domain.RentalShop, error)
	GetShop(ctx context.Context, id int32) (*domain.RentalShop, []domain.Vehicle, error)
	CreateShop(ctx context.Context, ownerID int32, shop *domain.RentalShop) error
	UpdateShop(ctx context.Context, ownerID int32, shop *domain.RentalShop) error
	ListMyShops(ctx context.Context, ownerID int32) ([]domain.RentalShop, error)
	Dashboard(ctx context.Context, ownerID, shopID int32) (*domain.ShopStats, error)
	ListStaff(ctx context.Context, ownerID, shopID int32) ([]domain.User, error)
}

// CalendarDay is one selectable cell of the availability grid. Padding
// cells before the 1st are represented as nil entries in the day list.
type CalendarDay struct {
	Day    int       `json:"day"`
	Date   time.Time `json:"date"`
	Booked bool      `json:"booked"`
}

// VehicleCalendar is the month view for the booking screen: leading nil
// cells align day 1 under its weekday, then one cell per day.
type VehicleCalendar struct {
	Year      int            `json:"year"`
	Month     time.Month     `json:"month"`
	Days      []*CalendarDay `json:"days"`
	TimeSlots []string       `json:"time_slots"`
}

type VehicleService interface {
	AddVehicle(ctx context.Context, ownerID int32, vehicle *domain.Vehicle) error
	GetVehicle(ctx context.Context, id int32) (*domain.Vehicle, error)
	ListVehicles(ctx context.Context, shopID int32) ([]domain.Vehicle, error)
	UpdateVehicle(ctx context.Context, ownerID int32, vehicle *domain.Vehicle) error
	DeleteVehicle(ctx context.Context, ownerID, id int32) error
	AvailabilityCalendar(ctx context.Context, vehicleID int32, year int, month time.Month) (*VehicleCalendar, error)
}

// BookingDraft carries everything the booking screen collects before
// submission. Dates arrive as "2006-01-02" and the time as a slot label.
type BookingDraft struct {
	VehicleID       int32                 `json:"vehicle_id"`
	BookingType     domain.BookingType    `json:"booking_type"`
	StartDate       string                `json:"start_date"`
	TimeSlot        string                `json:"time_slot"`
	Duration        int32                 `json:"duration"`
	DeliveryOption  domain.DeliveryOption `json:"delivery_option"`
	DeliveryAddress string                `json:"delivery_address"`
	PaymentMethodID *int32                `json:"payment_method_id"`
}

type BookingService interface {
	Quote(ctx context.Context, vehicleID int32, bookingType domain.BookingType, duration int32, delivery domain.DeliveryOption) (*utils.BookingQuote, error)
	CreateBooking(ctx context.Context, userID int32, draft BookingDraft) (*domain.Booking, error)
	GetBooking(ctx context.Context, userID, bookingID int32) (*domain.Booking, error)
	ListMyBookings(ctx context.Context, userID int32, status string) ([]domain.Booking, error)
	ListShopBookings(ctx context.Context, ownerID, shopID int32, status string) ([]domain.Booking, error)
	CancelBooking(ctx context.Context, userID, bookingID int32) (*domain.Booking, error)
	AssignStaff(ctx context.Context, ownerID, bookingID, staffID int32) (*domain.StaffTask, error)
}

type ProfileService interface {
	ListPaymentMethods(ctx context.Context, userID int32) ([]domain.PaymentMethod, error)
	AddPaymentMethod(ctx context.Context, userID int32, pm *domain.PaymentMethod) error
	SetDefaultPaymentMethod(ctx context.Context, userID, id int32) error
	DeletePaymentMethod(ctx context.Context, userID, id int32) error

	ListLocations(ctx context.Context, userID int32) ([]domain.SavedLocation, error)
	AddLocation(ctx context.Context, userID int32, loc *domain.SavedLocation) error
	DeleteLocation(ctx context.Context, userID, id int32) error

	GetKYC(ctx context.Context, userID int32) (*domain.KYCDocument, error)
	SubmitKYC(ctx context.Context, userID int32, doc *domain.KYCDocument) error
}

type StaffService interface {
	ListTasks(ctx context.Context, staffID int32) ([]domain.StaffTask, error)
	UpdateTaskStatus(ctx context.Context, staffID, taskID int32, status domain.TaskStatus) (*domain.StaffTask, error)
	SubmitComplaint(ctx context.Context, staffID int32, subject, details string) (*domain.StaffComplaint, error)
	ListComplaints(ctx context.Context, staffID int32) ([]domain.StaffComplaint, error)
}

type NotificationService interface {
	GetNotifications(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, userID, notificationID int32) error
}

type EmailService interface {
	SendBookingConfirmation(ctx context.Context, email, name string, booking *domain.Booking, vehicleName string) error
	SendTaskAssignment(ctx context.Context, email, name string, task *domain.StaffTask, vehicleName string) error
	SendBookingReminder(ctx context.Context, email, name string, booking *domain.Booking, vehicleName string) error
}

type DocumentService interface {
	RequestUpload(ctx context.Context, userID int32, kind domain.DocumentKind, fileName, contentType string) (*domain.StoredDocument, string, error) // document, upload URL
	ConfirmUpload(ctx context.Context, userID, documentID int32, fileSize int64) (*domain.StoredDocument, string, error)                            // document, download URL
}

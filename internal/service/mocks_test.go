package service

import (
	"context"
	"time"

	"vehicle-rental-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) ListStaffByShop(ctx context.Context, shopID int32) ([]domain.User, error) {
	args := m.Called(ctx, shopID)
	return args.Get(0).([]domain.User), args.Error(1)
}

// MockShopRepo
type MockShopRepo struct {
	mock.Mock
}

func (m *MockShopRepo) Create(ctx context.Context, shop *domain.RentalShop) error {
	args := m.Called(ctx, shop)
	return args.Error(0)
}
func (m *MockShopRepo) GetByID(ctx context.Context, id int32) (*domain.RentalShop, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalShop), args.Error(1)
}
func (m *MockShopRepo) List(ctx context.Context) ([]domain.RentalShop, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.RentalShop), args.Error(1)
}
func (m *MockShopRepo) ListByOwner(ctx context.Context, ownerID int32) ([]domain.RentalShop, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]domain.RentalShop), args.Error(1)
}
func (m *MockShopRepo) Update(ctx context.Context, shop *domain.RentalShop) error {
	args := m.Called(ctx, shop)
	return args.Error(0)
}
func (m *MockShopRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockVehicleRepo
type MockVehicleRepo struct {
	mock.Mock
}

func (m *MockVehicleRepo) Create(ctx context.Context, vehicle *domain.Vehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}
func (m *MockVehicleRepo) GetByID(ctx context.Context, id int32) (*domain.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}
func (m *MockVehicleRepo) ListByShop(ctx context.Context, shopID int32) ([]domain.Vehicle, error) {
	args := m.Called(ctx, shopID)
	return args.Get(0).([]domain.Vehicle), args.Error(1)
}
func (m *MockVehicleRepo) List(ctx context.Context) ([]domain.Vehicle, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Vehicle), args.Error(1)
}
func (m *MockVehicleRepo) Update(ctx context.Context, vehicle *domain.Vehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}
func (m *MockVehicleRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockVehicleRepo) BookedDays(ctx context.Context, vehicleID int32, year int, month time.Month) ([]int, error) {
	args := m.Called(ctx, vehicleID, year, month)
	return args.Get(0).([]int), args.Error(1)
}

// MockBookingRepo
type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) Create(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}
func (m *MockBookingRepo) GetByID(ctx context.Context, id int32) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) Update(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}
func (m *MockBookingRepo) ListByUser(ctx context.Context, userID int32, status string) ([]domain.Booking, error) {
	args := m.Called(ctx, userID, status)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) ListByShop(ctx context.Context, shopID int32, status string) ([]domain.Booking, error) {
	args := m.Called(ctx, shopID, status)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) ActivateStarted(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockBookingRepo) CompleteExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockBookingRepo) ListStartingBetween(ctx context.Context, from, to time.Time) ([]domain.Booking, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) ShopStats(ctx context.Context, shopID int32) (*domain.ShopStats, error) {
	args := m.Called(ctx, shopID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShopStats), args.Error(1)
}

// MockPaymentMethodRepo
type MockPaymentMethodRepo struct {
	mock.Mock
}

func (m *MockPaymentMethodRepo) Create(ctx context.Context, pm *domain.PaymentMethod) error {
	args := m.Called(ctx, pm)
	return args.Error(0)
}
func (m *MockPaymentMethodRepo) GetByID(ctx context.Context, id int32) (*domain.PaymentMethod, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentMethod), args.Error(1)
}
func (m *MockPaymentMethodRepo) ListByUser(ctx context.Context, userID int32) ([]domain.PaymentMethod, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.PaymentMethod), args.Error(1)
}
func (m *MockPaymentMethodRepo) Update(ctx context.Context, pm *domain.PaymentMethod) error {
	args := m.Called(ctx, pm)
	return args.Error(0)
}
func (m *MockPaymentMethodRepo) Delete(ctx context.Context, id, userID int32) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}
func (m *MockPaymentMethodRepo) ClearDefault(ctx context.Context, userID int32) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockSavedLocationRepo
type MockSavedLocationRepo struct {
	mock.Mock
}

func (m *MockSavedLocationRepo) Create(ctx context.Context, loc *domain.SavedLocation) error {
	args := m.Called(ctx, loc)
	return args.Error(0)
}
func (m *MockSavedLocationRepo) ListByUser(ctx context.Context, userID int32) ([]domain.SavedLocation, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.SavedLocation), args.Error(1)
}
func (m *MockSavedLocationRepo) Delete(ctx context.Context, id, userID int32) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

// MockKYCRepo
type MockKYCRepo struct {
	mock.Mock
}

func (m *MockKYCRepo) GetByUser(ctx context.Context, userID int32) (*domain.KYCDocument, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.KYCDocument), args.Error(1)
}
func (m *MockKYCRepo) Upsert(ctx context.Context, doc *domain.KYCDocument) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}
func (m *MockKYCRepo) SetStatus(ctx context.Context, userID int32, status domain.KYCStatus) error {
	args := m.Called(ctx, userID, status)
	return args.Error(0)
}

// MockStaffTaskRepo
type MockStaffTaskRepo struct {
	mock.Mock
}

func (m *MockStaffTaskRepo) Create(ctx context.Context, task *domain.StaffTask) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}
func (m *MockStaffTaskRepo) GetByID(ctx context.Context, id int32) (*domain.StaffTask, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StaffTask), args.Error(1)
}
func (m *MockStaffTaskRepo) ListByStaff(ctx context.Context, staffID int32) ([]domain.StaffTask, error) {
	args := m.Called(ctx, staffID)
	return args.Get(0).([]domain.StaffTask), args.Error(1)
}
func (m *MockStaffTaskRepo) UpdateStatus(ctx context.Context, id int32, status domain.TaskStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockStaffTaskRepo) DeleteByBooking(ctx context.Context, bookingID int32) error {
	args := m.Called(ctx, bookingID)
	return args.Error(0)
}

// MockStaffComplaintRepo
type MockStaffComplaintRepo struct {
	mock.Mock
}

func (m *MockStaffComplaintRepo) Create(ctx context.Context, complaint *domain.StaffComplaint) error {
	args := m.Called(ctx, complaint)
	return args.Error(0)
}
func (m *MockStaffComplaintRepo) ListByStaff(ctx context.Context, staffID int32) ([]domain.StaffComplaint, error) {
	args := m.Called(ctx, staffID)
	return args.Get(0).([]domain.StaffComplaint), args.Error(1)
}

// MockNotificationRepo
type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, note *domain.Notification) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}
func (m *MockNotificationRepo) List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error) {
	args := m.Called(ctx, userID, limit, offset)
	return args.Get(0).([]domain.Notification), args.Get(1).(int32), args.Error(2)
}
func (m *MockNotificationRepo) MarkAsRead(ctx context.Context, id, userID int32) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendBookingConfirmation(ctx context.Context, email, name string, booking *domain.Booking, vehicleName string) error {
	args := m.Called(ctx, email, name, booking, vehicleName)
	return args.Error(0)
}
func (m *MockEmailService) SendTaskAssignment(ctx context.Context, email, name string, task *domain.StaffTask, vehicleName string) error {
	args := m.Called(ctx, email, name, task, vehicleName)
	return args.Error(0)
}
func (m *MockEmailService) SendBookingReminder(ctx context.Context, email, name string, booking *domain.Booking, vehicleName string) error {
	args := m.Called(ctx, email, name, booking, vehicleName)
	return args.Error(0)
}

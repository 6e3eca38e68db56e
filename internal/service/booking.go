package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/repository"
	"vehicle-rental-backend/internal/utils"

	"github.com/google/uuid"
)

type bookingService struct {
	bookingRepo repository.BookingRepository
	vehicleRepo repository.VehicleRepository
	shopRepo    repository.ShopRepository
	userRepo    repository.UserRepository
	taskRepo    repository.StaffTaskRepository
	noteRepo    repository.NotificationRepository
	emailSvc    EmailService
	fees        utils.FeeSchedule
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	vehicleRepo repository.VehicleRepository,
	shopRepo repository.ShopRepository,
	userRepo repository.UserRepository,
	taskRepo repository.StaffTaskRepository,
	noteRepo repository.NotificationRepository,
	emailSvc EmailService,
	fees utils.FeeSchedule,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		vehicleRepo: vehicleRepo,
		shopRepo:    shopRepo,
		userRepo:    userRepo,
		taskRepo:    taskRepo,
		noteRepo:    noteRepo,
		emailSvc:    emailSvc,
		fees:        fees,
	}
}

func (s *bookingService) Quote(ctx context.Context, vehicleID int32, bookingType domain.BookingType, duration int32, delivery domain.DeliveryOption) (*utils.BookingQuote, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	rate := utils.RateForBookingType(vehicle, bookingType)
	quote, err := utils.QuoteBooking(rate, duration, delivery == domain.DeliveryOptionDelivery, s.fees)
	if err != nil {
		return nil, err
	}
	return &quote, nil
}

// CreateBooking validates the draft, prices it from the current vehicle
// rates and writes the booking with the price snapshot. The delivery
// address check runs before anything is read or written.
func (s *bookingService) CreateBooking(ctx context.Context, userID int32, draft BookingDraft) (*domain.Booking, error) {
	if draft.DeliveryOption == domain.DeliveryOptionDelivery && draft.DeliveryAddress == "" {
		return nil, ErrDeliveryAddressRequired
	}
	if draft.BookingType != domain.BookingTypeHour && draft.BookingType != domain.BookingTypeDay {
		return nil, fmt.Errorf("unknown booking type %q", draft.BookingType)
	}

	startDay, err := time.Parse("2006-01-02", draft.StartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start date: %w", err)
	}
	start, err := utils.CombineDateTime(startDay, draft.TimeSlot)
	if err != nil {
		return nil, err
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, draft.VehicleID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !vehicle.IsAvailable {
		return nil, ErrVehicleUnavailable
	}

	rate := utils.RateForBookingType(vehicle, draft.BookingType)
	quote, err := utils.QuoteBooking(rate, draft.Duration, draft.DeliveryOption == domain.DeliveryOptionDelivery, s.fees)
	if err != nil {
		return nil, err
	}

	unit := time.Hour
	if draft.BookingType == domain.BookingTypeDay {
		unit = 24 * time.Hour
	}

	booking := &domain.Booking{
		Reference:        uuid.New().String(),
		UserID:           userID,
		VehicleID:        vehicle.ID,
		ShopID:           vehicle.ShopID,
		BookingType:      draft.BookingType,
		StartDate:        start,
		EndDate:          start.Add(time.Duration(quote.Duration) * unit),
		Duration:         quote.Duration,
		DeliveryOption:   draft.DeliveryOption,
		DeliveryAddress:  draft.DeliveryAddress,
		PaymentMethodID:  draft.PaymentMethodID,
		BaseCostCents:    quote.BaseCostCents,
		DeliveryFeeCents: quote.DeliveryFeeCents,
		ServiceFeeCents:  quote.ServiceFeeCents,
		TotalCostCents:   quote.TotalCents,
		Status:           domain.BookingStatusUpcoming,
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	s.notifyShopOwner(ctx, booking, vehicle)

	return booking, nil
}

// notifyShopOwner emails the shop owner and drops an in-app notification.
// Failures are logged by the callees and never fail the booking.
func (s *bookingService) notifyShopOwner(ctx context.Context, booking *domain.Booking, vehicle *domain.Vehicle) {
	shop, err := s.shopRepo.GetByID(ctx, booking.ShopID)
	if err != nil {
		return
	}
	owner, err := s.userRepo.GetByID(ctx, shop.OwnerID)
	if err != nil {
		return
	}

	_ = s.emailSvc.SendBookingConfirmation(ctx, owner.Email, owner.Name, booking, vehicle.Name)

	notif := &domain.Notification{
		UserID:  owner.ID,
		Title:   "New Booking",
		Message: fmt.Sprintf("%s was booked for %d %s(s)", vehicle.Name, booking.Duration, booking.BookingType),
		Attributes: map[string]string{
			"type":       "BOOKING_CREATED",
			"booking_id": fmt.Sprintf("%d", booking.ID),
		},
	}
	_ = s.noteRepo.Create(ctx, notif)
}

func (s *bookingService) GetBooking(ctx context.Context, userID, bookingID int32) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if booking.UserID != userID {
		// Owners of the shop may read their shop's bookings too.
		shop, err := s.shopRepo.GetByID(ctx, booking.ShopID)
		if err != nil || shop.OwnerID != userID {
			return nil, ErrUnauthorized
		}
	}
	return booking, nil
}

func (s *bookingService) ListMyBookings(ctx context.Context, userID int32, status string) ([]domain.Booking, error) {
	return s.bookingRepo.ListByUser(ctx, userID, status)
}

func (s *bookingService) ListShopBookings(ctx context.Context, ownerID, shopID int32, status string) ([]domain.Booking, error) {
	if err := s.requireShopOwner(ctx, ownerID, shopID); err != nil {
		return nil, err
	}
	return s.bookingRepo.ListByShop(ctx, shopID, status)
}

func (s *bookingService) CancelBooking(ctx context.Context, userID, bookingID int32) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if booking.UserID != userID {
		return nil, ErrUnauthorized
	}
	if booking.Status != domain.BookingStatusUpcoming {
		return nil, ErrBookingNotCancellable
	}

	booking.Status = domain.BookingStatusCancelled
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}

	// Assigned delivery/pickup work is void once the booking is cancelled.
	if err := s.taskRepo.DeleteByBooking(ctx, booking.ID); err != nil {
		return nil, err
	}
	return booking, nil
}

// AssignStaff hands the booking's field work to a staff member. Delivery
// bookings get a delivery task scheduled at the start, pickup bookings a
// pickup task at the end. Re-assigning replaces any earlier tasks.
func (s *bookingService) AssignStaff(ctx context.Context, ownerID, bookingID, staffID int32) (*domain.StaffTask, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := s.requireShopOwner(ctx, ownerID, booking.ShopID); err != nil {
		return nil, err
	}

	staff, err := s.userRepo.GetByID(ctx, staffID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if staff.Role != domain.UserRoleStaff || staff.ShopID == nil || *staff.ShopID != booking.ShopID {
		return nil, ErrStaffWrongShop
	}

	if err := s.taskRepo.DeleteByBooking(ctx, booking.ID); err != nil {
		return nil, err
	}

	task := &domain.StaffTask{
		StaffID:       staffID,
		BookingID:     booking.ID,
		Type:          domain.TaskTypePickup,
		ScheduledTime: booking.EndDate,
		Status:        domain.TaskStatusPending,
	}
	if booking.DeliveryOption == domain.DeliveryOptionDelivery {
		task.Type = domain.TaskTypeDelivery
		task.ScheduledTime = booking.StartDate
	}
	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}

	if vehicle, err := s.vehicleRepo.GetByID(ctx, booking.VehicleID); err == nil {
		_ = s.emailSvc.SendTaskAssignment(ctx, staff.Email, staff.Name, task, vehicle.Name)
	}

	notif := &domain.Notification{
		UserID:  staffID,
		Title:   "New Task Assigned",
		Message: fmt.Sprintf("You have a new %s task", task.Type),
		Attributes: map[string]string{
			"type":    "TASK_ASSIGNED",
			"task_id": fmt.Sprintf("%d", task.ID),
		},
	}
	_ = s.noteRepo.Create(ctx, notif)

	return task, nil
}

func (s *bookingService) requireShopOwner(ctx context.Context, ownerID, shopID int32) error {
	shop, err := s.shopRepo.GetByID(ctx, shopID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	if shop.OwnerID != ownerID {
		return ErrUnauthorized
	}
	return nil
}

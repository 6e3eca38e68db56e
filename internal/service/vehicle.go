package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/repository"
	"vehicle-rental-backend/internal/utils"
)

type vehicleService struct {
	vehicleRepo repository.VehicleRepository
	shopRepo    repository.ShopRepository
}

func NewVehicleService(vehicleRepo repository.VehicleRepository, shopRepo repository.ShopRepository) VehicleService {
	return &vehicleService{
		vehicleRepo: vehicleRepo,
		shopRepo:    shopRepo,
	}
}

func (s *vehicleService) AddVehicle(ctx context.Context, ownerID int32, vehicle *domain.Vehicle) error {
	if err := s.requireShopOwner(ctx, ownerID, vehicle.ShopID); err != nil {
		return err
	}
	if vehicle.Type != domain.VehicleTypeCar && vehicle.Type != domain.VehicleTypeBike {
		return errors.New("unknown vehicle type")
	}
	return s.vehicleRepo.Create(ctx, vehicle)
}

func (s *vehicleService) GetVehicle(ctx context.Context, id int32) (*domain.Vehicle, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return vehicle, nil
}

func (s *vehicleService) ListVehicles(ctx context.Context, shopID int32) ([]domain.Vehicle, error) {
	if shopID == 0 {
		return s.vehicleRepo.List(ctx)
	}
	return s.vehicleRepo.ListByShop(ctx, shopID)
}

func (s *vehicleService) UpdateVehicle(ctx context.Context, ownerID int32, vehicle *domain.Vehicle) error {
	existing, err := s.vehicleRepo.GetByID(ctx, vehicle.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	if err := s.requireShopOwner(ctx, ownerID, existing.ShopID); err != nil {
		return err
	}
	vehicle.ShopID = existing.ShopID
	return s.vehicleRepo.Update(ctx, vehicle)
}

func (s *vehicleService) DeleteVehicle(ctx context.Context, ownerID, id int32) error {
	existing, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	if err := s.requireShopOwner(ctx, ownerID, existing.ShopID); err != nil {
		return err
	}
	return s.vehicleRepo.Delete(ctx, id)
}

// AvailabilityCalendar builds the month grid for the booking screen and
// marks the days already taken by upcoming or active bookings.
func (s *vehicleService) AvailabilityCalendar(ctx context.Context, vehicleID int32, year int, month time.Month) (*VehicleCalendar, error) {
	if _, err := s.vehicleRepo.GetByID(ctx, vehicleID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	bookedDays, err := s.vehicleRepo.BookedDays(ctx, vehicleID, year, month)
	if err != nil {
		return nil, err
	}
	booked := make(map[int]bool, len(bookedDays))
	for _, d := range bookedDays {
		booked[d] = true
	}

	grid := utils.MonthGrid(year, month)
	days := make([]*CalendarDay, 0, len(grid))
	for _, cell := range grid {
		if cell == nil {
			days = append(days, nil)
			continue
		}
		days = append(days, &CalendarDay{
			Day:    cell.Day(),
			Date:   *cell,
			Booked: booked[cell.Day()],
		})
	}

	return &VehicleCalendar{
		Year:      year,
		Month:     month,
		Days:      days,
		TimeSlots: utils.TimeSlots,
	}, nil
}

func (s *vehicleService) requireShopOwner(ctx context.Context, ownerID, shopID int32) error {
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

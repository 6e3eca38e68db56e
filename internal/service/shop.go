package service

import (
	"context"
	"database/sql"
	"errors"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/repository"
)

type shopService struct {
	shopRepo    repository.ShopRepository
	vehicleRepo repository.VehicleRepository
	bookingRepo repository.BookingRepository
	userRepo    repository.UserRepository
}

func NewShopService(
	shopRepo repository.ShopRepository,
	vehicleRepo repository.VehicleRepository,
	bookingRepo repository.BookingRepository,
	userRepo repository.UserRepository,
) ShopService {
	return &shopService{
		shopRepo:    shopRepo,
		vehicleRepo: vehicleRepo,
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
	}
}

func (s *shopService) ListShops(ctx context.Context) ([]domain.RentalShop, error) {
	return s.shopRepo.List(ctx)
}

func (s *shopService) GetShop(ctx context.Context, id int32) (*domain.RentalShop, []domain.Vehicle, error) {
	shop, err := s.shopRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}
	vehicles, err := s.vehicleRepo.ListByShop(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return shop, vehicles, nil
}

func (s *shopService) CreateShop(ctx context.Context, ownerID int32, shop *domain.RentalShop) error {
	shop.OwnerID = ownerID
	return s.shopRepo.Create(ctx, shop)
}

func (s *shopService) UpdateShop(ctx context.Context, ownerID int32, shop *domain.RentalShop) error {
	existing, err := s.shopRepo.GetByID(ctx, shop.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	if existing.OwnerID != ownerID {
		return ErrUnauthorized
	}
	shop.OwnerID = existing.OwnerID
	return s.shopRepo.Update(ctx, shop)
}

func (s *shopService) ListMyShops(ctx context.Context, ownerID int32) ([]domain.RentalShop, error) {
	return s.shopRepo.ListByOwner(ctx, ownerID)
}

func (s *shopService) Dashboard(ctx context.Context, ownerID, shopID int32) (*domain.ShopStats, error) {
	shop, err := s.shopRepo.GetByID(ctx, shopID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if shop.OwnerID != ownerID {
		return nil, ErrUnauthorized
	}
	return s.bookingRepo.ShopStats(ctx, shopID)
}

func (s *shopService) ListStaff(ctx context.Context, ownerID, shopID int32) ([]domain.User, error) {
	shop, err := s.shopRepo.GetByID(ctx, shopID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if shop.OwnerID != ownerID {
		return nil, ErrUnauthorized
	}
	return s.userRepo.ListStaffByShop(ctx, shopID)
}

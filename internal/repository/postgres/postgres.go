package postgres

import (
	"database/sql"

	"vehicle-rental-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.ShopRepository
	repository.VehicleRepository
	repository.BookingRepository
	repository.PaymentMethodRepository
	repository.SavedLocationRepository
	repository.KYCRepository
	repository.StaffTaskRepository
	repository.StaffComplaintRepository
	repository.NotificationRepository
	repository.DocumentRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                       db,
		UserRepository:           NewUserRepository(db),
		ShopRepository:           NewShopRepository(db),
		VehicleRepository:        NewVehicleRepository(db),
		BookingRepository:        NewBookingRepository(db),
		PaymentMethodRepository:  NewPaymentMethodRepository(db),
		SavedLocationRepository:  NewSavedLocationRepository(db),
		KYCRepository:            NewKYCRepository(db),
		StaffTaskRepository:      NewStaffTaskRepository(db),
		StaffComplaintRepository: NewStaffComplaintRepository(db),
		NotificationRepository:   NewNotificationRepository(db),
		DocumentRepository:       NewDocumentRepository(db),
	}
}

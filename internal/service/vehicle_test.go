package service

import (
	"context"
	"testing"
	"time"

	"vehicle-rental-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestVehicleService_AvailabilityCalendar(t *testing.T) {
	ctx := context.Background()

	vehicleRepo := new(MockVehicleRepo)
	svc := NewVehicleService(vehicleRepo, new(MockShopRepo))

	vehicleRepo.On("GetByID", ctx, int32(2)).Return(&domain.Vehicle{ID: 2}, nil)
	vehicleRepo.On("BookedDays", ctx, int32(2), 2025, time.February).Return([]int{14, 15}, nil)

	cal, err := svc.AvailabilityCalendar(ctx, 2, 2025, time.February)
	assert.NoError(t, err)
	assert.Equal(t, 2025, cal.Year)
	assert.Equal(t, time.February, cal.Month)

	// Feb 2025 starts on a Saturday: six padding cells then 28 days.
	assert.Len(t, cal.Days, 6+28)
	for i := 0; i < 6; i++ {
		assert.Nil(t, cal.Days[i])
	}
	assert.Equal(t, 1, cal.Days[6].Day)
	assert.Equal(t, 28, cal.Days[len(cal.Days)-1].Day)

	booked := 0
	for _, d := range cal.Days {
		if d != nil && d.Booked {
			booked++
			assert.Contains(t, []int{14, 15}, d.Day)
		}
	}
	assert.Equal(t, 2, booked)

	assert.Equal(t, []string{"9:00 AM", "10:00 AM", "11:00 AM", "12:00 PM", "2:00 PM", "4:00 PM"}, cal.TimeSlots)
}

func TestVehicleService_OwnershipChecks(t *testing.T) {
	ctx := context.Background()

	vehicleRepo := new(MockVehicleRepo)
	shopRepo := new(MockShopRepo)
	svc := NewVehicleService(vehicleRepo, shopRepo)

	shopRepo.On("GetByID", ctx, int32(3)).Return(&domain.RentalShop{ID: 3, OwnerID: 10}, nil)

	t.Run("Add By Non Owner Rejected", func(t *testing.T) {
		err := svc.AddVehicle(ctx, 11, &domain.Vehicle{ShopID: 3, Type: domain.VehicleTypeCar, Name: "Sedan"})
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("Update Cannot Move Shops", func(t *testing.T) {
		vehicleRepo.On("GetByID", ctx, int32(2)).Return(&domain.Vehicle{ID: 2, ShopID: 3}, nil)
		vehicleRepo.On("Update", ctx, mock.MatchedBy(func(v *domain.Vehicle) bool {
			return v.ShopID == 3
		})).Return(nil)

		update := &domain.Vehicle{ID: 2, ShopID: 99, Name: "Renamed"}
		err := svc.UpdateVehicle(ctx, 10, update)
		assert.NoError(t, err)
		assert.Equal(t, int32(3), update.ShopID)
	})
}

package utils

import (
	"testing"

	"vehicle-rental-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestQuoteBooking(t *testing.T) {
	fees := DefaultFees()

	t.Run("Day rate pickup", func(t *testing.T) {
		// $89/day x 2 days, self pickup: 89*2 + 0 + 5 = $183
		q, err := QuoteBooking(8900, 2, false, fees)
		assert.NoError(t, err)
		assert.Equal(t, int32(17800), q.BaseCostCents)
		assert.Equal(t, int32(0), q.DeliveryFeeCents)
		assert.Equal(t, int32(500), q.ServiceFeeCents)
		assert.Equal(t, int32(18300), q.TotalCents)
	})

	t.Run("Hour rate with delivery", func(t *testing.T) {
		// $15/hour x 4 hours, delivery: 15*4 + 10 + 5 = $75
		q, err := QuoteBooking(1500, 4, true, fees)
		assert.NoError(t, err)
		assert.Equal(t, int32(6000), q.BaseCostCents)
		assert.Equal(t, int32(1000), q.DeliveryFeeCents)
		assert.Equal(t, int32(7500), q.TotalCents)
	})

	t.Run("Duration clamps at 1", func(t *testing.T) {
		q, err := QuoteBooking(1500, 0, false, fees)
		assert.NoError(t, err)
		assert.Equal(t, int32(1), q.Duration)
		assert.Equal(t, int32(2000), q.TotalCents)

		q, err = QuoteBooking(1500, -3, false, fees)
		assert.NoError(t, err)
		assert.Equal(t, int32(1), q.Duration)
	})

	t.Run("Total never below service fee", func(t *testing.T) {
		for _, duration := range []int32{1, 2, 7, 100} {
			for _, delivery := range []bool{false, true} {
				q, err := QuoteBooking(100, duration, delivery, fees)
				assert.NoError(t, err)
				assert.GreaterOrEqual(t, q.TotalCents, fees.ServiceFeeCents)
			}
		}
	})

	t.Run("Missing rate rejected", func(t *testing.T) {
		_, err := QuoteBooking(0, 2, false, fees)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "no usable rate")

		_, err = QuoteBooking(-500, 2, false, fees)
		assert.Error(t, err)
	})

	t.Run("Custom fee schedule", func(t *testing.T) {
		q, err := QuoteBooking(1000, 3, true, FeeSchedule{DeliveryFeeCents: 2500, ServiceFeeCents: 0})
		assert.NoError(t, err)
		assert.Equal(t, int32(5500), q.TotalCents)
	})
}

func TestRateForBookingType(t *testing.T) {
	v := &domain.Vehicle{PricePerHourCents: 1500, PricePerDayCents: 8900}

	assert.Equal(t, int32(8900), RateForBookingType(v, domain.BookingTypeDay))
	assert.Equal(t, int32(1500), RateForBookingType(v, domain.BookingTypeHour))
}

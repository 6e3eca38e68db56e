package utils

import (
	"fmt"

	"vehicle-rental-backend/internal/domain"
)

// Default flat fees in cents, matching the published rate card.
const (
	DefaultDeliveryFeeCents int32 = 1000
	DefaultServiceFeeCents  int32 = 500
)

// FeeSchedule holds the flat fees applied on top of the per-unit cost.
type FeeSchedule struct {
	DeliveryFeeCents int32
	ServiceFeeCents  int32
}

// DefaultFees returns the standard fee schedule.
func DefaultFees() FeeSchedule {
	return FeeSchedule{
		DeliveryFeeCents: DefaultDeliveryFeeCents,
		ServiceFeeCents:  DefaultServiceFeeCents,
	}
}

// BookingQuote is the price breakdown for a booking draft.
type BookingQuote struct {
	PricePerUnitCents int32 `json:"price_per_unit_cents"`
	Duration          int32 `json:"duration"`
	BaseCostCents     int32 `json:"base_cost_cents"`
	DeliveryFeeCents  int32 `json:"delivery_fee_cents"`
	ServiceFeeCents   int32 `json:"service_fee_cents"`
	TotalCents        int32 `json:"total_cents"`
}

// RateForBookingType picks the hourly or daily rate from a vehicle record.
func RateForBookingType(v *domain.Vehicle, bt domain.BookingType) int32 {
	if bt == domain.BookingTypeDay {
		return v.PricePerDayCents
	}
	return v.PricePerHourCents
}

// QuoteBooking computes the total for a booking draft:
// pricePerUnit*duration, plus the delivery fee when delivery is requested,
// plus the flat service fee. Duration below 1 clamps to 1. A missing or
// non-positive rate is an error rather than a silent zero total.
func QuoteBooking(pricePerUnitCents, duration int32, delivery bool, fees FeeSchedule) (BookingQuote, error) {
	if pricePerUnitCents <= 0 {
		return BookingQuote{}, fmt.Errorf("vehicle has no usable rate: %d", pricePerUnitCents)
	}
	if duration < 1 {
		duration = 1
	}

	q := BookingQuote{
		PricePerUnitCents: pricePerUnitCents,
		Duration:          duration,
		BaseCostCents:     pricePerUnitCents * duration,
		ServiceFeeCents:   fees.ServiceFeeCents,
	}
	if delivery {
		q.DeliveryFeeCents = fees.DeliveryFeeCents
	}
	q.TotalCents = q.BaseCostCents + q.DeliveryFeeCents + q.ServiceFeeCents
	return q, nil
}

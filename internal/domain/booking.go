package domain

import "time"

type BookingType string

const (
	BookingTypeHour BookingType = "hour"
	BookingTypeDay  BookingType = "day"
)

type DeliveryOption string

const (
	DeliveryOptionPickup   DeliveryOption = "pickup"
	DeliveryOptionDelivery DeliveryOption = "delivery"
)

type BookingStatus string

const (
	BookingStatusUpcoming  BookingStatus = "upcoming"
	BookingStatusActive    BookingStatus = "active"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type Booking struct {
	ID        int32  `json:"id"`
	Reference string `json:"reference"`
	UserID    int32  `json:"user_id"`
	VehicleID int32  `json:"vehicle_id"`
	ShopID    int32  `json:"shop_id"`

	BookingType     BookingType    `json:"booking_type"`
	StartDate       time.Time      `json:"start_date"`
	EndDate         time.Time      `json:"end_date"`
	Duration        int32          `json:"duration"`
	DeliveryOption  DeliveryOption `json:"delivery_option"`
	DeliveryAddress string         `json:"delivery_address,omitempty"`
	PaymentMethodID *int32         `json:"payment_method_id,omitempty"`

	// Price snapshot fields, captured from the vehicle at creation time.
	// Later rate edits never change an existing booking.
	BaseCostCents    int32 `json:"base_cost_cents"`
	DeliveryFeeCents int32 `json:"delivery_fee_cents"`
	ServiceFeeCents  int32 `json:"service_fee_cents"`
	TotalCostCents   int32 `json:"total_cost_cents"`

	Status    BookingStatus `json:"status"`
	CreatedOn string        `json:"created_on"`
	UpdatedOn string        `json:"updated_on"`
}

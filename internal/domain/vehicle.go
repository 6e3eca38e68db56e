package domain

type VehicleType string

const (
	VehicleTypeCar  VehicleType = "car"
	VehicleTypeBike VehicleType = "bike"
)

type Vehicle struct {
	ID                 int32       `json:"id"`
	ShopID             int32       `json:"shop_id"`
	Type               VehicleType `json:"type"`
	Name               string      `json:"name"`
	Brand              string      `json:"brand"`
	Model              string      `json:"model"`
	RegistrationNumber string      `json:"registration_number"`
	Images             []string    `json:"images"`
	PricePerHourCents  int32       `json:"price_per_hour_cents"`
	PricePerDayCents   int32       `json:"price_per_day_cents"`
	FuelType           string      `json:"fuel_type"`
	Transmission       string      `json:"transmission"`
	Seating            *int32      `json:"seating,omitempty"`
	IsAvailable        bool        `json:"is_available"`
	Features           []string    `json:"features"`
	CreatedOn          string      `json:"created_on"`
}

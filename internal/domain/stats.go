package domain

// ShopStats is the owner dashboard summary for a single shop.
type ShopStats struct {
	ShopID            int32     `json:"shop_id"`
	TotalRevenueCents int64     `json:"total_revenue_cents"`
	ActiveBookings    int32     `json:"active_bookings"`
	CompletedBookings int32     `json:"completed_bookings"`
	FleetSize         int32     `json:"fleet_size"`
	RecentBookings    []Booking `json:"recent_bookings,omitempty"`
}

package domain

type PaymentMethodType string

const (
	PaymentMethodTypeCard   PaymentMethodType = "card"
	PaymentMethodTypeUPI    PaymentMethodType = "upi"
	PaymentMethodTypeWallet PaymentMethodType = "wallet"
)

type PaymentMethod struct {
	ID        int32             `json:"id"`
	UserID    int32             `json:"user_id"`
	Type      PaymentMethodType `json:"type"`
	Name      string            `json:"name"`
	Details   string            `json:"details"`
	IsDefault bool              `json:"is_default"`
	CreatedOn string            `json:"created_on"`
}

type LocationType string

const (
	LocationTypeHome     LocationType = "home"
	LocationTypeWork     LocationType = "work"
	LocationTypeFavorite LocationType = "favorite"
	LocationTypeOther    LocationType = "other"
)

type SavedLocation struct {
	ID        int32        `json:"id"`
	UserID    int32        `json:"user_id"`
	Name      string       `json:"name"`
	Address   string       `json:"address"`
	Type      LocationType `json:"type"`
	Latitude  *float64     `json:"latitude,omitempty"`
	Longitude *float64     `json:"longitude,omitempty"`
	CreatedOn string       `json:"created_on"`
}

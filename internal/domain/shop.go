package domain

type RentalShop struct {
	ID             int32   `json:"id"`
	OwnerID        int32   `json:"owner_id"`
	Name           string  `json:"name"`
	Address        string  `json:"address"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	Phone          string  `json:"phone"`
	ImageURL       string  `json:"image_url"`
	Rating         float64 `json:"rating"`
	ReviewCount    int32   `json:"review_count"`
	OperatingHours string  `json:"operating_hours"`
	IsOpen         bool    `json:"is_open"`
	CreatedOn      string  `json:"created_on"`
}

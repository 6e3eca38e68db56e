package domain

type UserRole string

const (
	UserRoleCustomer UserRole = "user"
	UserRoleStaff    UserRole = "staff"
	UserRoleOwner    UserRole = "owner"
	UserRoleAdmin    UserRole = "admin"
)

// ValidRole reports whether r is a role accepted at registration.
func ValidRole(r UserRole) bool {
	switch r {
	case UserRoleCustomer, UserRoleStaff, UserRoleOwner, UserRoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID           int32    `json:"id"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Phone        string   `json:"phone"`
	PasswordHash string   `json:"-"`
	Role         UserRole `json:"role"`
	AvatarURL    string   `json:"avatar_url"`
	// ShopID links staff members to the shop they work for. Nil for
	// customers and admins; owners are linked through rental_shops.owner_id.
	ShopID    *int32 `json:"shop_id,omitempty"`
	CreatedOn string `json:"created_on"`
	UpdatedOn string `json:"updated_on"`
}

package http

import (
	"net/http"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/security"

	"github.com/gorilla/mux"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth         *AuthHandler
	Shop         *ShopHandler
	Vehicle      *VehicleHandler
	Booking      *BookingHandler
	Profile      *ProfileHandler
	Staff        *StaffHandler
	Notification *NotificationHandler
	Upload       *UploadHandler
}

// NewRouter mounts the full API under /api/v1. Public routes cover auth,
// shop browsing and vehicle browsing; everything else requires a token,
// with the owner and staff subtrees gated by role.
func NewRouter(h Handlers, tokens security.TokenManager) *mux.Router {
	root := mux.NewRouter()
	root.Use(RequestLogger)

	api := root.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	// Public routes
	api.HandleFunc("/auth/register", h.Auth.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", h.Auth.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh", h.Auth.Refresh).Methods(http.MethodPost)

	api.HandleFunc("/shops", h.Shop.List).Methods(http.MethodGet)
	api.HandleFunc("/shops/{id:[0-9]+}", h.Shop.Get).Methods(http.MethodGet)
	api.HandleFunc("/vehicles", h.Vehicle.List).Methods(http.MethodGet)
	api.HandleFunc("/vehicles/{id:[0-9]+}", h.Vehicle.Get).Methods(http.MethodGet)
	api.HandleFunc("/vehicles/{id:[0-9]+}/calendar", h.Vehicle.Calendar).Methods(http.MethodGet)

	// The local storage PUT/GET endpoints carry their own opaque keys.
	api.HandleFunc("/uploads/file", h.Upload.PutFile).Methods(http.MethodPut)
	api.HandleFunc("/uploads/file", h.Upload.GetFile).Methods(http.MethodGet)

	// Authenticated routes
	auth := NewAuthMiddleware(tokens)
	private := api.NewRoute().Subrouter()
	private.Use(auth.Authenticate)

	private.HandleFunc("/users/me", h.Auth.GetProfile).Methods(http.MethodGet)
	private.HandleFunc("/users/me", h.Auth.UpdateProfile).Methods(http.MethodPut)

	private.HandleFunc("/bookings/quote", h.Booking.Quote).Methods(http.MethodPost)
	private.HandleFunc("/bookings", h.Booking.Create).Methods(http.MethodPost)
	private.HandleFunc("/bookings", h.Booking.ListMine).Methods(http.MethodGet)
	private.HandleFunc("/bookings/{id:[0-9]+}", h.Booking.Get).Methods(http.MethodGet)
	private.HandleFunc("/bookings/{id:[0-9]+}/cancel", h.Booking.Cancel).Methods(http.MethodPost)

	private.HandleFunc("/payment-methods", h.Profile.ListPaymentMethods).Methods(http.MethodGet)
	private.HandleFunc("/payment-methods", h.Profile.AddPaymentMethod).Methods(http.MethodPost)
	private.HandleFunc("/payment-methods/{id:[0-9]+}/default", h.Profile.SetDefaultPaymentMethod).Methods(http.MethodPut)
	private.HandleFunc("/payment-methods/{id:[0-9]+}", h.Profile.DeletePaymentMethod).Methods(http.MethodDelete)

	private.HandleFunc("/locations", h.Profile.ListLocations).Methods(http.MethodGet)
	private.HandleFunc("/locations", h.Profile.AddLocation).Methods(http.MethodPost)
	private.HandleFunc("/locations/{id:[0-9]+}", h.Profile.DeleteLocation).Methods(http.MethodDelete)

	private.HandleFunc("/kyc", h.Profile.GetKYC).Methods(http.MethodGet)
	private.HandleFunc("/kyc", h.Profile.SubmitKYC).Methods(http.MethodPost)

	private.HandleFunc("/notifications", h.Notification.List).Methods(http.MethodGet)
	private.HandleFunc("/notifications/{id:[0-9]+}/read", h.Notification.MarkAsRead).Methods(http.MethodPut)

	private.HandleFunc("/uploads", h.Upload.RequestUpload).Methods(http.MethodPost)
	private.HandleFunc("/uploads/{id:[0-9]+}/confirm", h.Upload.ConfirmUpload).Methods(http.MethodPost)

	// Staff routes
	staff := private.PathPrefix("/staff").Subrouter()
	staff.Use(RequireRole(domain.UserRoleStaff))
	staff.HandleFunc("/tasks", h.Staff.ListTasks).Methods(http.MethodGet)
	staff.HandleFunc("/tasks/{id:[0-9]+}", h.Staff.UpdateTaskStatus).Methods(http.MethodPut)
	staff.HandleFunc("/complaints", h.Staff.SubmitComplaint).Methods(http.MethodPost)
	staff.HandleFunc("/complaints", h.Staff.ListComplaints).Methods(http.MethodGet)

	// Owner routes
	owner := private.PathPrefix("/owner").Subrouter()
	owner.Use(RequireRole(domain.UserRoleOwner))
	owner.HandleFunc("/shops", h.Shop.ListMine).Methods(http.MethodGet)
	owner.HandleFunc("/shops", h.Shop.Create).Methods(http.MethodPost)
	owner.HandleFunc("/shops/{id:[0-9]+}", h.Shop.Update).Methods(http.MethodPut)
	owner.HandleFunc("/shops/{id:[0-9]+}/dashboard", h.Shop.Dashboard).Methods(http.MethodGet)
	owner.HandleFunc("/shops/{id:[0-9]+}/staff", h.Shop.ListStaff).Methods(http.MethodGet)
	owner.HandleFunc("/shops/{id:[0-9]+}/bookings", h.Booking.ListForShop).Methods(http.MethodGet)
	owner.HandleFunc("/vehicles", h.Vehicle.Create).Methods(http.MethodPost)
	owner.HandleFunc("/vehicles/{id:[0-9]+}", h.Vehicle.Update).Methods(http.MethodPut)
	owner.HandleFunc("/vehicles/{id:[0-9]+}", h.Vehicle.Delete).Methods(http.MethodDelete)
	owner.HandleFunc("/bookings/{id:[0-9]+}/assign", h.Booking.AssignStaff).Methods(http.MethodPost)

	return root
}

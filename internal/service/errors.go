package service

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidToken       = errors.New("invalid token")
	ErrNotFound           = errors.New("not found")
	ErrUnauthorized       = errors.New("unauthorized")

	ErrVehicleUnavailable      = errors.New("vehicle is not available")
	ErrDeliveryAddressRequired = errors.New("delivery address is required for delivery bookings")
	ErrBookingNotCancellable   = errors.New("only upcoming bookings can be cancelled")
	ErrStaffWrongShop          = errors.New("staff member does not belong to this shop")
	ErrInvalidTaskTransition   = errors.New("task status can only move forward")
)

package http

import (
	"net/http"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/service"
)

type BookingHandler struct {
	bookingSvc service.BookingService
}

func NewBookingHandler(bookingSvc service.BookingService) *BookingHandler {
	return &BookingHandler{bookingSvc: bookingSvc}
}

type quoteRequest struct {
	VehicleID      int32                 `json:"vehicle_id"`
	BookingType    domain.BookingType    `json:"booking_type"`
	Duration       int32                 `json:"duration"`
	DeliveryOption domain.DeliveryOption `json:"delivery_option"`
}

// Quote prices a draft without creating anything. The same calculation
// runs again on submission; the client never supplies a total.
func (h *BookingHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req quoteRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.VehicleID == 0 {
		writeBadRequest(w, "vehicle_id is required")
		return
	}

	quote, err := h.bookingSvc.Quote(r.Context(), req.VehicleID, req.BookingType, req.Duration, req.DeliveryOption)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, quote)
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	var draft service.BookingDraft
	if !decodeBody(w, r, &draft) {
		return
	}
	if draft.VehicleID == 0 || draft.StartDate == "" || draft.TimeSlot == "" {
		writeBadRequest(w, "vehicle_id, start_date and time_slot are required")
		return
	}

	booking, err := h.bookingSvc.CreateBooking(r.Context(), claims.UserID, draft)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, booking)
}

func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	booking, err := h.bookingSvc.GetBooking(r.Context(), claims.UserID, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

func (h *BookingHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	bookings, err := h.bookingSvc.ListMyBookings(r.Context(), claims.UserID, r.URL.Query().Get("status"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bookings)
}

func (h *BookingHandler) ListForShop(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	shopID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	bookings, err := h.bookingSvc.ListShopBookings(r.Context(), claims.UserID, shopID, r.URL.Query().Get("status"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bookings)
}

func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	booking, err := h.bookingSvc.CancelBooking(r.Context(), claims.UserID, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

type assignStaffRequest struct {
	StaffID int32 `json:"staff_id"`
}

func (h *BookingHandler) AssignStaff(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req assignStaffRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.StaffID == 0 {
		writeBadRequest(w, "staff_id is required")
		return
	}

	task, err := h.bookingSvc.AssignStaff(r.Context(), claims.UserID, id, req.StaffID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, task)
}

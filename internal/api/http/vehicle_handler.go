package http

import (
	"net/http"
	"strconv"
	"time"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/service"
)

type VehicleHandler struct {
	vehicleSvc service.VehicleService
}

func NewVehicleHandler(vehicleSvc service.VehicleService) *VehicleHandler {
	return &VehicleHandler{vehicleSvc: vehicleSvc}
}

func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	var shopID int32
	if raw := r.URL.Query().Get("shop_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			writeBadRequest(w, "invalid shop_id")
			return
		}
		shopID = int32(id)
	}

	vehicles, err := h.vehicleSvc.ListVehicles(r.Context(), shopID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicles)
}

func (h *VehicleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	vehicle, err := h.vehicleSvc.GetVehicle(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicle)
}

func (h *VehicleHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	var vehicle domain.Vehicle
	if !decodeBody(w, r, &vehicle) {
		return
	}
	if vehicle.ShopID == 0 || vehicle.Name == "" {
		writeBadRequest(w, "shop_id and name are required")
		return
	}

	if err := h.vehicleSvc.AddVehicle(r.Context(), claims.UserID, &vehicle); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, vehicle)
}

func (h *VehicleHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var vehicle domain.Vehicle
	if !decodeBody(w, r, &vehicle) {
		return
	}
	vehicle.ID = id

	if err := h.vehicleSvc.UpdateVehicle(r.Context(), claims.UserID, &vehicle); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicle)
}

func (h *VehicleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.vehicleSvc.DeleteVehicle(r.Context(), claims.UserID, id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// Calendar returns the availability grid for a month. Defaults to the
// current month when year/month are absent.
func (h *VehicleHandler) Calendar(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	now := time.Now().UTC()
	year, month := now.Year(), now.Month()
	if raw := r.URL.Query().Get("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil || y < 1970 {
			writeBadRequest(w, "invalid year")
			return
		}
		year = y
	}
	if raw := r.URL.Query().Get("month"); raw != "" {
		m, err := strconv.Atoi(raw)
		if err != nil || m < 1 || m > 12 {
			writeBadRequest(w, "invalid month")
			return
		}
		month = time.Month(m)
	}

	calendar, err := h.vehicleSvc.AvailabilityCalendar(r.Context(), id, year, month)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, calendar)
}

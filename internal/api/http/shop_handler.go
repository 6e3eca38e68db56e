package http

import (
	"net/http"
	"strconv"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/service"

	"github.com/gorilla/mux"
)

type ShopHandler struct {
	shopSvc service.ShopService
}

func NewShopHandler(shopSvc service.ShopService) *ShopHandler {
	return &ShopHandler{shopSvc: shopSvc}
}

func (h *ShopHandler) List(w http.ResponseWriter, r *http.Request) {
	shops, err := h.shopSvc.ListShops(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, shops)
}

func (h *ShopHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	shop, vehicles, err := h.shopSvc.GetShop(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"shop":     shop,
		"vehicles": vehicles,
	})
}

func (h *ShopHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	var shop domain.RentalShop
	if !decodeBody(w, r, &shop) {
		return
	}
	if shop.Name == "" || shop.Address == "" {
		writeBadRequest(w, "name and address are required")
		return
	}

	if err := h.shopSvc.CreateShop(r.Context(), claims.UserID, &shop); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, shop)
}

func (h *ShopHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var shop domain.RentalShop
	if !decodeBody(w, r, &shop) {
		return
	}
	shop.ID = id

	if err := h.shopSvc.UpdateShop(r.Context(), claims.UserID, &shop); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, shop)
}

func (h *ShopHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	shops, err := h.shopSvc.ListMyShops(r.Context(), claims.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, shops)
}

func (h *ShopHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	stats, err := h.shopSvc.Dashboard(r.Context(), claims.UserID, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *ShopHandler) ListStaff(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	staff, err := h.shopSvc.ListStaff(r.Context(), claims.UserID, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, staff)
}

// pathID parses a numeric {name} path variable, writing a 400 on failure.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int32, bool) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		writeBadRequest(w, "invalid "+name)
		return 0, false
	}
	return int32(id), true
}

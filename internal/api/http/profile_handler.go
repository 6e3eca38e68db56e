package http

import (
	"net/http"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/service"
)

type ProfileHandler struct {
	profileSvc service.ProfileService
}

func NewProfileHandler(profileSvc service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileSvc: profileSvc}
}

func (h *ProfileHandler) ListPaymentMethods(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	methods, err := h.profileSvc.ListPaymentMethods(r.Context(), claims.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, methods)
}

func (h *ProfileHandler) AddPaymentMethod(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	var pm domain.PaymentMethod
	if !decodeBody(w, r, &pm) {
		return
	}
	if pm.Name == "" {
		writeBadRequest(w, "name is required")
		return
	}

	if err := h.profileSvc.AddPaymentMethod(r.Context(), claims.UserID, &pm); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, pm)
}

func (h *ProfileHandler) SetDefaultPaymentMethod(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.profileSvc.SetDefaultPaymentMethod(r.Context(), claims.UserID, id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (h *ProfileHandler) DeletePaymentMethod(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.profileSvc.DeletePaymentMethod(r.Context(), claims.UserID, id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *ProfileHandler) ListLocations(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	locations, err := h.profileSvc.ListLocations(r.Context(), claims.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, locations)
}

func (h *ProfileHandler) AddLocation(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	var loc domain.SavedLocation
	if !decodeBody(w, r, &loc) {
		return
	}
	if loc.Address == "" {
		writeBadRequest(w, "address is required")
		return
	}

	if err := h.profileSvc.AddLocation(r.Context(), claims.UserID, &loc); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, loc)
}

func (h *ProfileHandler) DeleteLocation(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.profileSvc.DeleteLocation(r.Context(), claims.UserID, id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *ProfileHandler) GetKYC(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	doc, err := h.profileSvc.GetKYC(r.Context(), claims.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (h *ProfileHandler) SubmitKYC(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	var doc domain.KYCDocument
	if !decodeBody(w, r, &doc) {
		return
	}
	if doc.FullName == "" || doc.DateOfBirth == "" {
		writeBadRequest(w, "full_name and date_of_birth are required")
		return
	}

	if err := h.profileSvc.SubmitKYC(r.Context(), claims.UserID, &doc); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, doc)
}

package http

import (
	"net/http"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/service"
)

type StaffHandler struct {
	staffSvc service.StaffService
}

func NewStaffHandler(staffSvc service.StaffService) *StaffHandler {
	return &StaffHandler{staffSvc: staffSvc}
}

func (h *StaffHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	tasks, err := h.staffSvc.ListTasks(r.Context(), claims.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

type updateTaskRequest struct {
	Status domain.TaskStatus `json:"status"`
}

func (h *StaffHandler) UpdateTaskStatus(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req updateTaskRequest
	if !decodeBody(w, r, &req) {
		return
	}

	task, err := h.staffSvc.UpdateTaskStatus(r.Context(), claims.UserID, id, req.Status)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

type complaintRequest struct {
	Subject string `json:"subject"`
	Details string `json:"details"`
}

func (h *StaffHandler) SubmitComplaint(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	var req complaintRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Subject == "" {
		writeBadRequest(w, "subject is required")
		return
	}

	complaint, err := h.staffSvc.SubmitComplaint(r.Context(), claims.UserID, req.Subject, req.Details)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, complaint)
}

func (h *StaffHandler) ListComplaints(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	complaints, err := h.staffSvc.ListComplaints(r.Context(), claims.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, complaints)
}

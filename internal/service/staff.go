package service

import (
	"context"
	"database/sql"
	"errors"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/repository"
)

type staffService struct {
	taskRepo      repository.StaffTaskRepository
	complaintRepo repository.StaffComplaintRepository
}

func NewStaffService(taskRepo repository.StaffTaskRepository, complaintRepo repository.StaffComplaintRepository) StaffService {
	return &staffService{
		taskRepo:      taskRepo,
		complaintRepo: complaintRepo,
	}
}

func (s *staffService) ListTasks(ctx context.Context, staffID int32) ([]domain.StaffTask, error) {
	return s.taskRepo.ListByStaff(ctx, staffID)
}

// UpdateTaskStatus moves a task forward. Backward moves and edits to
// another staff member's task are rejected.
func (s *staffService) UpdateTaskStatus(ctx context.Context, staffID, taskID int32, status domain.TaskStatus) (*domain.StaffTask, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if task.StaffID != staffID {
		return nil, ErrUnauthorized
	}

	allowed := false
	for _, next := range domain.NextTaskStatuses(task.Status) {
		if next == status {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, ErrInvalidTaskTransition
	}

	if err := s.taskRepo.UpdateStatus(ctx, taskID, status); err != nil {
		return nil, err
	}
	task.Status = status
	return task, nil
}

func (s *staffService) SubmitComplaint(ctx context.Context, staffID int32, subject, details string) (*domain.StaffComplaint, error) {
	if subject == "" {
		return nil, errors.New("subject is required")
	}
	complaint := &domain.StaffComplaint{
		StaffID: staffID,
		Subject: subject,
		Details: details,
	}
	if err := s.complaintRepo.Create(ctx, complaint); err != nil {
		return nil, err
	}
	return complaint, nil
}

func (s *staffService) ListComplaints(ctx context.Context, staffID int32) ([]domain.StaffComplaint, error) {
	return s.complaintRepo.ListByStaff(ctx, staffID)
}

package domain

import "time"

type TaskType string

const (
	TaskTypeDelivery TaskType = "delivery"
	TaskTypePickup   TaskType = "pickup"
)

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// NextTaskStatuses returns the statuses a task may move to from cur.
// Transitions only move forward; completed is terminal.
func NextTaskStatuses(cur TaskStatus) []TaskStatus {
	switch cur {
	case TaskStatusPending:
		return []TaskStatus{TaskStatusInProgress, TaskStatusCompleted}
	case TaskStatusInProgress:
		return []TaskStatus{TaskStatusCompleted}
	}
	return nil
}

type StaffTask struct {
	ID            int32      `json:"id"`
	StaffID       int32      `json:"staff_id"`
	BookingID     int32      `json:"booking_id"`
	Type          TaskType   `json:"type"`
	ScheduledTime time.Time  `json:"scheduled_time"`
	Status        TaskStatus `json:"status"`
	// Populated on reads for the staff task list screen.
	Booking *Booking `json:"booking,omitempty"`
	CreatedOn string `json:"created_on"`
	UpdatedOn string `json:"updated_on"`
}

type StaffComplaint struct {
	ID         int32  `json:"id"`
	StaffID    int32  `json:"staff_id"`
	Subject    string `json:"subject"`
	Details    string `json:"details"`
	IsResolved bool   `json:"is_resolved"`
	CreatedOn  string `json:"created_on"`
}

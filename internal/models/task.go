package model

import (
	"time"

	"task-tracker.com/task-tracker/internal/constants"
)

type Task struct {
	ID          string                 `gorm:"primaryKey;size:36" json:"id"`
	Title       string                 `gorm:"size:200;not null" json:"title"`
	Description string                 `gorm:"size:1000" json:"description,omitempty"`
	Status      constants.TaskStatus   `gorm:"type:varchar(20);not null" json:"status"`
	Priority    constants.TaskPriority `gorm:"type:varchar(20);not null" json:"priority"`
	DueDate     *time.Time             `json:"due_date,omitempty"`
	OwnerID     string                 `gorm:"size:36;not null;index:idx_tasks_owner" json:"owner_id"`
	Completed   bool                   `gorm:"not null" json:"completed"`
	CompletedAt *time.Time             `json:"completed_at,omitempty"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}

// DeriveCompletion recomputes the completed flag and completion timestamp
// from a status transition. The timestamp is set only when entering the
// completed status (or when it is missing); re-saving an already completed
// task keeps the original timestamp, and leaving the completed status
// clears it.
func DeriveCompletion(
	prevStatus constants.TaskStatus,
	prevCompletedAt *time.Time,
	newStatus constants.TaskStatus,
	now time.Time,
) (bool, *time.Time) {
	if newStatus != constants.StatusCompleted {
		return false, nil
	}

	if prevStatus == constants.StatusCompleted && prevCompletedAt != nil {
		return true, prevCompletedAt
	}

	completedAt := now
	return true, &completedAt
}

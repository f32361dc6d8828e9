package dto

import "time"

// TaskRequest is the payload for both create and update. Optional fields
// are pointers so an absent field can be told apart from a zero value on
// partial updates.
type TaskRequest struct {
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Status      *string    `json:"status"`
	Priority    *string    `json:"priority"`
	DueDate     *time.Time `json:"due_date"`
}

type ListTasksQuery struct {
	Status   string `query:"status"`
	Priority string `query:"priority"`
	Sort     string `query:"sort"`
}

type StatsSummary struct {
	Total      int64 `json:"total"`
	Pending    int64 `json:"pending"`
	InProgress int64 `json:"in-progress"`
	Completed  int64 `json:"completed"`
}

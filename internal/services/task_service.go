package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"task-tracker.com/task-tracker/internal/constants"
	dto "task-tracker.com/task-tracker/internal/data_models"
	model "task-tracker.com/task-tracker/internal/models"
	repository "task-tracker.com/task-tracker/internal/repositories"
)

type TaskService struct {
	repo *repository.TaskRepository
}

func NewTaskService(repo *repository.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

// Create persists a new task for the owner. The request must already be
// validated; completion fields are derived here, never taken from input.
func (s *TaskService) Create(ctx context.Context, ownerID string, req *dto.TaskRequest) (*model.Task, error) {
	status := constants.StatusPending
	if req.Status != nil {
		status = constants.TaskStatus(*req.Status)
	}

	priority := constants.PriorityMedium
	if req.Priority != nil {
		priority = constants.TaskPriority(*req.Priority)
	}

	now := time.Now().UTC()
	completed, completedAt := model.DeriveCompletion("", nil, status, now)

	task := &model.Task{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Status:      status,
		Priority:    priority,
		DueDate:     req.DueDate,
		OwnerID:     ownerID,
		Completed:   completed,
		CompletedAt: completedAt,
	}
	if req.Description != nil {
		task.Description = *req.Description
	}

	if err := s.repo.Create(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

func (s *TaskService) Get(ctx context.Context, ownerID, id string) (*model.Task, error) {
	return s.repo.FindByID(ctx, ownerID, id)
}

func (s *TaskService) List(ctx context.Context, ownerID string, query *dto.ListTasksQuery) ([]model.Task, error) {
	return s.repo.List(ctx, ownerID, repository.TaskFilter{
		Status:   query.Status,
		Priority: query.Priority,
		Sort:     query.Sort,
	})
}

// Update merges the request into the stored task and recomputes the
// completion fields against the previous status, so an idempotent re-save
// of a completed task keeps its original completion time.
func (s *TaskService) Update(ctx context.Context, ownerID, id string, req *dto.TaskRequest) (*model.Task, error) {
	task, err := s.repo.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	prevStatus := task.Status
	prevCompletedAt := task.CompletedAt

	task.Title = req.Title
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Status != nil {
		task.Status = constants.TaskStatus(*req.Status)
	}
	if req.Priority != nil {
		task.Priority = constants.TaskPriority(*req.Priority)
	}
	if req.DueDate != nil {
		task.DueDate = req.DueDate
	}

	now := time.Now().UTC()
	task.Completed, task.CompletedAt = model.DeriveCompletion(prevStatus, prevCompletedAt, task.Status, now)
	task.UpdatedAt = now

	if err := s.repo.Update(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, ownerID, id string) error {
	return s.repo.Delete(ctx, ownerID, id)
}

// Stats returns per-status counts for the owner, seeded with zeros so
// every known status is present. Rows with an unknown status are left out
// of both the per-status counts and the total.
func (s *TaskService) Stats(ctx context.Context, ownerID string) (*dto.StatsSummary, error) {
	counts, err := s.repo.CountByStatus(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	summary := &dto.StatsSummary{}
	for _, status := range constants.AllStatuses() {
		n := counts[status]
		switch status {
		case constants.StatusPending:
			summary.Pending = n
		case constants.StatusInProgress:
			summary.InProgress = n
		case constants.StatusCompleted:
			summary.Completed = n
		}
		summary.Total += n
	}

	return summary, nil
}

package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"task-tracker.com/task-tracker/internal/constants"
	errs "task-tracker.com/task-tracker/internal/errors"
	model "task-tracker.com/task-tracker/internal/models"
)

// Sort keys accepted by List.
const (
	SortDueDate  = "dueDate"
	SortPriority = "priority"
)

type TaskFilter struct {
	Status   string
	Priority string
	Sort     string
}

// priorityRank orders the priority enum by urgency; a plain string sort
// would put "medium" above "high".
var priorityRank = fmt.Sprintf(
	"CASE priority WHEN '%s' THEN %d WHEN '%s' THEN %d WHEN '%s' THEN %d ELSE 0 END",
	constants.PriorityHigh, constants.PriorityHigh.Rank(),
	constants.PriorityMedium, constants.PriorityMedium.Rank(),
	constants.PriorityLow, constants.PriorityLow.Rank(),
)

// TaskRepository is the sole access path to task rows. Every method takes
// the owner id as a mandatory parameter so no query can accidentally span
// users.
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *TaskRepository) FindByID(ctx context.Context, ownerID, id string) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).
		First(&task, "id = ? AND owner_id = ?", id, ownerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) List(ctx context.Context, ownerID string, filter TaskFilter) ([]model.Task, error) {
	query := r.db.WithContext(ctx).Where("owner_id = ?", ownerID)

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Priority != "" {
		query = query.Where("priority = ?", filter.Priority)
	}

	switch filter.Sort {
	case SortDueDate:
		query = query.Order("due_date asc")
	case SortPriority:
		query = query.Order(priorityRank + " desc").Order("created_at desc")
	default:
		query = query.Order("created_at desc")
	}

	var tasks []model.Task
	if err := query.Find(&tasks).Error; err != nil {
		return nil, err
	}

	return tasks, nil
}

func (r *TaskRepository) Update(ctx context.Context, task *model.Task) error {
	res := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ? AND owner_id = ?", task.ID, task.OwnerID).
		Updates(map[string]interface{}{
			"title":        task.Title,
			"description":  task.Description,
			"status":       task.Status,
			"priority":     task.Priority,
			"due_date":     task.DueDate,
			"completed":    task.Completed,
			"completed_at": task.CompletedAt,
			"updated_at":   task.UpdatedAt,
		})

	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return errs.ErrTaskNotFound
	}

	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, ownerID, id string) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&model.Task{})

	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return errs.ErrTaskNotFound
	}

	return nil
}

// CountByStatus groups the owner's tasks by status. Statuses with no tasks
// are absent from the result; the service layer seeds zeros.
func (r *TaskRepository) CountByStatus(ctx context.Context, ownerID string) (map[constants.TaskStatus]int64, error) {
	var rows []struct {
		Status constants.TaskStatus
		Count  int64
	}

	err := r.db.WithContext(ctx).Model(&model.Task{}).
		Select("status, count(*) as count").
		Where("owner_id = ?", ownerID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[constants.TaskStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}

	return counts, nil
}

package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"task-tracker.com/task-tracker/internal/constants"
	errs "task-tracker.com/task-tracker/internal/errors"
	model "task-tracker.com/task-tracker/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	if err := db.AutoMigrate(&model.User{}, &model.Task{}); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	return db
}

func seedTask(t *testing.T, repo *TaskRepository, ownerID string, mutate func(*model.Task)) *model.Task {
	t.Helper()

	task := &model.Task{
		ID:       uuid.NewString(),
		Title:    "Task",
		Status:   constants.StatusPending,
		Priority: constants.PriorityMedium,
		OwnerID:  ownerID,
	}
	if mutate != nil {
		mutate(task)
	}

	if err := repo.Create(context.Background(), task); err != nil {
		t.Fatalf("failed to seed task: %v", err)
	}
	return task
}

func TestTaskRepository_OwnerScoping(t *testing.T) {
	repo := NewTaskRepository(setupTestDB(t))
	ctx := context.Background()

	taskA := seedTask(t, repo, "owner-a", nil)
	seedTask(t, repo, "owner-b", nil)

	if _, err := repo.FindByID(ctx, "owner-a", taskA.ID); err != nil {
		t.Errorf("owner should see own task: %v", err)
	}

	if _, err := repo.FindByID(ctx, "owner-b", taskA.ID); !errors.Is(err, errs.ErrTaskNotFound) {
		t.Errorf("foreign task must report not found, got %v", err)
	}

	tasks, err := repo.List(ctx, "owner-a", TaskFilter{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(tasks) != 1 || tasks[0].OwnerID != "owner-a" {
		t.Errorf("list must only return the owner's tasks, got %d", len(tasks))
	}
}

func TestTaskRepository_ListFilters(t *testing.T) {
	repo := NewTaskRepository(setupTestDB(t))
	ctx := context.Background()

	seedTask(t, repo, "owner-a", func(task *model.Task) {
		task.Status = constants.StatusCompleted
		task.Priority = constants.PriorityHigh
	})
	seedTask(t, repo, "owner-a", func(task *model.Task) {
		task.Status = constants.StatusPending
		task.Priority = constants.PriorityHigh
	})
	seedTask(t, repo, "owner-a", func(task *model.Task) {
		task.Status = constants.StatusPending
		task.Priority = constants.PriorityLow
	})

	tasks, err := repo.List(ctx, "owner-a", TaskFilter{Status: "pending"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(tasks) != 2 {
		t.Errorf("expected 2 pending tasks, got %d", len(tasks))
	}

	tasks, err = repo.List(ctx, "owner-a", TaskFilter{Status: "pending", Priority: "high"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(tasks) != 1 {
		t.Errorf("expected 1 pending high task, got %d", len(tasks))
	}

	tasks, err = repo.List(ctx, "owner-a", TaskFilter{Status: "in-progress"})
	if err != nil {
		t.Fatalf("no-match filter must not error: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("expected empty result, got %d", len(tasks))
	}
}

func TestTaskRepository_SortByPriority(t *testing.T) {
	repo := NewTaskRepository(setupTestDB(t))
	ctx := context.Background()

	seedTask(t, repo, "owner-a", func(task *model.Task) { task.Priority = constants.PriorityMedium })
	seedTask(t, repo, "owner-a", func(task *model.Task) { task.Priority = constants.PriorityLow })
	seedTask(t, repo, "owner-a", func(task *model.Task) { task.Priority = constants.PriorityHigh })

	tasks, err := repo.List(ctx, "owner-a", TaskFilter{Sort: SortPriority})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(tasks) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(tasks))
	}

	want := []constants.TaskPriority{constants.PriorityHigh, constants.PriorityMedium, constants.PriorityLow}
	for i, priority := range want {
		if tasks[i].Priority != priority {
			t.Errorf("position %d: expected %s, got %s", i, priority, tasks[i].Priority)
		}
	}
}

func TestTaskRepository_SortByDueDate(t *testing.T) {
	repo := NewTaskRepository(setupTestDB(t))
	ctx := context.Background()

	later := time.Now().UTC().Add(48 * time.Hour)
	sooner := time.Now().UTC().Add(24 * time.Hour)

	seedTask(t, repo, "owner-a", func(task *model.Task) { task.DueDate = &later })
	seedTask(t, repo, "owner-a", func(task *model.Task) { task.DueDate = &sooner })

	tasks, err := repo.List(ctx, "owner-a", TaskFilter{Sort: SortDueDate})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	if !tasks[0].DueDate.Before(*tasks[1].DueDate) {
		t.Error("expected ascending due date order")
	}
}

func TestTaskRepository_DefaultSortIsRecencyDescending(t *testing.T) {
	repo := NewTaskRepository(setupTestDB(t))
	ctx := context.Background()

	old := seedTask(t, repo, "owner-a", func(task *model.Task) {
		task.CreatedAt = time.Now().UTC().Add(-time.Hour)
	})
	recent := seedTask(t, repo, "owner-a", func(task *model.Task) {
		task.CreatedAt = time.Now().UTC()
	})

	tasks, err := repo.List(ctx, "owner-a", TaskFilter{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	if tasks[0].ID != recent.ID || tasks[1].ID != old.ID {
		t.Error("expected newest task first")
	}
}

func TestTaskRepository_UpdateScopedByOwner(t *testing.T) {
	repo := NewTaskRepository(setupTestDB(t))
	ctx := context.Background()

	task := seedTask(t, repo, "owner-a", nil)

	foreign := *task
	foreign.OwnerID = "owner-b"
	foreign.Title = "hijacked"

	if err := repo.Update(ctx, &foreign); !errors.Is(err, errs.ErrTaskNotFound) {
		t.Errorf("foreign update must report not found, got %v", err)
	}

	stored, err := repo.FindByID(ctx, "owner-a", task.ID)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if stored.Title != "Task" {
		t.Errorf("task must be unchanged, got title %q", stored.Title)
	}
}

func TestTaskRepository_Delete(t *testing.T) {
	repo := NewTaskRepository(setupTestDB(t))
	ctx := context.Background()

	task := seedTask(t, repo, "owner-a", nil)

	if err := repo.Delete(ctx, "owner-b", task.ID); !errors.Is(err, errs.ErrTaskNotFound) {
		t.Errorf("foreign delete must report not found, got %v", err)
	}

	if err := repo.Delete(ctx, "owner-a", task.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if _, err := repo.FindByID(ctx, "owner-a", task.ID); !errors.Is(err, errs.ErrTaskNotFound) {
		t.Errorf("deleted task must report not found, got %v", err)
	}

	if err := repo.Delete(ctx, "owner-a", task.ID); !errors.Is(err, errs.ErrTaskNotFound) {
		t.Errorf("repeated delete must report not found, got %v", err)
	}
}

func TestTaskRepository_CountByStatus(t *testing.T) {
	repo := NewTaskRepository(setupTestDB(t))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		seedTask(t, repo, "owner-a", func(task *model.Task) { task.Status = constants.StatusPending })
	}
	seedTask(t, repo, "owner-a", func(task *model.Task) { task.Status = constants.StatusCompleted })
	seedTask(t, repo, "owner-b", func(task *model.Task) { task.Status = constants.StatusCompleted })

	counts, err := repo.CountByStatus(ctx, "owner-a")
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}

	if counts[constants.StatusPending] != 3 {
		t.Errorf("expected 3 pending, got %d", counts[constants.StatusPending])
	}
	if counts[constants.StatusCompleted] != 1 {
		t.Errorf("expected 1 completed, got %d", counts[constants.StatusCompleted])
	}
	if _, ok := counts[constants.StatusInProgress]; ok {
		t.Error("statuses without rows should be absent from the raw counts")
	}
}

package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	dto "task-tracker.com/task-tracker/internal/data_models"
	errs "task-tracker.com/task-tracker/internal/errors"
	middleware "task-tracker.com/task-tracker/internal/http/middlewares"
	"task-tracker.com/task-tracker/internal/http/validators"
	"task-tracker.com/task-tracker/internal/logging"
	"task-tracker.com/task-tracker/internal/services"
)

type Handler struct {
	taskService *services.TaskService
}

func NewHandler(taskService *services.TaskService) *Handler {
	return &Handler{
		taskService: taskService,
	}
}

func (h *Handler) ListTasks(c echo.Context) error {
	var query dto.ListTasksQuery
	if err := c.Bind(&query); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}

	tasks, err := h.taskService.List(c.Request().Context(), userID(c), &query)
	if err != nil {
		return writeError(c, err, "failed to list tasks")
	}

	return c.JSON(http.StatusOK, tasks)
}

func (h *Handler) GetTask(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "task id is required")
	}

	task, err := h.taskService.Get(c.Request().Context(), userID(c), id)
	if err != nil {
		return writeError(c, err, "failed to fetch task")
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) CreateTask(c echo.Context) error {
	var req dto.TaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateTaskRequest(&req); err != nil {
		return writeError(c, err, "failed to create task")
	}

	task, err := h.taskService.Create(c.Request().Context(), userID(c), &req)
	if err != nil {
		return writeError(c, err, "failed to create task")
	}

	return c.JSON(http.StatusCreated, task)
}

func (h *Handler) UpdateTask(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "task id is required")
	}

	var req dto.TaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateTaskRequest(&req); err != nil {
		return writeError(c, err, "failed to update task")
	}

	task, err := h.taskService.Update(c.Request().Context(), userID(c), id, &req)
	if err != nil {
		return writeError(c, err, "failed to update task")
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) DeleteTask(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "task id is required")
	}

	if err := h.taskService.Delete(c.Request().Context(), userID(c), id); err != nil {
		return writeError(c, err, "failed to delete task")
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "task deleted successfully"})
}

func (h *Handler) Stats(c echo.Context) error {
	summary, err := h.taskService.Stats(c.Request().Context(), userID(c))
	if err != nil {
		return writeError(c, err, "failed to fetch stats")
	}

	return c.JSON(http.StatusOK, summary)
}

func userID(c echo.Context) string {
	id, _ := c.Get(middleware.ContextUserID).(string)
	return id
}

// writeError maps service errors onto HTTP responses. Validation failures
// return every field message; anything unrecognized is logged and hidden
// behind a generic message.
func writeError(c echo.Context, err error, generic string) error {
	var verr *errs.ValidationError
	if errors.As(err, &verr) {
		return c.JSON(http.StatusBadRequest, echo.Map{"errors": verr.Errors})
	}

	if code := errs.StatusCode(err); code != http.StatusInternalServerError {
		return echo.NewHTTPError(code, err.Error())
	}

	logging.Logger.WithError(err).WithField("path", c.Path()).Error(generic)
	return echo.NewHTTPError(http.StatusInternalServerError, generic)
}

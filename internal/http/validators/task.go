package validators

import (
	"strings"
	"unicode/utf8"

	"task-tracker.com/task-tracker/internal/constants"
	dto "task-tracker.com/task-tracker/internal/data_models"
	errs "task-tracker.com/task-tracker/internal/errors"
)

const (
	maxTitleLen       = 200
	maxDescriptionLen = 1000
)

// ValidateTaskRequest checks a create/update payload and reports every
// field failure at once. Title and description are trimmed in place so
// the stored values never carry surrounding whitespace.
func ValidateTaskRequest(r *dto.TaskRequest) error {
	verr := &errs.ValidationError{}

	r.Title = strings.TrimSpace(r.Title)
	if r.Title == "" {
		verr.Add("title", "title is required")
	} else if utf8.RuneCountInString(r.Title) > maxTitleLen {
		verr.Add("title", "title cannot exceed 200 characters")
	}

	if r.Description != nil {
		trimmed := strings.TrimSpace(*r.Description)
		*r.Description = trimmed
		if utf8.RuneCountInString(trimmed) > maxDescriptionLen {
			verr.Add("description", "description cannot exceed 1000 characters")
		}
	}

	if r.Status != nil && !constants.TaskStatus(*r.Status).Valid() {
		verr.Add("status", "status must be one of pending, in-progress, completed")
	}

	if r.Priority != nil && !constants.TaskPriority(*r.Priority).Valid() {
		verr.Add("priority", "priority must be one of low, medium, high")
	}

	if verr.HasErrors() {
		return verr
	}
	return nil
}

package validators

import (
	"strings"

	dto "task-tracker.com/task-tracker/internal/data_models"
	errs "task-tracker.com/task-tracker/internal/errors"
)

const minPasswordLen = 8

func ValidateRegisterRequest(r *dto.RegisterRequest) error {
	verr := &errs.ValidationError{}

	if strings.TrimSpace(r.Name) == "" {
		verr.Add("name", "name is required")
	}
	if strings.TrimSpace(r.Email) == "" {
		verr.Add("email", "email is required")
	} else if !strings.Contains(r.Email, "@") {
		verr.Add("email", "email is not valid")
	}
	if len(r.Password) < minPasswordLen {
		verr.Add("password", "password must be at least 8 characters")
	}

	if verr.HasErrors() {
		return verr
	}
	return nil
}

func ValidateLoginRequest(r *dto.LoginRequest) error {
	verr := &errs.ValidationError{}

	if strings.TrimSpace(r.Email) == "" {
		verr.Add("email", "email is required")
	}
	if r.Password == "" {
		verr.Add("password", "password is required")
	}

	if verr.HasErrors() {
		return verr
	}
	return nil
}

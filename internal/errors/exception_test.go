package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatusCode_Exception(t *testing.T) {
	if code := StatusCode(ErrTaskNotFound); code != http.StatusNotFound {
		t.Errorf("expected 404 for ErrTaskNotFound, got %d", code)
	}
	if code := StatusCode(ErrEmailTaken); code != http.StatusConflict {
		t.Errorf("expected 409 for ErrEmailTaken, got %d", code)
	}
	if code := StatusCode(ErrInvalidCredentials); code != http.StatusUnauthorized {
		t.Errorf("expected 401 for ErrInvalidCredentials, got %d", code)
	}
}

func TestStatusCode_WrappedException(t *testing.T) {
	wrapped := fmt.Errorf("looking up task: %w", ErrTaskNotFound)
	if code := StatusCode(wrapped); code != http.StatusNotFound {
		t.Errorf("expected 404 through a wrapped error, got %d", code)
	}
}

func TestStatusCode_UnknownError(t *testing.T) {
	if code := StatusCode(errors.New("disk on fire")); code != http.StatusInternalServerError {
		t.Errorf("unknown errors must map to 500, got %d", code)
	}
}

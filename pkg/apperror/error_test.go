package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestErrorError(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "without internal error",
			err:      &Error{HTTPStatus: http.StatusNotFound, Code: "not_found", Message: "Not Found"},
			expected: "not_found: Not Found",
		},
		{
			name: "with internal error",
			err: &Error{
				HTTPStatus: http.StatusInternalServerError,
				Code:       "generation_failed",
				Message:    "Logo generation failed: boom",
				Internal:   errors.New("boom"),
			},
			expected: "generation_failed: Logo generation failed: boom (boom)",
		},
		{
			name:     "empty message",
			err:      &Error{HTTPStatus: http.StatusBadRequest, Code: "bad_request"},
			expected: "bad_request: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestErrorBody(t *testing.T) {
	t.Run("string detail", func(t *testing.T) {
		body := NewBadRequest("brandName must not be blank").Body()
		if body["detail"] != "brandName must not be blank" {
			t.Errorf("detail = %v", body["detail"])
		}
	})

	t.Run("field detail array", func(t *testing.T) {
		body := NewValidation(MissingField("brandName")).Body()
		fields, ok := body["detail"].([]FieldError)
		if !ok {
			t.Fatalf("detail is %T, want []FieldError", body["detail"])
		}
		if len(fields) != 1 || fields[0].Loc[1] != "brandName" || fields[0].Type != "value_error.missing" {
			t.Errorf("fields = %+v", fields)
		}
	})
}

func TestErrorCopiesDoNotMutate(t *testing.T) {
	original := New(http.StatusBadRequest, "bad_request", "Original message")

	withMessage := original.WithMessage("Custom")
	withInternal := original.WithInternal(errors.New("cause"))
	withFields := original.WithFields(MissingField("x"))

	if original.Message != "Original message" || original.Internal != nil || original.Fields != nil {
		t.Errorf("original modified: %+v", original)
	}
	if withMessage.Message != "Custom" || withMessage.HTTPStatus != http.StatusBadRequest {
		t.Errorf("WithMessage() = %+v", withMessage)
	}
	if withInternal.Internal == nil || withInternal.Message != "Original message" {
		t.Errorf("WithInternal() = %+v", withInternal)
	}
	if len(withFields.Fields) != 1 {
		t.Errorf("WithFields() = %+v", withFields)
	}
}

func TestAsUnwrapsChain(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", ErrRateLimited)

	got, ok := As(wrapped)
	if !ok {
		t.Fatal("As() did not find *Error in chain")
	}
	if got.HTTPStatus != http.StatusTooManyRequests {
		t.Errorf("HTTPStatus = %d, want 429", got.HTTPStatus)
	}

	if _, ok := As(errors.New("plain")); ok {
		t.Error("As() matched a plain error")
	}
}

func TestNewGenerationFailed(t *testing.T) {
	err := NewGenerationFailed("Slogan", errors.New("template missing"))

	if err.HTTPStatus != http.StatusInternalServerError {
		t.Errorf("HTTPStatus = %d", err.HTTPStatus)
	}
	if err.Message != "Slogan generation failed: template missing" {
		t.Errorf("Message = %q", err.Message)
	}
	if errors.Unwrap(err) == nil {
		t.Error("internal cause not attached")
	}
}

package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("boom")
	e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)
	if !errors.Is(e, cause) {
		t.Fatalf("expected wrapped cause")
	}
	if e.Error() != "INTERNAL_ERROR: boom" {
		t.Fatalf("unexpected error string: %s", e.Error())
	}
	body := e.ToHTTPError()
	if body.Code != "INTERNAL_ERROR" || body.Message != "An internal error occurred" {
		t.Fatalf("unexpected body: %+v", body)
	}

	simple := NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	if simple.Error() != "INVALID_REQUEST: Invalid request" || simple.Unwrap() != nil {
		t.Fatalf("unexpected simple error: %v", simple)
	}
}

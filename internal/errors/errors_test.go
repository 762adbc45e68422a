package errors

import (
	"errors"
	"testing"
)

func TestValidationErrorUnwrapsToInputValidation(t *testing.T) {
	err := NewValidationError("email", "", "must not be empty")
	if !Is(err, ErrInputValidation) {
		t.Fatalf("expected ErrInputValidation in chain, got %v", err)
	}
	if err.Error() != "validation error: email (): must not be empty" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestViewErrorChain(t *testing.T) {
	err := Wrap(NewViewError("news", "select", ErrRecordNotFound), "selecting article")
	if !Is(err, ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound in chain, got %v", err)
	}

	var viewErr *ViewError
	if !As(err, &viewErr) {
		t.Fatalf("expected *ViewError in chain")
	}
	if viewErr.View != "news" || viewErr.Operation != "select" {
		t.Errorf("unexpected view error fields: %+v", viewErr)
	}
}

func TestActionErrorChain(t *testing.T) {
	err := NewActionError("regenerate-quiz", ErrActionPending)
	if !errors.Is(err, ErrActionPending) {
		t.Fatalf("expected ErrActionPending in chain")
	}
}

func TestWrapNil(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should be nil")
	}
	if Wrapf(nil, "context %d", 1) != nil {
		t.Error("Wrapf(nil) should be nil")
	}
}

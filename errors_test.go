package sbits

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorPredicates(t *testing.T) {
	if !IsNotFound(ErrNotFoundError) {
		t.Fatal("IsNotFound should be true for ErrNotFoundError")
	}
	if IsIOError(ErrNotFoundError) {
		t.Fatal("IsIOError should be false for ErrNotFoundError")
	}
	if !IsEndOfIteration(ErrEndOfIterationError) {
		t.Fatal("IsEndOfIteration should be true for ErrEndOfIterationError")
	}
}

func TestWrapErrorPreservesCause(t *testing.T) {
	cause := fmt.Errorf("disk full")
	wrapped := WrapError(ErrIO, cause)

	if !IsIOError(wrapped) {
		t.Fatal("IsIOError should be true for a wrapped ErrIO")
	}
	if !errors.Is(wrapped, wrapped) {
		t.Fatal("errors.Is should match itself")
	}
	if errors.Unwrap(wrapped) != cause {
		t.Fatal("Unwrap should return the wrapped cause")
	}
}

func TestCodeOnNonSbitsError(t *testing.T) {
	if Code(nil) != 0 {
		t.Fatal("Code(nil) should be 0")
	}
	if Code(fmt.Errorf("plain error")) != 0 {
		t.Fatal("Code on a non-*Error should be 0")
	}
}

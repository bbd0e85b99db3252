package rop

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestSuccess(t *testing.T) {
	t.Parallel()
	r := Success(5)
	if !r.IsSuccess() || r.IsFailure() || r.IsCancel() || r.Result() != 5 || r.Err() != nil {
		t.Fatalf("unexpected success result: success=%v, failure=%v, val=%v, err=%v", r.IsSuccess(), r.IsFailure(), r.Result(), r.Err())
	}
	if r.CreatedAt().Location().String() != "UTC" {
		t.Fatalf("expected UTC creation time, got %v", r.CreatedAt().Location())
	}
}

func TestFailAndCancel(t *testing.T) {
	t.Parallel()
	f := Fail[int](errors.New("bad"))
	if f.IsSuccess() || !f.IsFailure() || f.IsCancel() || f.Err().Error() != "bad" {
		t.Fatalf("unexpected fail result: %v, %v, %v", f.IsSuccess(), f.IsCancel(), f.Err())
	}

	c := Cancel[int](context.Canceled)
	if c.IsSuccess() || !c.IsFailure() || !c.IsCancel() {
		t.Fatalf("unexpected cancel result: %v, %v", c.IsSuccess(), c.IsCancel())
	}
}

func TestIdsAreUnique(t *testing.T) {
	t.Parallel()
	if Success(1).Id() == Success(1).Id() {
		t.Fatalf("expected distinct ids")
	}
}

func TestCancelFromKeepsIdentity(t *testing.T) {
	t.Parallel()
	in := Cancel[int](context.DeadlineExceeded)
	out := CancelFrom[int, string](in)
	if out.Id() != in.Id() || !out.IsCancel() || !errors.Is(out.Err(), context.DeadlineExceeded) {
		t.Fatalf("expected cancel carried over, got id=%v cancel=%v err=%v", out.Id(), out.IsCancel(), out.Err())
	}
}

func TestIsEmpty(t *testing.T) {
	t.Parallel()
	var r Result[int]
	if !r.IsEmpty() || r.IsFailure() {
		t.Fatalf("zero result should be empty and not a failure")
	}
	if Success(0).IsEmpty() {
		t.Fatalf("success should not be empty")
	}
}

func TestFromError(t *testing.T) {
	t.Parallel()
	if r := FromError(3, nil); !r.IsSuccess() || r.Result() != 3 {
		t.Fatalf("expected success with 3, got %v, %v", r.IsSuccess(), r.Result())
	}
	if r := FromError(0, errors.New("x")); !r.IsFailure() || r.IsCancel() {
		t.Fatalf("expected plain failure, got cancel=%v", r.IsCancel())
	}
	wrapped := fmt.Errorf("fetch: %w", context.DeadlineExceeded)
	if r := FromError(0, wrapped); !r.IsCancel() || r.Err() != wrapped {
		t.Fatalf("expected cancel carrying wrapped error, got cancel=%v err=%v", r.IsCancel(), r.Err())
	}
}

func TestGet(t *testing.T) {
	t.Parallel()
	v, err := Success("ok").Get()
	if v != "ok" || err != nil {
		t.Fatalf("expected ok/nil, got %v/%v", v, err)
	}
	_, err = Fail[string](errors.New("no")).Get()
	if err == nil || err.Error() != "no" {
		t.Fatalf("expected 'no', got %v", err)
	}
}

func TestGetErrors(t *testing.T) {
	t.Parallel()
	if got := GetErrors(nil); len(got) != 0 {
		t.Fatalf("expected no errors, got %v", got)
	}
	a, b := errors.New("a"), errors.New("b")
	if got := GetErrors(errors.Join(a, b)); len(got) != 2 || got[0] != a || got[1] != b {
		t.Fatalf("expected [a b], got %v", got)
	}
	if got := GetErrors(a); len(got) != 1 || got[0] != a {
		t.Fatalf("expected [a], got %v", got)
	}
}

func TestIsNil(t *testing.T) {
	t.Parallel()
	var p *int
	if !IsNil(nil) || !IsNil(p) || IsNil(1) {
		t.Fatalf("IsNil misclassified a value")
	}
}

package angzarr

import (
	"errors"
	"testing"
)

func expectRejection(t *testing.T, err error, wantMsg string) {
	t.Helper()
	if err == nil {
		t.Fatal("expected rejection")
	}
	var rejected CommandRejectedError
	if !errors.As(err, &rejected) {
		t.Fatalf("expected CommandRejectedError, got %T", err)
	}
	if wantMsg != "" && rejected.Message != wantMsg {
		t.Errorf("unexpected message: %q", rejected.Message)
	}
}

func TestRequireExists(t *testing.T) {
	if err := RequireExists(true, "order not found"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	expectRejection(t, RequireExists(false, "order not found"), "order not found")

	if err := RequireNotExists(false, "duplicate order"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	expectRejection(t, RequireNotExists(true, "duplicate order"), "duplicate order")
}

func TestRequireNumeric(t *testing.T) {
	if err := RequirePositive(int64(5), "quantity"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	expectRejection(t, RequirePositive(0, "quantity"), "quantity must be positive")
	expectRejection(t, RequirePositive(-3.5, "amount"), "amount must be positive")

	if err := RequireNonNegative(0, "balance"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	expectRejection(t, RequireNonNegative(-1, "balance"), "balance must be non-negative")
}

func TestRequireNotEmpty(t *testing.T) {
	if err := RequireNotEmptyString("alice", "customer_id"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	expectRejection(t, RequireNotEmptyString("", "customer_id"), "customer_id must not be empty")

	if err := RequireNotEmpty([]int{1}, "items"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	expectRejection(t, RequireNotEmpty([]int{}, "items"), "items must not be empty")
}

func TestRequireStatus(t *testing.T) {
	if err := RequireStatus("created", "created", "wrong status"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	expectRejection(t, RequireStatus("cancelled", "created", "wrong status"), "wrong status")

	if err := RequireStatusNot("created", "cancelled", "already cancelled"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	expectRejection(t, RequireStatusNot("cancelled", "cancelled", "already cancelled"), "already cancelled")
}

func TestRequireSufficient(t *testing.T) {
	if err := RequireSufficient(10, 10, "insufficient stock"); err != nil {
		t.Errorf("exact cover should pass: %v", err)
	}
	expectRejection(t, RequireSufficient(3, 10, "insufficient stock"), "insufficient stock")
}

package utility

import "testing"

func TestExecutionID_Stable(t *testing.T) {
	first := GetExecutionID()
	second := GetExecutionID()

	if first != second {
		t.Errorf("GetExecutionID changed between calls: %s vs %s", first, second)
	}
	if first.Version() != 7 {
		t.Errorf("ExecutionID version = %d; want 7", first.Version())
	}
}

func TestExecutionID_Reset(t *testing.T) {
	before := GetExecutionID()
	after := ResetExecutionID()

	if before == after {
		t.Errorf("ResetExecutionID did not mint a new id")
	}
	if got := GetExecutionID(); got != after {
		t.Errorf("GetExecutionID after reset = %s; want %s", got, after)
	}
}

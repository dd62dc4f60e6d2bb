package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestConfigError_Error(t *testing.T) {
	err := New(ErrCodeInvalidInput, "bad value")
	if got := err.Error(); got != "INVALID_INPUT: bad value" {
		t.Errorf("unexpected message: %q", got)
	}
}

func TestConfigError_ErrorWithCause(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := New(ErrCodeClientConstruction, "failed").WithCause(cause)
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("expected cause in message, got %q", err.Error())
	}
}

func TestConfigError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("underlying")
	err := ClientConstruction(cause)
	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to match the cause")
	}
}

func TestConflicting_Details(t *testing.T) {
	err := Conflicting("cacert", "truststore", "use either cacert or truststore")
	settings, ok := err.Details["settings"].([]string)
	if !ok || len(settings) != 2 {
		t.Fatalf("expected two conflicting settings, got %v", err.Details)
	}
	if settings[0] != "cacert" || settings[1] != "truststore" {
		t.Errorf("unexpected settings: %v", settings)
	}
}

func TestMissingSetting_Code(t *testing.T) {
	err := MissingSetting("version", "external versioning requires a version")
	if err.Code != ErrCodeMissingSetting {
		t.Errorf("unexpected code: %s", err.Code)
	}
	if err.Details["setting"] != "version" {
		t.Errorf("unexpected details: %v", err.Details)
	}
}

func TestWithDetail(t *testing.T) {
	err := Incompatible("create and external versioning").WithDetail("action", "create")
	if err.Details["action"] != "create" {
		t.Errorf("unexpected details: %v", err.Details)
	}
}

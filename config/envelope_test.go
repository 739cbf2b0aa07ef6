package config

import (
	"os"
	"testing"

	"github.com/fulmenhq/levfind/errors"
)

func TestLoadEnvOverridesWithEnvelope_ParseError(t *testing.T) {
	specs := []EnvVarSpec{
		{
			Name: "TEST_INT_VAR",
			Path: []string{"test", "value"},
			Type: EnvInt,
		},
	}

	_ = os.Setenv("TEST_INT_VAR", "not-an-integer")
	defer func() { _ = os.Unsetenv("TEST_INT_VAR") }()

	_, err := LoadEnvOverridesWithEnvelope(specs, "test-correlation-id")
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	envelope, ok := err.(*errors.ErrorEnvelope)
	if !ok {
		t.Fatalf("expected *errors.ErrorEnvelope, got %T", err)
	}

	if envelope.Code != "CONFIG_ENV_PARSE_ERROR" {
		t.Errorf("expected code %q, got %q", "CONFIG_ENV_PARSE_ERROR", envelope.Code)
	}

	if envelope.CorrelationID != "test-correlation-id" {
		t.Errorf("expected correlation ID %q, got %q", "test-correlation-id", envelope.CorrelationID)
	}

	if envelope.Context == nil {
		t.Error("expected non-nil context")
	}

	if envelope.Original == nil {
		t.Error("expected non-nil original error")
	}
}

func TestLoadEnvOverridesWithEnvelope_Success(t *testing.T) {
	specs := []EnvVarSpec{
		{
			Name: "TEST_STRING_VAR",
			Path: []string{"test", "string"},
			Type: EnvString,
		},
		{
			Name: "TEST_INT_VAR",
			Path: []string{"test", "number"},
			Type: EnvInt,
		},
	}

	_ = os.Setenv("TEST_STRING_VAR", "hello")
	_ = os.Setenv("TEST_INT_VAR", "42")
	defer func() {
		_ = os.Unsetenv("TEST_STRING_VAR")
		_ = os.Unsetenv("TEST_INT_VAR")
	}()

	result, err := LoadEnvOverridesWithEnvelope(specs, "test-correlation-id")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result == nil {
		t.Fatal("expected non-nil result")
	}

	testMap, ok := result["test"].(map[string]any)
	if !ok {
		t.Fatal("expected test key to be map")
	}

	if testMap["string"] != "hello" {
		t.Errorf("expected string value %q, got %v", "hello", testMap["string"])
	}

	if testMap["number"] != 42 {
		t.Errorf("expected number value 42, got %v", testMap["number"])
	}
}

func TestGetXDGBaseDirsWithEnvelope_MissingHome(t *testing.T) {
	originalHome := os.Getenv("HOME")
	_ = os.Unsetenv("HOME")
	defer func() {
		if originalHome != "" {
			_ = os.Setenv("HOME", originalHome)
		}
	}()

	_, err := GetXDGBaseDirsWithEnvelope("test-correlation-id")
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	envelope, ok := err.(*errors.ErrorEnvelope)
	if !ok {
		t.Fatalf("expected *errors.ErrorEnvelope, got %T", err)
	}

	if envelope.Code != "CONFIG_XDG_ERROR" {
		t.Errorf("expected code %q, got %q", "CONFIG_XDG_ERROR", envelope.Code)
	}

	if envelope.CorrelationID != "test-correlation-id" {
		t.Errorf("expected correlation ID %q, got %q", "test-correlation-id", envelope.CorrelationID)
	}

	if envelope.Context == nil {
		t.Error("expected non-nil context")
	}
}

func TestGetXDGBaseDirsWithEnvelope_Success(t *testing.T) {
	originalHome := os.Getenv("HOME")
	testHome := "/tmp/testhome"
	_ = os.Setenv("HOME", testHome)
	defer func() {
		if originalHome != "" {
			_ = os.Setenv("HOME", originalHome)
		}
	}()

	result, err := GetXDGBaseDirsWithEnvelope("test-correlation-id")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.ConfigHome == "" {
		t.Error("expected non-empty ConfigHome")
	}

	if result.DataHome == "" {
		t.Error("expected non-empty DataHome")
	}

	if result.CacheHome == "" {
		t.Error("expected non-empty CacheHome")
	}
}

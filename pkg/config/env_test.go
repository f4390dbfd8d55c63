package config_test

import (
	"testing"
	"time"

	"tourcatalog/pkg/config"
)

func TestGetEnvString(t *testing.T) {
	t.Setenv("TEST_STR", "hello")
	if got := config.GetEnvString("TEST_STR", "default"); got != "hello" {
		t.Errorf("got %q, want %q", got, "hello")
	}
	if got := config.GetEnvString("TEST_STR_UNSET", "default"); got != "default" {
		t.Errorf("got %q, want %q", got, "default")
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("TEST_INT", "42")
	t.Setenv("TEST_INT_BAD", "not-a-number")

	if got := config.GetEnvInt("TEST_INT", 7); got != 42 {
		t.Errorf("got %d, want 42", got)
	}
	if got := config.GetEnvInt("TEST_INT_BAD", 7); got != 7 {
		t.Errorf("invalid value: got %d, want default 7", got)
	}
	if got := config.GetEnvInt("TEST_INT_UNSET", 7); got != 7 {
		t.Errorf("unset: got %d, want default 7", got)
	}
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("TEST_BOOL_TRUE", "true")
	t.Setenv("TEST_BOOL_ONE", "1")
	t.Setenv("TEST_BOOL_BAD", "maybe")

	if !config.GetEnvBool("TEST_BOOL_TRUE", false) {
		t.Error("true not parsed")
	}
	if !config.GetEnvBool("TEST_BOOL_ONE", false) {
		t.Error("1 not parsed")
	}
	if !config.GetEnvBool("TEST_BOOL_BAD", true) {
		t.Error("invalid value should fall back to default")
	}
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("TEST_DUR", "150ms")
	t.Setenv("TEST_DUR_BAD", "soon")

	if got := config.GetEnvDuration("TEST_DUR", time.Second); got != 150*time.Millisecond {
		t.Errorf("got %v, want 150ms", got)
	}
	if got := config.GetEnvDuration("TEST_DUR_BAD", time.Second); got != time.Second {
		t.Errorf("invalid value: got %v, want default 1s", got)
	}
}

func TestValidatePositiveDuration(t *testing.T) {
	if err := config.ValidatePositiveDuration(time.Second); err != nil {
		t.Errorf("positive duration rejected: %v", err)
	}
	if err := config.ValidatePositiveDuration(0); err == nil {
		t.Error("zero duration accepted")
	}
	if err := config.ValidatePositiveDuration(-time.Second); err == nil {
		t.Error("negative duration accepted")
	}
}

func TestValidateDurationRange(t *testing.T) {
	if err := config.ValidateDurationRange(time.Minute, time.Second, time.Hour); err != nil {
		t.Errorf("in-range duration rejected: %v", err)
	}
	if err := config.ValidateDurationRange(time.Millisecond, time.Second, time.Hour); err == nil {
		t.Error("below-minimum duration accepted")
	}
	if err := config.ValidateDurationRange(2*time.Hour, time.Second, time.Hour); err == nil {
		t.Error("above-maximum duration accepted")
	}
	if err := config.ValidateDurationRange(time.Second, time.Hour, time.Minute); err == nil {
		t.Error("inverted range accepted")
	}
}

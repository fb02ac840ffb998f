package timeouts

import (
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	Reset()
	if Probe() != DefaultProbe {
		t.Errorf("Probe() = %v, want %v", Probe(), DefaultProbe)
	}
	if Request() != DefaultRequest {
		t.Errorf("Request() = %v, want %v", Request(), DefaultRequest)
	}
}

func TestConfigure(t *testing.T) {
	t.Cleanup(Reset)

	Configure(Config{Probe: 2 * time.Second})
	if Probe() != 2*time.Second {
		t.Errorf("Probe() = %v, want 2s", Probe())
	}
	if Request() != DefaultRequest {
		t.Errorf("Request() should be unchanged, got %v", Request())
	}

	Configure(Config{Request: time.Minute})
	if Request() != time.Minute {
		t.Errorf("Request() = %v, want 1m", Request())
	}
}

func TestConfigureFromEnv(t *testing.T) {
	t.Cleanup(Reset)

	t.Setenv("TIMEOUT_PROBE", "3s")
	t.Setenv("TIMEOUT_REQUEST", "bogus")

	if got := ConfigureFromEnv(); got != 1 {
		t.Errorf("ConfigureFromEnv() = %d, want 1", got)
	}
	if Probe() != 3*time.Second {
		t.Errorf("Probe() = %v, want 3s", Probe())
	}
	if Request() != DefaultRequest {
		t.Errorf("invalid value should not apply, got %v", Request())
	}
}

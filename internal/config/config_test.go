package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Server.Port != 8080 {
		t.Errorf("port = %d, want 8080", cfg.Server.Port)
	}
	p := cfg.TargetPolicy()
	if p.DeficitKcal != 500 || p.SurplusKcal != 300 {
		t.Errorf("policy = %+v, want 500/300", p)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadRepoConfig(t *testing.T) {
	t.Setenv("HEALTHCALC_ENV", "staging")
	cfg, err := Load("../../configs/config.yaml")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.App.Environment != "staging" {
		t.Errorf("environment = %q, want staging", cfg.App.Environment)
	}
	if cfg.Server.WriteTimeout != 10*time.Second {
		t.Errorf("write_timeout = %v, want 10s", cfg.Server.WriteTimeout)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Path != "/metrics" {
		t.Errorf("metrics = %+v", cfg.Metrics)
	}
}

func TestLoadOverridesPolicy(t *testing.T) {
	t.Setenv("HC_DEFICIT", "700")
	path := writeConfig(t, "policy:\n  deficit_kcal: ${HC_DEFICIT}\n  surplus_kcal: 450\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	p := cfg.TargetPolicy()
	if p.DeficitKcal != 700 {
		t.Errorf("deficit = %d, want 700", p.DeficitKcal)
	}
	if p.SurplusKcal != 450 {
		t.Errorf("surplus = %d, want 450", p.SurplusKcal)
	}
	// untouched sections keep defaults
	if cfg.Server.Port != 8080 {
		t.Errorf("port = %d, want default 8080", cfg.Server.Port)
	}
}

func TestLoadRejectsNegativePolicy(t *testing.T) {
	path := writeConfig(t, "policy:\n  deficit_kcal: -10\n")
	if _, err := Load(path); err == nil {
		t.Error("expected error for negative deficit")
	}
}

func TestLoadRejectsBadPort(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 70000\n")
	if _, err := Load(path); err == nil {
		t.Error("expected error for port out of range")
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestValidateFillsMetricsPath(t *testing.T) {
	cfg := Default()
	cfg.Metrics.Path = ""
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if cfg.Metrics.Path != "/metrics" {
		t.Errorf("metrics path = %q, want /metrics", cfg.Metrics.Path)
	}
}

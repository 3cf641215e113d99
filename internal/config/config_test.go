package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultMatchesReferenceValues(t *testing.T) {
	cfg := Default()

	if cfg.System.MaxExecutionTimeMS != 60_000 {
		t.Fatalf("got %d", cfg.System.MaxExecutionTimeMS)
	}
	if cfg.System.WorkspaceRoot != "/tmp/maos" {
		t.Fatalf("got %q", cfg.System.WorkspaceRoot)
	}
	if !cfg.System.EnableMetrics {
		t.Fatal("expected metrics enabled by default")
	}
	if !cfg.Security.EnableValidation {
		t.Fatal("expected validation enabled by default")
	}
	if len(cfg.Security.AllowedTools) != 1 || cfg.Security.AllowedTools[0] != "*" {
		t.Fatalf("got %v", cfg.Security.AllowedTools)
	}
	if cfg.Session.MaxAgents != 20 {
		t.Fatalf("got %d", cfg.Session.MaxAgents)
	}
	if cfg.Worktree.Prefix != "maos-agent" {
		t.Fatalf("got %q", cfg.Worktree.Prefix)
	}
	if cfg.Logging.Level != LogLevelInfo || cfg.Logging.Format != "json" || cfg.Logging.Output != "session_file" {
		t.Fatalf("got %+v", cfg.Logging)
	}
}

func TestLoadWithoutFileFallsBackToDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.System.WorkspaceRoot != "/tmp/maos" {
		t.Fatalf("got %q", cfg.System.WorkspaceRoot)
	}
}

func TestLoadFromTOMLFilePartialMerge(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "maos.toml")
	contents := `
[system]
max_execution_time_ms = 15000

[logging]
level = "debug"
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.System.MaxExecutionTimeMS != 15000 {
		t.Fatalf("got %d", cfg.System.MaxExecutionTimeMS)
	}
	if cfg.Logging.Level != LogLevelDebug {
		t.Fatalf("got %q", cfg.Logging.Level)
	}
	// Unspecified fields retain compiled-in defaults.
	if cfg.System.WorkspaceRoot != "/tmp/maos" {
		t.Fatalf("got %q", cfg.System.WorkspaceRoot)
	}
	if cfg.Logging.Format != "json" {
		t.Fatalf("got %q", cfg.Logging.Format)
	}
}

func TestEnvOverridesWinOverFileAndDefaults(t *testing.T) {
	t.Setenv("MAOS_SYSTEM_MAX_EXECUTION_TIME_MS", "5000")
	t.Setenv("MAOS_SYSTEM_WORKSPACE_ROOT", "/custom/path")
	t.Setenv("MAOS_SECURITY_ENABLE_VALIDATION", "false")
	t.Setenv("MAOS_LOGGING_LEVEL", "debug")

	path := filepath.Join(t.TempDir(), "maos.toml")
	contents := `
[system]
max_execution_time_ms = 15000
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.System.MaxExecutionTimeMS != 5000 {
		t.Fatalf("got %d", cfg.System.MaxExecutionTimeMS)
	}
	if cfg.System.WorkspaceRoot != "/custom/path" {
		t.Fatalf("got %q", cfg.System.WorkspaceRoot)
	}
	if cfg.Security.EnableValidation {
		t.Fatal("expected validation disabled by env override")
	}
	if cfg.Logging.Level != LogLevelDebug {
		t.Fatalf("got %q", cfg.Logging.Level)
	}
}

func TestInvalidLogLevelFromEnvFails(t *testing.T) {
	t.Setenv("MAOS_LOGGING_LEVEL", "notalevel")
	if _, err := Load(""); err == nil {
		t.Fatal("expected config error for invalid logging level")
	}
}

func TestValidateRejectsNonPositiveExecutionBudget(t *testing.T) {
	cfg := Default()
	cfg.System.MaxExecutionTimeMS = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestWorkspaceRootAbsResolvesRelativePaths(t *testing.T) {
	cfg := Default()
	cfg.System.WorkspaceRoot = "relative/path"
	abs, err := cfg.WorkspaceRootAbs()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !filepath.IsAbs(abs) {
		t.Fatalf("expected absolute path, got %q", abs)
	}
}

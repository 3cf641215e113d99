// Package config loads and validates the adjudicator's runtime
// configuration: workspace roots, resource ceilings, logging/rotation
// parameters, and the security deny lists. Grounded on the teacher's
// config.go TOML-plus-struct-tags shape, generalized to this domain, and
// on the reference implementation's MaosConfig/ConfigLoader
// (maos-core/src/config/ + tests/config_tests.rs) for field names,
// defaults, and the env-override contract.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/maos-project/maos/internal/constants"
	"github.com/maos-project/maos/internal/errs"
)

// LogLevel mirrors the reference implementation's ordered severity enum.
type LogLevel string

const (
	LogLevelTrace LogLevel = "trace"
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

func (l LogLevel) valid() bool {
	switch l {
	case LogLevelTrace, LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return true
	default:
		return false
	}
}

// SystemConfig governs process-wide ceilings (§4.1, §4.3, §5).
type SystemConfig struct {
	MaxExecutionTimeMS int64  `toml:"max_execution_time_ms"`
	WorkspaceRoot      string `toml:"workspace_root"`
	EnableMetrics      bool   `toml:"enable_metrics"`
	MaxInputSizeBytes  int    `toml:"max_input_size_bytes"`
	MaxJSONDepth       int    `toml:"max_json_depth"`
}

// SecurityConfig governs the policy layer (§4.2, §6).
type SecurityConfig struct {
	EnableValidation bool     `toml:"enable_validation"`
	AllowedTools     []string `toml:"allowed_tools"`
	BlockedPaths     []string `toml:"blocked_paths"`
}

// SessionConfig governs session bookkeeping ceilings (§4.3).
type SessionConfig struct {
	MaxAgents      int  `toml:"max_agents"`
	TimeoutMinutes int  `toml:"timeout_minutes"`
	AutoCleanup    bool `toml:"auto_cleanup"`
}

// WorktreeConfig governs per-agent workspace naming (§12, workspace
// generator).
type WorktreeConfig struct {
	Prefix       string `toml:"prefix"`
	AutoCleanup  bool   `toml:"auto_cleanup"`
	MaxWorktrees int    `toml:"max_worktrees"`
}

// LoggingConfig governs the session logger and its rotation behavior
// (§4.4), grounded verbatim on logging/config.go's RollingLogConfig.
type LoggingConfig struct {
	Level   LogLevel `toml:"level"`
	Format  string   `toml:"format"`
	Output  string   `toml:"output"`
	Rolling RollingLogConfig `toml:"rolling"`
}

// RollingLogConfig mirrors the reference implementation's
// RollingLogConfig one-to-one.
type RollingLogConfig struct {
	MaxFileSizeBytes   int64  `toml:"max_file_size_bytes"`
	MaxFilesPerSession int    `toml:"max_files_per_session"`
	CompressOnRoll     bool   `toml:"compress_on_roll"`
	FilePattern        string `toml:"file_pattern"`
}

// Config is the top-level merged configuration (§6). Once returned from
// Load, it is treated as immutable by the rest of the program.
type Config struct {
	System   SystemConfig   `toml:"system"`
	Security SecurityConfig `toml:"security"`
	Session  SessionConfig  `toml:"session"`
	Worktree WorktreeConfig `toml:"worktree"`
	Logging  LoggingConfig  `toml:"logging"`
}

// Default returns the compiled-in configuration (mirrors
// MaosConfig::default() field-for-field, including the literal
// "/tmp/maos" workspace root used by the reference test suite).
func Default() *Config {
	return &Config{
		System: SystemConfig{
			MaxExecutionTimeMS: 60_000,
			WorkspaceRoot:      "/tmp/maos",
			EnableMetrics:      true,
			MaxInputSizeBytes:  constants.MaxInputSize,
			MaxJSONDepth:       constants.MaxJSONDepth,
		},
		Security: SecurityConfig{
			EnableValidation: true,
			AllowedTools:     []string{"*"},
			BlockedPaths:     nil,
		},
		Session: SessionConfig{
			MaxAgents:      20,
			TimeoutMinutes: 60,
			AutoCleanup:    true,
		},
		Worktree: WorktreeConfig{
			Prefix:       "maos-agent",
			AutoCleanup:  true,
			MaxWorktrees: 50,
		},
		Logging: LoggingConfig{
			Level:  LogLevelInfo,
			Format: "json",
			Output: "session_file",
			Rolling: RollingLogConfig{
				MaxFileSizeBytes:   constants.MaxLogFileSize,
				MaxFilesPerSession: constants.MaxFilesPerSession,
				CompressOnRoll:     constants.DefaultCompressOnRoll,
				FilePattern:        constants.SessionLogPrefix + "{session_id}" + constants.SessionLogExt,
			},
		},
	}
}

// Load builds the merged configuration: compiled-in defaults, overlaid by
// path (if non-empty and present), overlaid by a ".env" file (if present)
// merged into the process environment, overlaid by MAOS_* environment
// variables. The teacher's LoadFile/LoadDefault pair is folded into this
// single entry point since the adjudicator has exactly one config file
// role, not per-subcommand variants.
func Load(path string) (*Config, *errs.Error) {
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, decodeErr := toml.DecodeFile(path, cfg); decodeErr != nil {
				return nil, errs.ConfigError(fmt.Sprintf("failed to parse config file: %v", decodeErr))
			}
		} else if !os.IsNotExist(err) {
			return nil, errs.ConfigError(fmt.Sprintf("failed to stat config file: %v", err))
		}
	}

	_ = godotenv.Load()

	if err := applyEnvOverrides(cfg, os.Environ()); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnvOverrides walks MAOS_<SECTION>_<FIELD> environment variables
// and writes them onto the matching exported struct field via reflection,
// case-insensitively matching each path segment against the field's toml
// tag (§6, mirroring ConfigLoader::load_with_env's override contract).
func applyEnvOverrides(cfg *Config, environ []string) *errs.Error {
	const prefix = "MAOS_"

	for _, kv := range environ {
		eq := strings.IndexByte(kv, '=')
		if eq < 0 || !strings.HasPrefix(kv, prefix) {
			continue
		}
		key := kv[len(prefix):eq]
		value := kv[eq+1:]

		segments := strings.Split(strings.ToLower(key), "_")
		if err := setField(reflect.ValueOf(cfg).Elem(), segments, value); err != nil {
			return err
		}
	}
	return nil
}

// setField walks segments against v's toml-tagged fields, descending at
// each level into the first field (in declaration order) whose tag
// segments prefix the remaining segments, until it reaches a leaf it can
// assign value to.
func setField(v reflect.Value, segments []string, value string) *errs.Error {
	if len(segments) == 0 {
		return nil
	}

	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("toml")
		tagSegments := strings.Split(tag, "_")

		if len(segments) < len(tagSegments) {
			continue
		}
		if !segmentsEqual(segments[:len(tagSegments)], tagSegments) {
			continue
		}

		remaining := segments[len(tagSegments):]
		fv := v.Field(i)

		if len(remaining) == 0 {
			return assignScalar(fv, value)
		}
		if fv.Kind() == reflect.Struct {
			return setField(fv, remaining, value)
		}
	}
	return nil
}

func segmentsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func assignScalar(fv reflect.Value, value string) *errs.Error {
	switch fv.Kind() {
	case reflect.String:
		fv.SetString(value)
	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return errs.ConfigError(fmt.Sprintf("invalid boolean value: %q", value))
		}
		fv.SetBool(b)
	case reflect.Int, reflect.Int64:
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return errs.ConfigError(fmt.Sprintf("invalid integer value: %q", value))
		}
		fv.SetInt(n)
	case reflect.Slice:
		if fv.Type().Elem().Kind() == reflect.String {
			parts := strings.Split(value, ",")
			fv.Set(reflect.ValueOf(parts))
		}
	default:
		if fv.Type() == reflect.TypeOf(LogLevel("")) {
			lvl := LogLevel(value)
			if !lvl.valid() {
				return errs.ConfigError(fmt.Sprintf("invalid log level: %q", value))
			}
			fv.Set(reflect.ValueOf(lvl))
		}
	}
	return nil
}

// Validate enforces the invariants the reference test suite checks via
// MaosConfig::validate(): a positive execution-time budget and a
// recognized log level (env overrides bypass struct tags, so this is the
// only place invalid values are caught).
func (c *Config) Validate() *errs.Error {
	if c.System.MaxExecutionTimeMS <= 0 {
		return errs.ConfigError("system.max_execution_time_ms must be positive")
	}
	if !c.Logging.Level.valid() {
		return errs.ConfigError(fmt.Sprintf("invalid logging level: %q", c.Logging.Level))
	}
	return nil
}

// WorkspaceRootAbs resolves the configured workspace root to an absolute
// path, used by internal/pathguard when constructing the per-session
// Guard.
func (c *Config) WorkspaceRootAbs() (string, error) {
	if filepath.IsAbs(c.System.WorkspaceRoot) {
		return c.System.WorkspaceRoot, nil
	}
	return filepath.Abs(c.System.WorkspaceRoot)
}

package security

import (
	"strings"
	"testing"

	"github.com/maos-project/maos/internal/errs"
)

func TestValidatePathSafetyTraversal(t *testing.T) {
	traversal := []string{
		"../../../etc/passwd",
		"./../../secrets",
		"data/../../../root",
		"foo..bar", // substring reading, per the documented open question
	}
	for _, p := range traversal {
		if err := ValidatePathSafety(p); err == nil {
			t.Errorf("ValidatePathSafety(%q): expected error, got nil", p)
		}
	}

	safe := []string{
		"./data/hooks",
		"relative/path",
		"/absolute/safe/path",
		"/usr/local/bin",
	}
	for _, p := range safe {
		if err := ValidatePathSafety(p); err != nil {
			t.Errorf("ValidatePathSafety(%q): unexpected error %v", p, err)
		}
	}
}

func TestValidatePathSafetyDriveAndUNC(t *testing.T) {
	bad := []string{
		"C:/windows/system32",
		"D:\\sensitive",
		"E:malicious.exe",
		`\\server\share\file`,
		"//malicious-server/steal-data",
	}
	for _, p := range bad {
		if err := ValidatePathSafety(p); err == nil {
			t.Errorf("ValidatePathSafety(%q): expected error, got nil", p)
		}
	}
}

func TestValidatePathSafetyUnicodeSeparators(t *testing.T) {
	// Fullwidth solidus normalizes to "/" then is caught as a traversal.
	if err := ValidatePathSafety("..／..／etc/passwd"); err == nil {
		t.Fatal("expected fullwidth-solidus traversal to be rejected")
	}
}

func TestValidatePathSafetyMessageIsGeneric(t *testing.T) {
	err := ValidatePathSafety("../../../etc/passwd")
	if err == nil {
		t.Fatal("expected error")
	}
	if strings.Contains(err.Message, "etc/passwd") {
		t.Fatalf("message leaked path: %q", err.Message)
	}
	if !strings.Contains(err.Message, "security violation detected") {
		t.Fatalf("message missing generic summary: %q", err.Message)
	}
}

func TestValidateFileAccess(t *testing.T) {
	protected := []string{
		".env", ".env.production", ".env.local",
		"private.key", "cert.pem", "config/secrets.yml",
		"id_rsa", "server.credentials",
	}
	for _, f := range protected {
		if err := ValidateFileAccess(f, "Read"); err == nil {
			t.Errorf("ValidateFileAccess(%q): expected error, got nil", f)
		}
	}

	allowed := []string{
		".env.example", ".env.sample", ".env.template", "stack.env",
		"readme.md", "config.json", "data.txt",
	}
	for _, f := range allowed {
		if err := ValidateFileAccess(f, "Read"); err != nil {
			t.Errorf("ValidateFileAccess(%q): unexpected error %v", f, err)
		}
	}
}

func TestIsEnvFile(t *testing.T) {
	if !IsEnvFile(".env") || !IsEnvFile(".env.production") {
		t.Fatal("expected .env files to be detected")
	}
	if IsEnvFile(".env.example") || IsEnvFile("stack.env") || IsEnvFile("config.json") {
		t.Fatal("allowed/unrelated files misclassified as env files")
	}
}

func TestJSONDepth(t *testing.T) {
	cases := []struct {
		json string
		want int
	}{
		{`{"a": "b"}`, 1},
		{`{"a": {"b": "c"}}`, 2},
		{`[1, [2, [3, [4]]]]`, 4},
		{`{"text": "{ nested brace in string }"}`, 1},
	}
	for _, c := range cases {
		if got := JSONDepth([]byte(c.json)); got != c.want {
			t.Errorf("JSONDepth(%q) = %d, want %d", c.json, got, c.want)
		}
	}
}

func TestValidateJSONStructure(t *testing.T) {
	if err := ValidateJSONStructure([]byte(`{"a": {"b": "value"}}`), 2, 1024); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidateJSONStructure([]byte(`{"a": {"b": {"c": {"d": "too deep"}}}}`), 2, 1024); err == nil {
		t.Fatal("expected depth violation")
	}
	if err := ValidateJSONStructure([]byte(`{"key": "very long value exceeding size limit"}`), 10, 20); err == nil {
		t.Fatal("expected size violation")
	}
}

func TestValidateResourceUsage(t *testing.T) {
	const gb = 1024 * 1024 * 1024
	if err := ValidateResourceUsage(512*1024*1024, 1000, gb, 5000); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidateResourceUsage(2*gb, 1000, gb, 5000); err == nil {
		t.Fatal("expected memory limit violation")
	}
	if err := ValidateResourceUsage(512*1024*1024, 6000, gb, 5000); err == nil {
		t.Fatal("expected execution time violation")
	}
}

func TestValidateCommandSafety(t *testing.T) {
	if err := ValidateCommandSafety("rm -rf /"); err == nil {
		t.Fatal("expected suspicious command error")
	}
	if err := ValidateCommandSafety("ls -la"); err != nil {
		t.Fatalf("unexpected error for benign command: %v", err)
	}
}

func TestAndCombinatorFailsFast(t *testing.T) {
	always := func(code errs.Kind) Validator[string] {
		return ValidatorFunc[string](func(string) *errs.Error { return &errs.Error{Kind: code} })
	}
	combined := And(always(errs.KindInvalidInput), always(errs.KindSecurity))
	err := combined.Validate("anything")
	if err == nil || err.Kind != errs.KindInvalidInput {
		t.Fatalf("expected first validator's error to win, got %v", err)
	}
}

func TestOrCombinatorFallsBack(t *testing.T) {
	fail := ValidatorFunc[string](func(string) *errs.Error { return &errs.Error{Kind: errs.KindInvalidInput} })
	pass := ValidatorFunc[string](func(string) *errs.Error { return nil })
	combined := Or(fail, pass)
	if err := combined.Validate("anything"); err != nil {
		t.Fatalf("expected Or to fall back to passing validator, got %v", err)
	}
	if !IsSafe(combined, "anything") {
		t.Fatal("IsSafe should report true when Or falls back successfully")
	}
}

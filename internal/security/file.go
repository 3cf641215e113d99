package security

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/maos-project/maos/internal/errs"
)

// protectedPatterns blocks access to files carrying secrets: environment
// files, key/cert material, SSH private keys, and known secrets configs
// (§4.2).
var protectedPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\.env$`),
	regexp.MustCompile(`\.env\.local$`),
	regexp.MustCompile(`\.env\.production$`),
	regexp.MustCompile(`\.env\.staging$`),
	regexp.MustCompile(`\.env\.development$`),
	regexp.MustCompile(`\.env\.test$`),
	regexp.MustCompile(`.*\.key$`),
	regexp.MustCompile(`.*\.pem$`),
	regexp.MustCompile(`.*\.p12$`),
	regexp.MustCompile(`.*\.pfx$`),
	regexp.MustCompile(`config/secrets\.yml$`),
	regexp.MustCompile(`.*\.credentials$`),
	regexp.MustCompile(`id_rsa$`),
	regexp.MustCompile(`id_dsa$`),
	regexp.MustCompile(`id_ecdsa$`),
	regexp.MustCompile(`id_ed25519$`),
}

// allowedPatterns are explicit exceptions to protectedPatterns: template
// and example files that look like secrets but carry none.
var allowedPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\.env\.example$`),
	regexp.MustCompile(`\.env\.sample$`),
	regexp.MustCompile(`\.env\.template$`),
	regexp.MustCompile(`stack\.env$`),
}

// ValidateFileAccess blocks access to protected files, checking the
// allow-list first so an allowed exception always short-circuits (§4.2).
// The returned error carries toolName for attribution but never echoes
// filePath — per §7, security decisions must not disclose
// attacker-controlled input in identifiable form.
func ValidateFileAccess(filePath, toolName string) *errs.Error {
	for _, allowed := range allowedPatterns {
		if allowed.MatchString(filePath) {
			return nil
		}
	}
	for _, protected := range protectedPatterns {
		if protected.MatchString(filePath) {
			err := errs.PolicyViolationError()
			err.Message = fmt.Sprintf("%s: %s", toolName, err.Message)
			return err
		}
	}
	return nil
}

// IsEnvFile reports whether path looks like an environment file: it is not
// on the allow-list used by ValidateFileAccess, contains ".env" anywhere,
// and does not end in ".example" or ".sample". It does not consult
// protectedPatterns, so it can report true for a path ValidateFileAccess
// allows (for example ".envrc").
func IsEnvFile(path string) bool {
	for _, allowed := range allowedPatterns {
		if allowed.MatchString(path) {
			return false
		}
	}
	return strings.Contains(path, ".env") &&
		!strings.HasSuffix(path, ".example") && !strings.HasSuffix(path, ".sample")
}

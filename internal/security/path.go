package security

import (
	"regexp"
	"strings"

	"github.com/maos-project/maos/internal/errs"
)

// driveSpecifier matches a single-letter drive prefix like "C:" or "e:"
// anywhere a path could plausibly start with one.
var driveSpecifier = regexp.MustCompile(`(?i)^[a-z]:`)

// unicodeSeparators are non-ASCII code points that render as path
// separators in some fonts/locales and must be normalized to the ASCII
// forward slash before any traversal check, the same way an ordinary
// backslash is (Open Question (c): normalization is universal here, not
// gated to non-Windows, to avoid a platform-dependent security posture).
var unicodeSeparators = []string{
	"／", // fullwidth solidus
	"⁄", // fraction slash
}

// normalizePathForSafetyCheck collapses every separator spelling — ASCII
// backslash, fullwidth solidus, fraction slash — to the ASCII forward
// slash, so the traversal and prefix checks below see one canonical form.
func normalizePathForSafetyCheck(p string) string {
	for _, sep := range unicodeSeparators {
		p = strings.ReplaceAll(p, sep, "/")
	}
	return strings.ReplaceAll(p, "\\", "/")
}

// ValidatePathSafety is the pre-canonicalization safety check (§4.2): it
// rejects any occurrence of ".." as a substring of the normalized path —
// not merely as a path component — along with drive specifiers and
// UNC-style prefixes, on every platform for consistency (§4.2, §9(a)).
func ValidatePathSafety(path string) *errs.Error {
	normalized := normalizePathForSafetyCheck(path)

	if strings.Contains(normalized, "..") {
		return errs.PathTraversalSecurityError()
	}
	if driveSpecifier.MatchString(normalized) {
		return errs.PathTraversalSecurityError()
	}
	if strings.HasPrefix(normalized, "//") {
		return errs.PathTraversalSecurityError()
	}

	return nil
}

// PathSafetyValidator adapts ValidatePathSafety to the Validator[string]
// interface for composition with And/Or.
var PathSafetyValidator Validator[string] = ValidatorFunc[string](ValidatePathSafety)

// Package pathguard implements the full path validator (§4.2): given a
// candidate path and an allow-listed workspace, canonicalize both, prove
// component-wise descendant containment, and reject deny-glob matches.
// The concrete containment algorithm isn't preserved in the retrieval
// corpus (only the simpler pre-canonicalization check in internal/security
// survived), so this package follows the spec text directly: canonicalize
// via symlink resolution, then compare path components rather than raw
// string prefixes, since a sibling directory sharing a string prefix
// (e.g. "/work/app" vs "/work/app-evil") must not be treated as contained.
package pathguard

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/maos-project/maos/internal/errs"
	"github.com/maos-project/maos/internal/security"
)

// DefaultDenyGlobs are workspace-relative deny patterns that exclude
// matching paths regardless of containment (§4.2, GLOSSARY "Deny glob").
var DefaultDenyGlobs = []string{
	"**/.git/**",
	"**/*.secret",
	"**/.env",
	"**/.env.*",
}

// Guard validates candidate paths against a fixed set of allow-listed
// workspaces and deny globs.
type Guard struct {
	workspaces []string
	denyGlobs  []string
}

// New builds a Guard over the given allow-listed workspace roots, using
// denyGlobs (or DefaultDenyGlobs when nil/empty).
func New(workspaces []string, denyGlobs []string) *Guard {
	if len(denyGlobs) == 0 {
		denyGlobs = DefaultDenyGlobs
	}
	return &Guard{workspaces: workspaces, denyGlobs: denyGlobs}
}

// Validate proves that candidate, once canonicalized, is a component-wise
// descendant of some allow-listed workspace, is not matched by any deny
// glob, and passes the pre-canonicalization safety check (§4.2).
func (g *Guard) Validate(candidate string) *errs.Error {
	if err := security.ValidatePathSafety(candidate); err != nil {
		return err
	}

	canonicalCandidate, cerr := canonicalize(candidate)
	if cerr != nil {
		return errs.PathValidationError(errs.PathCanonicalizationFailed)
	}

	var containingWorkspace string
	for _, ws := range g.workspaces {
		canonicalWS, err := canonicalize(ws)
		if err != nil {
			continue
		}
		if isDescendant(canonicalCandidate, canonicalWS) {
			containingWorkspace = canonicalWS
			break
		}
	}
	if containingWorkspace == "" {
		return errs.PathValidationError(errs.PathOutsideWorkspace)
	}

	relative, err := filepath.Rel(containingWorkspace, canonicalCandidate)
	if err != nil {
		return errs.PathValidationError(errs.PathCanonicalizationFailed)
	}
	relative = filepath.ToSlash(relative)
	for _, glob := range g.denyGlobs {
		if matched, _ := doublestar.Match(glob, relative); matched {
			return errs.PathValidationError(errs.PathBlockedPath)
		}
	}

	return nil
}

// canonicalize resolves symlinks and returns an absolute, cleaned path.
func canonicalize(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", err
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		// The path may not exist yet (e.g. a file about to be created);
		// fall back to the cleaned absolute form rather than failing the
		// whole validation on a missing leaf.
		return filepath.Clean(abs), nil
	}
	return resolved, nil
}

// isDescendant reports whether candidate is workspace itself or nested
// inside it, compared component-wise rather than by string prefix (a
// string-prefix compare would wrongly admit "/work/app-evil" as a
// descendant of "/work/app").
func isDescendant(candidate, workspace string) bool {
	if candidate == workspace {
		return true
	}
	rel, err := filepath.Rel(workspace, candidate)
	if err != nil {
		return false
	}
	if rel == "." {
		return true
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// WorkspaceFor generates the per-agent workspace path of the form
// "<workspace-root>/<session-id>/<agent-type>" and validates it through
// the same guard used for arbitrary candidate paths (§4.2, §12).
func (g *Guard) WorkspaceFor(workspaceRoot, sessionID, agentType string) (string, *errs.Error) {
	candidate := filepath.Join(workspaceRoot, sessionID, agentType)
	tempGuard := New(append(append([]string{}, g.workspaces...), workspaceRoot), g.denyGlobs)
	if err := tempGuard.Validate(candidate); err != nil {
		return "", err
	}
	return candidate, nil
}

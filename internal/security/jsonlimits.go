package security

import "github.com/maos-project/maos/internal/errs"

// ValidateJSONStructure checks json against maxSize/maxDepth, used by the
// stdin processor and by handlers accepting nested JSON blobs (§4.2,
// §4.1). A failing size check never discloses the offending length in its
// message (§4.1, §8).
func ValidateJSONStructure(json []byte, maxDepth int, maxSize int) *errs.Error {
	if len(json) > maxSize {
		return errs.PolicyViolationError()
	}
	if depth := JSONDepth(json); depth > maxDepth {
		return errs.PolicyViolationError()
	}
	return nil
}

// JSONDepth computes the maximum brace/bracket nesting depth of json with
// a single byte-scan pass: an "in-string" flag toggles on unescaped `"`,
// an "escape-next" flag arms on `\` inside a string, depth increments on
// `{`/`[` outside a string and decrements (saturating, never underflowing
// on malformed input) on `}`/`]` (§4.1).
func JSONDepth(json []byte) int {
	depth := 0
	maxDepth := 0
	inString := false
	escapeNext := false

	for _, b := range json {
		if escapeNext {
			escapeNext = false
			continue
		}
		switch {
		case b == '"':
			inString = !inString
		case b == '\\' && inString:
			escapeNext = true
		case (b == '{' || b == '[') && !inString:
			depth++
			if depth > maxDepth {
				maxDepth = depth
			}
		case (b == '}' || b == ']') && !inString:
			if depth > 0 {
				depth--
			}
		}
	}

	return maxDepth
}

package walker

import (
	"fmt"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// MatchesInclude returns true if the given slash-separated path matches any
// of the asset patterns. If patterns is empty, everything is included.
// A pattern without a slash also matches the base name, so "*.svg" selects
// SVGs in every directory.
func MatchesInclude(relPath string, patterns []string) bool {
	if len(patterns) == 0 {
		return true
	}
	base := path.Base(relPath)
	for _, pattern := range patterns {
		if ok, _ := doublestar.Match(pattern, relPath); ok {
			return true
		}
		if !strings.Contains(pattern, "/") {
			if ok, _ := doublestar.Match(pattern, base); ok {
				return true
			}
		}
	}
	return false
}

// ValidatePatterns reports the first malformed asset pattern.
func ValidatePatterns(patterns []string) error {
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf("invalid asset pattern %q", p)
		}
	}
	return nil
}

// hidden reports whether a path element is a dotfile or dot-directory such
// as .DS_Store or .git. Those never belong in an export.
func hidden(name string) bool {
	return name != "." && strings.HasPrefix(name, ".")
}

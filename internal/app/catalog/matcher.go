package catalog

import (
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// ignorePrefix marks a catalog path entry as an exclusion
const ignorePrefix = "!"

// Matcher checks if file paths match the configured catalog globs
type Matcher interface {
	Match(path string) bool
}

// matcher implements the Matcher interface
type matcher struct {
	patterns []glob.Glob
	ignores  []glob.Glob
}

// NewMatcher creates a Matcher from catalog path entries; entries prefixed with '!' exclude files
func NewMatcher(paths []string) (Matcher, error) {
	includes, ignores := splitPatterns(paths)

	m := &matcher{
		patterns: make([]glob.Glob, 0, len(includes)),
		ignores:  make([]glob.Glob, 0, len(ignores)),
	}

	for _, p := range expandPatterns(includes) {
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, err
		}

		m.patterns = append(m.patterns, g)
	}

	for _, p := range expandPatterns(ignores) {
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, err
		}

		m.ignores = append(m.ignores, g)
	}

	return m, nil
}

// splitPatterns separates inclusion globs from '!'-prefixed exclusions
func splitPatterns(paths []string) (includes, ignores []string) {
	for _, p := range paths {
		p = normalizePath(strings.TrimSpace(p))
		if p == "" {
			continue
		}

		if strings.HasPrefix(p, ignorePrefix) {
			ignores = append(ignores, normalizePath(strings.TrimPrefix(p, ignorePrefix)))
			continue
		}

		includes = append(includes, p)
	}

	return includes, ignores
}

// expandPatterns expands patterns starting with **/ to also match at root level
func expandPatterns(patterns []string) []string {
	expanded := make([]string, 0, len(patterns)*2)

	for _, p := range patterns {
		expanded = append(expanded, p)

		if strings.HasPrefix(p, "**/") {
			expanded = append(expanded, strings.TrimPrefix(p, "**/"))
		}
	}

	return expanded
}

// Match returns true if the path matches any pattern and is not excluded
func (m *matcher) Match(path string) bool {
	path = normalizePath(path)

	for _, ignore := range m.ignores {
		if ignore.Match(path) {
			return false
		}
	}

	for _, pattern := range m.patterns {
		if pattern.Match(path) {
			return true
		}
	}

	return false
}

// normalizePath converts path separators and removes leading ./
func normalizePath(path string) string {
	path = filepath.ToSlash(path)
	path = strings.TrimPrefix(path, "./")

	return path
}

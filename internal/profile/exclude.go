package profile

import (
	"path/filepath"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
)

// IgnoreFileName is the optional gitignore-style pattern file consulted at
// the corpus root.
const IgnoreFileName = ".nbqualityignore"

// Excluder decides whether a relative path should be skipped. Predicates
// are injected into the Walker so exclusion rules are testable without
// filesystem traversal.
type Excluder func(rel string) bool

// defaultSkips are directory names excluded at any nesting depth:
// checkpoint directories, version control, and packaging artifacts.
var defaultSkips = map[string]struct{}{
	".ipynb_checkpoints": {},
	".git":               {},
	".hg":                {},
	".svn":               {},
	"__MACOSX":           {},
	"__pycache__":        {},
	"node_modules":       {},
	".tox":               {},
	"build":              {},
	"dist":               {},
	"egg-info":           {},
	".venv":              {},
	"venv":               {},
}

// DefaultExcluder skips any path with an excluded component. Extra names
// extend the built-in set.
func DefaultExcluder(extra ...string) Excluder {
	skips := make(map[string]struct{}, len(defaultSkips)+len(extra))
	for name := range defaultSkips {
		skips[name] = struct{}{}
	}
	for _, name := range extra {
		if name != "" {
			skips[name] = struct{}{}
		}
	}

	return func(rel string) bool {
		for _, part := range strings.Split(filepath.ToSlash(rel), "/") {
			if _, ok := skips[part]; ok {
				return true
			}
		}
		return false
	}
}

// IgnoreFileExcluder layers gitignore-style patterns from the corpus root's
// ignore file over base. With no ignore file, base is returned unchanged.
func IgnoreFileExcluder(root string, base Excluder) Excluder {
	gi, err := ignore.CompileIgnoreFile(filepath.Join(root, IgnoreFileName))
	if err != nil {
		return base
	}
	return func(rel string) bool {
		return base(rel) || gi.MatchesPath(rel)
	}
}

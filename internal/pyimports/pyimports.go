// Package pyimports lists the modules imported by a document's code cells.
package pyimports

import (
	"regexp"
	"sort"
	"strings"
)

var (
	importRe = regexp.MustCompile(`^\s*import\s+(.+)$`)
	fromRe   = regexp.MustCompile(`^\s*from\s+([\w.]+)\s+import\b`)
)

// List extracts imported module names from a code string. Plain imports
// report each comma-separated module (aliases stripped); from-imports
// report the source module. Shell-escape and directive lines are ignored.
// Results are deduplicated and sorted.
func List(code string) []string {
	seen := make(map[string]struct{})

	for _, line := range strings.Split(code, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "%") || strings.HasPrefix(trimmed, "!") ||
			strings.HasPrefix(trimmed, "#") {
			continue
		}

		if m := fromRe.FindStringSubmatch(line); m != nil {
			seen[m[1]] = struct{}{}
			continue
		}
		if m := importRe.FindStringSubmatch(line); m != nil {
			for _, part := range strings.Split(m[1], ",") {
				name := strings.TrimSpace(part)
				// Strip "as alias".
				if idx := strings.Index(name, " as "); idx >= 0 {
					name = name[:idx]
				}
				name = strings.TrimSpace(name)
				if isModuleName(name) {
					seen[name] = struct{}{}
				}
			}
		}
	}

	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func isModuleName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if r != '.' && r != '_' && !('a' <= r && r <= 'z') &&
			!('A' <= r && r <= 'Z') && !('0' <= r && r <= '9') {
			return false
		}
	}
	return true
}

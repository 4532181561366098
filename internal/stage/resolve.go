package stage

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// NotProducedError reports a stage that exited cleanly but left no artifact
// at the expected path or anywhere the resolver looked.
type NotProducedError struct {
	Expected string
	Pattern  string
}

func (e *NotProducedError) Error() string {
	if e.Pattern == "" {
		return fmt.Sprintf("expected output %s was not produced", e.Expected)
	}
	return fmt.Sprintf("expected output %s was not produced (searched %s)", e.Expected, e.Pattern)
}

// Resolve locates the artifact a stage actually produced. The expected path
// wins when it exists. Otherwise the directory is scanned for stem-prefixed
// variants with the same extension (the notation converter numbers its
// outputs for multi-tune input, e.g. temp1.mid for a requested temp.mid) and
// the lexicographically first match is chosen.
func Resolve(expected, dir, stem, ext string) (string, error) {
	if _, err := os.Stat(expected); err == nil {
		return expected, nil
	}

	pattern := filepath.Join(dir, stem+"*"+ext)
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return "", fmt.Errorf("scan for %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return "", &NotProducedError{Expected: expected, Pattern: pattern}
	}
	sort.Strings(matches)
	return matches[0], nil
}

package migrate

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var migrationFileRe = regexp.MustCompile(`^(\d{14})_[a-z0-9_]+\.sql$`)

// goose refuses to run a file missing either marker, so catch it here
// before deploy.
var requiredMarkers = []string{"-- +goose Up", "-- +goose Down"}

// ValidateDir checks that every .sql file in dir follows the
// <version>_<slug>.sql naming scheme, that no version appears twice, and
// that each file carries the goose Up/Down markers.
func ValidateDir(dir string) error {
	if dir == "" {
		return fmt.Errorf("dir is required")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read dir %q: %w", dir, err)
	}

	byVersion := map[string]string{}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".sql") {
			continue
		}

		match := migrationFileRe.FindStringSubmatch(name)
		if match == nil {
			return fmt.Errorf("migration %q does not match <version>_<slug>.sql", name)
		}
		if earlier, dup := byVersion[match[1]]; dup {
			return fmt.Errorf("version %s used by both %q and %q", match[1], earlier, name)
		}
		byVersion[match[1]] = name

		body, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return fmt.Errorf("read file %q: %w", name, err)
		}
		for _, marker := range requiredMarkers {
			if !strings.Contains(string(body), marker) {
				return fmt.Errorf("migration %q missing %q", name, marker)
			}
		}
	}
	return nil
}

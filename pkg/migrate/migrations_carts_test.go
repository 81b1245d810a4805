package migrate_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCartsMigrationContainsConstraints(t *testing.T) {
	matches, err := filepath.Glob(filepath.Join("migrations", "*_create_carts.sql"))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no carts migration file found")
	}

	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}
	content := string(data)

	checks := []string{
		"CREATE TABLE carts",
		"CREATE TABLE cart_lines",
		"REFERENCES carts(id) ON DELETE CASCADE",
		"CHECK (quantity >= 1)",
		"UNIQUE INDEX idx_cart_lines_variant",
		"DROP TABLE cart_lines",
		"DROP TABLE carts",
	}

	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

package migrate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCreateSQLMigration(t *testing.T) {
	dir := t.TempDir()

	path, err := CreateSQLMigration(dir, "Add Promo Codes!")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(path, "_add_promo_codes.sql") {
		t.Fatalf("unexpected filename %q", path)
	}

	body, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read skeleton: %v", err)
	}
	if !strings.Contains(string(body), "-- +goose Up") || !strings.Contains(string(body), "-- +goose Down") {
		t.Fatalf("skeleton missing goose markers: %s", body)
	}

	if err := ValidateDir(dir); err != nil {
		t.Fatalf("fresh skeleton should validate: %v", err)
	}
}

func TestCreateSQLMigrationRejectsEmptySlug(t *testing.T) {
	if _, err := CreateSQLMigration(t.TempDir(), "!!!"); err == nil {
		t.Fatal("expected error for a name with no usable characters")
	}
}

func TestValidateDirRejectsBadNames(t *testing.T) {
	dir := t.TempDir()
	writeMigration(t, dir, "not_versioned.sql", "-- +goose Up\n-- +goose Down\n")

	if err := ValidateDir(dir); err == nil {
		t.Fatal("expected error for unversioned filename")
	}
}

func TestValidateDirRejectsDuplicateVersions(t *testing.T) {
	dir := t.TempDir()
	writeMigration(t, dir, "20260101000000_first.sql", "-- +goose Up\n-- +goose Down\n")
	writeMigration(t, dir, "20260101000000_second.sql", "-- +goose Up\n-- +goose Down\n")

	if err := ValidateDir(dir); err == nil {
		t.Fatal("expected error for duplicate version")
	}
}

func TestValidateDirRejectsMissingMarkers(t *testing.T) {
	dir := t.TempDir()
	writeMigration(t, dir, "20260101000000_broken.sql", "CREATE TABLE t (id TEXT);\n")

	if err := ValidateDir(dir); err == nil {
		t.Fatal("expected error for missing goose markers")
	}
}

func writeMigration(t *testing.T, dir, name, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

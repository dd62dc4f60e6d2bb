package options

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoad_FromYAML(t *testing.T) {
	path := writeFile(t, "settings.yml", "path: foo\nssl: true\npool_max: 500\n")
	opts, err := Load(WithConfigFile(path))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := opts.StringOr("path", ""); got != "foo" {
		t.Errorf("unexpected path: %q", got)
	}
	if b, ok := opts.Bool("ssl"); !ok || !b {
		t.Errorf("unexpected ssl: %v %v", b, ok)
	}
	if opts.IntOr("pool_max", 0) != 500 {
		t.Errorf("unexpected pool_max: %d", opts.IntOr("pool_max", 0))
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "settings.yml", "path: foo\n")
	t.Setenv("OPENSEARCH_OUTPUT_PATH", "bar")
	opts, err := Load(WithConfigFile(path))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := opts.StringOr("path", ""); got != "bar" {
		t.Errorf("expected env override, got %q", got)
	}
}

func TestLoad_EnvOnly(t *testing.T) {
	t.Setenv("OPENSEARCH_OUTPUT_ACTION", "update")
	opts, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := opts.StringOr("action", ""); got != "update" {
		t.Errorf("unexpected action: %q", got)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(WithConfigFile("/does/not/exist.yml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoad_DotEnv(t *testing.T) {
	envPath := writeFile(t, ".env", "OPENSEARCH_OUTPUT_USER=admin\n")
	os.Unsetenv("OPENSEARCH_OUTPUT_USER")
	t.Cleanup(func() { os.Unsetenv("OPENSEARCH_OUTPUT_USER") })
	opts, err := Load(WithEnvFile(envPath))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := opts.StringOr("user", ""); got != "admin" {
		t.Errorf("unexpected user: %q", got)
	}
}

package format

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/mortar/pkg/errors"
)

// writeFile drops a build file fixture into dir and returns its path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDetect(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"mortar.yaml", "yaml"},
		{"mortar.yml", "yaml"},
		{"some/dir/build.yaml", "yaml"},
		{"mortar.toml", "toml"},
		{"mortar.hcl", "hcl"},
		{"targets.json", "json"},
		{"Makefile", "makefile"},
		{"makefile", "makefile"},
		{"rules.mk", "makefile"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			f, err := Detect(tt.path, Formats()...)
			if err != nil {
				t.Fatalf("Detect(%q) error = %v", tt.path, err)
			}
			if f.Name() != tt.want {
				t.Errorf("Detect(%q) = %s, want %s", tt.path, f.Name(), tt.want)
			}
		})
	}
}

func TestDetectUnknownFormat(t *testing.T) {
	_, err := Detect("notes.txt", Formats()...)
	if err == nil {
		t.Fatal("Detect() error = nil, want unknown format")
	}
	if code := errors.GetCode(err); code != errors.ErrCodeUnknownFormat {
		t.Errorf("GetCode() = %v, want %v", code, errors.ErrCodeUnknownFormat)
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "mortar.toml", "[app]\n")

	path, err := Discover(dir)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if filepath.Base(path) != "mortar.toml" {
		t.Errorf("Discover() = %s, want mortar.toml", path)
	}
}

func TestDiscoverPrecedence(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Makefile", "app:\n")
	writeFile(t, dir, "mortar.yaml", "app: {}\n")

	path, err := Discover(dir)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if filepath.Base(path) != "mortar.yaml" {
		t.Errorf("Discover() = %s, want mortar.yaml to win over Makefile", path)
	}
}

func TestDiscoverEmptyDir(t *testing.T) {
	_, err := Discover(t.TempDir())
	if err == nil {
		t.Fatal("Discover() error = nil, want not found")
	}
	if code := errors.GetCode(err); code != errors.ErrCodeFileNotFound {
		t.Errorf("GetCode() = %v, want %v", code, errors.ErrCodeFileNotFound)
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "mortar.yaml", `
app:
  cmds: [cc -o app main.c]
  deps: [main.c]
  outs: [app]
`)

	targets, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile() error = %v", err)
	}
	if len(targets) != 1 || targets[0].Name != "app" {
		t.Errorf("ParseFile() targets = %v, want one target app", targets)
	}
}

func TestParseFileUnknownExtension(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "build.ini", "[app]\n")

	_, err := ParseFile(path)
	if err == nil {
		t.Fatal("ParseFile() error = nil, want unknown format")
	}
	if code := errors.GetCode(err); code != errors.ErrCodeUnknownFormat {
		t.Errorf("GetCode() = %v, want %v", code, errors.ErrCodeUnknownFormat)
	}
}

package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

// Env holds the XDG directories of an isolated test
type Env struct {
	ConfigHome string
	StateHome  string
}

// ConfigFile returns the path of the user config file with the given name
// inside the isolated config home
func (e Env) ConfigFile(name string) string {
	return filepath.Join(e.ConfigHome, "indent", name)
}

// Isolate points XDG_CONFIG_HOME and XDG_STATE_HOME at fresh temporary
// directories for the duration of the test and clears NO_COLOR
func Isolate(t *testing.T) Env {
	t.Helper()
	env := Env{ConfigHome: t.TempDir(), StateHome: t.TempDir()}
	t.Setenv("XDG_CONFIG_HOME", env.ConfigHome)
	t.Setenv("XDG_STATE_HOME", env.StateHome)
	t.Setenv("NO_COLOR", "")
	return env
}

// CreateFile creates a file with the given content in the specified directory.
// It fails the test if the file cannot be created.
func CreateFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}
	return path
}

// CreateDir creates a directory in the specified parent directory.
// It fails the test if the directory cannot be created.
func CreateDir(t *testing.T, parent, name string) string {
	t.Helper()

	path := filepath.Join(parent, name)
	if err := os.MkdirAll(path, 0755); err != nil {
		t.Fatalf("Failed to create directory %s: %v", path, err)
	}
	return path
}

// NewTestFS creates a new in-memory filesystem for testing
func NewTestFS() afero.Fs {
	return afero.NewMemMapFs()
}

// MemFS creates an in-memory filesystem holding files, keyed by path
func MemFS(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()

	fsys := NewTestFS()
	for name, content := range files {
		if err := afero.WriteFile(fsys, name, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to create file %s: %v", name, err)
		}
	}
	return fsys
}
